package engine

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// Anchor is the place where statements can be inserted for a node: either
// before an enclosing statement, or at the top of an expression-bodied
// arrow function that has to be turned into a block.
type Anchor struct {
	Statement *sitter.Node
	Container *sitter.Node
	Arrow     *sitter.Node
}

// Wrapped reports whether inserting before the anchor statement requires
// wrapping it into a new block.
func (a Anchor) Wrapped() bool {
	return a.Statement != nil && !syntax.IsStatementContainer(a.Container)
}

// FindAnchor locates the anchor of n given its ancestors, outermost first.
// There is no anchor when n sits outside any function body or statement,
// for example in a default parameter or a class field initializer.
func FindAnchor(ancestors []*sitter.Node, n *sitter.Node) (Anchor, bool) {
	child := n

	for i := len(ancestors) - 1; i >= 0; i-- {
		parent := ancestors[i]

		if syntax.KindOf(parent) == syntax.KindArrow &&
			syntax.KindOf(child) != syntax.KindStatementBlock &&
			syntax.SameNode(syntax.Field(parent, "body"), child) {
			return Anchor{Arrow: parent}, true
		}

		if syntax.KindOf(child).IsFunctionLike() || child.Type() == "class_body" {
			return Anchor{}, false
		}

		if syntax.IsStatement(child) && syntax.KindOf(child) != syntax.KindStatementBlock &&
			(syntax.IsStatementContainer(parent) || isNestedBody(parent, child)) {
			return Anchor{Statement: child, Container: parent}, true
		}

		child = parent
	}

	return Anchor{}, false
}

func isNestedBody(parent, child *sitter.Node) bool {
	switch parent.Type() {
	case "labeled_statement", "export_statement":
		return false
	case "else_clause":
		return true
	case "if_statement":
		return syntax.SameNode(syntax.Field(parent, "consequence"), child)
	}

	return syntax.SameNode(syntax.Field(parent, "body"), child)
}

type nodeKey struct {
	start, end uint32
}

func keyOf(n *sitter.Node) nodeKey {
	return nodeKey{start: n.StartByte(), end: n.EndByte()}
}

type statementPlan struct {
	anchor Anchor
	lines  []string
}

type bodyPlan struct {
	fn    *sitter.Node
	lines []string
}

// insertion is text added at one offset of the original content. A
// closing insertion ends a construct that began at span; an opening one
// begins a construct that ends at span. Statement and body plans are outer
// to wraps covering the same range.
type insertion struct {
	offset  uint32
	text    string
	closing bool
	span    uint32
	outer   bool
	seq     int
}

// Editor queues edits against the original bytes of a document and applies
// them in a single pass. Edits are only ever insertions, so the text of
// every existing node is preserved verbatim.
type Editor struct {
	doc *syntax.Document

	statements  []*statementPlan
	byStatement map[nodeKey]*statementPlan
	bodies      []*bodyPlan
	byBody      map[nodeKey]*bodyPlan
	wraps       []insertion
	imports     []string
	hoisted     []string
	sites       []m.Site
	seq         int
}

// NewEditor creates an empty edit plan for doc.
func NewEditor(doc *syntax.Document) *Editor {
	return &Editor{
		doc:         doc,
		byStatement: make(map[nodeKey]*statementPlan),
		byBody:      make(map[nodeKey]*bodyPlan),
	}
}

// InsertBefore queues statements before the anchor. Statements queued for
// the same anchor keep their order.
func (e *Editor) InsertBefore(a Anchor, lines ...string) {
	if a.Arrow != nil {
		e.PrependToBody(a.Arrow, lines...)
		return
	}

	key := keyOf(a.Statement)

	plan, ok := e.byStatement[key]
	if !ok {
		plan = &statementPlan{anchor: a}
		e.byStatement[key] = plan
		e.statements = append(e.statements, plan)
	}

	plan.lines = append(plan.lines, lines...)
}

// Queued returns the statements queued so far for the anchor.
func (e *Editor) Queued(a Anchor) []string {
	if a.Arrow != nil {
		if plan, ok := e.byBody[keyOf(a.Arrow)]; ok {
			return plan.lines
		}

		return nil
	}

	if a.Statement == nil {
		return nil
	}

	if plan, ok := e.byStatement[keyOf(a.Statement)]; ok {
		return plan.lines
	}

	return nil
}

// PrependToBody queues statements at the top of a function body. An
// expression body is rewritten into a block that returns the original
// expression.
func (e *Editor) PrependToBody(fn *sitter.Node, lines ...string) {
	key := keyOf(fn)

	plan, ok := e.byBody[key]
	if !ok {
		plan = &bodyPlan{fn: fn}
		e.byBody[key] = plan
		e.bodies = append(e.bodies, plan)
	}

	plan.lines = append(plan.lines, lines...)
}

// Wrap queues open before n and closeText after it.
func (e *Editor) Wrap(n *sitter.Node, open, closeText string) {
	e.wraps = append(e.wraps,
		e.opening(n.StartByte(), open, n.EndByte()),
		e.closing(n.EndByte(), closeText, n.StartByte()),
	)
}

// Hoist queues a top-level statement placed after the imports. Repeated
// statements are only added once.
func (e *Editor) Hoist(line string) {
	for _, h := range e.hoisted {
		if h == line {
			return
		}
	}

	e.hoisted = append(e.hoisted, line)
}

// AddImport queues an import statement placed after the existing imports.
func (e *Editor) AddImport(line string) {
	for _, h := range e.imports {
		if h == line {
			return
		}
	}

	e.imports = append(e.imports, line)
}

// AddSite records a mutation site for reporting.
func (e *Editor) AddSite(site m.Site) {
	e.sites = append(e.sites, site)
}

// Sites returns the recorded mutation sites in the order they were added.
func (e *Editor) Sites() []m.Site {
	return e.sites
}

// Empty reports whether no edit has been queued.
func (e *Editor) Empty() bool {
	return len(e.statements) == 0 && len(e.bodies) == 0 && len(e.wraps) == 0 &&
		len(e.hoisted) == 0 && len(e.imports) == 0
}

// Apply returns the edited content. The document itself is not modified.
func (e *Editor) Apply() []byte {
	if e.Empty() {
		return bytes.Clone(e.doc.Content)
	}

	var insertions []insertion

	for _, plan := range e.statements {
		insertions = append(insertions, e.statementInsertions(plan)...)
	}

	for _, plan := range e.bodies {
		insertions = append(insertions, e.bodyInsertions(plan)...)
	}

	for i := range insertions {
		insertions[i].outer = true
	}

	insertions = append(insertions, e.wraps...)

	if ins, ok := e.hoistInsertion(); ok {
		insertions = append(insertions, ins)
	}

	sort.SliceStable(insertions, func(i, j int) bool {
		a, b := insertions[i], insertions[j]

		if a.offset != b.offset {
			return a.offset < b.offset
		}

		if a.closing != b.closing {
			return a.closing
		}

		// Closings end the innermost construct first; openings start the
		// outermost one first. Both mean the larger span goes first.
		if a.span != b.span {
			return a.span > b.span
		}

		if a.outer != b.outer {
			return a.outer != a.closing
		}

		return a.seq < b.seq
	})

	var out bytes.Buffer

	out.Grow(len(e.doc.Content) + 256)

	last := uint32(0)
	for _, ins := range insertions {
		out.Write(e.doc.Content[last:ins.offset])
		out.WriteString(ins.text)
		last = ins.offset
	}

	out.Write(e.doc.Content[last:])

	return out.Bytes()
}

func (e *Editor) opening(offset uint32, text string, end uint32) insertion {
	e.seq++
	return insertion{offset: offset, text: text, span: end, seq: e.seq}
}

func (e *Editor) closing(offset uint32, text string, start uint32) insertion {
	e.seq++
	return insertion{offset: offset, text: text, closing: true, span: start, seq: e.seq}
}

func (e *Editor) statementInsertions(plan *statementPlan) []insertion {
	stmt := plan.anchor.Statement

	if plan.anchor.Wrapped() {
		return []insertion{
			e.opening(stmt.StartByte(), "{ "+strings.Join(plan.lines, " ")+" ", stmt.EndByte()),
			e.closing(stmt.EndByte(), " }", stmt.StartByte()),
		}
	}

	return []insertion{e.opening(stmt.StartByte(), e.leadingText(stmt.StartByte(), plan.lines), stmt.EndByte())}
}

func (e *Editor) bodyInsertions(plan *bodyPlan) []insertion {
	body := syntax.Field(plan.fn, "body")
	if body == nil {
		return nil
	}

	if syntax.KindOf(body) != syntax.KindStatementBlock {
		return []insertion{
			e.opening(body.StartByte(), "{ "+strings.Join(plan.lines, " ")+" return ", body.EndByte()),
			e.closing(body.EndByte(), "; }", body.StartByte()),
		}
	}

	if body.NamedChildCount() > 0 {
		first := body.NamedChild(0)
		return []insertion{e.opening(first.StartByte(), e.leadingText(first.StartByte(), plan.lines), first.EndByte())}
	}

	// Empty block: insert right after the opening brace.
	after := body.StartByte() + 1

	if body.StartPoint().Row == body.EndPoint().Row {
		return []insertion{e.opening(after, " "+strings.Join(plan.lines, " ")+" ", body.EndByte())}
	}

	indent := e.doc.Indent(body.StartByte()) + e.doc.IndentUnit()

	var b strings.Builder
	for _, line := range plan.lines {
		b.WriteString("\n" + indent + line)
	}

	return []insertion{e.opening(after, b.String(), body.EndByte())}
}

// leadingText renders lines placed in front of the code at offset. When
// the code starts its own line the new statements get their own lines at
// the same indentation; otherwise they are inlined.
func (e *Editor) leadingText(offset uint32, lines []string) string {
	if !e.startsLine(offset) {
		return strings.Join(lines, " ") + " "
	}

	indent := e.doc.Indent(offset)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line + "\n" + indent)
	}

	return b.String()
}

func (e *Editor) startsLine(offset uint32) bool {
	for i := int(offset) - 1; i >= 0; i-- {
		switch e.doc.Content[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}

	return true
}

func (e *Editor) hoistInsertion() (insertion, bool) {
	lines := append(append([]string{}, e.imports...), e.hoisted...)
	if len(lines) == 0 {
		return insertion{}, false
	}

	// The hoisted block precedes any other edit at the same offset.
	span := uint32(len(e.doc.Content)) + 1

	offset, found := HoistOffset(e.doc)
	if !found {
		return e.opening(0, strings.Join(lines, "\n")+"\n", span), true
	}

	return e.opening(offset, "\n"+strings.Join(lines, "\n"), span), true
}

// HoistOffset returns the end of the leading run of hashbang, directives
// and imports at the top of the program. found is false when the program
// starts with something else.
func HoistOffset(doc *syntax.Document) (offset uint32, found bool) {
	count := int(doc.Root.NamedChildCount())

	for i := 0; i < count; i++ {
		child := doc.Root.NamedChild(i)

		switch {
		case syntax.KindOf(child) == syntax.KindComment:
			continue
		case child.Type() == "hash_bang_line", syntax.KindOf(child) == syntax.KindImport, isDirective(child):
			offset, found = child.EndByte(), true
		default:
			return offset, found
		}
	}

	return offset, found
}

func isDirective(n *sitter.Node) bool {
	if syntax.KindOf(n) != syntax.KindExpressionStatement {
		return false
	}

	children := syntax.NamedChildren(n)

	return len(children) == 1 && syntax.KindOf(children[0]) == syntax.KindString
}

// PrecedingCallLabels returns the first string argument of each call to fn
// found in the run of expression statements directly before the anchor
// statement.
func PrecedingCallLabels(doc *syntax.Document, a Anchor, fn string) []string {
	if a.Statement == nil || a.Container == nil {
		return nil
	}

	siblings := syntax.NamedChildren(a.Container)

	idx := -1
	for i, s := range siblings {
		if syntax.SameNode(s, a.Statement) {
			idx = i
			break
		}
	}

	var labels []string

	for i := idx - 1; i >= 0; i-- {
		label, ok := CallLabel(doc, siblings[i], fn)
		if !ok {
			break
		}

		labels = append(labels, label)
	}

	return labels
}

// CallLabel matches `fn("label", ...);` and returns the label.
func CallLabel(doc *syntax.Document, stmt *sitter.Node, fn string) (string, bool) {
	if syntax.KindOf(stmt) != syntax.KindExpressionStatement {
		return "", false
	}

	call := syntax.FirstNamedChild(stmt)
	if syntax.KindOf(call) != syntax.KindCall || doc.Text(syntax.Field(call, "function")) != fn {
		return "", false
	}

	args := HookArguments(call)
	if len(args) == 0 || syntax.KindOf(args[0]) != syntax.KindString {
		return "", true
	}

	return doc.StringValue(args[0]), true
}

// CallStatement renders `fn(args...);`.
func CallStatement(fn string, args ...string) string {
	return fn + "(" + strings.Join(args, ", ") + ");"
}

// Quote renders s as a double-quoted JavaScript string literal.
func Quote(s string) string {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return `""`
	}

	return strings.TrimSuffix(b.String(), "\n")
}
