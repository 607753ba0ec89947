package codemods

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/hooklens/internal/config"
	"github.com/mouse-blink/hooklens/internal/engine"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

type planner interface {
	Plan(doc *syntax.Document) *engine.Editor
}

func parseDoc(t *testing.T, path, src string) *syntax.Document {
	t.Helper()

	doc, err := syntax.NewParser().Parse(context.Background(), path, []byte(src))
	require.NoError(t, err)
	t.Cleanup(doc.Close)

	return doc
}

// rewrite plans src with p and returns the output, which must parse again,
// along with the recorded sites.
func rewrite(t *testing.T, p planner, path, src string) (string, []m.Site) {
	t.Helper()

	ed := p.Plan(parseDoc(t, path, src))
	out := string(ed.Apply())

	parseDoc(t, path, out)

	return out, ed.Sites()
}

func testFile(name string) m.File {
	return m.File{Path: m.Path("/project/src/" + name), ShortPath: m.Path("src/" + name)}
}

func testConfig() config.Config {
	return config.Default()
}
