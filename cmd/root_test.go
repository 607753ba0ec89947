package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/hooklens/internal/domain"
	"github.com/mouse-blink/hooklens/internal/domain/codemods"
	domainmocks "github.com/mouse-blink/hooklens/internal/domain/mocks"
	m "github.com/mouse-blink/hooklens/internal/model"
)

// newTestCmd builds a fresh command tree wired to the given workflow. A nil
// workflow lets setup build the real one.
func newTestCmd(t *testing.T, wf domain.Workflow) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newStatesCmd(), newViewCmd(), newSettersCmd(), newEffectsCmd(), newProfileCmd(), newTraceCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = wf

	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd, out
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "hooklens", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{"config", "verbose", "json"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing --%s flag", name)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"states", "view", "log-setters", "log-effects", "profile", "trace"} {
		assert.Contains(t, names, want)
	}
}

func TestInit(t *testing.T) {
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, reportStore)
}

func TestStatesCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	mockWorkflow.On("States", mock.Anything, domain.StatesArgs{
		Root:   m.Path("./web"),
		Output: m.Path("report.json"),
	}).Return(m.AnalysisReport{}, nil)

	cmd.SetArgs([]string{"states", "-o", "report.json", "./web"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestStatesCmd_MissingPath(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"states"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestViewCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	mockWorkflow.On("View", domain.ViewArgs{Report: m.Path("report.json")}).
		Return(m.AnalysisReport{}, nil)

	cmd.SetArgs([]string{"view", "report.json"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestSettersCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	mockWorkflow.On("LogSetters", mock.Anything, domain.RewriteArgs{
		Root:   m.Path("src"),
		DryRun: true,
	}).Return(m.RunSummary{Files: 2}, nil)

	cmd.SetArgs([]string{"log-setters", "--dry-run", "src"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestEffectsCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	mockWorkflow.On("LogEffects", mock.Anything, domain.RewriteArgs{Root: m.Path("src")}).
		Return(m.RunSummary{}, nil)

	cmd.SetArgs([]string{"log-effects", "src"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestEffectsCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	mockWorkflow.On("LogEffects", mock.Anything, mock.Anything).
		Return(m.RunSummary{}, errors.New("root does not exist"))

	cmd.SetArgs([]string{"log-effects", "missing"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "root does not exist")
}

func TestProfileCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	mockWorkflow.On("Profile", mock.Anything, mock.MatchedBy(func(args domain.ProfileArgs) bool {
		return args.Root == m.Path("app") &&
			args.DryRun &&
			len(args.Select) == 2 &&
			args.Select[0] == "App" &&
			args.Select[1] == "Header" &&
			args.IncludeLocal &&
			!args.All &&
			!args.TreeOnly
	})).Return(m.RunSummary{}, nil)

	cmd.SetArgs([]string{"profile", "-n", "--select", "App,Header", "--include-local", "app"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestProfileCmd_TreeOnly(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	mockWorkflow.On("Profile", mock.Anything, mock.MatchedBy(func(args domain.ProfileArgs) bool {
		return args.TreeOnly && args.Output == m.Path("tree.json")
	})).Return(m.RunSummary{}, nil)

	cmd.SetArgs([]string{"profile", "--tree-only", "-o", "tree.json", "app"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestProfileCmd_ExclusiveFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"profile", "--all", "--select", "App", "app"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestTraceCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(domain.TraceArgs) bool
	}{
		{
			name: "default mode",
			args: []string{"trace", "--all", "src"},
			want: func(a domain.TraceArgs) bool {
				return a.All && a.Mode == codemods.TraceCalls && a.Root == m.Path("src")
			},
		},
		{
			name: "entry mode with selection",
			args: []string{"trace", "-m", "entry", "-s", "handleClick", "src"},
			want: func(a domain.TraceArgs) bool {
				return a.Mode == codemods.TraceEntry && len(a.Select) == 1 && a.Select[0] == "handleClick"
			},
		},
		{
			name: "list only",
			args: []string{"trace", "--list", "src"},
			want: func(a domain.TraceArgs) bool {
				return a.ListOnly && !a.All && len(a.Select) == 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			cmd, _ := newTestCmd(t, mockWorkflow)

			mockWorkflow.On("Trace", mock.Anything, mock.MatchedBy(tt.want)).Return(m.RunSummary{}, nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())

			mockWorkflow.AssertExpectations(t)
		})
	}
}

func TestTraceCmd_BadMode(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"trace", "--mode", "exit", "src"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit")
}

func TestTraceCmd_ExclusiveFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"trace", "--list", "--all", "src"})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_MissingConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "states", "src"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestCmd(t, mockWorkflow)

	path := filepath.Join(t.TempDir(), "hooklens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unlisted: sometimes\n"), 0o600))

	cmd.SetArgs([]string{"-c", path, "states", "src"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestStatesCmd_ExampleShop(t *testing.T) {
	cmd, out := newTestCmd(t, nil)

	cmd.SetArgs([]string{"states", filepath.Join("..", "examples", "shop")})
	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Cart")
	assert.Contains(t, got, "coupon")
	assert.Contains(t, got, "sort")
	assert.NotContains(t, got, "pressed")
	assert.Contains(t, got, "Scanned 4 files, 0 failed")
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(_ *cobra.Command, _ []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	assert.Error(t, rootCmd.Execute())
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.True(t, strings.Contains(string(output), "success"), "output: %s", output)
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	_, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}
