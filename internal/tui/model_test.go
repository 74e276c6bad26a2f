package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/hdlbench/hdlbench/internal/config"
	"github.com/hdlbench/hdlbench/internal/project"
	"github.com/hdlbench/hdlbench/internal/runner"
)

func newTestModel(t *testing.T) (*Model, *runner.MockRunner, *project.Store) {
	t.Helper()
	s, err := project.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	mock := runner.NewMockRunner()
	m := New(Options{Store: s, Runner: mock, Config: config.Default()})
	return m, mock, s
}

// scriptToolchain makes the mock behave like a working compiler and
// simulator: stage one writes the intermediate, stage two writes the trace.
func scriptToolchain(t *testing.T, mock *runner.MockRunner) {
	t.Helper()
	mock.Results["vvp"] = runner.Result{Stdout: "VCD info: dumpfile opened"}
	mock.OnRun = func(spec runner.Spec) {
		switch spec.Name {
		case "iverilog":
			require.NoError(t, os.WriteFile(filepath.Join(spec.Dir, spec.Args[1]), []byte("bytecode"), 0o644))
		case "vvp":
			name := strings.TrimSuffix(spec.Args[0], ".vvp")
			trace := "$timescale 1ns $end\n$var wire 1 ! clk $end\n#0\n#10\n"
			require.NoError(t, os.WriteFile(filepath.Join(spec.Dir, name+".vcd"), []byte(trace), 0o644))
		}
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// collectMsgs executes a command tree, flattening batches into the messages
// they produce. Worker commands block until their goroutine reports, which
// with the mock runner is immediate.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, collectMsgs(sub)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func buildResultMsg(t *testing.T, cmd tea.Cmd) buildFinishedMsg {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		if b, ok := msg.(buildFinishedMsg); ok {
			return b
		}
	}
	t.Fatal("no build completion message produced")
	return buildFinishedMsg{}
}

func createProject(t *testing.T, m *Model, name string) {
	t.Helper()
	m.Update(keyRunes("n"))
	require.Equal(t, screenCreate, m.screen)
	typeString(m, name)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.screen)
	require.Equal(t, name, m.selected)
}

func compileProject(t *testing.T, m *Model) {
	t.Helper()
	_, cmd := m.Update(keyRunes("c"))
	m.Update(buildResultMsg(t, cmd))
}

func TestMenuNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.Equal(t, screenMenu, m.screen)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenProjects, m.screen)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenMenu, m.screen)
}

func TestCreateCompileViewFlow(t *testing.T) {
	m, mock, s := newTestModel(t)
	scriptToolchain(t, mock)

	createProject(t, m, "adder")
	compileProject(t, m)

	p, err := s.Get("adder")
	require.NoError(t, err)
	require.Equal(t, project.StatusCompiledOk, p.Status)
	require.NotEmpty(t, p.ArtifactPath)
	info, err := os.Stat(p.ArtifactPath)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	require.Equal(t, "build output", m.paneTitle)
	require.NotNil(t, m.traceInfo)
	require.Equal(t, 1, m.traceInfo.SignalCount)

	m.Update(keyRunes("v"))
	starts := mock.Starts()
	require.Len(t, starts, 1)
	require.Equal(t, "gtkwave", starts[0].Name)
	require.Equal(t, []string{p.ArtifactPath}, starts[0].Args)
	require.Equal(t, project.StatusViewing, p.Status)

	// a second view keeps working while the trace stays fresh
	m.Update(keyRunes("v"))
	require.Len(t, mock.Starts(), 2)
}

func TestCompileFailureShowsDiagnostic(t *testing.T) {
	m, mock, s := newTestModel(t)
	mock.Results["iverilog"] = runner.Result{ExitCode: 1, Stderr: "main.v:3: syntax error"}

	createProject(t, m, "bad")
	compileProject(t, m)

	p, err := s.Get("bad")
	require.NoError(t, err)
	require.Equal(t, project.StatusCompileFailed, p.Status)
	require.Empty(t, p.ArtifactPath)
	require.NoFileExists(t, p.ArtifactFile())

	require.Equal(t, "diagnostics", m.paneTitle)
	require.Contains(t, strings.Join(m.paneLines, "\n"), "syntax error")

	for _, run := range mock.Runs() {
		require.NotEqual(t, "vvp", run.Name, "simulator must not run after a failed compile")
	}
}

func TestSecondCompileRequestIgnoredWhileInFlight(t *testing.T) {
	m, mock, _ := newTestModel(t)
	scriptToolchain(t, mock)

	createProject(t, m, "adder")
	_, first := m.Update(keyRunes("c"))
	require.Len(t, m.builds, 1)

	_, second := m.Update(keyRunes("c"))
	require.Nil(t, second)
	require.Len(t, m.builds, 1)
	require.Contains(t, m.toastMessage, "ignored")

	m.Update(buildResultMsg(t, first))
	require.Empty(t, m.builds)

	compiles := 0
	for _, run := range mock.Runs() {
		if run.Name == "iverilog" {
			compiles++
		}
	}
	require.Equal(t, 1, compiles)
}

func TestViewGuardWithoutBuild(t *testing.T) {
	m, mock, _ := newTestModel(t)

	createProject(t, m, "adder")
	m.Update(keyRunes("v"))

	require.Contains(t, m.toastMessage, "compile first")
	require.Empty(t, mock.Starts())
	require.Empty(t, mock.Runs())
}

func TestEditInvalidatesViewEligibility(t *testing.T) {
	m, mock, s := newTestModel(t)
	scriptToolchain(t, mock)

	createProject(t, m, "adder")
	compileProject(t, m)
	mock.Reset()

	m.Update(editorFinishedMsg{project: "adder", editor: "vim"})

	p, err := s.Get("adder")
	require.NoError(t, err)
	require.Equal(t, project.StatusEditing, p.Status)
	require.Empty(t, p.ArtifactPath)

	m.Update(keyRunes("v"))
	require.Contains(t, m.toastMessage, "compile first")
	require.Empty(t, mock.Starts())
}

func TestEditorNonZeroExitStillInvalidates(t *testing.T) {
	m, mock, s := newTestModel(t)
	scriptToolchain(t, mock)

	createProject(t, m, "adder")
	compileProject(t, m)
	mock.Reset()

	// an editor session can save the sources and still exit non-zero
	src := filepath.Join(s.Root(), "adder", "main.v")
	require.NoError(t, os.WriteFile(src, []byte("module adder;\nendmodule\n"), 0o644))
	m.Update(editorFinishedMsg{project: "adder", editor: "vim", err: errors.New("exit status 1")})

	p, err := s.Get("adder")
	require.NoError(t, err)
	require.Equal(t, project.StatusEditing, p.Status)
	require.Empty(t, p.ArtifactPath)
	require.Contains(t, m.toastMessage, "exit status 1")

	m.Update(keyRunes("v"))
	require.Contains(t, m.toastMessage, "compile first")
	require.Empty(t, mock.Starts())
}

func TestCompileToolMissingRestoresStatus(t *testing.T) {
	m, mock, s := newTestModel(t)
	mock.LookPathErr["iverilog"] = runner.ErrToolNotFound

	createProject(t, m, "adder")
	_, cmd := m.Update(keyRunes("c"))
	msg := buildResultMsg(t, cmd)
	require.ErrorIs(t, msg.err, runner.ErrToolNotFound)
	m.Update(msg)

	p, err := s.Get("adder")
	require.NoError(t, err)
	require.Equal(t, project.StatusCreated, p.Status)
	require.Contains(t, m.toastMessage, "not found")
}

func TestCreateFormRejectsDuplicateInline(t *testing.T) {
	m, _, s := newTestModel(t)
	_, err := s.Create("adder")
	require.NoError(t, err)

	m.Update(keyRunes("n"))
	typeString(m, "adder")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenCreate, m.screen)
	require.Contains(t, m.createErr, "already exists")

	// editing the name clears the inline error
	typeString(m, "2")
	require.Empty(t, m.createErr)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.screen)
	require.Equal(t, "adder2", m.selected)
}

func TestCreateFormRejectsInvalidName(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(keyRunes("n"))
	typeString(m, "_lead")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenCreate, m.screen)
	require.NotEmpty(t, m.createErr)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, _, s := newTestModel(t)

	createProject(t, m, "adder")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenProjects, m.screen)

	// any key other than a second d cancels
	m.Update(keyRunes("d"))
	require.Equal(t, "adder", m.confirmDelete)
	m.Update(keyRunes("r"))
	_, err := s.Get("adder")
	require.NoError(t, err)

	m.Update(keyRunes("d"))
	m.Update(keyRunes("d"))
	_, err = s.Get("adder")
	require.ErrorIs(t, err, project.ErrNotFound)
	require.Empty(t, s.List())
	require.NoDirExists(t, filepath.Join(s.Root(), "adder"))
}

func TestLateBuildResultAfterDeleteIsDropped(t *testing.T) {
	m, _, s := newTestModel(t)

	createProject(t, m, "adder")
	_, cmd := m.Update(keyRunes("c"))
	require.Len(t, m.builds, 1)

	// deleting while the compile is in flight drops the handle
	m.Update(keyRunes("d"))
	m.Update(keyRunes("d"))
	require.Empty(t, m.builds)
	_, err := s.Get("adder")
	require.ErrorIs(t, err, project.ErrNotFound)

	// the worker's answer arrives after the project is gone
	m.Update(buildResultMsg(t, cmd))
	require.Equal(t, "adder deleted", m.toastMessage)
	require.Nil(t, m.lastBuild)
	require.Empty(t, m.builds)
}

func TestReplayGuardNeedsIntermediate(t *testing.T) {
	m, _, _ := newTestModel(t)

	createProject(t, m, "adder")
	_, cmd := m.Update(keyRunes("s"))
	require.Nil(t, cmd)
	require.Nil(t, m.sim)
	require.Contains(t, m.toastMessage, "compile first")
}

func TestCleanDropsArtifactAndStatus(t *testing.T) {
	m, mock, s := newTestModel(t)
	scriptToolchain(t, mock)

	createProject(t, m, "adder")
	compileProject(t, m)

	p, err := s.Get("adder")
	require.NoError(t, err)
	artifact := p.ArtifactPath
	require.FileExists(t, artifact)

	m.Update(keyRunes("x"))
	require.NoFileExists(t, artifact)
	require.NoFileExists(t, p.IntermediateFile())
	require.Empty(t, p.ArtifactPath)
	require.Equal(t, project.StatusCreated, p.Status)
	require.Nil(t, m.traceInfo)
}

func TestQuitKeyProducesQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(keyRunes("q"))
	require.True(t, m.quitting)
	var sawQuit bool
	for _, msg := range collectMsgs(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			sawQuit = true
		}
	}
	require.True(t, sawQuit)
	require.Equal(t, "", m.View())
}

func TestResolveEditorPrecedence(t *testing.T) {
	m, mock, _ := newTestModel(t)

	t.Setenv("EDITOR", "")
	m.cfg.Editor = "code --wait"
	parts, err := m.resolveEditor()
	require.NoError(t, err)
	require.Equal(t, []string{"code", "--wait"}, parts)

	m.cfg.Editor = ""
	t.Setenv("EDITOR", "hx")
	parts, err = m.resolveEditor()
	require.NoError(t, err)
	require.Equal(t, []string{"hx"}, parts)

	t.Setenv("EDITOR", "")
	parts, err = m.resolveEditor()
	require.NoError(t, err)
	require.Equal(t, []string{"nvim"}, parts, "probe chain starts at nvim")

	for _, name := range editorProbeChain {
		mock.LookPathErr[name] = runner.ErrToolNotFound
	}
	_, err = m.resolveEditor()
	require.ErrorIs(t, err, runner.ErrToolNotFound)
}

func TestEditorArgsPerFamily(t *testing.T) {
	p := &project.Project{
		Name:     "adder",
		RootPath: "/work/adder",
		SourceFiles: []string{
			"/work/adder/main.v",
			"/work/adder/main_test.v",
		},
	}
	require.Equal(t, []string{".", "--goto", "main.v:1:1"}, editorArgs("code", p))
	require.Equal(t, []string{"-p", "main.v", "main_test.v"}, editorArgs("nvim", p))
	require.Equal(t, []string{"main.v", "main_test.v"}, editorArgs("nano", p))
}

func TestCycleThemePersistsConfig(t *testing.T) {
	m, _, _ := newTestModel(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	m.cfgPath = cfgPath

	createProject(t, m, "adder")
	m.Update(keyRunes("T"))

	require.Equal(t, config.ThemeDark, m.theme)
	saved := config.Load(cfgPath)
	require.Equal(t, "dark", saved.Theme)
}

func TestViewRendersEachScreen(t *testing.T) {
	m, mock, _ := newTestModel(t)
	scriptToolchain(t, mock)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Equal(t, 96, m.pane.Width)

	require.Contains(t, m.View(), "New project")

	createProject(t, m, "adder")
	detail := m.View()
	require.Contains(t, detail, "adder")
	require.Contains(t, detail, "main.v")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Contains(t, m.View(), "Projects (1)")
}
