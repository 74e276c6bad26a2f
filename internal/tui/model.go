// Package tui is the interactive session: a single Bubble Tea event loop
// owning all session state. Long operations run in worker goroutines and
// report back as messages; the loop itself never blocks on a process.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hdlbench/hdlbench/internal/build"
	"github.com/hdlbench/hdlbench/internal/config"
	"github.com/hdlbench/hdlbench/internal/eventlog"
	"github.com/hdlbench/hdlbench/internal/project"
	"github.com/hdlbench/hdlbench/internal/runner"
	"github.com/hdlbench/hdlbench/internal/wave"
)

type screen int

const (
	screenMenu screen = iota
	screenProjects
	screenCreate
	screenDetail
)

const (
	menuNew = iota
	menuOpen
	menuQuit
)

var menuItems = []string{"New project", "Open project", "Quit"}

// editorProbeChain is tried in order when neither the config nor $EDITOR
// names an editor.
var editorProbeChain = []string{"nvim", "vim", "emacs", "code", "codium", "nano", "gedit", "kate"}

// buildHandle tracks one outstanding compile worker. prev is the status to
// restore when the invocation itself fails before producing a result.
type buildHandle struct {
	cancel context.CancelFunc
	prev   project.Status
}

// Options wires the session's collaborators. Everything is injected; the
// model owns no globals.
type Options struct {
	Store  *project.Store
	Runner runner.Runner
	Config config.Config
	// ConfigPath, when set, is where theme changes are persisted.
	ConfigPath string
	Events     *eventlog.Logger
}

// Model is the session state machine. It is the only writer of project
// state while the loop runs; workers get value snapshots and answer with
// messages.
type Model struct {
	width  int
	height int

	styles styles
	keys   keyMap
	help   help.Model

	store    *project.Store
	runner   runner.Runner
	compiler *build.Compiler
	launcher *wave.Launcher
	events   *eventlog.Logger
	cfg      config.Config
	cfgPath  string

	screen     screen
	backScreen screen
	menuIndex  int
	listIndex  int
	selected   string

	nameInput textinput.Model
	createErr string

	spinner spinner.Model

	builds map[string]*buildHandle
	sim    *simJob

	lastBuild    *build.Result
	lastBuildFor string

	pane      viewport.Model
	paneTitle string
	paneLines []string

	showReadme bool
	readmeRaw  string
	theme      config.Theme

	traceInfo *wave.Info

	confirmDelete string

	toastMessage string
	toastExpires time.Time

	quitting bool
}

func New(opts Options) *Model {
	cfg := opts.Config
	theme := config.ParseTheme(cfg.Theme)
	setMarkdownTheme(theme)

	m := &Model{
		styles:   newStyles(),
		keys:     newKeyMap(),
		help:     help.New(),
		store:    opts.Store,
		runner:   opts.Runner,
		compiler: build.New(opts.Runner, cfg.Compiler, cfg.Simulator),
		launcher: wave.NewLauncher(opts.Runner, cfg.Viewer),
		events:   opts.Events,
		cfg:      cfg,
		cfgPath:  opts.ConfigPath,
		theme:    theme,
		builds:   make(map[string]*buildHandle),
	}

	m.help.ShortSeparator = " │ "
	m.help.Styles.ShortKey = m.styles.statusHint.Copy()
	m.help.Styles.ShortDesc = m.styles.statusHint.Copy()
	m.help.Styles.FullKey = m.styles.statusHint.Copy()
	m.help.Styles.FullDesc = m.styles.statusHint.Copy()

	m.nameInput = textinput.New()
	m.nameInput.Prompt = "> "
	m.nameInput.Placeholder = "counter"
	m.nameInput.CharLimit = 64

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.spinner.Style = m.styles.statusHint.Copy().Bold(true)

	m.pane = viewport.New(78, 12)

	return m
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	switch message := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.applyLayout()
	case buildFinishedMsg:
		m.handleBuildFinished(message)
	case simMsg:
		if cmd := m.handleSimMessage(message); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case editorFinishedMsg:
		m.handleEditorFinished(message)
	case tea.KeyMsg:
		model, cmd := m.handleKey(message)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return model, tea.Batch(cmds...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) applyLayout() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	h := m.height - 14
	if h < 4 {
		h = 4
	}
	m.pane.Width = w
	m.pane.Height = h
	m.help.Width = m.width
	setMarkdownWordWrap(w)
	if m.showReadme {
		m.renderReadme()
	}
}

// --- key routing ---

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenCreate {
		return m.handleCreateKey(msg)
	}

	// a pending delete consumes the next keypress
	if m.confirmDelete != "" {
		name := m.confirmDelete
		m.confirmDelete = ""
		if key.Matches(msg, m.keys.remove) {
			m.deleteProject(name)
		} else {
			m.setToast("delete cancelled", 3*time.Second)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenProjects:
		return m.handleProjectsKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case key.Matches(msg, m.keys.down):
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case key.Matches(msg, m.keys.newProject):
		return m, m.openCreate(screenMenu)
	case key.Matches(msg, m.keys.back):
		return m, m.quit()
	case key.Matches(msg, m.keys.choose):
		switch m.menuIndex {
		case menuNew:
			return m, m.openCreate(screenMenu)
		case menuOpen:
			m.gotoProjects()
		case menuQuit:
			return m, m.quit()
		}
	}
	return m, nil
}

func (m *Model) handleProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.up):
		if m.listIndex > 0 {
			m.listIndex--
		}
	case key.Matches(msg, m.keys.down):
		if m.listIndex < len(m.store.List())-1 {
			m.listIndex++
		}
	case key.Matches(msg, m.keys.newProject):
		return m, m.openCreate(screenProjects)
	case key.Matches(msg, m.keys.refresh):
		if err := m.store.Refresh(); err != nil {
			m.setToast("refresh: "+err.Error(), 5*time.Second)
		} else {
			m.setToast("project list refreshed", 3*time.Second)
		}
		m.clampList()
	case key.Matches(msg, m.keys.remove):
		if p := m.listSelection(); p != nil {
			m.confirmDelete = p.Name
			m.setToast("press d again to delete "+p.Name, 6*time.Second)
		}
	case key.Matches(msg, m.keys.back):
		m.screen = screenMenu
	case key.Matches(msg, m.keys.choose):
		if p := m.listSelection(); p != nil {
			m.openDetail(p.Name)
		}
	}
	return m, nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, err := m.store.Get(m.selected)
	if err != nil {
		m.setToast(storeErrText(err), 5*time.Second)
		m.gotoProjects()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.back):
		m.gotoProjects()
	case key.Matches(msg, m.keys.edit):
		return m, m.startEdit(p)
	case key.Matches(msg, m.keys.compile):
		return m, m.startCompile(p)
	case key.Matches(msg, m.keys.view):
		m.launchViewer(p)
	case key.Matches(msg, m.keys.simulate):
		return m, m.startReplay(p)
	case key.Matches(msg, m.keys.clean):
		m.cleanProject(p)
	case key.Matches(msg, m.keys.copyPath):
		m.copyArtifactPath(p)
	case key.Matches(msg, m.keys.readme):
		m.toggleReadme(p)
	case key.Matches(msg, m.keys.theme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.refresh):
		if refreshed, err := m.store.Open(p.Name); err == nil {
			m.refreshTraceInfo(refreshed)
			m.setToast("project re-synced", 3*time.Second)
		}
	case key.Matches(msg, m.keys.remove):
		m.confirmDelete = p.Name
		m.setToast("press d again to delete "+p.Name, 6*time.Second)
	case key.Matches(msg, m.keys.up), key.Matches(msg, m.keys.down):
		var cmd tea.Cmd
		m.pane, cmd = m.pane.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, m.quit()
	case tea.KeyEsc:
		m.nameInput.Blur()
		m.createErr = ""
		m.screen = m.backScreen
		return m, nil
	case tea.KeyEnter:
		m.submitCreate()
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.createErr = ""
	return m, cmd
}

// --- navigation ---

func (m *Model) openCreate(back screen) tea.Cmd {
	m.backScreen = back
	m.screen = screenCreate
	m.createErr = ""
	m.nameInput.SetValue("")
	return m.nameInput.Focus()
}

func (m *Model) gotoProjects() {
	if err := m.store.Refresh(); err != nil {
		m.setToast("refresh: "+err.Error(), 5*time.Second)
	}
	m.clampList()
	m.showReadme = false
	m.screen = screenProjects
}

func (m *Model) openDetail(name string) {
	p, err := m.store.Open(name)
	if err != nil {
		m.setToast(storeErrText(err), 5*time.Second)
		_ = m.store.Refresh()
		m.clampList()
		return
	}
	m.selected = p.Name
	m.screen = screenDetail
	m.showReadme = false
	if m.lastBuildFor != p.Name {
		m.resetPane()
	}
	m.refreshTraceInfo(p)
	m.emit("open", p.Name, "")
}

func (m *Model) clampList() {
	if n := len(m.store.List()); m.listIndex >= n {
		m.listIndex = n - 1
	}
	if m.listIndex < 0 {
		m.listIndex = 0
	}
}

func (m *Model) listSelection() *project.Project {
	list := m.store.List()
	if m.listIndex < 0 || m.listIndex >= len(list) {
		return nil
	}
	return list[m.listIndex]
}

// --- create ---

func (m *Model) submitCreate() {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		m.createErr = "name must not be empty"
		return
	}
	p, err := m.store.Create(name)
	if err != nil {
		m.createErr = createErrText(err)
		return
	}
	m.emit("create", p.Name, "")
	m.nameInput.Blur()
	m.selected = p.Name
	m.screen = screenDetail
	m.showReadme = false
	m.resetPane()
	m.traceInfo = nil
	m.setToast("project scaffolded at "+p.RootPath, 5*time.Second)
}

// --- compile ---

func (m *Model) startCompile(p *project.Project) tea.Cmd {
	if _, busy := m.builds[p.Name]; busy {
		m.setToast("compile already running for "+p.Name+"; request ignored", 4*time.Second)
		return nil
	}
	if len(p.SourceFiles) == 0 {
		m.setToast("nothing to compile; the project has no .v sources", 5*time.Second)
		return nil
	}

	in := build.Input{
		Name:    p.Name,
		Root:    p.RootPath,
		Sources: append([]string(nil), p.SourceFiles...),
	}
	prev := p.Status
	_ = m.store.SetStatus(p.Name, project.StatusCompiling)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan buildFinishedMsg, 1)
	m.builds[p.Name] = &buildHandle{cancel: cancel, prev: prev}
	m.emit("compile_started", p.Name, fmt.Sprintf("sources=%d", len(in.Sources)))

	compiler := m.compiler
	go func() {
		res, err := compiler.Compile(ctx, in)
		done <- buildFinishedMsg{project: in.Name, result: res, err: err}
	}()
	return tea.Batch(m.spinner.Tick, waitForBuild(done))
}

// waitForBuild blocks until the worker reports; the channel is buffered so
// the worker never waits on the loop.
func waitForBuild(done <-chan buildFinishedMsg) tea.Cmd {
	return func() tea.Msg {
		return <-done
	}
}

func (m *Model) handleBuildFinished(msg buildFinishedMsg) {
	h, ok := m.builds[msg.project]
	if !ok {
		return
	}
	h.cancel()
	delete(m.builds, msg.project)
	if m.quitting {
		return
	}

	if msg.err != nil {
		_ = m.store.SetStatus(msg.project, h.prev)
		m.emit("compile_finished", msg.project, "error="+msg.err.Error())
		m.setToast(invocationErrText(msg.err), 6*time.Second)
		return
	}

	res := msg.result
	m.lastBuild = res
	m.lastBuildFor = msg.project
	m.emit("compile_finished", msg.project, fmt.Sprintf("ok=%t exit=%d elapsed=%s", res.OK(), res.ExitCode, formatElapsed(res.Elapsed)))

	if res.OK() {
		_ = m.store.ApplyBuild(msg.project, res.ArtifactPath)
		m.setToast(fmt.Sprintf("%s compiled in %s", msg.project, formatElapsed(res.Elapsed)), 5*time.Second)
	} else {
		_ = m.store.ApplyBuild(msg.project, "")
		m.setToast(fmt.Sprintf("%s failed (exit %d)", msg.project, res.ExitCode), 6*time.Second)
	}

	if msg.project == m.selected {
		m.showReadme = false
		m.restoreBuildPane()
		if p, err := m.store.Get(msg.project); err == nil {
			m.refreshTraceInfo(p)
		}
	}
}

// --- edit ---

func (m *Model) startEdit(p *project.Project) tea.Cmd {
	if _, busy := m.builds[p.Name]; busy {
		m.setToast("wait for the compile to finish before editing", 4*time.Second)
		return nil
	}
	if len(p.SourceFiles) == 0 {
		m.setToast("no sources to edit", 4*time.Second)
		return nil
	}
	parts, err := m.resolveEditor()
	if err != nil {
		m.setToast("no editor found; set $EDITOR or the editor config key", 6*time.Second)
		return nil
	}
	args := append(parts[1:], editorArgs(parts[0], p)...)
	cmd := exec.Command(parts[0], args...)
	cmd.Dir = p.RootPath

	name := p.Name
	editor := parts[0]
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{project: name, editor: editor, err: err}
	})
}

// resolveEditor picks the editor command: config value, then $EDITOR, then
// the first probe chain entry present on $PATH.
func (m *Model) resolveEditor() ([]string, error) {
	if v := strings.TrimSpace(m.cfg.Editor); v != "" {
		return strings.Fields(v), nil
	}
	if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		return strings.Fields(v), nil
	}
	for _, name := range editorProbeChain {
		if _, err := m.runner.LookPath(name); err == nil {
			return []string{name}, nil
		}
	}
	return nil, fmt.Errorf("editor: %w", runner.ErrToolNotFound)
}

// editorArgs shapes the argument list per editor family: GUI editors open
// the project directory, vim opens the sources as tabs, everything else
// gets the plain file list. Paths are relative; the command runs in the
// project root.
func editorArgs(editor string, p *project.Project) []string {
	var files []string
	for _, src := range p.SourceFiles {
		files = append(files, filepath.Base(src))
	}
	switch filepath.Base(editor) {
	case "code", "codium":
		return []string{".", "--goto", files[0] + ":1:1"}
	case "vim", "nvim":
		return append([]string{"-p"}, files...)
	default:
		return files
	}
}

func (m *Model) handleEditorFinished(msg editorFinishedMsg) {
	// An editor can write sources and still exit non-zero, so the build is
	// invalidated on every return, not just clean exits.
	if err := m.store.RecordSourceEdit(msg.project); err != nil {
		m.setToast(storeErrText(err), 5*time.Second)
		return
	}
	m.emit("edit", msg.project, msg.editor)
	m.traceInfo = nil
	if msg.err != nil {
		m.setToast("editor: "+msg.err.Error(), 6*time.Second)
		return
	}
	m.setToast("sources updated; compile to rebuild the trace", 5*time.Second)
}

// --- view ---

func (m *Model) launchViewer(p *project.Project) {
	if p.ArtifactPath == "" || (p.Status != project.StatusCompiledOk && p.Status != project.StatusViewing) {
		m.setToast("no fresh trace; compile first", 5*time.Second)
		return
	}
	if err := m.launcher.View(p.ArtifactPath); err != nil {
		m.setToast(viewErrText(err), 6*time.Second)
		return
	}
	_ = m.store.SetStatus(p.Name, project.StatusViewing)
	m.emit("view", p.Name, p.ArtifactPath)
	m.setToast("viewer launched on "+filepath.Base(p.ArtifactPath), 4*time.Second)
}

// --- replay ---

func (m *Model) startReplay(p *project.Project) tea.Cmd {
	if m.sim != nil {
		m.setToast("a replay is already running", 4*time.Second)
		return nil
	}
	vvpFile := p.IntermediateFile()
	if _, err := os.Stat(vvpFile); err != nil {
		m.setToast("no simulation build to replay; compile first", 5*time.Second)
		return nil
	}
	job, cmd := startSim(p.Name, p.RootPath, m.cfg.Simulator, []string{filepath.Base(vvpFile)})
	m.sim = job
	m.showReadme = false
	m.setPane("replay "+p.Name, "")
	m.emit("simulate", p.Name, filepath.Base(vvpFile))
	return tea.Batch(m.spinner.Tick, cmd)
}

func (m *Model) handleSimMessage(msg simMsg) tea.Cmd {
	switch message := msg.(type) {
	case simStartedMsg:
		m.appendPane("[replay] " + message.project + " started")
	case simLineMsg:
		m.appendPane(message.line)
	case simFinishedMsg:
		if message.err != nil {
			m.appendPane("[replay] finished: " + message.err.Error())
		} else {
			m.appendPane("[replay] finished")
		}
	case simClosedMsg:
		m.sim = nil
	}
	if m.sim == nil || m.quitting {
		return nil
	}
	return waitForSimMsg(m.sim.ch)
}

// --- detail extras ---

func (m *Model) cleanProject(p *project.Project) {
	if _, busy := m.builds[p.Name]; busy {
		m.setToast("compile in flight; clean afterwards", 4*time.Second)
		return
	}
	if err := m.store.Clean(p.Name); err != nil {
		m.setToast("clean: "+err.Error(), 5*time.Second)
		return
	}
	m.traceInfo = nil
	if m.lastBuildFor == p.Name {
		m.lastBuild = nil
		m.lastBuildFor = ""
	}
	m.showReadme = false
	m.resetPane()
	m.emit("clean", p.Name, "")
	m.setToast("generated files removed", 4*time.Second)
}

func (m *Model) copyArtifactPath(p *project.Project) {
	if p.ArtifactPath == "" {
		m.setToast("no artifact to copy; compile first", 4*time.Second)
		return
	}
	if err := clipboard.WriteAll(p.ArtifactPath); err != nil {
		m.setToast("clipboard unavailable", 4*time.Second)
		return
	}
	m.setToast("artifact path copied", 3*time.Second)
}

func (m *Model) toggleReadme(p *project.Project) {
	if m.showReadme {
		m.showReadme = false
		m.restoreBuildPane()
		return
	}
	raw, err := os.ReadFile(filepath.Join(p.RootPath, "README.md"))
	if err != nil {
		m.setToast("no README.md in this project", 4*time.Second)
		return
	}
	m.readmeRaw = string(raw)
	m.showReadme = true
	m.renderReadme()
}

func (m *Model) renderReadme() {
	if !m.showReadme {
		return
	}
	m.paneTitle = "README.md (" + m.theme.String() + ")"
	m.paneLines = nil
	m.pane.SetContent(renderMarkdown(m.readmeRaw))
	m.pane.GotoTop()
}

func (m *Model) cycleTheme() {
	m.theme = m.theme.Next()
	setMarkdownTheme(m.theme)
	if m.showReadme {
		m.renderReadme()
	}
	m.cfg.Theme = m.theme.String()
	if m.cfgPath != "" {
		if err := config.Save(m.cfg, m.cfgPath); err != nil {
			m.setToast("theme not persisted: "+err.Error(), 4*time.Second)
			return
		}
	}
	m.setToast("markdown theme: "+m.theme.String(), 3*time.Second)
}

func (m *Model) deleteProject(name string) {
	if err := m.store.Delete(name); err != nil {
		m.setToast(storeErrText(err), 5*time.Second)
		return
	}
	// the handle goes too, so the worker's late message is discarded
	// rather than touching a project that no longer exists
	if h, ok := m.builds[name]; ok {
		h.cancel()
		delete(m.builds, name)
	}
	m.emit("delete", name, "")
	if m.selected == name {
		m.selected = ""
		m.screen = screenProjects
	}
	if m.lastBuildFor == name {
		m.lastBuild = nil
		m.lastBuildFor = ""
	}
	m.traceInfo = nil
	m.clampList()
	m.setToast(name+" deleted", 4*time.Second)
}

// --- pane ---

func (m *Model) setPane(title, content string) {
	m.paneTitle = title
	content = strings.TrimRight(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if content == "" {
		m.paneLines = nil
	} else {
		m.paneLines = strings.Split(content, "\n")
	}
	m.pane.SetContent(strings.Join(m.paneLines, "\n"))
	m.pane.GotoTop()
}

func (m *Model) appendPane(line string) {
	m.paneLines = append(m.paneLines, line)
	m.pane.SetContent(strings.Join(m.paneLines, "\n"))
	m.pane.GotoBottom()
}

func (m *Model) resetPane() {
	m.paneTitle = ""
	m.paneLines = nil
	m.pane.SetContent("")
}

// restoreBuildPane re-shows the selected project's last outcome: the
// diagnostic on failure, the simulator output on success.
func (m *Model) restoreBuildPane() {
	if m.lastBuild != nil && m.lastBuildFor == m.selected {
		if m.lastBuild.OK() {
			out := strings.TrimSpace(m.lastBuild.Stdout)
			if out == "" {
				out = "(no simulator output)"
			}
			m.setPane("build output", out)
		} else {
			m.setPane("diagnostics", m.lastBuild.Diagnostic())
		}
		return
	}
	m.resetPane()
}

func (m *Model) refreshTraceInfo(p *project.Project) {
	m.traceInfo = nil
	if p == nil || p.ArtifactPath == "" {
		return
	}
	if info, err := wave.Probe(p.ArtifactPath); err == nil {
		m.traceInfo = &info
	}
}

// --- quit ---

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	for _, h := range m.builds {
		h.cancel()
	}
	if m.sim != nil {
		m.sim.cancel()
	}
	m.emit("quit", "", fmt.Sprintf("builds_cancelled=%d", len(m.builds)))
	return tea.Quit
}

// --- helpers ---

func (m *Model) emit(event, proj, detail string) {
	if m.events == nil {
		return
	}
	m.events.Emit(event, proj, detail)
}

func (m *Model) setToast(msg string, duration time.Duration) {
	trimmed := strings.TrimSpace(msg)
	if trimmed == "" {
		m.toastMessage = ""
		m.toastExpires = time.Time{}
		return
	}
	if duration <= 0 {
		duration = 5 * time.Second
	}
	m.toastMessage = trimmed
	m.toastExpires = time.Now().Add(duration)
}

func createErrText(err error) string {
	switch {
	case errors.Is(err, project.ErrInvalidName):
		return "names use letters, digits, '-' and '_', not starting with a symbol"
	case errors.Is(err, project.ErrDuplicateName):
		return "a project with that name already exists"
	default:
		return err.Error()
	}
}

func storeErrText(err error) string {
	if errors.Is(err, project.ErrNotFound) {
		return "project vanished; list refreshed"
	}
	return err.Error()
}

func invocationErrText(err error) string {
	switch {
	case errors.Is(err, runner.ErrToolNotFound):
		return "compiler not found; install iverilog or adjust the config"
	case errors.Is(err, context.Canceled):
		return "compile cancelled"
	default:
		return "compile: " + err.Error()
	}
}

func viewErrText(err error) string {
	switch {
	case errors.Is(err, wave.ErrArtifactMissing):
		return "trace file missing; compile first"
	case errors.Is(err, wave.ErrArtifactEmpty):
		return "trace file is empty; run a full compile"
	case errors.Is(err, runner.ErrToolNotFound):
		return "viewer not found; install gtkwave or adjust the config"
	default:
		return "view: " + err.Error()
	}
}

func formatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
