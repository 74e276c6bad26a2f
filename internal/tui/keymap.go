package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	choose     key.Binding
	back       key.Binding
	newProject key.Binding
	refresh    key.Binding
	remove     key.Binding
	edit       key.Binding
	compile    key.Binding
	view       key.Binding
	simulate   key.Binding
	clean      key.Binding
	copyPath   key.Binding
	readme     key.Binding
	theme      key.Binding
	toggleHelp key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		newProject: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new project"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit sources"),
		),
		compile: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compile"),
		),
		view: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view waveform"),
		),
		simulate: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "replay simulation"),
		),
		clean: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clean outputs"),
		),
		copyPath: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy artifact path"),
		),
		readme: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "toggle readme"),
		),
		theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.up,
		k.down,
		k.choose,
		k.back,
		k.toggleHelp,
		k.quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.choose, k.back},
		{k.newProject, k.refresh, k.remove},
		{k.edit, k.compile, k.view, k.simulate},
		{k.clean, k.copyPath, k.readme, k.theme},
		{k.toggleHelp, k.quit},
	}
}
