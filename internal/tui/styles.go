package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	app, header, headerNote          lipgloss.Style
	menuItem, menuSel                lipgloss.Style
	listItem, listSel, listMeta      lipgloss.Style
	panel, panelTitle                lipgloss.Style
	fieldLabel, fieldValue           lipgloss.Style
	statusBar, statusSeg, statusHint lipgloss.Style
	inputPrompt, inputHint, inputErr lipgloss.Style
	paneTitle, pane                  lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	panelBorder := lipgloss.NormalBorder()

	return styles{
		app:         base,
		header:      base.Copy().Bold(true).Padding(0, 1),
		headerNote:  base.Copy().Faint(true),
		menuItem:    base.Padding(0, 2),
		menuSel:     base.Copy().Bold(true).Padding(0, 1),
		listItem:    base.Padding(0, 2),
		listSel:     base.Copy().Bold(true).Padding(0, 1),
		listMeta:    base.Copy().Faint(true),
		panel:       base.BorderStyle(panelBorder).Padding(0, 1),
		panelTitle:  base.Copy().Bold(true).Padding(0, 1),
		fieldLabel:  base.Copy().Faint(true),
		fieldValue:  base,
		statusBar:   base.Padding(0, 1),
		statusSeg:   base.Padding(0, 1).MarginRight(1),
		statusHint:  base,
		inputPrompt: base.Copy().Bold(true),
		inputHint:   base.Copy().Faint(true),
		inputErr:    base.Copy().Bold(true),
		paneTitle:   base.Copy().Bold(true).Padding(0, 1),
		pane:        base.BorderStyle(panelBorder).Padding(0, 1),
	}
}
