package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case screenMenu:
		body = m.menuView()
	case screenProjects:
		body = m.projectsView()
	case screenCreate:
		body = m.createView()
	case screenDetail:
		body = m.detailView()
	}

	sections := []string{
		m.headerView(),
		body,
		m.statusBarView(),
		m.help.View(m.keys),
	}
	return m.styles.app.Render(strings.Join(sections, "\n"))
}

func (m *Model) headerView() string {
	title := m.styles.header.Render("hdlbench")
	note := m.styles.headerNote.Render(m.store.Root())
	return lipgloss.JoinHorizontal(lipgloss.Center, title, note)
}

func (m *Model) menuView() string {
	var b strings.Builder
	b.WriteString(m.styles.panelTitle.Render("Manage Verilog projects"))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		if i == m.menuIndex {
			b.WriteString(m.styles.menuSel.Render("▸ " + item))
		} else {
			b.WriteString(m.styles.menuItem.Render(item))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) projectsView() string {
	list := m.store.List()
	var b strings.Builder
	b.WriteString(m.styles.panelTitle.Render(fmt.Sprintf("Projects (%d)", len(list))))
	b.WriteString("\n\n")
	if len(list) == 0 {
		b.WriteString(m.styles.listItem.Render("No projects yet. Press n to create one."))
		b.WriteString("\n")
		return b.String()
	}
	for i, p := range list {
		marker := " "
		if p.ArtifactPath != "" {
			marker = "●"
		}
		row := fmt.Sprintf("%s %-24s %-16s %s", marker, p.Name, p.Status.Title(), p.CreatedAt.Format("2006-01-02 15:04"))
		if i == m.listIndex {
			b.WriteString(m.styles.listSel.Render("▸ " + row))
		} else {
			b.WriteString(m.styles.listItem.Render(row))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.listMeta.Render("● has a fresh trace"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) createView() string {
	var b strings.Builder
	b.WriteString(m.styles.panelTitle.Render("New project"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.inputPrompt.Render("Project name"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	if m.createErr != "" {
		b.WriteString(m.styles.inputErr.Render(m.createErr))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.inputHint.Render("letters, digits, '-' and '_'; enter creates the scaffold, esc cancels"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) detailView() string {
	p, err := m.store.Get(m.selected)
	if err != nil {
		return m.styles.listItem.Render("project unavailable; press esc to go back")
	}

	status := p.Status.Title()
	if _, busy := m.builds[p.Name]; busy {
		status = m.spinner.View() + " " + status
	}

	var sources string
	if len(p.SourceFiles) == 0 {
		sources = "(none)"
	} else {
		names := make([]string, 0, len(p.SourceFiles))
		for _, src := range p.SourceFiles {
			names = append(names, filepath.Base(src))
		}
		sources = strings.Join(names, ", ")
	}

	artifact := "-"
	if p.ArtifactPath != "" {
		artifact = p.ArtifactPath
	}

	rows := []string{
		m.fieldView("Name", p.Name),
		m.fieldView("Path", p.RootPath),
		m.fieldView("Status", status),
		m.fieldView("Sources", sources),
		m.fieldView("Artifact", artifact),
		m.fieldView("Created", p.CreatedAt.Format("2006-01-02 15:04:05")),
	}
	if st, err := m.store.Stats(p.Name); err == nil && st.FileCount > 0 {
		rows = append(rows, m.fieldView("Contents", fmt.Sprintf("%d files, %s, modified %s",
			st.FileCount, formatSize(st.TotalSize), st.LastModified.Format("15:04:05"))))
	}
	if m.traceInfo != nil {
		rows = append(rows, m.fieldView("Trace", m.traceInfo.String()))
	}

	panel := m.styles.panel.Render(strings.Join(rows, "\n"))
	if m.paneTitle == "" {
		return panel
	}
	return strings.Join([]string{
		panel,
		m.styles.paneTitle.Render(m.paneTitle),
		m.styles.pane.Render(m.pane.View()),
	}, "\n")
}

func (m *Model) fieldView(label, value string) string {
	return m.styles.fieldLabel.Render(fmt.Sprintf("%-10s", label)) + m.styles.fieldValue.Render(value)
}

func (m *Model) statusBarView() string {
	segments := []string{
		m.styles.statusSeg.Render(m.screenTitle()),
		m.styles.statusSeg.Render(fmt.Sprintf("Projects: %d", len(m.store.List()))),
	}
	if n := len(m.builds); n > 0 {
		segments = append(segments, m.styles.statusSeg.Render(fmt.Sprintf("%s building: %d", m.spinner.View(), n)))
	}
	if m.sim != nil {
		segments = append(segments, m.styles.statusSeg.Render("replay running"))
	}
	if m.toastMessage != "" {
		if time.Now().After(m.toastExpires) {
			m.toastMessage = ""
		} else {
			segments = append(segments, m.styles.statusSeg.Render(m.toastMessage))
		}
	}
	content := strings.Join(segments, "│")
	bar := m.styles.statusBar
	if m.width > 0 {
		bar = bar.Width(m.width)
	}
	return bar.Render(content)
}

func (m *Model) screenTitle() string {
	switch m.screen {
	case screenMenu:
		return "Menu"
	case screenProjects:
		return "Projects"
	case screenCreate:
		return "New project"
	case screenDetail:
		return m.selected
	}
	return ""
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
