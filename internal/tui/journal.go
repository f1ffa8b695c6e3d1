package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/yassink/reclaim/internal/progress"
)

// journalModel lists entries newest-first and hosts the new-entry form.
type journalModel struct {
	ctx    *appCtx
	width  int
	height int

	scroll int

	formActive bool
	form       *huh.Form

	entryStatus  *string
	entryContent *string
}

func newJournalModel(ctx *appCtx) journalModel {
	st, c := string(progress.StatusClean), ""
	return journalModel{ctx: ctx, entryStatus: &st, entryContent: &c}
}

func (m *journalModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m journalModel) update(msg tea.Msg) (journalModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.New):
		return m.showForm()
	case key.Matches(keyMsg, keys.Up):
		if m.scroll > 0 {
			m.scroll--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.scroll < len(m.ctx.sess.Bundle.Journal)-1 {
			m.scroll++
		}
	}
	return m, nil
}

func (m journalModel) showForm() (journalModel, tea.Cmd) {
	cat := m.ctx.cat
	*m.entryStatus = string(progress.StatusClean)
	*m.entryContent = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(cat.DailyCheckin).
				Options(
					huh.NewOption("🟢 "+cat.Clean, string(progress.StatusClean)),
					huh.NewOption("🟠 "+cat.Slips, string(progress.StatusSlip)),
					huh.NewOption("🔴 "+cat.Relapses, string(progress.StatusRelapse)),
				).Value(m.entryStatus),
			huh.NewText().
				Title(cat.WriteTitle).
				Value(m.entryContent),
		),
	).WithShowHelp(false).WithShowErrors(true)
	m.formActive = true
	return m, m.form.Init()
}

func (m journalModel) updateForm(msg tea.Msg) (journalModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		return m.addEntry()
	}

	return m, cmd
}

func (m journalModel) addEntry() (journalModel, tea.Cmd) {
	sess := m.ctx.sess
	status, err := progress.ParseStatus(*m.entryStatus)
	if err != nil {
		return m, errStatus("parse status", err)
	}

	title := m.ctx.cat.JournalTitle(status)
	b := progress.AddJournalEntry(sess.Bundle, *m.entryContent, status, title, time.Now())
	if err := sess.Apply(b); err != nil {
		return m, errStatus("save", err)
	}
	m.scroll = 0
	return m, nil
}

func (m journalModel) view() string {
	w := m.width - 4
	cat := m.ctx.cat

	if m.formActive && m.form != nil {
		return activePanelStyle.Width(w).Render(m.form.View())
	}

	entries := m.ctx.sess.Bundle.Journal

	var rows []string
	rows = append(rows, titleStyle.Render(cat.Journal))
	rows = append(rows, mutedStyle.Render("n: "+cat.SaveEntry))
	rows = append(rows, "")

	if len(entries) == 0 {
		rows = append(rows, mutedStyle.Render("  "+cat.WriteTitle))
	}

	visible := max(1, (m.height-8)/4)
	for i := m.scroll; i < min(len(entries), m.scroll+visible); i++ {
		e := entries[i]
		head := lipgloss.JoinHorizontal(lipgloss.Bottom,
			statusStyle(string(e.Status)).Bold(true).Render(e.Title),
			mutedStyle.Render("  "+e.Date.Local().Format("Jan 02, 2006 15:04")),
		)
		rows = append(rows, head)
		rows = append(rows, normalItemStyle.Render(e.Content))
		rows = append(rows, "")
	}

	if len(entries) > m.scroll+visible {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … %d more", len(entries)-m.scroll-visible)))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
