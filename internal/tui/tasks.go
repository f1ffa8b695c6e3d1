package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/yassink/reclaim/internal/progress"
)

// tasksModel manages the personal checklist: toggle, add, delete.
type tasksModel struct {
	ctx    *appCtx
	width  int
	height int

	cursor int

	formActive bool
	form       *huh.Form

	taskName *string
}

func newTasksModel(ctx *appCtx) tasksModel {
	n := ""
	return tasksModel{ctx: ctx, taskName: &n}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m tasksModel) taskList() []progress.Task {
	return m.ctx.sess.Bundle.Tasks
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	tasks := m.taskList()
	if m.cursor >= len(tasks) {
		m.cursor = max(0, len(tasks)-1)
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Enter), key.Matches(keyMsg, keys.Toggle):
		if len(tasks) > 0 {
			return m.toggle(tasks[m.cursor].ID)
		}
	case key.Matches(keyMsg, keys.Delete):
		if len(tasks) > 0 {
			return m.delete(tasks[m.cursor].ID)
		}
	case key.Matches(keyMsg, keys.New):
		return m.showForm()
	}
	return m, nil
}

func (m tasksModel) toggle(id string) (tasksModel, tea.Cmd) {
	sess := m.ctx.sess
	if err := sess.Apply(progress.ToggleTask(sess.Bundle, id)); err != nil {
		return m, errStatus("save", err)
	}
	return m, nil
}

func (m tasksModel) delete(id string) (tasksModel, tea.Cmd) {
	sess := m.ctx.sess
	if err := sess.Apply(progress.DeleteTask(sess.Bundle, id)); err != nil {
		return m, errStatus("save", err)
	}
	if m.cursor >= len(sess.Bundle.Tasks) && m.cursor > 0 {
		m.cursor--
	}
	return m, nil
}

func (m tasksModel) showForm() (tasksModel, tea.Cmd) {
	*m.taskName = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(m.ctx.cat.NewTask).Value(m.taskName),
		),
	).WithShowHelp(false).WithShowErrors(true)
	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
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

		sess := m.ctx.sess
		if err := sess.Apply(progress.AddTask(sess.Bundle, *m.taskName)); err != nil {
			return m, errStatus("save", err)
		}
		return m, nil
	}

	return m, cmd
}

func (m tasksModel) view() string {
	w := m.width - 4
	cat := m.ctx.cat

	if m.formActive && m.form != nil {
		return activePanelStyle.Width(w).Render(m.form.View())
	}

	var rows []string
	rows = append(rows, titleStyle.Render(cat.Tasks))
	rows = append(rows, mutedStyle.Render("space: toggle  n: new  d: "+strings.ToLower(cat.DeleteTask)))
	rows = append(rows, "")

	tasks := m.taskList()
	if len(tasks) == 0 {
		rows = append(rows, mutedStyle.Render("  "+cat.NewTask))
	}

	for i, t := range tasks {
		check := "[ ]"
		style := normalItemStyle
		if t.Completed {
			check = "[x]"
			style = mutedStyle.Strikethrough(true)
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			if !t.Completed {
				style = selectedItemStyle
			}
		}
		rows = append(rows, style.Render(cursor+check+" "+t.Name))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
