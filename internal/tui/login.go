package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/yassink/reclaim/internal/auth"
	"github.com/yassink/reclaim/internal/session"
)

type loginModel struct {
	ctx    *appCtx
	width  int
	height int

	form *huh.Form

	// Form values as pointers (survive value copies)
	username *string
	password *string
}

func newLoginModel(ctx *appCtx) loginModel {
	u, p := "", ""
	m := loginModel{ctx: ctx, username: &u, password: &p}
	m.form = m.newForm()
	return m
}

func (m loginModel) newForm() *huh.Form {
	cat := m.ctx.cat
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(cat.Username).Value(m.username),
			huh.NewInput().Title(cat.Password).EchoMode(huh.EchoModePassword).Value(m.password),
		).Title(cat.Login),
	).WithShowHelp(false).WithShowErrors(true)
}

func (m loginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *loginModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		username, password := *m.username, *m.password
		ctx := m.ctx

		// Re-arm the form so a failed attempt can retry.
		*m.password = ""
		m.form = m.newForm()

		return m, tea.Batch(m.form.Init(), func() tea.Msg {
			user, seed, err := auth.Login(username, password)
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return statusMsg{text: ctx.cat.BadLogin, isError: true}
			}
			sess, err := session.Open(ctx.store, user, seed, ctx.cat.DefaultTasks)
			if err != nil {
				return statusMsg{text: fmt.Sprintf("open session: %v", err), isError: true}
			}
			return loggedInMsg{sess: sess}
		})
	}

	return m, cmd
}

func (m loginModel) view() string {
	return m.form.View()
}
