package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yassink/reclaim/internal/export"
	"github.com/yassink/reclaim/internal/i18n"
	"github.com/yassink/reclaim/internal/progress"
	"github.com/yassink/reclaim/internal/session"
	"github.com/yassink/reclaim/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	ctx    *appCtx
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	login   loginModel
	home    homeModel
	history historyModel
	journal journalModel
	tasks   tasksModel

	help    help.Model
	status  string
	errored bool
}

func NewApp(s *store.Store) App {
	h := help.New()
	h.ShowAll = false

	lang := i18n.Normalize(s.Language())
	if lang == "" {
		lang = i18n.LanguageEnglish
	}
	ctx := &appCtx{store: s}
	ctx.setLanguage(lang)

	// Resume the previous session if one was left authenticated.
	if sess, ok := session.Resume(s, ctx.cat.DefaultTasks); ok {
		ctx.sess = sess
	}

	return App{
		ctx:     ctx,
		login:   newLoginModel(ctx),
		home:    newHomeModel(ctx),
		history: newHistoryModel(ctx),
		journal: newJournalModel(ctx),
		tasks:   newTasksModel(ctx),
		help:    h,
	}
}

func (a App) Init() tea.Cmd {
	if a.ctx.sess == nil {
		return a.login.Init()
	}
	return nil
}

func (a App) loggedIn() bool {
	return a.ctx.sess != nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.home.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.journal.setSize(a.width, contentHeight)
		a.tasks.setSize(a.width, contentHeight)
		a.login.setSize(a.width, contentHeight)
		return a, nil

	case loggedInMsg:
		a.ctx.sess = msg.sess
		a.activeView = viewHome
		// Child views carry per-account state (cursors, scroll, month);
		// rebuild them all so nothing leaks across accounts.
		a.home = newHomeModel(a.ctx)
		a.history = newHistoryModel(a.ctx)
		a.journal = newJournalModel(a.ctx)
		a.tasks = newTasksModel(a.ctx)
		contentHeight := a.height - 4
		a.home.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.journal.setSize(a.width, contentHeight)
		a.tasks.setSize(a.width, contentHeight)
		a.status = a.ctx.cat.Welcome + ", " + msg.sess.Bundle.User.Name
		a.errored = false
		return a, nil

	case loggedOutMsg:
		a.ctx.sess = nil
		a.activeView = viewHome
		a.login = newLoginModel(a.ctx)
		a.status = ""
		return a, a.login.Init()

	case statusMsg:
		a.status = msg.text
		a.errored = msg.isError
		return a, nil

	case checkinDoneMsg:
		a.status = msg.notification
		a.errored = false
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.errored = false
		a.exportPicking = false
		return a, nil

	case tea.KeyMsg:
		if !a.loggedIn() {
			return a.updateLogin(msg)
		}

		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// A child form captures all input while open.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Language):
			return a.toggleLanguage()
		case key.Matches(msg, keys.Logout):
			return a.logout()
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewHome
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewHistory
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewJournal
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewTasks
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewCount
			return a, nil
		}
	}

	if !a.loggedIn() {
		return a.updateLogin(msg)
	}
	return a.updateActiveView(msg)
}

func (a App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Language can be switched before logging in.
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Language) {
		return a.toggleLanguage()
	}
	var cmd tea.Cmd
	a.login, cmd = a.login.update(msg)
	return a, cmd
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewHome:
		a.home, cmd = a.home.update(msg)
	case viewHistory:
		a.history, cmd = a.history.update(msg)
	case viewJournal:
		a.journal, cmd = a.journal.update(msg)
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewHome:
		return a.home.formActive
	case viewJournal:
		return a.journal.formActive
	case viewTasks:
		return a.tasks.formActive
	}
	return false
}

func (a App) toggleLanguage() (tea.Model, tea.Cmd) {
	a.ctx.setLanguage(i18n.Toggle(a.ctx.lang))
	if err := a.ctx.store.SetLanguage(a.ctx.lang); err != nil {
		return a, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("save language: %v", err), isError: true}
		}
	}
	// Seeded tasks keep their localized names in the new language.
	if sess := a.ctx.sess; sess != nil {
		if err := sess.Apply(progress.RenameDefaultTasks(sess.Bundle, a.ctx.cat.DefaultTasks)); err != nil {
			return a, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("save: %v", err), isError: true}
			}
		}
	}
	return a, nil
}

func (a App) logout() (tea.Model, tea.Cmd) {
	sess := a.ctx.sess
	return a, func() tea.Msg {
		if err := sess.Close(); err != nil {
			return statusMsg{text: fmt.Sprintf("logout: %v", err), isError: true}
		}
		return loggedOutMsg{}
	}
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if !a.loggedIn() {
		return a.renderLoginScreen()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewHome:
		content = a.home.view()
	case viewHistory:
		content = a.history.view()
	case viewJournal:
		content = a.journal.view()
	case viewTasks:
		content = a.tasks.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderLoginScreen() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render(a.ctx.cat.AppTitle)
	body := a.login.view()
	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.errored {
			style = errorStyle
		}
		status = style.Render(a.status)
	}
	block := lipgloss.JoinVertical(lipgloss.Center, title, "", body, "", status)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, block)
}

func (a App) renderHeader() string {
	names := []string{a.ctx.cat.Home, a.ctx.cat.History, a.ctx.cat.Journal, a.ctx.cat.Tasks}
	var tabs []string
	for i, name := range names {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render(a.ctx.cat.AppTitle)
	user := mutedStyle.Render(a.ctx.cat.Welcome + ", " + a.ctx.sess.Bundle.User.Name)
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", user)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.errored {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	bundle := a.ctx.sess.Bundle
	username := a.ctx.sess.Username
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("reclaim-%s-%s.csv", username, dateStr))
			if err := export.ToCSV(bundle, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("reclaim-%s-%s.json", username, dateStr))
			if err := export.ToJSON(bundle, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
