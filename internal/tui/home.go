package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/yassink/reclaim/internal/progress"
)

// homeModel shows the streak card and hosts the daily check-in, the
// start date editor and the progress reset.
type homeModel struct {
	ctx    *appCtx
	width  int
	height int

	checkinCursor int

	formActive bool
	form       *huh.Form
	formKind   formKind

	startDateInput *string
	resetConfirm   *bool
}

type formKind int

const (
	formNone formKind = iota
	formStartDate
	formReset
)

func newHomeModel(ctx *appCtx) homeModel {
	sd := ""
	rc := false
	return homeModel{ctx: ctx, startDateInput: &sd, resetConfirm: &rc}
}

func (m *homeModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	due := progress.CheckinDue(m.ctx.sess.Bundle.LastCheckin, time.Now())

	switch {
	case key.Matches(keyMsg, keys.Up):
		if due && m.checkinCursor > 0 {
			m.checkinCursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if due && m.checkinCursor < 2 {
			m.checkinCursor++
		}
	case key.Matches(keyMsg, keys.Enter):
		if due {
			return m.recordCheckin(checkinStatuses[m.checkinCursor])
		}
	case key.Matches(keyMsg, keys.ResetCheckin):
		return m.resetCheckin()
	case key.Matches(keyMsg, keys.StartDate):
		return m.showStartDateForm()
	case key.Matches(keyMsg, keys.ResetAll):
		return m.showResetForm()
	}
	return m, nil
}

var checkinStatuses = [3]progress.Status{
	progress.StatusClean,
	progress.StatusSlip,
	progress.StatusRelapse,
}

func (m homeModel) recordCheckin(status progress.Status) (homeModel, tea.Cmd) {
	sess := m.ctx.sess
	now := time.Now()

	b := sess.Bundle
	b.User = progress.RecordCheckin(b.User, status, now)
	checkin := now.UTC().Truncate(time.Second)
	b.LastCheckin = &checkin

	if err := sess.Apply(b); err != nil {
		return m, errStatus("save", err)
	}

	notification := m.ctx.cat.Notifications[status]
	return m, func() tea.Msg {
		return checkinDoneMsg{notification: notification}
	}
}

// resetCheckin clears today's check-in so the prompt shows again.
func (m homeModel) resetCheckin() (homeModel, tea.Cmd) {
	sess := m.ctx.sess
	b := sess.Bundle
	b.LastCheckin = nil
	if err := sess.Apply(b); err != nil {
		return m, errStatus("save", err)
	}
	m.checkinCursor = 0
	return m, nil
}

func (m homeModel) showStartDateForm() (homeModel, tea.Cmd) {
	*m.startDateInput = ""
	if sd := m.ctx.sess.Bundle.User.StartDate; sd != nil {
		*m.startDateInput = sd.Format("2006-01-02")
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(m.ctx.cat.StartDate).
				Description("YYYY-MM-DD, empty to clear").
				Validate(validateDate).
				Value(m.startDateInput),
		),
	).WithShowHelp(false).WithShowErrors(true)
	m.formActive = true
	m.formKind = formStartDate
	return m, m.form.Init()
}

func (m homeModel) showResetForm() (homeModel, tea.Cmd) {
	*m.resetConfirm = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(m.ctx.cat.ResetTitle).
				Description(m.ctx.cat.ResetConfirm).
				Value(m.resetConfirm),
		),
	).WithShowHelp(false)
	m.formActive = true
	m.formKind = formReset
	return m, m.form.Init()
}

func (m homeModel) updateForm(msg tea.Msg) (homeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			m.formKind = formNone
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		kind := m.formKind
		m.formActive = false
		m.form = nil
		m.formKind = formNone

		switch kind {
		case formStartDate:
			return m.applyStartDate(*m.startDateInput)
		case formReset:
			if *m.resetConfirm {
				return m.applyReset()
			}
			// Declined: nothing changes.
			return m, nil
		}
	}

	return m, cmd
}

func (m homeModel) applyStartDate(input string) (homeModel, tea.Cmd) {
	sess := m.ctx.sess
	now := time.Now()

	var date *time.Time
	if input != "" {
		d, err := time.Parse("2006-01-02", input)
		if err != nil {
			return m, errStatus("parse date", err)
		}
		date = &d
	}

	b := sess.Bundle
	b.User = progress.SetStartDate(b.User, date, now)
	if err := sess.Apply(b); err != nil {
		return m, errStatus("save", err)
	}
	return m, nil
}

func (m homeModel) applyReset() (homeModel, tea.Cmd) {
	sess := m.ctx.sess
	b := sess.Bundle
	b.User = progress.ResetProfile(b.User)
	b.LastCheckin = nil
	if err := sess.Apply(b); err != nil {
		return m, errStatus("save", err)
	}
	m.checkinCursor = 0
	return m, nil
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func errStatus(op string, err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("%s: %v", op, err), isError: true}
	}
}

func (m homeModel) view() string {
	w := m.width - 4
	cat := m.ctx.cat
	user := m.ctx.sess.Bundle.User

	if m.formActive && m.form != nil {
		return activePanelStyle.Width(w).Render(m.form.View())
	}

	streak := streakStyle.Render(strconv.Itoa(user.CurrentStreak))
	header := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(cat.CleanDays),
		streak,
	)

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard(cat.BestStreak, strconv.Itoa(user.BestStreak), titleStyle),
		statCard(cat.StartDate, formatDay(user.StartDate), titleStyle),
		statCard(cat.Slips, strconv.Itoa(user.Slips), slipStyle),
		statCard(cat.Relapses, strconv.Itoa(user.Relapses), relapseStyle),
	)

	var checkin string
	if progress.CheckinDue(m.ctx.sess.Bundle.LastCheckin, time.Now()) {
		labels := [3]string{cat.StayedClean, cat.HadSlip, cat.HadRelapse}
		var rows []string
		rows = append(rows, titleStyle.Render(cat.DailyCheckin))
		rows = append(rows, "")
		for i, label := range labels {
			cursor := "  "
			style := statusStyle(string(checkinStatuses[i]))
			if i == m.checkinCursor {
				cursor = "> "
				style = style.Bold(true)
			}
			rows = append(rows, style.Render(cursor+label))
		}
		checkin = activePanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	} else {
		checkin = panelStyle.Render(mutedStyle.Render("r: " + cat.ResetCheckin))
	}

	hint := mutedStyle.Render("s: " + cat.StartDate + "  R: " + cat.ResetTitle)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", stats, "", checkin, "", hint),
	)
}

func statCard(label, value string, style lipgloss.Style) string {
	return panelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center,
			mutedStyle.Render(label),
			style.Render(value),
		),
	)
}
