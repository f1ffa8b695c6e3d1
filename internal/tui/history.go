package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yassink/reclaim/internal/progress"
)

// historyModel renders one month of day records as a calendar grid.
// Moving the cursor and pressing enter cycles the selected day through
// the status cycle; [ and ] switch months.
type historyModel struct {
	ctx    *appCtx
	width  int
	height int

	month  time.Time // first day of the displayed month
	cursor int       // zero-based day of month under the cursor
}

func newHistoryModel(ctx *appCtx) historyModel {
	now := time.Now().UTC()
	return historyModel{
		ctx:    ctx,
		month:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		cursor: now.Day() - 1,
	}
}

func (m *historyModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m historyModel) daysInMonth() int {
	return m.month.AddDate(0, 1, -1).Day()
}

func (m historyModel) cursorDate() time.Time {
	return m.month.AddDate(0, 0, m.cursor)
}

func (m historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Right):
		if m.cursor < m.daysInMonth()-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Up):
		if m.cursor >= 7 {
			m.cursor -= 7
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor+7 < m.daysInMonth() {
			m.cursor += 7
		}
	case key.Matches(keyMsg, keys.PrevMonth):
		m.month = m.month.AddDate(0, -1, 0)
		m.cursor = min(m.cursor, m.daysInMonth()-1)
	case key.Matches(keyMsg, keys.NextMonth):
		m.month = m.month.AddDate(0, 1, 0)
		m.cursor = min(m.cursor, m.daysInMonth()-1)
	case key.Matches(keyMsg, keys.Enter):
		return m.cycleDay()
	}
	return m, nil
}

func (m historyModel) cycleDay() (historyModel, tea.Cmd) {
	sess := m.ctx.sess
	b := sess.Bundle
	b.DayRecords = progress.CycleDayStatus(b.DayRecords, m.cursorDate())
	if err := sess.Apply(b); err != nil {
		return m, errStatus("save", err)
	}
	return m, nil
}

func (m historyModel) view() string {
	w := m.width - 4
	cat := m.ctx.cat

	monthLabel := titleStyle.Render(fmt.Sprintf("%s %s %d", cat.ProgressFor, m.month.Month(), m.month.Year()))
	nav := mutedStyle.Render("[ / ]: month  ←↑↓→: day  enter: cycle status")

	calendar := m.renderCalendar()
	stats := m.renderMonthStats()
	chart := m.renderChart()

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, monthLabel, "", calendar, "", stats, "", chart, "", nav),
	)
}

func (m historyModel) renderCalendar() string {
	var headers []string
	for _, d := range m.ctx.cat.WeekDays {
		headers = append(headers, dayCellStyle.Render(mutedStyle.Render(d)))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, headers...)}

	days := m.ctx.sess.Bundle.DayRecords
	firstWeekday := int(m.month.Weekday()) // Sunday = 0
	total := m.daysInMonth()

	var cells []string
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, dayCellStyle.Render(""))
	}
	for day := 0; day < total; day++ {
		date := m.month.AddDate(0, 0, day)
		label := fmt.Sprintf("%d", day+1)

		style := dayCellStyle
		if rec, ok := progress.RecordFor(days, date); ok {
			switch rec.Status {
			case progress.StatusClean:
				style = dayCleanStyle
			case progress.StatusSlip:
				style = daySlipStyle
			case progress.StatusRelapse:
				style = dayRelapseStyle
			}
		}
		if day == m.cursor {
			style = dayCursorStyle
		}
		cells = append(cells, style.Render(label))

		if len(cells) == 7 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m historyModel) renderMonthStats() string {
	cat := m.ctx.cat
	stats := progress.MonthTally(m.ctx.sess.Bundle.DayRecords, m.month)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cleanStyle.Render(fmt.Sprintf("%s: %d", cat.Clean, stats.CleanDays)), "   ",
		slipStyle.Render(fmt.Sprintf("%s: %d", cat.Slips, stats.Slips)), "   ",
		relapseStyle.Render(fmt.Sprintf("%s: %d", cat.Relapses, stats.Relapses)),
	)
}

func (m historyModel) renderChart() string {
	cat := m.ctx.cat
	stats := progress.MonthTally(m.ctx.sess.Bundle.DayRecords, m.month)

	chartWidth := min(max(m.width-10, 20), 48)
	chart := barchart.New(chartWidth, 8)
	chart.PushAll([]barchart.BarData{
		{
			Label: cat.Clean,
			Values: []barchart.BarValue{
				{Name: cat.Clean, Value: float64(stats.CleanDays), Style: cleanStyle},
			},
		},
		{
			Label: cat.Slips,
			Values: []barchart.BarValue{
				{Name: cat.Slips, Value: float64(stats.Slips), Style: slipStyle},
			},
		},
		{
			Label: cat.Relapses,
			Values: []barchart.BarValue{
				{Name: cat.Relapses, Value: float64(stats.Relapses), Style: relapseStyle},
			},
		},
	})
	chart.Draw()
	return chart.View()
}
