package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yassink/reclaim/internal/i18n"
	"github.com/yassink/reclaim/internal/progress"
	"github.com/yassink/reclaim/internal/session"
	"github.com/yassink/reclaim/internal/store"
)

func newTestCtx(t *testing.T) *appCtx {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := &appCtx{store: s}
	ctx.setLanguage(i18n.LanguageEnglish)

	sess, err := session.Open(s, "yassin", progress.Profile{ID: "1", Name: "Yassin"}, ctx.cat.DefaultTasks)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	ctx.sess = sess
	return ctx
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================
// Home: daily check-in
// ============================================================

func TestHomeCheckinClean(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHomeModel(ctx)

	m, cmd := m.recordCheckin(progress.StatusClean)
	if cmd == nil {
		t.Fatal("expected a notification command")
	}
	msg, ok := cmd().(checkinDoneMsg)
	if !ok {
		t.Fatalf("expected checkinDoneMsg, got %T", cmd())
	}
	if msg.notification != ctx.cat.Notifications[progress.StatusClean] {
		t.Fatalf("unexpected notification: %q", msg.notification)
	}

	user := ctx.sess.Bundle.User
	if user.CurrentStreak != 1 || user.StartDate == nil {
		t.Fatalf("streak not launched: %+v", user)
	}
	if ctx.sess.Bundle.LastCheckin == nil {
		t.Fatal("last check-in not recorded")
	}

	// Persisted write-through.
	saved, err := ctx.store.LoadBundle("yassin")
	if err != nil {
		t.Fatal(err)
	}
	if saved.User.CurrentStreak != 1 {
		t.Fatalf("check-in not persisted: %+v", saved.User)
	}
}

func TestHomeCheckinSuppressedUntilNextDay(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHomeModel(ctx)

	m, _ = m.recordCheckin(progress.StatusSlip)
	if progress.CheckinDue(ctx.sess.Bundle.LastCheckin, time.Now()) {
		t.Fatal("check-in should be suppressed for the rest of the day")
	}
}

func TestHomeResetCheckin(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHomeModel(ctx)

	m, _ = m.recordCheckin(progress.StatusClean)
	m, _ = m.resetCheckin()

	if ctx.sess.Bundle.LastCheckin != nil {
		t.Fatal("last check-in should be cleared")
	}
	if !progress.CheckinDue(ctx.sess.Bundle.LastCheckin, time.Now()) {
		t.Fatal("check-in should be due again")
	}
}

func TestHomeCheckinCursorSelectsStatus(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHomeModel(ctx)

	// Move to the third option (relapse) and confirm.
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.update(keyEnter())

	if ctx.sess.Bundle.User.Relapses != 1 {
		t.Fatalf("expected relapse recorded, got %+v", ctx.sess.Bundle.User)
	}
}

func TestHomeApplyStartDateClear(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHomeModel(ctx)
	m, _ = m.recordCheckin(progress.StatusClean)

	m, _ = m.applyStartDate("")
	if ctx.sess.Bundle.User.StartDate != nil || ctx.sess.Bundle.User.CurrentStreak != 0 {
		t.Fatalf("start date not cleared: %+v", ctx.sess.Bundle.User)
	}
}

func TestHomeApplyStartDateBackdates(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHomeModel(ctx)

	past := time.Now().UTC().AddDate(0, 0, -10).Format("2006-01-02")
	m, _ = m.applyStartDate(past)

	if ctx.sess.Bundle.User.CurrentStreak != 10 {
		t.Fatalf("expected streak 10, got %d", ctx.sess.Bundle.User.CurrentStreak)
	}
}

func TestHomeResetDeclinedKeepsState(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHomeModel(ctx)
	m, _ = m.recordCheckin(progress.StatusClean)

	m, _ = m.showResetForm()
	if !m.formActive {
		t.Fatal("confirm form should be active")
	}
	// Esc declines the confirmation.
	m, _ = m.updateForm(tea.KeyMsg{Type: tea.KeyEsc})
	if m.formActive {
		t.Fatal("form should be closed")
	}
	if ctx.sess.Bundle.User.CurrentStreak != 1 {
		t.Fatalf("declined reset must not change state: %+v", ctx.sess.Bundle.User)
	}
}

func TestHomeApplyReset(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHomeModel(ctx)
	m, _ = m.recordCheckin(progress.StatusClean)

	m, _ = m.applyReset()

	user := ctx.sess.Bundle.User
	if user.CurrentStreak != 0 || user.BestStreak != 0 || user.StartDate != nil {
		t.Fatalf("reset incomplete: %+v", user)
	}
	if ctx.sess.Bundle.LastCheckin != nil {
		t.Fatal("reset must re-enable the check-in prompt")
	}
}

// ============================================================
// History: calendar editing
// ============================================================

func TestHistoryCycleDay(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHistoryModel(ctx)

	m, _ = m.update(keyEnter())
	rec, ok := progress.RecordFor(ctx.sess.Bundle.DayRecords, m.cursorDate())
	if !ok || rec.Status != progress.StatusClean {
		t.Fatalf("expected clean record for cursor day, got %+v", ctx.sess.Bundle.DayRecords)
	}

	// Cycle all the way back to no record.
	m, _ = m.update(keyEnter())
	m, _ = m.update(keyEnter())
	m, _ = m.update(keyEnter())
	if _, ok := progress.RecordFor(ctx.sess.Bundle.DayRecords, m.cursorDate()); ok {
		t.Fatal("record should be removed after the full cycle")
	}
}

func TestHistoryMonthNavigation(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHistoryModel(ctx)
	start := m.month

	m, _ = m.update(keyRune('['))
	if !m.month.Equal(start.AddDate(0, -1, 0)) {
		t.Fatalf("expected previous month, got %v", m.month)
	}
	m, _ = m.update(keyRune(']'))
	if !m.month.Equal(start) {
		t.Fatalf("expected original month, got %v", m.month)
	}
}

func TestHistoryCursorClampedOnShortMonth(t *testing.T) {
	ctx := newTestCtx(t)
	m := newHistoryModel(ctx)
	m.month = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	m.cursor = 30 // March 31st

	m, _ = m.update(keyRune('[')) // February 2024 has 29 days
	if m.cursor > m.daysInMonth()-1 {
		t.Fatalf("cursor %d out of range for %v", m.cursor, m.month)
	}
}

// ============================================================
// Tasks
// ============================================================

func TestTasksToggle(t *testing.T) {
	ctx := newTestCtx(t)
	m := newTasksModel(ctx)

	m, _ = m.update(keyEnter())
	if !ctx.sess.Bundle.Tasks[0].Completed {
		t.Fatal("first task should be completed")
	}
	m, _ = m.update(keyEnter())
	if ctx.sess.Bundle.Tasks[0].Completed {
		t.Fatal("first task should be incomplete again")
	}
}

func TestTasksDelete(t *testing.T) {
	ctx := newTestCtx(t)
	m := newTasksModel(ctx)

	m, _ = m.update(keyRune('d'))
	if len(ctx.sess.Bundle.Tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(ctx.sess.Bundle.Tasks))
	}

	saved, err := ctx.store.LoadBundle("yassin")
	if err != nil {
		t.Fatal(err)
	}
	if len(saved.Tasks) != 4 {
		t.Fatal("deletion not persisted")
	}
}

func TestTasksDeleteLastClampsCursor(t *testing.T) {
	ctx := newTestCtx(t)
	m := newTasksModel(ctx)
	m.cursor = 4

	m, _ = m.update(keyRune('d'))
	if m.cursor != 3 {
		t.Fatalf("cursor should clamp to 3, got %d", m.cursor)
	}
}

// ============================================================
// Journal
// ============================================================

func TestJournalAddEntry(t *testing.T) {
	ctx := newTestCtx(t)
	m := newJournalModel(ctx)

	*m.entryStatus = string(progress.StatusSlip)
	*m.entryContent = "rough day"
	m, _ = m.addEntry()

	journal := ctx.sess.Bundle.Journal
	if len(journal) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(journal))
	}
	if journal[0].Title != ctx.cat.JournalTitle(progress.StatusSlip) {
		t.Fatalf("unexpected title %q", journal[0].Title)
	}

	saved, err := ctx.store.LoadBundle("yassin")
	if err != nil {
		t.Fatal(err)
	}
	if len(saved.Journal) != 1 || saved.Journal[0].Content != "rough day" {
		t.Fatalf("entry not persisted: %+v", saved.Journal)
	}
}

// ============================================================
// App: logout / re-login
// ============================================================

func TestReloginResetsViewState(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	app := NewApp(s)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app = model.(App)

	// First account gets a sixth task and parks the task cursor on it,
	// scrolls the journal and moves the history month.
	sessA, err := session.Open(s, "yassin", progress.Profile{ID: "1", Name: "Yassin"}, app.ctx.cat.DefaultTasks)
	if err != nil {
		t.Fatal(err)
	}
	model, _ = app.Update(loggedInMsg{sess: sessA})
	app = model.(App)
	if err := sessA.Apply(progress.AddTask(sessA.Bundle, "Extra")); err != nil {
		t.Fatal(err)
	}
	model, _ = app.Update(keyRune('4'))
	app = model.(App)
	for i := 0; i < 5; i++ {
		model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
		app = model.(App)
	}
	if app.tasks.cursor != 5 {
		t.Fatalf("setup: task cursor = %d, want 5", app.tasks.cursor)
	}
	model, _ = app.Update(keyRune('2'))
	app = model.(App)
	model, _ = app.Update(keyRune('['))
	app = model.(App)

	model, _ = app.Update(loggedOutMsg{})
	app = model.(App)

	// Second account has only the five seeded tasks.
	sessB, err := session.Open(s, "ahmed", progress.Profile{ID: "2", Name: "Ahmed"}, app.ctx.cat.DefaultTasks)
	if err != nil {
		t.Fatal(err)
	}
	model, _ = app.Update(loggedInMsg{sess: sessB})
	app = model.(App)

	if app.tasks.cursor != 0 {
		t.Fatalf("task cursor leaked across accounts: %d", app.tasks.cursor)
	}
	if app.journal.scroll != 0 {
		t.Fatalf("journal scroll leaked across accounts: %d", app.journal.scroll)
	}
	now := time.Now().UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if !app.history.month.Equal(thisMonth) {
		t.Fatalf("history month leaked across accounts: %v", app.history.month)
	}

	// Enter on the tasks tab must act on the new account's list.
	model, _ = app.Update(keyRune('4'))
	app = model.(App)
	model, _ = app.Update(keyEnter())
	app = model.(App)
	if !sessB.Bundle.Tasks[0].Completed {
		t.Fatal("toggle should hit the first task of the new account")
	}
}

func TestTasksCursorClampedAgainstShrunkenList(t *testing.T) {
	ctx := newTestCtx(t)
	m := newTasksModel(ctx)
	m.cursor = 7

	m, _ = m.update(keyEnter())
	if m.cursor != 4 {
		t.Fatalf("cursor = %d, want 4", m.cursor)
	}
	if !ctx.sess.Bundle.Tasks[4].Completed {
		t.Fatal("toggle should apply to the last task after clamping")
	}
}
