package session

import (
	"errors"
	"testing"
	"time"

	"github.com/yassink/reclaim/internal/progress"
	"github.com/yassink/reclaim/internal/store"
)

var defaultTasks = []string{"Praying", "Reading", "Hobbies", "Talking to friends", "Other custom tasks"}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedProfile() progress.Profile {
	return progress.Profile{ID: "1", Name: "Yassin"}
}

func TestOpenFreshAccount(t *testing.T) {
	st := newTestStore(t)

	sess, err := Open(st, "yassin", seedProfile(), defaultTasks)
	if err != nil {
		t.Fatal(err)
	}
	if len(sess.Bundle.Tasks) != 5 {
		t.Fatalf("expected 5 seeded tasks, got %d", len(sess.Bundle.Tasks))
	}
	if sess.Bundle.User.StartDate != nil || sess.Bundle.User.CurrentStreak != 0 {
		t.Fatalf("fresh bundle must be zeroed: %+v", sess.Bundle.User)
	}
	if !st.Authenticated() {
		t.Fatal("open must mark the session authenticated")
	}
	// The fresh bundle is persisted immediately.
	if _, err := st.LoadBundle("yassin"); err != nil {
		t.Fatalf("bundle not persisted: %v", err)
	}
}

func TestOpenExistingAccount(t *testing.T) {
	st := newTestStore(t)

	first, err := Open(st, "yassin", seedProfile(), defaultTasks)
	if err != nil {
		t.Fatal(err)
	}
	b := first.Bundle
	b.User = progress.RecordCheckin(b.User, progress.StatusClean, time.Now())
	if err := first.Apply(b); err != nil {
		t.Fatal(err)
	}

	again, err := Open(st, "yassin", seedProfile(), defaultTasks)
	if err != nil {
		t.Fatal(err)
	}
	if again.Bundle.User.CurrentStreak != 1 {
		t.Fatalf("saved state should be loaded, got %+v", again.Bundle.User)
	}
}

func TestOpenMalformedBundleFallsBack(t *testing.T) {
	st := newTestStore(t)
	st.Set("userData_yassin", "{{{ not json")

	sess, err := Open(st, "yassin", seedProfile(), defaultTasks)
	if err != nil {
		t.Fatal(err)
	}
	if len(sess.Bundle.Tasks) != 5 {
		t.Fatal("malformed data should fall back to a fresh bundle")
	}
}

func TestOpenReadErrorPropagates(t *testing.T) {
	st, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	st.Close()

	if _, err := Open(st, "yassin", seedProfile(), defaultTasks); err == nil {
		t.Fatal("a failed read must not be replaced by a fresh bundle")
	}
}

func TestApplyWritesThrough(t *testing.T) {
	st := newTestStore(t)
	sess, err := Open(st, "yassin", seedProfile(), defaultTasks)
	if err != nil {
		t.Fatal(err)
	}

	b := progress.AddTask(sess.Bundle, "Exercise")
	if err := sess.Apply(b); err != nil {
		t.Fatal(err)
	}

	saved, err := st.LoadBundle("yassin")
	if err != nil {
		t.Fatal(err)
	}
	if len(saved.Tasks) != 6 {
		t.Fatalf("mutation not persisted, got %d tasks", len(saved.Tasks))
	}
}

func TestResume(t *testing.T) {
	st := newTestStore(t)
	if _, err := Open(st, "yassin", seedProfile(), defaultTasks); err != nil {
		t.Fatal(err)
	}

	sess, ok := Resume(st, defaultTasks)
	if !ok {
		t.Fatal("expected resume to succeed")
	}
	if sess.Username != "yassin" {
		t.Fatalf("got username %q", sess.Username)
	}
}

func TestResumeWithoutAuth(t *testing.T) {
	st := newTestStore(t)
	if _, ok := Resume(st, defaultTasks); ok {
		t.Fatal("resume must fail on a fresh store")
	}
}

func TestCloseKeepsBundle(t *testing.T) {
	st := newTestStore(t)
	sess, err := Open(st, "yassin", seedProfile(), defaultTasks)
	if err != nil {
		t.Fatal(err)
	}

	if err := sess.Close(); err != nil {
		t.Fatal(err)
	}

	if _, ok := Resume(st, defaultTasks); ok {
		t.Fatal("resume must fail after logout")
	}
	if _, err := st.LoadBundle("yassin"); errors.Is(err, store.ErrNotFound) {
		t.Fatal("logout must not delete the bundle")
	}
}
