package progress

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewBundle builds a freshly-initialized account bundle for a user who
// has no saved data: zeroed counters and the seeded default task list.
func NewBundle(seed Profile, defaultTasks []string) Bundle {
	tasks := make([]Task, 0, len(defaultTasks))
	for i, name := range defaultTasks {
		tasks = append(tasks, Task{
			ID:         strconv.Itoa(i + 1),
			Name:       name,
			Completed:  false,
			Importance: 2,
		})
	}
	return Bundle{User: seed, Tasks: tasks}
}

// AddJournalEntry prepends a new entry; the journal is newest-first by
// insertion order. Blank content is ignored.
func AddJournalEntry(b Bundle, content string, status Status, title string, now time.Time) Bundle {
	content = strings.TrimSpace(content)
	if content == "" {
		return b
	}
	entry := JournalEntry{
		Date:    now.UTC().Truncate(time.Second),
		Content: content,
		Status:  status,
		Title:   title,
	}
	b.Journal = append([]JournalEntry{entry}, b.Journal...)
	return b
}

// AddTask appends a user-created task with a fresh id and default
// importance. Blank names are ignored.
func AddTask(b Bundle, name string) Bundle {
	name = strings.TrimSpace(name)
	if name == "" {
		return b
	}
	b.Tasks = append(b.Tasks, Task{
		ID:         uuid.NewString(),
		Name:       name,
		Completed:  false,
		Importance: 2,
	})
	return b
}

func ToggleTask(b Bundle, id string) Bundle {
	tasks := make([]Task, len(b.Tasks))
	copy(tasks, b.Tasks)
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = !tasks[i].Completed
		}
	}
	b.Tasks = tasks
	return b
}

func DeleteTask(b Bundle, id string) Bundle {
	tasks := make([]Task, 0, len(b.Tasks))
	for _, t := range b.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	b.Tasks = tasks
	return b
}

// RenameDefaultTasks maps the seeded task ids ("1".."n") onto the
// given localized names, leaving user-created tasks untouched. Used
// when the interface language changes.
func RenameDefaultTasks(b Bundle, defaultTasks []string) Bundle {
	tasks := make([]Task, len(b.Tasks))
	copy(tasks, b.Tasks)
	for i := range tasks {
		if n, err := strconv.Atoi(tasks[i].ID); err == nil && n >= 1 && n <= len(defaultTasks) {
			tasks[i].Name = defaultTasks[n-1]
		}
	}
	b.Tasks = tasks
	return b
}
