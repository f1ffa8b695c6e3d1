package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/yassink/reclaim/internal/progress"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	User       jsonUser    `json:"user"`
	DayRecords []jsonDay   `json:"day_records"`
	Journal    []jsonEntry `json:"journal_entries"`
}

type jsonUser struct {
	Name          string `json:"name"`
	CurrentStreak int    `json:"current_streak"`
	BestStreak    int    `json:"best_streak"`
	Slips         int    `json:"slips"`
	Relapses      int    `json:"relapses"`
}

type jsonDay struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type jsonEntry struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func ToJSON(b progress.Bundle, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		User: jsonUser{
			Name:          b.User.Name,
			CurrentStreak: b.User.CurrentStreak,
			BestStreak:    b.User.BestStreak,
			Slips:         b.User.Slips,
			Relapses:      b.User.Relapses,
		},
	}

	for _, d := range b.DayRecords {
		export.DayRecords = append(export.DayRecords, jsonDay{
			Date:   d.Date.Format("2006-01-02"),
			Status: string(d.Status),
		})
	}
	for _, e := range b.Journal {
		export.Journal = append(export.Journal, jsonEntry{
			Date:    e.Date.Local().Format(time.RFC3339),
			Status:  string(e.Status),
			Title:   e.Title,
			Content: e.Content,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
