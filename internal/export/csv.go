package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/yassink/reclaim/internal/progress"
)

// ToCSV writes the account's day records and journal entries as two
// CSV sections, day records sorted by date ascending.
func ToCSV(b progress.Bundle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Type", "Date", "Status", "Title", "Content"}); err != nil {
		return err
	}

	days := make([]progress.DayRecord, len(b.DayRecords))
	copy(days, b.DayRecords)
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	for _, d := range days {
		row := []string{"day", d.Date.Format("2006-01-02"), string(d.Status), "", ""}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	for _, e := range b.Journal {
		row := []string{"journal", e.Date.Local().Format(time.RFC3339), string(e.Status), e.Title, e.Content}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
