package progress

import "time"

// RecordFor returns the day record for the given date, if any.
func RecordFor(days []DayRecord, date time.Time) (DayRecord, bool) {
	for _, d := range days {
		if sameDay(d.Date, date) {
			return d, true
		}
	}
	return DayRecord{}, false
}

// NextCycleStatus returns the status a day advances to when tapped on
// the calendar: no record -> clean -> slip -> relapse -> no record.
func NextCycleStatus(current *Status) *Status {
	if current == nil {
		s := StatusClean
		return &s
	}
	switch *current {
	case StatusClean:
		s := StatusSlip
		return &s
	case StatusSlip:
		s := StatusRelapse
		return &s
	default:
		return nil
	}
}

// CycleDayStatus advances one calendar day through the fixed status
// cycle, keeping at most one record per day. A day at relapse drops
// its record entirely.
func CycleDayStatus(days []DayRecord, date time.Time) []DayRecord {
	date = dayOf(date)
	for i, d := range days {
		if sameDay(d.Date, date) {
			next := NextCycleStatus(&days[i].Status)
			if next == nil {
				return append(days[:i:i], days[i+1:]...)
			}
			out := make([]DayRecord, len(days))
			copy(out, days)
			out[i].Status = *next
			return out
		}
	}
	return append(days[:len(days):len(days)], DayRecord{Date: date, Status: StatusClean})
}

// MonthTally counts day records falling in the same calendar month and
// year as month.
func MonthTally(days []DayRecord, month time.Time) MonthStats {
	var stats MonthStats
	for _, d := range days {
		if d.Date.UTC().Year() != month.UTC().Year() || d.Date.UTC().Month() != month.UTC().Month() {
			continue
		}
		switch d.Status {
		case StatusClean:
			stats.CleanDays++
		case StatusSlip:
			stats.Slips++
		case StatusRelapse:
			stats.Relapses++
		}
	}
	return stats
}
