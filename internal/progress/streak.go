package progress

import "time"

// dayOf truncates a time to midnight UTC, the canonical form for
// calendar-day comparisons and day record keys.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dayOf(a).Equal(dayOf(b))
}

// StreakSince returns the number of whole calendar days elapsed since
// start, never negative. This is the authoritative streak rule: the
// streak is always derived from StartDate, not incremented per
// check-in.
func StreakSince(start, now time.Time) int {
	days := int(dayOf(now).Sub(dayOf(start)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// RecordCheckin applies one daily check-in to the profile.
//
// Clean launches a streak when none is active (day one counts as 1);
// with a streak already running it recomputes the streak from
// StartDate. Slip only bumps the slip counter. Relapse terminates the
// streak and bumps the relapse counter. BestStreak is a high-water
// mark updated here and in SetStartDate only; it is not recomputed on
// passive loads.
func RecordCheckin(p Profile, status Status, now time.Time) Profile {
	switch status {
	case StatusClean:
		if p.StartDate == nil {
			d := dayOf(now)
			p.StartDate = &d
			p.CurrentStreak = 1
		} else {
			streak := StreakSince(*p.StartDate, now)
			if streak < 1 {
				streak = 1
			}
			p.CurrentStreak = streak
		}
		if p.CurrentStreak > p.BestStreak {
			p.BestStreak = p.CurrentStreak
		}
	case StatusSlip:
		p.Slips++
	case StatusRelapse:
		p.Relapses++
		p.CurrentStreak = 0
		p.StartDate = nil
	}
	return p
}

// SetStartDate backdates or clears the streak manually. The streak is
// recomputed from elapsed days; nil clears it to zero.
func SetStartDate(p Profile, date *time.Time, now time.Time) Profile {
	if date == nil {
		p.StartDate = nil
		p.CurrentStreak = 0
		return p
	}
	d := dayOf(*date)
	p.StartDate = &d
	p.CurrentStreak = StreakSince(d, now)
	if p.CurrentStreak > p.BestStreak {
		p.BestStreak = p.CurrentStreak
	}
	return p
}

// ResetProfile zeroes every counter and clears the start date. The
// caller is responsible for confirming with the user first and for
// clearing LastCheckin on the bundle.
func ResetProfile(p Profile) Profile {
	p.Slips = 0
	p.Relapses = 0
	p.CurrentStreak = 0
	p.BestStreak = 0
	p.StartDate = nil
	return p
}

// CheckinDue reports whether the daily check-in prompt should be
// shown: no check-in recorded yet, or the last one was on a different
// calendar day.
func CheckinDue(last *time.Time, now time.Time) bool {
	if last == nil {
		return true
	}
	return !sameDay(*last, now)
}
