// Package board implements the planning grid engine: the calendar window,
// the derived views over the entity collections, and the selection,
// clipboard and drag-drop rules. Everything here is pure data manipulation;
// the HTTP layer owns transport and the store owns the collections.
package board

import "time"

// Preset is a fixed-length view window.
type Preset string

const (
	PresetWeek      Preset = "week"
	PresetTwoWeeks  Preset = "two_weeks"
	PresetMonth     Preset = "month"
	PresetTwoMonths Preset = "two_months"
)

var presetDays = map[Preset]int{
	PresetWeek:      7,
	PresetTwoWeeks:  14,
	PresetMonth:     30,
	PresetTwoMonths: 60,
}

// Days returns the window length for the preset, or 0 for an unknown preset.
func (p Preset) Days() int { return presetDays[p] }

// DateLayout is the ISO calendar-date form used throughout the engine.
const DateLayout = "2006-01-02"

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Day describes one column of the board grid.
type Day struct {
	Date      string `json:"date"`
	Day       int    `json:"day"`
	Weekday   string `json:"weekday"`
	IsWeekend bool   `json:"is_weekend"`
	IsToday   bool   `json:"is_today"`
}

// Window produces the ordered sequence of days starting at anchor. The today
// flag is computed by string equality against the supplied current date, so
// the result is fully determined by its inputs. An unknown preset yields an
// empty window.
func Window(anchor time.Time, preset Preset, today string) []Day {
	n := preset.Days()
	if n == 0 {
		return nil
	}
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		d := anchor.AddDate(0, 0, i)
		iso := d.Format(DateLayout)
		wd := d.Weekday()
		days = append(days, Day{
			Date:      iso,
			Day:       d.Day(),
			Weekday:   weekdayLabels[wd],
			IsWeekend: wd == time.Sunday || wd == time.Saturday,
			IsToday:   iso == today,
		})
	}
	return days
}

// Today returns the current calendar date in ISO form.
func Today() string { return time.Now().Format(DateLayout) }

// DaysBetween enumerates every date in [start, end] inclusive, ascending.
// Endpoints may arrive in either order; they are min/max resolved first.
// Returns nil if either date fails to parse.
func DaysBetween(start, end string) []string {
	a, errA := time.Parse(DateLayout, start)
	b, errB := time.Parse(DateLayout, end)
	if errA != nil || errB != nil {
		return nil
	}
	if b.Before(a) {
		a, b = b, a
	}
	var out []string
	for d := a; !d.After(b); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(DateLayout))
	}
	return out
}
