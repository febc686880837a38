package content

import (
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// GridDays is the number of cells in a month grid: six Monday-first weeks.
const GridDays = 42

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart returns midnight on the first of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// MonthGrid returns the days shown for month's calendar page, starting on
// the Monday on or before the first and padded with the neighbouring
// months' days.
func MonthGrid(month time.Time) []time.Time {
	first := MonthStart(month)
	lead := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -lead)

	days := make([]time.Time, GridDays)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// DayKey is the map key CountByDay uses for t.
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// CountByDay counts msgs per received day.
func CountByDay(msgs []Message) map[string]int {
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[DayKey(m.Received)]++
	}
	return counts
}

// OnDay returns the messages received on day, keeping their order.
func OnDay(msgs []Message, day time.Time) []Message {
	var out []Message
	for _, m := range msgs {
		if SameDay(m.Received, day) {
			out = append(out, m)
		}
	}
	return out
}

type messageSource []Message

func (s messageSource) String(i int) string {
	m := s[i]
	return m.From + " " + m.Subject + " " + m.Preview
}

func (s messageSource) Len() int { return len(s) }

// SearchMessages returns the messages matching query. Unlike the address
// book, results keep the list's newest-first order so the date groups still
// read top to bottom. An empty query returns msgs unchanged.
func SearchMessages(msgs []Message, query string) []Message {
	query = strings.TrimSpace(query)
	if query == "" {
		return msgs
	}
	matches := fuzzy.FindFrom(query, messageSource(msgs))
	hit := make([]bool, len(msgs))
	for _, m := range matches {
		hit[m.Index] = true
	}
	out := make([]Message, 0, len(matches))
	for i, m := range msgs {
		if hit[i] {
			out = append(out, m)
		}
	}
	return out
}
