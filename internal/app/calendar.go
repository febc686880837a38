package app

import (
	"time"

	"github.com/Gaurav-Gosain/tuimail/internal/content"
	"github.com/Gaurav-Gosain/tuimail/internal/ui"
)

// calendarFolder is the folder the calendar lays out by received date.
const calendarFolder = "Inbox"

// ToggleCalendar switches between the mail panes and the calendar.
func (m *Model) ToggleCalendar() {
	if m.ViewMode == ui.ViewCalendar {
		m.ViewMode = ui.ViewMail
		m.LogDebug("view mail")
		return
	}
	m.ViewMode = ui.ViewCalendar
	m.SearchingMail = false
	m.LogDebug("view calendar %s", m.CalendarMonth.Format("January 2006"))
}

// ShiftMonth pages the calendar by n months. The selected day moves to the
// same day of the new month, clamped to its length.
func (m *Model) ShiftMonth(n int) {
	if m.ViewMode != ui.ViewCalendar || n == 0 {
		return
	}
	m.CalendarMonth = content.MonthStart(m.CalendarMonth.AddDate(0, n, 0))
	last := m.CalendarMonth.AddDate(0, 1, -1).Day()
	m.SelectedDay = m.CalendarMonth.AddDate(0, 0, min(m.SelectedDay.Day(), last)-1)
}

// CalendarToday returns the calendar to the current month and day.
func (m *Model) CalendarToday() {
	if m.ViewMode != ui.ViewCalendar {
		return
	}
	m.SelectDay(m.Now())
}

// SelectDay selects day, paging the calendar when it lies in another month.
func (m *Model) SelectDay(day time.Time) {
	m.SelectedDay = content.Day(day)
	if start := content.MonthStart(day); !start.Equal(m.CalendarMonth) {
		m.CalendarMonth = start
	}
}

// OpenFromCalendar shows message id in the mail view's reading pane.
func (m *Model) OpenFromCalendar(id string) {
	m.ViewMode = ui.ViewMail
	m.MessageQuery = ""
	for i, f := range content.Folders {
		if f == calendarFolder {
			m.SelectedFolder = i
		}
	}
	m.OpenMessageID(id)
}

// CalendarView is the calendar page the background draws.
func (m *Model) CalendarView() ui.Calendar {
	msgs := m.Mailbox.Folder(calendarFolder)
	return ui.Calendar{
		Month:    m.CalendarMonth,
		Selected: m.SelectedDay,
		Today:    m.Now(),
		Counts:   content.CountByDay(msgs),
		Agenda:   content.OnDay(msgs, m.SelectedDay),
	}
}
