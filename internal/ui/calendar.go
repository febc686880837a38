package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/content"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// ViewMode is the client view behind the windows.
type ViewMode int

const (
	ViewMail ViewMode = iota
	ViewCalendar
)

// Calendar is the month page drawn in place of the mail panes.
type Calendar struct {
	Month    time.Time
	Selected time.Time
	Today    time.Time
	// Counts is messages per day, keyed by content.DayKey.
	Counts map[string]int
	// Agenda is the selected day's mail.
	Agenda []content.Message
}

// Calendar navigation targets returned by CalendarNavAt.
const (
	NavPrev  = -1
	NavToday = 0
	NavNext  = 1
)

const (
	calendarHeaderRows = 2
	agendaMaxWidth     = 40
	agendaMinContainer = 56
	agendaMessageRows  = 2
)

var calendarNav = []struct {
	label string
	nav   int
}{
	{"[<]", NavPrev},
	{"[>]", NavNext},
	{"[Today]", NavToday},
}

// CalendarGrid is the month grid area of the calendar view.
func (l Layout) CalendarGrid() wm.Rect {
	c := l.Container()
	return rect(c.X, c.Y, c.Width-l.agendaWidth(), c.Height)
}

// CalendarAgenda is the selected day's message list, right of the grid.
func (l Layout) CalendarAgenda() wm.Rect {
	c := l.Container()
	aw := l.agendaWidth()
	return rect(c.X+c.Width-aw, c.Y, aw, c.Height)
}

func (l Layout) agendaWidth() int {
	c := l.Container()
	if c.Width < agendaMinContainer {
		return 0
	}
	return min(c.Width/3, agendaMaxWidth)
}

// cellSize is the width and height of one day cell.
func cellSize(g wm.Rect) (int, int) {
	return max(g.Width/7, 1), max((g.Height-calendarHeaderRows)/6, 1)
}

// CalendarNavAt returns the navigation button under p.
func CalendarNavAt(l Layout, p wm.Position) (int, bool) {
	g := l.CalendarGrid()
	if p.Y != g.Y {
		return 0, false
	}
	x := g.X + 1
	for _, n := range calendarNav {
		w := ansi.StringWidth(n.label)
		if p.X >= x && p.X < x+w {
			return n.nav, true
		}
		x += w + 1
	}
	return 0, false
}

// CalendarDayAt returns the day whose cell is under p on month's page.
func CalendarDayAt(l Layout, month time.Time, p wm.Position) (time.Time, bool) {
	g := l.CalendarGrid()
	if !g.Contains(p) {
		return time.Time{}, false
	}
	cw, ch := cellSize(g)
	dy := p.Y - g.Y - calendarHeaderRows
	if dy < 0 {
		return time.Time{}, false
	}
	row, col := dy/ch, (p.X-g.X)/cw
	if row >= 6 || col >= 7 {
		return time.Time{}, false
	}
	return content.MonthGrid(month)[row*7+col], true
}

// AgendaMessageAt returns the agenda entry under p.
func AgendaMessageAt(l Layout, agenda []content.Message, p wm.Position) (content.Message, bool) {
	a := l.CalendarAgenda()
	if !a.Contains(p) {
		return content.Message{}, false
	}
	i := (p.Y - a.Y - calendarHeaderRows)
	if i < 0 {
		return content.Message{}, false
	}
	i /= agendaMessageRows
	if i >= len(agenda) {
		return content.Message{}, false
	}
	return agenda[i], true
}

// renderCalendar draws the calendar view over the container as one block.
func renderCalendar(l Layout, p theme.Palette, cal Calendar) string {
	c := l.Container()
	grid := strings.Split(renderMonth(l.CalendarGrid(), p, cal), "\n")
	var agenda []string
	if a := l.CalendarAgenda(); a.Width > 0 {
		agenda = strings.Split(renderAgenda(a, p, cal), "\n")
	}
	rows := make([]string, c.Height)
	for i := range rows {
		rows[i] = grid[i]
		if agenda != nil {
			rows[i] += agenda[i]
		}
	}
	return strings.Join(rows, "\n")
}

func renderMonth(g wm.Rect, p theme.Palette, cal Calendar) string {
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)
	muted := base.Foreground(p.Muted)
	btn := base.Background(p.Pane).Foreground(p.PaneFg)
	title := base.Foreground(p.Accent).Bold(true)
	today := base.Foreground(p.Accent).Bold(true).Underline(true)
	sel := lipgloss.NewStyle().Background(p.Selected).Foreground(p.SelectedFg).Bold(true)
	count := base.Foreground(p.Accent)

	var nav strings.Builder
	nav.WriteString(base.Render(" "))
	for _, n := range calendarNav {
		nav.WriteString(btn.Render(n.label) + base.Render(" "))
	}
	nav.WriteString(base.Render(" ") + title.Render(cal.Month.Format("January 2006")))

	cw, ch := cellSize(g)
	var week strings.Builder
	for _, d := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		week.WriteString(fit(muted.Bold(true).Render(" "+d), cw, base))
	}
	lines := []string{nav.String(), week.String()}

	days := content.MonthGrid(cal.Month)
	for row := range 6 {
		cells := make([][]string, ch)
		for col := range 7 {
			d := days[row*7+col]
			style := base
			if d.Month() != cal.Month.Month() {
				style = muted
			}
			num := fmt.Sprintf(" %2d ", d.Day())
			switch {
			case content.SameDay(d, cal.Selected):
				num = sel.Render(num)
			case content.SameDay(d, cal.Today):
				num = today.Render(num)
			default:
				num = style.Render(num)
			}
			cells[0] = append(cells[0], fit(num, cw, base))
			if ch > 1 {
				n := cal.Counts[content.DayKey(d)]
				mark := ""
				if n > 0 {
					mark = count.Render(" ● " + humanize.Comma(int64(n)))
				}
				cells[1] = append(cells[1], fit(mark, cw, base))
			}
			for line := 2; line < ch; line++ {
				cells[line] = append(cells[line], fit("", cw, base))
			}
		}
		for _, c := range cells {
			lines = append(lines, strings.Join(c, ""))
		}
	}
	return block(lines, g, base)
}

func renderAgenda(a wm.Rect, p theme.Palette, cal Calendar) string {
	base := lipgloss.NewStyle().Background(p.Pane).Foreground(p.PaneFg)
	muted := base.Foreground(p.Muted)
	edge := lipgloss.NewStyle().Foreground(p.Border).Background(p.Pane).Render("│")
	w := max(a.Width-1, 0)

	lines := []string{
		base.Bold(true).Render(" " + cal.Selected.Format("Monday, 2 January")),
		"",
	}
	if len(cal.Agenda) == 0 {
		lines = append(lines, muted.Render(" Nothing received"))
	}
	for _, m := range cal.Agenda {
		from := base
		if m.Unread {
			from = from.Bold(true)
		}
		lines = append(lines,
			muted.Render(" "+m.Received.Format("15:04")+" ")+from.Render(m.From),
			base.Foreground(p.Accent).Render("       "+m.Subject),
		)
	}
	out := make([]string, a.Height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = edge + fit(line, w, base)
	}
	return strings.Join(out, "\n")
}
