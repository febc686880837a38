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

// Button is a clickable ribbon action.
type Button struct {
	Action string
	Label  string
	Rect   wm.Rect
}

var ribbonActions = []struct{ action, label string }{
	{"new_message", "New Email"},
	{"address_book", "Address Book"},
	{"contact_details", "Contact"},
	{"account_info", "Account Info"},
	{"account_settings", "Account Settings"},
	{"options", "Options"},
	{"toggle_calendar", "Calendar"},
}

const (
	searchBoxWidth    = 26
	searchBoxMinWidth = 80
)

// SearchBox is the message search field at the right of the ribbon's
// middle row. Narrow terminals have none.
func SearchBox(width int) (wm.Rect, bool) {
	if width < searchBoxMinWidth {
		return wm.Rect{}, false
	}
	return rect(width-searchBoxWidth-1, 1, searchBoxWidth, 1), true
}

var ribbonTabs = []string{"File", "Home", "Send / Receive", "View", "Help"}

// RibbonButtons lays out the ribbon actions on the ribbon's middle row,
// dropping those that do not fit in width.
func RibbonButtons(width int) []Button {
	limit := width
	if sb, ok := SearchBox(width); ok {
		limit = sb.X - 1
	}
	var out []Button
	x := 1
	for _, a := range ribbonActions {
		w := ansi.StringWidth(a.label) + 2
		if x+w > limit {
			break
		}
		out = append(out, Button{Action: a.action, Label: a.label, Rect: rect(x, 1, w, 1)})
		x += w + 1
	}
	return out
}

// RibbonActionAt returns the ribbon action under p, or "".
func RibbonActionAt(width int, p wm.Position) string {
	for _, b := range RibbonButtons(width) {
		if b.Rect.Contains(p) {
			return b.Action
		}
	}
	return ""
}

// Folder is one entry of the folder pane.
type Folder struct {
	Name   string
	Unread int
}

// Mail is the mail client state drawn behind the windows.
type Mail struct {
	Account  string
	Folders  []Folder
	Selected int
	Groups   []content.Group
	// Open is the message in the reading pane; nil shows a placeholder.
	Open *content.Message
	Now  time.Time

	View     ViewMode
	Calendar Calendar
	// Query is the message search text; Searching means the box has focus.
	Query     string
	Searching bool
}

// Status is the status bar content.
type Status struct {
	Items   int
	Unread  int
	Windows int
	// Clock is drawn at the right edge when non-empty.
	Clock string
}

// RenderBackground draws the ribbon, panes, tray and status bar as one
// Width x Height block.
func RenderBackground(l Layout, p theme.Palette, mail Mail, status Status, pills []Pill) string {
	if l.Width <= 0 || l.Height <= 0 {
		return ""
	}
	rows := make([]string, 0, l.Height)
	rows = append(rows, renderRibbon(l, p, mail)...)

	c := l.Container()
	if mail.View == ViewCalendar {
		rows = append(rows, strings.Split(renderCalendar(l, p, mail.Calendar), "\n")...)
		return finishBackground(l, p, rows, status, pills)
	}
	folders := strings.Split(renderFolderPane(l.FolderPane(), p, mail), "\n")
	list := strings.Split(renderMessageList(l.MessageList(), p, mail), "\n")
	reading := strings.Split(renderReadingPane(l.ReadingPane(), p, mail), "\n")
	for i := range c.Height {
		rows = append(rows, folders[i]+list[i]+reading[i])
	}
	return finishBackground(l, p, rows, status, pills)
}

func finishBackground(l Layout, p theme.Palette, rows []string, status Status, pills []Pill) string {
	rows = append(rows, RenderTray(l.Tray().Width, pills, p))
	rows = append(rows, renderStatusBar(l.Width, p, status))

	if len(rows) > l.Height {
		rows = rows[:l.Height]
	}
	return strings.Join(rows, "\n")
}

func renderRibbon(l Layout, p theme.Palette, mail Mail) []string {
	base := lipgloss.NewStyle().Background(p.Ribbon).Foreground(p.RibbonFg)
	tab := base.Padding(0, 1)
	active := tab.Foreground(p.RibbonTab).Bold(true).Underline(true)

	var tabs strings.Builder
	tabs.WriteString(base.Render(" "))
	for _, t := range ribbonTabs {
		if t == "Home" {
			tabs.WriteString(active.Render(t))
		} else {
			tabs.WriteString(tab.Render(t))
		}
	}
	brand := base.Foreground(p.RibbonTab).Bold(true).Render("tuimail ")
	top := fill(tabs.String(), l.Width-ansi.StringWidth(brand), base) + brand

	btn := base.Foreground(p.Fg).Background(p.Pane)
	on := lipgloss.NewStyle().Background(p.Selected).Foreground(p.SelectedFg).Bold(true)
	var mid strings.Builder
	x := 0
	for _, b := range RibbonButtons(l.Width) {
		mid.WriteString(base.Render(strings.Repeat(" ", b.Rect.X-x)))
		style := btn
		if b.Action == "toggle_calendar" && mail.View == ViewCalendar {
			style = on
		}
		mid.WriteString(style.Render(" " + b.Label + " "))
		x = b.Rect.X + b.Rect.Width
	}
	if sb, ok := SearchBox(l.Width); ok {
		mid.WriteString(base.Render(strings.Repeat(" ", max(sb.X-x, 0))))
		mid.WriteString(renderSearchBox(sb.Width, p, mail))
	}

	rule := lipgloss.NewStyle().Foreground(p.Border).Background(p.Bg).Render(strings.Repeat("─", l.Width))
	return []string{
		fit(top, l.Width, base),
		fill(mid.String(), l.Width, base),
		rule,
	}[:min(3, l.Height)]
}

func renderSearchBox(width int, p theme.Palette, mail Mail) string {
	box := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)
	text := box.Foreground(p.Muted).Render(" ⌕ Search")
	if mail.Query != "" || mail.Searching {
		q := mail.Query
		if mail.Searching {
			q += "▏"
		}
		// Keep the tail of a long query in view
		if over := ansi.StringWidth(q) - (width - 4); over > 0 {
			q = ansi.TruncateLeft(q, over+1, "…")
		}
		text = box.Render(" ⌕ " + q)
	}
	return fit(text, width, box)
}

// FolderAt returns the index of the folder row under p.
func FolderAt(l Layout, folders int, p wm.Position) (int, bool) {
	pane := l.FolderPane()
	if !pane.Contains(p) {
		return 0, false
	}
	i := p.Y - pane.Y - 1
	if i < 0 || i >= folders {
		return 0, false
	}
	return i, true
}

func renderFolderPane(r wm.Rect, p theme.Palette, mail Mail) string {
	base := lipgloss.NewStyle().Background(p.Pane).Foreground(p.PaneFg)
	head := base.Bold(true)
	sel := lipgloss.NewStyle().Background(p.Selected).Foreground(p.SelectedFg).Bold(true)
	count := base.Foreground(p.Accent).Bold(true)

	lines := []string{fit(head.Render(" ▾ "+mail.Account), r.Width, base)}
	for i, f := range mail.Folders {
		style := base
		if i == mail.Selected {
			style = sel
		}
		label := style.Render("   " + f.Name)
		if f.Unread > 0 {
			c := count
			if i == mail.Selected {
				c = sel.Foreground(p.SelectedFg)
			}
			n := c.Render(humanize.Comma(int64(f.Unread)) + " ")
			label = fill(label, r.Width-ansi.StringWidth(n), style) + n
		}
		lines = append(lines, fill(label, r.Width, style))
	}
	return block(lines, r, base)
}

// ListRow is one row of the message list: a date header or one of a
// message's rows.
type ListRow struct {
	Header  string
	Message *content.Message
	Line    int
}

// messageRows is how many rows one message takes in the list.
const messageRows = 3

// ListRows flattens grouped messages into list rows.
func ListRows(groups []content.Group) []ListRow {
	var rows []ListRow
	for _, g := range groups {
		rows = append(rows, ListRow{Header: g.Label})
		for i := range g.Messages {
			for line := range messageRows {
				rows = append(rows, ListRow{Message: &g.Messages[i], Line: line})
			}
		}
	}
	return rows
}

// MessageAt returns the message whose rows are under p.
func MessageAt(l Layout, groups []content.Group, p wm.Position) (content.Message, bool) {
	pane := l.MessageList()
	if !pane.Contains(p) {
		return content.Message{}, false
	}
	i := p.Y - pane.Y - 1
	rows := ListRows(groups)
	if i < 0 || i >= len(rows) || rows[i].Message == nil {
		return content.Message{}, false
	}
	return *rows[i].Message, true
}

func renderMessageList(r wm.Rect, p theme.Palette, mail Mail) string {
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)
	muted := base.Foreground(p.Muted)
	header := base.Foreground(p.Accent).Bold(true)
	sel := lipgloss.NewStyle().Background(p.Selected).Foreground(p.SelectedFg)
	w := max(r.Width-1, 0)

	head := header.Render(" Focused ") + muted.Render(" Other")
	if mail.Query != "" {
		head = header.Render(fmt.Sprintf(" Results for %q", mail.Query))
	}
	lines := []string{fit(head, w, base)}
	if mail.Query != "" && len(mail.Groups) == 0 {
		lines = append(lines, fit(muted.Render(" No items match your search."), w, base))
	}
	for _, row := range ListRows(mail.Groups) {
		if row.Message == nil {
			lines = append(lines, fit(muted.Bold(true).Render(" "+row.Header), w, base))
			continue
		}
		m := row.Message
		style := base
		if mail.Open != nil && mail.Open.ID == m.ID {
			style = sel
		}
		var line string
		switch row.Line {
		case 0:
			from := style
			if m.Unread {
				from = from.Bold(true)
			}
			mark := " "
			if m.Unread {
				mark = "▍"
			}
			at := style.Render(content.ReceivedLabel(m.Received, mail.Now) + " ")
			line = fill(from.Render(mark+" "+m.From), w-ansi.StringWidth(at), style) + at
		case 1:
			subj := style
			if m.Unread {
				subj = subj.Foreground(p.Accent)
			}
			line = subj.Render("  " + m.Subject)
		default:
			line = style.Foreground(p.Muted).Render("  " + m.Preview)
		}
		lines = append(lines, fit(line, w, style))
	}
	edge := lipgloss.NewStyle().Foreground(p.Border).Background(p.Bg).Render("│")
	for i := range lines {
		lines[i] += edge
	}
	return block(lines, r, base)
}

func renderReadingPane(r wm.Rect, p theme.Palette, mail Mail) string {
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)
	muted := base.Foreground(p.Muted)
	if mail.Open == nil {
		lines := make([]string, r.Height/2)
		lines = append(lines, fit(muted.Render("  Select an item to read"), r.Width, base))
		return block(lines, r, base)
	}
	m := mail.Open
	lines := []string{
		"",
		base.Bold(true).Render(" " + m.Subject),
		"",
		base.Foreground(p.Accent).Render(" "+m.From) + muted.Render(" <"+m.Email+">"),
		muted.Render(" " + m.Received.Format("Mon 02/01/2006 15:04")),
		muted.Render(" " + strings.Repeat("─", max(r.Width-2, 0))),
	}
	for _, l := range strings.Split(ansi.Wordwrap(m.Body, max(r.Width-2, 1), ""), "\n") {
		lines = append(lines, base.Render(" "+l))
	}
	return block(lines, r, base)
}

func renderStatusBar(width int, p theme.Palette, s Status) string {
	base := lipgloss.NewStyle().Background(p.StatusBar).Foreground(p.StatusBarFg)
	left := base.Render(fmt.Sprintf(" Items: %s   Unread: %s   Windows: %d",
		humanize.Comma(int64(s.Items)), humanize.Comma(int64(s.Unread)), s.Windows))
	rightText := "All folders are up to date.  Connected to: Microsoft Exchange "
	if s.Clock != "" {
		rightText += " " + s.Clock + " "
	}
	right := base.Render(rightText)
	if ansi.StringWidth(left)+ansi.StringWidth(right) > width {
		return fit(left, width, base)
	}
	return fill(left, width-ansi.StringWidth(right), base) + right
}

// fill pads s with style-colored spaces up to width without truncating.
func fill(s string, width int, style lipgloss.Style) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + style.Render(strings.Repeat(" ", pad))
	}
	return s
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	return fill(ansi.Truncate(s, width, ""), width, style)
}

// block fits lines into r, padding missing rows with style.
func block(lines []string, r wm.Rect, style lipgloss.Style) string {
	out := make([]string, r.Height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fit(line, r.Width, style)
	}
	return strings.Join(out, "\n")
}
