package content

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// Account is the signed-in mailbox shown by the account panels.
type Account struct {
	DisplayName string
	Email       string
	Language    string
	TimeZone    string
}

// Initials returns up to two initials from the display name.
func (a Account) Initials() string {
	var b strings.Builder
	for _, f := range strings.Fields(a.DisplayName) {
		b.WriteString(strings.ToUpper(f[:1]))
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}

// Data is everything a panel may draw from.
type Data struct {
	Account  Account
	Contacts []Contact
	// Query filters the address book.
	Query string
	// Searching marks the address book search box as focused.
	Searching bool
	Theme     string
}

// DefaultTitle is the title a window of comp gets when opened without one.
func DefaultTitle(comp wm.Component, d Data) string {
	switch comp {
	case wm.ComponentCompose:
		return "Untitled - Message (HTML)"
	case wm.ComponentAccountInfo:
		return "Account Information - Outlook"
	case wm.ComponentAddressBook:
		return "Address Book: Offline Global Address List"
	case wm.ComponentContactDetails:
		if c, ok := FirstPerson(d.Contacts); ok {
			return c.DisplayName
		}
		return "Contact"
	case wm.ComponentOptions:
		return "Outlook Options"
	case wm.ComponentAccountSettings:
		return "Account Settings"
	default:
		return "Window"
	}
}

type styles struct {
	text    lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	accent  lipgloss.Style
	button  lipgloss.Style
	primary lipgloss.Style
	field   lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		text:    lipgloss.NewStyle().Foreground(p.Fg),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		heading: lipgloss.NewStyle().Foreground(p.Fg).Bold(true),
		label:   lipgloss.NewStyle().Foreground(p.Muted).Width(10),
		accent:  lipgloss.NewStyle().Foreground(p.Accent),
		button:  lipgloss.NewStyle().Foreground(p.Fg).Background(p.Pane).Padding(0, 1),
		primary: lipgloss.NewStyle().Foreground(p.AccentFg).Background(p.Accent).Padding(0, 1),
		field:   lipgloss.NewStyle().Foreground(p.Fg).Underline(true),
	}
}

// Render draws w's panel into exactly width x height cells.
func Render(w wm.Window, d Data, width, height int, p theme.Palette) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := newStyles(p)
	var body string
	switch w.Component {
	case wm.ComponentCompose:
		body = renderCompose(s, d, width)
	case wm.ComponentAccountInfo:
		body = renderAccountInfo(s, d)
	case wm.ComponentAddressBook:
		body = renderAddressBook(s, d, width, height, p)
	case wm.ComponentContactDetails:
		body = renderContactDetails(s, d)
	case wm.ComponentOptions:
		body = renderOptions(s, d)
	case wm.ComponentAccountSettings:
		body = renderAccountSettings(s, d)
	default:
		body = w.Body
		if body == "" {
			body = "Window content"
		}
		body = s.text.Render(ansi.Wordwrap(body, width, ""))
	}
	return Fit(body, width, height)
}

// Fit clips or pads s to exactly width x height cells.
func Fit(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range lines {
		l = ansi.Truncate(l, width, "")
		if pad := width - ansi.StringWidth(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		lines[i] = l
	}
	return strings.Join(lines, "\n")
}

func renderCompose(s styles, d Data, width int) string {
	rule := s.muted.Render(strings.Repeat("─", max(width, 0)))
	from := d.Account.Email
	lines := []string{
		s.primary.Render("Send") + " " + s.button.Render("Discard") + " " + s.button.Render("📎 Attach"),
		"",
		s.label.Render("From") + s.text.Render(from),
		s.label.Render("To") + s.field.Render(strings.Repeat(" ", max(width-12, 1))),
		s.label.Render("Cc") + s.field.Render(strings.Repeat(" ", max(width-12, 1))),
		s.label.Render("Subject") + s.field.Render(strings.Repeat(" ", max(width-12, 1))),
		rule,
		"",
		s.muted.Render("Best regards,"),
		s.muted.Render(d.Account.DisplayName),
	}
	return strings.Join(lines, "\n")
}

func renderAccountInfo(s styles, d Data) string {
	lines := []string{
		s.heading.Render("Account Information"),
		"",
		s.accent.Render("✉ "+d.Account.Email) + s.muted.Render("  Microsoft Exchange"),
		"",
		s.button.Render("+ Add Account"),
		"",
		s.heading.Render("Account Settings"),
		s.muted.Render("  Change settings for this account or set up more connections."),
		s.heading.Render("Automatic Replies (Out of Office)"),
		s.muted.Render("  Use automatic replies to notify others that you are on vacation."),
		s.heading.Render("Mailbox Settings"),
		s.muted.Render("  Manage the size of your mailbox by emptying Deleted Items and archiving."),
		s.text.Render("  ") + s.accent.Render(strings.Repeat("█", 3)+strings.Repeat("░", 17)) +
			s.muted.Render(" 94.5 GB free of 99 GB"),
		s.heading.Render("Rules and Alerts"),
		s.muted.Render("  Use Rules and Alerts to help organize your incoming email messages."),
		s.heading.Render("Manage Add-ins"),
		s.muted.Render("  Manage and acquire Web Add-ins for Outlook."),
	}
	return strings.Join(lines, "\n")
}

func renderAddressBook(s styles, d Data, width, height int, p theme.Palette) string {
	matches := SearchContacts(d.Contacts, d.Query)

	box := s.field.Render(d.Query)
	if d.Searching {
		box += s.accent.Render("▏")
	}
	header := []string{
		s.muted.Render("Search: ") + box + s.muted.Render(fmt.Sprintf("   %s of %s", humanize.Comma(int64(len(matches))), humanize.Comma(int64(len(d.Contacts))))),
		s.muted.Render("Address Book: ") + s.text.Render("Offline Global Address List - "+d.Account.Email),
	}

	rows := make([][]string, 0, len(matches))
	for _, c := range matches {
		rows = append(rows, []string{c.DisplayName, c.Title, c.BusinessPhone, c.Office, c.Department, c.Email})
	}
	headerStyle := lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(p.Fg).Padding(0, 1)
	sharedStyle := cellStyle.Foreground(p.Info)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(p.Border)).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		BorderColumn(false).
		Headers("Name", "Title", "Business Phone", "Location", "Department", "Email Address").
		Rows(rows...).
		Width(width).
		Height(max(height-len(header), 2)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(matches) && matches[row].Shared:
				return sharedStyle
			default:
				return cellStyle
			}
		})

	return strings.Join(header, "\n") + "\n" + t.Render()
}

func renderContactDetails(s styles, d Data) string {
	c, ok := FirstPerson(d.Contacts)
	if !ok {
		return s.muted.Render("No contact selected")
	}
	field := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return s.label.Width(16).Render(label) + s.text.Render(value)
	}
	lines := []string{
		s.primary.Render(" "+c.Initials+" ") + "  " + s.heading.Render(c.DisplayName),
		"     " + s.muted.Render(c.Title+" · "+c.Department),
		"",
		s.heading.Render("Contact information"),
		field("Email", c.Email),
		field("Business phone", c.BusinessPhone),
		field("Mobile", c.Phone),
		"",
		s.heading.Render("Organization"),
		field("Company", c.Company),
		field("Office", c.Office),
		field("Alias", c.Alias),
		field("Country/Region", c.Country),
	}
	return strings.Join(lines, "\n")
}

func renderOptions(s styles, d Data) string {
	lines := []string{
		s.heading.Render("General options for working with Outlook."),
		"",
		s.heading.Render("Personalize your copy of Microsoft Office"),
		s.label.Width(16).Render("User name:") + s.field.Render(d.Account.DisplayName),
		s.label.Width(16).Render("Initials:") + s.field.Render(d.Account.Initials()),
		s.label.Width(16).Render("Email:") + s.text.Render(d.Account.Email),
		"",
		s.text.Render("Office Theme:"),
	}
	current := theme.Canonical(d.Theme)
	for _, name := range theme.Names {
		mark := "( )"
		style := s.text
		if name == current {
			mark = "(•)"
			style = s.accent
		}
		lines = append(lines, "  "+style.Render(mark+" "+name))
	}
	lines = append(lines, "", s.muted.Render("Press t to cycle the office theme."))
	return strings.Join(lines, "\n")
}

func renderAccountSettings(s styles, d Data) string {
	lines := []string{
		s.heading.Render("Email Accounts"),
		s.muted.Render("You can add or remove an account."),
		"",
		s.label.Width(28).Render("Name") + s.muted.Render("Type"),
		s.accent.Render(fmt.Sprintf("%-28s", d.Account.Email)) + s.text.Render("Microsoft Exchange (default)"),
	}
	lines = append(lines,
		"",
		s.muted.Render("Selected account delivers new messages to the following location:"),
		s.text.Render(d.Account.Email+"\\Inbox"),
		"",
		s.button.Render("Close"),
	)
	return strings.Join(lines, "\n")
}
