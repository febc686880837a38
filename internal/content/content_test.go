package content_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Gaurav-Gosain/tuimail/internal/content"
	"github.com/Gaurav-Gosain/tuimail/internal/theme"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
	"github.com/charmbracelet/x/ansi"
)

// =============================================================================
// Contacts
// =============================================================================

func TestGenerateContacts(t *testing.T) {
	contacts := content.GenerateContacts(42)

	if len(contacts) != content.GeneratedContacts+4 {
		t.Fatalf("len = %d, want %d", len(contacts), content.GeneratedContacts+4)
	}
	for i := range 4 {
		if !contacts[i].Shared {
			t.Errorf("contact %d (%s) should be a shared mailbox", i, contacts[i].DisplayName)
		}
	}

	emails := map[string]bool{}
	for i, c := range contacts {
		if emails[c.Email] {
			t.Errorf("duplicate email %q", c.Email)
		}
		emails[c.Email] = true
		if i > 4 && strings.ToLower(contacts[i-1].DisplayName) > strings.ToLower(c.DisplayName) {
			t.Errorf("people not sorted: %q before %q", contacts[i-1].DisplayName, c.DisplayName)
		}
		if c.Initials == "" {
			t.Errorf("%s has no initials", c.DisplayName)
		}
	}
}

func TestGenerateContacts_Deterministic(t *testing.T) {
	a := content.GenerateContacts(7)
	b := content.GenerateContacts(7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("contact %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSearchContacts(t *testing.T) {
	contacts := content.GenerateContacts(1)

	if got := content.SearchContacts(contacts, "  "); len(got) != len(contacts) {
		t.Errorf("blank query returned %d contacts, want all", len(got))
	}

	got := content.SearchContacts(contacts, "helpdesk")
	if len(got) == 0 || got[0].DisplayName != "Help Desk" {
		t.Errorf("helpdesk search = %v", got)
	}
	if got := content.SearchContacts(contacts, "zzzzqqq"); len(got) != 0 {
		t.Errorf("nonsense query matched %d contacts", len(got))
	}
}

func TestFirstPerson(t *testing.T) {
	c, ok := content.FirstPerson(content.GenerateContacts(3))
	if !ok || c.Shared {
		t.Errorf("FirstPerson = %+v, %v", c, ok)
	}
	if _, ok := content.FirstPerson(nil); ok {
		t.Error("FirstPerson(nil) should report false")
	}
}

// =============================================================================
// Mailbox
// =============================================================================

func TestMailbox_NewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC)
	mb := content.NewMailbox(5, content.GenerateContacts(5), now)

	inbox := mb.Folder("Inbox")
	if len(inbox) == 0 {
		t.Fatal("inbox is empty")
	}
	for i := 1; i < len(inbox); i++ {
		if inbox[i].Received.After(inbox[i-1].Received) {
			t.Fatalf("inbox not newest first at %d", i)
		}
	}
	if len(mb.Folder("Deleted Items")) != 0 {
		t.Error("Deleted Items should start empty")
	}
}

func TestMailbox_ReceiveAndMarkRead(t *testing.T) {
	now := time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC)
	mb := content.NewMailbox(5, content.GenerateContacts(5), now)

	items, unread := mb.Counts("Inbox")
	m := mb.Receive(now.Add(time.Minute))
	if !m.Unread || m.Folder != "Inbox" {
		t.Errorf("received message = %+v", m)
	}
	if got := mb.Folder("Inbox")[0].ID; got != m.ID {
		t.Errorf("newest inbox message = %s, want %s", got, m.ID)
	}
	gotItems, gotUnread := mb.Counts("Inbox")
	if gotItems != items+1 || gotUnread != unread+1 {
		t.Errorf("counts = %d/%d, want %d/%d", gotItems, gotUnread, items+1, unread+1)
	}

	mb.MarkRead(m.ID)
	if _, u := mb.Counts("Inbox"); u != unread {
		t.Errorf("unread after MarkRead = %d, want %d", u, unread)
	}
}

func TestGroupByDate(t *testing.T) {
	now := time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC)
	msgs := []content.Message{
		{ID: "a", Received: now.Add(-time.Hour)},
		{ID: "b", Received: now.Add(-20 * time.Hour)},
		{ID: "c", Received: now.AddDate(0, 0, -3)},
		{ID: "d", Received: now.AddDate(0, 0, -30)},
	}
	groups := content.GroupByDate(msgs, now)

	want := []string{"Today", "Yesterday", "This Week", "Older"}
	if len(groups) != len(want) {
		t.Fatalf("groups = %+v", groups)
	}
	for i, g := range groups {
		if g.Label != want[i] || len(g.Messages) != 1 {
			t.Errorf("group %d = %s with %d messages", i, g.Label, len(g.Messages))
		}
	}

	if got := content.GroupByDate(msgs[:1], now); len(got) != 1 {
		t.Errorf("empty groups should be dropped, got %d", len(got))
	}
}

func TestReceivedLabel(t *testing.T) {
	now := time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC)
	if got := content.ReceivedLabel(now.Add(-90*time.Minute), now); got != "13:30" {
		t.Errorf("today = %q, want 13:30", got)
	}
	if got := content.ReceivedLabel(now.AddDate(0, 0, -2), now); !strings.HasSuffix(got, "ago") {
		t.Errorf("older = %q, want a relative age", got)
	}
}

// =============================================================================
// Calendar and search
// =============================================================================

func TestMonthGrid_StartsOnMonday(t *testing.T) {
	// 1 March 2026 is a Sunday
	days := content.MonthGrid(time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC))
	if len(days) != content.GridDays {
		t.Fatalf("grid has %d days", len(days))
	}
	if first := days[0]; first.Weekday() != time.Monday || first.Month() != time.February || first.Day() != 23 {
		t.Errorf("grid starts %s", first.Format(time.DateOnly))
	}
	if days[6].Day() != 1 || days[6].Month() != time.March {
		t.Errorf("day 6 = %s, want 2026-03-01", days[6].Format(time.DateOnly))
	}
	if last := days[len(days)-1]; last.Month() != time.April || last.Day() != 5 {
		t.Errorf("grid ends %s", last.Format(time.DateOnly))
	}

	// A month starting on Monday has no leading days
	if got := content.MonthGrid(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC))[0]; got.Day() != 1 {
		t.Errorf("June grid starts %s", got.Format(time.DateOnly))
	}
}

func TestCountByDayAndOnDay(t *testing.T) {
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	msgs := []content.Message{
		{ID: "a", Received: day.Add(15 * time.Hour)},
		{ID: "b", Received: day.Add(9 * time.Hour)},
		{ID: "c", Received: day.Add(-time.Hour)},
	}
	counts := content.CountByDay(msgs)
	if counts["2026-03-12"] != 2 || counts["2026-03-11"] != 1 {
		t.Errorf("counts = %v", counts)
	}
	on := content.OnDay(msgs, day)
	if len(on) != 2 || on[0].ID != "a" || on[1].ID != "b" {
		t.Errorf("OnDay = %+v", on)
	}
}

func TestSearchMessages_KeepsListOrder(t *testing.T) {
	msgs := []content.Message{
		{ID: "a", From: "Sara Lee", Subject: "Budget"},
		{ID: "b", From: "Tom Hill", Subject: "Lunch"},
		{ID: "c", From: "Sam Ray", Subject: "Budget review"},
	}
	got := content.SearchMessages(msgs, "Budget")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("SearchMessages = %+v", got)
	}
	if got := content.SearchMessages(msgs, "  "); len(got) != len(msgs) {
		t.Errorf("blank query kept %d of %d", len(got), len(msgs))
	}
	if got := content.SearchMessages(msgs, "Zzq"); len(got) != 0 {
		t.Errorf("no-match query returned %d", len(got))
	}
}

// =============================================================================
// Panels
// =============================================================================

func testData() content.Data {
	return content.Data{
		Account:  content.Account{DisplayName: "Alex Johnson", Email: "alex.johnson@contoso.com"},
		Contacts: content.GenerateContacts(9),
		Theme:    theme.White,
	}
}

func TestRender_FitsBox(t *testing.T) {
	p := theme.Lookup(theme.Black)
	for _, comp := range wm.Components {
		t.Run(comp.String(), func(t *testing.T) {
			out := content.Render(wm.Window{Component: comp}, testData(), 50, 12, p)
			lines := strings.Split(out, "\n")
			if len(lines) != 12 {
				t.Fatalf("%d lines, want 12", len(lines))
			}
			for i, l := range lines {
				if w := ansi.StringWidth(l); w != 50 {
					t.Errorf("line %d width %d, want 50", i, w)
				}
			}
		})
	}
}

func TestRender_Content(t *testing.T) {
	p := theme.Lookup(theme.White)
	d := testData()

	tests := []struct {
		comp wm.Component
		body string
		want string
	}{
		{wm.ComponentGeneric, "", "Window content"},
		{wm.ComponentGeneric, "hello there", "hello there"},
		{wm.ComponentAccountInfo, "", "94.5 GB free of 99 GB"},
		{wm.ComponentAddressBook, "", "Offline Global Address List"},
		{wm.ComponentOptions, "", "(•) White"},
		{wm.ComponentAccountSettings, "", "Microsoft Exchange"},
		{wm.ComponentCompose, "", "Subject"},
	}
	for _, tc := range tests {
		out := ansi.Strip(content.Render(wm.Window{Component: tc.comp, Body: tc.body}, d, 120, 30, p))
		if !strings.Contains(out, tc.want) {
			t.Errorf("%s: missing %q in\n%s", tc.comp, tc.want, out)
		}
	}
}

func TestRender_AddressBookSearch(t *testing.T) {
	d := testData()
	d.Query = "sales"
	out := ansi.Strip(content.Render(wm.Window{Component: wm.ComponentAddressBook}, d, 140, 20, theme.Lookup(theme.Black)))
	if !strings.Contains(out, "Sales Team") {
		t.Errorf("search result missing:\n%s", out)
	}
}

func TestRender_EmptyBox(t *testing.T) {
	if out := content.Render(wm.Window{}, testData(), 0, 5, theme.Lookup(theme.Black)); out != "" {
		t.Errorf("zero width rendered %q", out)
	}
}

func TestDefaultTitle(t *testing.T) {
	d := testData()
	person, _ := content.FirstPerson(d.Contacts)
	if got := content.DefaultTitle(wm.ComponentContactDetails, d); got != person.DisplayName {
		t.Errorf("contact title = %q, want %q", got, person.DisplayName)
	}
	if got := content.DefaultTitle(wm.ComponentOptions, d); got != "Outlook Options" {
		t.Errorf("options title = %q", got)
	}
}

func TestAccountInitials(t *testing.T) {
	if got := (content.Account{DisplayName: "alex de la johnson"}).Initials(); got != "AD" {
		t.Errorf("Initials = %q, want AD", got)
	}
}
