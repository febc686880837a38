package input

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/app"
	"github.com/Gaurav-Gosain/tuimail/internal/ui"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
)

var testNow = time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) *app.Model {
	t.Helper()
	n := 0
	m := app.New(app.Options{
		Seed: 7,
		Now:  func() time.Time { return testNow },
		IDFunc: func() string {
			n++
			return fmt.Sprintf("w%d", n)
		},
	})
	m.Width = 120
	m.Height = 40
	return m
}

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func release(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func send(m *app.Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		HandleInput(msg, m)
	}
}

func mustWindow(t *testing.T, m *app.Model, id string) wm.Window {
	t.Helper()
	w, ok := m.Store.Window(id)
	if !ok {
		t.Fatalf("window %s not found", id)
	}
	return w
}

// The compose window opens at (24,4) sized 64x18: title row y=4, buttons
// minimize 78-80, maximize 81-83, close 84-86, grip at x>=86 on row 21.

func TestDragMovesWindow(t *testing.T) {
	m := newTestModel(t)
	ExecuteAction("new_message", m)

	send(m, click(30, 4))
	if m.Pointer.Kind() != wm.GestureDrag {
		t.Fatalf("expected drag gesture, got %v", m.Pointer.Kind())
	}
	send(m, motion(40, 10))
	if got := mustWindow(t, m, "w1").Position; got != (wm.Position{X: 34, Y: 10}) {
		t.Errorf("after move: position = %+v", got)
	}
	send(m, release(50, 12))
	if got := mustWindow(t, m, "w1").Position; got != (wm.Position{X: 44, Y: 12}) {
		t.Errorf("after release: position = %+v", got)
	}
	if m.Pointer.Active() {
		t.Error("pointer still captured after release")
	}

	// Motion after release is ignored
	send(m, motion(5, 5))
	if got := mustWindow(t, m, "w1").Position; got != (wm.Position{X: 44, Y: 12}) {
		t.Errorf("motion after release moved window to %+v", got)
	}
}

func TestResizeRespectsFloor(t *testing.T) {
	m := newTestModel(t)
	ExecuteAction("new_message", m)

	send(m, click(87, 21))
	if m.Pointer.Kind() != wm.GestureResize {
		t.Fatalf("expected resize gesture, got %v", m.Pointer.Kind())
	}
	send(m, motion(97, 25))
	if got := mustWindow(t, m, "w1").Size; got != (wm.Size{Width: 74, Height: 22}) {
		t.Errorf("grown size = %+v", got)
	}
	send(m, release(20, 5))
	if got := mustWindow(t, m, "w1").Size; got != (wm.Size{Width: 40, Height: 10}) {
		t.Errorf("floored size = %+v", got)
	}
}

func TestTitleButtons(t *testing.T) {
	m := newTestModel(t)
	ExecuteAction("new_message", m)

	send(m, click(82, 4))
	w := mustWindow(t, m, "w1")
	if !w.IsMaximized || w.Position != (wm.Position{X: 0, Y: 3}) || w.Size != (wm.Size{Width: 120, Height: 35}) {
		t.Fatalf("maximize: got %+v", w)
	}

	// Maximized windows do not drag
	send(m, click(10, 3))
	if m.Pointer.Active() {
		t.Error("drag started on a maximized window")
	}

	// Restore through the same button, now at the container's right edge
	send(m, click(114, 3))
	w = mustWindow(t, m, "w1")
	if w.IsMaximized || w.Position != (wm.Position{X: 24, Y: 4}) || w.Size != (wm.Size{Width: 64, Height: 18}) {
		t.Fatalf("restore: got %+v", w)
	}

	send(m, click(79, 4))
	if !mustWindow(t, m, "w1").IsMinimized {
		t.Fatal("minimize button did not minimize")
	}

	// Tray pill restores it
	send(m, click(2, 38))
	if mustWindow(t, m, "w1").IsMinimized {
		t.Fatal("tray click did not restore the window")
	}

	send(m, click(85, 4))
	if m.Store.Len() != 0 {
		t.Fatalf("close button left %d windows", m.Store.Len())
	}
}

func TestClickRaisesOnlyFromTitleBar(t *testing.T) {
	m := newTestModel(t)
	ExecuteAction("new_message", m) // w1 at (24,4)
	ExecuteAction("new_message", m) // w2 at (27,6)

	// Body of w1, outside w2
	send(m, click(25, 10))
	if top, _ := m.Focused(); top.ID != "w2" {
		t.Errorf("body click raised %s", top.ID)
	}
	send(m, click(30, 4))
	send(m, release(30, 4))
	if top, _ := m.Focused(); top.ID != "w1" {
		t.Errorf("title click did not raise w1, top is %s", top.ID)
	}
	if w := mustWindow(t, m, "w1"); w.ZIndex != m.Store.ZCounter() {
		t.Errorf("w1 z = %d, counter = %d", w.ZIndex, m.Store.ZCounter())
	}
}

func TestTitleButtonRaisesBackgroundWindow(t *testing.T) {
	m := newTestModel(t)
	ExecuteAction("new_message", m) // w1 at (24,4)
	ExecuteAction("new_message", m) // w2 at (27,6), above w1

	// w1's maximize button sits above w2's title row
	send(m, click(82, 4))
	top, _ := m.Focused()
	if top.ID != "w1" || !top.IsMaximized {
		t.Fatalf("maximize left %s on top (w1 maximized=%v)", top.ID, mustWindow(t, m, "w1").IsMaximized)
	}
	if got, _ := m.Store.WindowAt(wm.Position{X: 60, Y: 10}); got.ID != "w1" {
		t.Errorf("maximized w1 drawn under %s", got.ID)
	}
}

func TestMaximizeDuringDragEndsDrag(t *testing.T) {
	m := newTestModel(t)
	ExecuteAction("new_message", m)

	send(m, click(30, 4), motion(35, 6))
	send(m, key("z"))
	if m.Pointer.Active() {
		t.Fatal("drag survived maximize")
	}
	send(m, motion(60, 20), release(60, 20))
	w := mustWindow(t, m, "w1")
	if !w.IsMaximized || w.Position != m.Container().Position {
		t.Errorf("maximized window moved to %+v", w.Position)
	}
}

func TestRibbonOpensWindows(t *testing.T) {
	m := newTestModel(t)

	send(m, click(2, 1))
	w, ok := m.Store.Topmost()
	if !ok || w.Component != wm.ComponentCompose {
		t.Fatalf("ribbon New Email opened %+v", w)
	}
	if w.Title != "Untitled - Message (HTML)" {
		t.Errorf("title = %q", w.Title)
	}

	// Gap between buttons does nothing
	send(m, click(12, 1))
	if m.Store.Len() != 1 {
		t.Errorf("gap click opened a window")
	}
}

func TestOverlayClickDismisses(t *testing.T) {
	m := newTestModel(t)
	ExecuteAction("toggle_help", m)
	send(m, click(2, 1))
	if m.ShowHelp {
		t.Error("click did not dismiss help")
	}
	if m.Store.Len() != 0 {
		t.Error("click through help reached the ribbon")
	}
}

func TestKeybindings(t *testing.T) {
	m := newTestModel(t)

	send(m, key("n"), key("c"))
	if m.Store.Len() != 2 {
		t.Fatalf("expected 2 windows, got %d", m.Store.Len())
	}
	top, _ := m.Focused()
	if top.Component != wm.ComponentContactDetails {
		t.Errorf("focused = %s", top.Component)
	}

	send(m, tea.KeyPressMsg{Code: tea.KeyTab})
	if top, _ := m.Focused(); top.Component != wm.ComponentCompose {
		t.Errorf("tab focused %s", top.Component)
	}

	send(m, key("m"))
	if top, _ := m.Focused(); top.Component != wm.ComponentContactDetails {
		t.Errorf("after minimize focus is %s", top.Component)
	}

	send(m, key("M"))
	for _, w := range m.Store.Windows() {
		if w.IsMinimized {
			t.Errorf("%s still minimized after restore_all", w.Title)
		}
	}

	send(m, key("x"))
	if m.Store.Len() != 1 {
		t.Errorf("close left %d windows", m.Store.Len())
	}

	_, cmd := HandleKey(key("q"), m)
	if cmd == nil {
		t.Error("quit returned no command")
	}
}

func TestQuitClosesOverlayFirst(t *testing.T) {
	m := newTestModel(t)
	send(m, key("?"))
	if !m.ShowHelp {
		t.Fatal("help not shown")
	}
	if _, cmd := HandleKey(key("q"), m); cmd != nil || m.ShowHelp {
		t.Error("quit with help open should only close help")
	}
}

func TestAddressBookSearch(t *testing.T) {
	m := newTestModel(t)
	send(m, key("b"))
	w, _ := m.Store.Topmost()
	if m.SearchWindow != w.ID {
		t.Fatalf("address book search not focused")
	}

	// Typed keys go to the search box, not to keybindings
	send(m, key("s"), key("a"), key("x"), tea.KeyPressMsg{Code: tea.KeyBackspace}, key("l"))
	if got := m.Queries[w.ID]; got != "sal" {
		t.Errorf("query = %q", got)
	}
	if m.Store.Len() != 1 {
		t.Errorf("typing opened or closed windows")
	}

	send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.SearchWindow != "" {
		t.Error("esc did not leave the search box")
	}
	send(m, key("x"))
	if m.Store.Len() != 0 {
		t.Error("x after leaving search did not close the window")
	}
	if _, ok := m.Queries[w.ID]; ok {
		t.Error("query kept after close")
	}
}

func TestLogScrollKeys(t *testing.T) {
	m := newTestModel(t)
	for i := range 80 {
		m.LogInfo("entry %d", i)
	}
	send(m, tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	if !m.ShowLogs {
		t.Fatal("logs not shown")
	}
	bottom := m.LogScrollOffset
	if bottom == 0 {
		t.Fatal("expected the viewer to open scrolled to the end")
	}
	send(m, key("k"), key("k"))
	if m.LogScrollOffset != bottom-2 {
		t.Errorf("offset = %d, want %d", m.LogScrollOffset, bottom-2)
	}
	send(m, key("j"), key("j"), key("j"))
	if m.LogScrollOffset != bottom {
		t.Errorf("offset past end = %d, want %d", m.LogScrollOffset, bottom)
	}
	send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.ShowLogs {
		t.Error("esc did not close logs")
	}
}

func TestDispatcherCoversKeybindings(t *testing.T) {
	d := GetDispatcher()
	for _, action := range []string{
		"new_message", "address_book", "contact_details", "account_info",
		"account_settings", "options", "close_window", "minimize_window",
		"toggle_maximize", "restore_all", "next_window", "prev_window",
		"toggle_help", "toggle_logs", "cycle_theme", "quit",
		"search_mail", "toggle_calendar", "prev_month", "next_month",
		"calendar_today",
	} {
		if !d.HasAction(action) {
			t.Errorf("no handler for %s", action)
		}
	}
}

func typeText(m *app.Model, text string) {
	for _, r := range text {
		send(m, key(string(r)))
	}
}

func TestMailSearch(t *testing.T) {
	m := newTestModel(t)
	inbox := m.Mailbox.Folder("Inbox")

	send(m, key("/"))
	if !m.SearchingMail {
		t.Fatal("/ did not focus the search box")
	}
	typeText(m, "#!q")
	if m.MessageQuery != "#!q" {
		t.Fatalf("query = %q", m.MessageQuery)
	}
	if n := len(m.MailView().Groups); n != 0 {
		t.Errorf("nonsense query left %d groups", n)
	}
	if m.Store.Len() != 0 {
		t.Error("typing triggered keybindings")
	}

	send(m, tea.KeyPressMsg{Code: tea.KeyBackspace}, tea.KeyPressMsg{Code: tea.KeyBackspace}, tea.KeyPressMsg{Code: tea.KeyBackspace})
	if m.MessageQuery != "" {
		t.Fatalf("query after backspaces = %q", m.MessageQuery)
	}

	first := strings.Fields(inbox[0].From)[0]
	typeText(m, first)
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.SearchingMail || m.MessageQuery != first {
		t.Fatalf("enter: searching=%v query=%q", m.SearchingMail, m.MessageQuery)
	}
	var found, total int
	for _, g := range m.MailView().Groups {
		for _, msg := range g.Messages {
			total++
			if msg.ID == inbox[0].ID {
				found++
			}
		}
	}
	if found != 1 || total > len(inbox) {
		t.Errorf("results: %d of %d, newest match found %d times", total, len(inbox), found)
	}

	// Unfocused, keys are bindings again
	send(m, key("n"))
	if m.Store.Len() != 1 {
		t.Error("n after enter did not open a message window")
	}
	send(m, key("x"))

	sb, _ := ui.SearchBox(m.Width)
	send(m, click(sb.X+2, sb.Y))
	if !m.SearchingMail {
		t.Fatal("clicking the search box did not focus it")
	}
	send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.SearchingMail || m.MessageQuery != "" {
		t.Errorf("esc: searching=%v query=%q", m.SearchingMail, m.MessageQuery)
	}
}

func TestCalendarNavigation(t *testing.T) {
	m := newTestModel(t)
	day := func() string { return m.SelectedDay.Format(time.DateOnly) }

	send(m, key("]"))
	if m.CalendarMonth.Month() != time.March {
		t.Error("month keys should do nothing in the mail view")
	}

	send(m, key("v"))
	if m.ViewMode != ui.ViewCalendar {
		t.Fatal("v did not open the calendar")
	}
	send(m, key("]"))
	if day() != "2026-04-04" {
		t.Errorf("next month selected %s", day())
	}
	send(m, key("["), key("["))
	if day() != "2026-02-04" || m.CalendarMonth.Month() != time.February {
		t.Errorf("two months back selected %s", day())
	}
	send(m, key("T"))
	if day() != "2026-03-04" {
		t.Errorf("today selected %s", day())
	}

	// Grid at 120x40: 11-cell columns, 5-row weeks below two header rows
	g := m.Layout().CalendarGrid()
	send(m, click(6*11+1, g.Y+2))
	if day() != "2026-03-01" {
		t.Errorf("clicked day = %s, want 2026-03-01", day())
	}
	send(m, click(6, g.Y))
	if day() != "2026-04-01" {
		t.Errorf("next button selected %s", day())
	}
	send(m, click(12, g.Y))
	if day() != "2026-03-04" {
		t.Errorf("today button selected %s", day())
	}
	// Clicks in the calendar never reach the hidden folder pane
	send(m, click(2, g.Y+3))
	if m.SelectedFolder != 0 {
		t.Errorf("calendar click selected folder %d", m.SelectedFolder)
	}

	send(m, key("T"))
	fresh := m.Mailbox.Receive(testNow)
	a := m.Layout().CalendarAgenda()
	send(m, click(a.X+3, a.Y+2))
	if m.ViewMode != ui.ViewMail || m.OpenMessage != fresh.ID {
		t.Errorf("agenda click: view=%v open=%q, want %q", m.ViewMode, m.OpenMessage, fresh.ID)
	}

	// Ribbon button toggles as well
	send(m, click(83, 1))
	if m.ViewMode != ui.ViewCalendar {
		t.Error("ribbon Calendar button did not switch views")
	}
}
