package app

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/content"
	"github.com/Gaurav-Gosain/tuimail/internal/ui"
	"github.com/Gaurav-Gosain/tuimail/internal/wm"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestModel(t *testing.T) (*Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)}
	n := 0
	m := New(Options{
		Seed: 3,
		Now:  clock.Now,
		IDFunc: func() string {
			n++
			return fmt.Sprintf("w%d", n)
		},
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, clock
}

func TestOpenComponentUsesPreset(t *testing.T) {
	m, _ := newTestModel(t)

	w, err := m.OpenComponent(wm.ComponentAccountInfo)
	if err != nil {
		t.Fatalf("OpenComponent: %v", err)
	}
	if w.Position != (wm.Position{X: 10, Y: 5}) || w.Size != (wm.Size{Width: 72, Height: 22}) {
		t.Errorf("geometry = %+v %+v", w.Position, w.Size)
	}
	if w.Title != "Account Information - Outlook" {
		t.Errorf("title = %q", w.Title)
	}

	// No preset: default position and size
	w, _ = m.OpenComponent(wm.ComponentOptions)
	if w.Size != (wm.Size{Width: 64, Height: 18}) {
		t.Errorf("options size = %+v", w.Size)
	}
	if w.ZIndex != m.Store.ZCounter() {
		t.Errorf("new window z = %d, counter %d", w.ZIndex, m.Store.ZCounter())
	}
}

func TestFocusFollowsStack(t *testing.T) {
	m, _ := newTestModel(t)
	if _, ok := m.Focused(); ok {
		t.Fatal("focus with no windows")
	}

	a, _ := m.OpenComponent(wm.ComponentCompose)
	b, _ := m.OpenComponent(wm.ComponentOptions)
	c, _ := m.OpenComponent(wm.ComponentAccountSettings)

	if f, _ := m.Focused(); f.ID != c.ID {
		t.Errorf("focused %s, want %s", f.ID, c.ID)
	}
	m.FocusNext()
	if f, _ := m.Focused(); f.ID != a.ID {
		t.Errorf("next wrapped to %s, want %s", f.ID, a.ID)
	}
	m.FocusPrev()
	if f, _ := m.Focused(); f.ID != c.ID {
		t.Errorf("prev gave %s, want %s", f.ID, c.ID)
	}

	// a was raised after b, so it is next in the stack
	m.MinimizeFocused()
	if f, _ := m.Focused(); f.ID != a.ID {
		t.Errorf("after minimize focused %s, want %s", f.ID, a.ID)
	}
	if got, _ := m.Store.Window(b.ID); got.ZIndex != b.ZIndex {
		t.Errorf("b was never raised but z moved from %d to %d", b.ZIndex, got.ZIndex)
	}

	m.RestoreAll()
	if f, _ := m.Focused(); f.ID != c.ID {
		t.Errorf("restored window not on top, focused %s", f.ID)
	}
}

func TestMinimizedMaximizedWindow(t *testing.T) {
	m, _ := newTestModel(t)
	w, _ := m.OpenComponent(wm.ComponentCompose)

	m.ToggleMaximizeFocused()
	m.MinimizeFocused()
	got, _ := m.Store.Window(w.ID)
	if !got.IsMinimized || !got.IsMaximized {
		t.Fatalf("flags = min %v max %v", got.IsMinimized, got.IsMaximized)
	}
	if st := m.Manager.Frame(got).State(&m.Pointer); st != wm.StateMinimized {
		t.Errorf("state = %s, want minimized", st)
	}

	m.Restore(w.ID)
	got, _ = m.Store.Window(w.ID)
	if got.IsMinimized || !got.IsMaximized {
		t.Errorf("restore lost maximize: %+v", got)
	}
}

func TestResizeRefitsMaximized(t *testing.T) {
	m, _ := newTestModel(t)
	w, _ := m.OpenComponent(wm.ComponentCompose)
	m.ToggleMaximizeFocused()

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	got, _ := m.Store.Window(w.ID)
	if got.Position != (wm.Position{X: 0, Y: 3}) || got.Size != (wm.Size{Width: 100, Height: 25}) {
		t.Errorf("refit geometry = %+v %+v", got.Position, got.Size)
	}

	// Restore still returns to the geometry from before maximize
	m.ToggleMaximizeFocused()
	got, _ = m.Store.Window(w.ID)
	if got.Position != (wm.Position{X: 24, Y: 4}) || got.Size != (wm.Size{Width: 64, Height: 18}) {
		t.Errorf("restore geometry = %+v %+v", got.Position, got.Size)
	}
}

func TestCloseMidDragReleasesPointer(t *testing.T) {
	m, _ := newTestModel(t)
	w, _ := m.OpenComponent(wm.ComponentCompose)

	if err := m.Manager.Frame(w).PressTitleBar(&m.Pointer, w.Position); err != nil {
		t.Fatalf("PressTitleBar: %v", err)
	}
	m.CloseWindow(w.ID)
	if m.Pointer.Active() {
		t.Error("pointer still held by a closed window")
	}
	if err := m.Pointer.Move(wm.Position{X: 50, Y: 20}); err != nil {
		t.Errorf("move after close: %v", err)
	}
}

func TestCloseUnknownWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m.CloseWindow("missing")
	if len(m.Notifications) != 0 {
		t.Errorf("closing an unknown id produced %d notifications", len(m.Notifications))
	}
}

func TestMailDelivery(t *testing.T) {
	m, clock := newTestModel(t)
	before, _ := m.Mailbox.Counts("Inbox")

	m.Update(TickerMsg(clock.t.Add(time.Second)))
	if n, _ := m.Mailbox.Counts("Inbox"); n != before {
		t.Fatalf("mail arrived early: %d -> %d", before, n)
	}

	clock.t = clock.t.Add(newMailInterval)
	m.Update(TickerMsg(clock.t))
	if n, _ := m.Mailbox.Counts("Inbox"); n != before+1 {
		t.Fatalf("inbox = %d, want %d", n, before+1)
	}
	if len(m.Notifications) != 1 || !strings.HasPrefix(m.Notifications[0].Message, "New mail from ") {
		t.Errorf("notifications = %+v", m.Notifications)
	}

	newest := m.Mailbox.Folder("Inbox")[0]
	if !newest.Unread {
		t.Error("new mail should be unread")
	}
	m.OpenMessageID(newest.ID)
	if m.Mailbox.Folder("Inbox")[0].Unread {
		t.Error("opening did not mark read")
	}
}

func TestMessageSearchFiltersList(t *testing.T) {
	m, _ := newTestModel(t)
	inbox := m.Mailbox.Folder("Inbox")
	m.OpenMessageID(inbox[0].ID)

	m.MessageQuery = "#!q"
	v := m.MailView()
	if len(v.Groups) != 0 {
		t.Errorf("nonsense query left %d groups", len(v.Groups))
	}
	if v.Open == nil || v.Open.ID != inbox[0].ID {
		t.Error("reading pane lost the open message while filtered")
	}
	if !strings.Contains(m.Render(), "No items match") {
		t.Error("empty search result not shown")
	}

	m.SearchMail()
	m.ClearSearch()
	if m.SearchingMail || len(m.MailView().Groups) == 0 {
		t.Error("clearing the search did not restore the list")
	}
}

func TestCalendarMonthPaging(t *testing.T) {
	m, clock := newTestModel(t)
	m.ShiftMonth(1)
	if m.CalendarMonth.Month() != time.March {
		t.Fatal("paged the calendar while it was hidden")
	}

	m.ToggleCalendar()
	m.SelectDay(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))
	if m.CalendarMonth.Month() != time.January {
		t.Fatalf("selecting a January day left the page on %s", m.CalendarMonth.Month())
	}
	m.ShiftMonth(1)
	if got := m.SelectedDay.Format(time.DateOnly); got != "2026-02-28" {
		t.Errorf("31 Jan + 1 month = %s, want 2026-02-28", got)
	}

	m.Mailbox.Receive(clock.t)
	m.CalendarToday()
	cal := m.CalendarView()
	if len(cal.Agenda) == 0 || !content.SameDay(cal.Agenda[0].Received, clock.t) {
		t.Errorf("today's agenda = %+v", cal.Agenda)
	}
	if cal.Counts[content.DayKey(clock.t)] != len(cal.Agenda) {
		t.Errorf("count %d, agenda %d", cal.Counts[content.DayKey(clock.t)], len(cal.Agenda))
	}
	if !strings.Contains(m.Render(), "March 2026") {
		t.Error("calendar page not drawn")
	}

	m.ToggleCalendar()
	if m.ViewMode != ui.ViewMail {
		t.Error("toggle did not return to mail")
	}
}

func TestNotificationsExpire(t *testing.T) {
	m, clock := newTestModel(t)
	for i := range config.MaxNotifications + 2 {
		m.ShowNotification(fmt.Sprintf("toast %d", i), "info", config.NotificationDuration)
	}
	if len(m.Notifications) != config.MaxNotifications {
		t.Fatalf("kept %d notifications, want %d", len(m.Notifications), config.MaxNotifications)
	}
	if m.Notifications[0].Message != "toast 2" {
		t.Errorf("oldest kept = %q", m.Notifications[0].Message)
	}

	clock.t = clock.t.Add(config.NotificationDuration + time.Millisecond)
	m.CleanupNotifications()
	if len(m.Notifications) != 0 {
		t.Errorf("%d notifications survived expiry", len(m.Notifications))
	}
}

func TestLogRing(t *testing.T) {
	m, _ := newTestModel(t)
	m.LogMessages = nil

	for i := range config.MaxLogMessages + 50 {
		m.LogInfo("entry %d", i)
	}
	if len(m.LogMessages) != config.MaxLogMessages {
		t.Fatalf("ring holds %d, want %d", len(m.LogMessages), config.MaxLogMessages)
	}
	if last := m.LogMessages[len(m.LogMessages)-1].Message; last != fmt.Sprintf("entry %d", config.MaxLogMessages+49) {
		t.Errorf("last = %q", last)
	}

	m.LogDebug("hidden")
	if m.LogMessages[len(m.LogMessages)-1].Message == "hidden" {
		t.Error("debug entry reached the ring at info level")
	}
}

func TestLogViewerStaysAtBottom(t *testing.T) {
	m, _ := newTestModel(t)
	for i := range 60 {
		m.LogInfo("entry %d", i)
	}
	m.ToggleLogs()
	m.LogInfo("one more")
	if want := ui.MaxLogScroll(m.Height, len(m.LogMessages)); m.LogScrollOffset != want {
		t.Errorf("offset = %d, want %d", m.LogScrollOffset, want)
	}

	m.ScrollLogs(-10)
	held := m.LogScrollOffset
	m.LogInfo("and another")
	if m.LogScrollOffset != held {
		t.Errorf("scrolled-up viewer moved from %d to %d", held, m.LogScrollOffset)
	}
}

func TestConfigReload(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(ConfigReloadedMsg{Err: errors.New("bad toml")})
	if len(m.Notifications) != 1 || m.Notifications[0].Type != "error" {
		t.Fatalf("notifications = %+v", m.Notifications)
	}

	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = "White"
	cfg.Geometry.MinSize = wm.Size{Width: 20, Height: 5}
	m.Update(ConfigReloadedMsg{Config: cfg})

	if m.Palette.Name != "White" {
		t.Errorf("palette = %s", m.Palette.Name)
	}
	w, _ := m.OpenComponent(wm.ComponentCompose)
	if got := m.Manager.Frame(w).MinSize(); got != (wm.Size{Width: 20, Height: 5}) {
		t.Errorf("min size = %+v", got)
	}
}

func TestCycleTheme(t *testing.T) {
	m, _ := newTestModel(t)
	seen := map[string]bool{m.Palette.Name: true}
	for range 3 {
		m.CycleTheme()
		seen[m.Palette.Name] = true
	}
	if len(seen) != 4 {
		t.Errorf("cycled through %d themes", len(seen))
	}
}

func TestViewDrawsWindows(t *testing.T) {
	m, _ := newTestModel(t)
	m.OpenComponent(wm.ComponentCompose)

	v := m.View()
	if !v.AltScreen || v.MouseMode != tea.MouseModeAllMotion {
		t.Error("view should use the alt screen with all-motion mouse")
	}
	out := m.Render()
	if !strings.Contains(out, "Untitled - Message (HTML)") {
		t.Error("window title missing from render")
	}
	if lines := strings.Count(out, "\n") + 1; lines != m.Height {
		t.Errorf("rendered %d lines, want %d", lines, m.Height)
	}

	m.MinimizeFocused()
	if !strings.Contains(m.Render(), "Untitled - Message") {
		t.Error("minimized window missing from the tray")
	}
}

func TestFilterMouseMotion(t *testing.T) {
	m, _ := newTestModel(t)
	w, _ := m.OpenComponent(wm.ComponentCompose)
	motion := tea.MouseMotionMsg{X: 5, Y: 5}

	if FilterMouseMotion(m, motion) != nil {
		t.Error("idle motion should be dropped")
	}
	if FilterMouseMotion(m, tea.KeyPressMsg{Code: 'a'}) == nil {
		t.Error("keys must pass")
	}

	_ = m.Manager.Frame(w).PressTitleBar(&m.Pointer, w.Position)
	if FilterMouseMotion(m, motion) == nil {
		t.Error("motion during a drag must pass")
	}
}
