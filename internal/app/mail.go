package app

import (
	"fmt"
	"time"

	"github.com/Gaurav-Gosain/tuimail/internal/config"
	"github.com/Gaurav-Gosain/tuimail/internal/content"
	"github.com/Gaurav-Gosain/tuimail/internal/ui"
)

// newMailInterval is how often a new message arrives in the inbox.
const newMailInterval = 45 * time.Second

// SelectFolder shows folder i in the message list.
func (m *Model) SelectFolder(i int) {
	if i < 0 || i >= len(content.Folders) || i == m.SelectedFolder {
		return
	}
	m.SelectedFolder = i
	m.OpenMessage = ""
	m.LogDebug("folder %s", content.Folders[i])
}

// OpenMessageID shows a message in the reading pane and marks it read.
func (m *Model) OpenMessageID(id string) {
	m.OpenMessage = id
	m.Mailbox.MarkRead(id)
}

// SearchMail focuses the ribbon search box, switching back to mail first.
func (m *Model) SearchMail() {
	m.ViewMode = ui.ViewMail
	m.SearchingMail = true
	m.SearchWindow = ""
}

// ClearSearch drops the query and unfocuses the search box.
func (m *Model) ClearSearch() {
	m.MessageQuery = ""
	m.SearchingMail = false
}

// deliverMail drops a new message into the inbox once the interval has
// passed and announces it.
func (m *Model) deliverMail(now time.Time) {
	if now.Before(m.nextMail) {
		return
	}
	m.nextMail = now.Add(newMailInterval)
	msg := m.Mailbox.Receive(now)
	m.ShowNotification(fmt.Sprintf("New mail from %s: %s", msg.From, msg.Subject), "info", config.NotificationDuration)
}

// MailView is the mail client state the background draws.
func (m *Model) MailView() ui.Mail {
	now := m.Now()
	folder := content.Folders[m.SelectedFolder]
	msgs := m.Mailbox.Folder(folder)
	listed := content.SearchMessages(msgs, m.MessageQuery)

	folders := make([]ui.Folder, len(content.Folders))
	for i, name := range content.Folders {
		_, unread := m.Mailbox.Counts(name)
		folders[i] = ui.Folder{Name: name, Unread: unread}
	}

	var open *content.Message
	for i := range msgs {
		if msgs[i].ID == m.OpenMessage {
			open = &msgs[i]
			break
		}
	}

	mail := ui.Mail{
		Account:   m.Config.Account.Email,
		Folders:   folders,
		Selected:  m.SelectedFolder,
		Groups:    content.GroupByDate(listed, now),
		Open:      open,
		Now:       now,
		View:      m.ViewMode,
		Query:     m.MessageQuery,
		Searching: m.SearchingMail,
	}
	if m.ViewMode == ui.ViewCalendar {
		mail.Calendar = m.CalendarView()
	}
	return mail
}

// StatusView is the status bar content.
func (m *Model) StatusView() ui.Status {
	items, unread := m.Mailbox.Counts(content.Folders[m.SelectedFolder])
	s := ui.Status{Items: items, Unread: unread, Windows: m.Store.Len()}
	if m.Config.Appearance.ShowClock {
		s.Clock = m.Now().Format("15:04")
	}
	return s
}
