package content

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
)

// Folders is the mail folder tree, top to bottom.
var Folders = []string{"Inbox", "Drafts", "Sent Items", "Deleted Items", "Junk Email", "Archive", "Outbox"}

// Message is one item in the message list.
type Message struct {
	ID       string
	Folder   string
	From     string
	Email    string
	Subject  string
	Preview  string
	Body     string
	Received time.Time
	Unread   bool
	Flagged  bool
}

var (
	subjects = []string{
		"MWL NEWS - Weekly Update",
		"Important: Meeting Tomorrow",
		"Your Weekly Digest",
		"Action Required: Review Document",
		"Reminder: Project Deadline",
		"New Message from HR",
		"System Maintenance Notice",
		"Monthly Report Available",
		"Team Update: Sprint Planning",
		"Invitation: Virtual Coffee Chat",
	}
	previews = []string{
		"View this email in your browser...",
		"Please review the attached document and provide feedback...",
		"Here are the highlights from this week...",
		"Don't forget about the meeting scheduled for...",
		"This is a reminder that the deadline is approaching...",
		"We wanted to share some exciting news with you...",
		"Please take a moment to complete the survey...",
		"Your report is ready for download...",
	}
)

// Mailbox is the seeded message store behind the message list. It is not
// safe for concurrent use; the owning model serializes access.
type Mailbox struct {
	rand     *rand.Rand
	contacts []Contact
	messages []Message
	next     int
}

// NewMailbox seeds a mailbox with messages spread over the week before now.
func NewMailbox(seed uint64, contacts []Contact, now time.Time) *Mailbox {
	mb := &Mailbox{
		rand:     rand.New(rand.NewPCG(seed, seed+1)),
		contacts: contacts,
	}
	folderCounts := map[string]int{"Inbox": 24, "Sent Items": 6, "Drafts": 2, "Archive": 8, "Junk Email": 3}
	for _, folder := range Folders {
		for range folderCounts[folder] {
			age := time.Duration(mb.rand.Int64N(int64(7 * 24 * time.Hour)))
			m := mb.compose(now.Add(-age))
			m.Folder = folder
			m.Unread = folder == "Inbox" && mb.rand.IntN(3) == 0
			mb.messages = append(mb.messages, m)
		}
	}
	slices.SortStableFunc(mb.messages, func(a, b Message) int {
		return b.Received.Compare(a.Received)
	})
	return mb
}

func (mb *Mailbox) compose(at time.Time) Message {
	mb.next++
	from := Contact{DisplayName: "Microsoft Outlook", Email: "no-reply@contoso.com"}
	if len(mb.contacts) > 0 {
		from = pick(mb.rand, mb.contacts)
	}
	preview := pick(mb.rand, previews)
	return Message{
		ID:       fmt.Sprintf("msg-%d", mb.next),
		Folder:   "Inbox",
		From:     from.DisplayName,
		Email:    from.Email,
		Subject:  pick(mb.rand, subjects) + " - " + at.Format("2 Jan 2006"),
		Preview:  preview,
		Body:     fmt.Sprintf("Hi,\n\n%s\n\nBest regards,\n%s", preview, from.DisplayName),
		Received: at,
		Unread:   true,
	}
}

// Receive delivers a new unread message to the inbox and returns it.
func (mb *Mailbox) Receive(now time.Time) Message {
	m := mb.compose(now)
	mb.messages = slices.Insert(mb.messages, 0, m)
	return m
}

// Folder returns the messages in folder, newest first.
func (mb *Mailbox) Folder(folder string) []Message {
	var out []Message
	for _, m := range mb.messages {
		if m.Folder == folder {
			out = append(out, m)
		}
	}
	return out
}

// Counts returns the item and unread counts of folder.
func (mb *Mailbox) Counts(folder string) (items, unread int) {
	for _, m := range mb.messages {
		if m.Folder != folder {
			continue
		}
		items++
		if m.Unread {
			unread++
		}
	}
	return items, unread
}

// MarkRead clears the unread flag on message id.
func (mb *Mailbox) MarkRead(id string) {
	for i := range mb.messages {
		if mb.messages[i].ID == id {
			mb.messages[i].Unread = false
			return
		}
	}
}

// Group is a run of messages under one date header.
type Group struct {
	Label    string
	Messages []Message
}

// GroupByDate splits newest-first messages into Today, Yesterday, This Week
// and Older, dropping empty groups.
func GroupByDate(msgs []Message, now time.Time) []Group {
	labels := []string{"Today", "Yesterday", "This Week", "Older"}
	buckets := make([][]Message, len(labels))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, m := range msgs {
		var i int
		switch {
		case !m.Received.Before(today):
			i = 0
		case !m.Received.Before(today.AddDate(0, 0, -1)):
			i = 1
		case !m.Received.Before(today.AddDate(0, 0, -6)):
			i = 2
		default:
			i = 3
		}
		buckets[i] = append(buckets[i], m)
	}

	var groups []Group
	for i, b := range buckets {
		if len(b) > 0 {
			groups = append(groups, Group{Label: labels[i], Messages: b})
		}
	}
	return groups
}

// ReceivedLabel formats a received time for the message list: the clock
// time for today, otherwise a relative age.
func ReceivedLabel(t, now time.Time) string {
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
