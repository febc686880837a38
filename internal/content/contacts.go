// Package content holds the data and panel renderers shown inside tuimail
// windows: the generated address book, the seeded mailbox and one renderer
// per window component.
package content

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// GeneratedContacts is how many people the address book generator creates
// besides the shared mailboxes.
const GeneratedContacts = 200

// Contact is one address book entry.
type Contact struct {
	ID            string
	FirstName     string
	LastName      string
	DisplayName   string
	Initials      string
	Title         string
	Department    string
	Office        string
	Company       string
	Email         string
	Alias         string
	Phone         string
	BusinessPhone string
	Country       string
	// Shared is set for distribution lists and shared mailboxes.
	Shared bool
}

var (
	firstNames = []string{
		"Emma", "Oliver", "Amelia", "Harry", "Isla", "Jack", "Ava", "George", "Mia", "Noah",
		"Sophie", "Leo", "Lily", "Oscar", "Grace", "Charlie", "Chloe", "Jacob", "Ella", "Alfie",
		"Emily", "Freddie", "Poppy", "Henry", "Sophia", "William", "Evie", "Thomas", "Isabelle", "James",
		"Daisy", "Edward", "Freya", "Alexander", "Ruby", "Sebastian", "Florence", "Daniel", "Alice", "Joseph",
		"Matilda", "Samuel", "Sienna", "David", "Charlotte", "Benjamin", "Rosie", "Ethan", "Millie", "Matthew",
		"Sarah", "John", "Rachel", "Michael", "Hannah", "Andrew", "Laura", "Robert", "Jessica", "Paul",
		"Maria", "Mohammed", "Fatima", "Raj", "Priya", "Wei", "Mei", "Marcus", "Chioma", "Amir",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
		"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
		"Foster", "Patel", "Singh", "O'Brien", "McCarthy", "Sullivan", "Cunningham", "Patterson", "Murray", "Farrell",
		"Walsh", "Burke", "Hayes", "Dixon", "Duffy", "Brennan", "Forbes", "Quinn", "Casey", "Kennedy",
	}
	titles = []string{
		"Software Engineer", "Senior Developer", "Lead Developer", "Principal Engineer", "Tech Lead",
		"Project Manager", "Product Manager", "Scrum Master", "Business Analyst", "Data Analyst",
		"UX Designer", "Graphic Designer", "Creative Director", "Marketing Manager", "Sales Manager",
		"Account Executive", "HR Specialist", "Recruiter", "Financial Analyst", "Accountant",
		"Support Specialist", "Help Desk Analyst", "Operations Manager", "Office Manager",
		"Executive Assistant", "Legal Counsel", "Compliance Officer", "Research Scientist",
		"Consultant", "Director", "VP",
	}
	departments = []string{
		"Engineering", "Product Development", "Research & Development", "IT Services", "DevOps",
		"Marketing", "Sales", "Business Development", "Customer Success", "Support",
		"Human Resources", "Finance", "Legal", "Operations", "Executive",
		"Design", "Communications", "Quality Assurance", "Data Science", "Security",
	}
	offices = []string{
		"Headquarters", "Main Office", "Downtown Office", "Tech Campus", "Innovation Center",
		"Regional Office - North", "Regional Office - South", "Building A", "Building B",
		"Tower 1", "Tower 2", "Remote Hub", "Lab Facility", "Training Center",
	}
	companies = []string{
		"Contoso Corporation", "Fabrikam Inc", "Northwind Traders",
		"Adventure Works", "Tailspin Toys", "Wide World Importers",
		"Woodgrove Bank", "Alpine Ski House", "Proseware Inc",
	}
	domains     = []string{"contoso.com", "fabrikam.com", "northwind.com", "adventure-works.com"}
	phonePrefix = []string{"(555)", "(212)", "(415)", "(310)", "(312)"}
	sharedBoxes = []Contact{
		{ID: "special-1", DisplayName: "All Company", FirstName: "All", LastName: "Company", Email: "all@contoso.com", Title: "Distribution List", Office: "Headquarters", Company: "Contoso Corporation", Alias: "all.company"},
		{ID: "special-2", DisplayName: "Help Desk", FirstName: "Help", LastName: "Desk", Email: "helpdesk@contoso.com", Title: "Support Mailbox", Department: "IT Services", Office: "Headquarters", Company: "Contoso Corporation", Alias: "helpdesk"},
		{ID: "special-3", DisplayName: "HR Inquiries", FirstName: "HR", LastName: "Inquiries", Email: "hr@contoso.com", Title: "HR Mailbox", Department: "Human Resources", Office: "Headquarters", Company: "Contoso Corporation", Alias: "hr.inquiries"},
		{ID: "special-4", DisplayName: "Sales Team", FirstName: "Sales", LastName: "Team", Email: "sales@contoso.com", Title: "Distribution List", Department: "Sales", Office: "Headquarters", Company: "Contoso Corporation", Alias: "sales.team"},
	}
)

func pick[T any](r *rand.Rand, s []T) T {
	return s[r.IntN(len(s))]
}

func phone(r *rand.Rand) string {
	return fmt.Sprintf("%s %d-%d", pick(r, phonePrefix), 100+r.IntN(900), 1000+r.IntN(9000))
}

func email(r *rand.Rand, first, last, domain string) string {
	var local string
	switch r.IntN(4) {
	case 0:
		local = first + "." + last
	case 1:
		local = first[:1] + "." + last
	case 2:
		local = first + last[:1]
	default:
		local = first + last
	}
	local = strings.ReplaceAll(local, "'", "")
	return strings.ToLower(local + "@" + domain)
}

func alias(r *rand.Rand, first, last string) string {
	switch r.IntN(4) {
	case 0:
		return first + "." + last
	case 1:
		return first + last[:1]
	case 2:
		return last + "." + first
	default:
		return first[:1] + last
	}
}

// GenerateContacts returns the shared mailboxes followed by
// GeneratedContacts people sorted by display name. The same seed always
// yields the same book, and email addresses are unique.
func GenerateContacts(seed uint64) []Contact {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	used := make(map[string]bool, GeneratedContacts)
	people := make([]Contact, 0, GeneratedContacts)

	for i := range GeneratedContacts {
		first, last := pick(r, firstNames), pick(r, lastNames)
		domain := pick(r, domains)
		base := email(r, first, last, domain)
		addr := base
		for n := 2; used[addr]; n++ {
			at := strings.IndexByte(base, '@')
			addr = fmt.Sprintf("%s%d%s", base[:at], n, base[at:])
		}
		used[addr] = true

		c := Contact{
			ID:          fmt.Sprintf("contact-%d", i),
			FirstName:   first,
			LastName:    last,
			DisplayName: first + " " + last,
			Initials:    strings.ToUpper(first[:1] + last[:1]),
			Title:       pick(r, titles),
			Department:  pick(r, departments),
			Office:      pick(r, offices),
			Company:     pick(r, companies),
			Email:       addr,
			Alias:       alias(r, first, last),
			Country:     "United States",
		}
		if r.Float64() > 0.3 {
			c.Phone = phone(r)
		}
		if r.Float64() > 0.5 {
			c.BusinessPhone = phone(r)
		}
		people = append(people, c)
	}

	slices.SortStableFunc(people, func(a, b Contact) int {
		return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
	})

	out := make([]Contact, 0, len(sharedBoxes)+len(people))
	for _, s := range sharedBoxes {
		s.Shared = true
		s.Initials = strings.ToUpper(s.FirstName[:1] + s.LastName[:1])
		out = append(out, s)
	}
	return append(out, people...)
}

type contactSource []Contact

func (s contactSource) String(i int) string {
	c := s[i]
	return c.DisplayName + " " + c.Email + " " + c.Department
}

func (s contactSource) Len() int { return len(s) }

// SearchContacts returns the contacts matching query, best match first.
// An empty query returns contacts unchanged.
func SearchContacts(contacts []Contact, query string) []Contact {
	query = strings.TrimSpace(query)
	if query == "" {
		return contacts
	}
	matches := fuzzy.FindFrom(query, contactSource(contacts))
	out := make([]Contact, 0, len(matches))
	for _, m := range matches {
		out = append(out, contacts[m.Index])
	}
	return out
}

// FirstPerson returns the first contact that is not a shared mailbox.
func FirstPerson(contacts []Contact) (Contact, bool) {
	for _, c := range contacts {
		if !c.Shared {
			return c, true
		}
	}
	return Contact{}, false
}
