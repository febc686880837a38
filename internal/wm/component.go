package wm

import "strings"

// Component selects the content panel rendered inside a window frame.
type Component string

const (
	// ComponentGeneric is the placeholder panel. Unknown tags fall back to it.
	ComponentGeneric Component = "generic"
	// ComponentCompose is the new-message form.
	ComponentCompose Component = "compose"
	// ComponentAccountInfo is the account information page.
	ComponentAccountInfo Component = "account-info"
	// ComponentAddressBook lists directory contacts.
	ComponentAddressBook Component = "address-book"
	// ComponentContactDetails shows one contact card.
	ComponentContactDetails Component = "contact-details"
	// ComponentOptions is the options dialog.
	ComponentOptions Component = "options"
	// ComponentAccountSettings is the feed account settings dialog.
	ComponentAccountSettings Component = "account-settings"
)

// Components lists every known component in display order.
var Components = []Component{
	ComponentGeneric,
	ComponentCompose,
	ComponentAccountInfo,
	ComponentAddressBook,
	ComponentContactDetails,
	ComponentOptions,
	ComponentAccountSettings,
}

// ParseComponent maps a tag to a known component, falling back to
// ComponentGeneric. Matching ignores case and surrounding space.
func ParseComponent(tag string) Component {
	c := Component(strings.ToLower(strings.TrimSpace(tag)))
	for _, known := range Components {
		if c == known {
			return c
		}
	}
	return ComponentGeneric
}

// Known reports whether c is one of the known components.
func (c Component) Known() bool {
	return ParseComponent(string(c)) == c
}

func (c Component) String() string {
	return string(c)
}
