package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// User is one record of the showcase user list
type User struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   string     `json:"role"`
	Status UserStatus `json:"status"`

	// rawStatus is the stored name of a status this version does not know
	rawStatus string
}

// StatusName is the status as stored. Unknown names read from storage
// are kept verbatim.
func (u User) StatusName() string {
	if u.Status == StatusUnknown && u.rawStatus != "" {
		return u.rawStatus
	}
	return u.Status.String()
}

// MarshalJSON writes the status by name, keeping unknown stored names
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return json.Marshal(struct {
		plain
		Status string `json:"status"`
	}{plain(u), u.StatusName()})
}

// UnmarshalJSON reads a user; an unrecognised status becomes StatusUnknown
// and its name is remembered for the next save.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var aux struct {
		plain
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*u = User(aux.plain)
	status, err := ParseUserStatus(aux.Status)
	if err != nil {
		u.Status, u.rawStatus = StatusUnknown, aux.Status
		return nil
	}
	u.Status, u.rawStatus = status, ""
	return nil
}

// UserStatus is the account state shown as a badge in the data table
type UserStatus int

const (
	StatusUnknown UserStatus = iota
	StatusActive
	StatusPending
	StatusInactive
)

var statusNames = map[UserStatus]string{
	StatusActive:   "Active",
	StatusPending:  "Pending",
	StatusInactive: "Inactive",
}

func (s UserStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseUserStatus maps a status name onto a UserStatus, case-insensitively
func ParseUserStatus(s string) (UserStatus, error) {
	for status, name := range statusNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("unknown user status %q", s)
}

// MarshalText stores the status by name so persisted data stays readable
func (s UserStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts unknown names as StatusUnknown. User keeps the
// original name itself, see User.UnmarshalJSON.
func (s *UserStatus) UnmarshalText(text []byte) error {
	status, err := ParseUserStatus(string(text))
	if err != nil {
		*s = StatusUnknown
		return nil
	}
	*s = status
	return nil
}

// Theme is the colour scheme of the showcase
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme maps "light"/"dark" onto a Theme
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("unknown theme %q", s)
	}
}

func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Theme) UnmarshalText(text []byte) error {
	theme, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = theme
	return nil
}
