// Package models defines the client-side data types of Daily Epiphany:
// identities, settings, generated records, challenges and badges.
package models

import (
	"encoding/base64"
	"strings"
)

// User is a signed-in identity. A nil *User means the guest identity.
// Streak and badge state live on the user and are persisted with the
// session record.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Streak    int      `json:"streak"`
	// LastChallengeDate is a calendar date in YYYY-MM-DD form, empty if the
	// user has never completed a daily challenge.
	LastChallengeDate string `json:"lastChallengeDate,omitempty"`
	// Badges holds earned badge ids. Append-only except full account deletion.
	Badges []string `json:"badges"`
	// Settings travels with the session record so a returning user keeps
	// their preferences without a separate lookup.
	Settings *Settings `json:"settings,omitempty"`
}

// NewUser builds a simulated identity from name and email. The id is derived
// from the email so the same email always maps to the same namespaces.
func NewUser(name, email string) *User {
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	return &User{
		ID:     base64.StdEncoding.EncodeToString([]byte(email)),
		Name:   name,
		Email:  email,
		Badges: []string{},
	}
}

// HasBadge reports whether the badge id has been earned.
func (u *User) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so streak updates never mutate the caller's value.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Badges = append([]string(nil), u.Badges...)
	if u.Settings != nil {
		s := *u.Settings
		c.Settings = &s
	}
	return &c
}
