package ats

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9.\-_+]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\d{10,12})`)
)

// Contacts holds the first email address and phone number found in a
// resume. An empty field means nothing matched.
type Contacts struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (c Contacts) HasEmail() bool { return c.Email != "" }
func (c Contacts) HasPhone() bool { return c.Phone != "" }

// FindContacts scans text for an email address and a phone number. Phone
// matching runs on the text with all whitespace removed so that numbers
// written as "555 123 4567" are still found.
func FindContacts(text string) Contacts {
	var c Contacts
	c.Email = emailPattern.FindString(text)
	c.Phone = phonePattern.FindString(stripSpace(text))
	return c
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
