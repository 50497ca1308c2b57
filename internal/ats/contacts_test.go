package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindContacts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Contacts
	}{
		{
			name: "email and spaced international phone",
			text: "John Doe\njohn@example.com\n+1 555 123 4567",
			want: Contacts{Email: "john@example.com", Phone: "+15551234567"},
		},
		{
			name: "first email wins",
			text: "Contact: Jane.Doe+cv@mail.example.co.uk, backup: jd@x.io",
			want: Contacts{Email: "Jane.Doe+cv@mail.example.co.uk"},
		},
		{
			name: "local phone split by spaces",
			text: "Call 555 123 4567 anytime",
			want: Contacts{Phone: "5551234567"},
		},
		{
			name: "phone split by tabs and newlines",
			text: "tel:\t98765\n43210",
			want: Contacts{Phone: "9876543210"},
		},
		{
			name: "country code with dash",
			text: "Mobile: +91-9876543210",
			want: Contacts{Phone: "+91-9876543210"},
		},
		{
			name: "dash grouped number has no ten digit run",
			text: "+1-555-123-4567",
			want: Contacts{},
		},
		{
			name: "short numbers are ignored",
			text: "Graduated 2019, GPA 3.8, zip 12345",
			want: Contacts{},
		},
		{
			name: "tld needs two letters",
			text: "a@b.c",
			want: Contacts{},
		},
		{
			name: "empty",
			text: "",
			want: Contacts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindContacts(tt.text))
		})
	}
}
