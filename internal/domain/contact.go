package domain

import (
	"strings"
	"unicode"
)

// Contact holds the customer and pet identifying fields
type Contact struct {
	PetName   string
	OwnerName string
	Whatsapp  string
}

// IsComplete returns true if every contact field is filled
func (c Contact) IsComplete() bool {
	return strings.TrimSpace(c.PetName) != "" &&
		strings.TrimSpace(c.OwnerName) != "" &&
		strings.TrimSpace(c.Whatsapp) != ""
}

// maxFormattedWhatsapp length of "(XX) XXXXX-XXXX"
const maxFormattedWhatsapp = 15

// FormatWhatsapp keeps the digits of value and formats them as a Brazilian mobile number,
// "(11) 98765-4321". Partial input is formatted as far as it goes.
func FormatWhatsapp(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	var out string
	switch {
	case len(d) <= 2:
		out = d
	case len(d) <= 7:
		out = "(" + d[:2] + ") " + d[2:]
	default:
		out = "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}

	if len(out) > maxFormattedWhatsapp {
		out = out[:maxFormattedWhatsapp]
	}
	return out
}

// Normalize trims the contact fields and formats the WhatsApp number
func (c Contact) Normalize() Contact {
	return Contact{
		PetName:   strings.TrimSpace(c.PetName),
		OwnerName: strings.TrimSpace(c.OwnerName),
		Whatsapp:  FormatWhatsapp(c.Whatsapp),
	}
}
