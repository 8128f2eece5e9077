// Package contact derives the sender details quoted back in outbound emails.
package contact

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"freightquote/internal/extraction"
)

type Details struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Placeholder details used when nothing better is known.
var Fallback = Details{
	Name:    "Primary Logistics Contact",
	Company: "LithiumQ Logistics",
	Phone:   "(555) 010-0000",
	Email:   "operations@lithiumq.com",
}

var (
	rePhone     = regexp.MustCompile(`\+?\d[\d\s().-]{6,}\d`)
	reNameParts = regexp.MustCompile(`[\s._-]+`)
	reSpaces    = regexp.MustCompile(`\s+`)
)

var (
	nameFields    = []string{"contact_name", "contactName", "sender_name", "senderName"}
	companyFields = []string{"company_name", "companyName", "business_name", "businessName"}
	phoneFields   = []string{"phone", "phone_number", "phoneNumber", "contact_phone", "contactPhone"}
	emailFields   = []string{"email", "email_address", "emailAddress", "contact_email", "contactEmail"}
)

// Derive prefers extracted values, then guesses from the sender address and
// the email text, then falls back to the placeholder details.
func Derive(extracted extraction.Payload, senderEmail, emailText string) Details {
	email, _ := extracted.String(emailFields...)
	email = firstNonEmpty(email, senderEmail, Fallback.Email)

	name, _ := extracted.String(nameFields...)
	company, _ := extracted.String(companyFields...)
	phone, _ := extracted.String(phoneFields...)

	local, domain, _ := strings.Cut(email, "@")
	domainHead, _, _ := strings.Cut(domain, ".")

	return Details{
		Name:    firstNonEmpty(TitleCase(name), TitleCase(local), Fallback.Name),
		Company: firstNonEmpty(TitleCase(company), TitleCase(domainHead), Fallback.Company),
		Phone:   firstNonEmpty(phone, findPhone(emailText), Fallback.Phone),
		Email:   email,
	}
}

// TitleCase splits on spaces, dots, underscores and dashes and capitalises
// each part: "jane.doe" -> "Jane Doe".
func TitleCase(value string) string {
	parts := reNameParts.Split(strings.TrimSpace(value), -1)
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	if len(words) == 0 {
		return ""
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func findPhone(text string) string {
	m := rePhone.FindString(text)
	if m == "" {
		return ""
	}
	return strings.TrimSpace(reSpaces.ReplaceAllString(m, " "))
}

// FormatBlock renders the details appended to outbound emails.
func FormatBlock(d Details) string {
	return strings.Join([]string{
		"---",
		"Sender details on file:",
		"Company: " + d.Company,
		"Contact: " + d.Name,
		"Phone: " + d.Phone,
		"Email: " + d.Email,
	}, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
