package resume

import (
	"regexp"
	"strings"
)

// Fields are the contact details pulled out of resume text.
type Fields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

var (
	emailRe = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s-]{7,}\d`)
)

// ExtractFields pulls name, email and phone from resume text. The name is a
// naive heuristic: the first non-empty line.
func ExtractFields(text string) Fields {
	f := Fields{
		Email: emailRe.FindString(text),
		Phone: phoneRe.FindString(text),
	}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			f.Name = line
			break
		}
	}
	return f
}
