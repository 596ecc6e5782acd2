package domain

import "strings"

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field and validates that
// none is empty.
func (m ContactMessage) Normalize() (ContactMessage, error) {
	out := ContactMessage{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Phone:   strings.TrimSpace(m.Phone),
		Message: strings.TrimSpace(m.Message),
	}
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", out.Name},
		{"email", out.Email},
		{"phone", out.Phone},
		{"message", out.Message},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return ContactMessage{}, &ValidationError{
			Fields:  missing,
			Message: "All fields are required",
			Err:     ErrInvalidInput,
		}
	}
	return out, nil
}
