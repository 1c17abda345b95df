package forms

import "strings"

// Errors splits validation feedback into field-level and form-level messages.
// Messages are user-facing; the forms layer never panics over bad input.
type Errors struct {
	Fields map[string][]string
	Form   []string
}

// AddField records a field-level message.
func (e *Errors) AddField(name, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[name] = append(e.Fields[name], message)
}

// Add records a form-level message.
func (e *Errors) Add(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	e.Form = append(e.Form, message)
}

// HasErrors reports whether any message was recorded.
func (e *Errors) HasErrors() bool {
	return len(e.Form) > 0 || len(e.Fields) > 0
}

// Field returns the messages recorded for a field.
func (e *Errors) Field(name string) []string {
	if e.Fields == nil {
		return nil
	}
	return e.Fields[name]
}

func (e *Errors) normalize() {
	e.Form = normalizeMessages(e.Form)
	for name, messages := range e.Fields {
		e.Fields[name] = normalizeMessages(messages)
	}
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
