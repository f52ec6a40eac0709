// Package validation holds the field-by-field rule sets applied to
// registration and payment payloads. Rules run independently of storage and
// every failure is collected, so a caller sees all invalid fields at once.
package validation

// Errors maps a field name to its failure messages.
type Errors map[string][]string

func NewErrors() Errors {
	return make(Errors)
}

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}
