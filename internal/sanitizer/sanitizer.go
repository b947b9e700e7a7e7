// Package sanitizer вычищает пароли и токены из текста перед записью в логи,
// историю прогонов и артефакты.
package sanitizer

type DataSanitizer struct {
	rules []SanitizerRule
}

type SanitizerRule interface {
	Sanitize(text string) string
}

func New() *DataSanitizer {
	return &DataSanitizer{
		rules: []SanitizerRule{
			&ConnStringSanitizer{},
			&PasswordSanitizer{},
			&TokenSanitizer{},
		},
	}
}

func (s *DataSanitizer) Sanitize(text string) string {
	if text == "" {
		return text
	}

	result := text
	for _, rule := range s.rules {
		result = rule.Sanitize(result)
	}

	return result
}

var std = New()

// Sanitize применяет набор правил по умолчанию.
func Sanitize(text string) string {
	return std.Sanitize(text)
}
