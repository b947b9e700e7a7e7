package sanitizer

import "regexp"

type TokenSanitizer struct{}

var tokenPatterns = []*regexp.Regexp{
	// скрытое поле CSRF формы входа
	regexp.MustCompile(`(?i)(<input[^>]*name=["']_token["'][^>]*value=["'])[^"']+`),
	regexp.MustCompile(`(?i)(:token=["'])[^"']+`),
	regexp.MustCompile(`(?i)(bearer\s+)[a-zA-Z0-9._-]{20,}`),
}

func (s *TokenSanitizer) Sanitize(text string) string {
	for _, pattern := range tokenPatterns {
		text = pattern.ReplaceAllString(text, `${1}[FILTERED]`)
	}
	return text
}
