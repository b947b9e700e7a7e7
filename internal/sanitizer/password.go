package sanitizer

import "regexp"

type PasswordSanitizer struct{}

var passwordPatterns = []*regexp.Regexp{
	// password=secret, pwd: secret, DB_PASS=secret
	regexp.MustCompile(`(?i)\b(password|passwd|pwd|db_pass|пароль)(\s*[:=]\s*)["']?[^"'\s&,]+["']?`),
}

var passwordInputPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(<input[^>]*type=["']password["'][^>]*value=["'])[^"']*`),
	regexp.MustCompile(`(?i)(<input[^>]*value=["'])[^"']*(["'][^>]*type=["']password["'])`),
}

func (s *PasswordSanitizer) Sanitize(text string) string {
	for _, pattern := range passwordPatterns {
		text = pattern.ReplaceAllString(text, `${1}${2}[FILTERED]`)
	}
	text = passwordInputPatterns[0].ReplaceAllString(text, `${1}[FILTERED]`)
	text = passwordInputPatterns[1].ReplaceAllString(text, `${1}[FILTERED]${2}`)
	return text
}
