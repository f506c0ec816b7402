package redact

import (
	"regexp"
)

const mask = "********"

// Credential clauses inside a COPY statement: KEYWORD 'value'.
var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(ACCESS_KEY_ID ')[^']*(')`),
	regexp.MustCompile(`(?i)(SECRET_ACCESS_KEY ')[^']*(')`),
	regexp.MustCompile(`(?i)(SESSION_TOKEN ')[^']*(')`),
}

// MaskCredentials replaces the credential values embedded in a statement with a fixed
// mask so the statement can be logged. Everything else is left intact.
func MaskCredentials(statement string) string {
	for _, pattern := range credentialPatterns {
		statement = pattern.ReplaceAllString(statement, `${1}`+mask+`${2}`)
	}

	return statement
}
