// Package redact strips sensitive information out of strings before they
// reach logs or error responses: connection strings, tokens, password
// material, and learner email addresses.
package redact

import "regexp"

// RedactionPlaceholder replaces each matched sensitive fragment.
const RedactionPlaceholder = "[REDACTED]"

var patterns = []*regexp.Regexp{
	// Database connection strings with inline credentials
	regexp.MustCompile(`(?i)postgres(?:ql)?://[^@\s]+@`),

	// JWT tokens (three base64url segments starting with the JOSE header)
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),

	// bcrypt hashes
	regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`),

	// password=... style fragments
	regexp.MustCompile(`(?i)(password|passwd|pwd|secret)[=:\s]['"]?[^'"&\s]{3,}`),

	// Email addresses
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
}

// String redacts all sensitive fragments in s.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, RedactionPlaceholder)
	}
	return s
}

// Error redacts the message of err. Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
