package internal

import "regexp"

// emailPattern accepts a local part, an @, and a domain with at least one dot
// and a TLD of two or more letters. It is a plausibility filter only; it says
// nothing about deliverability or ownership.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsPlausibleEmail reports whether s looks like an email address
func IsPlausibleEmail(s string) bool {
	return emailPattern.MatchString(s)
}
