package model

import "strings"

// validEmail performs a structural email check: a local part, an "@", and a
// domain containing at least one dot that is neither adjacent to the "@" nor
// trailing. Deliberately loose; deliverability is not this system's problem.
func validEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex < atIndex+2 {
		return false
	}
	if dotIndex >= len(email)-1 {
		return false
	}
	return true
}
