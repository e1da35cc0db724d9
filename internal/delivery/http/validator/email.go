package validator

import "strings"

// emailFailureReason checks an email address and returns a human-readable
// reason when it is invalid, or "" when it is acceptable. The wording matches
// the messages clients of the admin API already display.
func emailFailureReason(value string) string {
	if !strings.Contains(value, "@") {
		return "An email address must have an @-sign."
	}

	local, domain, _ := strings.Cut(value, "@")

	if local == "" {
		return "There must be something before the @-sign."
	}
	if strings.Contains(domain, "@") {
		return "The email address contains multiple @-signs."
	}
	if domain == "" || !strings.Contains(domain, ".") {
		return "The part after the @-sign is not valid. It should have a period."
	}
	if strings.HasSuffix(domain, ".") {
		return "An email address cannot end with a period."
	}
	if strings.HasPrefix(domain, ".") || strings.Contains(domain, "..") {
		return "An email address cannot have a period immediately after the @-sign or two periods in a row."
	}
	if strings.ContainsAny(value, " \t") {
		return "The email address contains invalid characters: space."
	}

	return ""
}
