// Package scheme classifies card numbers by their IIN prefix and carries the
// per-scheme CVV length rules.
package scheme

import "strings"

type Scheme string

const (
	Visa            Scheme = "Visa"
	MasterCard      Scheme = "MasterCard"
	AmericanExpress Scheme = "American Express"
	Unknown         Scheme = "Unknown"
)

// Detect matches the leading digits of a normalized PAN against the three
// supported issuer prefixes. Anything else is Unknown.
func Detect(pan string) Scheme {
	switch {
	case strings.HasPrefix(pan, "4"):
		return Visa
	case strings.HasPrefix(pan, "51"), strings.HasPrefix(pan, "52"):
		return MasterCard
	case strings.HasPrefix(pan, "34"), strings.HasPrefix(pan, "37"):
		return AmericanExpress
	default:
		return Unknown
	}
}

// CVVLength returns the expected verification value length: 4 for American
// Express, 3 for everything else.
func CVVLength(s Scheme) int {
	if s == AmericanExpress {
		return 4
	}
	return 3
}

// ValidCVV reports whether cvv is all digits with the length CVVLength
// expects for the scheme.
func ValidCVV(s Scheme, cvv string) bool {
	if len(cvv) != CVVLength(s) {
		return false
	}
	for i := 0; i < len(cvv); i++ {
		if cvv[i] < '0' || cvv[i] > '9' {
			return false
		}
	}
	return true
}
