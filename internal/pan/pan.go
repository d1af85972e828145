package pan

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Validation sentinels. These are the only two card-number failures a user
// ever sees; everything else is an internal error.
var (
	ErrInvalidLength = fmt.Errorf("card number length must be 13..19 digits")
	ErrChecksum      = fmt.Errorf("card number failed Luhn check")
)

// Normalize strips spaces, tabs and dashes, returning a digits-or-garbage
// string for Validate to judge.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		default:
			return r
		}
	}, s)
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LastN returns the trailing n characters of s, or s itself when shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Mask renders the fixed display form revealing exactly the last 4 digits:
// "XXXX-XXXX-XXXX-1111". The prefix is constant for every PAN length.
func Mask(pan string) string {
	return "XXXX-XXXX-XXXX-" + LastN(pan, 4)
}

// Luhn reports whether a digits-only string satisfies the mod-10 checksum.
func Luhn(digits string) bool {
	sum, dbl := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum%10 == 0
}

// Validate checks a normalized PAN: digits only, length 13..19 and Luhn.
func Validate(pan string) error {
	if pan == "" {
		return fmt.Errorf("pan is required: %w", ErrInvalidLength)
	}
	if !IsDigits(pan) {
		return fmt.Errorf("pan must contain digits only: %w", ErrChecksum)
	}
	if l := len(pan); l < 13 || l > 19 {
		return fmt.Errorf("got %d digits: %w", l, ErrInvalidLength)
	}
	if !Luhn(pan) {
		return ErrChecksum
	}
	return nil
}

// CheckDigit computes the Luhn check digit for a PAN body (all digits except
// the last).
func CheckDigit(body string) string {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	cd := (10 - (sum % 10)) % 10
	return string('0' + byte(cd))
}

// ValidateBIN accepts 6, 8 or 9 digit issuer prefixes.
func ValidateBIN(bin string) error {
	if bin == "" {
		return fmt.Errorf("bin is required")
	}
	if !IsDigits(bin) {
		return fmt.Errorf("bin must contain digits only")
	}
	switch len(bin) {
	case 6, 8, 9:
		return nil
	default:
		return fmt.Errorf("bin must be 6, 8, or 9 digits")
	}
}

// Generate produces a Luhn-valid PAN of totalLen digits (13..19) starting
// with bin. A non-empty sequence overrides the trailing digits before the
// check digit.
func Generate(bin string, totalLen int, sequence string) (string, error) {
	if err := ValidateBIN(bin); err != nil {
		return "", err
	}
	if totalLen < 13 || totalLen > 19 {
		return "", fmt.Errorf("total length must be 13..19")
	}
	fill := totalLen - 1 - len(bin)
	if fill <= 0 {
		return "", fmt.Errorf("bin too long: %s", bin)
	}
	seq := strings.TrimSpace(sequence)
	if seq != "" {
		if !IsDigits(seq) {
			return "", fmt.Errorf("sequence must be numeric")
		}
		if len(seq) > fill {
			return "", fmt.Errorf("sequence length %d exceeds %d", len(seq), fill)
		}
	}
	digits, err := randomDigits(fill)
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	b := []byte(digits)
	if seq != "" {
		copy(b[fill-len(seq):], seq)
	}
	body := bin + string(b)
	return body + CheckDigit(body), nil
}

// randomDigits draws uniform decimal digits from crypto/rand using rejection
// sampling: only bytes below 250 are accepted before taking mod 10.
func randomDigits(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}
	const threshold = 250 // 256 - (256 % 10)
	var sb strings.Builder
	sb.Grow(count)
	buf := make([]byte, 64)
	for sb.Len() < count {
		n, err := rand.Read(buf)
		if err != nil {
			return "", err
		}
		for i := 0; i < n && sb.Len() < count; i++ {
			if buf[i] < threshold {
				sb.WriteByte('0' + (buf[i] % 10))
			}
		}
	}
	return sb.String(), nil
}
