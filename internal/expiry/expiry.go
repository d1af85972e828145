package expiry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	defaultLoc   = time.UTC
	productYears = map[string]int{"credit": 3, "debit": 5}
)

// Status classifies a card expiry against a point in time.
type Status string

const (
	StatusExpired      Status = "Expired"
	StatusExpiringSoon Status = "ExpiringSoon"
	StatusValid        Status = "Valid"
)

// DefaultWarnMonths is the look-ahead window for the ExpiringSoon status.
const DefaultWarnMonths = 6

// SetDefaultLocation sets the default time location for expiry calculations
// (fallback UTC).
func SetDefaultLocation(loc *time.Location) {
	if loc != nil {
		defaultLoc = loc
	}
}

// SetProductYears replaces the default product→years mapping used by
// YearsForProduct.
func SetProductYears(m map[string]int) {
	if m == nil {
		return
	}
	productYears = m
}

// YearsForProduct returns validity years for product unless override>0.
func YearsForProduct(product string, override int) int {
	if override > 0 {
		return override
	}
	if y, ok := productYears[strings.ToLower(product)]; ok {
		return y
	}
	// default fallback
	return 5
}

// YYMM returns expiry in YYMM for an issue date + years.
func YYMM(issue time.Time, years int) string {
	t := issue.In(defaultLoc)
	return fmt.Sprintf("%02d%02d", (t.Year()+years)%100, int(t.Month()))
}

// CardFace returns expiry as MM/YY for card imprint.
func CardFace(issue time.Time, years int) string {
	t := issue.In(defaultLoc)
	return fmt.Sprintf("%02d/%02d", int(t.Month()), (t.Year()+years)%100)
}

// CardFaceFromYYMM converts stored YYMM back to the MM/YY display form.
func CardFaceFromYYMM(yymm string) (string, error) {
	if err := ValidateYYMM(yymm); err != nil {
		return "", err
	}
	return yymm[2:] + "/" + yymm[:2], nil
}

// ParseCardFace accepts "MM/YY" or "MMYY" and returns YYMM.
func ParseCardFace(in string) (string, error) {
	s := strings.TrimSpace(in)
	s = strings.ReplaceAll(s, "/", "")
	if len(s) != 4 {
		return "", fmt.Errorf("card face must be MM/YY or MMYY")
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("card face must be digits")
		}
	}
	mm, _ := strconv.Atoi(s[:2])
	if mm < 1 || mm > 12 {
		return "", fmt.Errorf("month must be 01..12")
	}
	return s[2:] + s[:2], nil
}

// ValidateYYMM checks YYMM shape: 4 digits with month 01..12.
func ValidateYYMM(yymm string) error {
	if len(yymm) != 4 {
		return fmt.Errorf("expiry must be YYMM (4 digits)")
	}
	for i := 0; i < 4; i++ {
		if yymm[i] < '0' || yymm[i] > '9' {
			return fmt.Errorf("expiry must be digits: YYMM")
		}
	}
	mm := int(yymm[2]-'0')*10 + int(yymm[3]-'0')
	if mm < 1 || mm > 12 {
		return fmt.Errorf("expiry month must be 01..12")
	}
	return nil
}

// ParseYYMMEndOfMonth parses YYMM into the last instant of that month in loc.
func ParseYYMMEndOfMonth(yymm string, loc *time.Location) (time.Time, error) {
	if err := ValidateYYMM(yymm); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = defaultLoc
	}
	yy, _ := strconv.Atoi(yymm[:2])
	mm, _ := strconv.Atoi(yymm[2:])
	// First day of next month, minus 1ns.
	firstNext := time.Date(2000+yy, time.Month(mm), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond), nil
}

// IsExpired reports whether time 'at' is strictly after the end of YYMM
// month in loc. Cards are good through the last instant of their month.
func IsExpired(yymm string, at time.Time, loc *time.Location) (bool, error) {
	end, err := ParseYYMMEndOfMonth(yymm, loc)
	if err != nil {
		return false, err
	}
	return at.In(end.Location()).After(end), nil
}

// Classify buckets an expiry into Expired / ExpiringSoon / Valid as of 'at'.
// ExpiringSoon means the expiry month is within warnMonths calendar months
// of 'at' (warnMonths<=0 falls back to DefaultWarnMonths). The result depends
// only on (yymm, at, loc, warnMonths).
func Classify(yymm string, at time.Time, loc *time.Location, warnMonths int) (Status, error) {
	if warnMonths <= 0 {
		warnMonths = DefaultWarnMonths
	}
	expired, err := IsExpired(yymm, at, loc)
	if err != nil {
		return "", err
	}
	if expired {
		return StatusExpired, nil
	}
	yy, _ := strconv.Atoi(yymm[:2])
	mm, _ := strconv.Atoi(yymm[2:])
	if loc == nil {
		loc = defaultLoc
	}
	now := at.In(loc)
	monthsLeft := (2000+yy-now.Year())*12 + mm - int(now.Month())
	if monthsLeft <= warnMonths {
		return StatusExpiringSoon, nil
	}
	return StatusValid, nil
}
