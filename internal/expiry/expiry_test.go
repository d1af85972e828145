package expiry

import (
	"testing"
	"time"
)

func TestFormats_Rollover(t *testing.T) {
	issue := time.Date(2029, time.December, 15, 0, 0, 0, 0, time.UTC)
	years := 1
	if got := YYMM(issue, years); got != "3012" {
		t.Fatalf("YYMM got %s want %s", got, "3012")
	}
	if got := CardFace(issue, years); got != "12/30" {
		t.Fatalf("CardFace got %s want %s", got, "12/30")
	}
}

func TestParseYYMMEndOfMonth(t *testing.T) {
	cases := []struct {
		yymm string
		want time.Time
	}{
		{"3002", time.Date(2030, time.February, 28, 23, 59, 59, 999999999, time.UTC)},
		{"3004", time.Date(2030, time.April, 30, 23, 59, 59, 999999999, time.UTC)},
		{"3202", time.Date(2032, time.February, 29, 23, 59, 59, 999999999, time.UTC)}, // leap
	}
	for _, c := range cases {
		ts, err := ParseYYMMEndOfMonth(c.yymm, time.UTC)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if !ts.Equal(c.want) {
			t.Fatalf("ParseYYMMEndOfMonth(%s) got %v want %v", c.yymm, ts, c.want)
		}
	}
}

func TestValidateYYMM(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"3002", true}, {"9912", true}, {"0001", true},
		{"123", false}, {"12a4", false}, {"3013", false}, {"0000", false},
	}
	for _, c := range cases {
		err := ValidateYYMM(c.in)
		if (err == nil) != c.ok {
			t.Fatalf("ValidateYYMM(%s) ok=%v got err=%v", c.in, c.ok, err)
		}
	}
}

func TestIsExpired(t *testing.T) {
	yymm := "3002" // 2030-02
	end, _ := ParseYYMMEndOfMonth(yymm, time.UTC)
	// The end instant itself is still good.
	for _, at := range []time.Time{end.Add(-time.Nanosecond), end} {
		expired, err := IsExpired(yymm, at, time.UTC)
		if err != nil || expired {
			t.Fatalf("expected not expired at %v, got expired=%v err=%v", at, expired, err)
		}
	}
	expired, err := IsExpired(yymm, end.Add(time.Nanosecond), time.UTC)
	if err != nil || !expired {
		t.Fatalf("expected expired after %v, got expired=%v err=%v", end, expired, err)
	}
}

func TestClassify(t *testing.T) {
	now := time.Date(2030, time.June, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		yymm string
		want Status
	}{
		{"3005", StatusExpired},      // last month
		{"2912", StatusExpired},      // last year
		{"3006", StatusExpiringSoon}, // this month, still good
		{"3009", StatusExpiringSoon}, // 3 months out
		{"3012", StatusExpiringSoon}, // exactly 6 months out
		{"3101", StatusValid},        // 7 months out
		{"3306", StatusValid},
	}
	for _, c := range cases {
		got, err := Classify(c.yymm, now, time.UTC, DefaultWarnMonths)
		if err != nil {
			t.Fatalf("Classify(%s): %v", c.yymm, err)
		}
		if got != c.want {
			t.Fatalf("Classify(%s) = %s want %s", c.yymm, got, c.want)
		}
	}
}

func TestClassify_WarnWindowOverride(t *testing.T) {
	now := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC)
	// One month window: 2 months out is already Valid.
	got, err := Classify("3008", now, time.UTC, 1)
	if err != nil || got != StatusValid {
		t.Fatalf("Classify warn=1 got %s err=%v want Valid", got, err)
	}
	got, err = Classify("3007", now, time.UTC, 1)
	if err != nil || got != StatusExpiringSoon {
		t.Fatalf("Classify warn=1 got %s err=%v want ExpiringSoon", got, err)
	}
}

func TestClassify_BadInput(t *testing.T) {
	if _, err := Classify("3013", time.Now(), time.UTC, 6); err == nil {
		t.Fatalf("expected error for month 13")
	}
}

func TestParseCardFace(t *testing.T) {
	yymm, err := ParseCardFace("10/30")
	if err != nil || yymm != "3010" {
		t.Fatalf("ParseCardFace 10/30 got %s err=%v", yymm, err)
	}
	yymm, err = ParseCardFace("1030")
	if err != nil || yymm != "3010" {
		t.Fatalf("ParseCardFace 1030 got %s err=%v", yymm, err)
	}
	if _, err := ParseCardFace("13/30"); err == nil {
		t.Fatalf("expected error for 13/30")
	}
	if _, err := ParseCardFace("1/30"); err == nil {
		t.Fatalf("expected error for single-digit month")
	}
}

func TestCardFaceFromYYMM(t *testing.T) {
	face, err := CardFaceFromYYMM("3010")
	if err != nil || face != "10/30" {
		t.Fatalf("CardFaceFromYYMM(3010) got %s err=%v", face, err)
	}
	if _, err := CardFaceFromYYMM("0000"); err == nil {
		t.Fatalf("expected error for month 00")
	}
}

func TestYearsForProduct(t *testing.T) {
	if got := YearsForProduct("credit", 0); got != 3 {
		t.Fatalf("credit years got %d want %d", got, 3)
	}
	if got := YearsForProduct("debit", 0); got != 5 {
		t.Fatalf("debit years got %d want %d", got, 5)
	}
	if got := YearsForProduct("anything", 7); got != 7 {
		t.Fatalf("override years got %d want %d", got, 7)
	}
}
