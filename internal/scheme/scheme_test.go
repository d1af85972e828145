package scheme

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		pan  string
		want Scheme
	}{
		{"4111111111111111", Visa},
		{"4222222222222", Visa},
		{"5105105105105100", MasterCard},
		{"5200828282828210", MasterCard},
		{"378282246310005", AmericanExpress},
		{"340000000000009", AmericanExpress},
		{"6011111111111117", Unknown}, // Discover not supported
		{"5305105105105100", Unknown}, // 53 outside 51..52
		{"3566002020360505", Unknown}, // JCB
		{"", Unknown},
	}
	for _, c := range cases {
		if got := Detect(c.pan); got != c.want {
			t.Fatalf("Detect(%s) = %s want %s", c.pan, got, c.want)
		}
	}
}

func TestCVVLength(t *testing.T) {
	if got := CVVLength(AmericanExpress); got != 4 {
		t.Fatalf("amex cvv length = %d want 4", got)
	}
	for _, s := range []Scheme{Visa, MasterCard, Unknown} {
		if got := CVVLength(s); got != 3 {
			t.Fatalf("%s cvv length = %d want 3", s, got)
		}
	}
}

func TestValidCVV(t *testing.T) {
	cases := []struct {
		s    Scheme
		cvv  string
		want bool
	}{
		{Visa, "123", true},
		{Visa, "1234", false},
		{MasterCard, "000", true},
		{MasterCard, "12", false},
		{AmericanExpress, "1234", true},
		{AmericanExpress, "123", false},
		{Unknown, "999", true},
		{Visa, "12a", false},
		{AmericanExpress, "12 4", false},
	}
	for _, c := range cases {
		if got := ValidCVV(c.s, c.cvv); got != c.want {
			t.Fatalf("ValidCVV(%s, %q) = %v want %v", c.s, c.cvv, got, c.want)
		}
	}
}
