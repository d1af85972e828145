package cardlog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppend_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card_log.txt")
	w := New(path)

	rec := Record{
		Holder: "JOHN DOE",
		Scheme: "Visa",
		Masked: "XXXX-XXXX-XXXX-1111",
		Expiry: "10/30",
	}
	if err := w.Append(rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "Card Holder: JOHN DOE\nCard Type: Visa\nMasked Card: XXXX-XXXX-XXXX-1111\nExpiry: 10/30\n\n"
	if string(data) != want {
		t.Fatalf("log content:\n%q\nwant:\n%q", data, want)
	}
}

func TestAppend_AppendsNotTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card_log.txt")
	w := New(path)

	first := Record{Holder: "A", Scheme: "Visa", Masked: "XXXX-XXXX-XXXX-1111", Expiry: "01/31"}
	second := Record{Holder: "B", Scheme: "Unknown", Masked: "XXXX-XXXX-XXXX-0005", Expiry: "02/32"}
	if err := w.Append(first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := w.Append(second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "Card Holder: A\nCard Type: Visa\nMasked Card: XXXX-XXXX-XXXX-1111\nExpiry: 01/31\n\n" +
		"Card Holder: B\nCard Type: Unknown\nMasked Card: XXXX-XXXX-XXXX-0005\nExpiry: 02/32\n\n"
	if string(data) != want {
		t.Fatalf("log content:\n%q\nwant:\n%q", data, want)
	}
}

func TestNew_DefaultPath(t *testing.T) {
	if got := New("").Path(); got != DefaultPath {
		t.Fatalf("default path = %s want %s", got, DefaultPath)
	}
}

func TestAppend_BadDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "card_log.txt"))
	if err := w.Append(Record{}); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
