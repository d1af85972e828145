// Package cardlog appends validated card records to a plaintext log file.
// The format is fixed: four "Key: value" lines followed by a blank line per
// record, no header. The file is opened, appended and closed on every call;
// there is no rotation and no cross-process locking.
package cardlog

import (
	"fmt"
	"os"
)

const DefaultPath = "card_log.txt"

// Record is one appended entry. Masked must already be the display form;
// the full PAN never reaches this package.
type Record struct {
	Holder string
	Scheme string
	Masked string
	Expiry string // MM/YY card face
}

type Writer struct {
	path string
}

func New(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path}
}

func (w *Writer) Path() string { return w.path }

// Append writes one record to the end of the log file, creating it when
// missing.
func (w *Writer) Append(rec Record) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening card log: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "Card Holder: %s\nCard Type: %s\nMasked Card: %s\nExpiry: %s\n\n",
		rec.Holder, rec.Scheme, rec.Masked, rec.Expiry)
	if err != nil {
		return fmt.Errorf("writing card log: %w", err)
	}
	return nil
}
