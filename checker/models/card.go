package models

import (
	"github.com/VK-10-9/Joshi-card/internal/expiry"
	"github.com/VK-10-9/Joshi-card/internal/scheme"
)

// CardInput is the raw record collected from the user, untouched beyond
// line trimming.
type CardInput struct {
	Number string
	Expiry string // MM/YY card face
	Holder string
	CVV    string
}

// Report is the outcome of one validation pass. The full PAN is dropped once
// the report is built; only the masked form survives.
type Report struct {
	ID           string
	Holder       string
	Masked       string
	Scheme       scheme.Scheme
	CVVValid     bool
	ExpiryStatus expiry.Status
	Expiry       string // normalized MM/YY
	RiskScore    float64
}
