// Package rules holds the field-level invariants checked before any write is accepted.
package rules

import (
	"math"
	"strings"

	"github.com/BruksfildServices01/remonte/internal/httperr"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Policy carries the configurable part of the validation rules.
type Policy struct {
	EmailDomains []string
}

func NewPolicy(domains []string) Policy {
	clean := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			clean = append(clean, d)
		}
	}
	return Policy{EmailDomains: clean}
}

// ClientEmail accepts an empty email or one ending in an allow-listed domain.
func (p Policy) ClientEmail(email string) error {
	if email == "" {
		return nil
	}

	lower := strings.ToLower(email)
	for _, d := range p.EmailDomains {
		if strings.HasSuffix(lower, "@"+d) {
			return nil
		}
	}

	return httperr.InvalidField(
		"email",
		"email must end with @"+strings.Join(p.EmailDomains, " or @"),
	)
}

func MasterRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return httperr.InvalidField("rating", "rating must be between 1 and 5")
	}
	return nil
}

func OrderPrice(price float64) error {
	if price < 0 {
		return httperr.InvalidField("price", "price cannot be negative")
	}
	return nil
}

// RoundRating and RoundPrice round half away from zero to the precision of
// the rating and price columns, so every driver stores the same value.
func RoundRating(v float64) float64 { return math.Round(v*10) / 10 }

func RoundPrice(v float64) float64 { return math.Round(v*100) / 100 }
