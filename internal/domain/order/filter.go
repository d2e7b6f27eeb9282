package order

import (
	"strconv"
	"strings"

	"github.com/BruksfildServices01/remonte/internal/httperr"
)

// Filter narrows an order listing. Nil fields impose no constraint and
// all present fields are combined with AND.
type Filter struct {
	MinPrice *float64 // strict greater-than
	MaxPrice *float64 // strict less-than
	Number   *int
	ClientID *uint
	MasterID *uint

	// Search terms each have to match number or price as a substring.
	Search []string
}

// Params is the raw query string view of a Filter.
type Params struct {
	MinPrice string
	MaxPrice string
	Number   string
	Client   string
	Master   string
	Search   string
}

// ParseFilter validates raw query values. Unparseable values are field errors.
func ParseFilter(p Params) (Filter, error) {
	var (
		f    Filter
		errs httperr.FieldErrors
	)

	if v := strings.TrimSpace(p.MinPrice); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, httperr.FieldError{Field: "min_price", Reason: "enter a number"})
		} else {
			f.MinPrice = &n
		}
	}

	if v := strings.TrimSpace(p.MaxPrice); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, httperr.FieldError{Field: "max_price", Reason: "enter a number"})
		} else {
			f.MaxPrice = &n
		}
	}

	if v := strings.TrimSpace(p.Number); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, httperr.FieldError{Field: "number", Reason: "enter a whole number"})
		} else {
			f.Number = &n
		}
	}

	if v := strings.TrimSpace(p.Client); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, httperr.FieldError{Field: "client", Reason: "enter a valid id"})
		} else {
			u := uint(id)
			f.ClientID = &u
		}
	}

	if v := strings.TrimSpace(p.Master); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, httperr.FieldError{Field: "master", Reason: "enter a valid id"})
		} else {
			u := uint(id)
			f.MasterID = &u
		}
	}

	f.Search = splitTerms(p.Search)

	if len(errs) > 0 {
		return Filter{}, errs
	}
	return f, nil
}

// splitTerms splits on whitespace and commas, like the search box of the admin.
func splitTerms(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
