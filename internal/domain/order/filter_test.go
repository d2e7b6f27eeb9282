package order

import (
	"errors"
	"testing"

	"github.com/BruksfildServices01/remonte/internal/httperr"
)

func TestParseFilter_Empty(t *testing.T) {
	f, err := ParseFilter(Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MinPrice != nil || f.MaxPrice != nil || f.Number != nil || f.ClientID != nil || f.MasterID != nil {
		t.Fatalf("expected no constraints, got %+v", f)
	}
	if len(f.Search) != 0 {
		t.Fatalf("expected no search terms, got %v", f.Search)
	}
}

func TestParseFilter_AllFields(t *testing.T) {
	f, err := ParseFilter(Params{
		MinPrice: "100",
		MaxPrice: "500.5",
		Number:   "12",
		Client:   "3",
		Master:   "4",
		Search:   "12, 300",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *f.MinPrice != 100 || *f.MaxPrice != 500.5 {
		t.Fatalf("unexpected price bounds: %v %v", *f.MinPrice, *f.MaxPrice)
	}
	if *f.Number != 12 || *f.ClientID != 3 || *f.MasterID != 4 {
		t.Fatalf("unexpected exact filters: %+v", f)
	}
	if len(f.Search) != 2 || f.Search[0] != "12" || f.Search[1] != "300" {
		t.Fatalf("unexpected search terms: %v", f.Search)
	}
}

func TestParseFilter_InvalidValues(t *testing.T) {
	_, err := ParseFilter(Params{MinPrice: "cheap", Client: "-1"})

	var fes httperr.FieldErrors
	if !errors.As(err, &fes) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(fes) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(fes))
	}
	if fes[0].Field != "min_price" || fes[1].Field != "client" {
		t.Fatalf("unexpected fields: %+v", fes)
	}
}
