package timezone

import "testing"

func TestLoad(t *testing.T) {
	loc, err := Load("")
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if loc.String() != DefaultTimezone {
		t.Fatalf("expected %s, got %s", DefaultTimezone, loc)
	}

	if _, err := Load("UTC"); err != nil {
		t.Fatalf("UTC: %v", err)
	}

	if _, err := Load("Mars/Olympus_Mons"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}
