package core

import "testing"

func TestToStorageFormNormalizes(t *testing.T) {
	if got := ToStorageForm(" 2024-01-15 "); got != "2024-01-15" {
		t.Errorf("Expected 2024-01-15, got %q", got)
	}
}

func TestToStorageFormFallback(t *testing.T) {
	// Malformed dates pass through trimmed; the query simply finds no rows.
	if got := ToStorageForm(" 15/01/2024 "); got != "15/01/2024" {
		t.Errorf("Expected raw trimmed input back, got %q", got)
	}
}

func TestToDisplayFormDefaultLayout(t *testing.T) {
	if got := ToDisplayForm("2024-01-15", ""); got != "2024-01-15" {
		t.Errorf("Expected 2024-01-15, got %q", got)
	}
}

func TestToDisplayFormCustomLayout(t *testing.T) {
	if got := ToDisplayForm("2024-01-15", "02 Jan 2006"); got != "15 Jan 2024" {
		t.Errorf("Expected 15 Jan 2024, got %q", got)
	}
}

func TestToDisplayFormFallback(t *testing.T) {
	if got := ToDisplayForm("not-a-date", "02 Jan 2006"); got != "not-a-date" {
		t.Errorf("Expected raw input back, got %q", got)
	}
}

func TestDateRoundTripUnderDefaultLayout(t *testing.T) {
	// Storage then display form round-trips when both use the default layout.
	stored := ToStorageForm("2024-01-15")
	if got := ToDisplayForm(stored, DefaultDateFmt); got != "2024-01-15" {
		t.Errorf("Round trip broke: got %q", got)
	}
}
