package pricing

import (
	"testing"

	"autorent/internal/domain/shared/money"
)

func TestLoadDiscountTableDefaults(t *testing.T) {
	table := LoadDiscountTable("", nil)
	if table.Len() != len(DefaultDiscountCodes()) {
		t.Fatalf("Len() = %d", table.Len())
	}
	if _, ok := table.Lookup("welcome10"); !ok {
		t.Fatal("default code WELCOME10 missing")
	}
}

func TestLoadDiscountTableOverride(t *testing.T) {
	raw := `[{"code":"spring5","percentage":5,"max_cents":5000}]`
	table := LoadDiscountTable(raw, nil)
	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}
	code, ok := table.Lookup("SPRING5")
	if !ok {
		t.Fatal("override code missing")
	}
	if code.MaxAmount != money.FromCents(5000) {
		t.Fatalf("MaxAmount = %s", code.MaxAmount)
	}
}

func TestLoadDiscountTableFallsBackOnGarbage(t *testing.T) {
	table := LoadDiscountTable("{not json", nil)
	if _, ok := table.Lookup("SUMMER20"); !ok {
		t.Fatal("garbage input must fall back to defaults")
	}
}

func TestLoadHolidayCalendar(t *testing.T) {
	cal := LoadHolidayCalendar(`["07-04"]`, nil)
	if cal.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cal.Len())
	}

	cal = LoadHolidayCalendar("", nil)
	if cal.Len() != len(DefaultHolidays()) {
		t.Fatalf("defaults Len() = %d", cal.Len())
	}
}
