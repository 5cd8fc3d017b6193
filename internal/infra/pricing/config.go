package pricing

import (
	"encoding/json"
	"log/slog"
	"strings"

	"autorent/internal/domain/calendar"
	"autorent/internal/domain/catalog"
	"autorent/internal/domain/shared/money"
)

// discountEntry is the env-JSON form of a promotional code.
type discountEntry struct {
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
	MaxCents   int64   `json:"max_cents"`
}

// DefaultDiscountCodes is the built-in promotional table used when no
// override is configured.
func DefaultDiscountCodes() []catalog.DiscountCode {
	return []catalog.DiscountCode{
		{Code: "WELCOME10", Percentage: 10, MaxAmount: money.FromCents(10000)},
		{Code: "SUMMER20", Percentage: 20, MaxAmount: money.FromCents(20000)},
		{Code: "LOYAL15", Percentage: 15, MaxAmount: money.FromCents(15000)},
	}
}

// LoadDiscountTable builds the injected discount table from the DISCOUNT_CODES
// env JSON, falling back to the defaults on empty or invalid input.
func LoadDiscountTable(raw string, logger *slog.Logger) catalog.DiscountTable {
	if strings.TrimSpace(raw) == "" {
		return catalog.NewDiscountTable(DefaultDiscountCodes())
	}

	var entries []discountEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		if logger != nil {
			logger.Warn("invalid DISCOUNT_CODES JSON, using defaults", "error", err)
		}
		return catalog.NewDiscountTable(DefaultDiscountCodes())
	}

	codes := make([]catalog.DiscountCode, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, catalog.DiscountCode{
			Code:       e.Code,
			Percentage: e.Percentage,
			MaxAmount:  money.FromCents(e.MaxCents),
		})
	}
	return catalog.NewDiscountTable(codes)
}

// DefaultHolidays lists the recurring public holidays as month-day strings.
func DefaultHolidays() []string {
	return []string{
		"01-01", "01-02", "01-07", "01-19",
		"03-03", "03-08",
		"04-09",
		"05-09", "05-12", "05-26",
		"08-28",
		"10-14",
		"11-23",
	}
}

// LoadHolidayCalendar builds the holiday table from the HOLIDAYS env JSON
// (an array of "MM-DD" strings), falling back to the defaults.
func LoadHolidayCalendar(raw string, logger *slog.Logger) calendar.HolidayCalendar {
	if strings.TrimSpace(raw) == "" {
		return calendar.NewHolidayCalendar(DefaultHolidays())
	}

	var days []string
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		if logger != nil {
			logger.Warn("invalid HOLIDAYS JSON, using defaults", "error", err)
		}
		return calendar.NewHolidayCalendar(DefaultHolidays())
	}
	return calendar.NewHolidayCalendar(days)
}
