package recommend

import (
	"fmt"
	"time"

	"github.com/dayekim/tripmate/internal/domain"
)

// ValidateSchema checks a recommendation payload before conversion.
// Returns a slice of all validation errors found.
func ValidateSchema(schema *Schema) []error {
	var errs []error

	if len(schema.DailyPlan) == 0 && len(schema.Places) == 0 {
		errs = append(errs, fmt.Errorf("payload contains neither dailyPlan nor places"))
		return errs
	}

	for date := range schema.DailyPlan {
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			errs = append(errs, fmt.Errorf("dailyPlan key %q is not a YYYY-MM-DD date", date))
		}
	}
	for i, p := range schema.Places {
		if p.Date != "" {
			if _, err := time.Parse(domain.DateLayout, p.Date); err != nil {
				errs = append(errs, fmt.Errorf("places[%d].date %q is not a YYYY-MM-DD date", i, p.Date))
			}
		}
	}

	return errs
}
