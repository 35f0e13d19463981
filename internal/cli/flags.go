package cli

import (
	"fmt"
	"time"

	"github.com/dayekim/tripmate/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value that only accepts YYYY-MM-DD, so date typos
// fail at flag parsing instead of deep inside an operation.
type dateValue string

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string { return string(*d) }

func (d *dateValue) Set(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	*d = dateValue(s)
	return nil
}

func (d *dateValue) Type() string { return "date" }
