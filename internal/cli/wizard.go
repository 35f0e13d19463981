package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dayekim/tripmate/internal/cli/formatter"
	"github.com/dayekim/tripmate/internal/domain"
)

// tripmateHuhTheme returns the shared huh theme used by interactive forms.
func tripmateHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != 4 {
		return fmt.Errorf("use HHMM, e.g. 0930")
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("use HHMM, e.g. 0930")
	}
	return nil
}

// legAnswers collects the raw fields of one transport leg.
type legAnswers struct {
	Mode   string
	Origin string
	Dest   string
	Dep    string
	Arr    string
	Cost   string
}

// descriptor renders the canonical leg descriptor, or "" when the leg was
// skipped.
func (l legAnswers) descriptor() string {
	if l.Mode == "" {
		return ""
	}
	return domain.FormatTransportLeg(l.Mode, l.Origin, l.Dest, l.Dep, l.Arr, domain.ParseAmount(l.Cost))
}

func legGroup(title string, l *legAnswers) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().Title(title+" mode").Placeholder("KTX").Description("Leave blank to skip").Value(&l.Mode),
		huh.NewInput().Title("From station").Placeholder("서울역").Value(&l.Origin),
		huh.NewInput().Title("To station").Placeholder("부산역").Value(&l.Dest),
		huh.NewInput().Title("Departure (HHMM)").Placeholder("0630").Value(&l.Dep).Validate(validateOptionalClock),
		huh.NewInput().Title("Arrival (HHMM)").Placeholder("0930").Value(&l.Arr).Validate(validateOptionalClock),
		huh.NewInput().Title("Fare (KRW)").Placeholder("59800").Value(&l.Cost).Validate(validatePositiveInt),
	)
}

// runPlanWizard collects a trip draft interactively.
func runPlanWizard() (*domain.Draft, error) {
	var (
		departure, arrival string
		date, days         string
		goLeg, returnLeg   legAnswers
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Departure city").Placeholder("서울").Value(&departure),
			huh.NewInput().Title("Destination city").Placeholder("부산").Value(&arrival),
			huh.NewInput().Title("Start date").Placeholder("2025-08-30").Value(&date).Validate(validateDate),
			huh.NewInput().Title("Days").Placeholder("2").Value(&days).Validate(validatePositiveInt),
		),
		legGroup("Outbound", &goLeg),
		legGroup("Return", &returnLeg),
	).WithTheme(tripmateHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	d := &domain.Draft{
		Departure:       departure,
		Arrival:         arrival,
		Date:            date,
		Days:            1,
		GoTransport:     goLeg.descriptor(),
		ReturnTransport: returnLeg.descriptor(),
	}
	if n, err := strconv.Atoi(days); err == nil {
		d.Days = n
	}
	return d, nil
}
