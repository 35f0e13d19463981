package formatter

import (
	"fmt"
	"strings"

	"github.com/dayekim/tripmate/internal/domain"
)

// FormatSchedule renders the full itinerary: trip header, transport legs,
// budget summary and one section per day.
func FormatSchedule(s *domain.Schedule) string {
	if s == nil {
		return Dim("No schedule. Run \"tripmate plan init\" to start a trip.") + "\n"
	}

	var b strings.Builder

	title := fmt.Sprintf("%s → %s", s.Departure, s.Arrival)
	if s.Departure == "" && s.Arrival == "" {
		title = "Trip"
	}
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s (%d days)\n", Bold(s.StartDate), Dim("start"), s.Days))

	if s.GoTransport != "" || s.ReturnTransport != "" {
		b.WriteString("\n")
		b.WriteString(formatLeg("go", s.GoTransport))
		b.WriteString(formatLeg("return", s.ReturnTransport))
	}

	b.WriteString("\n")
	b.WriteString(FormatBudget(s))

	for _, date := range s.Dates() {
		b.WriteString("\n")
		b.WriteString(FormatDay(s, date))
	}

	return b.String()
}

// FormatDay renders one day's place list with position numbers.
func FormatDay(s *domain.Schedule, date string) string {
	var b strings.Builder
	places := s.DailyPlan[date]
	b.WriteString(fmt.Sprintf("%s %s\n", StyleBlue.Bold(true).Render(date), Dim(fmt.Sprintf("(%d)", len(places)))))
	if len(places) == 0 {
		b.WriteString(Dim("  no places yet") + "\n")
		return b.String()
	}
	for i, p := range places {
		tag := CategoryTag(p.Category)
		if tag != "" {
			tag = " " + tag
		}
		b.WriteString(fmt.Sprintf("  %s %s%s\n", Dim(fmt.Sprintf("%d.", i+1)), p.Name, tag))
	}
	return b.String()
}

// FormatBudget renders the budget lines and derived total.
func FormatBudget(s *domain.Schedule) string {
	transport := domain.ParseTransportCost(s.GoTransport) + domain.ParseTransportCost(s.ReturnTransport)
	rows := [][]string{
		{"accommodation", FormatAmount(s.Accommodation)},
		{"food", FormatAmount(s.Food)},
		{"other", FormatAmount(s.Other)},
		{"transport", FormatAmount(transport)},
		{Bold("total"), Bold(FormatAmount(s.TotalBudget))},
	}
	return RenderTable([]string{"BUDGET", "KRW"}, rows)
}

// FormatSavedList renders the locally mirrored finalized schedules.
func FormatSavedList(schedules []*domain.Schedule) string {
	if len(schedules) == 0 {
		return Dim("No saved schedules.") + "\n"
	}
	rows := make([][]string, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, []string{
			s.ID,
			fmt.Sprintf("%s → %s", s.Departure, s.Arrival),
			s.StartDate,
			fmt.Sprintf("%d", s.Days),
			FormatAmount(s.TotalBudget),
		})
	}
	return RenderTable([]string{"ID", "ROUTE", "START", "DAYS", "BUDGET"}, rows)
}

// FormatAmount renders an amount with thousands separators.
func FormatAmount(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if amount < 0 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}

func formatLeg(label, descriptor string) string {
	if descriptor == "" {
		return ""
	}
	info := domain.ParseTransportInfo(descriptor)
	cost := domain.ParseTransportCost(descriptor)
	line := StyleGreen.Render(info.Mode)
	if info.Time != "" {
		line += " " + info.Time
	}
	if cost > 0 {
		line += " " + Dim(FormatAmount(cost)+" KRW")
	}
	return fmt.Sprintf("%s %s\n", Dim(label+":"), line)
}
