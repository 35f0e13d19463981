package formatter

import (
	"regexp"
	"testing"

	"github.com/dayekim/tripmate/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatSchedule_NilSchedule(t *testing.T) {
	out := stripAnsi(FormatSchedule(nil))
	assert.Contains(t, out, "No schedule")
	assert.Contains(t, out, "tripmate plan init")
}

func TestFormatSchedule_FullTrip(t *testing.T) {
	s := &domain.Schedule{
		Departure:       "서울",
		Arrival:         "부산",
		StartDate:       "2025-08-30",
		Days:            2,
		GoTransport:     "KTX | 서울역 → 부산역 | 0630 → 0930 | 59800원",
		ReturnTransport: "KTX | 부산역 → 서울역 | 1800 → 2100 | 59800원",
		Accommodation:   100000,
		Food:            50000,
		TotalBudget:     269600,
		DailyPlan: domain.DailyPlan{
			"2025-08-30": {
				{ID: "1", Name: "해운대", Category: "sights", Date: "2025-08-30"},
				{ID: "2", Name: "밀면집", Category: "food", Date: "2025-08-30"},
			},
			"2025-08-31": {},
		},
	}

	out := stripAnsi(FormatSchedule(s))
	assert.Contains(t, out, "서울 → 부산")
	assert.Contains(t, out, "2025-08-30 start (2 days)")
	assert.Contains(t, out, "go: KTX 06:30 - 09:30 59,800 KRW")
	assert.Contains(t, out, "return: KTX 18:00 - 21:00 59,800 KRW")
	assert.Contains(t, out, "1. 해운대 [sights]")
	assert.Contains(t, out, "2. 밀면집 [food]")
	assert.Contains(t, out, "no places yet", "empty days still render")
	assert.Contains(t, out, "269,600")
}

func TestFormatBudget_IncludesTransportFromLegs(t *testing.T) {
	s := &domain.Schedule{
		GoTransport: "버스 | 서울 → 강릉 | 0800 → 1030 | 15000원",
		Food:        20000,
		TotalBudget: 35000,
	}
	out := stripAnsi(FormatBudget(s))
	assert.Contains(t, out, "15,000")
	assert.Contains(t, out, "20,000")
	assert.Contains(t, out, "35,000")
}

func TestFormatSavedList(t *testing.T) {
	assert.Contains(t, stripAnsi(FormatSavedList(nil)), "No saved schedules")

	out := stripAnsi(FormatSavedList([]*domain.Schedule{
		{ID: "42", Departure: "서울", Arrival: "부산", StartDate: "2025-08-30", Days: 2, TotalBudget: 100000},
	}))
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "서울 → 부산")
	assert.Contains(t, out, "100,000")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "999", FormatAmount(999))
	assert.Equal(t, "1,000", FormatAmount(1000))
	assert.Equal(t, "59,800", FormatAmount(59800))
	assert.Equal(t, "1,234,567", FormatAmount(1234567))
	assert.Equal(t, "-500", FormatAmount(-500))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripAnsi(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{{"1", "short"}, {"22", "a longer name"}},
	))
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "a longer name")
}
