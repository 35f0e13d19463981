package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dayekim/tripmate/internal/domain"
	"github.com/dayekim/tripmate/internal/itinerary"
	"github.com/dayekim/tripmate/internal/repository"
	"github.com/dayekim/tripmate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	cache := repository.NewSQLiteCacheRepo(testutil.NewTestDB(t))
	return &App{Store: itinerary.NewStore(cache, nil)}
}

// executeCmd runs a cobra command, capturing both cobra output and direct
// stdout writes from command handlers.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, pr)

	return buf.String(), execErr
}

func seedTrip(t *testing.T, app *App) {
	t.Helper()
	_, err := app.Store.InitFromDraft(context.Background(), domain.Draft{
		Departure: "서울",
		Arrival:   "부산",
		Date:      "2025-08-30",
		Days:      2,
	})
	require.NoError(t, err)
}

func TestPlanInitCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app,
		"plan", "init", "--from", "서울", "--to", "부산", "--date", "2025-08-30", "--days", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Started trip 서울 → 부산, 2 days from 2025-08-30")
	require.NotNil(t, app.Store.Schedule())
	assert.Len(t, app.Store.Schedule().DailyPlan, 2)
}

func TestPlanInitCmd_RequiresDateWithoutTerminal(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "plan", "init", "--from", "서울", "--to", "부산")
	assert.ErrorContains(t, err, "--date is required")
}

func TestPlanShowCmd_EmptyAndPopulated(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No schedule")

	seedTrip(t, app)
	require.NoError(t, app.Store.AddPlace(context.Background(), "2025-08-30", &domain.Place{Name: "해운대"}))

	out, err = executeCmd(t, app, "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "서울 → 부산")
	assert.Contains(t, out, "해운대")
}

func TestPlanClearCmd(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)

	out, err := executeCmd(t, app, "plan", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Plan cleared")
	assert.Nil(t, app.Store.Schedule())

	restored, err := app.Store.Rehydrate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, restored, "cleared plan does not come back")
}

func TestPlaceAddCmd(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)

	out, err := executeCmd(t, app,
		"place", "add", "--date", "2025-08-31", "--name", "광안리", "--category", "sights")
	require.NoError(t, err)
	assert.Contains(t, out, "광안리")
	assert.Len(t, app.Store.Schedule().DailyPlan["2025-08-31"], 1)
}

func TestPlaceAddCmd_UnknownDay(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)

	_, err := executeCmd(t, app, "place", "add", "--date", "2099-01-01", "--name", "x")
	assert.ErrorContains(t, err, "not part of this trip")
}

func TestPlaceCmd_RejectsMalformedDate(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)

	_, err := executeCmd(t, app, "place", "add", "--date", "Aug 30", "--name", "x")
	assert.ErrorContains(t, err, "invalid date")
}

func TestPlaceRemoveCmd(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)
	ctx := context.Background()
	require.NoError(t, app.Store.AddPlace(ctx, "2025-08-30", &domain.Place{Name: "a"}))
	require.NoError(t, app.Store.AddPlace(ctx, "2025-08-30", &domain.Place{Name: "b"}))

	_, err := executeCmd(t, app, "place", "remove", "--date", "2025-08-30", "--pos", "1")
	require.NoError(t, err)

	places := app.Store.Schedule().DailyPlan["2025-08-30"]
	require.Len(t, places, 1)
	assert.Equal(t, "b", places[0].Name)
}

func TestPlaceMoveCmd_AcrossDays(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)
	ctx := context.Background()
	require.NoError(t, app.Store.AddPlace(ctx, "2025-08-30", &domain.Place{Name: "a"}))

	_, err := executeCmd(t, app,
		"place", "move", "--date", "2025-08-30", "--pos", "1", "--to-date", "2025-08-31", "--to-pos", "1")
	require.NoError(t, err)

	assert.Empty(t, app.Store.Schedule().DailyPlan["2025-08-30"])
	moved := app.Store.Schedule().DailyPlan["2025-08-31"]
	require.Len(t, moved, 1)
	assert.Equal(t, "2025-08-31", moved[0].Date)
}

func TestBudgetSetCmd_PartialUpdateKeepsRest(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)
	ctx := context.Background()
	require.NoError(t, app.Store.SetBudget(ctx, "100000", "50000", "0"))

	out, err := executeCmd(t, app, "budget", "set", "--food", "70000")
	require.NoError(t, err)
	assert.Contains(t, out, "70,000")

	s := app.Store.Schedule()
	assert.Equal(t, 100000, s.Accommodation, "unspecified fields keep their value")
	assert.Equal(t, 70000, s.Food)
	assert.Equal(t, 170000, s.TotalBudget)
}

func TestBudgetShowCmd_NoTrip(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "budget", "show")
	assert.ErrorContains(t, err, "no trip planned")
}

func TestPlanTransportCmd_UpdatesBudget(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)

	out, err := executeCmd(t, app,
		"plan", "transport", "--go", "KTX | 서울역 → 부산역 | 0630 → 0930 | 59800원")
	require.NoError(t, err)
	assert.Contains(t, out, "59,800")
	assert.Equal(t, 59800, app.Store.Schedule().TotalBudget)
}

func TestMergeCmd(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)

	path := filepath.Join(t.TempDir(), "rec.json")
	payload := `{"dailyPlan": {"2025-08-30": [{"id": 1719813600000, "name": "추천 맛집", "category": "food"}]}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	out, err := executeCmd(t, app, "merge", path)
	require.NoError(t, err)
	assert.Contains(t, out, "추천 맛집")

	places := app.Store.Schedule().DailyPlan["2025-08-30"]
	require.Len(t, places, 1)
	assert.Equal(t, "1719813600000", places[0].ID)
}

func TestMergeCmd_RejectsMalformedDayKeys(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)

	path := filepath.Join(t.TempDir(), "bad.json")
	payload := `{"dailyPlan": {"banana": [{"name": "x"}]}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	_, err := executeCmd(t, app, "merge", path)
	assert.ErrorContains(t, err, "validation failed")
	assert.ErrorContains(t, err, "banana")

	// The aggregate is untouched: no stray day key, span unchanged.
	s := app.Store.Schedule()
	assert.Len(t, s.DailyPlan, 2)
	assert.NotContains(t, s.DailyPlan, "banana")
	assert.Equal(t, 2, s.Days)
}

func TestMergeCmd_FlatPlaceList(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)

	path := filepath.Join(t.TempDir(), "flat.json")
	payload := `{"places": [{"name": "시장"}, {"name": "타워"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	_, err := executeCmd(t, app, "merge", path)
	require.NoError(t, err)

	// Flat payloads land on the active day.
	places := app.Store.Schedule().DailyPlan["2025-08-30"]
	require.Len(t, places, 2)
	assert.Equal(t, "2025-08-30", places[0].Date)
}

func TestMergeCmd_MissingFile(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)
	_, err := executeCmd(t, app, "merge", filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorContains(t, err, "reading recommendation")
}

func TestSaveCmd_NoEndpoint(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)
	_, err := executeCmd(t, app, "save")
	assert.Error(t, err)
}

func TestSavedListCmd_Empty(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "saved", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved schedules")
}

func TestPlanBoardCmd_NonInteractive(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)
	_, err := executeCmd(t, app, "plan", "board")
	assert.ErrorContains(t, err, "interactive terminal")
}
