package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DailyPlanPayload(t *testing.T) {
	payload := `{
		"dailyPlan": {
			"2025-07-01": [
				{"id": "abc", "name": "해운대", "category": "beach", "lat": 35.15, "lng": 129.11},
				{"name": "광안리"}
			],
			"2025-07-02": []
		}
	}`
	schema, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, schema.DailyPlan, 2)
	require.Len(t, schema.DailyPlan["2025-07-01"], 2)
	assert.Equal(t, FlexID("abc"), schema.DailyPlan["2025-07-01"][0].ID)
	assert.Equal(t, 35.15, *schema.DailyPlan["2025-07-01"][0].Lat)
}

func TestParse_NumericID(t *testing.T) {
	// The web client used epoch-millisecond numbers as temporary ids.
	payload := `{"places": [{"id": 1719813600000, "name": "성산일출봉"}]}`
	schema, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, schema.Places, 1)
	assert.Equal(t, FlexID("1719813600000"), schema.Places[0].ID)
}

func TestParse_NullID(t *testing.T) {
	payload := `{"places": [{"id": null, "name": "카페"}]}`
	schema, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, FlexID(""), schema.Places[0].ID)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"dailyPlan": [`))
	assert.Error(t, err)
}

func TestValidateSchema_EmptyPayload(t *testing.T) {
	errs := ValidateSchema(&Schema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "neither dailyPlan nor places")
}

func TestValidateSchema_BadDateKey(t *testing.T) {
	schema := &Schema{DailyPlan: map[string][]PlaceImport{"07/01/2025": {}}}
	errs := ValidateSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "07/01/2025")
}

func TestValidateSchema_Valid(t *testing.T) {
	schema := &Schema{DailyPlan: map[string][]PlaceImport{
		"2025-07-01": {{Name: "해운대"}},
	}}
	assert.Empty(t, ValidateSchema(schema))
}
