package docvars

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedClock pins the calculators to 2024-03-07 14:35:09.
func fixedClock() time.Time {
	return time.Date(2024, time.March, 7, 14, 35, 9, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	catalog := NewCatalog([]Injectable{
		{Key: "company_id", Label: "Company ID", DataType: "TEXT", SourceType: SourceTypeInternal},
		{Key: "client_name", Label: "Client name", DataType: "TEXT", SourceType: SourceTypeExternal},
	})

	extracted := []ExtractedVariable{
		{VariableID: "company_id"},
		{VariableID: "client_name"},
		{VariableID: "date_now"},  // not catalogued, known internal key
		{VariableID: "free_text"}, // not catalogued, external
	}

	classified := Classify(extracted, catalog)
	assert.Len(t, classified, 4)

	assert.True(t, classified[0].IsInternal)
	assert.Equal(t, "Company ID", classified[0].Label)

	assert.False(t, classified[1].IsInternal)
	assert.Equal(t, "Client name", classified[1].Label)

	assert.True(t, classified[2].IsInternal)
	assert.Equal(t, "date_now", classified[2].Label)

	assert.False(t, classified[3].IsInternal)
	assert.Equal(t, "free_text", classified[3].Label)
}

func TestClassifyPrefersExtractedLabel(t *testing.T) {
	catalog := NewCatalog([]Injectable{
		{Key: "client_name", Label: "Catalog label", SourceType: SourceTypeExternal},
	})

	classified := Classify([]ExtractedVariable{{VariableID: "client_name", Label: "Node label"}}, catalog)
	assert.Equal(t, "Node label", classified[0].Label)
}

func TestCalculateInternalValues(t *testing.T) {
	calc := NewCalculators(fixedClock)

	assert.Equal(t, "2024-03-07", calc.Calculate(KeyDateNow, "YYYY-MM-DD"))
	assert.Equal(t, "07/03/2024", calc.Calculate(KeyDateNow, ""))
	assert.Equal(t, "07/03/2024 14:35", calc.Calculate(KeyDateTimeNow, ""))
	assert.Equal(t, "2024-03-07 14:35:09", calc.Calculate(KeyDateTimeNow, "YYYY-MM-DD HH:mm:ss"))
	assert.Equal(t, "14:35", calc.Calculate(KeyTimeNow, ""))
	assert.Equal(t, "14:35:09", calc.Calculate(KeyTimeNow, "HH:mm:ss"))
	assert.Equal(t, "02:35 PM", calc.Calculate(KeyTimeNow, "hh:mm a"))
	assert.Equal(t, "2024", calc.Calculate(KeyYearNow, ""))
	assert.Equal(t, "3", calc.Calculate(KeyMonthNow, ""))
	assert.Equal(t, "March", calc.Calculate(KeyMonthNow, MonthFormatLongName))
	assert.Equal(t, "Mar", calc.Calculate(KeyMonthNow, MonthFormatShortName))
	assert.Equal(t, "7", calc.Calculate(KeyDayNow, ""))
	assert.Equal(t, "Thursday, 7 March 2024", calc.Calculate(KeyDateNow, "long"))

	// Unknown key degrades to empty string.
	assert.Equal(t, "", calc.Calculate("moon_phase_now", ""))

	// Unknown format falls back to the key default.
	assert.Equal(t, "07/03/2024", calc.Calculate(KeyDateNow, "QQQQ"))
}

func TestRegisterCustomCalculator(t *testing.T) {
	calc := NewCalculators(fixedClock)
	calc.Register("workspace_code", func(time.Time, string) string { return "WS-42" })

	assert.True(t, calc.Has("workspace_code"))
	assert.Equal(t, "WS-42", calc.Calculate("workspace_code", ""))
}

func TestAutoFillInternal(t *testing.T) {
	format := "YYYY-MM-DD"
	vars := []PreviewVariable{
		{ExtractedVariable: ExtractedVariable{VariableID: KeyDateNow, Format: &format}, IsInternal: true},
		{ExtractedVariable: ExtractedVariable{VariableID: "client_name"}, IsInternal: false},
	}

	values := AutoFillInternal(vars, NewCalculators(fixedClock))
	assert.Len(t, values, 1)

	v := values[KeyDateNow]
	assert.Equal(t, "2024-03-07", v.DisplayValue)
	assert.Equal(t, v.DisplayValue, v.Value)
}

func TestMissing(t *testing.T) {
	vars := []PreviewVariable{
		{ExtractedVariable: ExtractedVariable{VariableID: "a"}, IsInternal: true},
		{ExtractedVariable: ExtractedVariable{VariableID: "b"}, IsInternal: false},
		{ExtractedVariable: ExtractedVariable{VariableID: "c"}, IsInternal: false},
		{ExtractedVariable: ExtractedVariable{VariableID: "d"}, IsInternal: false},
	}
	values := ValueMap{
		"c": {VariableID: "c", Value: "x", DisplayValue: "x"},
		"d": {VariableID: "d", Value: "", DisplayValue: ""},
	}

	missing := Missing(vars, values)
	ids := make([]string, len(missing))
	for i, v := range missing {
		ids[i] = v.VariableID
	}
	assert.Equal(t, []string{"b", "d"}, ids)
}

func TestValueMapRawAndMerge(t *testing.T) {
	base := ValueMap{"a": {VariableID: "a", Value: "1", DisplayValue: "1"}}
	override := ValueMap{
		"a": {VariableID: "a", Value: "2", DisplayValue: "2"},
		"b": {VariableID: "b", Value: float64(3), DisplayValue: "3"},
	}

	merged := base.Merge(override)
	assert.Equal(t, "2", merged["a"].Value)
	assert.Equal(t, "1", base["a"].Value)

	raw := merged.Raw()
	assert.Equal(t, "2", raw["a"])
	assert.Equal(t, float64(3), raw["b"])
}
