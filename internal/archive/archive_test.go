package archive

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khrees2412/careerpivot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(name, path string) *models.Record {
	rec := &models.Record{
		ID:        "id-" + name,
		Timestamp: "2026-01-02T03:04:05.000000",
		PersonalInfo: models.PersonalInfo{
			Name:                  name,
			Email:                 strings.ToLower(name) + "@example.com",
			EngineeringDiscipline: models.DisciplineCivil,
			YearsExperience:       "2-5 years",
			PreviousTitle:         "Site Engineer",
		},
		UseCase: models.UseCase{Selected: path},
		TechnicalBackground: models.TechnicalBackground{
			ProgrammingLanguages: []models.Language{"Python", "SQL"},
		},
	}
	if path != "" {
		rec.UseCase.Details = &models.CareerPath{Goal: "goal for " + path}
	}
	return rec
}

func tempArchive(t *testing.T) *Archive {
	return New(filepath.Join(t.TempDir(), "engineer_ai_assessments.json"))
}

func TestLoadMissingFile(t *testing.T) {
	entries, err := tempArchive(t).Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadEmptyFile(t *testing.T) {
	a := tempArchive(t)
	require.NoError(t, os.WriteFile(a.Path(), []byte("  \n"), 0644))

	entries, err := a.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendIsOrderPreserving(t *testing.T) {
	a := tempArchive(t)

	for _, name := range []string{"Ada", "Grace", "Edsger"} {
		require.NoError(t, a.Append(testRecord(name, "")))
	}

	before, err := a.Load()
	require.NoError(t, err)
	require.Len(t, before, 3)

	require.NoError(t, a.Append(testRecord("Barbara", "Career Survivors")))

	after, err := a.Load()
	require.NoError(t, err)
	require.Len(t, after, 4)
	for i := range before {
		assert.JSONEq(t, string(before[i]), string(after[i]))
	}

	var last models.Record
	require.NoError(t, json.Unmarshal(after[3], &last))
	assert.Equal(t, "Barbara", last.PersonalInfo.Name)
}

func TestAppendCoercesLegacyObject(t *testing.T) {
	a := tempArchive(t)
	legacy := `{"timestamp": "2024-05-01T10:00:00", "personal_info": {"name": "Legacy"}, "extra_field": 42}`
	require.NoError(t, os.WriteFile(a.Path(), []byte(legacy), 0644))

	require.NoError(t, a.Append(testRecord("New", "")))

	var entries []map[string]any
	data, err := os.ReadFile(a.Path())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &entries))

	require.Len(t, entries, 2)
	assert.JSONEq(t, legacy, mustJSON(t, entries[0]))
	assert.Equal(t, "New", entries[1]["personal_info"].(map[string]any)["name"])
}

func TestAppendRoundTripIsLossless(t *testing.T) {
	a := tempArchive(t)
	rec := testRecord("Zoë", "Technical Translators")
	rec.OpenResponses = models.OpenResponses{
		BiggestChallenge: "Zeit & Geld <genug> finden, 学习 AI",
		MostExciting:     "Predictive maintenance → fewer outages",
		IdealOutcome:     "Ingeniería + IA",
	}
	rec.AIKnowledge.AIToolsUsed = []models.AITool{"ChatGPT", "Claude"}

	require.NoError(t, a.Append(rec))

	data, err := os.ReadFile(a.Path())
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Zoë")
	assert.Contains(t, text, "学习 AI")
	assert.Contains(t, text, "<genug>")
	assert.Contains(t, text, "→")
	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"id\""), "expected two-space indentation, got:\n%s", text)

	entries, err := a.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var got models.Record
	require.NoError(t, json.Unmarshal(entries[0], &got))
	assert.Equal(t, *rec, got)
}

func TestAppendLeavesCorruptArchiveUntouched(t *testing.T) {
	a := tempArchive(t)
	corrupt := []byte(`[{"timestamp": "2024-05-01"`)
	require.NoError(t, os.WriteFile(a.Path(), corrupt, 0644))

	err := a.Append(testRecord("Ada", ""))

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, "load", perr.Op)

	data, readErr := os.ReadFile(a.Path())
	require.NoError(t, readErr)
	assert.Equal(t, corrupt, data)
}

func TestAppendCreatesParentDirectories(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), "nested", "dir", "archive.json"))

	require.NoError(t, a.Append(testRecord("Ada", "")))

	entries, err := a.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAppendWriteFailure(t *testing.T) {
	dir := t.TempDir()
	a := New(dir)

	err := a.Append(testRecord("Ada", ""))

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr), "got %v", err)
}

func TestStats(t *testing.T) {
	a := tempArchive(t)
	for _, p := range []struct{ name, path string }{
		{"a", "Career Survivors"},
		{"b", "Data-Driven Analysts"},
		{"c", "Career Survivors"},
		{"d", ""},
		{"e", "Strategic Pivoteurs"},
		{"f", "Data-Driven Analysts"},
		{"g", "Entrepreneur Builders"},
	} {
		require.NoError(t, a.Append(testRecord(p.name, p.path)))
	}

	stats, err := a.Stats()
	require.NoError(t, err)

	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, []PathCount{
		{Path: "Career Survivors", Count: 2},
		{Path: "Data-Driven Analysts", Count: 2},
		{Path: "Entrepreneur Builders", Count: 1},
	}, stats.PopularPaths)
}

func TestStatsToleratesOddEntries(t *testing.T) {
	a := tempArchive(t)
	require.NoError(t, os.WriteFile(a.Path(), []byte(`[1, "two", {"use_case": {"selected": "Career Survivors"}}]`), 0644))

	stats, err := a.Stats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, []PathCount{{Path: "Career Survivors", Count: 1}}, stats.PopularPaths)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
