package builder

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.Local)

func newBuilder() *Builder {
	return New(catalog.Default(),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "sub-1" }),
	)
}

func validResponses() models.Responses {
	return models.Responses{
		Name:                  "Ada Lovelace",
		Email:                 "ada@example.com",
		EngineeringDiscipline: models.DisciplineMechanical,
		YearsExperience:       "10-15 years",
		PreviousTitle:         "Senior Mechanical Engineer",
		SelectedPath:          "Technical Translators",
		UrgencyLevel:          models.UrgencyCommitted,
		ProgrammingLanguages:  []models.Language{"Python", "MATLAB"},
		TimelinePreference:    "6-Month Strategic",
		BiggestChallenge:      "Zeit finden für Übungen",
	}
}

func TestBuildRejectsMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Responses)
		missing []string
	}{
		{
			name:    "name",
			mutate:  func(r *models.Responses) { r.Name = "" },
			missing: []string{"name"},
		},
		{
			name:    "email",
			mutate:  func(r *models.Responses) { r.Email = "" },
			missing: []string{"email"},
		},
		{
			name:    "discipline",
			mutate:  func(r *models.Responses) { r.EngineeringDiscipline = "" },
			missing: []string{"engineering_discipline"},
		},
		{
			name:    "experience",
			mutate:  func(r *models.Responses) { r.YearsExperience = "" },
			missing: []string{"years_experience"},
		},
		{
			name:    "title",
			mutate:  func(r *models.Responses) { r.PreviousTitle = "" },
			missing: []string{"previous_title"},
		},
		{
			name:    "everything",
			mutate:  func(r *models.Responses) { *r = models.Responses{} },
			missing: []string{"name", "email", "engineering_discipline", "years_experience", "previous_title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResponses()
			tt.mutate(&r)

			rec, err := newBuilder().Build(r)
			assert.Nil(t, rec)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.missing, verr.Fields)
		})
	}
}

func TestBuildOptionalFieldsMayBeEmpty(t *testing.T) {
	r := validResponses()
	r.LinkedIn = ""
	r.Location = ""
	r.CompanyIndustry = ""

	_, err := newBuilder().Build(r)
	assert.NoError(t, err)
}

func TestBuildCopiesValues(t *testing.T) {
	rec, err := newBuilder().Build(validResponses())
	require.NoError(t, err)

	assert.Equal(t, "sub-1", rec.ID)
	assert.Equal(t, "2026-03-14T09:26:53.589793", rec.Timestamp)
	assert.Equal(t, "Ada Lovelace", rec.PersonalInfo.Name)
	assert.Equal(t, models.UrgencyCommitted, rec.Situation.UrgencyLevel)
	assert.Equal(t, []models.Language{"Python", "MATLAB"}, rec.TechnicalBackground.ProgrammingLanguages)
	assert.Equal(t, "6-Month Strategic", rec.LearningPreferences.TimelinePreference)
	assert.Equal(t, "Zeit finden für Übungen", rec.OpenResponses.BiggestChallenge)
}

func TestBuildSnapshotsCareerPath(t *testing.T) {
	cat := catalog.Default()
	rec, err := New(cat).Build(validResponses())
	require.NoError(t, err)

	want, _ := cat.CareerPath("Technical Translators")
	require.NotNil(t, rec.UseCase.Details)
	assert.Equal(t, "Technical Translators", rec.UseCase.Selected)
	assert.Equal(t, want, *rec.UseCase.Details)

	rec.UseCase.Details.Goal = "changed"
	again, _ := cat.CareerPath("Technical Translators")
	assert.Equal(t, want.Goal, again.Goal)
}

func TestBuildUseCaseDetailsOnlyForKnownPaths(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		wantSel  string
	}{
		{name: "no selection", selected: "", wantSel: ""},
		{name: "unknown path treated as unselected", selected: "Astronaut", wantSel: ""},
		{name: "known path", selected: "Career Survivors", wantSel: "Career Survivors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResponses()
			r.SelectedPath = tt.selected

			rec, err := newBuilder().Build(r)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSel, rec.UseCase.Selected)
			assert.Equal(t, tt.wantSel != "", rec.UseCase.Details != nil)
		})
	}
}

func TestBuildEmptyMultiChoiceSerializesAsArray(t *testing.T) {
	r := validResponses()
	r.ProgrammingLanguages = nil

	rec, err := newBuilder().Build(r)
	require.NoError(t, err)

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"programming_languages":[]`)
	assert.Contains(t, s, `"ai_tools_used":[]`)
	assert.Contains(t, s, `"target_roles":[]`)
	assert.Contains(t, s, `"details":{`)
}

func TestBuildNullDetailsWhenUnselected(t *testing.T) {
	r := validResponses()
	r.SelectedPath = ""

	rec, err := newBuilder().Build(r)
	require.NoError(t, err)

	data, err := json.Marshal(rec.UseCase)
	require.NoError(t, err)
	assert.JSONEq(t, `{"selected":"","details":null}`, string(data))
}
