package collector

import (
	"errors"
	"net/url"
	"testing"

	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollector() *Collector {
	return New(catalog.Default())
}

func TestSectionsKeepDisplayOrder(t *testing.T) {
	sections := newCollector().Sections()

	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
	}

	assert.Equal(t, []string{
		SectionPath, SectionPersonal, SectionSituation, SectionTechnical, SectionAI,
		SectionLearning, SectionGoals, SectionResources, SectionPy4AI, SectionOpen,
	}, titles)
	assert.Equal(t, "name", sections[1].Questions[0].Key)
}

func TestEveryQuestionHasFormStorage(t *testing.T) {
	var f Form
	fields := f.fields()
	for _, q := range newCollector().Questions() {
		p, ok := fields[q.Key]
		require.Truef(t, ok, "no form field for %q", q.Key)
		if q.Kind == KindMulti {
			assert.IsType(t, &[]string{}, p, q.Key)
		} else {
			assert.IsType(t, new(string), p, q.Key)
		}
	}
	assert.Len(t, fields, len(newCollector().Questions()))
}

func TestCollectFillsDefaults(t *testing.T) {
	resp, err := newCollector().Collect(Form{
		Name:                  "  Ada  ",
		Email:                 "ada@example.com",
		EngineeringDiscipline: "Mechanical",
		YearsExperience:       "5-10 years",
		PreviousTitle:         "Senior Mechanical Engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", resp.Name)
	assert.Equal(t, models.DisciplineMechanical, resp.EngineeringDiscipline)
	assert.Equal(t, models.LayoffTimeline("Currently employed"), resp.LayoffDate)
	assert.Equal(t, models.UrgencyExploring, resp.UrgencyLevel)
	assert.Equal(t, models.PythonLevel("Never used"), resp.PythonLevel)
	assert.Equal(t, models.MathComfort("Comfortable"), resp.MathComfort)
	assert.Equal(t, models.AIUnderstandingBeginner, resp.AIUnderstanding)
	assert.Equal(t, models.PythonAIInterest("Curious"), resp.PythonAIInterest)
	assert.Equal(t, "3-Month Sprint", resp.TimelinePreference)
	assert.Empty(t, resp.SelectedPath)
	assert.NotNil(t, resp.ProgrammingLanguages)
	assert.Empty(t, resp.ProgrammingLanguages)
}

func TestCollectLeavesRequiredChoicesBlank(t *testing.T) {
	resp, err := newCollector().Collect(Form{Name: "Ada"})
	require.NoError(t, err)

	assert.Empty(t, resp.EngineeringDiscipline)
	assert.Empty(t, resp.YearsExperience)
}

func TestCollectRejectsOutOfSetValues(t *testing.T) {
	tests := []struct {
		name  string
		form  Form
		field string
	}{
		{
			name:  "single choice",
			form:  Form{UrgencyLevel: "Panicking"},
			field: "urgency_level",
		},
		{
			name:  "unknown career path",
			form:  Form{SelectedPath: "Astronaut"},
			field: "selected_path",
		},
		{
			name:  "unknown timeline",
			form:  Form{TimelinePreference: "1-Day Miracle"},
			field: "timeline_preference",
		},
		{
			name:  "multi choice",
			form:  Form{ProgrammingLanguages: []string{"Python", "COBOL"}},
			field: "programming_languages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newCollector().Collect(tt.form)
			var invalid *InvalidChoiceError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestCollectDedupesMultiChoice(t *testing.T) {
	resp, err := newCollector().Collect(Form{
		LearningFormats: []string{"Text/articles", " ", "Video tutorials", "Text/articles"},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.LearningFormat{models.FormatText, models.FormatVideo}, resp.LearningFormats)
}

func TestFormFromValues(t *testing.T) {
	v := url.Values{}
	v.Set("name", "Grace")
	v.Set("selected_path", "Career Survivors")
	v.Add("ai_tools_used", "ChatGPT")
	v.Add("ai_tools_used", "Claude")
	v.Set("not_a_field", "ignored")

	f := FormFromValues(v)

	assert.Equal(t, "Grace", f.Name)
	assert.Equal(t, "Career Survivors", f.SelectedPath)
	assert.Equal(t, []string{"ChatGPT", "Claude"}, f.AIToolsUsed)
}

func TestFormSetSingleTakesFirstValue(t *testing.T) {
	var f Form
	f.Set("email", "a@example.com", "b@example.com")
	assert.Equal(t, "a@example.com", f.Email)

	f.Set("email")
	assert.Empty(t, f.Email)
}

func TestFormValuesRoundTrip(t *testing.T) {
	f := Form{Name: "Ada", LearningFormats: []string{"Video tutorials", "Text/articles"}}

	v := f.Values()
	assert.Equal(t, "Ada", v.Get("name"))
	assert.Equal(t, []string{"Video tutorials", "Text/articles"}, v["learning_formats"])
	_, hasEmail := v["email"]
	assert.False(t, hasEmail)

	assert.Equal(t, f, FormFromValues(v))
}
