package collector

import (
	"fmt"
	"strings"

	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/pkg/models"
)

// InvalidChoiceError reports an answer outside a question's option set.
type InvalidChoiceError struct {
	Field string
	Value string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice for %s: %q", e.Field, e.Value)
}

// Collector turns raw forms into typed responses
type Collector struct {
	questions []Question
}

// New builds the question table against the given catalog
func New(cat *catalog.Catalog) *Collector {
	return &Collector{questions: buildQuestions(cat)}
}

// Questions returns the question table in display order
func (c *Collector) Questions() []Question {
	return append([]Question(nil), c.questions...)
}

// Sections groups the questions by section, keeping display order
func (c *Collector) Sections() []Section {
	var sections []Section
	for _, q := range c.questions {
		if n := len(sections); n == 0 || sections[n-1].Title != q.Section {
			sections = append(sections, Section{Title: q.Section})
		}
		last := &sections[len(sections)-1]
		last.Questions = append(last.Questions, q)
	}
	return sections
}

// Question looks up a question by key
func (c *Collector) Question(key string) (Question, bool) {
	for _, q := range c.questions {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

// Normalize trims answers, fills defaults for blank optional choices and
// checks every choice against its option set. Required fields are left as
// they are; rejecting blanks is the record builder's job.
func (c *Collector) Normalize(f Form) (Form, error) {
	fields := f.fields()
	for _, q := range c.questions {
		switch p := fields[q.Key].(type) {
		case *string:
			v := strings.TrimSpace(*p)
			if v == "" && !q.Required {
				v = q.Default
			}
			if v != "" && q.IsChoice() && !contains(q.Options, v) {
				return f, &InvalidChoiceError{Field: q.Key, Value: v}
			}
			*p = v
		case *[]string:
			vals, err := cleanMulti(q, *p)
			if err != nil {
				return f, err
			}
			*p = vals
		}
	}
	return f, nil
}

// Collect normalizes a form and converts it to typed responses.
func (c *Collector) Collect(f Form) (models.Responses, error) {
	f, err := c.Normalize(f)
	if err != nil {
		return models.Responses{}, err
	}

	return models.Responses{
		Name:                  f.Name,
		Email:                 f.Email,
		LinkedIn:              f.LinkedIn,
		Location:              f.Location,
		EngineeringDiscipline: models.Discipline(f.EngineeringDiscipline),
		YearsExperience:       models.ExperienceBracket(f.YearsExperience),
		PreviousTitle:         f.PreviousTitle,
		CompanyIndustry:       f.CompanyIndustry,
		LayoffDate:            models.LayoffTimeline(f.LayoffDate),
		FinancialRunway:       models.FinancialRunway(f.FinancialRunway),

		EmploymentStatus:      models.EmploymentStatus(f.EmploymentStatus),
		JobTimeline:           models.JobTimeline(f.JobTimeline),
		UrgencyLevel:          models.Urgency(f.UrgencyLevel),
		GeographicFlexibility: models.GeoFlexibility(f.GeographicFlexibility),
		IndustryPivot:         models.IndustryPivot(f.IndustryPivot),

		SelectedPath: f.SelectedPath,

		ProgrammingExp:       models.ProgrammingExperience(f.ProgrammingExp),
		ProgrammingLanguages: typed[models.Language](f.ProgrammingLanguages),
		PythonLevel:          models.PythonLevel(f.PythonLevel),
		DataAnalysisExp:      models.DataAnalysisExperience(f.DataAnalysisExp),
		MathComfort:          models.MathComfort(f.MathComfort),
		LearningPreference:   models.LearningPreference(f.LearningPreference),

		AIUnderstanding: models.AIUnderstanding(f.AIUnderstanding),
		AIToolsUsed:     typed[models.AITool](f.AIToolsUsed),
		AIInterests:     typed[models.AIInterest](f.AIInterests),
		BiggestConcern:  models.Concern(f.BiggestConcern),

		StudyTime:          models.StudyTime(f.StudyTime),
		LearningFormats:    typed[models.LearningFormat](f.LearningFormats),
		TimelinePreference: f.TimelinePreference,
		AudioContext:       typed[models.AudioContext](f.AudioContext),
		VideoPreference:    models.VideoPreference(f.VideoPreference),
		HandsOnStyle:       models.HandsOnStyle(f.HandsOnStyle),

		PivotMotivation:    models.Motivation(f.PivotMotivation),
		TargetRoles:        typed[models.TargetRole](f.TargetRoles),
		IncomeExpectations: models.IncomeExpectation(f.IncomeExpectations),
		IndustryTarget:     models.IndustryTarget(f.IndustryTarget),
		RolePreference:     models.RolePreference(f.RolePreference),

		LearningBudget:  models.Budget(f.LearningBudget),
		EquipmentStatus: models.EquipmentStatus(f.EquipmentStatus),
		HomeEnvironment: models.HomeEnvironment(f.HomeEnvironment),
		FamilySupport:   models.FamilySupport(f.FamilySupport),

		PythonAIInterest:    models.PythonAIInterest(f.PythonAIInterest),
		Py4AICourseInterest: models.CourseInterest(f.Py4AICourseInterest),

		BiggestChallenge: f.BiggestChallenge,
		MostExciting:     f.MostExciting,
		IdealOutcome:     f.IdealOutcome,
	}, nil
}

// cleanMulti trims, drops blanks and duplicates (first occurrence wins) and
// checks membership.
func cleanMulti(q Question, in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		if !contains(q.Options, v) {
			return nil, &InvalidChoiceError{Field: q.Key, Value: v}
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, nil
}

func typed[T ~string](in []string) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}

func contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
