package builder

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/pkg/models"
	"github.com/pkg/errors"
)

// TimestampLayout is the record timestamp format: local time, microseconds,
// no zone. Lexical order matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// ValidationError lists the required fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Builder assembles assessment records
type Builder struct {
	catalog  *catalog.Catalog
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

// Option configures a Builder
type Option func(*Builder)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithIDGenerator overrides the submission id source
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) { b.newID = newID }
}

// New creates a Builder that snapshots career paths from cat
func New(cat *catalog.Catalog, opts ...Option) *Builder {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	b := &Builder{
		catalog:  cat,
		validate: v,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build checks the required fields and assembles a record. It performs no I/O.
func (b *Builder) Build(r models.Responses) (*models.Record, error) {
	if err := b.checkRequired(r); err != nil {
		return nil, err
	}

	useCase := models.UseCase{}
	if p, ok := b.catalog.CareerPath(r.SelectedPath); ok {
		useCase.Selected = r.SelectedPath
		useCase.Details = &p
	}

	return &models.Record{
		ID:        b.newID(),
		Timestamp: b.now().Format(TimestampLayout),
		PersonalInfo: models.PersonalInfo{
			Name:                  r.Name,
			Email:                 r.Email,
			LinkedIn:              r.LinkedIn,
			Location:              r.Location,
			EngineeringDiscipline: r.EngineeringDiscipline,
			YearsExperience:       r.YearsExperience,
			PreviousTitle:         r.PreviousTitle,
			CompanyIndustry:       r.CompanyIndustry,
			LayoffDate:            r.LayoffDate,
			FinancialRunway:       r.FinancialRunway,
		},
		Situation: models.Situation{
			EmploymentStatus:      r.EmploymentStatus,
			JobTimeline:           r.JobTimeline,
			UrgencyLevel:          r.UrgencyLevel,
			GeographicFlexibility: r.GeographicFlexibility,
			IndustryPivot:         r.IndustryPivot,
		},
		UseCase: useCase,
		TechnicalBackground: models.TechnicalBackground{
			ProgrammingExp:       r.ProgrammingExp,
			ProgrammingLanguages: nonNil(r.ProgrammingLanguages),
			PythonLevel:          r.PythonLevel,
			DataAnalysisExp:      r.DataAnalysisExp,
			MathComfort:          r.MathComfort,
			LearningPreference:   r.LearningPreference,
		},
		AIKnowledge: models.AIKnowledge{
			AIUnderstanding: r.AIUnderstanding,
			AIToolsUsed:     nonNil(r.AIToolsUsed),
			AIInterests:     nonNil(r.AIInterests),
			BiggestConcern:  r.BiggestConcern,
		},
		LearningPreferences: models.LearningPrefs{
			StudyTime:          r.StudyTime,
			LearningFormats:    nonNil(r.LearningFormats),
			TimelinePreference: r.TimelinePreference,
			AudioContext:       nonNil(r.AudioContext),
			VideoPreference:    r.VideoPreference,
			HandsOnStyle:       r.HandsOnStyle,
		},
		CareerGoals: models.CareerGoals{
			PivotMotivation:    r.PivotMotivation,
			TargetRoles:        nonNil(r.TargetRoles),
			IncomeExpectations: r.IncomeExpectations,
			IndustryTarget:     r.IndustryTarget,
			RolePreference:     r.RolePreference,
		},
		Resources: models.Resources{
			LearningBudget:  r.LearningBudget,
			EquipmentStatus: r.EquipmentStatus,
			HomeEnvironment: r.HomeEnvironment,
			FamilySupport:   r.FamilySupport,
		},
		Py4AIInterest: models.Py4AIInterest{
			PythonAIInterest:    r.PythonAIInterest,
			Py4AICourseInterest: r.Py4AICourseInterest,
		},
		OpenResponses: models.OpenResponses{
			BiggestChallenge: r.BiggestChallenge,
			MostExciting:     r.MostExciting,
			IdealOutcome:     r.IdealOutcome,
		},
	}, nil
}

func (b *Builder) checkRequired(r models.Responses) error {
	err := b.validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate responses")
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	return &ValidationError{Fields: missing}
}

// nonNil keeps empty multi-choice answers serializing as [] rather than null.
func nonNil[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
