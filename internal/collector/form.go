package collector

import (
	"net/url"
)

// Form is the raw answer set as submitted by a browser, a JSON client or the
// terminal wizard. Nothing in it has been checked yet.
type Form struct {
	SelectedPath string `form:"selected_path" json:"selected_path"`

	Name                  string `form:"name" json:"name"`
	Email                 string `form:"email" json:"email"`
	LinkedIn              string `form:"linkedin" json:"linkedin"`
	Location              string `form:"location" json:"location"`
	EngineeringDiscipline string `form:"engineering_discipline" json:"engineering_discipline"`
	YearsExperience       string `form:"years_experience" json:"years_experience"`
	PreviousTitle         string `form:"previous_title" json:"previous_title"`
	CompanyIndustry       string `form:"company_industry" json:"company_industry"`
	LayoffDate            string `form:"layoff_date" json:"layoff_date"`
	FinancialRunway       string `form:"financial_runway" json:"financial_runway"`

	EmploymentStatus      string `form:"employment_status" json:"employment_status"`
	JobTimeline           string `form:"job_timeline" json:"job_timeline"`
	UrgencyLevel          string `form:"urgency_level" json:"urgency_level"`
	GeographicFlexibility string `form:"geographic_flexibility" json:"geographic_flexibility"`
	IndustryPivot         string `form:"industry_pivot" json:"industry_pivot"`

	ProgrammingExp       string   `form:"programming_exp" json:"programming_exp"`
	ProgrammingLanguages []string `form:"programming_languages" json:"programming_languages"`
	PythonLevel          string   `form:"python_level" json:"python_level"`
	DataAnalysisExp      string   `form:"data_analysis_exp" json:"data_analysis_exp"`
	MathComfort          string   `form:"math_comfort" json:"math_comfort"`
	LearningPreference   string   `form:"learning_preference" json:"learning_preference"`

	AIUnderstanding string   `form:"ai_understanding" json:"ai_understanding"`
	AIToolsUsed     []string `form:"ai_tools_used" json:"ai_tools_used"`
	AIInterests     []string `form:"ai_interests" json:"ai_interests"`
	BiggestConcern  string   `form:"biggest_concern" json:"biggest_concern"`

	StudyTime          string   `form:"study_time" json:"study_time"`
	LearningFormats    []string `form:"learning_formats" json:"learning_formats"`
	TimelinePreference string   `form:"timeline_preference" json:"timeline_preference"`
	AudioContext       []string `form:"audio_context" json:"audio_context"`
	VideoPreference    string   `form:"video_preference" json:"video_preference"`
	HandsOnStyle       string   `form:"hands_on_style" json:"hands_on_style"`

	PivotMotivation    string   `form:"pivot_motivation" json:"pivot_motivation"`
	TargetRoles        []string `form:"target_roles" json:"target_roles"`
	IncomeExpectations string   `form:"income_expectations" json:"income_expectations"`
	IndustryTarget     string   `form:"industry_target" json:"industry_target"`
	RolePreference     string   `form:"role_preference" json:"role_preference"`

	LearningBudget  string `form:"learning_budget" json:"learning_budget"`
	EquipmentStatus string `form:"equipment_status" json:"equipment_status"`
	HomeEnvironment string `form:"home_environment" json:"home_environment"`
	FamilySupport   string `form:"family_support" json:"family_support"`

	PythonAIInterest    string `form:"python_ai_interest" json:"python_ai_interest"`
	Py4AICourseInterest string `form:"py4ai_course_interest" json:"py4ai_course_interest"`

	BiggestChallenge string `form:"biggest_challenge" json:"biggest_challenge"`
	MostExciting     string `form:"most_exciting" json:"most_exciting"`
	IdealOutcome     string `form:"ideal_outcome" json:"ideal_outcome"`
}

// fields maps question keys to the form's storage. Single answers are
// *string, multi-choice answers are *[]string.
func (f *Form) fields() map[string]any {
	return map[string]any{
		"selected_path": &f.SelectedPath,

		"name":                   &f.Name,
		"email":                  &f.Email,
		"linkedin":               &f.LinkedIn,
		"location":               &f.Location,
		"engineering_discipline": &f.EngineeringDiscipline,
		"years_experience":       &f.YearsExperience,
		"previous_title":         &f.PreviousTitle,
		"company_industry":       &f.CompanyIndustry,
		"layoff_date":            &f.LayoffDate,
		"financial_runway":       &f.FinancialRunway,

		"employment_status":      &f.EmploymentStatus,
		"job_timeline":           &f.JobTimeline,
		"urgency_level":          &f.UrgencyLevel,
		"geographic_flexibility": &f.GeographicFlexibility,
		"industry_pivot":         &f.IndustryPivot,

		"programming_exp":       &f.ProgrammingExp,
		"programming_languages": &f.ProgrammingLanguages,
		"python_level":          &f.PythonLevel,
		"data_analysis_exp":     &f.DataAnalysisExp,
		"math_comfort":          &f.MathComfort,
		"learning_preference":   &f.LearningPreference,

		"ai_understanding": &f.AIUnderstanding,
		"ai_tools_used":    &f.AIToolsUsed,
		"ai_interests":     &f.AIInterests,
		"biggest_concern":  &f.BiggestConcern,

		"study_time":          &f.StudyTime,
		"learning_formats":    &f.LearningFormats,
		"timeline_preference": &f.TimelinePreference,
		"audio_context":       &f.AudioContext,
		"video_preference":    &f.VideoPreference,
		"hands_on_style":      &f.HandsOnStyle,

		"pivot_motivation":    &f.PivotMotivation,
		"target_roles":        &f.TargetRoles,
		"income_expectations": &f.IncomeExpectations,
		"industry_target":     &f.IndustryTarget,
		"role_preference":     &f.RolePreference,

		"learning_budget":  &f.LearningBudget,
		"equipment_status": &f.EquipmentStatus,
		"home_environment": &f.HomeEnvironment,
		"family_support":   &f.FamilySupport,

		"python_ai_interest":    &f.PythonAIInterest,
		"py4ai_course_interest": &f.Py4AICourseInterest,

		"biggest_challenge": &f.BiggestChallenge,
		"most_exciting":     &f.MostExciting,
		"ideal_outcome":     &f.IdealOutcome,
	}
}

// Set stores values under a question key. Unknown keys are ignored.
// Single-answer fields take the first value.
func (f *Form) Set(key string, values ...string) {
	switch p := f.fields()[key].(type) {
	case *string:
		if len(values) > 0 {
			*p = values[0]
		} else {
			*p = ""
		}
	case *[]string:
		*p = append([]string(nil), values...)
	}
}

// FormFromValues fills a Form from url-encoded values.
func FormFromValues(v url.Values) Form {
	var f Form
	for key := range f.fields() {
		if vals, ok := v[key]; ok {
			f.Set(key, vals...)
		}
	}
	return f
}

// Values is the inverse of FormFromValues. Blank answers are left out.
func (f Form) Values() url.Values {
	v := url.Values{}
	for key, p := range f.fields() {
		switch p := p.(type) {
		case *string:
			if *p != "" {
				v.Set(key, *p)
			}
		case *[]string:
			for _, s := range *p {
				v.Add(key, s)
			}
		}
	}
	return v
}
