package models

import "encoding/json"

// CareerPath is a career-path catalog entry
type CareerPath struct {
	Description string `json:"description"`
	Goal        string `json:"goal"`
	Timeline    string `json:"timeline"`
	Focus       string `json:"focus"`
	Example     string `json:"example"`
}

// TimelinePlan is a timeline-plan catalog entry
type TimelinePlan struct {
	Subtitle  string   `json:"subtitle"`
	Focus     string   `json:"focus"`
	Structure []string `json:"structure"`
}

// Responses is the flat, typed set of answers produced by the collector
type Responses struct {
	Name                  string            `json:"name" validate:"required"`
	Email                 string            `json:"email" validate:"required"`
	LinkedIn              string            `json:"linkedin"`
	Location              string            `json:"location"`
	EngineeringDiscipline Discipline        `json:"engineering_discipline" validate:"required"`
	YearsExperience       ExperienceBracket `json:"years_experience" validate:"required"`
	PreviousTitle         string            `json:"previous_title" validate:"required"`
	CompanyIndustry       string            `json:"company_industry"`
	LayoffDate            LayoffTimeline    `json:"layoff_date"`
	FinancialRunway       FinancialRunway   `json:"financial_runway"`

	EmploymentStatus      EmploymentStatus `json:"employment_status"`
	JobTimeline           JobTimeline      `json:"job_timeline"`
	UrgencyLevel          Urgency          `json:"urgency_level"`
	GeographicFlexibility GeoFlexibility   `json:"geographic_flexibility"`
	IndustryPivot         IndustryPivot    `json:"industry_pivot"`

	SelectedPath string `json:"selected_path"`

	ProgrammingExp       ProgrammingExperience  `json:"programming_exp"`
	ProgrammingLanguages []Language             `json:"programming_languages"`
	PythonLevel          PythonLevel            `json:"python_level"`
	DataAnalysisExp      DataAnalysisExperience `json:"data_analysis_exp"`
	MathComfort          MathComfort            `json:"math_comfort"`
	LearningPreference   LearningPreference     `json:"learning_preference"`

	AIUnderstanding AIUnderstanding `json:"ai_understanding"`
	AIToolsUsed     []AITool        `json:"ai_tools_used"`
	AIInterests     []AIInterest    `json:"ai_interests"`
	BiggestConcern  Concern         `json:"biggest_concern"`

	StudyTime          StudyTime        `json:"study_time"`
	LearningFormats    []LearningFormat `json:"learning_formats"`
	TimelinePreference string           `json:"timeline_preference"`
	AudioContext       []AudioContext   `json:"audio_context"`
	VideoPreference    VideoPreference  `json:"video_preference"`
	HandsOnStyle       HandsOnStyle     `json:"hands_on_style"`

	PivotMotivation    Motivation        `json:"pivot_motivation"`
	TargetRoles        []TargetRole      `json:"target_roles"`
	IncomeExpectations IncomeExpectation `json:"income_expectations"`
	IndustryTarget     IndustryTarget    `json:"industry_target"`
	RolePreference     RolePreference    `json:"role_preference"`

	LearningBudget  Budget          `json:"learning_budget"`
	EquipmentStatus EquipmentStatus `json:"equipment_status"`
	HomeEnvironment HomeEnvironment `json:"home_environment"`
	FamilySupport   FamilySupport   `json:"family_support"`

	PythonAIInterest    PythonAIInterest `json:"python_ai_interest"`
	Py4AICourseInterest CourseInterest   `json:"py4ai_course_interest"`

	BiggestChallenge string `json:"biggest_challenge"`
	MostExciting     string `json:"most_exciting"`
	IdealOutcome     string `json:"ideal_outcome"`
}

// Record is one completed, submitted assessment
type Record struct {
	ID                  string              `json:"id,omitempty"`
	Timestamp           string              `json:"timestamp"`
	PersonalInfo        PersonalInfo        `json:"personal_info"`
	Situation           Situation           `json:"situation"`
	UseCase             UseCase             `json:"use_case"`
	TechnicalBackground TechnicalBackground `json:"technical_background"`
	AIKnowledge         AIKnowledge         `json:"ai_knowledge"`
	LearningPreferences LearningPrefs       `json:"learning_preferences"`
	CareerGoals         CareerGoals         `json:"career_goals"`
	Resources           Resources           `json:"resources"`
	Py4AIInterest       Py4AIInterest       `json:"py4ai_interest"`
	OpenResponses       OpenResponses       `json:"open_responses"`
}

type PersonalInfo struct {
	Name                  string            `json:"name"`
	Email                 string            `json:"email"`
	LinkedIn              string            `json:"linkedin"`
	Location              string            `json:"location"`
	EngineeringDiscipline Discipline        `json:"engineering_discipline"`
	YearsExperience       ExperienceBracket `json:"years_experience"`
	PreviousTitle         string            `json:"previous_title"`
	CompanyIndustry       string            `json:"company_industry"`
	LayoffDate            LayoffTimeline    `json:"layoff_date"`
	FinancialRunway       FinancialRunway   `json:"financial_runway"`
}

type Situation struct {
	EmploymentStatus      EmploymentStatus `json:"employment_status"`
	JobTimeline           JobTimeline      `json:"job_timeline"`
	UrgencyLevel          Urgency          `json:"urgency_level"`
	GeographicFlexibility GeoFlexibility   `json:"geographic_flexibility"`
	IndustryPivot         IndustryPivot    `json:"industry_pivot"`
}

// UseCase holds the chosen career path and a snapshot of its catalog entry.
// Details is nil iff Selected is empty.
type UseCase struct {
	Selected string      `json:"selected"`
	Details  *CareerPath `json:"details"`
}

type TechnicalBackground struct {
	ProgrammingExp       ProgrammingExperience  `json:"programming_exp"`
	ProgrammingLanguages []Language             `json:"programming_languages"`
	PythonLevel          PythonLevel            `json:"python_level"`
	DataAnalysisExp      DataAnalysisExperience `json:"data_analysis_exp"`
	MathComfort          MathComfort            `json:"math_comfort"`
	LearningPreference   LearningPreference     `json:"learning_preference"`
}

type AIKnowledge struct {
	AIUnderstanding AIUnderstanding `json:"ai_understanding"`
	AIToolsUsed     []AITool        `json:"ai_tools_used"`
	AIInterests     []AIInterest    `json:"ai_interests"`
	BiggestConcern  Concern         `json:"biggest_concern"`
}

type LearningPrefs struct {
	StudyTime          StudyTime        `json:"study_time"`
	LearningFormats    []LearningFormat `json:"learning_formats"`
	TimelinePreference string           `json:"timeline_preference"`
	AudioContext       []AudioContext   `json:"audio_context"`
	VideoPreference    VideoPreference  `json:"video_preference"`
	HandsOnStyle       HandsOnStyle     `json:"hands_on_style"`
}

type CareerGoals struct {
	PivotMotivation    Motivation        `json:"pivot_motivation"`
	TargetRoles        []TargetRole      `json:"target_roles"`
	IncomeExpectations IncomeExpectation `json:"income_expectations"`
	IndustryTarget     IndustryTarget    `json:"industry_target"`
	RolePreference     RolePreference    `json:"role_preference"`
}

type Resources struct {
	LearningBudget  Budget          `json:"learning_budget"`
	EquipmentStatus EquipmentStatus `json:"equipment_status"`
	HomeEnvironment HomeEnvironment `json:"home_environment"`
	FamilySupport   FamilySupport   `json:"family_support"`
}

type Py4AIInterest struct {
	PythonAIInterest    PythonAIInterest `json:"python_ai_interest"`
	Py4AICourseInterest CourseInterest   `json:"py4ai_course_interest"`
}

type OpenResponses struct {
	BiggestChallenge string `json:"biggest_challenge"`
	MostExciting     string `json:"most_exciting"`
	IdealOutcome     string `json:"ideal_outcome"`
}

// Outcome reports how a best-effort side effect went. Err is nil iff OK.
type Outcome struct {
	OK  bool
	Err error
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		OK    bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}{o.OK, o.Reason()})
}

// Succeeded is the outcome of a side effect that went through
func Succeeded() Outcome { return Outcome{OK: true} }

// Failed wraps err as a failed outcome
func Failed(err error) Outcome { return Outcome{Err: err} }

// Reason returns the failure message, or "" on success.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
