package collector

import (
	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/pkg/models"
)

// Kind is the input widget a question is answered with
type Kind int

const (
	KindText Kind = iota
	KindLongText
	KindChoice
	KindMulti
	KindScale
)

// Question describes one form field
type Question struct {
	Key         string
	Label       string
	Section     string
	Kind        Kind
	Options     []string
	Default     string
	Required    bool
	Placeholder string
}

// IsChoice reports whether the answer must come from Options
func (q Question) IsChoice() bool {
	return q.Kind == KindChoice || q.Kind == KindScale || q.Kind == KindMulti
}

// Section is a titled group of questions in display order
type Section struct {
	Title     string
	Questions []Question
}

const (
	SectionPath      = "Which Career Path Resonates Most?"
	SectionPersonal  = "Personal & Professional Background"
	SectionSituation = "Current Situation & Goals"
	SectionTechnical = "Technical Background"
	SectionAI        = "AI Knowledge & Experience"
	SectionLearning  = "Learning Preferences & Capacity"
	SectionGoals     = "Career Pivot Goals"
	SectionResources = "Investment & Resources"
	SectionPy4AI     = "Python for AI (Py4AI) Interest"
	SectionOpen      = "Your Thoughts"
)

func text(section, key, label, placeholder string, required bool) Question {
	return Question{Key: key, Label: label, Section: section, Kind: KindText, Placeholder: placeholder, Required: required}
}

func longText(key, label, placeholder string) Question {
	return Question{Key: key, Label: label, Section: SectionOpen, Kind: KindLongText, Placeholder: placeholder}
}

func choice[T ~string](section, key, label string, opts []T) Question {
	o := models.Strings(opts)
	return Question{Key: key, Label: label, Section: section, Kind: KindChoice, Options: o, Default: o[0]}
}

func required[T ~string](section, key, label string, opts []T) Question {
	return Question{Key: key, Label: label, Section: section, Kind: KindChoice, Options: models.Strings(opts), Required: true}
}

func scale[T ~string](section, key, label string, opts []T, def T) Question {
	return Question{Key: key, Label: label, Section: section, Kind: KindScale, Options: models.Strings(opts), Default: string(def)}
}

func multi[T ~string](section, key, label string, opts []T) Question {
	return Question{Key: key, Label: label, Section: section, Kind: KindMulti, Options: models.Strings(opts)}
}

func buildQuestions(cat *catalog.Catalog) []Question {
	timelines := cat.TimelinePlanNames()

	return []Question{
		{Key: "selected_path", Label: "Choose the path that best describes your goals", Section: SectionPath, Kind: KindChoice, Options: cat.CareerPathNames()},

		text(SectionPersonal, "name", "Full Name", "Enter your full name", true),
		text(SectionPersonal, "email", "Email", "engineer@example.com", true),
		text(SectionPersonal, "linkedin", "LinkedIn Profile", "linkedin.com/in/yourprofile", false),
		text(SectionPersonal, "location", "Current Location", "City, State/Country", false),
		required(SectionPersonal, "engineering_discipline", "Engineering Discipline", models.Disciplines),
		required(SectionPersonal, "years_experience", "Years of Engineering Experience", models.ExperienceBrackets),
		text(SectionPersonal, "previous_title", "Previous Job Title", "e.g., Senior Mechanical Engineer", true),
		text(SectionPersonal, "company_industry", "Company/Industry", "e.g., Boeing/Aerospace", false),
		choice(SectionPersonal, "layoff_date", "Layoff Timeline", models.LayoffTimelines),
		choice(SectionPersonal, "financial_runway", "Financial Runway", models.FinancialRunways),

		choice(SectionSituation, "employment_status", "Current Status", models.EmploymentStatuses),
		choice(SectionSituation, "job_timeline", "Job Search Timeline", models.JobTimelines),
		choice(SectionSituation, "urgency_level", "AI Career Urgency", models.Urgencies),
		choice(SectionSituation, "geographic_flexibility", "Geographic Flexibility", models.GeoFlexibilities),
		choice(SectionSituation, "industry_pivot", "Industry Change Willingness", models.IndustryPivots),

		choice(SectionTechnical, "programming_exp", "Programming Experience", models.ProgrammingExperiences),
		multi(SectionTechnical, "programming_languages", "Programming Languages Known", models.Languages),
		scale(SectionTechnical, "python_level", "Python Experience Level", models.PythonLevels, "Never used"),
		choice(SectionTechnical, "data_analysis_exp", "Data Analysis Experience", models.DataAnalysisExperiences),
		scale(SectionTechnical, "math_comfort", "Math/Statistics Comfort", models.MathComforts, "Comfortable"),
		choice(SectionTechnical, "learning_preference", "Technical Learning Preference", models.LearningPreferences),

		scale(SectionAI, "ai_understanding", "Current AI Understanding", models.AIUnderstandings, models.AIUnderstandingBeginner),
		multi(SectionAI, "ai_tools_used", "AI Tools Used", models.AITools),
		multi(SectionAI, "ai_interests", "AI Application Areas of Interest", models.AIInterests),
		choice(SectionAI, "biggest_concern", "Biggest AI Concern", models.Concerns),

		choice(SectionLearning, "study_time", "Available Study Time per Week", models.StudyTimes),
		multi(SectionLearning, "learning_formats", "Preferred Learning Formats", models.LearningFormats),
		{Key: "timeline_preference", Label: "Preferred Timeline", Section: SectionLearning, Kind: KindChoice, Options: timelines, Default: timelines[0]},
		multi(SectionLearning, "audio_context", "Audio Learning Context", models.AudioContexts),
		choice(SectionLearning, "video_preference", "Video Learning Preference", models.VideoPreferences),
		choice(SectionLearning, "hands_on_style", "Hands-on Learning Style", models.HandsOnStyles),

		choice(SectionGoals, "pivot_motivation", "Primary Motivation", models.Motivations),
		multi(SectionGoals, "target_roles", "Target AI Role Types", models.TargetRoles),
		choice(SectionGoals, "income_expectations", "Income vs Previous Role", models.IncomeExpectations),
		choice(SectionGoals, "industry_target", "Industry Target", models.IndustryTargets),
		choice(SectionGoals, "role_preference", "Role Preference", models.RolePreferences),

		choice(SectionResources, "learning_budget", "Learning Investment Budget", models.Budgets),
		choice(SectionResources, "equipment_status", "Technical Setup", models.EquipmentStatuses),
		choice(SectionResources, "home_environment", "Home Learning Environment", models.HomeEnvironments),
		choice(SectionResources, "family_support", "Family Support Level", models.FamilySupports),

		scale(SectionPy4AI, "python_ai_interest", "Interest in 'Python for AI' Learning", models.PythonAIInterests, "Curious"),
		choice(SectionPy4AI, "py4ai_course_interest", "Dr. C's Py4AI Course Interest", models.CourseInterests),

		longText("biggest_challenge", "What's your biggest challenge in making this career pivot?",
			"What's holding you back or worrying you most about transitioning to AI?"),
		longText("most_exciting", "What's the most exciting AI opportunity you see in your field?",
			"Where do you think AI could make the biggest impact in your engineering domain?"),
		longText("ideal_outcome", "Describe your ideal career situation 12 months from now:",
			"What would success look like for you?"),
	}
}
