package models

// Each choice field has its own string type and a single declaration of its
// legal values. The order of every option slice is the display order.

type Discipline string

const (
	DisciplineMechanical Discipline = "Mechanical"
	DisciplineElectrical Discipline = "Electrical"
	DisciplineCivil      Discipline = "Civil"
	DisciplineAerospace  Discipline = "Aerospace"
	DisciplineChemical   Discipline = "Chemical"
	DisciplineIndustrial Discipline = "Industrial"
	DisciplineSoftware   Discipline = "Software"
	DisciplineOther      Discipline = "Other"
)

var Disciplines = []Discipline{
	DisciplineMechanical, DisciplineElectrical, DisciplineCivil, DisciplineAerospace,
	DisciplineChemical, DisciplineIndustrial, DisciplineSoftware, DisciplineOther,
}

type ExperienceBracket string

var ExperienceBrackets = []ExperienceBracket{"<2 years", "2-5 years", "5-10 years", "10-15 years", "15+ years"}

type LayoffTimeline string

var LayoffTimelines = []LayoffTimeline{"Currently employed", "Within last month", "1-3 months ago", "3-6 months ago", "6+ months ago"}

type FinancialRunway string

var FinancialRunways = []FinancialRunway{"<3 months", "3-6 months", "6-12 months", "12+ months", "Prefer not to say"}

type EmploymentStatus string

var EmploymentStatuses = []EmploymentStatus{"Actively job hunting", "Taking a break", "Exploring options", "Starting job search", "Still employed"}

type JobTimeline string

var JobTimelines = []JobTimeline{"Need job ASAP", "Within 3 months", "Within 6 months", "Taking time to retrain", "Exploring entrepreneurship"}

type Urgency string

const (
	UrgencyExploring Urgency = "Just exploring"
	UrgencySerious   Urgency = "Serious consideration"
	UrgencyCommitted Urgency = "Committed to pivot"
	UrgencyDesperate Urgency = "Desperate for any opportunity"
)

var Urgencies = []Urgency{UrgencyExploring, UrgencySerious, UrgencyCommitted, UrgencyDesperate}

type GeoFlexibility string

var GeoFlexibilities = []GeoFlexibility{"Must stay local", "Willing to relocate", "Open to remote", "Considering different regions"}

type IndustryPivot string

var IndustryPivots = []IndustryPivot{"Stay in same industry", "Adjacent industry", "Completely new industry", "Undecided"}

type ProgrammingExperience string

var ProgrammingExperiences = []ProgrammingExperience{"None", "Basic scripting", "Some programming", "Moderate coding", "Advanced programmer"}

type Language string

var Languages = []Language{"Python", "MATLAB", "C/C++", "Java", "JavaScript", "R", "SQL", "VBA", "None"}

// PythonLevel is an ordered five-point scale.
type PythonLevel string

var PythonLevels = []PythonLevel{"Never used", "Basic scripts", "Comfortable", "Intermediate", "Advanced"}

type DataAnalysisExperience string

var DataAnalysisExperiences = []DataAnalysisExperience{"None", "Excel only", "Some statistical tools", "Moderate experience", "Advanced analytics"}

// MathComfort is an ordered five-point scale.
type MathComfort string

var MathComforts = []MathComfort{"Rusty/Weak", "Basic engineering math", "Comfortable", "Strong", "Advanced"}

type LearningPreference string

var LearningPreferences = []LearningPreference{"Hands-on projects", "Structured courses", "Documentation reading", "Video tutorials", "Peer learning"}

// AIUnderstanding is an ordered five-point scale.
type AIUnderstanding string

const (
	AIUnderstandingBeginner  AIUnderstanding = "Complete beginner"
	AIUnderstandingBuzzwords AIUnderstanding = "Heard buzzwords"
)

var AIUnderstandings = []AIUnderstanding{AIUnderstandingBeginner, AIUnderstandingBuzzwords, "Basic concepts", "Some understanding", "Good foundation"}

type AITool string

var AITools = []AITool{"None", "ChatGPT", "GitHub Copilot", "Google Bard/Gemini", "Claude", "Industry-specific AI tools"}

type AIInterest string

var AIInterests = []AIInterest{
	"Predictive maintenance", "Automation/robotics", "Computer vision", "NLP", "Data analytics",
	"Process optimization", "Quality control", "Design optimization",
}

type Concern string

const (
	ConcernDisplacement Concern = "Job displacement fears"
	ConcernTooComplex   Concern = "Too complex to learn"
	ConcernWhereToStart Concern = "Not sure where to start"
	ConcernImposter     Concern = "Imposter syndrome"
	ConcernKeepingUp    Concern = "Keeping up with pace"
)

var Concerns = []Concern{ConcernDisplacement, ConcernTooComplex, ConcernWhereToStart, ConcernImposter, ConcernKeepingUp}

type StudyTime string

var StudyTimes = []StudyTime{"<5 hours", "5-10 hours", "10-20 hours", "20-30 hours", "Full-time learning"}

type LearningFormat string

const (
	FormatAudio LearningFormat = "Audio (podcasts/audiobooks)"
	FormatVideo LearningFormat = "Video tutorials"
	FormatText  LearningFormat = "Text/articles"
)

var LearningFormats = []LearningFormat{FormatAudio, FormatVideo, FormatText, "Interactive coding", "Live workshops", "Self-paced online"}

type AudioContext string

var AudioContexts = []AudioContext{"Commuting/car", "Walking/exercise", "Doing chores", "Focused listening", "Background learning"}

type VideoPreference string

const (
	VideoShort  VideoPreference = "Short clips (<10min)"
	VideoMedium VideoPreference = "Medium sessions (10-30min)"
	VideoLong   VideoPreference = "Long-form (30min+)"
)

var VideoPreferences = []VideoPreference{VideoShort, VideoMedium, VideoLong, "Live streams", "Recorded lectures"}

type HandsOnStyle string

var HandsOnStyles = []HandsOnStyle{"Theory first", "Immediate practice", "Project-based", "Experiment-driven", "Guided tutorials"}

type Motivation string

var Motivations = []Motivation{"Financial necessity", "Career growth", "Intellectual curiosity", "Future-proofing", "Industry disruption"}

type TargetRole string

var TargetRoles = []TargetRole{
	"AI consultant", "Data analyst/scientist", "AI project manager", "Technical sales (AI products)",
	"AI trainer/educator", "AI product manager", "AI implementation specialist", "Entrepreneur",
}

type IncomeExpectation string

var IncomeExpectations = []IncomeExpectation{"Significant decrease acceptable", "Moderate decrease ok", "Maintain similar level", "Increase expected"}

type IndustryTarget string

var IndustryTargets = []IndustryTarget{
	"Stay in current industry", "Tech companies", "Consulting firms", "Startups",
	"Government/defense", "Healthcare", "Finance", "Manufacturing", "Undecided",
}

type RolePreference string

var RolePreferences = []RolePreference{"Individual contributor", "Team lead", "Manager", "Consultant", "Entrepreneur"}

type Budget string

var Budgets = []Budget{"$0 - free only", "$100-500", "$500-2000", "$2000-5000", "$5000+", "Company/unemployment funding"}

type EquipmentStatus string

var EquipmentStatuses = []EquipmentStatus{"Need new computer", "Basic setup ok", "Good technical setup", "Advanced setup"}

type HomeEnvironment string

var HomeEnvironments = []HomeEnvironment{"Poor/distracting", "Adequate", "Good dedicated space", "Excellent setup"}

type FamilySupport string

var FamilySupports = []FamilySupport{"Unsupportive", "Neutral", "Supportive", "Very supportive"}

// PythonAIInterest is an ordered four-point scale.
type PythonAIInterest string

const (
	PythonAIDefinitely PythonAIInterest = "Definitely want to learn"
	PythonAIPriority   PythonAIInterest = "Priority skill"
)

var PythonAIInterests = []PythonAIInterest{"Not interested", "Curious", PythonAIDefinitely, PythonAIPriority}

type CourseInterest string

var CourseInterests = []CourseInterest{"Not sure what this is", "Sounds interesting", "Would definitely take", "Perfect for my needs"}

// Strings converts an option slice to plain strings.
func Strings[T ~string](opts []T) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = string(o)
	}
	return out
}

// Contains reports whether v is one of opts.
func Contains[T ~string](opts []T, v T) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
