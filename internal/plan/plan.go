// Package plan derives the personalized transition plan shown after a
// submission. Everything here is a pure function of the record and the
// catalogs.
package plan

import (
	"fmt"

	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/pkg/models"
)

// PathSummary is the chosen career path
type PathSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Goal        string `json:"goal"`
	Timeline    string `json:"timeline"`
}

// TimelineSummary is the chosen learning timeline
type TimelineSummary struct {
	Name      string   `json:"name"`
	Subtitle  string   `json:"subtitle"`
	Focus     string   `json:"focus"`
	Structure []string `json:"structure"`
}

// Advice answers the submitter's biggest concern
type Advice struct {
	Concern      string `json:"concern"`
	RealityCheck string `json:"reality_check"`
	Action       string `json:"action"`
}

// Channel is one content format. Items is empty when the format was not
// chosen, and Note then says what to focus on instead.
type Channel struct {
	Selected bool     `json:"selected"`
	Heading  string   `json:"heading,omitempty"`
	Items    []string `json:"items"`
	Note     string   `json:"note,omitempty"`
}

type ContentMix struct {
	Audio Channel `json:"audio"`
	Video Channel `json:"video"`
	Text  Channel `json:"text"`
}

// Py4AIPitch is shown to submitters keen on Python for AI
type Py4AIPitch struct {
	Reasons  []string `json:"reasons"`
	NextStep string   `json:"next_step"`
}

type NetworkingPlan struct {
	LinkedIn  []string `json:"linkedin"`
	Community []string `json:"community"`
}

// Plan is the full recommendation for one record
type Plan struct {
	Path          *PathSummary     `json:"path"`
	Timeline      *TimelineSummary `json:"timeline"`
	NextSteps     []string         `json:"next_steps"`
	Content       ContentMix       `json:"content"`
	Py4AI         *Py4AIPitch      `json:"py4ai"`
	Networking    NetworkingPlan   `json:"networking"`
	ConcernAdvice *Advice          `json:"concern_advice"`
}

// Derive builds the plan for rec
func Derive(rec *models.Record, cat *catalog.Catalog) Plan {
	return Plan{
		Path:          pathSummary(rec, cat),
		Timeline:      timelineSummary(rec, cat),
		NextSteps:     NextSteps(rec.Situation.UrgencyLevel),
		Content:       contentMix(rec),
		Py4AI:         py4aiPitch(rec),
		Networking:    networking(rec.PersonalInfo.EngineeringDiscipline),
		ConcernAdvice: ConcernAdvice(rec.AIKnowledge.BiggestConcern),
	}
}

func pathSummary(rec *models.Record, cat *catalog.Catalog) *PathSummary {
	name := rec.UseCase.Selected
	if name == "" {
		return nil
	}

	// Prefer the snapshot taken at submission time.
	var p models.CareerPath
	if rec.UseCase.Details != nil {
		p = *rec.UseCase.Details
	} else if found, ok := cat.CareerPath(name); ok {
		p = found
	} else {
		return nil
	}
	return &PathSummary{Name: name, Description: p.Description, Goal: p.Goal, Timeline: p.Timeline}
}

func timelineSummary(rec *models.Record, cat *catalog.Catalog) *TimelineSummary {
	name := rec.LearningPreferences.TimelinePreference
	t, ok := cat.TimelinePlan(name)
	if !ok {
		return nil
	}
	return &TimelineSummary{Name: name, Subtitle: t.Subtitle, Focus: t.Focus, Structure: t.Structure}
}

// NextSteps returns the three immediate actions for an urgency level.
func NextSteps(urgency models.Urgency) []string {
	switch urgency {
	case models.UrgencyDesperate:
		return []string{
			"Priority 1: Start daily AI news consumption (10 min/day)",
			"Priority 2: Begin free Python basics (Codecademy/freeCodeCamp)",
			"Priority 3: Update LinkedIn profile with 'AI-curious engineer' messaging",
		}
	case models.UrgencyCommitted:
		return []string{
			"Week 1: Complete AI fundamentals crash course",
			"Week 2: Start Py4AI or Python basics",
			"Week 3: Join AI engineering communities (LinkedIn/Discord)",
		}
	default:
		return []string{
			"This week: Research AI applications in your engineering field",
			"Next week: Choose your first AI learning resource",
			"This month: Connect with 5 AI professionals on LinkedIn",
		}
	}
}

var concernAdvice = map[models.Concern]Advice{
	models.ConcernDisplacement: {
		RealityCheck: "AI amplifies human capability rather than replacing it entirely. Engineers who understand AI become invaluable.",
		Action:       "Focus on becoming the AI-savvy engineer in your field rather than competing against AI.",
	},
	models.ConcernTooComplex: {
		RealityCheck: "You already mastered complex engineering concepts. AI concepts follow similar logical patterns.",
		Action:       "Start with applications in your field - you'll see familiar engineering principles in new contexts.",
	},
	models.ConcernWhereToStart: {
		RealityCheck: "You've just created a personalized starting plan above!",
		Action:       "Follow your 3-month sprint plan, starting with the immediate next steps listed above.",
	},
	models.ConcernImposter: {
		RealityCheck: "Your engineering background gives you problem-solving skills that many AI enthusiasts lack.",
		Action:       "Remember you're adding AI to your engineering expertise, not starting from zero.",
	},
	models.ConcernKeepingUp: {
		RealityCheck: "Focus on fundamentals first. The core concepts evolve slowly; applications evolve quickly.",
		Action:       "Master the basics thoroughly, then you can adapt to new applications easily.",
	},
}

// ConcernAdvice returns the advice for concern, or nil if none is mapped.
func ConcernAdvice(concern models.Concern) *Advice {
	a, ok := concernAdvice[concern]
	if !ok {
		return nil
	}
	a.Concern = string(concern)
	return &a
}

func contentMix(rec *models.Record) ContentMix {
	formats := rec.LearningPreferences.LearningFormats
	discipline := rec.PersonalInfo.EngineeringDiscipline

	mix := ContentMix{
		Audio: Channel{Items: []string{}, Note: "Audio not preferred - focus on video/text"},
		Video: Channel{Items: []string{}, Note: "Video not preferred - focus on text/audio"},
		Text:  Channel{Items: []string{}, Note: "Text not preferred - focus on audio/video"},
	}

	if models.Contains(formats, models.FormatAudio) {
		items := []string{}
		switch rec.AIKnowledge.AIUnderstanding {
		case models.AIUnderstandingBeginner, models.AIUnderstandingBuzzwords:
			items = append(items,
				"AI for Everyone (Andrew Ng course audio)",
				"Lex Fridman Podcast (AI episodes)",
				"The AI Podcast by NVIDIA",
			)
		}
		switch discipline {
		case models.DisciplineMechanical, models.DisciplineCivil, models.DisciplineAerospace:
			items = append(items, "Engineering AI Podcast")
		}
		mix.Audio = Channel{Selected: true, Heading: "Perfect for your commute/exercise", Items: items}
	}

	if models.Contains(formats, models.FormatVideo) {
		items := []string{}
		switch rec.LearningPreferences.VideoPreference {
		case models.VideoShort:
			items = append(items,
				"Two Minute Papers (AI research)",
				"AI Explained (quick concepts)",
				"Python in 60 seconds series",
			)
		case models.VideoMedium, models.VideoLong:
			items = append(items,
				"3Blue1Brown (Neural Networks)",
				"Sentdex Python AI tutorials",
				"Andrew Ng's AI course videos",
			)
		}
		mix.Video = Channel{Selected: true, Heading: "Matched to your learning style", Items: items}
	}

	if models.Contains(formats, models.FormatText) {
		items := []string{
			"Towards Data Science (Medium)",
			"AI research newsletters",
			"Industry-specific AI blogs",
		}
		switch discipline {
		case models.DisciplineMechanical:
			items = append(items, "Machine Design AI articles")
		case models.DisciplineElectrical:
			items = append(items, "IEEE AI publications")
		}
		mix.Text = Channel{Selected: true, Heading: "For deep understanding", Items: items}
	}

	return mix
}

func py4aiPitch(rec *models.Record) *Py4AIPitch {
	switch rec.Py4AIInterest.PythonAIInterest {
	case models.PythonAIDefinitely, models.PythonAIPriority:
	default:
		return nil
	}
	return &Py4AIPitch{
		Reasons: []string{
			"Engineering Background: Built for engineers who think in systems and problem-solving",
			`"Just Dangerous Enough": Focus on practical AI applications, not computer science theory`,
			fmt.Sprintf("Time-Efficient: Designed for %s learning capacity", rec.LearningPreferences.StudyTime),
			fmt.Sprintf("Industry Relevant: Applied to %s engineering contexts", rec.PersonalInfo.EngineeringDiscipline),
		},
		NextStep: "Ask about early access to the Py4AI curriculum",
	}
}

func networking(discipline models.Discipline) NetworkingPlan {
	return NetworkingPlan{
		LinkedIn: []string{
			"Update headline: 'Engineering professional transitioning to AI'",
			fmt.Sprintf("Join %s + AI groups", discipline),
			"Share weekly AI learning insights",
			"Comment on AI posts from industry leaders",
		},
		Community: []string{
			"Join r/MachineLearning + r/EngineeringAI",
			"Attend local AI/ML meetups",
			"Follow AI researchers on Twitter/X",
			"Participate in AI Discord/Slack communities",
		},
	}
}
