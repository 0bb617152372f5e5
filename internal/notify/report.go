package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/khrees2412/careerpivot/pkg/models"
	"github.com/pkg/errors"
)

const listSeparator = ", "

// Subject is the mail subject for rec
func Subject(rec *models.Record) string {
	return "New AI Career Assessment: " + rec.PersonalInfo.Name
}

type reportSection struct {
	title string
	lines [][2]string
}

// FormatReport renders rec as the plain-text operator report: one labeled
// line per field grouped by record section, then the full record as JSON.
func FormatReport(rec *models.Record) (string, error) {
	if rec == nil {
		return "", errors.New("nil record")
	}

	p := rec.PersonalInfo
	s := rec.Situation
	tb := rec.TechnicalBackground
	ai := rec.AIKnowledge
	lp := rec.LearningPreferences
	cg := rec.CareerGoals
	rs := rec.Resources
	py := rec.Py4AIInterest
	op := rec.OpenResponses

	selected := rec.UseCase.Selected
	if selected == "" {
		selected = "None selected"
	}

	sections := []reportSection{
		{"PERSONAL INFORMATION", [][2]string{
			{"Name", p.Name},
			{"Email", p.Email},
			{"LinkedIn", p.LinkedIn},
			{"Location", p.Location},
			{"Engineering Discipline", string(p.EngineeringDiscipline)},
			{"Years of Experience", string(p.YearsExperience)},
			{"Previous Title", p.PreviousTitle},
			{"Company/Industry", p.CompanyIndustry},
			{"Layoff Timeline", string(p.LayoffDate)},
			{"Financial Runway", string(p.FinancialRunway)},
		}},
		{"CURRENT SITUATION", [][2]string{
			{"Employment Status", string(s.EmploymentStatus)},
			{"Job Timeline", string(s.JobTimeline)},
			{"Urgency Level", string(s.UrgencyLevel)},
			{"Geographic Flexibility", string(s.GeographicFlexibility)},
			{"Industry Pivot", string(s.IndustryPivot)},
		}},
		{"CAREER PATH", [][2]string{
			{"Selected Path", selected},
		}},
		{"TECHNICAL BACKGROUND", [][2]string{
			{"Programming Experience", string(tb.ProgrammingExp)},
			{"Programming Languages", join(tb.ProgrammingLanguages)},
			{"Python Level", string(tb.PythonLevel)},
			{"Data Analysis Experience", string(tb.DataAnalysisExp)},
			{"Math Comfort", string(tb.MathComfort)},
			{"Learning Preference", string(tb.LearningPreference)},
		}},
		{"AI KNOWLEDGE", [][2]string{
			{"AI Understanding", string(ai.AIUnderstanding)},
			{"AI Tools Used", join(ai.AIToolsUsed)},
			{"AI Interests", join(ai.AIInterests)},
			{"Biggest Concern", string(ai.BiggestConcern)},
		}},
		{"LEARNING PREFERENCES", [][2]string{
			{"Study Time", string(lp.StudyTime)},
			{"Learning Formats", join(lp.LearningFormats)},
			{"Timeline Preference", lp.TimelinePreference},
			{"Audio Context", join(lp.AudioContext)},
			{"Video Preference", string(lp.VideoPreference)},
			{"Hands-on Style", string(lp.HandsOnStyle)},
		}},
		{"CAREER GOALS", [][2]string{
			{"Pivot Motivation", string(cg.PivotMotivation)},
			{"Target Roles", join(cg.TargetRoles)},
			{"Income Expectations", string(cg.IncomeExpectations)},
			{"Industry Target", string(cg.IndustryTarget)},
			{"Role Preference", string(cg.RolePreference)},
		}},
		{"RESOURCES", [][2]string{
			{"Learning Budget", string(rs.LearningBudget)},
			{"Equipment Status", string(rs.EquipmentStatus)},
			{"Home Environment", string(rs.HomeEnvironment)},
			{"Family Support", string(rs.FamilySupport)},
		}},
		{"PY4AI INTEREST", [][2]string{
			{"Python for AI Interest", string(py.PythonAIInterest)},
			{"Py4AI Course Interest", string(py.Py4AICourseInterest)},
		}},
		{"OPEN RESPONSES", [][2]string{
			{"Biggest Challenge", op.BiggestChallenge},
			{"Most Exciting", op.MostExciting},
			{"Ideal Outcome", op.IdealOutcome},
		}},
	}

	var b strings.Builder
	b.WriteString("New AI Career Assessment Submission\n")
	fmt.Fprintf(&b, "Submitted: %s\n", rec.Timestamp)
	if rec.ID != "" {
		fmt.Fprintf(&b, "Submission ID: %s\n", rec.ID)
	}

	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s\n", sec.title)
		for _, line := range sec.lines {
			fmt.Fprintf(&b, "%s: %s\n", line[0], line[1])
		}
	}

	data, err := indentJSON(rec)
	if err != nil {
		return "", err
	}
	b.WriteString("\nFull JSON Data:\n")
	b.Write(data)

	return b.String(), nil
}

func join[T ~string](vals []T) string {
	return strings.Join(models.Strings(vals), listSeparator)
}

func indentJSON(rec *models.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, errors.Wrap(err, "encode record")
	}
	return buf.Bytes(), nil
}
