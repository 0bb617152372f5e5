package plan

import (
	"testing"

	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRecord() *models.Record {
	return &models.Record{
		PersonalInfo: models.PersonalInfo{
			Name:                  "Ada",
			EngineeringDiscipline: models.DisciplineMechanical,
		},
		LearningPreferences: models.LearningPrefs{
			StudyTime:          "5-10 hours",
			TimelinePreference: "3-Month Sprint",
			LearningFormats:    []models.LearningFormat{},
		},
	}
}

func TestNextStepsBuckets(t *testing.T) {
	tests := []struct {
		urgency models.Urgency
		first   string
	}{
		{models.UrgencyDesperate, "Priority 1: Start daily AI news consumption (10 min/day)"},
		{models.UrgencyCommitted, "Week 1: Complete AI fundamentals crash course"},
		{models.UrgencyExploring, "This week: Research AI applications in your engineering field"},
		{models.UrgencySerious, "This week: Research AI applications in your engineering field"},
		{"", "This week: Research AI applications in your engineering field"},
	}

	for _, tt := range tests {
		t.Run(string(tt.urgency), func(t *testing.T) {
			steps := NextSteps(tt.urgency)
			require.Len(t, steps, 3)
			assert.Equal(t, tt.first, steps[0])
		})
	}
}

func TestConcernAdviceTable(t *testing.T) {
	for _, c := range models.Concerns {
		a := ConcernAdvice(c)
		require.NotNil(t, a, c)
		assert.Equal(t, string(c), a.Concern)
		assert.NotEmpty(t, a.RealityCheck)
		assert.NotEmpty(t, a.Action)
	}

	assert.Nil(t, ConcernAdvice(""))
	assert.Nil(t, ConcernAdvice("Something else"))

	a := ConcernAdvice(models.ConcernImposter)
	assert.Equal(t, "Remember you're adding AI to your engineering expertise, not starting from zero.", a.Action)
}

func TestDerivePathAndTimeline(t *testing.T) {
	cat := catalog.Default()
	rec := baseRecord()
	p, _ := cat.CareerPath("Strategic Pivoteurs")
	rec.UseCase = models.UseCase{Selected: "Strategic Pivoteurs", Details: &p}

	got := Derive(rec, cat)

	require.NotNil(t, got.Path)
	assert.Equal(t, "Strategic Pivoteurs", got.Path.Name)
	assert.Equal(t, p.Goal, got.Path.Goal)

	require.NotNil(t, got.Timeline)
	assert.Equal(t, "3-Month Sprint", got.Timeline.Name)
	assert.NotEmpty(t, got.Timeline.Structure)
}

func TestDeriveWithoutSelections(t *testing.T) {
	rec := baseRecord()
	rec.LearningPreferences.TimelinePreference = "Someday"

	got := Derive(rec, catalog.Default())

	assert.Nil(t, got.Path)
	assert.Nil(t, got.Timeline)
	assert.Nil(t, got.ConcernAdvice)
	assert.Nil(t, got.Py4AI)
	assert.Len(t, got.NextSteps, 3)
}

func TestContentChannelsNotChosen(t *testing.T) {
	got := Derive(baseRecord(), catalog.Default()).Content

	assert.False(t, got.Audio.Selected)
	assert.Empty(t, got.Audio.Items)
	assert.Equal(t, "Audio not preferred - focus on video/text", got.Audio.Note)
	assert.Equal(t, "Video not preferred - focus on text/audio", got.Video.Note)
	assert.Equal(t, "Text not preferred - focus on audio/video", got.Text.Note)
}

func TestAudioContent(t *testing.T) {
	tests := []struct {
		name       string
		discipline models.Discipline
		level      models.AIUnderstanding
		want       []string
	}{
		{
			name:       "beginner mechanical",
			discipline: models.DisciplineMechanical,
			level:      models.AIUnderstandingBeginner,
			want: []string{
				"AI for Everyone (Andrew Ng course audio)",
				"Lex Fridman Podcast (AI episodes)",
				"The AI Podcast by NVIDIA",
				"Engineering AI Podcast",
			},
		},
		{
			name:       "buzzwords electrical",
			discipline: models.DisciplineElectrical,
			level:      models.AIUnderstandingBuzzwords,
			want: []string{
				"AI for Everyone (Andrew Ng course audio)",
				"Lex Fridman Podcast (AI episodes)",
				"The AI Podcast by NVIDIA",
			},
		},
		{
			name:       "advanced civil",
			discipline: models.DisciplineCivil,
			level:      "Good foundation",
			want:       []string{"Engineering AI Podcast"},
		},
		{
			name:       "advanced software",
			discipline: models.DisciplineSoftware,
			level:      "Good foundation",
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			rec.PersonalInfo.EngineeringDiscipline = tt.discipline
			rec.AIKnowledge.AIUnderstanding = tt.level
			rec.LearningPreferences.LearningFormats = []models.LearningFormat{models.FormatAudio}

			audio := Derive(rec, catalog.Default()).Content.Audio
			assert.True(t, audio.Selected)
			assert.Empty(t, audio.Note)
			assert.Equal(t, tt.want, audio.Items)
		})
	}
}

func TestVideoContent(t *testing.T) {
	tests := []struct {
		pref  models.VideoPreference
		first string
		count int
	}{
		{models.VideoShort, "Two Minute Papers (AI research)", 3},
		{models.VideoMedium, "3Blue1Brown (Neural Networks)", 3},
		{models.VideoLong, "3Blue1Brown (Neural Networks)", 3},
		{"Live streams", "", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.pref), func(t *testing.T) {
			rec := baseRecord()
			rec.LearningPreferences.LearningFormats = []models.LearningFormat{models.FormatVideo}
			rec.LearningPreferences.VideoPreference = tt.pref

			video := Derive(rec, catalog.Default()).Content.Video
			assert.True(t, video.Selected)
			require.Len(t, video.Items, tt.count)
			if tt.count > 0 {
				assert.Equal(t, tt.first, video.Items[0])
			}
		})
	}
}

func TestTextContentDisciplineExtras(t *testing.T) {
	tests := []struct {
		discipline models.Discipline
		extra      string
	}{
		{models.DisciplineMechanical, "Machine Design AI articles"},
		{models.DisciplineElectrical, "IEEE AI publications"},
		{models.DisciplineChemical, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.discipline), func(t *testing.T) {
			rec := baseRecord()
			rec.PersonalInfo.EngineeringDiscipline = tt.discipline
			rec.LearningPreferences.LearningFormats = []models.LearningFormat{models.FormatText}

			text := Derive(rec, catalog.Default()).Content.Text
			if tt.extra == "" {
				assert.Len(t, text.Items, 3)
				return
			}
			require.Len(t, text.Items, 4)
			assert.Equal(t, tt.extra, text.Items[3])
		})
	}
}

func TestPy4AIPitch(t *testing.T) {
	rec := baseRecord()
	rec.Py4AIInterest.PythonAIInterest = models.PythonAIPriority

	pitch := Derive(rec, catalog.Default()).Py4AI
	require.NotNil(t, pitch)
	assert.Contains(t, pitch.Reasons, "Time-Efficient: Designed for 5-10 hours learning capacity")
	assert.Contains(t, pitch.Reasons, "Industry Relevant: Applied to Mechanical engineering contexts")

	rec.Py4AIInterest.PythonAIInterest = "Curious"
	assert.Nil(t, Derive(rec, catalog.Default()).Py4AI)
}

func TestNetworkingNamesDiscipline(t *testing.T) {
	rec := baseRecord()
	rec.PersonalInfo.EngineeringDiscipline = models.DisciplineAerospace

	n := Derive(rec, catalog.Default()).Networking
	assert.Contains(t, n.LinkedIn, "Join Aerospace + AI groups")
	assert.Len(t, n.Community, 4)
}
