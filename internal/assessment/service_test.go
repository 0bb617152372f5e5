package assessment

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/khrees2412/careerpivot/internal/archive"
	"github.com/khrees2412/careerpivot/internal/builder"
	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/internal/collector"
	"github.com/khrees2412/careerpivot/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu    sync.Mutex
	sends int
	err   error
}

func (f *fakeSender) Send(context.Context, notify.Credentials, notify.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends++
	return f.err
}

type fixture struct {
	svc     *Service
	archive *archive.Archive
	sender  *fakeSender
}

func newFixture(t *testing.T, sendErr error) fixture {
	t.Helper()
	cat := catalog.Default()
	arc := archive.New(filepath.Join(t.TempDir(), "assessments.json"))
	sender := &fakeSender{err: sendErr}
	creds := func() notify.Credentials {
		return notify.Credentials{Sender: "bot@example.com", Password: "pw", Recipient: "ops@example.com"}
	}
	svc := NewService(
		collector.New(cat),
		builder.New(cat),
		arc,
		notify.New(creds, sender, nil),
		cat,
		nil,
	)
	return fixture{svc: svc, archive: arc, sender: sender}
}

func validForm() collector.Form {
	return collector.Form{
		SelectedPath:          "Data-Driven Analysts",
		Name:                  "Grace Hopper",
		Email:                 "grace@example.com",
		EngineeringDiscipline: "Electrical",
		YearsExperience:       "15+ years",
		PreviousTitle:         "Principal Engineer",
		UrgencyLevel:          "Committed to pivot",
		BiggestConcern:        "Imposter syndrome",
		LearningFormats:       []string{"Text/articles"},
	}
}

func TestSubmitSuccess(t *testing.T) {
	f := newFixture(t, nil)

	res, err := f.svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, res.Status())
	assert.Equal(t, "Thank you, Grace Hopper! You will soon receive your personalized AI career plan via email.", res.Message())
	assert.True(t, res.Persisted.OK)
	assert.True(t, res.Notified.OK)
	assert.Equal(t, 1, f.sender.sends)

	require.NotNil(t, res.Plan.Path)
	assert.Equal(t, "Data-Driven Analysts", res.Plan.Path.Name)
	assert.Equal(t, "Week 1: Complete AI fundamentals crash course", res.Plan.NextSteps[0])
	require.NotNil(t, res.Plan.ConcernAdvice)
	assert.Contains(t, res.Plan.Content.Text.Items, "IEEE AI publications")

	entries, err := f.archive.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSubmitMissingRequiredFieldsHasNoSideEffects(t *testing.T) {
	for _, field := range []string{"name", "email", "engineering_discipline", "years_experience", "previous_title"} {
		t.Run(field, func(t *testing.T) {
			f := newFixture(t, nil)
			form := validForm()
			form.Set(field, "   ")

			res, err := f.svc.Submit(context.Background(), form)
			assert.Nil(t, res)

			var verr *builder.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, []string{field}, verr.Fields)

			assert.Zero(t, f.sender.sends)
			_, statErr := os.Stat(f.archive.Path())
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestSubmitInvalidChoiceHasNoSideEffects(t *testing.T) {
	f := newFixture(t, nil)
	form := validForm()
	form.UrgencyLevel = "Mildly curious"

	_, err := f.svc.Submit(context.Background(), form)

	var cerr *collector.InvalidChoiceError
	require.True(t, errors.As(err, &cerr), "got %v", err)
	assert.Equal(t, "urgency_level", cerr.Field)
	assert.Zero(t, f.sender.sends)
}

func TestSubmitNotificationFailureIsDegraded(t *testing.T) {
	f := newFixture(t, errors.New("dial tcp: connection refused"))

	res, err := f.svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, StatusDegraded, res.Status())
	assert.Contains(t, res.Message(), "Thank you, Grace Hopper!")
	assert.Contains(t, res.Message(), "could not be sent")
	assert.False(t, res.Notified.OK)
	assert.True(t, res.Persisted.OK)

	entries, err := f.archive.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSubmitPersistenceFailureStillSucceeds(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, os.WriteFile(f.archive.Path(), []byte("{not json"), 0644))

	res, err := f.svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.False(t, res.Persisted.OK)
	var perr *archive.PersistenceError
	assert.True(t, errors.As(res.Persisted.Err, &perr))
	assert.Equal(t, StatusSuccess, res.Status())
	assert.NotNil(t, res.Plan.Path)
}

func TestSubmitSerializesConcurrentCalls(t *testing.T) {
	f := newFixture(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Submit(context.Background(), validForm())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries, err := f.archive.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 8)
}

func TestSubmitWithoutNotifier(t *testing.T) {
	cat := catalog.Default()
	arc := archive.New(filepath.Join(t.TempDir(), "a.json"))
	svc := NewService(collector.New(cat), builder.New(cat), arc, nil, cat, nil)

	res, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, StatusDegraded, res.Status())
	assert.True(t, res.Persisted.OK)
}
