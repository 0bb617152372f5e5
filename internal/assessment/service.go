// Package assessment runs one questionnaire submission end to end.
package assessment

import (
	"context"
	"fmt"
	"sync"

	"github.com/khrees2412/careerpivot/internal/builder"
	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/internal/collector"
	"github.com/khrees2412/careerpivot/internal/logger"
	"github.com/khrees2412/careerpivot/internal/plan"
	"github.com/khrees2412/careerpivot/pkg/models"
)

const (
	StatusSuccess  = "success"
	StatusDegraded = "degraded"
)

// Appender stores a finished record
type Appender interface {
	Append(rec *models.Record) error
}

// Notifier reports a finished record to the operator
type Notifier interface {
	Notify(ctx context.Context, rec *models.Record) models.Outcome
}

// Result is what a successful submission produced. Persisted and Notified
// may still carry failures.
type Result struct {
	Record    *models.Record `json:"record"`
	Plan      plan.Plan      `json:"plan"`
	Persisted models.Outcome `json:"persisted"`
	Notified  models.Outcome `json:"notified"`
}

// Status is "success" when the operator was notified, "degraded" otherwise.
func (r *Result) Status() string {
	if r.Notified.OK {
		return StatusSuccess
	}
	return StatusDegraded
}

// Message is the banner shown to the submitter
func (r *Result) Message() string {
	name := r.Record.PersonalInfo.Name
	if r.Notified.OK {
		return fmt.Sprintf("Thank you, %s! You will soon receive your personalized AI career plan via email.", name)
	}
	return fmt.Sprintf("Thank you, %s! Your assessment was received, but the email summary could not be sent. Your personalized plan is below.", name)
}

type Service struct {
	mu        sync.Mutex
	collector *collector.Collector
	builder   *builder.Builder
	archive   Appender
	notifier  Notifier
	catalog   *catalog.Catalog
	log       *logger.Logger
}

func NewService(c *collector.Collector, b *builder.Builder, a Appender, n Notifier, cat *catalog.Catalog, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		collector: c,
		builder:   b,
		archive:   a,
		notifier:  n,
		catalog:   cat,
		log:       log.With("component", "assessment"),
	}
}

// Submit validates form, builds the record, notifies, persists and derives
// the plan. Only *collector.InvalidChoiceError and *builder.ValidationError
// are returned as errors; in that case nothing is sent or stored.
// Submissions within one process run one at a time.
func (s *Service) Submit(ctx context.Context, form collector.Form) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses, err := s.collector.Collect(form)
	if err != nil {
		s.log.Info("assessment rejected", "error", err)
		return nil, err
	}

	rec, err := s.builder.Build(responses)
	if err != nil {
		s.log.Info("assessment rejected", "error", err)
		return nil, err
	}

	res := &Result{Record: rec}

	if s.notifier != nil {
		res.Notified = s.notifier.Notify(ctx, rec)
	} else {
		res.Notified = models.Failed(fmt.Errorf("notification disabled"))
	}

	if err := s.archive.Append(rec); err != nil {
		s.log.Error("assessment not archived", "id", rec.ID, "error", err)
		res.Persisted = models.Failed(err)
	} else {
		res.Persisted = models.Succeeded()
	}

	res.Plan = plan.Derive(rec, s.catalog)

	s.log.Info("assessment submitted",
		"id", rec.ID,
		"path", rec.UseCase.Selected,
		"status", res.Status(),
		"persisted", res.Persisted.OK,
	)
	return res, nil
}
