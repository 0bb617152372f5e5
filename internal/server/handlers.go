package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khrees2412/careerpivot/internal/app"
	"github.com/khrees2412/careerpivot/internal/archive"
	"github.com/khrees2412/careerpivot/internal/assessment"
	"github.com/khrees2412/careerpivot/internal/builder"
	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/internal/collector"
	"github.com/khrees2412/careerpivot/internal/logger"
	"github.com/khrees2412/careerpivot/pkg/models"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"has": func(vals []string, v string) bool {
		for _, s := range vals {
			if s == v {
				return true
			}
		}
		return false
	},
	"join": strings.Join,
}

// Submitter runs one assessment submission
type Submitter interface {
	Submit(ctx context.Context, form collector.Form) (*assessment.Result, error)
}

// StatsSource summarizes the archive
type StatsSource interface {
	Stats() (archive.Stats, error)
}

type Handler struct {
	service   Submitter
	catalog   *catalog.Catalog
	collector *collector.Collector
	stats     StatsSource
	log       *logger.Logger
}

func NewHandler(service Submitter, cat *catalog.Catalog, coll *collector.Collector, stats StatsSource, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{service: service, catalog: cat, collector: coll, stats: stats, log: log}
}

// NewHandlerFromApp wires a handler to the application container
func NewHandlerFromApp(a *app.App) *Handler {
	return NewHandler(a.Service, a.Catalog, a.Collector, a.Archive, a.Log)
}

type questionView struct {
	collector.Question
	Values []string
}

// Value is the single answer to show, falling back to the default.
func (q questionView) Value() string {
	if len(q.Values) > 0 {
		return q.Values[0]
	}
	return q.Default
}

type sectionView struct {
	Title     string
	Questions []questionView
}

type pathView struct {
	Name string
	models.CareerPath
}

type timelineView struct {
	Name string
	models.TimelinePlan
}

type indexPage struct {
	Sections  []sectionView
	Paths     []pathView
	Timelines []timelineView
	Stats     *archive.Stats
	Error     string
	Missing   []string
}

func (h *Handler) indexPage(values map[string][]string) indexPage {
	page := indexPage{}
	for _, s := range h.collector.Sections() {
		sv := sectionView{Title: s.Title}
		for _, q := range s.Questions {
			sv.Questions = append(sv.Questions, questionView{Question: q, Values: values[q.Key]})
		}
		page.Sections = append(page.Sections, sv)
	}
	for _, name := range h.catalog.CareerPathNames() {
		p, _ := h.catalog.CareerPath(name)
		page.Paths = append(page.Paths, pathView{Name: name, CareerPath: p})
	}
	for _, name := range h.catalog.TimelinePlanNames() {
		t, _ := h.catalog.TimelinePlan(name)
		page.Timelines = append(page.Timelines, timelineView{Name: name, TimelinePlan: t})
	}
	if h.stats != nil {
		if st, err := h.stats.Stats(); err != nil {
			h.log.Warn("archive stats unavailable", "error", err)
		} else {
			page.Stats = &st
		}
	}
	return page
}

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.indexPage(nil))
}

func (h *Handler) SubmitForm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "malformed form: %v", err)
		return
	}
	form := collector.FormFromValues(c.Request.PostForm)

	res, err := h.service.Submit(c.Request.Context(), form)
	if err != nil {
		page := h.indexPage(form.Values())
		status := http.StatusBadRequest
		var verr *builder.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusUnprocessableEntity
			page.Missing = verr.Fields
			page.Error = "Please fill in all required fields (marked with *)."
		} else {
			page.Error = err.Error()
		}
		_ = c.Error(err)
		c.HTML(status, "index.html", page)
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Result":  res,
		"Status":  res.Status(),
		"Message": res.Message(),
		"Plan":    res.Plan,
	})
}

type submitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	*assessment.Result
}

func (h *Handler) SubmitJSON(c *gin.Context) {
	var form collector.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	res, err := h.service.Submit(c.Request.Context(), form)
	if err != nil {
		_ = c.Error(err)
		var verr *builder.ValidationError
		var cerr *collector.InvalidChoiceError
		switch {
		case errors.As(err, &verr):
			RespondError(c, http.StatusUnprocessableEntity, "validation_failed", err, verr.Fields...)
		case errors.As(err, &cerr):
			RespondError(c, http.StatusBadRequest, "invalid_choice", err, cerr.Field)
		default:
			RespondError(c, http.StatusInternalServerError, "internal", err)
		}
		return
	}

	RespondOK(c, submitResponse{Status: res.Status(), Message: res.Message(), Result: res})
}

type questionJSON struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Section  string   `json:"section"`
	Multi    bool     `json:"multi"`
	Options  []string `json:"options,omitempty"`
	Default  string   `json:"default,omitempty"`
	Required bool     `json:"required"`
}

func (h *Handler) ListQuestions(c *gin.Context) {
	qs := h.collector.Questions()
	out := make([]questionJSON, 0, len(qs))
	for _, q := range qs {
		out = append(out, questionJSON{
			Key:      q.Key,
			Label:    q.Label,
			Section:  q.Section,
			Multi:    q.Kind == collector.KindMulti,
			Options:  q.Options,
			Default:  q.Default,
			Required: q.Required,
		})
	}
	RespondOK(c, gin.H{"questions": out})
}

type namedPath struct {
	Name string `json:"name"`
	models.CareerPath
}

type namedTimeline struct {
	Name string `json:"name"`
	models.TimelinePlan
}

func (h *Handler) ListPaths(c *gin.Context) {
	names := h.catalog.CareerPathNames()
	out := make([]namedPath, 0, len(names))
	for _, name := range names {
		p, _ := h.catalog.CareerPath(name)
		out = append(out, namedPath{Name: name, CareerPath: p})
	}
	RespondOK(c, gin.H{"paths": out})
}

func (h *Handler) GetPath(c *gin.Context) {
	name := c.Param("name")
	p, ok := h.catalog.CareerPath(name)
	if !ok {
		RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("career path %q: %w", name, app.ErrNotFound))
		return
	}
	RespondOK(c, namedPath{Name: name, CareerPath: p})
}

func (h *Handler) ListTimelines(c *gin.Context) {
	names := h.catalog.TimelinePlanNames()
	out := make([]namedTimeline, 0, len(names))
	for _, name := range names {
		t, _ := h.catalog.TimelinePlan(name)
		out = append(out, namedTimeline{Name: name, TimelinePlan: t})
	}
	RespondOK(c, gin.H{"timelines": out})
}

func (h *Handler) GetTimeline(c *gin.Context) {
	name := c.Param("name")
	t, ok := h.catalog.TimelinePlan(name)
	if !ok {
		RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("timeline %q: %w", name, app.ErrNotFound))
		return
	}
	RespondOK(c, namedTimeline{Name: name, TimelinePlan: t})
}

func (h *Handler) Stats(c *gin.Context) {
	if h.stats == nil {
		RespondOK(c, archive.Stats{PopularPaths: []archive.PathCount{}})
		return
	}
	st, err := h.stats.Stats()
	if err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "archive_unreadable", err)
		return
	}
	RespondOK(c, st)
}
