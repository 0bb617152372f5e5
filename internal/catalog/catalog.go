package catalog

import (
	"github.com/khrees2412/careerpivot/pkg/models"
)

// Catalog holds the career-path and timeline-plan reference tables.
// It is built once and never mutated; lookups hand out copies.
type Catalog struct {
	pathNames     []string
	paths         map[string]models.CareerPath
	timelineNames []string
	timelines     map[string]models.TimelinePlan
}

type namedPath struct {
	name string
	path models.CareerPath
}

type namedTimeline struct {
	name string
	plan models.TimelinePlan
}

func newCatalog(paths []namedPath, timelines []namedTimeline) *Catalog {
	c := &Catalog{
		paths:     make(map[string]models.CareerPath, len(paths)),
		timelines: make(map[string]models.TimelinePlan, len(timelines)),
	}
	for _, p := range paths {
		c.pathNames = append(c.pathNames, p.name)
		c.paths[p.name] = p.path
	}
	for _, t := range timelines {
		c.timelineNames = append(c.timelineNames, t.name)
		c.timelines[t.name] = t.plan
	}
	return c
}

// CareerPath looks up a career path by name
func (c *Catalog) CareerPath(name string) (models.CareerPath, bool) {
	p, ok := c.paths[name]
	return p, ok
}

// TimelinePlan looks up a timeline plan by name
func (c *Catalog) TimelinePlan(name string) (models.TimelinePlan, bool) {
	t, ok := c.timelines[name]
	if !ok {
		return models.TimelinePlan{}, false
	}
	t.Structure = append([]string(nil), t.Structure...)
	return t, true
}

// CareerPathNames returns path names in display order
func (c *Catalog) CareerPathNames() []string {
	return append([]string(nil), c.pathNames...)
}

// TimelinePlanNames returns plan names in display order
func (c *Catalog) TimelinePlanNames() []string {
	return append([]string(nil), c.timelineNames...)
}
