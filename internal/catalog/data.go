package catalog

import "github.com/khrees2412/careerpivot/pkg/models"

// Default returns the built-in catalog.
func Default() *Catalog {
	return newCatalog(defaultPaths, defaultTimelines)
}

var defaultPaths = []namedPath{
	{"Technical Translators", models.CareerPath{
		Description: "Strong technical background, wants to bridge engineering and AI",
		Goal:        "Become AI implementation specialists in their engineering domain",
		Timeline:    "6-12 months for specialization",
		Focus:       "Industry-specific AI applications, technical sales, consulting",
		Example:     "Mechanical Engineer → AI-powered predictive maintenance consultant",
	}},
	{"Data-Driven Analysts", models.CareerPath{
		Description: "Some data analysis experience, wants to go deeper into AI/ML",
		Goal:        "Transition to data scientist or AI analyst roles",
		Timeline:    "6-18 months for comprehensive skills",
		Focus:       "Statistics, machine learning, data visualization, Python proficiency",
		Example:     "Process Engineer → Manufacturing AI Data Scientist",
	}},
	{"Strategic Pivoteurs", models.CareerPath{
		Description: "Senior engineers looking for management/strategy roles in AI",
		Goal:        "AI project management, product management, strategic roles",
		Timeline:    "3-6 months for business understanding",
		Focus:       "AI business applications, project management, strategic thinking",
		Example:     "Engineering Manager → AI Product Strategy Director",
	}},
	{"Practical Implementers", models.CareerPath{
		Description: "Hands-on engineers wanting to implement AI in current industry",
		Goal:        "Stay in industry but become the AI expert",
		Timeline:    "3-9 months for applied skills",
		Focus:       "Industry-specific AI tools, automation, practical applications",
		Example:     "Civil Engineer → Smart Infrastructure AI Specialist",
	}},
	{"Entrepreneur Builders", models.CareerPath{
		Description: "Want to start AI-related business or consulting practice",
		Goal:        "Build AI-powered solutions or services",
		Timeline:    "6-18 months for comprehensive understanding",
		Focus:       "Business + technical skills, market understanding, networking",
		Example:     "Aerospace Engineer → AI-powered drone consulting startup",
	}},
	{"Career Survivors", models.CareerPath{
		Description: "Need immediate employment, AI as job security strategy",
		Goal:        "Quick AI literacy for job market competitiveness",
		Timeline:    "1-3 months for basic competency",
		Focus:       "Rapid skill acquisition, job search optimization, interview prep",
		Example:     "Recently laid-off engineer → AI-aware technical professional",
	}},
}

var defaultTimelines = []namedTimeline{
	{"3-Month Sprint", models.TimelinePlan{
		Subtitle: "Survival Mode - Immediate Job Needs",
		Focus:    "Rapid competency, job search optimization",
		Structure: []string{
			"Week 1-2: AI fundamentals crash course",
			"Week 3-4: Industry-specific AI applications",
			"Week 5-8: Python basics + key AI tools",
			"Week 9-12: Portfolio projects, interview prep",
		},
	}},
	{"6-Month Strategic", models.TimelinePlan{
		Subtitle: "Balanced Approach - Career Enhancement",
		Focus:    "Comprehensive skills with practical application",
		Structure: []string{
			"Month 1: AI landscape understanding",
			"Month 2-3: Python for AI (Py4AI focus)",
			"Month 4-5: Specialized AI applications",
			"Month 6: Portfolio, networking, job search",
		},
	}},
	{"12-Month Mastery", models.TimelinePlan{
		Subtitle: "Deep Transformation - Complete Career Pivot",
		Focus:    "Expert-level knowledge, thought leadership",
		Structure: []string{
			"Q1: Foundation (AI + Python + Math refresh)",
			"Q2: Specialization (domain-specific AI applications)",
			"Q3: Advanced projects + networking",
			"Q4: Expertise demonstration, job placement",
		},
	}},
	{"18+ Month Evolution", models.TimelinePlan{
		Subtitle: "Gradual Transition - Learning While Working",
		Focus:    "Learning while working, minimal disruption",
		Structure: []string{
			"Months 1-6: Evening/weekend learning, basics",
			"Months 7-12: Skill application in current role",
			"Months 13-18: Transition planning and execution",
		},
	}},
}
