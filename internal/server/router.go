package server

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/khrees2412/careerpivot/internal/logger"
)

type RouterConfig struct {
	Handler     *Handler
	Log         *logger.Logger
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Log))
	r.Use(CORS(cfg.CORSOrigins))
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", HealthCheck)

	h := cfg.Handler
	if h == nil {
		return r, nil
	}

	r.GET("/", h.Index)
	r.POST("/assessments", h.SubmitForm)

	api := r.Group("/api")
	{
		api.POST("/assessments", h.SubmitJSON)
		api.GET("/questions", h.ListQuestions)
		api.GET("/paths", h.ListPaths)
		api.GET("/paths/:name", h.GetPath)
		api.GET("/timelines", h.ListTimelines)
		api.GET("/timelines/:name", h.GetTimeline)
		api.GET("/stats", h.Stats)
	}

	return r, nil
}
