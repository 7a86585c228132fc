package api

import (
	"net/http"

	"food-app/metrics"
	"food-app/models"
	"food-app/services"
	"food-app/session"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type Server struct {
	router  *gin.Engine
	catalog *services.Catalog
	store   *session.Store
}

// NewServer wires the routes. m may be nil, in which case /metrics is not served.
func NewServer(catalog *services.Catalog, store *session.Store, m *metrics.Metrics) *Server {
	s := &Server{
		router:  gin.New(),
		catalog: catalog,
		store:   store,
	}
	s.router.Use(gin.Recovery())

	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/catalog", s.handleCatalog)
	s.router.GET("/sessions/:id", s.handleGetSession)
	s.router.POST("/sessions/:id/actions", s.handleAction)
	if m != nil {
		s.router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	return s
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: gin.H{
		"catalog_items":   s.catalog.Len(),
		"sessions":        s.store.Len(),
		"sessions_opened": s.store.Created(),
	}})
}

func (s *Server) handleCatalog(c *gin.Context) {
	items := s.catalog.Items()
	if q := c.Query("category"); q != "" {
		cat := models.Category(q)
		if !cat.Valid() {
			c.JSON(http.StatusBadRequest, Response{Message: "unknown category: " + q})
			return
		}
		items = s.catalog.ByCategory(cat)
	}
	if items == nil {
		items = []models.FoodItem{}
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: items})
}

func sessionKey(id string) string {
	return "api:" + id
}

// handleGetSession never creates a session; unknown ids read as the initial state.
func (s *Server) handleGetSession(c *gin.Context) {
	st := session.Initial()
	if sess, ok := s.store.Peek(sessionKey(c.Param("id"))); ok {
		st = sess.State()
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: NewView(st, session.NoticeNone)})
}

func (s *Server) handleAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "invalid request body: " + err.Error()})
		return
	}
	action, err := req.Action(s.catalog)
	if err != nil {
		c.JSON(statusFor(err), Response{Message: err.Error()})
		return
	}
	st, notice := s.store.Get(sessionKey(c.Param("id"))).Dispatch(action)
	c.JSON(http.StatusOK, Response{Success: true, Data: NewView(st, notice)})
}
