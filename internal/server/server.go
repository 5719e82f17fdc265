// Package server exposes the onboarding and chat core over a JSON API.
// The external presentation layer consumes the profile and transcript as
// read-only view models and emits user intents through these endpoints.
package server

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mystudbud/studbud/internal/app"
	"github.com/mystudbud/studbud/internal/provider"
)

// TokenHeader carries the opaque session token issued by POST /api/sessions.
const TokenHeader = "X-Session-Token"

type Server struct {
	provider provider.ChatProvider
	logger   *zap.Logger
	engine   *gin.Engine

	mu       sync.RWMutex
	sessions map[string]*app.State
}

// New wires the router. The provider may be nil when no credential is
// configured; onboarding endpoints keep working and chat stays disabled.
func New(p provider.ChatProvider, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		provider: p,
		logger:   logger,
		engine:   gin.New(),
		sessions: make(map[string]*app.State),
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/api/sessions", s.handleCreateSession)

	api := s.engine.Group("/api", s.requireSession())
	api.POST("/onboarding/path", s.handleChoosePath)
	api.POST("/onboarding/subpath", s.handleChooseSubPath)
	api.POST("/onboarding/language", s.handleSetLanguage)
	api.POST("/onboarding/back", s.handleBack)
	api.POST("/onboarding/finalize", s.handleFinalize)
	api.GET("/profile", s.handleProfile)
	api.GET("/messages", s.handleTranscript)
	api.POST("/messages", s.handleSendMessage)
	api.POST("/subpath", s.handleSwitchSubPath)
	api.GET("/marketplace", s.handleMarketplace)
	api.POST("/logout", s.handleLogout)
}

// Router returns the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Run blocks serving HTTP on the given port.
func (s *Server) Run(port string) error {
	return s.engine.Run(":" + port)
}

// newSession registers a fresh per-user application state and returns its
// token. Each state owns its own session manager and transcript, so
// concurrent users never share chat state.
func (s *Server) newSession() string {
	token := uuid.NewString()
	state := app.New(s.provider, s.logger.With(zap.String("session", token)))

	s.mu.Lock()
	s.sessions[token] = state
	s.mu.Unlock()
	return token
}

func (s *Server) session(token string) (*app.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[token]
	return state, ok
}

func (s *Server) dropSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

const stateKey = "appState"

func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "missing " + TokenHeader + " header"})
			return
		}
		state, ok := s.session(token)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "unknown session token"})
			return
		}
		c.Set(stateKey, state)
		c.Next()
	}
}

func stateFrom(c *gin.Context) *app.State {
	return c.MustGet(stateKey).(*app.State)
}
