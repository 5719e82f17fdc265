package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mystudbud/studbud/internal/app"
	"github.com/mystudbud/studbud/internal/chat"
	"github.com/mystudbud/studbud/internal/models"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().Format(time.RFC3339)})
}

func (s *Server) handleCreateSession(c *gin.Context) {
	token := s.newSession()
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

type choosePathRequest struct {
	Path models.PathType `json:"path"`
}

func (s *Server) handleChoosePath(c *gin.Context) {
	var req choosePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	state := stateFrom(c)
	if err := state.ChooseTopLevelPath(req.Path); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": state.Phase()})
}

type chooseSubPathRequest struct {
	SubPath models.SubPath `json:"sub_path"`
}

func (s *Server) handleChooseSubPath(c *gin.Context) {
	var req chooseSubPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	state := stateFrom(c)
	if err := state.ChooseSubPath(req.SubPath); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": state.Phase()})
}

type setLanguageRequest struct {
	Language models.Language `json:"language"`
}

func (s *Server) handleSetLanguage(c *gin.Context) {
	var req setLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	state := stateFrom(c)
	if err := state.SetLanguage(req.Language); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": state.Language()})
}

func (s *Server) handleBack(c *gin.Context) {
	state := stateFrom(c)
	if err := state.Back(); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": state.Phase()})
}

type finalizeRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleFinalize(c *gin.Context) {
	var req finalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	state := stateFrom(c)
	profile, err := state.Finalize(c.Request.Context(), req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":      profile,
		"theme":        state.Theme(),
		"chat_enabled": state.ChatEnabled(),
		"messages":     state.Transcript(),
	})
}

func (s *Server) handleProfile(c *gin.Context) {
	state := stateFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"phase":        state.Phase(),
		"language":     state.Language(),
		"profile":      state.Profile(),
		"theme":        state.Theme(),
		"chat_enabled": state.ChatEnabled(),
		"chat_state":   state.ChatState(),
	})
}

func (s *Server) handleTranscript(c *gin.Context) {
	state := stateFrom(c)
	c.JSON(http.StatusOK, gin.H{"messages": state.Transcript()})
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	state := stateFrom(c)
	result, err := state.SendMessage(c.Request.Context(), req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":  result.User,
		"reply": result.Reply,
	})
}

func (s *Server) handleSwitchSubPath(c *gin.Context) {
	var req chooseSubPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	state := stateFrom(c)
	if err := state.SwitchSubPath(c.Request.Context(), req.SubPath); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":      state.Profile(),
		"theme":        state.Theme(),
		"chat_enabled": state.ChatEnabled(),
		"messages":     state.Transcript(),
	})
}

func (s *Server) handleMarketplace(c *gin.Context) {
	state := stateFrom(c)
	c.JSON(http.StatusOK, gin.H{"items": state.Marketplace()})
}

func (s *Server) handleLogout(c *gin.Context) {
	state := stateFrom(c)
	state.Logout()
	s.dropSession(c.GetHeader(TokenHeader))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// fail maps core errors onto HTTP statuses: validation problems are 400,
// sequencing problems (wrong phase, busy chat, restarted session) are 409.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, app.ErrUnknownValue),
		errors.Is(err, app.ErrNameRequired),
		errors.Is(err, app.ErrSelectionIncomplete),
		errors.Is(err, app.ErrSubPathMismatch),
		errors.Is(err, chat.ErrEmptyMessage):
		status = http.StatusBadRequest
	case errors.Is(err, app.ErrWrongPhase),
		errors.Is(err, app.ErrSessionRestarted),
		errors.Is(err, chat.ErrSendInFlight),
		errors.Is(err, chat.ErrNotInitialized):
		status = http.StatusConflict
	default:
		s.logger.Error("request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
