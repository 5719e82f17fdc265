package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mystudbud/studbud/internal/provider"
	"github.com/mystudbud/studbud/internal/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type client struct {
	t     *testing.T
	srv   *server.Server
	token string
}

func newClient(t *testing.T, p provider.ChatProvider) *client {
	t.Helper()
	c := &client{t: t, srv: server.New(p, nil)}

	w := c.do(http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	c.token = c.body(w)["token"].(string)
	require.NotEmpty(t, c.token)
	return c
}

func (c *client) do(method, path string, payload any) *httptest.ResponseRecorder {
	c.t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(c.t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(server.TokenHeader, c.token)
	}

	w := httptest.NewRecorder()
	c.srv.Router().ServeHTTP(w, req)
	return w
}

func (c *client) body(w *httptest.ResponseRecorder) map[string]any {
	c.t.Helper()
	var out map[string]any
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (c *client) onboard(subPath string) {
	c.t.Helper()
	path := "ACADEMIC"
	if subPath == "BCS_PUBLIC" || subPath == "PRIVATE_JOB" || subPath == "MILITARY" || subPath == "SKILL_ABROAD" {
		path = "JOB_PREP"
	}
	require.Equal(c.t, http.StatusOK, c.do(http.MethodPost, "/api/onboarding/path", gin.H{"path": path}).Code)
	require.Equal(c.t, http.StatusOK, c.do(http.MethodPost, "/api/onboarding/subpath", gin.H{"sub_path": subPath}).Code)
	require.Equal(c.t, http.StatusOK, c.do(http.MethodPost, "/api/onboarding/finalize", gin.H{"name": "Alia"}).Code)
}

func TestHealth(t *testing.T) {
	c := &client{t: t, srv: server.New(provider.NewMockProvider(), nil)}
	w := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMissingOrUnknownToken(t *testing.T) {
	c := &client{t: t, srv: server.New(provider.NewMockProvider(), nil)}

	w := c.do(http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c.token = "not-a-real-token"
	w = c.do(http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOnboardingAndChatFlow(t *testing.T) {
	p := provider.NewMockProvider()
	p.ReplyFn = func(text string) string { return "re: " + text }
	c := newClient(t, p)

	w := c.do(http.MethodPost, "/api/onboarding/path", gin.H{"path": "ACADEMIC"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "details", c.body(w)["phase"])

	w = c.do(http.MethodPost, "/api/onboarding/subpath", gin.H{"sub_path": "KINDERGARTEN"})
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPost, "/api/onboarding/finalize", gin.H{"name": "Alia"})
	require.Equal(t, http.StatusOK, w.Code)
	body := c.body(w)
	assert.Equal(t, "FUN", body["theme"])
	assert.Equal(t, true, body["chat_enabled"])
	assert.Len(t, body["messages"], 1)

	w = c.do(http.MethodPost, "/api/messages", gin.H{"text": "hello!"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := c.body(w)["reply"].(map[string]any)
	assert.Equal(t, "re: hello!", reply["text"])

	w = c.do(http.MethodGet, "/api/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, c.body(w)["messages"], 3)

	w = c.do(http.MethodGet, "/api/marketplace", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, c.body(w)["items"], 1)
}

func TestValidationAndSequencingStatuses(t *testing.T) {
	c := newClient(t, provider.NewMockProvider())

	// finalize before any selection: wrong phase
	w := c.do(http.MethodPost, "/api/onboarding/finalize", gin.H{"name": "Alia"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// cross-family sub-path: validation error
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/onboarding/path", gin.H{"path": "ACADEMIC"}).Code)
	w = c.do(http.MethodPost, "/api/onboarding/subpath", gin.H{"sub_path": "BCS_PUBLIC"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// empty name
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/onboarding/subpath", gin.H{"sub_path": "PRIMARY"}).Code)
	w = c.do(http.MethodPost, "/api/onboarding/finalize", gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwitchSubPathEndpoint(t *testing.T) {
	p := provider.NewMockProvider()
	c := newClient(t, p)
	c.onboard("KINDERGARTEN")

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/messages", gin.H{"text": "hi"}).Code)

	w := c.do(http.MethodPost, "/api/subpath", gin.H{"sub_path": "PRIMARY"})
	require.Equal(t, http.StatusOK, w.Code)
	body := c.body(w)
	assert.Equal(t, "LEARNING", body["theme"])
	assert.Len(t, body["messages"], 1, "transcript resets on persona switch")

	w = c.do(http.MethodPost, "/api/subpath", gin.H{"sub_path": "MILITARY"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatDisabledWithoutProvider(t *testing.T) {
	c := newClient(t, nil)
	c.onboard("BCS_PUBLIC")

	w := c.do(http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := c.body(w)
	assert.Equal(t, false, body["chat_enabled"])
	assert.Equal(t, "PROFESSIONAL", body["theme"])

	w = c.do(http.MethodPost, "/api/messages", gin.H{"text": "anyone?"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	c := newClient(t, provider.NewMockProvider())
	c.onboard("PRIMARY")

	w := c.do(http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
