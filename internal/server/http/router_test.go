package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"saathi/internal/agent"
	"saathi/internal/auth"
	"saathi/internal/observability"
	"saathi/internal/server/app"
	"saathi/internal/session"
	"saathi/internal/task"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	metrics, err := observability.NewMetricsCollector(false)
	require.NoError(t, err)

	taskService := task.NewService(task.NewMemoryRepository(), nil)
	authService := auth.NewService(
		auth.NewMemoryStore(),
		auth.NewTokenManager("test-secret", "saathi", time.Hour),
		nil,
	)
	engine := agent.NewEngine(task.NewAgentStore(taskService, nil))
	chatService := app.NewChatService(engine, session.NewMemoryStore(), 20, metrics, nil, nil)

	return NewRouter(RouterDeps{
		AuthService: authService,
		TaskService: taskService,
		ChatService: chatService,
		Metrics:     metrics,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "error: %s", envelope.Error)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func registerUser(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "a strong password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeData(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	token := registerUser(t, router, "aisha@example.com")

	// Duplicate registration conflicts.
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "aisha@example.com",
		"password": "a strong password",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "aisha@example.com",
		"password": "a strong password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "aisha@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Email string `json:"email"`
	}
	decodeData(t, rec, &me)
	require.Equal(t, "aisha@example.com", me.Email)
}

func TestRequiresAuth(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	for _, path := range []string{"/api/auth/me", "/api/tasks", "/api/chat/history"} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/tasks", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTaskCRUD(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := registerUser(t, router, "tasks@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/tasks", token, map[string]string{"description": "buy groceries"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created task.Task
	decodeData(t, rec, &created)
	require.Equal(t, "buy groceries", created.Description)

	rec = doJSON(t, router, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []task.Task
	decodeData(t, rec, &listed)
	require.Len(t, listed, 1)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), token, map[string]string{"description": "buy vegetables"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/toggle", created.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled task.Task
	decodeData(t, rec, &toggled)
	require.True(t, toggled.IsComplete)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/tasks/%d", created.ID), token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := registerUser(t, router, "chat@example.com")

	send := func(message string) app.ChatResponse {
		rec := doJSON(t, router, http.MethodPost, "/api/chat", token, map[string]string{"message": message})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp app.ChatResponse
		decodeData(t, rec, &resp)
		return resp
	}

	created := send("add a task to buy groceries")
	require.True(t, created.ActionPerformed)
	require.Contains(t, created.Reply, "buy groceries")

	listed := send("show my tasks")
	require.True(t, listed.ActionPerformed)
	require.Contains(t, listed.Reply, "buy groceries")

	// Deletion asks for confirmation first, then acts on "yes".
	asked := send("delete task 1")
	require.False(t, asked.ActionPerformed)
	require.Contains(t, asked.Reply, "Are you sure")

	confirmed := send("yes")
	require.True(t, confirmed.ActionPerformed)
	require.Contains(t, confirmed.Reply, "Successfully deleted task 1")

	rec := doJSON(t, router, http.MethodGet, "/api/chat/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []session.Turn
	decodeData(t, rec, &history)
	require.Len(t, history, 8)
	require.Equal(t, "add a task to buy groceries", history[0].Content)
}

func TestChatUrdu(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := registerUser(t, router, "urdu@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/chat", token, map[string]string{"message": "دودھ خریدنا شامل کریں"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp app.ChatResponse
	decodeData(t, rec, &resp)
	require.Equal(t, "ur", resp.Language)
	require.True(t, resp.ActionPerformed)
}
