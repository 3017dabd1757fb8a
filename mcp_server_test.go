package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMCPServer(t *testing.T) *MCPServer {
	t.Helper()
	cfg := defaultConfig()
	cfg.SavePath = filepath.Join(t.TempDir(), DefaultSavePath)
	cfg.Seed = 1
	s, err := NewMCPServer(cfg, gameDeps{})
	require.NoError(t, err)
	return s
}

func TestHandlePlaySession(t *testing.T) {
	s := newTestMCPServer(t)
	ctx := context.Background()

	_, out, err := s.HandlePlay(ctx, nil, &PlayInput{Input: "door"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "You stumble in the darkness.")
	assert.Contains(t, out.Output, "Game Over!")
	assert.Equal(t, "GameOver", out.State.State)
	assert.True(t, out.State.AwaitingInput)

	_, out, err = s.HandlePlay(ctx, nil, &PlayInput{Input: "no"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Thanks for playing!")
	assert.False(t, out.State.IsPlaying)

	_, out, err = s.HandlePlay(ctx, nil, &PlayInput{Input: "1"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "The run is over.")
}

func TestHandlePlayReset(t *testing.T) {
	s := newTestMCPServer(t)
	ctx := context.Background()

	_, _, err := s.HandlePlay(ctx, nil, &PlayInput{Input: "x"})
	require.NoError(t, err)

	shop := true
	seed := int64(7)
	_, out, err := s.HandlePlay(ctx, nil, &PlayInput{Reset: true, Seed: &seed, Shop: &shop})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Welcome to the item shop!")
	assert.Equal(t, "Purchase", out.State.State)
	assert.True(t, out.State.IsPlaying)

	_, out, err = s.HandlePlay(ctx, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, out.Output, "The shopkeeper looks confused.")
	assert.Contains(t, []string{"Room2", "Purchase", "Win", "GameOver"}, out.State.State)
}

func TestHandlePlaySaves(t *testing.T) {
	s := newTestMCPServer(t)
	ctx := context.Background()

	_, _, err := s.HandlePlay(ctx, nil, &PlayInput{Input: "nope"})
	require.NoError(t, err)
	_, out, err := s.HandlePlay(ctx, nil, &PlayInput{Input: "yes"})
	require.NoError(t, err)
	assert.Len(t, out.State.KeyCode, KeyCodeDigits)
	assert.FileExists(t, s.game.SavePath)
}

func TestGuard(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name    string
		origins []string
		token   string
		origin  string
		auth    string
		want    int
	}{
		{"no origin header", nil, "", "", "", http.StatusOK},
		{"default localhost origin", nil, "", "http://localhost", "", http.StatusOK},
		{"foreign origin", nil, "", "http://evil.example", "", http.StatusForbidden},
		{"configured origin", []string{"http://app.example"}, "", "http://app.example", "", http.StatusOK},
		{"missing token", nil, "s3cret", "", "", http.StatusUnauthorized},
		{"wrong token", nil, "s3cret", "", "Bearer nope", http.StatusUnauthorized},
		{"good token", nil, "s3cret", "", "Bearer s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			guard(ok, tt.origins, tt.token).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestMCPHandlerRoutesThroughGuard(t *testing.T) {
	s := newTestMCPServer(t)
	cfg := defaultConfig()
	cfg.MCPPath = "mcp/"

	h := newMCPHandler(s, cfg)

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/elsewhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMCPRoute(t *testing.T) {
	for in, want := range map[string]string{
		"mcp":   "/mcp",
		"/mcp":  "/mcp",
		"mcp/":  "/mcp",
		"":      "/",
		"/a/b/": "/a/b",
	} {
		assert.Equal(t, want, mcpRoute(in), "path %q", in)
	}
}
