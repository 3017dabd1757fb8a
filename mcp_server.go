package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"slices"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type PlayInput struct {
	Input string `json:"input" jsonschema:"Line of input for the current prompt"`
	Reset bool   `json:"reset,omitempty" jsonschema:"Start a new run before applying the input"`
	Seed  *int64 `json:"seed,omitempty" jsonschema:"Seed to use when resetting the run"`
	Shop  *bool  `json:"shop,omitempty" jsonschema:"Start the reset run in the item shop"`
}

type PlayOutput struct {
	Output string      `json:"output" jsonschema:"Raw game output"`
	State  GameSummary `json:"state" jsonschema:"Summary of the current game state"`
}

type MCPServer struct {
	mu   sync.Mutex
	game *Game
	cfg  Config
	deps gameDeps
}

func NewMCPServer(cfg *Config, deps gameDeps) (*MCPServer, error) {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	s := &MCPServer{cfg: *cfg, deps: deps}
	if _, err := s.reset(s.cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// reset replaces the session and returns what the new game printed on entry.
func (s *MCPServer) reset(cfg Config) (string, error) {
	var buf bytes.Buffer
	g, err := openGame(&cfg, s.deps, nil, &buf)
	if err != nil {
		return "", err
	}
	g.Out = io.Discard
	s.game = g
	return buf.String(), nil
}

// ExecuteCommand feeds one line to g and returns whatever the game printed.
func ExecuteCommand(g *Game, input string) (string, GameSummary, error) {
	var buf bytes.Buffer
	prevOut := g.Out
	g.Out = &buf
	defer func() {
		g.Out = prevOut
	}()

	if err := g.Feed(input); err != nil {
		if !errors.Is(err, errRunOver) {
			return buf.String(), SummarizeState(g), err
		}
		buf.WriteString("The run is over. Reset to play again.\n")
	}
	return buf.String(), SummarizeState(g), nil
}

func (s *MCPServer) HandlePlay(_ context.Context, _ *mcp.CallToolRequest, input *PlayInput) (*mcp.CallToolResult, *PlayOutput, error) {
	if input == nil {
		input = &PlayInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Reset {
		cfg := s.cfg
		if input.Seed != nil {
			cfg.Seed = *input.Seed
		}
		if input.Shop != nil {
			cfg.Shop = *input.Shop
		}
		output, err := s.reset(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("reset: %w", err)
		}
		return nil, &PlayOutput{
			Output: output,
			State:  SummarizeState(s.game),
		}, nil
	}

	output, summary, err := ExecuteCommand(s.game, input.Input)
	if err != nil {
		s.deps.Log.Error("play failed", zap.Error(err))
		return nil, nil, err
	}
	return nil, &PlayOutput{
		Output: output,
		State:  summary,
	}, nil
}

// newMCPHandler exposes the play tool over streamable HTTP at cfg.MCPPath,
// behind guard.
func newMCPHandler(server *MCPServer, cfg *Config) http.Handler {
	tools := mcp.NewServer(&mcp.Implementation{Name: "threedoors", Version: "v1.0.0"}, nil)
	mcp.AddTool(tools, &mcp.Tool{
		Name:        "play",
		Description: "Send one line of input to the three doors game and return its output plus a state summary.",
	}, server.HandlePlay)

	stream := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return tools },
		&mcp.StreamableHTTPOptions{
			Stateless:    cfg.MCPStateless,
			JSONResponse: cfg.MCPJSON,
			Logger:       slog.Default(),
		})

	mux := http.NewServeMux()
	mux.Handle(mcpRoute(cfg.MCPPath), guard(stream, cfg.MCPOrigins.Values(), cfg.MCPToken))
	return mux
}

func mcpRoute(p string) string {
	return path.Clean("/" + p)
}

func RunMCPHTTP(server *MCPServer, cfg *Config) error {
	server.deps.Log.Info("mcp server listening",
		zap.String("addr", cfg.MCPAddr),
		zap.String("path", mcpRoute(cfg.MCPPath)))
	return (&http.Server{Addr: cfg.MCPAddr, Handler: newMCPHandler(server, cfg)}).ListenAndServe()
}

// loopbackOrigins are accepted when no origins are configured.
var loopbackOrigins = []string{"http://localhost", "http://127.0.0.1"}

// guard rejects requests from origins outside the allow list and, when a
// token is set, requests without the matching bearer token. Requests that
// carry no Origin header are not browser requests and pass the origin check.
func guard(next http.Handler, origins []string, token string) http.Handler {
	if len(origins) == 0 {
		origins = loopbackOrigins
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && !slices.Contains(origins, origin) {
			http.Error(w, "Forbidden origin", http.StatusForbidden)
			return
		}
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
