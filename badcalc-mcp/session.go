package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fjl/badcalc/internal/calc"
)

// session is the calculator behind the MCP tools. Tool calls may arrive
// concurrently and are serialized by mu.
type session struct {
	mu     sync.Mutex
	calc   *calc.Calculator
	rand   calc.Rand
	logger *slog.Logger
}

// newSession creates a session. If r is nil, operators are picked using the
// global random source.
func newSession(logger *slog.Logger, r calc.Rand, opts ...calc.Option) *session {
	opts = append([]calc.Option{calc.WithRand(r)}, opts...)
	return &session{
		calc:   calc.New(opts...),
		rand:   r,
		logger: logger,
	}
}

// register adds the calculator tools to s.
func (sess *session) register(s *server.MCPServer) {
	pressTool := mcp.NewTool("press",
		mcp.WithDescription("Press calculator keys and return the display. "+
			"Keys: digits, '.', 'AC'/'C', '±'/'sign', '%', '+', '-', '×'/'*', '÷'/'/', '='. "+
			"Operators pick a random operation."),
		mcp.WithString("keys",
			mcp.Required(),
			mcp.Description("Keys to press, e.g. '24+6=' or 'AC 5 sign'"),
		),
	)
	s.AddTool(pressTool, sess.handlePress)

	displayTool := mcp.NewTool("display",
		mcp.WithDescription("Show the calculator display without pressing anything"),
	)
	s.AddTool(displayTool, sess.handleDisplay)

	randomTool := mcp.NewTool("random_calculate",
		mcp.WithDescription("Apply a randomly chosen operation (+, -, ×, ÷) to x and y"),
		mcp.WithNumber("x",
			mcp.Required(),
			mcp.Description("Left operand"),
		),
		mcp.WithNumber("y",
			mcp.Required(),
			mcp.Description("Right operand"),
		),
	)
	s.AddTool(randomTool, sess.handleRandomCalculate)
}

func (sess *session) handlePress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	input, ok := args["keys"].(string)
	if !ok {
		return mcp.NewToolResultError("keys is required"), nil
	}

	// Resolve all keys before pressing any of them.
	keys := calc.SplitKeys(input)
	parsed := make([]calc.Key, 0, len(keys))
	for _, name := range keys {
		k, err := calc.ParseKey(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		parsed = append(parsed, k)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	for _, k := range parsed {
		k.Apply(sess.calc)
	}
	sess.logger.Debug("keys pressed", "keys", keys, "display", sess.calc.Display())
	return mcp.NewToolResultText(sess.statusLocked()), nil
}

func (sess *session) handleDisplay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return mcp.NewToolResultText(sess.statusLocked()), nil
}

func (sess *session) handleRandomCalculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	x, ok := args["x"].(float64)
	if !ok {
		return mcp.NewToolResultError("x must be a number"), nil
	}
	y, ok := args["y"].(float64)
	if !ok {
		return mcp.NewToolResultError("y must be a number"), nil
	}

	sess.mu.Lock()
	result := calc.RandomCalculate(sess.rand, x, y)
	sess.mu.Unlock()

	sess.logger.Debug("random calculation", "x", x, "y", y, "result", result)
	return mcp.NewToolResultText(calc.FormatNumber(result)), nil
}

// statusLocked describes the calculator state. It must be called with mu held.
func (sess *session) statusLocked() string {
	var b strings.Builder
	fmt.Fprintf(&b, "display: %s\n", sess.calc.Display())
	fmt.Fprintf(&b, "clear: %s\n", sess.calc.ClearLabel())
	if op, ok := sess.calc.Pending(); ok {
		fmt.Fprintf(&b, "pending: %s\n", op)
	}
	return b.String()
}
