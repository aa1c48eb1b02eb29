package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/flint-gui/simple-tools-mcp/internal/tools"
)

// emptyArguments replaces absent arguments so handlers always decode an
// object.
var emptyArguments = json.RawMessage("{}")

// dispatch resolves the method and, for tools/call, the tool name against
// the registry. Unknown methods and names are protocol errors reported in
// the uniform response shape; only tools/list responds with its own shape.
func (s *Server) dispatch(req *Request) any {
	switch req.Method {
	case "tools/list":
		return ListResult{Tools: s.toolList}

	case "tools/call":
		var params CallParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				// Malformed params are an unanticipated dispatch failure,
				// not a tool outcome, so they carry the server prefix.
				return tools.Errorf("Server error: %v", err)
			}
		}
		tool, ok := s.registry[params.Name]
		if !ok {
			return tools.Errorf("Unknown tool: %s", params.Name)
		}
		if params.Arguments == nil {
			params.Arguments = emptyArguments
		}
		return s.callTool(tool, params.Arguments)

	default:
		return tools.Errorf("Unknown method: %s", req.Method)
	}
}

// callTool is the single boundary that guarantees no handler failure ever
// escapes as an unhandled fault. Handlers report anticipated bad input
// themselves; an error return or a panic here is unanticipated and gets
// wrapped into the uniform error response. With a configured timeout the
// handler runs in its own goroutine and expiry produces the same uniform
// error rather than stalling the loop.
func (s *Server) callTool(tool Tool, args json.RawMessage) tools.Result {
	if s.callTimeout <= 0 {
		return s.invoke(context.Background(), tool, args)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.callTimeout)
	defer cancel()

	done := make(chan tools.Result, 1)
	go func() {
		done <- s.invoke(ctx, tool, args)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		slog.Warn("tool call timed out", "tool", tool.Name, "timeout", s.callTimeout)
		return tools.Errorf("Error executing tool %s: %v", tool.Name, ctx.Err())
	}
}

func (s *Server) invoke(ctx context.Context, tool Tool, args json.RawMessage) (res tools.Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from tool panic", "tool", tool.Name, "panic", r)
			res = tools.Errorf("Error executing tool %s: %v", tool.Name, r)
		}
	}()

	res, err := tool.Handler(ctx, args)
	if err != nil {
		return tools.Errorf("Error executing tool %s: %v", tool.Name, err)
	}
	return res
}
