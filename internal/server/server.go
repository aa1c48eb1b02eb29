package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/flint-gui/simple-tools-mcp/internal/config"
	"github.com/flint-gui/simple-tools-mcp/internal/tools"
)

// Server dispatches tool requests. The registry is built once in New and
// never mutated afterwards.
type Server struct {
	registry    map[string]Tool
	toolList    []Tool
	callTimeout time.Duration
	debug       bool
}

// Request is one incoming line on the wire.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// CallParams carries the payload of a tools/call request.
type CallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ListResult is the tools/list response. Its shape is intentionally distinct
// from the uniform {content, isError} shape: listing returns descriptors,
// not a text result, and clients depend on that asymmetry.
type ListResult struct {
	Tools []Tool `json:"tools"`
}

// New builds a server from cfg. Tools named in cfg.DisabledTools are left
// out of the registry entirely, so they neither list nor resolve.
func New(cfg config.Config) *Server {
	s := &Server{
		registry:    make(map[string]Tool),
		toolList:    make([]Tool, 0, len(DefaultTools())),
		callTimeout: cfg.CallTimeout,
		debug:       cfg.Debug,
	}
	for _, tool := range DefaultTools() {
		if cfg.ToolDisabled(tool.Name) {
			continue
		}
		s.registry[tool.Name] = tool
		s.toolList = append(s.toolList, tool)
	}
	return s
}

// Run reads newline-delimited JSON requests from in until EOF and writes
// exactly one JSON response line per non-empty input line to out. Responses
// are written unbuffered so clients observe them immediately. Malformed
// input never stops the loop; only end of input or a write failure does.
func (s *Server) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			if s.debug {
				slog.Debug("rejected malformed request line", "error", err)
			}
			if err := encoder.Encode(tools.Errorf("Invalid JSON request")); err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
			continue
		}

		resp := s.Handle(&req)
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// Handle routes one parsed request and returns either a ListResult or a
// tools.Result. Any panic escaping the dispatcher is converted to the
// uniform "Server error" response so one bad request can never take the
// loop down.
func (s *Server) Handle(req *Request) (resp any) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from dispatch panic", "method", req.Method, "panic", r)
			resp = tools.Errorf("Server error: %v", r)
		}
	}()

	if s.debug {
		slog.Debug("handling request", "method", req.Method)
	}
	return s.dispatch(req)
}
