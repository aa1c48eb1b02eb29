package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"

	"github.com/flint-gui/simple-tools-mcp/internal/config"
)

func TestNew(t *testing.T) {
	s := New(config.Config{})
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if len(s.registry) != len(DefaultTools()) {
		t.Fatalf("registry size: got %d, want %d", len(s.registry), len(DefaultTools()))
	}
	if len(s.toolList) != len(s.registry) {
		t.Fatalf("tool list and registry out of sync: %d vs %d", len(s.toolList), len(s.registry))
	}
}

func TestNew_DisabledTools(t *testing.T) {
	s := New(config.Config{DisabledTools: []string{"calculate", "system_info"}})

	if len(s.toolList) != len(DefaultTools())-2 {
		t.Fatalf("tool list size: got %d, want %d", len(s.toolList), len(DefaultTools())-2)
	}
	if _, ok := s.registry["calculate"]; ok {
		t.Error("calculate should not be registered")
	}

	resp := s.Handle(&Request{Method: "tools/call", Params: json.RawMessage(`{"name":"calculate","arguments":{"expression":"1+1"}}`)})
	res := asResult(t, resp)
	if !res.IsError {
		t.Fatal("disabled tool should resolve as unknown")
	}
	testboil.AssertStringContains(t, res.Content[0].Text, "Unknown tool: calculate")
}

// runLines feeds input lines through the transport loop and returns the
// output lines.
func runLines(t *testing.T, s *Server, input string) []string {
	t.Helper()
	var out bytes.Buffer
	if err := s.Run(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	trimmed := strings.TrimSuffix(out.String(), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestRun_OneResponsePerLine(t *testing.T) {
	s := New(config.Config{})
	input := `{"method":"tools/list"}
{"method":"tools/call","params":{"name":"calculate","arguments":{"expression":"2 + 3 * 4"}}}
{"method":"nope"}
`
	lines := runLines(t, s, input)
	if len(lines) != 3 {
		t.Fatalf("expected 3 response lines, got %d: %q", len(lines), lines)
	}

	testboil.AssertStringContains(t, lines[0], `"tools"`)
	testboil.AssertStringContains(t, lines[1], "2 + 3 * 4 = 14")
	testboil.AssertStringContains(t, lines[2], "Unknown method: nope")
}

func TestRun_MalformedLine(t *testing.T) {
	s := New(config.Config{})
	input := "{not json\n" + `{"method":"tools/list"}` + "\n"

	lines := runLines(t, s, input)
	if len(lines) != 2 {
		t.Fatalf("expected 2 response lines, got %d: %q", len(lines), lines)
	}

	// Exact uniform parse-error line, then the loop accepts the next line.
	testboil.FailTestIfDiff(t, lines[0], `{"content":[{"type":"text","text":"Invalid JSON request"}],"isError":true}`)
	testboil.AssertStringContains(t, lines[1], `"tools"`)
}

func TestRun_SkipsEmptyLines(t *testing.T) {
	s := New(config.Config{})
	input := "\n   \n" + `{"method":"tools/list"}` + "\n\n"

	lines := runLines(t, s, input)
	if len(lines) != 1 {
		t.Fatalf("expected 1 response line, got %d: %q", len(lines), lines)
	}
}

func TestRun_TerminatesOnEOF(t *testing.T) {
	s := New(config.Config{})
	var out bytes.Buffer
	if err := s.Run(strings.NewReader(""), &out); err != nil {
		t.Fatalf("Run on empty input returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output for empty input, got %q", out.String())
	}
}

func TestRun_SuccessOmitsIsError(t *testing.T) {
	s := New(config.Config{})
	lines := runLines(t, s, `{"method":"tools/call","params":{"name":"calculate","arguments":{"expression":"1+1"}}}`+"\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 response line, got %d", len(lines))
	}
	if strings.Contains(lines[0], "isError") {
		t.Errorf("success response should omit isError: %s", lines[0])
	}
}
