package server

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"

	"github.com/flint-gui/simple-tools-mcp/internal/config"
	"github.com/flint-gui/simple-tools-mcp/internal/tools"
)

// asResult narrows a dispatch response to the uniform result shape.
func asResult(t *testing.T, resp any) tools.Result {
	t.Helper()
	res, ok := resp.(tools.Result)
	if !ok {
		t.Fatalf("expected tools.Result, got %T", resp)
	}
	if len(res.Content) == 0 {
		t.Fatal("result content must never be empty")
	}
	return res
}

func callParams(t *testing.T, name string, args map[string]interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{"name": name, "arguments": args})
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}
	return data
}

func TestHandle_ToolsList(t *testing.T) {
	s := New(config.Config{})
	resp := s.Handle(&Request{Method: "tools/list"})

	list, ok := resp.(ListResult)
	if !ok {
		t.Fatalf("tools/list must answer with the listing shape, got %T", resp)
	}
	if len(list.Tools) != len(DefaultTools()) {
		t.Fatalf("tools length: got %d, want %d", len(list.Tools), len(DefaultTools()))
	}

	seen := make(map[string]bool)
	for _, tool := range list.Tools {
		if seen[tool.Name] {
			t.Errorf("duplicate tool name %q", tool.Name)
		}
		seen[tool.Name] = true
	}
}

func TestHandle_UnknownMethod(t *testing.T) {
	s := New(config.Config{})
	res := asResult(t, s.Handle(&Request{Method: "resources/list"}))
	if !res.IsError {
		t.Fatal("unknown method must produce an error result")
	}
	testboil.AssertStringContains(t, res.Content[0].Text, "Unknown method: resources/list")
}

func TestHandle_UnknownTool(t *testing.T) {
	s := New(config.Config{})
	res := asResult(t, s.Handle(&Request{
		Method: "tools/call",
		Params: callParams(t, "nonexistent_tool", nil),
	}))
	if !res.IsError {
		t.Fatal("unknown tool must produce an error result")
	}
	testboil.AssertStringContains(t, res.Content[0].Text, "nonexistent_tool")
}

func TestHandle_CallSuccess(t *testing.T) {
	s := New(config.Config{})
	res := asResult(t, s.Handle(&Request{
		Method: "tools/call",
		Params: callParams(t, "text_transform", map[string]interface{}{
			"text":      "hello",
			"operation": "uppercase",
		}),
	}))
	if res.IsError {
		t.Fatalf("unexpected error result: %s", res.Content[0].Text)
	}
	testboil.FailTestIfDiff(t, res.Content[0].Text, "HELLO")
}

func TestHandle_MissingArguments(t *testing.T) {
	// Absent arguments decode as an empty object, which handlers then
	// report as their own validation failure.
	s := New(config.Config{})
	res := asResult(t, s.Handle(&Request{
		Method: "tools/call",
		Params: json.RawMessage(`{"name":"text_transform"}`),
	}))
	if !res.IsError {
		t.Fatal("expected validation error for missing arguments")
	}
	testboil.AssertStringContains(t, res.Content[0].Text, "Unknown operation")
}

func TestHandle_MalformedParams(t *testing.T) {
	// Params that are not an object fail dispatch itself, which reports
	// through the catch-all shape rather than as a tool outcome.
	s := New(config.Config{})
	res := asResult(t, s.Handle(&Request{
		Method: "tools/call",
		Params: json.RawMessage(`"not an object"`),
	}))
	if !res.IsError {
		t.Fatal("expected error result for malformed params")
	}
	testboil.AssertStringContains(t, res.Content[0].Text, "Server error: ")
}

func TestHandle_MissingParams(t *testing.T) {
	s := New(config.Config{})
	res := asResult(t, s.Handle(&Request{Method: "tools/call"}))
	if !res.IsError {
		t.Fatal("expected error result for missing params")
	}
	testboil.AssertStringContains(t, res.Content[0].Text, "Unknown tool")
}

func TestCallTool_WrapsHandlerError(t *testing.T) {
	s := New(config.Config{})
	// Wrongly typed arguments fail the handler's decode, which surfaces as
	// an unanticipated fault wrapped at the dispatch boundary.
	res := asResult(t, s.Handle(&Request{
		Method: "tools/call",
		Params: json.RawMessage(`{"name":"calculate","arguments":{"expression":42}}`),
	}))
	if !res.IsError {
		t.Fatal("expected error result")
	}
	testboil.AssertStringContains(t, res.Content[0].Text, "Error executing tool calculate")
}

func TestCallTool_RecoversPanic(t *testing.T) {
	s := New(config.Config{})
	panicky := Tool{
		Name: "panicky",
		Handler: func(context.Context, json.RawMessage) (tools.Result, error) {
			panic("boom")
		},
	}

	res := s.callTool(panicky, json.RawMessage(`{}`))
	if !res.IsError {
		t.Fatal("panicking handler must yield an error result")
	}
	testboil.AssertStringContains(t, res.Content[0].Text, "Error executing tool panicky")
	testboil.AssertStringContains(t, res.Content[0].Text, "boom")
}

func TestCallTool_Timeout(t *testing.T) {
	s := New(config.Config{CallTimeout: 20 * time.Millisecond})
	slow := Tool{
		Name: "slow",
		Handler: func(ctx context.Context, _ json.RawMessage) (tools.Result, error) {
			select {
			case <-time.After(5 * time.Second):
				return tools.Text("done"), nil
			case <-ctx.Done():
				return tools.Text("cancelled"), nil
			}
		},
	}

	start := time.Now()
	res := s.callTool(slow, json.RawMessage(`{}`))
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("timeout did not fire, call took %v", elapsed)
	}
	if !res.IsError {
		t.Fatal("timed-out call must yield an error result")
	}
	testboil.AssertStringContains(t, res.Content[0].Text, "Error executing tool slow")
}

func TestHandle_NilHandlerPanicIsAbsorbed(t *testing.T) {
	s := New(config.Config{})
	// A nil handler panics on invocation; the boundary must turn that into
	// the uniform error instead of crashing the loop.
	s.registry["broken"] = Tool{Name: "broken"}

	res := asResult(t, s.Handle(&Request{
		Method: "tools/call",
		Params: callParams(t, "broken", nil),
	}))
	if !res.IsError {
		t.Fatal("expected error result from nil handler")
	}
}
