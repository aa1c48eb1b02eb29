package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Content is one item of a tool result. This server only ever emits text
// items, but the type tag stays on the wire for client compatibility.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the uniform response shape shared by every tool invocation
// outcome, success or failure. Content is never empty; IsError is true iff
// the operation did not complete its intended effect.
type Result struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Handler executes one tool with raw JSON arguments.
type Handler func(ctx context.Context, args json.RawMessage) (Result, error)

// Text wraps a plain string in a success Result.
func Text(text string) Result {
	return Result{Content: []Content{{Type: "text", Text: text}}}
}

// Textf is Text with fmt.Sprintf formatting.
func Textf(format string, a ...any) Result {
	return Text(fmt.Sprintf(format, a...))
}

// Errorf builds an error Result with a formatted message.
func Errorf(format string, a ...any) Result {
	return Result{
		Content: []Content{{Type: "text", Text: fmt.Sprintf(format, a...)}},
		IsError: true,
	}
}
