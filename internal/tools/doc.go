// Package tools implements the five built-in tools exposed by the server:
// text_transform, calculate, system_info, file_operations and current_time.
//
// Every handler has the same shape:
//
//	func(ctx context.Context, args json.RawMessage) (Result, error)
//
// Anticipated bad input (an unknown operation, a rejected expression, a
// failed stat) is reported as a Result with IsError set and a message naming
// the offending value. The error return is reserved for faults the handler
// did not anticipate; the dispatch boundary in internal/server converts
// those into the same uniform shape.
//
// Handlers share no mutable state. Each invocation touches only its own
// arguments plus read-only host resources (clock, filesystem metadata), so
// they are safe to call concurrently even though the stdio transport is
// strictly sequential.
package tools
