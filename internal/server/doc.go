// Package server implements the tool-invocation server: the transport loop,
// the dispatcher, and the static tool registry.
//
// # Protocol
//
// The stdio transport reads one JSON object per line from stdin and writes
// one JSON object per line to stdout, flushed per line. Logging goes to
// stderr; stdout carries only protocol.
//
// Supported methods:
//   - tools/list: enumerate available tool descriptors
//   - tools/call: execute a tool with arguments
//
// Request shapes:
//
//	{"method": "tools/list"}
//	{"method": "tools/call", "params": {"name": "<tool>", "arguments": {...}}}
//
// tools/list answers with {"tools": [...]}; every other outcome, success or
// failure, uses the uniform shape
//
//	{"content": [{"type": "text", "text": "<string>"}], "isError": bool}
//
// so a client parsing stdout only ever branches on isError. A line that is
// not valid JSON yields the uniform "Invalid JSON request" error and the
// loop keeps reading.
//
// # Dispatch boundary
//
// callTool is the single point that resolves a name to a handler and
// guarantees no handler fault escapes: handler error returns and panics are
// both converted into "Error executing tool <name>: <message>". Handlers
// report anticipated bad input themselves, so that wrapper only fires for
// the unexpected. An optional per-call timeout (off by default) converts a
// stalled handler into the same uniform error instead of stalling the loop.
//
// # HTTP transport
//
// Router exposes the same dispatcher over HTTP (GET /health,
// GET /mcp/tools, POST /mcp/call) with identical response shapes and an
// optional bearer token on the /mcp routes.
//
// Requests are processed strictly one at a time per transport; nothing is
// shared between cycles except the read-only registry.
package server
