package server

import "github.com/flint-gui/simple-tools-mcp/internal/tools"

// Tool pairs a tool's advertised descriptor with its handler. The handler
// never goes over the wire.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`

	Handler tools.Handler `json:"-"`
}

// DefaultTools returns the descriptors and handlers for every built-in
// tool. The schemas are descriptive metadata for clients; argument validity
// is enforced inside each handler.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "text_transform",
			Description: "Transform text using various operations (uppercase, lowercase, reverse, etc.)",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "The text to transform",
					},
					"operation": map[string]interface{}{
						"type":        "string",
						"description": "The operation to perform",
						"enum":        []string{"uppercase", "lowercase", "reverse", "capitalize", "title", "count_words", "count_chars"},
					},
				},
				"required": []string{"text", "operation"},
			},
			Handler: tools.TextTransform,
		},
		{
			Name:        "calculate",
			Description: "Perform mathematical calculations",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"expression": map[string]interface{}{
						"type":        "string",
						"description": "Mathematical expression to evaluate (e.g., '2 + 3 * 4')",
					},
				},
				"required": []string{"expression"},
			},
			Handler: tools.Calculate,
		},
		{
			Name:        "system_info",
			Description: "Get system information",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"info_type": map[string]interface{}{
						"type":        "string",
						"description": "Type of system information to retrieve",
						"enum":        []string{"platform", "cpu", "memory", "disk", "network", "processes", "uptime"},
					},
				},
				"required": []string{"info_type"},
			},
			Handler: tools.SystemInfo,
		},
		{
			Name:        "file_operations",
			Description: "Basic file operations (list, read, write)",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"operation": map[string]interface{}{
						"type":        "string",
						"description": "File operation to perform",
						"enum":        []string{"list", "read", "write", "exists", "size"},
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "File or directory path",
					},
					"content": map[string]interface{}{
						"type":        "string",
						"description": "Content to write (only for write operation)",
					},
				},
				"required": []string{"operation", "path"},
			},
			Handler: tools.FileOperations,
		},
		{
			Name:        "current_time",
			Description: "Get current date and time information",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"format": map[string]interface{}{
						"type":        "string",
						"description": "Time format (iso, human, timestamp, custom)",
						"enum":        []string{"iso", "human", "timestamp", "custom"},
					},
					"timezone": map[string]interface{}{
						"type":        "string",
						"description": "IANA timezone name (default: local)",
						"default":     "local",
					},
					"custom_format": map[string]interface{}{
						"type":        "string",
						"description": "Go reference layout, e.g. '2006-01-02 15:04:05' (for custom format type)",
					},
				},
				"required": []string{"format"},
			},
			Handler: tools.CurrentTime,
		},
	}
}
