package entity

// ToolCall represents the model's request to execute a tool.
type ToolCall struct {
	// ID is the vendor-assigned identifier for the call.
	ID string `json:"id"`
	// Name is the tool name to invoke.
	Name string `json:"name"`
	// Arguments holds the decoded tool arguments.
	Arguments map[string]interface{} `json:"arguments"`
}

// ToolResult represents the outcome of one tool call.
type ToolResult struct {
	// ToolCallID pairs the result with the call that produced it.
	ToolCallID string `json:"tool_call_id"`
	// Success reports whether the handler completed without error.
	Success bool `json:"success"`
	// Result is the handler's payload on success.
	Result interface{} `json:"result,omitempty"`
	// Error is the failure message when Success is false.
	Error string `json:"error,omitempty"`
}

// FailedResult builds a failed ToolResult for the given call.
func FailedResult(callID, msg string) *ToolResult {
	return &ToolResult{ToolCallID: callID, Success: false, Error: msg}
}

// OKResult builds a successful ToolResult for the given call.
func OKResult(callID string, payload interface{}) *ToolResult {
	return &ToolResult{ToolCallID: callID, Success: true, Result: payload}
}
