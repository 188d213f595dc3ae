package types

// ConvertRequest represents a unit conversion request
type ConvertRequest struct {
	Category  string  `json:"category" binding:"required"`
	From      string  `json:"from" binding:"required"`
	To        string  `json:"to" binding:"required"`
	Value     string  `json:"value" binding:"required"`
	Precision *int    `json:"precision,omitempty"`
	SessionID *string `json:"session_id,omitempty"`
}

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID    string                 `json:"tool_id" binding:"required"`
	Params    map[string]interface{} `json:"params" binding:"required"`
	SessionID *string                `json:"session_id,omitempty"`
}

// DiscoverRequest represents a service discovery request
type DiscoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit,omitempty"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}
