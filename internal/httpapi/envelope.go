package httpapi

import "encoding/json"

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string `json:"status"`
	Code   string `json:"code,omitempty"`
	Data   any    `json:"data,omitempty"`
	Error  any    `json:"error,omitempty"`
	Meta   any    `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data any, meta any) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err any, meta any) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// messageRequest accepts both the messages-route and chat-route field names.
type messageRequest struct {
	Content string `json:"content"`
	Message string `json:"message"`
}

func (r messageRequest) text() string {
	if r.Content != "" {
		return r.Content
	}
	return r.Message
}

type clearMemoryRequest struct {
	Fields []string `json:"fields"`
}

type removeMemoryItemRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}
