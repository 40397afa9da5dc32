package api

// QueryResponse represents the standard response format
type QueryResponse struct {
	Height int64       `json:"height"`
	Data   interface{} `json:"data"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  uint32 `json:"code,omitempty"`
}
