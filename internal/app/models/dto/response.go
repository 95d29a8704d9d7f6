package dto

import "time"

// APIResponse is the standard envelope for successful API payloads
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in the standard success envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// MessageResponse is the legacy `{"message": "..."}` body many endpoints
// return on success.
type MessageResponse struct {
	Message string `json:"message" example:"Mentorship added successfully"`
}

// NewMessageResponse creates a legacy message body
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// TotalResponse carries a single count for the dashboard stat endpoints
type TotalResponse struct {
	Total int64 `json:"total" example:"42"`
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"48"`
}
