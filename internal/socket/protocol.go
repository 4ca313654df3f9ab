// Package socket implements the legacy JSON-over-TCP protocol the first
// desktop clients speak: one request per connection, a flat JSON object
// selected by its "action" field.
package socket

import (
	"encoding/json"
	"io"
)

// Protocol actions
const (
	ActionGetStudents   = "GET_STUDENTS"
	ActionMarkPresence  = "MARK_PRESENCE"
	ActionPostTP        = "POST_TP"
	ActionGetMyTPs      = "GET_MY_TPS"
	ActionSubmitRapport = "SUBMIT_RAPPORT"
)

// Response statuses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Request is the flat legacy request envelope; which fields matter depends
// on the action
type Request struct {
	Action string `json:"action"`

	GroupID      int64  `json:"group_id,omitempty"`
	ModuleID     int64  `json:"module_id,omitempty"`
	InstructorID int64  `json:"instructor_id,omitempty"`
	StudentID    int64  `json:"student_id,omitempty"`
	CNE          string `json:"cne,omitempty"`
	Status       string `json:"status,omitempty"`
	Date         string `json:"date,omitempty"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	TPID        int64  `json:"tp_id,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Response is the legacy response envelope
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK builds a success response
func OK(data any) Response {
	return Response{Status: StatusOK, Data: data}
}

// Error builds an error response
func Error(message string) Response {
	return Response{Status: StatusError, Message: message}
}

// ReadRequest decodes one request from r
func ReadRequest(r io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// WriteResponse encodes one response to w
func WriteResponse(w io.Writer, resp Response) error {
	return json.NewEncoder(w).Encode(resp)
}
