package dto

import "time"

// CreateAssignmentRequest represents the multipart form publishing a TP;
// the subject file arrives as the "file" form part
type CreateAssignmentRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Deadline    string `form:"deadline" binding:"required"` // RFC 3339 or YYYY-MM-DD
	ModuleID    int64  `form:"moduleId" binding:"required,min=1"`
	GroupID     int64  `form:"groupId" binding:"required,min=1"`
}

// AssignmentResponse represents a published TP
type AssignmentResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	ModuleID    int64     `json:"moduleId"`
	GroupID     int64     `json:"groupId"`
	PublishedAt time.Time `json:"publishedAt"`
	HasFile     bool      `json:"hasFile"`
	FileName    string    `json:"fileName,omitempty"`
}

// SubmitReportRequest represents a student report submission (cloud link)
type SubmitReportRequest struct {
	Link string `json:"link" binding:"required,url"`
}

// SubmissionResponse represents one submitted report
type SubmissionResponse struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"studentId"`
	StudentName string    `json:"studentName,omitempty"`
	CNE         string    `json:"cne,omitempty"`
	Link        string    `json:"link"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// CreateAnnouncementRequest represents a new announcement
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	GroupID  int64  `json:"groupId" binding:"required,min=1"`
	ModuleID int64  `json:"moduleId" binding:"required,min=1"`
}
