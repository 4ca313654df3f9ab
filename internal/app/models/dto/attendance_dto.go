package dto

import "github.com/aymanebt/tptrack/internal/app/models"

// AttendanceBatchRequest carries one attendance-taking action: the class
// coordinates resolving the session plus the per-student statuses to apply.
// Date is a plain calendar date (YYYY-MM-DD).
type AttendanceBatchRequest struct {
	GroupID  int64                  `json:"groupId" binding:"required,min=1"`
	ModuleID int64                  `json:"moduleId" binding:"required,min=1"`
	Date     string                 `json:"date" binding:"required"`
	Entries  []PresenceEntryRequest `json:"entries" binding:"required,dive"`
}

// PresenceEntryRequest is one (student, status) pair of a batch
type PresenceEntryRequest struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	Status    string `json:"status" binding:"required"`
}

// AttendanceBatchResponse reports the session the batch was applied to
type AttendanceBatchResponse struct {
	SessionID int64 `json:"sessionId"`
	Applied   int   `json:"applied"`
}

// RosterEntry is one student of a group with the current status for a
// session; status is "Pending" when no record exists yet
type RosterEntry struct {
	StudentID int64                 `json:"studentId"`
	Name      string                `json:"name"`
	CNE       string                `json:"cne"`
	Status    models.PresenceStatus `json:"status"`
}

// RosterResponse is the attendance-taking view for a group and date
type RosterResponse struct {
	GroupID  int64         `json:"groupId"`
	ModuleID int64         `json:"moduleId"`
	Date     string        `json:"date"`
	Students []RosterEntry `json:"students"`
}
