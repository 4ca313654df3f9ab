package models

import (
	"time"
)

// Session defines one class meeting (séance), the unit attendance is recorded
// against, based on the 'sessions' table.
//
// SessionDate is the calendar date derived from StartAt; together with
// (InstructorID, GroupID, ModuleID) it forms the natural key — at most one
// session exists per instructor/group/module/day, enforced by a unique
// constraint so concurrent resolution cannot create duplicates.
type Session struct {
	ID           int64     `json:"id" db:"id"`
	StartAt      time.Time `json:"startAt" db:"start_at"`
	EndAt        time.Time `json:"endAt" db:"end_at"`
	Room         string    `json:"room" db:"room"`
	ModuleID     int64     `json:"moduleId" db:"module_id"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	GroupID      int64     `json:"groupId" db:"group_id"`
	SessionDate  time.Time `json:"sessionDate" db:"session_date"`
}

// Default time window for sessions materialized on first attendance taking.
const (
	DefaultSessionStartHour = 8
	DefaultSessionDuration  = 2 * time.Hour
	DefaultSessionRoom      = "TBD"
)

// Presence defines one student's attendance status for one session, based on
// the 'presences' table. (SessionID, StudentID) is unique; re-marking updates
// the row in place.
type Presence struct {
	ID        int64          `json:"id" db:"id"`
	SessionID int64          `json:"sessionId" db:"session_id"`
	StudentID int64          `json:"studentId" db:"student_id"`
	Status    PresenceStatus `json:"status" db:"status"`
	MarkedAt  time.Time      `json:"markedAt" db:"marked_at"`
}

// PresenceEntry is one (student, status) pair inside a bulk batch
type PresenceEntry struct {
	StudentID int64          `json:"studentId"`
	Status    PresenceStatus `json:"status"`
}
