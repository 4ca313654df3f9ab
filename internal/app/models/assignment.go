package models

import (
	"time"
)

// Assignment defines a published practical work (TP) based on the
// 'assignments' table. The subject attachment is stored in the database as a
// BLOB; Attachment carries only metadata unless content is explicitly loaded.
type Assignment struct {
	ID           int64       `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	Description  string      `json:"description" db:"description"`
	Deadline     time.Time   `json:"deadline" db:"deadline"`
	ModuleID     int64       `json:"moduleId" db:"module_id"`
	InstructorID int64       `json:"instructorId" db:"instructor_id"`
	GroupID      int64       `json:"groupId" db:"group_id"`
	PublishedAt  time.Time   `json:"publishedAt" db:"published_at"`
	Attachment   *Attachment `json:"attachment,omitempty"` // Relation, no db tag
}

// Attachment defines a file stored in the 'attachments' table as bytea
type Attachment struct {
	ID           int64  `json:"id" db:"id"`
	FileName     string `json:"fileName" db:"file_name"`
	ContentType  string `json:"contentType" db:"content_type"`
	SizeBytes    int64  `json:"sizeBytes" db:"size_bytes"`
	Content      []byte `json:"-" db:"content"` // loaded only when streaming
	AssignmentID int64  `json:"assignmentId" db:"assignment_id"`
}

// Submission defines a student's report (rapport) for an assignment, based on
// the 'submissions' table. One row per (assignment, student); re-submission
// replaces the previous link.
type Submission struct {
	ID           int64     `json:"id" db:"id"`
	AssignmentID int64     `json:"assignmentId" db:"assignment_id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	Link         string    `json:"link" db:"link"`
	SubmittedAt  time.Time `json:"submittedAt" db:"submitted_at"`
	Student      *Student  `json:"student,omitempty"` // Relation, no db tag
}

// Announcement defines an instructor announcement (annonce) based on the
// 'announcements' table
type Announcement struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Body         string    `json:"body" db:"body"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	GroupID      int64     `json:"groupId" db:"group_id"`
	ModuleID     int64     `json:"moduleId" db:"module_id"`
	PublishedAt  time.Time `json:"publishedAt" db:"published_at"`
}

// HistoryItem is the common projection of assignments and announcements used
// by the instructor history feed
type HistoryItem struct {
	ID       int64       `json:"id"`
	Title    string      `json:"title"`
	Date     time.Time   `json:"date"`
	Kind     HistoryKind `json:"type"`
	GroupID  int64       `json:"groupId"`
	ModuleID int64       `json:"moduleId"`
}
