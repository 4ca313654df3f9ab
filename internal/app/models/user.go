package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"a.benali@school.ma"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FirstName string    `json:"firstName" db:"first_name" example:"Ali"`
	LastName  string    `json:"lastName" db:"last_name" example:"Benali"`
	Role      RoleType  `json:"role" db:"role" example:"ETUDIANT"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// FullName returns the display name used in rosters and reports
func (u *User) FullName() string {
	return u.LastName + " " + u.FirstName
}

// Student defines the student model based on the 'students' table.
// Students share their primary key with the users row (1:1).
type Student struct {
	UserID      int64      `json:"userId" db:"user_id"`
	CNE         string     `json:"cne" db:"cne"` // external student identifier
	GroupID     int64      `json:"groupId" db:"group_id"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	User        *User      `json:"user,omitempty"`  // Relation, no db tag
	Group       *Group     `json:"group,omitempty"` // Relation, no db tag
}

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	UserID    int64  `json:"userId" db:"user_id"`
	Matricule string `json:"matricule" db:"matricule"` // staff identifier
	User      *User  `json:"user,omitempty"`           // Relation, no db tag
}
