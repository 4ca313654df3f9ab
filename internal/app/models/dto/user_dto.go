package dto

import "github.com/aymanebt/tptrack/internal/app/models"

// CreateUserRequest represents an admin user-creation request. Role-specific
// fields (CNE/group for students, matricule for instructors) are optional at
// the binding level and validated by the service per role.
type CreateUserRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=6"`
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName" binding:"required"`
	Role      models.RoleType `json:"role" binding:"required"`
	CNE       string          `json:"cne,omitempty"`
	GroupID   int64           `json:"groupId,omitempty"`
	Matricule string          `json:"matricule,omitempty"`
}

// UpdateUserRequest represents an admin user-update request
type UpdateUserRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"omitempty,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	GroupID   int64  `json:"groupId,omitempty"`
}

// UserDetailResponse represents a user with role-specific details attached
type UserDetailResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CNE       string `json:"cne,omitempty"`
	GroupID   int64  `json:"groupId,omitempty"`
	GroupName string `json:"groupName,omitempty"`
	Matricule string `json:"matricule,omitempty"`
}

// TrackGroupsResponse lists a track with its groups, for the admin dashboard
type TrackGroupsResponse struct {
	Track  models.Track   `json:"track"`
	Groups []models.Group `json:"groups"`
}
