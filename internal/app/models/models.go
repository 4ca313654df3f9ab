package models

// RoleType defines the user role type
type RoleType string

const (
	RoleDirection  RoleType = "DIRECTION"
	RoleInstructor RoleType = "FORMATEUR"
	RoleStudent    RoleType = "ETUDIANT"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r RoleType) bool {
	switch r {
	case RoleDirection, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

// PresenceStatus is the closed set of attendance statuses. StatusPending is a
// read-side sentinel meaning "no record yet"; it is never persisted.
type PresenceStatus string

const (
	StatusPresent PresenceStatus = "Present"
	StatusAbsent  PresenceStatus = "Absent"
	StatusPending PresenceStatus = "Pending"
)

// ValidMarkStatus reports whether s may be written to storage.
func ValidMarkStatus(s PresenceStatus) bool {
	return s == StatusPresent || s == StatusAbsent
}

// HistoryKind tags the source of an instructor history item
type HistoryKind string

const (
	HistoryAssignment   HistoryKind = "TP"
	HistoryAnnouncement HistoryKind = "Annonce"
)
