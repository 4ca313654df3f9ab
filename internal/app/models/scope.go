package models

// Scope narrows an aggregation to one instructor or spans the whole system.
// It replaces a nullable instructor id so the "aggregate everything" branch
// is an explicit, constructed case.
type Scope struct {
	instructorID int64
	all          bool
}

// AllInstructors returns the system-wide scope
func AllInstructors() Scope {
	return Scope{all: true}
}

// ForInstructor returns a scope narrowed to one instructor
func ForInstructor(id int64) Scope {
	return Scope{instructorID: id}
}

// All reports whether the scope spans all instructors
func (s Scope) All() bool {
	return s.all
}

// InstructorID returns the narrowing instructor id; only meaningful when
// All is false
func (s Scope) InstructorID() int64 {
	return s.instructorID
}
