package models

// Track defines a study track (filière) such as ADIA or IL
type Track struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" example:"ADIA"`
}

// Group defines a student group within a track
type Group struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name" example:"ADIA-G1"`
	TrackID int64  `json:"trackId" db:"track_id"`
	Track   *Track `json:"track,omitempty"` // Relation, no db tag
}

// Module defines a taught module within a track
type Module struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name" example:"Python"`
	TrackID int64  `json:"trackId" db:"track_id"`
	Track   *Track `json:"track,omitempty"` // Relation, no db tag
}
