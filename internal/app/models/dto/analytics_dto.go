package dto

// SessionStatResponse is one per-session attendance rate row
type SessionStatResponse struct {
	Date    string  `json:"date" example:"2024-03-10"`
	Group   string  `json:"group" example:"ADIA-G1"`
	Module  string  `json:"module" example:"Python"`
	Present int64   `json:"present" example:"14"`
	Total   int64   `json:"total" example:"20"`
	Rate    float64 `json:"rate" example:"70.0"`
}

// KPIResponse carries the global attendance indicators
type KPIResponse struct {
	TotalSessions int64   `json:"totalSessions"`
	AvgRate       float64 `json:"avgRate"`
}

// AbsenceRecordResponse is one student-per-module absence aggregate, ordered
// by descending count in the report
type AbsenceRecordResponse struct {
	Name   string   `json:"name"`
	CNE    string   `json:"cne"`
	Group  string   `json:"group"`
	Module string   `json:"module"`
	Count  int      `json:"count"`
	Dates  []string `json:"dates"` // most recent first
}
