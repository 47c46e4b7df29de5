package model

// SelectionStatusCompleted marks a selection as already passed. Any other
// status counts as planned.
const SelectionStatusCompleted = "completed"

// Selection is one entry of a client-submitted study plan. Clients send
// whatever their local state holds, so every field is optional; references
// that resolve to no catalog course are skipped during aggregation.
type Selection struct {
	CourseID     string   `json:"course_id"`
	ID           string   `json:"id"`
	ECTS         *float64 `json:"ects"`
	ECTSOverride *float64 `json:"ects_override"`
	Status       string   `json:"status"`
}

// Ref returns the course reference of the selection, preferring course_id
// over the legacy id field.
func (s Selection) Ref() string {
	if s.CourseID != "" {
		return s.CourseID
	}
	return s.ID
}

// ExportRequest is the payload of a plan export call. The selection cap is an
// abuse guard far above any plausible plan size.
type ExportRequest struct {
	Selections []Selection `json:"selections" binding:"max=500"`
}
