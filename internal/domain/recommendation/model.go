package recommendation

// Recommendation is one actionable insight about an employee account.
// Values are immutable once produced; the engine returns them in
// display order and callers must not re-sort by severity.
type Recommendation struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// Recommendation types, from most to least pressing
const (
	TypeUrgent  = "urgent"
	TypeWarning = "warning"
	TypeInfo    = "info"
	TypeSuccess = "success"
)
