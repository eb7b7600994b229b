package services

// Application pipeline statuses.
const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusSelected    = "selected"
	StatusCompleted   = "completed"
	StatusRejected    = "rejected"
)

// Flag field names, shared with the repositories' positional updates.
const (
	FlagBookmarked = "bookmarked"
	FlagBoosted    = "boosted"
)

var allowedTransitions = map[string][]string{
	StatusApplied:     {StatusShortlisted, StatusRejected},
	StatusShortlisted: {StatusSelected},
	StatusSelected:    {StatusCompleted},
}

func isKnownStatus(s string) bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusSelected, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// canTransition reports whether the pipeline allows moving from -> to.
// The pipeline never moves backward and never skips a stage.
func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// normalizeStatus maps the older status vocabulary onto the current one at
// the read boundary, so historical documents keep working without a
// migration. Unknown values are treated as freshly applied.
func normalizeStatus(s string) string {
	switch s {
	case StatusApplied, StatusShortlisted, StatusSelected, StatusCompleted, StatusRejected:
		return s
	case "pending":
		return StatusApplied
	case "reviewed":
		return StatusShortlisted
	case "accepted":
		return StatusSelected
	default:
		return StatusApplied
	}
}
