package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrTeam     = "team"
	AttrOutcome  = "outcome"
)

// Snapshot reload outcomes.
const (
	OutcomeLoaded   = "loaded"
	OutcomeRetained = "retained"
)
