package constants

// Pull-to-refresh tuning. PullMaxDistance must stay above PullReleasePoint
// so the release cue is reachable before the cap clips it.
const (
	PullDamping      = 0.55
	PullMaxDistance  = 80.0
	PullReleasePoint = 48.0

	// PullUnitsPerRow converts terminal rows of mouse travel into the
	// distance units the controller is tuned for.
	PullUnitsPerRow = 16.0
)
