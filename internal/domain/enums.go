package domain

type SessionStatus string

const (
	SessionRunning   SessionStatus = "running"
	SessionCompleted SessionStatus = "completed"
	SessionAborted   SessionStatus = "aborted"
)

type MergeStrategy string

const (
	// MergeAppend inserts document rows, silently skipping ids that
	// already exist in the store.
	MergeAppend MergeStrategy = "append"
	// MergeReplace clears records, sessions, and habits before applying
	// the document.
	MergeReplace MergeStrategy = "replace"
)

// ValidMergeStrategies is the canonical set of accepted merge strategy strings.
var ValidMergeStrategies = map[string]bool{
	"append": true, "replace": true,
}
