package content

// StageStatus is the fixed display state of a rule-generation stage. The
// values come from data; nothing advances a stage at runtime.
type StageStatus string

const (
	StageCompleted StageStatus = "completed"
	StageActive    StageStatus = "active"
	StagePending   StageStatus = "pending"
)

// Valid reports whether s is one of the known statuses.
func (s StageStatus) Valid() bool {
	switch s {
	case StageCompleted, StageActive, StagePending:
		return true
	default:
		return false
	}
}

func (s StageStatus) String() string {
	return string(s)
}
