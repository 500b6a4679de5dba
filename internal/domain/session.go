package domain

import "time"

// SessionType represents the type of countdown session.
type SessionType string

const (
	SessionTypeWork  SessionType = "work"
	SessionTypeBreak SessionType = "break"
)

// Outcome is how a session run ended. Exactly one outcome is produced
// per run; the session loop branches on it.
type Outcome string

const (
	// OutcomeCompleted means the timer ran its full duration.
	OutcomeCompleted Outcome = "completed"

	// OutcomeQuit means the user pressed the quit key mid-session.
	OutcomeQuit Outcome = "quit"

	// OutcomeReset means the user discarded the running timer.
	OutcomeReset Outcome = "reset"
)

// DefaultWorkDuration and DefaultBreakDuration are the classic
// 25-minute / 5-minute Pomodoro intervals, in seconds.
const (
	DefaultWorkDuration  = 25 * 60
	DefaultBreakDuration = 5 * 60
)

// SessionRecord identifies one session run for logging. Records are
// never persisted; they live only as structured log fields.
type SessionRecord struct {
	ID        string
	Type      SessionType
	Duration  int
	StartedAt time.Time
	Outcome   Outcome
}

// NewSessionRecord creates a record for a session about to run.
func NewSessionRecord(sessionType SessionType, duration int) *SessionRecord {
	return &SessionRecord{
		ID:        generateID(),
		Type:      sessionType,
		Duration:  duration,
		StartedAt: time.Now(),
	}
}

// Finish stamps the record with how the run ended.
func (r *SessionRecord) Finish(outcome Outcome) {
	r.Outcome = outcome
}

// GetSessionTypeLabel returns a human-readable label for the session type.
func GetSessionTypeLabel(t SessionType) string {
	switch t {
	case SessionTypeWork:
		return "Work"
	case SessionTypeBreak:
		return "Break"
	default:
		return "Unknown"
	}
}
