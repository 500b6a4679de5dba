package domain

import "testing"

func TestDefaultDurations(t *testing.T) {
	if DefaultWorkDuration != 1500 {
		t.Errorf("DefaultWorkDuration = %v, want 1500", DefaultWorkDuration)
	}

	if DefaultBreakDuration != 300 {
		t.Errorf("DefaultBreakDuration = %v, want 300", DefaultBreakDuration)
	}
}

func TestNewSessionRecord(t *testing.T) {
	record := NewSessionRecord(SessionTypeWork, 1500)

	if record.ID == "" {
		t.Error("NewSessionRecord() ID is empty")
	}

	if record.Type != SessionTypeWork {
		t.Errorf("Type = %v, want %v", record.Type, SessionTypeWork)
	}

	if record.Duration != 1500 {
		t.Errorf("Duration = %v, want 1500", record.Duration)
	}

	if record.StartedAt.IsZero() {
		t.Error("StartedAt is zero")
	}

	if record.Outcome != "" {
		t.Errorf("Outcome = %v, want empty before Finish", record.Outcome)
	}
}

func TestSessionRecord_Finish(t *testing.T) {
	record := NewSessionRecord(SessionTypeBreak, 300)
	record.Finish(OutcomeCompleted)

	if record.Outcome != OutcomeCompleted {
		t.Errorf("Outcome = %v, want %v", record.Outcome, OutcomeCompleted)
	}
}

func TestSessionRecord_UniqueIDs(t *testing.T) {
	a := NewSessionRecord(SessionTypeWork, 1500)
	b := NewSessionRecord(SessionTypeWork, 1500)

	if a.ID == b.ID {
		t.Error("two records should not share an ID")
	}
}

func TestGetSessionTypeLabel(t *testing.T) {
	tests := []struct {
		sessionType SessionType
		want        string
	}{
		{SessionTypeWork, "Work"},
		{SessionTypeBreak, "Break"},
		{SessionType("other"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := GetSessionTypeLabel(tt.sessionType); got != tt.want {
				t.Errorf("GetSessionTypeLabel(%v) = %v, want %v", tt.sessionType, got, tt.want)
			}
		})
	}
}
