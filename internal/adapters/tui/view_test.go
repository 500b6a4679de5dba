package tui

import (
	"math"
	"strings"
	"testing"

	"timeadair/internal/domain"
)

func TestBarCells(t *testing.T) {
	tests := []struct {
		name       string
		progress   float64
		wantFilled int
	}{
		{"empty", 0, 0},
		{"one percent", 1, 0},
		{"two percent", 2, 1},
		{"half", 50, 25},
		{"almost done", 99.98, 49},
		{"full", 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, empty := barCells(tt.progress)
			if filled != tt.wantFilled {
				t.Errorf("barCells(%v) filled = %v, want %v", tt.progress, filled, tt.wantFilled)
			}
			if filled+empty != barWidth {
				t.Errorf("barCells(%v) filled+empty = %v, want %v", tt.progress, filled+empty, barWidth)
			}
		})
	}
}

func TestBarCells_MonotonicFill(t *testing.T) {
	// Fill count never shrinks as elapsed time grows.
	timer := domain.NewTimer(1500)
	prevFilled := 0

	for !timer.Done() {
		timer.Tick()
		filled, empty := barCells(timer.Progress())
		if filled < prevFilled {
			t.Fatalf("filled shrank from %d to %d at elapsed=%d", prevFilled, filled, timer.Elapsed)
		}
		if filled+empty != barWidth {
			t.Fatalf("filled+empty = %d at elapsed=%d, want %d", filled+empty, timer.Elapsed, barWidth)
		}
		prevFilled = filled
	}

	if prevFilled != barWidth {
		t.Errorf("final filled = %d, want %d", prevFilled, barWidth)
	}
}

func TestModel_View(t *testing.T) {
	model := NewModel(domain.SessionTypeWork, 1500, nil)
	model.timer.Elapsed = 750

	view := model.View()

	for _, want := range []string{
		headerTitle,
		"50%",
		"12:30",
		"Current session: Work",
		"Controls: 'q' to quit, 'r' to reset timer",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_View_Break(t *testing.T) {
	model := NewModel(domain.SessionTypeBreak, 300, nil)

	view := model.View()

	if !strings.Contains(view, "Current session: Break") {
		t.Error("View() should label the break session")
	}
	if !strings.Contains(view, "05:00") {
		t.Error("View() should show the full break countdown")
	}
	if !strings.Contains(view, "0%") {
		t.Error("View() should show zero progress before any tick")
	}
}

func TestModel_View_TruncatesPercentage(t *testing.T) {
	// 1499/1500 is 99.93%; the display truncates toward zero.
	model := NewModel(domain.SessionTypeWork, 1500, nil)
	model.timer.Elapsed = 1499

	view := model.View()

	if !strings.Contains(view, "99%") {
		t.Error("View() should truncate 99.93% to 99%")
	}
	if strings.Contains(view, "100%") {
		t.Error("View() should not round up to 100%")
	}
}

func TestBarCells_OutOfRangeInput(t *testing.T) {
	// A zero-duration timer makes Progress() NaN; the cell counts must
	// stay valid whatever the conversion yields.
	tests := []struct {
		name     string
		progress float64
	}{
		{"nan", math.NaN()},
		{"negative", -10},
		{"beyond full", 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, empty := barCells(tt.progress)
			if filled < 0 || filled > barWidth {
				t.Errorf("barCells(%v) filled = %v, want within [0, %v]", tt.progress, filled, barWidth)
			}
			if filled+empty != barWidth {
				t.Errorf("barCells(%v) filled+empty = %v, want %v", tt.progress, filled+empty, barWidth)
			}
		})
	}
}

func TestModel_View_ZeroDuration(t *testing.T) {
	// The initial frame renders before the first tick even for a
	// degenerate duration; it must not panic.
	model := NewModel(domain.SessionTypeWork, 0, nil)

	view := model.View()

	if !strings.Contains(view, "Current session: Work") {
		t.Error("View() should render the session line for a zero-duration timer")
	}
}

func TestModel_View_CentersInWideTerminal(t *testing.T) {
	model := NewModel(domain.SessionTypeWork, 1500, nil)
	model.width = 163

	// (163 - frameWidth) / 2 columns of left padding on each frame line.
	indent := strings.Repeat(" ", (163-frameWidth)/2)

	view := model.View()

	if !strings.Contains(view, indent+"[") {
		t.Error("View() should center the progress line in a wide terminal")
	}
	if !strings.Contains(view, indent+"Current session: Work") {
		t.Error("View() should center the session line in a wide terminal")
	}
}

func TestModel_View_FlushLeftInNarrowTerminal(t *testing.T) {
	model := NewModel(domain.SessionTypeWork, 1500, nil)
	model.width = 40

	for _, line := range strings.Split(model.View(), "\n") {
		if strings.HasPrefix(line, " ") {
			t.Errorf("narrow terminal frame line should start at column 0, got %q", line)
		}
	}
}

func TestFrameIndent(t *testing.T) {
	tests := []struct {
		name      string
		termWidth int
		wantLen   int
	}{
		{"narrow", 40, 0},
		{"exact", frameWidth, 0},
		{"wide", frameWidth + 40, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(frameIndent(tt.termWidth)); got != tt.wantLen {
				t.Errorf("frameIndent(%d) length = %v, want %v", tt.termWidth, got, tt.wantLen)
			}
		})
	}
}

func TestModel_View_Idempotent(t *testing.T) {
	// Redraws with unchanged progress produce identical frames.
	model := NewModel(domain.SessionTypeWork, 1500, nil)
	model.timer.Elapsed = 600

	first := model.View()
	second := model.View()

	if first != second {
		t.Error("View() should be identical across calls with unchanged state")
	}
}
