// Package session sequences work and break sessions and owns the
// prompts between them.
package session

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"timeadair/internal/domain"
)

const goodbyeMessage = "Pomodoro session ended. See you next time!"

// RunFunc executes one session to its outcome. The production
// implementation is the TUI adapter; tests substitute their own.
type RunFunc func(sessionType domain.SessionType, duration int) (domain.Outcome, error)

// Loop is the top-level state machine: prompt work, run work, prompt
// break, run break, and around again. It terminates on a declined work
// prompt or a quit outcome from either run.
type Loop struct {
	run           RunFunc
	in            *bufio.Reader
	out           io.Writer
	logger        *slog.Logger
	workDuration  int
	breakDuration int
	onComplete    func(domain.SessionType)
}

// Options configures a Loop. Zero durations fall back to the classic
// 25/5 intervals.
type Options struct {
	Run           RunFunc
	In            io.Reader
	Out           io.Writer
	Logger        *slog.Logger
	WorkDuration  int
	BreakDuration int

	// OnComplete fires after a session runs its full duration, once the
	// terminal bell has been written.
	OnComplete func(domain.SessionType)
}

// New creates a session loop.
func New(opts Options) *Loop {
	if opts.WorkDuration <= 0 {
		opts.WorkDuration = domain.DefaultWorkDuration
	}
	if opts.BreakDuration <= 0 {
		opts.BreakDuration = domain.DefaultBreakDuration
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Loop{
		run:           opts.Run,
		in:            bufio.NewReader(opts.In),
		out:           opts.Out,
		logger:        opts.Logger,
		workDuration:  opts.WorkDuration,
		breakDuration: opts.BreakDuration,
		onComplete:    opts.OnComplete,
	}
}

// Run drives the loop until the user leaves. All voluntary exits return
// nil; only terminal I/O failures surface as errors.
func (l *Loop) Run() error {
	for {
		ok, err := l.promptSession(domain.SessionTypeWork)
		if err != nil {
			return err
		}
		if !ok {
			l.goodbye()
			return nil
		}

		outcome, err := l.runSession(domain.SessionTypeWork, l.workDuration)
		if err != nil {
			return err
		}
		switch outcome {
		case domain.OutcomeQuit:
			l.goodbye()
			return nil
		case domain.OutcomeReset:
			fmt.Fprintln(l.out, "Timer reset.")
			continue
		}

		ok, err = l.promptSession(domain.SessionTypeBreak)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		outcome, err = l.runSession(domain.SessionTypeBreak, l.breakDuration)
		if err != nil {
			return err
		}
		switch outcome {
		case domain.OutcomeQuit:
			l.goodbye()
			return nil
		case domain.OutcomeReset:
			fmt.Fprintln(l.out, "Timer reset.")
		}
	}
}

// promptSession asks the user to confirm starting a session. An empty
// answer or one starting with y/Y is yes; anything else, including a
// closed stdin, is no.
func (l *Loop) promptSession(sessionType domain.SessionType) (bool, error) {
	fmt.Fprintf(l.out, "Start %s session? [Y/n]: ", sessionType)

	line, err := l.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read prompt answer: %w", err)
	}
	if err == io.EOF && line == "" {
		return false, nil
	}

	answer := strings.TrimSpace(line)
	return answer == "" || strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// runSession runs one session and handles its outcome side effects:
// logging, and the bell plus completion hook on a natural finish.
func (l *Loop) runSession(sessionType domain.SessionType, duration int) (domain.Outcome, error) {
	record := domain.NewSessionRecord(sessionType, duration)
	l.logger.Info("session started",
		"id", record.ID,
		"type", string(record.Type),
		"duration_seconds", record.Duration,
	)

	outcome, err := l.run(sessionType, duration)
	if err != nil {
		l.logger.Error("session run failed", "id", record.ID, "error", err)
		return "", err
	}

	record.Finish(outcome)
	l.logger.Info("session finished", "id", record.ID, "outcome", string(outcome))

	if outcome == domain.OutcomeCompleted {
		// Audible alert only; no text on a natural finish.
		fmt.Fprint(l.out, "\a")
		if l.onComplete != nil {
			l.onComplete(sessionType)
		}
	}

	return outcome, nil
}

func (l *Loop) goodbye() {
	fmt.Fprintln(l.out, goodbyeMessage)
}
