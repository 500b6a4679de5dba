package session

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var interruptOnce sync.Once

// RegisterInterruptHandler installs the process-wide SIGINT/SIGTERM
// handler. Registered once for the process lifetime; later calls are
// no-ops. On a signal it restores the terminal via the given restore
// function, prints the goodbye message, and exits 0 immediately. The
// restore function must be safe to call at any suspension point of the
// main loop.
func RegisterInterruptHandler(out io.Writer, logger *slog.Logger, restore func()) {
	interruptOnce.Do(func() {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			sig := <-sigChan
			logger.Info("interrupt received", "signal", sig.String())
			if restore != nil {
				restore()
			}
			fmt.Fprintln(out, goodbyeMessage)
			os.Exit(0)
		}()
	})
}
