package fastbreak

import (
	"os"
	"os/signal"
	"syscall"
)

// hookSignals installs a termination-signal handler that shuts the engine
// down: on the first SIGINT or SIGTERM the hook deregisters itself (so a
// second signal reaches the default handler instead of re-entering), the
// connection pool closes and in-flight batch work is canceled.
//
// The returned function removes the hook without closing anything; Close
// uses it so a closed client never keeps a signal registration alive.
func (c *Client) hookSignals() (stop func()) {
	defer func() {
		// signal.Notify is a no-op on platforms without signal support, but
		// guard anyway so an exotic runtime degrades to "no hook" instead
		// of taking the process down.
		if r := recover(); r != nil {
			if c.logger != nil {
				c.logger.Warn("signal handling unavailable, continuing without it", "reason", r)
			}
			stop = func() {}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			signal.Stop(sigCh)
			if c.logger != nil {
				c.logger.Info("termination signal received, shutting down", "signal", sig)
			}
			c.Close()
		case <-done:
			signal.Stop(sigCh)
		}
	}()

	var once bool
	return func() {
		if !once {
			once = true
			close(done)
		}
	}
}
