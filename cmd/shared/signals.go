package shared

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// SetupSignalHandling cancels the run on the first interrupt and exits
// immediately on the second.
func SetupSignalHandling(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 2)

	// always handle Interrupt (portable)
	sigs := []os.Signal{os.Interrupt}

	// add Unix-only signals
	if runtime.GOOS != "windows" {
		sigs = append(sigs, syscall.SIGTERM, syscall.SIGHUP)
		// output piped into head must not kill us with SIGPIPE
		signal.Ignore(syscall.SIGPIPE)
	}

	signal.Notify(sigCh, sigs...)

	go func() {
		s := <-sigCh
		cancel()

		<-sigCh
		// try to map to POSIX exit code 128+sig if possible
		if ss, ok := s.(syscall.Signal); ok {
			os.Exit(128 + int(ss))
		}
		os.Exit(1)
	}()
}
