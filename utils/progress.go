package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
)

// ProgressIndicator shows a spinner next to a message while a long running
// operation is in progress.
type ProgressIndicator struct {
	mu         sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	running    bool
	stopChan   chan struct{}
	doneChan   chan struct{}

	// StopMsg is printed in place of the spinner once it stops.
	StopMsg string
}

const (
	ErrorColor   = "\x1b[31m"
	SuccessColor = "\x1b[32m"
	DefaultColor = "\x1b[0m"
)

// NewProgressIndicator returns a spinner writing to w.
func NewProgressIndicator(w io.Writer, msg string, d time.Duration) *ProgressIndicator {
	return &ProgressIndicator{
		delay:   d,
		writer:  w,
		message: msg,
	}
}

// IsTerminal reports whether the file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Start starts the spinner. Calling Start on a running indicator is a no-op.
func (pi *ProgressIndicator) Start() {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	if pi.running {
		return
	}
	pi.running = true
	pi.stopChan = make(chan struct{})
	pi.doneChan = make(chan struct{})

	go pi.spin(pi.stopChan, pi.doneChan)
}

func (pi *ProgressIndicator) spin(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(pi.delay)
	defer ticker.Stop()

	for {
		for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
			pi.mu.Lock()
			output := fmt.Sprintf("\r%s%s %c%s", pi.message, SuccessColor, r, DefaultColor)
			fmt.Fprint(pi.writer, output)
			pi.lastOutput = output
			pi.mu.Unlock()

			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}
}

// Stop stops the spinner, erases it and prints StopMsg, if any.
// It returns once the spinner goroutine has exited.
func (pi *ProgressIndicator) Stop() {
	pi.mu.Lock()
	if !pi.running {
		pi.mu.Unlock()
		return
	}
	pi.running = false
	close(pi.stopChan)
	done := pi.doneChan
	pi.mu.Unlock()

	<-done

	pi.mu.Lock()
	defer pi.mu.Unlock()

	pi.clear()
	if len(pi.StopMsg) > 0 {
		fmt.Fprint(pi.writer, pi.StopMsg)
	}
}

// clear deletes the last line. Caller must hold the locker.
func (pi *ProgressIndicator) clear() {
	n := utf8.RuneCountInString(pi.lastOutput)
	if n == 0 {
		return
	}
	if runtime.GOOS == "windows" {
		fmt.Fprint(pi.writer, "\r"+strings.Repeat(" ", n)+"\r")
		pi.lastOutput = ""
		return
	}
	fmt.Fprint(pi.writer, "\r\033[K") // clear line
	pi.lastOutput = ""
}
