package utils

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Spinner frames drawn in turn after the message.
const spinnerFrames = `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`

const (
	successColor = "\x1b[32m"
	defaultColor = "\x1b[0m"
)

// ProgressIndicator draws a spinner next to a message until stopped.
type ProgressIndicator struct {
	mu         sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	// StopMsg is printed in place of the spinner once it stops.
	StopMsg string

	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewProgressIndicator returns a spinner writing msg to w every d.
func NewProgressIndicator(w io.Writer, msg string, d time.Duration) *ProgressIndicator {
	return &ProgressIndicator{
		delay:   d,
		writer:  w,
		message: msg,
	}
}

// Start launches the spinner. Calling Start on a running spinner is a no-op.
func (pi *ProgressIndicator) Start() {
	pi.mu.Lock()
	defer pi.mu.Unlock()
	if pi.running {
		return
	}
	pi.running = true
	pi.stop = make(chan struct{})
	pi.done = make(chan struct{})

	go pi.spin(pi.stop, pi.done)
}

func (pi *ProgressIndicator) spin(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(pi.delay)
	defer ticker.Stop()

	for {
		for _, r := range spinnerFrames {
			pi.mu.Lock()
			output := fmt.Sprintf("\r%s%s %c%s", pi.message, successColor, r, defaultColor)
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

// Stop halts the spinner, clears its line and prints StopMsg.
// It blocks until the spinner goroutine has exited.
func (pi *ProgressIndicator) Stop() {
	pi.mu.Lock()
	if !pi.running {
		pi.mu.Unlock()
		return
	}
	pi.running = false
	close(pi.stop)
	done := pi.done
	pi.mu.Unlock()

	<-done

	pi.mu.Lock()
	defer pi.mu.Unlock()
	pi.clear()
	if len(pi.StopMsg) > 0 {
		fmt.Fprint(pi.writer, pi.StopMsg)
	}
}

// clear deletes the last line. Caller must hold the lock.
func (pi *ProgressIndicator) clear() {
	n := utf8.RuneCountInString(pi.lastOutput)
	if runtime.GOOS == "windows" {
		fmt.Fprint(pi.writer, "\r"+strings.Repeat(" ", n)+"\r")
		pi.lastOutput = ""
		return
	}
	fmt.Fprint(pi.writer, "\r\033[K") // clear line
	pi.lastOutput = ""
}
