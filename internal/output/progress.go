package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// writerIsTTY reports whether w is a file attached to a terminal. Plain
// writers such as *bytes.Buffer are never terminals.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// ProgressBar tracks a fixed number of steps.
// Example: [=========>          ]  45% support 0.55
type ProgressBar struct {
	mu          sync.Mutex
	total       int
	current     int
	description string
	width       int
	writer      io.Writer
}

// NewProgress creates a progress bar over total steps writing to stdout.
func NewProgress(total int, description string) *ProgressBar {
	return &ProgressBar{
		total:       total,
		description: description,
		width:       30,
		writer:      os.Stdout,
	}
}

// SetWriter sets the output writer (useful for testing).
func (p *ProgressBar) SetWriter(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = w
}

// Describe replaces the text shown after the bar.
func (p *ProgressBar) Describe(description string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.description = description
}

// Increment advances the bar by one step and redraws it.
func (p *ProgressBar) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.set(p.current + 1)
}

// SetCurrent moves the bar to step current and redraws it.
func (p *ProgressBar) SetCurrent(current int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.set(current)
}

func (p *ProgressBar) set(current int) {
	p.current = min(current, p.total)
	p.render()
}

// Finish completes the bar. On a terminal it also ends the line.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == p.total && !writerIsTTY(p.writer) {
		return
	}
	p.current = p.total
	p.render()
	if writerIsTTY(p.writer) {
		fmt.Fprintln(p.writer)
	}
}

// render must be called with the lock held. Off a terminal only the
// completed bar is written.
func (p *ProgressBar) render() {
	tty := writerIsTTY(p.writer)
	if !tty && p.current != p.total {
		return
	}

	percent, filled := 0, 0
	if p.total > 0 {
		percent = p.current * 100 / p.total
		filled = p.current * p.width / p.total
	}

	var bar strings.Builder
	bar.WriteByte('[')
	for i := 0; i < p.width; i++ {
		switch {
		case i < filled-1:
			bar.WriteByte('=')
		case i == filled-1:
			bar.WriteByte('>')
		default:
			bar.WriteByte(' ')
		}
	}
	bar.WriteByte(']')

	if tty {
		fmt.Fprintf(p.writer, "\r%s %3d%% %s", bar.String(), percent, p.description)
		return
	}
	fmt.Fprintf(p.writer, "%s %3d%% %s\n", bar.String(), percent, p.description)
}

// Spinner animates a message while a step of unknown length runs.
// Example: |  Mining vote.arff (3s elapsed)
type Spinner struct {
	mu      sync.Mutex
	message string
	frames  []string
	writer  io.Writer
	running bool
	started time.Time
	done    chan struct{}
}

// NewSpinner creates a spinner writing to stdout. It does not start
// until Start is called.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		frames:  []string{"|", "/", "-", "\\"},
		writer:  os.Stdout,
	}
}

// SetWriter sets the output writer (useful for testing).
func (s *Spinner) SetWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writer = w
}

// Start begins the animation. Off a terminal the message is printed once
// and nothing animates.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.started = time.Now()
	s.done = make(chan struct{})

	if !writerIsTTY(s.writer) {
		fmt.Fprintf(s.writer, "%s...\n", s.message)
		return
	}

	go s.animate(s.done)
}

func (s *Spinner) animate(done <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for frame := 0; ; frame = (frame + 1) % len(s.frames) {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.running {
				fmt.Fprintf(s.writer, "\r%s  %s (%ds elapsed)",
					s.frames[frame], s.message, int(time.Since(s.started).Seconds()))
			}
			s.mu.Unlock()
		}
	}
}

// UpdateMessage replaces the message while the spinner runs.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Stop ends the animation and clears the line. Stopping twice is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	close(s.done)

	if writerIsTTY(s.writer) {
		fmt.Fprintf(s.writer, "\r%s\r", strings.Repeat(" ", len(s.message)+24))
	}
}

// StopWithMessage stops the spinner and prints message on its own line.
func (s *Spinner) StopWithMessage(message string) {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.writer, message)
}
