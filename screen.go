package typewriter

import (
	"io"
	"strings"
	"sync"

	"pkt.systems/typewriter/ansi"
)

// Screen draws successive frames of a script onto a writer. On a terminal
// each frame overwrites the previous one; elsewhere only the final frame is
// written, by Close. Screen is safe for concurrent use, so the typist
// observer and a blink ticker may drive it from different goroutines.
type Screen struct {
	w       io.Writer
	script  Script
	opts    Options
	color   bool
	inPlace bool
	width   int

	mu       sync.Mutex
	state    State
	cursorOn bool
	printed  int
	closed   bool
}

// NewScreen prepares a screen for script on w.
func NewScreen(w io.Writer, script Script, opts Options) *Screen {
	opts = opts.WithDefaults()
	tty := isTerminal(w)
	return &Screen{
		w:        w,
		script:   script,
		opts:     opts,
		color:    useColor(w, opts),
		inPlace:  tty || opts.ForceColor,
		width:    terminalWidth(w),
		state:    newState(script.Len()),
		cursorOn: true,
	}
}

// Observe adapts the screen to WithObserver. Write errors are dropped: the
// typist keeps its pace whatever happens to the output.
func (s *Screen) Observe(ev Event) {
	_ = s.Update(ev.State)
}

// Update records st and redraws.
func (s *Screen) Update(st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.state = st.clone()
	s.cursorOn = true
	return s.drawLocked()
}

// Blink toggles the cursor and redraws.
func (s *Screen) Blink() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.cursorOn = !s.cursorOn
	return s.drawLocked()
}

// Frame returns the frame the screen would draw now.
func (s *Screen) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

// Close draws the last frame with the cursor visible and restores the
// terminal cursor. Further updates are ignored.
func (s *Screen) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.cursorOn = true
	s.closed = true
	if !s.inPlace {
		_, err := s.frameLocked().Render(s.w)
		return err
	}
	err := s.drawLocked()
	if _, werr := io.WriteString(s.w, ansi.ShowCursor); err == nil {
		err = werr
	}
	return err
}

func (s *Screen) frameLocked() Frame {
	cursor := ""
	if s.cursorOn {
		cursor = s.opts.Cursor
	}
	return Frame{
		Script:  s.script,
		State:   s.state,
		Palette: s.opts.Palette,
		Color:   s.color,
		Cursor:  cursor,
		Width:   s.width,
	}
}

func (s *Screen) drawLocked() error {
	if !s.inPlace {
		return nil
	}
	var b strings.Builder
	if s.printed == 0 {
		b.WriteString(ansi.HideCursor)
	} else {
		b.WriteString(ansi.Up(s.printed))
	}
	lines := s.frameLocked().Lines()
	for _, line := range lines {
		b.WriteString(ansi.ClearLine)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	s.printed = len(lines)
	_, err := io.WriteString(s.w, b.String())
	return err
}
