package term

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/eventq"
)

// Session wraps a Driver with the mode bookkeeping the bridge surface
// needs: idempotent raw-mode and alternate-screen toggles, cursor clipping,
// buffer presentation, and a pump goroutine that forwards device events
// into the shared queue.
//
// The driver acquires the device fully (raw mode plus alternate screen) on
// Init and releases it fully on Suspend. The session maps its two logical
// toggles onto that pair: the device is held while either toggle is on and
// released when both are off.
type Session struct {
	driver Driver
	queue  *eventq.Queue
	log    zerolog.Logger

	mu      sync.Mutex
	raw     bool
	alt     bool
	width   int
	height  int
	curX    int
	curY    int
	curVis  bool
	stopped bool
	done    chan struct{}
}

// NewSession initializes the driver and starts the event pump. The caller
// owns the queue; driver events and synthetic injections land in it
// interleaved.
func NewSession(d Driver, q *eventq.Queue, log zerolog.Logger) (*Session, error) {
	if err := d.Init(); err != nil {
		return nil, err
	}
	w, h := d.Size()
	s := &Session{
		driver: d,
		queue:  q,
		log:    log,
		raw:    true,
		alt:    true,
		width:  w,
		height: h,
		done:   make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

// pump forwards device events into the queue until the driver shuts down.
func (s *Session) pump() {
	defer close(s.done)
	for {
		e := s.driver.PollEvent()
		if e.Kind == eventq.KindNone {
			s.mu.Lock()
			stopped := s.stopped
			s.mu.Unlock()
			if stopped {
				return
			}
			continue
		}
		if e.Kind == eventq.KindResize {
			s.mu.Lock()
			s.width, s.height = e.Width, e.Height
			s.mu.Unlock()
		}
		s.queue.Push(e)
	}
}

// Close stops the pump and restores the terminal. Safe to call twice.
func (s *Session) Close() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	s.driver.Fini()
	<-s.done
	s.log.Debug().Msg("session closed")
}

// Size returns the last known device dimensions.
func (s *Session) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// EnableRaw turns raw mode on. Enabling an already-raw session is a no-op
// success. Returns false on a non-interactive device.
func (s *Session) EnableRaw() bool { return s.setMode(&s.raw, true) }

// DisableRaw turns raw mode off. Disabling a never-enabled session is a
// no-op success. Returns false on a non-interactive device.
func (s *Session) DisableRaw() bool { return s.setMode(&s.raw, false) }

// EnterAlt switches to the alternate screen; idempotent like EnableRaw.
func (s *Session) EnterAlt() bool { return s.setMode(&s.alt, true) }

// LeaveAlt switches back to the main screen; idempotent like DisableRaw.
func (s *Session) LeaveAlt() bool { return s.setMode(&s.alt, false) }

func (s *Session) setMode(flag *bool, want bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.driver.Interactive() {
		return false
	}
	if *flag == want {
		return true
	}
	heldBefore := s.raw || s.alt
	*flag = want
	heldNow := s.raw || s.alt

	var err error
	switch {
	case heldBefore && !heldNow:
		err = s.driver.Suspend()
	case !heldBefore && heldNow:
		err = s.driver.Resume()
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("terminal mode switch failed")
		*flag = !want
		return false
	}
	return true
}

// SetCursor positions and shows the cursor, clipped to the known size.
func (s *Session) SetCursor(x, y int) {
	s.mu.Lock()
	w, h := s.width, s.height
	s.mu.Unlock()

	if x < 0 {
		x = 0
	} else if w > 0 && x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	} else if h > 0 && y >= h {
		y = h - 1
	}
	s.mu.Lock()
	s.curX, s.curY, s.curVis = x, y, true
	s.mu.Unlock()
	s.driver.ShowCursor(x, y)
}

// Cursor returns the last position set through SetCursor and whether the
// cursor is currently shown.
func (s *Session) Cursor() (x, y int, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.curX, s.curY, s.curVis
}

// HideCursor hides the cursor.
func (s *Session) HideCursor() {
	s.mu.Lock()
	s.curVis = false
	s.mu.Unlock()
	s.driver.HideCursor()
}

// Clear blanks the device.
func (s *Session) Clear() {
	s.driver.Clear()
	s.driver.Show()
}

// Present writes a rendered buffer to the device and flushes it. Cells
// outside the device are clipped by the driver.
func (s *Session) Present(buf *buffer.Buffer) {
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.driver.SetCell(x, y, buf.Get(x, y))
		}
	}
	s.driver.Show()
}
