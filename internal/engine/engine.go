// Package engine ties the registry, renderer, snapshot engine, and
// terminal session together behind one guarded context object. Every
// exported operation is individually atomic under one coarse lock and runs
// inside a recover boundary: an internal panic becomes StatusInternal,
// never a crash in the hosting program.
package engine

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/eventq"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/registry"
	"github.com/dshills/termbridge/internal/render"
	"github.com/dshills/termbridge/internal/snapshot"
	"github.com/dshills/termbridge/internal/term"
	"github.com/dshills/termbridge/internal/widget"
)

// Engine is the bridge context. Construct with New; the zero value is not
// usable.
type Engine struct {
	mu      sync.Mutex
	cfg     Config
	log     zerolog.Logger
	logFile *os.File
	reg     *registry.Registry
	queue   *eventq.Queue
	session *term.Session
	frame   *buffer.Buffer
}

// New creates an engine from an explicit config.
func New(cfg Config) (*Engine, error) {
	log, f, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	e := &Engine{
		cfg:     cfg,
		log:     log,
		logFile: f,
		reg:     registry.New(),
		queue:   eventq.NewQueue(),
	}
	e.log.Debug().Msg("engine created")
	return e, nil
}

// Close shuts down the session, if open, and releases the log file.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		e.session.Close()
		e.session = nil
	}
	if e.logFile != nil {
		_ = e.logFile.Close()
		e.logFile = nil
	}
}

// guard runs one operation body under the engine lock and the recover
// boundary, translating errors and panics to statuses.
func (e *Engine) guard(op string, fn func() error) (st Status) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.log.Trace().Str("op", op).Msg("enter")
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Str("op", op).Interface("panic", r).Msg("panic recovered")
			st = StatusInternal
		}
		e.log.Trace().Str("op", op).Stringer("status", st).Msg("exit")
	}()

	if err := fn(); err != nil {
		e.log.Debug().Str("op", op).Err(err).Msg("operation failed")
		return statusOf(err)
	}
	return StatusOK
}

// CreateWidget allocates a widget of the given kind and returns its handle.
func (e *Engine) CreateWidget(kind widget.Kind) (registry.Handle, Status) {
	var h registry.Handle
	st := e.guard("create_widget", func() error {
		var err error
		h, err = e.reg.Create(kind)
		return err
	})
	return h, st
}

// FreeWidget releases the widget. The handle is dead afterwards; reuse of
// its slot is invisible to stale copies.
func (e *Engine) FreeWidget(h registry.Handle) Status {
	return e.guard("free_widget", func() error {
		return e.reg.Free(h)
	})
}

// Reserve pre-sizes the widget's append-only storage.
func (e *Engine) Reserve(h registry.Handle, capacity int) Status {
	return e.guard("reserve", func() error {
		if capacity < 0 {
			return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
		}
		return e.reg.Reserve(h, capacity)
	})
}

// Update resolves the handle as the given kind and applies fn to its
// state. Setters at the public surface are closures over this single
// guarded entry point; a failed resolution leaves the widget untouched.
func (e *Engine) Update(h registry.Handle, kind widget.Kind, op string, fn func(state any) error) Status {
	return e.guard(op, func() error {
		state, err := e.reg.Get(h, kind)
		if err != nil {
			return err
		}
		return fn(state)
	})
}

// RenderHeadless paints the batch into a fresh buffer. On success the
// buffer becomes the retained frame; contract violations return the
// partially painted buffer with a non-OK status and leave the retained
// frame unchanged.
func (e *Engine) RenderHeadless(batch render.Batch, width, height int) (*buffer.Buffer, Status) {
	var buf *buffer.Buffer
	st := e.guard("render_headless", func() error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("%w: %dx%d target", ErrInvalidArgument, width, height)
		}
		var err error
		buf, err = render.Headless(e.reg, batch, width, height)
		if err != nil {
			return err
		}
		e.frame = buf
		return nil
	})
	return buf, st
}

// RenderText renders headless and returns the text snapshot.
func (e *Engine) RenderText(batch render.Batch, width, height int) (string, Status) {
	buf, st := e.RenderHeadless(batch, width, height)
	if !st.OK() {
		return "", st
	}
	return snapshot.Text(buf), st
}

// RenderStyles renders headless and returns the compact style snapshot.
func (e *Engine) RenderStyles(batch render.Batch, width, height int) (string, Status) {
	buf, st := e.RenderHeadless(batch, width, height)
	if !st.OK() {
		return "", st
	}
	return snapshot.Styles(buf), st
}

// RenderStylesEx renders headless and returns the lossless style snapshot.
func (e *Engine) RenderStylesEx(batch render.Batch, width, height int) (string, Status) {
	buf, st := e.RenderHeadless(batch, width, height)
	if !st.OK() {
		return "", st
	}
	return snapshot.StylesEx(buf), st
}

// RenderCells renders headless into dst. filled is how many entries were
// written; required is the full cell count regardless of capacity.
func (e *Engine) RenderCells(batch render.Batch, width, height int, dst []snapshot.CellInfo) (filled, required int, st Status) {
	buf, st := e.RenderHeadless(batch, width, height)
	if !st.OK() {
		return 0, 0, st
	}
	filled, required = snapshot.Cells(buf, dst)
	return filled, required, st
}

// Render paints the batch at the session's current size and presents it.
func (e *Engine) Render(batch render.Batch) Status {
	return e.guard("render", func() error {
		if e.session == nil {
			return ErrTerminalUnavailable
		}
		w, h := e.session.Size()
		buf, err := render.Headless(e.reg, batch, w, h)
		if err != nil {
			return err
		}
		e.session.Present(buf)
		e.frame = buf
		return nil
	})
}

// DrawWidget renders a single widget into the given rect on the session,
// a convenience over a one-command batch.
func (e *Engine) DrawWidget(h registry.Handle, kind widget.Kind, area geom.Rect) Status {
	return e.Render(render.Batch{{Kind: kind, Handle: h, Area: area}})
}

// Frame returns the retained frame from the last successful render, or
// nil before the first one.
func (e *Engine) Frame() *buffer.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

// OpenSession starts a terminal session on the driver and applies the
// configured initial mode toggles. At most one session is active.
func (e *Engine) OpenSession(d term.Driver) Status {
	return e.guard("open_session", func() error {
		if d == nil {
			return fmt.Errorf("%w: nil driver", ErrInvalidArgument)
		}
		if e.session != nil {
			return fmt.Errorf("%w: session already open", ErrInvalidArgument)
		}
		s, err := term.NewSession(d, e.queue, e.log)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
		}
		if !e.cfg.RawMode {
			s.DisableRaw()
		}
		if !e.cfg.AltScreen {
			s.LeaveAlt()
		}
		e.session = s
		return nil
	})
}

// CloseSession ends the active session. Closing with none open is a no-op.
func (e *Engine) CloseSession() Status {
	return e.guard("close_session", func() error {
		if e.session != nil {
			e.session.Close()
			e.session = nil
		}
		return nil
	})
}

// sessionOp runs fn against the open session.
func (e *Engine) sessionOp(op string, fn func(s *term.Session) error) Status {
	return e.guard(op, func() error {
		if e.session == nil {
			return ErrTerminalUnavailable
		}
		return fn(e.session)
	})
}

// toggle maps a session mode toggle's soft failure to a status.
func toggle(ok bool) error {
	if !ok {
		return ErrTerminalUnavailable
	}
	return nil
}

// EnableRaw turns raw mode on; repeat calls are no-op successes.
func (e *Engine) EnableRaw() Status {
	return e.sessionOp("enable_raw", func(s *term.Session) error { return toggle(s.EnableRaw()) })
}

// DisableRaw turns raw mode off; disabling a never-raw session succeeds.
func (e *Engine) DisableRaw() Status {
	return e.sessionOp("disable_raw", func(s *term.Session) error { return toggle(s.DisableRaw()) })
}

// EnterAlt switches to the alternate screen; idempotent.
func (e *Engine) EnterAlt() Status {
	return e.sessionOp("enter_alt", func(s *term.Session) error { return toggle(s.EnterAlt()) })
}

// LeaveAlt returns to the main screen; idempotent.
func (e *Engine) LeaveAlt() Status {
	return e.sessionOp("leave_alt", func(s *term.Session) error { return toggle(s.LeaveAlt()) })
}

// TerminalSize reports the session's current dimensions.
func (e *Engine) TerminalSize() (width, height int, st Status) {
	st = e.sessionOp("terminal_size", func(s *term.Session) error {
		width, height = s.Size()
		return nil
	})
	return width, height, st
}

// SetCursor positions and shows the cursor, clipped to the terminal.
func (e *Engine) SetCursor(x, y int) Status {
	return e.sessionOp("set_cursor", func(s *term.Session) error {
		s.SetCursor(x, y)
		return nil
	})
}

// CursorPosition reports the last cursor position set on the session and
// whether the cursor is shown.
func (e *Engine) CursorPosition() (x, y int, visible bool, st Status) {
	st = e.sessionOp("cursor_position", func(s *term.Session) error {
		x, y, visible = s.Cursor()
		return nil
	})
	return x, y, visible, st
}

// HideCursor hides the cursor.
func (e *Engine) HideCursor() Status {
	return e.sessionOp("hide_cursor", func(s *term.Session) error {
		s.HideCursor()
		return nil
	})
}

// ClearScreen blanks the terminal.
func (e *Engine) ClearScreen() Status {
	return e.sessionOp("clear_screen", func(s *term.Session) error {
		s.Clear()
		return nil
	})
}

// InjectKey appends a synthetic key event to the shared queue.
func (e *Engine) InjectKey(code eventq.KeyCode, r rune, mods eventq.KeyMod) {
	e.queue.Push(eventq.KeyEvent(code, r, mods))
}

// InjectMouse appends a synthetic mouse event to the shared queue.
func (e *Engine) InjectMouse(kind eventq.MouseKind, btn eventq.MouseButton, x, y int, mods eventq.KeyMod) {
	e.queue.Push(eventq.MouseEvent(kind, btn, x, y, mods))
}

// InjectResize appends a synthetic resize event to the shared queue.
func (e *Engine) InjectResize(width, height int) {
	e.queue.Push(eventq.ResizeEvent(width, height))
}

// PollEvent returns the next queued event without blocking. The queue is
// internally synchronized; the engine lock is not held.
func (e *Engine) PollEvent() (eventq.Event, bool) {
	return e.queue.Poll()
}

// WaitEvent blocks up to timeout for the next event. The only blocking
// entry point; the engine lock is never held while waiting.
func (e *Engine) WaitEvent(timeout time.Duration) (eventq.Event, bool) {
	return e.queue.Wait(timeout)
}
