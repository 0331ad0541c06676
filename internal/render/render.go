// Package render turns an ordered batch of draw commands into painted
// cells. Paint order is batch order: later commands overwrite earlier ones
// in overlapping cells.
package render

import (
	"errors"
	"fmt"

	"github.com/dshills/termbridge/internal/buffer"
	"github.com/dshills/termbridge/internal/geom"
	"github.com/dshills/termbridge/internal/registry"
	"github.com/dshills/termbridge/internal/widget"
)

// Command is one paint operation: a widget handle drawn into a rect.
type Command struct {
	Kind   widget.Kind
	Handle registry.Handle
	Area   geom.Rect
}

// Batch is an ordered list of commands applied in one render pass.
type Batch []Command

// Into paints the batch into buf. Each command's rect is clipped to the
// buffer first; a zero-area result skips the command silently (out-of-range
// geometry is not a failure). Invalid handles and unknown kinds skip the
// command and are reported in the returned error; cells painted by earlier
// commands stay in place.
func Into(buf *buffer.Buffer, reg *registry.Registry, batch Batch) error {
	var violations []error
	for i, cmd := range batch {
		area := cmd.Area.ClipTo(buf.Area())
		if area.Empty() {
			continue
		}
		if err := drawCommand(buf, reg, cmd, area); err != nil {
			violations = append(violations, fmt.Errorf("command %d: %w", i, err))
		}
	}
	return errors.Join(violations...)
}

// Headless renders the batch into a fresh width x height buffer.
func Headless(reg *registry.Registry, batch Batch, width, height int) (*buffer.Buffer, error) {
	buf := buffer.New(width, height)
	err := Into(buf, reg, batch)
	return buf, err
}

// drawCommand resolves the handle and dispatches to the kind's drawing
// routine. The switch is exhaustive over the closed kind set; resolved
// state reaches each routine as its concrete type.
func drawCommand(buf *buffer.Buffer, reg *registry.Registry, cmd Command, area geom.Rect) error {
	if cmd.Kind == widget.KindClear {
		// Clear carries no state worth resolving; accept a zero handle.
		if cmd.Handle != 0 {
			if _, err := reg.Get(cmd.Handle, cmd.Kind); err != nil {
				return err
			}
		}
		widget.NewClear().Draw(buf, area)
		return nil
	}
	state, err := reg.Get(cmd.Handle, cmd.Kind)
	if err != nil {
		return err
	}
	switch cmd.Kind {
	case widget.KindParagraph:
		state.(*widget.Paragraph).Draw(buf, area)
	case widget.KindList:
		state.(*widget.List).Draw(buf, area)
	case widget.KindTable:
		state.(*widget.Table).Draw(buf, area)
	case widget.KindGauge:
		state.(*widget.Gauge).Draw(buf, area)
	case widget.KindTabs:
		state.(*widget.Tabs).Draw(buf, area)
	case widget.KindBarChart:
		state.(*widget.BarChart).Draw(buf, area)
	case widget.KindSparkline:
		state.(*widget.Sparkline).Draw(buf, area)
	case widget.KindChart:
		state.(*widget.Chart).Draw(buf, area)
	case widget.KindScrollbar:
		state.(*widget.Scrollbar).Draw(buf, area)
	case widget.KindLineGauge:
		state.(*widget.LineGauge).Draw(buf, area)
	case widget.KindCanvas:
		state.(*widget.Canvas).Draw(buf, area)
	default:
		return fmt.Errorf("%w: %d", registry.ErrInvalidKind, cmd.Kind)
	}
	return nil
}
