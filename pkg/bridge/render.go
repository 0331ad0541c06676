package bridge

import (
	"github.com/dshills/termbridge/internal/registry"
	"github.com/dshills/termbridge/internal/render"
	"github.com/dshills/termbridge/internal/snapshot"
	"github.com/dshills/termbridge/internal/widget"
)

// DrawCmd is one paint operation in a frame batch: a widget handle drawn
// into a rect. The kind is carried explicitly and revalidated against the
// handle. Kind values match the widget constructors: 1=paragraph, 2=list,
// 3=table, 4=gauge, 5=tabs, 6=bar chart, 7=sparkline, 8=chart,
// 9=scrollbar, 10=line gauge, 11=clear, 12=canvas.
type DrawCmd struct {
	Kind   uint32
	Handle uint64
	Area   Rect
}

// CellInfo is one structured snapshot cell: the rune plus the encoded
// style channels.
type CellInfo = snapshot.CellInfo

func toBatch(cmds []DrawCmd) render.Batch {
	batch := make(render.Batch, 0, len(cmds))
	for _, c := range cmds {
		batch = append(batch, render.Command{
			Kind:   widget.Kind(c.Kind),
			Handle: registry.Handle(c.Handle),
			Area:   toRect(c.Area),
		})
	}
	return batch
}

// Render paints the batch to the open terminal session at its current
// size and presents the frame. Paint order is batch order.
func Render(cmds []DrawCmd) Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.Render(toBatch(cmds))
}

// DrawWidget paints a single widget into the given rect on the terminal,
// inferring the kind from the handle.
func DrawWidget(h uint64, area Rect) Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	hh := registry.Handle(h)
	return e.DrawWidget(hh, hh.Kind(), toRect(area))
}

// HeadlessText renders the batch into a width x height off-screen buffer
// and returns its text snapshot: rows joined by newlines, styles dropped.
func HeadlessText(cmds []DrawCmd, width, height int) (string, Status) {
	e := eng()
	if e == nil {
		return "", StatusInternal
	}
	return e.RenderText(toBatch(cmds), width, height)
}

// HeadlessStyles renders headless and returns the compact style snapshot:
// one "FFBBMMMM" hex triplet per cell with colors reduced to the nearest
// of the 16 named palette entries.
func HeadlessStyles(cmds []DrawCmd, width, height int) (string, Status) {
	e := eng()
	if e == nil {
		return "", StatusInternal
	}
	return e.RenderStyles(toBatch(cmds), width, height)
}

// HeadlessStylesEx renders headless and returns the lossless style
// snapshot: full 32-bit color channels per cell.
func HeadlessStylesEx(cmds []DrawCmd, width, height int) (string, Status) {
	e := eng()
	if e == nil {
		return "", StatusInternal
	}
	return e.RenderStylesEx(toBatch(cmds), width, height)
}

// HeadlessCells renders headless into dst in row-major order. It fills at
// most len(dst) entries and always reports required = width x height so a
// short caller can retry with enough capacity.
func HeadlessCells(cmds []DrawCmd, width, height int, dst []CellInfo) (filled, required int, st Status) {
	e := eng()
	if e == nil {
		return 0, 0, StatusInternal
	}
	return e.RenderCells(toBatch(cmds), width, height, dst)
}
