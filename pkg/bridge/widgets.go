package bridge

import (
	"fmt"

	"github.com/dshills/termbridge/internal/registry"
	"github.com/dshills/termbridge/internal/style"
	"github.com/dshills/termbridge/internal/text"
	"github.com/dshills/termbridge/internal/widget"
)

// newWidget allocates a widget of the given kind on the default engine.
func newWidget(kind widget.Kind) (uint64, Status) {
	e := eng()
	if e == nil {
		return 0, StatusInternal
	}
	h, st := e.CreateWidget(kind)
	return uint64(h), st
}

// NewParagraph creates a paragraph widget.
func NewParagraph() (uint64, Status) { return newWidget(widget.KindParagraph) }

// NewList creates a list widget.
func NewList() (uint64, Status) { return newWidget(widget.KindList) }

// NewTable creates a table widget.
func NewTable() (uint64, Status) { return newWidget(widget.KindTable) }

// NewGauge creates a gauge widget.
func NewGauge() (uint64, Status) { return newWidget(widget.KindGauge) }

// NewTabs creates a tab bar widget.
func NewTabs() (uint64, Status) { return newWidget(widget.KindTabs) }

// NewBarChart creates a bar chart widget.
func NewBarChart() (uint64, Status) { return newWidget(widget.KindBarChart) }

// NewSparkline creates a sparkline widget.
func NewSparkline() (uint64, Status) { return newWidget(widget.KindSparkline) }

// NewChart creates an x/y chart widget.
func NewChart() (uint64, Status) { return newWidget(widget.KindChart) }

// NewScrollbar creates a scrollbar widget.
func NewScrollbar() (uint64, Status) { return newWidget(widget.KindScrollbar) }

// NewLineGauge creates a one-line gauge widget.
func NewLineGauge() (uint64, Status) { return newWidget(widget.KindLineGauge) }

// NewClear creates a clear widget. Draw commands of kind clear also accept
// a zero handle.
func NewClear() (uint64, Status) { return newWidget(widget.KindClear) }

// NewCanvas creates a Braille canvas widget.
func NewCanvas() (uint64, Status) { return newWidget(widget.KindCanvas) }

// FreeWidget releases a widget. The handle is dead afterwards; stale
// copies are rejected even after the slot is reused.
func FreeWidget(h uint64) Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.FreeWidget(registry.Handle(h))
}

// Reserve pre-sizes a widget's append-only storage so n subsequent
// appends amortize their reallocations.
func Reserve(h uint64, capacity int) Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.Reserve(registry.Handle(h), capacity)
}

// update applies fn to the widget state behind h. The expected kind is
// checked against the record before fn runs, so a wrong-kind or stale
// handle reports invalid-handle and fn never sees foreign state.
func update(h uint64, kind widget.Kind, op string, fn func(state any) error) Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	return e.Update(registry.Handle(h), kind, op, fn)
}

// updateAny applies fn to the widget state behind h for operations that
// accept every widget kind. The kind encoded in the handle still has to
// match the live record, so stale or forged handles are rejected.
func updateAny(h uint64, op string, fn func(state any) error) Status {
	e := eng()
	if e == nil {
		return StatusInternal
	}
	hh := registry.Handle(h)
	return e.Update(hh, hh.Kind(), op, fn)
}

// SetBlock installs the frame decoration on any block-bearing widget.
// Clear has no decoration and rejects the call.
func SetBlock(h uint64, spec BlockSpec) Status {
	return updateAny(h, "set_block", func(state any) error {
		block := toBlock(spec)
		switch w := state.(type) {
		case *widget.Paragraph:
			w.Block = block
		case *widget.List:
			w.Block = block
		case *widget.Table:
			w.Block = block
		case *widget.Gauge:
			w.Block = block
		case *widget.LineGauge:
			w.Block = block
		case *widget.Tabs:
			w.Block = block
		case *widget.BarChart:
			w.Block = block
		case *widget.Sparkline:
			w.Block = block
		case *widget.Chart:
			w.Block = block
		case *widget.Scrollbar:
			w.Block = block
		case *widget.Canvas:
			w.Block = block
		default:
			return fmt.Errorf("%w: widget kind carries no block", ErrInvalidArgument)
		}
		return nil
	})
}

// ParagraphSetText replaces the paragraph content with uniformly styled
// text split on newlines.
func ParagraphSetText(h uint64, s string, st Style) Status {
	return update(h, widget.KindParagraph, "paragraph_set_text", func(state any) error {
		state.(*widget.Paragraph).SetText(s, toStyle(st))
		return nil
	})
}

// ParagraphAppendLine appends one line; each span keeps its own style.
func ParagraphAppendLine(h uint64, spans []Span) Status {
	return update(h, widget.KindParagraph, "paragraph_append_line", func(state any) error {
		state.(*widget.Paragraph).AppendLine(toLine(spans))
		return nil
	})
}

// ParagraphSetAlign sets the text alignment.
func ParagraphSetAlign(h uint64, align uint32) Status {
	return update(h, widget.KindParagraph, "paragraph_set_align", func(state any) error {
		state.(*widget.Paragraph).Align = toAlignment(align)
		return nil
	})
}

// ParagraphSetWrap enables or disables cell wrapping.
func ParagraphSetWrap(h uint64, wrap bool) Status {
	return update(h, widget.KindParagraph, "paragraph_set_wrap", func(state any) error {
		state.(*widget.Paragraph).Wrap = wrap
		return nil
	})
}

// ParagraphSetScroll sets the vertical scroll offset in lines.
func ParagraphSetScroll(h uint64, offset int) Status {
	return update(h, widget.KindParagraph, "paragraph_set_scroll", func(state any) error {
		if offset < 0 {
			return fmt.Errorf("%w: negative scroll %d", ErrInvalidArgument, offset)
		}
		state.(*widget.Paragraph).Scroll = offset
		return nil
	})
}

// ListAppendItem appends one item; each span keeps its own style.
func ListAppendItem(h uint64, spans []Span) Status {
	return update(h, widget.KindList, "list_append_item", func(state any) error {
		state.(*widget.List).AppendItem(toLine(spans))
		return nil
	})
}

// ListAppendItems appends several items in one call.
func ListAppendItems(h uint64, items [][]Span) Status {
	return update(h, widget.KindList, "list_append_items", func(state any) error {
		state.(*widget.List).AppendItems(toLines(items))
		return nil
	})
}

// ListSetSelected selects an item; -1 clears the selection.
func ListSetSelected(h uint64, index int) Status {
	return update(h, widget.KindList, "list_set_selected", func(state any) error {
		if index < -1 {
			return fmt.Errorf("%w: selection %d", ErrInvalidArgument, index)
		}
		state.(*widget.List).Selected = index
		return nil
	})
}

// ListSetOffset sets the scroll offset in items.
func ListSetOffset(h uint64, offset int) Status {
	return update(h, widget.KindList, "list_set_offset", func(state any) error {
		if offset < 0 {
			return fmt.Errorf("%w: negative offset %d", ErrInvalidArgument, offset)
		}
		state.(*widget.List).Offset = offset
		return nil
	})
}

// ListSetDirection flips between top-to-bottom and bottom-to-top layout.
func ListSetDirection(h uint64, bottomToTop bool) Status {
	return update(h, widget.KindList, "list_set_direction", func(state any) error {
		dir := widget.TopToBottom
		if bottomToTop {
			dir = widget.BottomToTop
		}
		state.(*widget.List).Direction = dir
		return nil
	})
}

// ListSetHighlight sets the selected-item style and prefix symbol.
func ListSetHighlight(h uint64, symbol string, st Style) Status {
	return update(h, widget.KindList, "list_set_highlight", func(state any) error {
		l := state.(*widget.List)
		l.HighlightSymbol = symbol
		l.HighlightStyle = toStyle(st)
		return nil
	})
}

// TableSetHeader replaces the header row.
func TableSetHeader(h uint64, cells [][]Span) Status {
	return update(h, widget.KindTable, "table_set_header", func(state any) error {
		state.(*widget.Table).Header = toLines(cells)
		return nil
	})
}

// TableAppendRow appends one row of cells.
func TableAppendRow(h uint64, cells [][]Span) Status {
	return update(h, widget.KindTable, "table_append_row", func(state any) error {
		state.(*widget.Table).AppendRow(toLines(cells))
		return nil
	})
}

// TableAppendRows appends several rows in one call.
func TableAppendRows(h uint64, rows [][][]Span) Status {
	return update(h, widget.KindTable, "table_append_rows", func(state any) error {
		t := state.(*widget.Table)
		converted := make([][]text.Line, 0, len(rows))
		for _, r := range rows {
			converted = append(converted, toLines(r))
		}
		t.AppendRows(converted)
		return nil
	})
}

// TableSetWidths sets per-column layout constraints; an empty slice
// returns to evenly divided columns.
func TableSetWidths(h uint64, widths []Constraint) Status {
	return update(h, widget.KindTable, "table_set_widths", func(state any) error {
		t := state.(*widget.Table)
		t.Widths = t.Widths[:0]
		for _, c := range widths {
			t.Widths = append(t.Widths, toConstraint(c))
		}
		return nil
	})
}

// TableSetColumnSpacing sets the gap between columns.
func TableSetColumnSpacing(h uint64, spacing int) Status {
	return update(h, widget.KindTable, "table_set_column_spacing", func(state any) error {
		if spacing < 0 {
			return fmt.Errorf("%w: negative spacing %d", ErrInvalidArgument, spacing)
		}
		state.(*widget.Table).ColumnSpacing = spacing
		return nil
	})
}

// TableSetSelected selects a row; -1 clears the selection.
func TableSetSelected(h uint64, index int) Status {
	return update(h, widget.KindTable, "table_set_selected", func(state any) error {
		if index < -1 {
			return fmt.Errorf("%w: selection %d", ErrInvalidArgument, index)
		}
		state.(*widget.Table).Selected = index
		return nil
	})
}

// TableSetStyles sets the header and selected-row styles.
func TableSetStyles(h uint64, header, highlight Style) Status {
	return update(h, widget.KindTable, "table_set_styles", func(state any) error {
		t := state.(*widget.Table)
		t.HeaderStyle = toStyle(header)
		t.HighlightStyle = toStyle(highlight)
		return nil
	})
}

// GaugeSetRatio sets the fill ratio, clamped to [0, 1].
func GaugeSetRatio(h uint64, ratio float64) Status {
	return update(h, widget.KindGauge, "gauge_set_ratio", func(state any) error {
		state.(*widget.Gauge).SetRatio(ratio)
		return nil
	})
}

// GaugeSetLabel sets the label from spans. The span texts concatenate
// into one run styled by the first span.
func GaugeSetLabel(h uint64, spans []Span) Status {
	return update(h, widget.KindGauge, "gauge_set_label", func(state any) error {
		state.(*widget.Gauge).SetLabelSpans(toLine(spans))
		return nil
	})
}

// GaugeSetStyles sets the bar and label styles.
func GaugeSetStyles(h uint64, gauge, label Style) Status {
	return update(h, widget.KindGauge, "gauge_set_styles", func(state any) error {
		g := state.(*widget.Gauge)
		g.GaugeStyle = toStyle(gauge)
		g.LabelStyle = toStyle(label)
		return nil
	})
}

// LineGaugeSetRatio sets the fill ratio, clamped to [0, 1].
func LineGaugeSetRatio(h uint64, ratio float64) Status {
	return update(h, widget.KindLineGauge, "line_gauge_set_ratio", func(state any) error {
		state.(*widget.LineGauge).SetRatio(ratio)
		return nil
	})
}

// LineGaugeSetLabel sets the label from spans, under the same
// concatenation rule as GaugeSetLabel.
func LineGaugeSetLabel(h uint64, spans []Span) Status {
	return update(h, widget.KindLineGauge, "line_gauge_set_label", func(state any) error {
		state.(*widget.LineGauge).SetLabelSpans(toLine(spans))
		return nil
	})
}

// LineGaugeSetStyle sets the bar style.
func LineGaugeSetStyle(h uint64, st Style) Status {
	return update(h, widget.KindLineGauge, "line_gauge_set_style", func(state any) error {
		state.(*widget.LineGauge).GaugeStyle = toStyle(st)
		return nil
	})
}

// TabsAppendTitle appends one tab title; spans keep their styles.
func TabsAppendTitle(h uint64, spans []Span) Status {
	return update(h, widget.KindTabs, "tabs_append_title", func(state any) error {
		state.(*widget.Tabs).AppendTitle(toLine(spans))
		return nil
	})
}

// TabsClearTitles removes all titles.
func TabsClearTitles(h uint64) Status {
	return update(h, widget.KindTabs, "tabs_clear_titles", func(state any) error {
		t := state.(*widget.Tabs)
		t.Titles = t.Titles[:0]
		return nil
	})
}

// TabsSetSelected selects the highlighted tab.
func TabsSetSelected(h uint64, index int) Status {
	return update(h, widget.KindTabs, "tabs_set_selected", func(state any) error {
		if index < 0 {
			return fmt.Errorf("%w: selection %d", ErrInvalidArgument, index)
		}
		state.(*widget.Tabs).Selected = index
		return nil
	})
}

// TabsSetDivider sets the divider between titles. One span keeps its own
// style; multiple spans concatenate under the first span's style.
func TabsSetDivider(h uint64, spans []Span) Status {
	return update(h, widget.KindTabs, "tabs_set_divider", func(state any) error {
		state.(*widget.Tabs).SetDividerSpans(toLine(spans))
		return nil
	})
}

// TabsSetStyles sets the base and highlighted title styles.
func TabsSetStyles(h uint64, base, highlight Style) Status {
	return update(h, widget.KindTabs, "tabs_set_styles", func(state any) error {
		t := state.(*widget.Tabs)
		t.Style = toStyle(base)
		t.Highlight = toStyle(highlight)
		return nil
	})
}

// BarChartSetValues replaces the bar values.
func BarChartSetValues(h uint64, values []uint64) Status {
	return update(h, widget.KindBarChart, "bar_chart_set_values", func(state any) error {
		bc := state.(*widget.BarChart)
		bc.Values = append(bc.Values[:0], values...)
		return nil
	})
}

// BarChartSetLabels replaces the per-bar labels.
func BarChartSetLabels(h uint64, labels []string) Status {
	return update(h, widget.KindBarChart, "bar_chart_set_labels", func(state any) error {
		bc := state.(*widget.BarChart)
		bc.Labels = append(bc.Labels[:0], labels...)
		return nil
	})
}

// BarChartSetBarGeometry sets the bar width and the gap between bars.
func BarChartSetBarGeometry(h uint64, width, gap int) Status {
	return update(h, widget.KindBarChart, "bar_chart_set_bar_geometry", func(state any) error {
		if width < 1 || gap < 0 {
			return fmt.Errorf("%w: bar width %d gap %d", ErrInvalidArgument, width, gap)
		}
		bc := state.(*widget.BarChart)
		bc.BarWidth = width
		bc.BarGap = gap
		return nil
	})
}

// BarChartSetStyles sets the bar, value and label styles.
func BarChartSetStyles(h uint64, bar, value, label Style) Status {
	return update(h, widget.KindBarChart, "bar_chart_set_styles", func(state any) error {
		bc := state.(*widget.BarChart)
		bc.BarStyle = toStyle(bar)
		bc.ValueStyle = toStyle(value)
		bc.LabelStyle = toStyle(label)
		return nil
	})
}

// SparklineSetValues replaces the sample values.
func SparklineSetValues(h uint64, values []uint64) Status {
	return update(h, widget.KindSparkline, "sparkline_set_values", func(state any) error {
		s := state.(*widget.Sparkline)
		s.Values = append(s.Values[:0], values...)
		return nil
	})
}

// SparklineSetMax fixes the scale maximum; zero derives it from the data.
func SparklineSetMax(h uint64, max uint64) Status {
	return update(h, widget.KindSparkline, "sparkline_set_max", func(state any) error {
		state.(*widget.Sparkline).Max = max
		return nil
	})
}

// SparklineSetStyle sets the bar style.
func SparklineSetStyle(h uint64, st Style) Status {
	return update(h, widget.KindSparkline, "sparkline_set_style", func(state any) error {
		state.(*widget.Sparkline).Style = toStyle(st)
		return nil
	})
}

// Graph type values for ChartAddDataset.
const (
	GraphLine uint32 = iota
	GraphScatter
	GraphBar
)

// ChartAddDataset appends a named dataset of (x, y) points.
func ChartAddDataset(h uint64, name string, points [][2]float64, graphType uint32, st Style) Status {
	return update(h, widget.KindChart, "chart_add_dataset", func(state any) error {
		var gt widget.GraphType
		switch graphType {
		case GraphLine:
			gt = widget.GraphLine
		case GraphScatter:
			gt = widget.GraphScatter
		case GraphBar:
			gt = widget.GraphBar
		default:
			return fmt.Errorf("%w: graph type %d", ErrInvalidArgument, graphType)
		}
		c := state.(*widget.Chart)
		pts := make([][2]float64, len(points))
		copy(pts, points)
		c.Datasets = append(c.Datasets, widget.Dataset{
			Name:   name,
			Points: pts,
			Style:  toStyle(st),
			Type:   gt,
		})
		return nil
	})
}

// AxisSpec describes one chart axis.
type AxisSpec struct {
	Title     []Span
	Min, Max  float64
	HasBounds bool
	Labels    [][]Span
	Style     Style
}

func toAxis(spec AxisSpec) widget.Axis {
	return widget.Axis{
		Title:     toLine(spec.Title),
		Min:       spec.Min,
		Max:       spec.Max,
		HasBounds: spec.HasBounds,
		Labels:    toLines(spec.Labels),
		Style:     toStyle(spec.Style),
	}
}

// ChartSetXAxis configures the x axis. Explicit bounds must span a
// non-empty range.
func ChartSetXAxis(h uint64, spec AxisSpec) Status {
	return update(h, widget.KindChart, "chart_set_x_axis", func(state any) error {
		if spec.HasBounds && spec.Min >= spec.Max {
			return fmt.Errorf("%w: degenerate axis bounds", ErrInvalidArgument)
		}
		state.(*widget.Chart).XAxis = toAxis(spec)
		return nil
	})
}

// ChartSetYAxis configures the y axis. Explicit bounds must span a
// non-empty range.
func ChartSetYAxis(h uint64, spec AxisSpec) Status {
	return update(h, widget.KindChart, "chart_set_y_axis", func(state any) error {
		if spec.HasBounds && spec.Min >= spec.Max {
			return fmt.Errorf("%w: degenerate axis bounds", ErrInvalidArgument)
		}
		state.(*widget.Chart).YAxis = toAxis(spec)
		return nil
	})
}

// ChartSetStyle sets the chart's base style.
func ChartSetStyle(h uint64, st Style) Status {
	return update(h, widget.KindChart, "chart_set_style", func(state any) error {
		state.(*widget.Chart).Style = toStyle(st)
		return nil
	})
}

// Scrollbar orientation values.
const (
	OrientVerticalRight uint32 = iota
	OrientVerticalLeft
	OrientHorizontalBottom
	OrientHorizontalTop
)

// ScrollbarConfigure sets the orientation, content length, and thumb
// position in one call.
func ScrollbarConfigure(h uint64, orient uint32, contentLen, position int) Status {
	return update(h, widget.KindScrollbar, "scrollbar_configure", func(state any) error {
		if contentLen < 0 || position < 0 {
			return fmt.Errorf("%w: content %d position %d", ErrInvalidArgument, contentLen, position)
		}
		s := state.(*widget.Scrollbar)
		switch orient {
		case OrientVerticalRight:
			s.Orient = widget.VerticalRight
		case OrientVerticalLeft:
			s.Orient = widget.VerticalLeft
		case OrientHorizontalBottom:
			s.Orient = widget.HorizontalBottom
		case OrientHorizontalTop:
			s.Orient = widget.HorizontalTop
		default:
			return fmt.Errorf("%w: orientation %d", ErrInvalidArgument, orient)
		}
		s.ContentLen = contentLen
		s.Position = position
		return nil
	})
}

// ScrollbarSetStyles sets the track and thumb styles.
func ScrollbarSetStyles(h uint64, track, thumb Style) Status {
	return update(h, widget.KindScrollbar, "scrollbar_set_styles", func(state any) error {
		s := state.(*widget.Scrollbar)
		s.Style = toStyle(track)
		s.ThumbStyle = toStyle(thumb)
		return nil
	})
}

// CanvasSetBounds sets the logical coordinate space points are plotted in.
func CanvasSetBounds(h uint64, xMin, xMax, yMin, yMax float64) Status {
	return update(h, widget.KindCanvas, "canvas_set_bounds", func(state any) error {
		if xMin >= xMax || yMin >= yMax {
			return fmt.Errorf("%w: degenerate bounds", ErrInvalidArgument)
		}
		c := state.(*widget.Canvas)
		c.XMin, c.XMax = xMin, xMax
		c.YMin, c.YMax = yMin, yMax
		return nil
	})
}

// CanvasSetBackground sets the background color from its encoded form.
func CanvasSetBackground(h uint64, color uint32) Status {
	return update(h, widget.KindCanvas, "canvas_set_background", func(state any) error {
		state.(*widget.Canvas).Background = style.Decode(color)
		return nil
	})
}

// CanvasAddLine plots a line in logical coordinates.
func CanvasAddLine(h uint64, x1, y1, x2, y2 float64, st Style) Status {
	return update(h, widget.KindCanvas, "canvas_add_line", func(state any) error {
		c := state.(*widget.Canvas)
		c.Lines = append(c.Lines, widget.CanvasLine{
			X1: x1, Y1: y1, X2: x2, Y2: y2,
			Style: toStyle(st),
		})
		return nil
	})
}

// CanvasAddRect plots a rectangle outline in logical coordinates.
func CanvasAddRect(h uint64, x, y, w, ht float64, st Style) Status {
	return update(h, widget.KindCanvas, "canvas_add_rect", func(state any) error {
		c := state.(*widget.Canvas)
		c.Rects = append(c.Rects, widget.CanvasRect{
			X: x, Y: y, W: w, H: ht,
			Style: toStyle(st),
		})
		return nil
	})
}

// CanvasAddPoints plots a point cloud in logical coordinates.
func CanvasAddPoints(h uint64, points [][2]float64, st Style) Status {
	return update(h, widget.KindCanvas, "canvas_add_points", func(state any) error {
		c := state.(*widget.Canvas)
		pts := make([][2]float64, len(points))
		copy(pts, points)
		c.Points = append(c.Points, widget.CanvasPoints{
			Coords: pts,
			Style:  toStyle(st),
		})
		return nil
	})
}
