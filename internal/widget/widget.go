// Package widget provides the widget state records owned by the handle
// registry and the drawing routine for each widget kind. The kind set is
// closed: the renderer dispatches over it exhaustively.
package widget

// Kind tags a widget record. Values are part of the bridge surface and
// never reused.
type Kind uint32

const (
	KindNone Kind = iota
	KindParagraph
	KindList
	KindTable
	KindGauge
	KindTabs
	KindBarChart
	KindSparkline
	KindChart
	KindScrollbar
	KindLineGauge
	KindClear
	KindCanvas
)

// String returns the kind name used in logs and the symbol manifest.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	case KindGauge:
		return "gauge"
	case KindTabs:
		return "tabs"
	case KindBarChart:
		return "barchart"
	case KindSparkline:
		return "sparkline"
	case KindChart:
		return "chart"
	case KindScrollbar:
		return "scrollbar"
	case KindLineGauge:
		return "linegauge"
	case KindClear:
		return "clear"
	case KindCanvas:
		return "canvas"
	default:
		return "none"
	}
}

// Valid reports whether k names a constructible widget kind.
func (k Kind) Valid() bool { return k > KindNone && k <= KindCanvas }
