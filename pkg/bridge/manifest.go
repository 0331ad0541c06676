package bridge

import (
	"github.com/tidwall/sjson"
)

// exports is the authoritative table of public bridge functions, grouped
// by area. Header generators and host-side binding checkers consume the
// manifest built from it, so a new export lands here in the same change.
var exports = map[string][]string{
	"lifecycle": {
		"Init", "Shutdown", "Version", "Features",
	},
	"color": {
		"ColorRGB", "ColorIndexed",
	},
	"layout": {
		"LayoutSplit",
	},
	"registry": {
		"NewParagraph", "NewList", "NewTable", "NewGauge", "NewTabs",
		"NewBarChart", "NewSparkline", "NewChart", "NewScrollbar",
		"NewLineGauge", "NewClear", "NewCanvas",
		"FreeWidget", "Reserve",
	},
	"widget": {
		"SetBlock",
		"ParagraphSetText", "ParagraphAppendLine", "ParagraphSetAlign",
		"ParagraphSetWrap", "ParagraphSetScroll",
		"ListAppendItem", "ListAppendItems", "ListSetSelected",
		"ListSetOffset", "ListSetDirection", "ListSetHighlight",
		"TableSetHeader", "TableAppendRow", "TableAppendRows",
		"TableSetWidths", "TableSetColumnSpacing", "TableSetSelected",
		"TableSetStyles",
		"GaugeSetRatio", "GaugeSetLabel", "GaugeSetStyles",
		"LineGaugeSetRatio", "LineGaugeSetLabel", "LineGaugeSetStyle",
		"TabsAppendTitle", "TabsClearTitles", "TabsSetSelected",
		"TabsSetDivider", "TabsSetStyles",
		"BarChartSetValues", "BarChartSetLabels", "BarChartSetBarGeometry",
		"BarChartSetStyles",
		"SparklineSetValues", "SparklineSetMax", "SparklineSetStyle",
		"ChartAddDataset", "ChartSetXAxis", "ChartSetYAxis", "ChartSetStyle",
		"ScrollbarConfigure", "ScrollbarSetStyles",
		"CanvasSetBounds", "CanvasSetBackground", "CanvasAddLine",
		"CanvasAddRect", "CanvasAddPoints",
	},
	"render": {
		"Render", "DrawWidget",
		"HeadlessText", "HeadlessStyles", "HeadlessStylesEx", "HeadlessCells",
	},
	"terminal": {
		"OpenTerminal", "OpenHeadless", "CloseTerminal",
		"EnableRaw", "DisableRaw", "EnterAlt", "LeaveAlt",
		"TerminalSize", "SetCursor", "CursorPosition", "HideCursor",
		"ClearScreen",
	},
	"event": {
		"InjectKey", "InjectMouse", "InjectResize",
		"PollEvent", "WaitEvent",
	},
	"introspection": {
		"Manifest",
	},
}

// Manifest returns the JSON symbol manifest of the bridge surface.
func Manifest() string {
	out := "{}"
	out, _ = sjson.Set(out, "name", "termbridge")
	out, _ = sjson.Set(out, "version", Version())
	out, _ = sjson.Set(out, "features", Features())
	for _, group := range []string{
		"lifecycle", "color", "layout", "registry", "widget",
		"render", "terminal", "event", "introspection",
	} {
		for _, name := range exports[group] {
			out, _ = sjson.Set(out, "exports."+group+".-1", name)
		}
	}
	return out
}
