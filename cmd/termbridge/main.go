// Package main is the hosting shell for the termbridge engine: it sources
// configuration from flags, TERMBRIDGE_* environment variables and an
// optional TOML file, then runs a demonstration dashboard either on the
// live terminal or headless.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/dshills/termbridge/internal/config"
	"github.com/dshills/termbridge/pkg/bridge"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath   string
	showManifest bool
	showVersion  bool
	headless     bool
	trace        bool
	logPath      string
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to TOML configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to TOML configuration file (shorthand)")
	flag.BoolVar(&opts.showManifest, "manifest", false, "Print the export manifest as JSON and exit")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version information and exit")
	flag.BoolVar(&opts.headless, "headless", false, "Render off-screen and print the text snapshot")
	flag.BoolVar(&opts.trace, "trace", false, "Enable per-call trace logging")
	flag.StringVar(&opts.logPath, "log", "", "Log file path")
	flag.Parse()
	return opts
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("termbridge %s (features %#x)\n", bridge.Version(), bridge.Features())
		return 0
	}
	if opts.showManifest {
		fmt.Println(bridge.Manifest())
		return 0
	}

	cfg, err := config.Load(opts.configPath, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	// Flags are the topmost layer.
	if opts.trace {
		cfg.Trace = true
	}
	if opts.logPath != "" {
		cfg.LogPath = opts.logPath
	}

	if err := bridge.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer bridge.Shutdown()

	live := !opts.headless && term.IsTerminal(int(os.Stdout.Fd()))
	if live {
		return runLive()
	}
	return runHeadless()
}

// widgets holds the demo dashboard's handles; layout reflows them into a
// draw batch for a target size.
type widgets struct {
	title uint64
	gauge uint64
	list  uint64
	spark uint64
}

// dashboard builds the demo widgets once.
func dashboard() (widgets, bridge.Status) {
	title, st := bridge.NewTabs()
	if !st.OK() {
		return widgets{}, st
	}
	bridge.TabsAppendTitle(title, []bridge.Span{{Text: "Overview"}})
	bridge.TabsAppendTitle(title, []bridge.Span{{Text: "Activity"}})
	bridge.TabsSetSelected(title, 0)

	gauge, _ := bridge.NewGauge()
	bridge.GaugeSetRatio(gauge, 0.62)
	bridge.GaugeSetLabel(gauge, []bridge.Span{{Text: "build 62%"}})
	bridge.SetBlock(gauge, bridge.BlockSpec{
		Borders: bridge.BorderAll,
		Type:    bridge.BorderRounded,
		Title:   []bridge.Span{{Text: "Progress"}},
	})

	list, _ := bridge.NewList()
	bridge.ListAppendItems(list, [][]bridge.Span{
		{{Text: "compile core"}},
		{{Text: "link objects"}},
		{{Text: "run checks"}},
	})
	bridge.ListSetSelected(list, 1)
	bridge.ListSetHighlight(list, "> ", bridge.Style{Mods: bridge.ModBold})
	bridge.SetBlock(list, bridge.BlockSpec{
		Borders: bridge.BorderAll,
		Title:   []bridge.Span{{Text: "Steps"}},
	})

	spark, _ := bridge.NewSparkline()
	bridge.SparklineSetValues(spark, []uint64{2, 5, 3, 8, 6, 9, 4, 7})
	bridge.SetBlock(spark, bridge.BlockSpec{
		Borders: bridge.BorderAll,
		Title:   []bridge.Span{{Text: "Load"}},
	})

	return widgets{title: title, gauge: gauge, list: list, spark: spark}, bridge.StatusOK
}

// layout reflows the dashboard into a draw batch for the target size.
func layout(w widgets, width, height int) []bridge.DrawCmd {
	rows := bridge.LayoutSplit(
		bridge.Rect{Width: width, Height: height},
		bridge.DirVertical,
		[]bridge.Constraint{
			{Kind: bridge.ConstraintFixed, Value: 1},
			{Kind: bridge.ConstraintFixed, Value: 3},
			{Kind: bridge.ConstraintMin, Value: 3},
		}, 0, [4]int{})
	cols := bridge.LayoutSplit(rows[2], bridge.DirHorizontal,
		[]bridge.Constraint{
			{Kind: bridge.ConstraintPercent, Value: 60},
			{Kind: bridge.ConstraintMin, Value: 10},
		}, 1, [4]int{})

	return []bridge.DrawCmd{
		{Kind: 5, Handle: w.title, Area: rows[0]},
		{Kind: 4, Handle: w.gauge, Area: rows[1]},
		{Kind: 2, Handle: w.list, Area: cols[0]},
		{Kind: 7, Handle: w.spark, Area: cols[1]},
	}
}

func runHeadless() int {
	w, st := dashboard()
	if !st.OK() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", st)
		return 1
	}
	out, st := bridge.HeadlessText(layout(w, 60, 12), 60, 12)
	if !st.OK() {
		fmt.Fprintf(os.Stderr, "Error: render failed: %v\n", st)
		return 1
	}
	fmt.Println(out)
	return 0
}

func runLive() int {
	if st := bridge.OpenTerminal(); !st.OK() {
		fmt.Fprintf(os.Stderr, "Error: cannot open terminal: %v\n", st)
		return 1
	}
	defer bridge.CloseTerminal()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	dash, st := dashboard()
	if !st.OK() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", st)
		return 1
	}

	for {
		w, h, st := bridge.TerminalSize()
		if !st.OK() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", st)
			return 1
		}
		if st := bridge.Render(layout(dash, w, h)); !st.OK() {
			fmt.Fprintf(os.Stderr, "Error: render failed: %v\n", st)
			return 1
		}

		select {
		case <-signals:
			return 0
		default:
		}
		ev, ok := bridge.WaitEvent(200 * time.Millisecond)
		if !ok {
			continue
		}
		switch {
		case ev.Kind == bridge.EventKey && (ev.Rune == 'q' || ev.KeyCode == bridge.KeyEsc):
			return 0
		case ev.Kind == bridge.EventResize:
			// Next loop pass renders at the new size.
		}
	}
}
