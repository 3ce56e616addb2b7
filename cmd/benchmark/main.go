package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"

	ls "github.com/knutsoned/lazysignals"
)

var (
	widths     = []int{1, 10, 100}
	heights    = []int{1, 10, 100}
	iters      = flag.Int("iters", 100, "send+tick iterations per shape")
	cpuprofile = flag.String("cpuprofile", "", "write a cpu profile to this file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(false)
	benchmarkPropagate(true)
}

type shapeResult struct {
	width, height int
	ticks         int64
	duration      time.Duration
}

func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Lazy Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	summaries := make([]shapeResult, 0, len(widths)*len(heights))

	for _, w := range widths {
		for _, h := range heights {
			tach := tachymeter.New(&tachymeter.Config{Size: *iters})

			rs := ls.NewReactiveSystem(ls.WithLogger(quiet))
			src := ls.State(rs, 1)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					last = ls.Computed1(rs, last, addOne)
				}
				ls.Effect1(rs, last, pass)
			}
			rs.Tick()

			start := time.Now()
			for i := 0; i < *iters; i++ {
				tickStart := time.Now()
				ls.Send(rs, src, i+2)
				rs.Tick()
				tach.AddTime(time.Since(tickStart))
			}
			total := time.Since(start)

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
			summaries = append(summaries, shapeResult{
				width:    w,
				height:   h,
				ticks:    int64(*iters),
				duration: total,
			})
		}
	}

	if shouldRender {
		tbl.Render()
		renderSummary(summaries)
	}
}

func renderSummary(results []shapeResult) {
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"size", "cells", "ticks", "time", "ticks/sec"})

	for _, r := range results {
		cells := int64(1 + r.width*r.height + r.width)
		rate := float64(r.ticks) / r.duration.Seconds()
		tbl.Append([]string{
			fmt.Sprintf("%dx%d", r.width, r.height),
			humanize.Comma(cells),
			humanize.Comma(r.ticks),
			fmt.Sprint(r.duration),
			humanize.Comma(int64(rate)),
		})
	}
	tbl.Render()
}

func addOne(v *int) (int, error) {
	if v == nil {
		return 0, nil
	}
	return *v + 1, nil
}

func pass(v *int) error {
	return nil
}
