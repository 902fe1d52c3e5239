package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/timeline-visualizer/internal/config"
	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/timeline"
)

// report - результат разбора файла
type report struct {
	File     string               `json:"file"`
	Filter   *window              `json:"filter,omitempty"`
	Dataset  domain.Summary       `json:"dataset"`
	View     domain.Summary       `json:"view"`
	Bounds   *[2][2]float64       `json:"bounds,omitempty"`
	Stats    *timeline.BuildStats `json:"stats"`
	Events   []timeline.Event     `json:"events,omitempty"`
	Duration string               `json:"duration"`
}

type window struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "path to Timeline.json")
	from := fs.String("from", "", "first day to include (YYYY-MM-DD)")
	to := fs.String("to", "", "last day to include (YYYY-MM-DD)")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	events := fs.Int("events", 0, "number of recent events to print")
	envFile := fs.String("env", ".env", "configuration file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *file == "" {
		fmt.Fprintln(stderr, "inspect: -file is required")
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadFrom(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "inspect: %v\n", err)
		return 1
	}

	rep, err := inspect(cfg.Timeline, *file, *from, *to, *events)
	if err != nil {
		fmt.Fprintf(stderr, "inspect: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(stderr, "inspect: %v\n", err)
			return 1
		}
		return 0
	}

	printReport(stdout, rep)
	return 0
}

func inspect(cfg config.TimelineConfig, path, from, to string, events int) (*report, error) {
	w, err := timeline.ParseDateWindow(from, to, cfg.Location)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	started := time.Now()
	ds, stats, err := timeline.NewBuilder(cfg.Sampling(), cfg.Location).
		Build(timeline.LimitReader(f, cfg.MaxUploadBytes))
	if err != nil {
		return nil, err
	}

	view := timeline.FilterByDate(ds, w)
	rep := &report{
		File:     path,
		Dataset:  ds.Summarize(),
		View:     view.Summarize(),
		Stats:    stats,
		Duration: time.Since(started).Round(time.Millisecond).String(),
	}
	if !w.IsZero() {
		rep.Filter = &window{From: w.FromDate(), To: w.ToDate()}
	}

	b, err := timeline.ComputeBounds(view)
	switch {
	case err == nil:
		arr := b.Array()
		rep.Bounds = &arr
	case !errors.Is(err, timeline.ErrNoData):
		return nil, err
	}

	if events > 0 {
		rep.Events = timeline.RecentEvents(view, events)
	}
	return rep, nil
}

func printReport(out io.Writer, rep *report) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "file\t%s\n", rep.File)
	fmt.Fprintf(tw, "parsed in\t%s\n", rep.Duration)
	fmt.Fprintf(tw, "segments\t%d (%d empty)\n", rep.Stats.Segments, rep.Stats.EmptySegments)
	fmt.Fprintf(tw, "date range\t%s\n", formatRange(rep.Dataset.DateRange))
	if rep.Filter != nil {
		fmt.Fprintf(tw, "filter\t%s .. %s\n", orDash(rep.Filter.From), orDash(rep.Filter.To))
	}
	fmt.Fprintf(tw, "track points\t%d of %d\n", rep.View.TrackPoints, rep.Dataset.TrackPoints)
	fmt.Fprintf(tw, "visits\t%d of %d\n", rep.View.Visits, rep.Dataset.Visits)
	fmt.Fprintf(tw, "activities\t%d of %d\n", rep.View.Activities, rep.Dataset.Activities)
	if rep.Bounds != nil {
		fmt.Fprintf(tw, "bounds\t[[%.6f, %.6f], [%.6f, %.6f]]\n",
			rep.Bounds[0][0], rep.Bounds[0][1], rep.Bounds[1][0], rep.Bounds[1][1])
	} else {
		fmt.Fprintf(tw, "bounds\tno data to display\n")
	}
	if rep.Stats.CappedPoints > 0 {
		fmt.Fprintf(tw, "capped points\t%d\n", rep.Stats.CappedPoints)
	}
	if rep.Stats.InvertedSpans > 0 {
		fmt.Fprintf(tw, "inverted spans\t%d\n", rep.Stats.InvertedSpans)
	}

	reasons := make([]string, 0, len(rep.Stats.Skips))
	for reason := range rep.Stats.Skips {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(tw, "skipped %s\t%d\n", reason, rep.Stats.Skips[timeline.SkipReason(reason)])
	}

	for _, e := range rep.Events {
		fmt.Fprintf(tw, "%s\t%s %s (%s)\n", e.Start.Format(time.RFC3339), e.Kind, e.Title,
			time.Duration(e.DurationSeconds*float64(time.Second)).Round(time.Second))
	}
}

func formatRange(r domain.DateRange) string {
	if !r.IsSet() {
		return "-"
	}
	start, end := "-", "-"
	if r.Start != nil {
		start = r.Start.Format(time.RFC3339)
	}
	if r.End != nil {
		end = r.End.Format(time.RFC3339)
	}
	return start + " .. " + end
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
