// Command eventstat summarizes an hdlbench event log: how many events of
// each kind were emitted, which projects saw the most activity, and how
// often compiles failed.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hdlbench/hdlbench/internal/config"
	"github.com/hdlbench/hdlbench/internal/eventlog"
)

type countEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type eventReport struct {
	Source          string       `json:"source"`
	Sessions        int          `json:"sessions"`
	Events          int          `json:"events"`
	FirstEvent      time.Time    `json:"first_event,omitempty"`
	LastEvent       time.Time    `json:"last_event,omitempty"`
	ByEvent         []countEntry `json:"by_event"`
	ByProject       []countEntry `json:"by_project"`
	Compiles        int          `json:"compiles"`
	CompileFailures int          `json:"compile_failures"`
	FailureRatio    float64      `json:"failure_ratio"`
}

func main() {
	var inputPath string
	var outputPath string
	var session string
	flag.StringVar(&inputPath, "in", config.EventLogPath(), "event log path")
	flag.StringVar(&outputPath, "out", "", "output JSON path (optional, defaults to stdout)")
	flag.StringVar(&session, "session", "", "restrict the report to one session id")
	flag.Parse()

	if inputPath == "" {
		exit(errors.New("missing --in path"))
	}

	events, err := eventlog.Read(inputPath)
	if err != nil {
		exit(fmt.Errorf("read event log: %w", err))
	}

	report := buildReport(inputPath, filterSession(events, session))

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		exit(fmt.Errorf("encode report: %w", err))
	}

	if outputPath == "" {
		fmt.Println(string(encoded))
		return
	}
	if err := os.WriteFile(outputPath, append(encoded, '\n'), 0o644); err != nil {
		exit(fmt.Errorf("write output: %w", err))
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "eventstat: %v\n", err)
	os.Exit(1)
}

func filterSession(events []eventlog.Event, session string) []eventlog.Event {
	if strings.TrimSpace(session) == "" {
		return events
	}
	var out []eventlog.Event
	for _, ev := range events {
		if ev.Session == session {
			out = append(out, ev)
		}
	}
	return out
}

func buildReport(path string, events []eventlog.Event) eventReport {
	report := eventReport{Source: path, Events: len(events)}
	if len(events) == 0 {
		return report
	}

	sessions := make(map[string]struct{})
	byEvent := make(map[string]int)
	byProject := make(map[string]int)
	for _, ev := range events {
		if ev.Session != "" {
			sessions[ev.Session] = struct{}{}
		}
		byEvent[ev.Event]++
		if ev.Project != "" {
			byProject[ev.Project]++
		}
		if !ev.Timestamp.IsZero() {
			if report.FirstEvent.IsZero() || ev.Timestamp.Before(report.FirstEvent) {
				report.FirstEvent = ev.Timestamp
			}
			if ev.Timestamp.After(report.LastEvent) {
				report.LastEvent = ev.Timestamp
			}
		}
		if ev.Event == "compile_finished" {
			report.Compiles++
			if !strings.HasPrefix(ev.Detail, "ok=true") {
				report.CompileFailures++
			}
		}
	}

	report.Sessions = len(sessions)
	report.ByEvent = sortedCounts(byEvent)
	report.ByProject = sortedCounts(byProject)
	if report.Compiles > 0 {
		report.FailureRatio = float64(report.CompileFailures) / float64(report.Compiles)
	}
	return report
}

// sortedCounts orders by descending count, then name, so the report is
// stable across runs.
func sortedCounts(counts map[string]int) []countEntry {
	out := make([]countEntry, 0, len(counts))
	for name, count := range counts {
		out = append(out, countEntry{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
