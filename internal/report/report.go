package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

type Format string

const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

var ErrUnknownFormat = errors.New("unknown report format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPlain, FormatTable, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

const separator = "============================================"

// Options controls rendering.
type Options struct {
	Format Format
	Gantt  bool
}

// Write renders every result in order. Results without processes produce no
// output.
func Write(w io.Writer, results []responses.ScheduleResponse, opts Options) error {
	nonEmpty := make([]responses.ScheduleResponse, 0, len(results))
	for _, r := range results {
		if len(r.Details) > 0 {
			nonEmpty = append(nonEmpty, r)
		}
	}

	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nonEmpty)
	case FormatTable:
		for _, r := range nonEmpty {
			outputTitle(w, r.Title)
			if opts.Gantt {
				outputGantt(w, r)
			}
			outputSchedule(w, r)
		}
		return nil
	case FormatPlain, "":
		if len(nonEmpty) == 0 {
			return nil
		}
		_, _ = fmt.Fprintln(w, separator)
		for _, r := range nonEmpty {
			outputPlain(w, r)
			if opts.Gantt {
				outputGantt(w, r)
			}
			_, _ = fmt.Fprintln(w, separator)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

// outputPlain prints the fixed-width PID/turnaround/waiting layout.
func outputPlain(w io.Writer, r responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, r.Title)
	_, _ = fmt.Fprintln(w, "PID      Turnaround_Time      Waiting_Time")
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%-9d%-21d%d\n", d.ProcessId, d.TurnAroundTime, d.WaitingTime)
	}
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\nAverage Waiting Time: %.2f\n",
		r.AverageTurnAroundTime, r.AverageWaitingTime)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, r responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(r.Timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}
	_, _ = fmt.Fprint(w, "|")
	for _, s := range r.Timeline {
		pid := fmt.Sprint(s.PID)
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range r.Timeline {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(r.Timeline)-1 {
			_, _ = fmt.Fprint(w, s.Stop)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, r responses.ScheduleResponse) {
	rows := make([][]string, 0, len(r.Details))
	for _, d := range r.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", r.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", r.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", r.CpuThroughput)})
	table.Render()
}

// WriteHistory renders stored runs as a table.
func WriteHistory(w io.Writer, runs []HistoryRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Run", "Policy", "Quantum", "Processes", "Avg Wait", "Avg Turnaround", "Created"})
	for _, run := range runs {
		quantum := "-"
		if run.TimeQuantum > 0 {
			quantum = fmt.Sprint(run.TimeQuantum)
		}
		table.Append([]string{
			run.ID,
			run.Policy,
			quantum,
			fmt.Sprint(run.Processes),
			fmt.Sprintf("%.2f", run.AverageWaitingTime),
			fmt.Sprintf("%.2f", run.AverageTurnAroundTime),
			run.CreatedAt,
		})
	}
	table.Render()
}

// HistoryRow is one stored run as shown by WriteHistory.
type HistoryRow struct {
	ID                    string
	Policy                string
	TimeQuantum           int
	Processes             int
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	CreatedAt             string
}
