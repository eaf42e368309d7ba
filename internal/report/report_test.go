package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func sampleResult() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm:             "fcfs",
		Title:                 "First-Come-First-Served (FCFS)",
		AverageTurnAroundTime: 6,
		AverageWaitingTime:    2,
		CpuThroughput:         0.25,
		Details: []responses.ProcessResponse{
			{ProcessId: 1, BurstTime: 5, Priority: 2, ArrivalTime: 0, CompletionTime: 5, TurnAroundTime: 5, WaitingTime: 0},
			{ProcessId: 2, BurstTime: 3, Priority: 1, ArrivalTime: 1, CompletionTime: 8, TurnAroundTime: 7, WaitingTime: 4},
		},
		Timeline: []core.Slice{{PID: 1, Start: 0, Stop: 5}, {PID: 2, Start: 5, Stop: 8}},
	}
}

func TestWrite_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []responses.ScheduleResponse{sampleResult()}, Options{Format: FormatPlain}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := separator + "\n" +
		"First-Come-First-Served (FCFS)\n" +
		"PID      Turnaround_Time      Waiting_Time\n" +
		"1        5                    0\n" +
		"2        7                    4\n" +
		"Average Turnaround Time: 6.00\n" +
		"Average Waiting Time: 2.00\n" +
		separator + "\n"
	if buf.String() != want {
		t.Errorf("plain output mismatch\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWrite_TableWithGantt(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []responses.ScheduleResponse{sampleResult()}, Options{Format: FormatTable, Gantt: true}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, s := range []string{"Gantt schedule", "Schedule table", "TURNAROUND", "0\t5\t8"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestWrite_GanttWideProcessID(t *testing.T) {
	r := sampleResult()
	r.Details = []responses.ProcessResponse{{ProcessId: 1234567890, BurstTime: 2, CompletionTime: 2, TurnAroundTime: 2}}
	r.Timeline = []core.Slice{{PID: 1234567890, Start: 0, Stop: 2}}

	var buf bytes.Buffer
	if err := Write(&buf, []responses.ScheduleResponse{r}, Options{Format: FormatPlain, Gantt: true}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "|1234567890|") {
		t.Errorf("gantt row missing id:\n%s", buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []responses.ScheduleResponse{sampleResult()}, Options{Format: FormatJSON}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got []responses.ScheduleResponse
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Details[1].CompletionTime != 8 {
		t.Errorf("unexpected JSON: %s", buf.String())
	}
}

func TestWrite_EmptyResultsProduceNoOutput(t *testing.T) {
	var buf bytes.Buffer
	empty := responses.ScheduleResponse{Title: "Round-Robin (RR)"}
	if err := Write(&buf, []responses.ScheduleResponse{empty}, Options{Format: FormatPlain}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("TABLE"); err != nil || f != FormatTable {
		t.Errorf("ParseFormat(TABLE) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) err = %v, want ErrUnknownFormat", err)
	}
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	WriteHistory(&buf, []HistoryRow{{ID: "run_1", Policy: "rr", TimeQuantum: 3, Processes: 4, CreatedAt: "2026-01-01T00:00:00Z"}})
	if !strings.Contains(buf.String(), "run_1") {
		t.Errorf("history missing run id:\n%s", buf.String())
	}
}
