package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

const table = `PID Burst Priority Arrival
=========================
P1 5 2 0
P2 3 1 1
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSimulate_PlainFromStdin(t *testing.T) {
	out, err := execute(t, table, "simulate", "--log-level", "error")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, title := range []string{
		"First-Come-First-Served (FCFS)",
		"Shortest-Job-First (SJF)",
		"Shortest-Remaining_Time-First (SRTF)",
		"Round-Robin (RR)",
		"PRIORITY_NON_PREEMPTIVE",
		"PRIORITY_PREEMPTIVE_WITH_RR",
	} {
		if !strings.Contains(out, title) {
			t.Errorf("output missing %q", title)
		}
	}
	if strings.Index(out, "Round-Robin (RR)") > strings.Index(out, "PRIORITY_NON_PREEMPTIVE") {
		t.Error("policies not printed in driver order")
	}
}

func TestSimulate_JSONSelectedPolicies(t *testing.T) {
	out, err := execute(t, table, "simulate", "-", "--policy", "srt,rr", "--quantum", "2", "--format", "json")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	var results []responses.ScheduleResponse
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Algorithm != "srt" || results[1].Algorithm != "rr" {
		t.Errorf("algorithms = %s, %s", results[0].Algorithm, results[1].Algorithm)
	}
	if results[1].TimeQuantum != 2 {
		t.Errorf("rr quantum = %d, want 2", results[1].TimeQuantum)
	}
}

func TestSimulate_InvalidQuantumSkipsOnlyRoundRobin(t *testing.T) {
	out, err := execute(t, table, "simulate", "--quantum", "0", "--format", "json", "--log-level", "error")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	var results []responses.ScheduleResponse
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 4 {
		t.Errorf("got %d results, want 4", len(results))
	}
}

func TestSimulate_ValidationIsFatal(t *testing.T) {
	input := "h\n=\nP1 5 2 0\nP1 3 1 1\n"
	out, err := execute(t, input, "simulate")
	if !errors.Is(err, core.ErrInvalidProcessSet) {
		t.Fatalf("err = %v, want ErrInvalidProcessSet", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestSimulate_UnknownPolicy(t *testing.T) {
	if _, err := execute(t, table, "simulate", "--policy", "lottery"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestSimulate_RecordAndHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	if _, err := execute(t, table, "simulate", "--db", db, "--record", "--policy", "fcfs", "--log-level", "error"); err != nil {
		t.Fatalf("simulate: %v", err)
	}
	out, err := execute(t, "", "history", "--db", db)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "run_") || !strings.Contains(out, "fcfs") {
		t.Errorf("history output missing run:\n%s", out)
	}
}

func TestHistory_RequiresDB(t *testing.T) {
	if _, err := execute(t, "", "history"); err == nil {
		t.Fatal("expected error without database")
	}
}
