package requests

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseProcessID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"P3", 3, false},
		{"p12", 12, false},
		{" 7 ", 7, false},
		{"P", 0, true},
		{"", 0, true},
		{"Q1", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseProcessID(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidProcessID) {
				t.Errorf("ParseProcessID(%q) err = %v, want ErrInvalidProcessID", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseProcessID(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestScheduleRequests_JSON(t *testing.T) {
	body := `{"time_quantum": 4, "jobs": [
		{"process_id": "P2", "arrival_time": 1, "burst_time": 3, "priority": 1},
		{"process_id": 1, "arrival_time": 0, "burst_time": 5, "priority": 2}
	]}`
	var req ScheduleRequests
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.TimeQuantum != 4 {
		t.Errorf("quantum = %d, want 4", req.TimeQuantum)
	}

	set := req.ProcessSet()
	if len(set) != 2 || set[0].ID != 2 || set[1].ID != 1 {
		t.Fatalf("set = %+v", set)
	}
	if set[0].RemainingTime != 3 || set[0].IsCompleted {
		t.Errorf("process not reset: %+v", set[0])
	}

	if err := json.Unmarshal([]byte(`{"jobs": [{"process_id": true}]}`), &req); !errors.Is(err, ErrInvalidProcessID) {
		t.Errorf("err = %v, want ErrInvalidProcessID", err)
	}
}

func TestScheduleRequests_YAML(t *testing.T) {
	doc := `
time_quantum: 2
jobs:
  - {process_id: P1, arrival_time: 0, burst_time: 4, priority: 0}
  - {process_id: 9, arrival_time: 3, burst_time: 1, priority: 1}
`
	var req ScheduleRequests
	if err := yaml.Unmarshal([]byte(doc), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(req.Jobs) != 2 || req.Jobs[0].ProcessId != 1 || req.Jobs[1].ProcessId != 9 {
		t.Errorf("jobs = %+v", req.Jobs)
	}

	bad := "jobs:\n  - process_id: [1, 2]\n"
	if err := yaml.Unmarshal([]byte(bad), &req); !errors.Is(err, ErrInvalidProcessID) {
		t.Errorf("err = %v, want ErrInvalidProcessID", err)
	}
}

func TestFromProcessSet(t *testing.T) {
	req := ScheduleRequests{Jobs: []Job{{ProcessId: 4, ArrivalTime: 2, BurstTime: 6, Priority: 3}}}
	back := FromProcessSet(req.ProcessSet(), 5)
	if back.TimeQuantum != 5 || len(back.Jobs) != 1 || back.Jobs[0] != req.Jobs[0] {
		t.Errorf("round trip = %+v", back)
	}
}
