package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
)

var ErrInvalidProcessID = errors.New("invalid process id")

// ProcessID accepts either a bare integer or a letter-prefixed token such as "P3".
type ProcessID int

// ParseProcessID strips an optional "P"/"p" prefix and parses the rest.
func ParseProcessID(s string) (int, error) {
	token := strings.TrimSpace(s)
	trimmed := strings.TrimPrefix(strings.TrimPrefix(token, "P"), "p")
	id, err := strconv.Atoi(trimmed)
	if err != nil || trimmed == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProcessID, s)
	}
	return id, nil
}

func (p *ProcessID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = ProcessID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProcessID, string(data))
	}
	id, err := ParseProcessID(s)
	if err != nil {
		return err
	}
	*p = ProcessID(id)
	return nil
}

func (p *ProcessID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrInvalidProcessID, node.Line)
	}
	id, err := ParseProcessID(node.Value)
	if err != nil {
		return err
	}
	*p = ProcessID(id)
	return nil
}

type Job struct {
	ProcessId   ProcessID `json:"process_id" yaml:"process_id"`
	ArrivalTime int       `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int       `json:"burst_time" yaml:"burst_time"`
	Priority    int       `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
	// TimeQuantum overrides the configured quantum of both round robin
	// variants when positive. Zero keeps the configured quanta; negative
	// values are rejected by the API.
	TimeQuantum int `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// ProcessSet converts the jobs, in request order, into a fresh process set.
func (r *ScheduleRequests) ProcessSet() core.ProcessSet {
	set := make(core.ProcessSet, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		set = append(set, core.Process{
			ID:          int(job.ProcessId),
			Priority:    job.Priority,
			BurstTime:   job.BurstTime,
			ArrivalTime: job.ArrivalTime,
		})
	}
	set.Reset()
	return set
}

// FromProcessSet is the inverse of ProcessSet, used when storing runs.
func FromProcessSet(set core.ProcessSet, timeQuantum int) ScheduleRequests {
	jobs := make([]Job, 0, len(set))
	for _, p := range set {
		jobs = append(jobs, Job{
			ProcessId:   ProcessID(p.ID),
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		})
	}
	return ScheduleRequests{Jobs: jobs, TimeQuantum: timeQuantum}
}
