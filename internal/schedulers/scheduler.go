package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

// ErrInvalidQuantum is returned by the quantum based policies when the time
// quantum is not positive. No scheduling step is performed.
var ErrInvalidQuantum = errors.New("time quantum must be positive")

// ErrUnknownPolicy is returned by ParsePolicy.
var ErrUnknownPolicy = errors.New("unknown scheduling policy")

type Policy string

const (
	FirstComeFirstServe   Policy = "fcfs"
	ShortestJobFirst      Policy = "sjf"
	ShortestRemainingTime Policy = "srt"
	RoundRobin            Policy = "rr"
	PriorityNonPreemptive Policy = "priority"
	PriorityRoundRobin    Policy = "priority-rr"
)

// AllPolicies lists every policy in the order the simulator runs them.
func AllPolicies() []Policy {
	return []Policy{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTime,
		RoundRobin,
		PriorityNonPreemptive,
		PriorityRoundRobin,
	}
}

// Title is the display name used in reports.
func (p Policy) Title() string {
	switch p {
	case FirstComeFirstServe:
		return "First-Come-First-Served (FCFS)"
	case ShortestJobFirst:
		return "Shortest-Job-First (SJF)"
	case ShortestRemainingTime:
		return "Shortest-Remaining_Time-First (SRTF)"
	case RoundRobin:
		return "Round-Robin (RR)"
	case PriorityNonPreemptive:
		return "PRIORITY_NON_PREEMPTIVE"
	case PriorityRoundRobin:
		return "PRIORITY_PREEMPTIVE_WITH_RR"
	}
	return string(p)
}

// UsesQuantum reports whether the policy needs a time quantum.
func (p Policy) UsesQuantum() bool {
	return p == RoundRobin || p == PriorityRoundRobin
}

var policyAliases = map[string]Policy{
	"fcfs":                FirstComeFirstServe,
	"sjf":                 ShortestJobFirst,
	"srt":                 ShortestRemainingTime,
	"srtf":                ShortestRemainingTime,
	"rr":                  RoundRobin,
	"round-robin":         RoundRobin,
	"priority":            PriorityNonPreemptive,
	"priority-np":         PriorityNonPreemptive,
	"priority-rr":         PriorityRoundRobin,
	"priority-preemptive": PriorityRoundRobin,
}

// ParsePolicy resolves a policy name or alias, case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	if p, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Outcome is the result of one policy run. Processes is the policy's own
// working copy of the input; the caller's set is never modified.
type Outcome struct {
	Policy      Policy
	TimeQuantum int
	Processes   core.ProcessSet
	Timeline    []core.Slice
	Metric      core.CpuMetric
	// ContextSwitches counts dispatches after the first.
	ContextSwitches int
	// Stalled is set when the loop ran out of ready and future processes
	// while some were still incomplete.
	Stalled bool
}

// Completion returns the completion time of every process keyed by id.
func (o *Outcome) Completion() map[int]int {
	out := make(map[int]int, len(o.Processes))
	for _, p := range o.Processes {
		out[p.ID] = p.CompletionTime
	}
	return out
}

// prepare clones and resets the input so a run starts from pristine state.
func prepare(set core.ProcessSet) (core.ProcessSet, *core.Cpu) {
	work := set.Clone()
	work.Reset()
	return work, &core.Cpu{}
}

func finish(policy Policy, quantum int, work core.ProcessSet, cpu *core.Cpu, stalled bool) *Outcome {
	work.CalculateTimes()
	return &Outcome{
		Policy:          policy,
		TimeQuantum:     quantum,
		Processes:       work,
		Timeline:        cpu.Timeline,
		Metric:          cpu.Metric,
		ContextSwitches: cpu.ContextSwitches(),
		Stalled:         stalled,
	}
}

// idle moves the clock to the next arrival. It returns false when no process
// will ever arrive, which means the run cannot make progress.
func idle(work core.ProcessSet, cpu *core.Cpu) bool {
	next, ok := work.NextArrival(cpu.Clock)
	if !ok {
		return false
	}
	cpu.IdleUntil(next)
	return true
}
