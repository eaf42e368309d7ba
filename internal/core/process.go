package core

import (
	"errors"
	"fmt"
	"strings"
)

// Process is a single schedulable job. ID, Priority, BurstTime and ArrivalTime
// are input; the remaining fields are simulation state owned by whichever
// policy is running.
type Process struct {
	ID          int
	Priority    int // lower value runs first
	BurstTime   int
	ArrivalTime int

	RemainingTime  int
	WaitingTime    int
	TurnaroundTime int
	CompletionTime int
	StartTime      int
	Started        bool
	IsCompleted    bool
}

// ProcessSet is the ordered input of a simulation. Position is stable, identity is ID.
type ProcessSet []Process

// Reset restores every process to its pre-run state.
func (s ProcessSet) Reset() {
	for i := range s {
		s[i].RemainingTime = s[i].BurstTime
		s[i].WaitingTime = 0
		s[i].TurnaroundTime = 0
		s[i].CompletionTime = 0
		s[i].StartTime = 0
		s[i].Started = false
		s[i].IsCompleted = false
	}
}

// Clone returns an independent copy of s.
func (s ProcessSet) Clone() ProcessSet {
	if s == nil {
		return nil
	}
	out := make(ProcessSet, len(s))
	copy(out, s)
	return out
}

// Index returns the position of the process with the given id, or -1.
func (s ProcessSet) Index(id int) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

// TotalBurst is the CPU time the whole set needs.
func (s ProcessSet) TotalBurst() int {
	total := 0
	for i := range s {
		total += s[i].BurstTime
	}
	return total
}

// CalculateTimes derives turnaround and waiting time from completion time
// for every completed process.
func (s ProcessSet) CalculateTimes() {
	for i := range s {
		if !s[i].IsCompleted {
			continue
		}
		s[i].TurnaroundTime = s[i].CompletionTime - s[i].ArrivalTime
		s[i].WaitingTime = s[i].TurnaroundTime - s[i].BurstTime
	}
}

// Completed counts the processes that have finished.
func (s ProcessSet) Completed() int {
	n := 0
	for i := range s {
		if s[i].IsCompleted {
			n++
		}
	}
	return n
}

// ErrInvalidProcessSet is wrapped by every ValidationError.
var ErrInvalidProcessSet = errors.New("invalid process set")

// FieldError describes one violated invariant.
type FieldError struct {
	ID      int    `json:"process_id"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("process %d: %s %s", e.ID, e.Field, e.Message)
}

// ValidationError lists every invariant a ProcessSet breaks.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Details))
	for i, d := range e.Details {
		parts[i] = d.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidProcessSet, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidProcessSet }

// Limits bounds the size of a simulation. MaxTime caps the latest instant a
// schedule can reach, max(arrival) + sum(burst), which keeps the logical clock
// far from overflow and bounds the per-unit policies.
type Limits struct {
	MaxProcesses int
	MaxTime      int
}

const (
	DefaultMaxProcesses = 100
	DefaultMaxTime      = 1_000_000
)

// DefaultLimits returns the limits used by Validate.
func DefaultLimits() Limits {
	return Limits{MaxProcesses: DefaultMaxProcesses, MaxTime: DefaultMaxTime}
}

// withDefaults fills non-positive fields from DefaultLimits.
func (l Limits) withDefaults() Limits {
	if l.MaxProcesses <= 0 {
		l.MaxProcesses = DefaultMaxProcesses
	}
	if l.MaxTime <= 0 {
		l.MaxTime = DefaultMaxTime
	}
	return l
}

// Validate checks the input invariants under DefaultLimits.
func (s ProcessSet) Validate() error {
	return s.ValidateWithin(DefaultLimits())
}

// ValidateWithin checks positive burst, non-negative arrival and priority,
// unique ids, the process count and the schedule horizon. An empty set is
// valid. Set-wide violations carry ID 0.
func (s ProcessSet) ValidateWithin(limits Limits) error {
	limits = limits.withDefaults()

	var details []FieldError
	if len(s) > limits.MaxProcesses {
		details = append(details, FieldError{
			Field:   "processes",
			Message: fmt.Sprintf("count %d exceeds the limit of %d", len(s), limits.MaxProcesses),
		})
	}

	seen := make(map[int]int, len(s))
	horizon, bounded := 0, true
	for _, p := range s {
		if p.BurstTime <= 0 {
			details = append(details, FieldError{ID: p.ID, Field: "burst_time", Message: "must be positive"})
		}
		if p.ArrivalTime < 0 {
			details = append(details, FieldError{ID: p.ID, Field: "arrival_time", Message: "must not be negative"})
		}
		if p.Priority < 0 {
			details = append(details, FieldError{ID: p.ID, Field: "priority", Message: "must not be negative"})
		}
		seen[p.ID]++
		if seen[p.ID] == 2 {
			details = append(details, FieldError{ID: p.ID, Field: "process_id", Message: "is duplicated"})
		}
		if p.ArrivalTime > horizon {
			horizon = p.ArrivalTime
		}
	}

	// horizon <= MaxTime holds before every subtraction, so nothing overflows.
	if horizon > limits.MaxTime {
		bounded = false
	}
	for _, p := range s {
		if !bounded {
			break
		}
		if p.BurstTime <= 0 {
			continue
		}
		if p.BurstTime > limits.MaxTime-horizon {
			bounded = false
			break
		}
		horizon += p.BurstTime
	}
	if !bounded {
		details = append(details, FieldError{
			Field:   "schedule",
			Message: fmt.Sprintf("latest arrival plus total burst exceeds the time limit of %d", limits.MaxTime),
		})
	}

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}
