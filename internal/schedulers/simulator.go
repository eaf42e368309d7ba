package schedulers

import (
	"errors"
	"fmt"
	"log/slog"

	"cpu-scheduler/internal/core"
)

// Simulator runs policies against a process set and carries the quanta for
// the two round robin variants.
type Simulator struct {
	RoundRobinQuantum         int
	PriorityRoundRobinQuantum int
	// Limits bounds accepted sets; zero fields use core.DefaultLimits.
	Limits core.Limits

	logger *slog.Logger
}

func NewSimulator(logger *slog.Logger, roundRobinQuantum, priorityRoundRobinQuantum int) *Simulator {
	return &Simulator{
		RoundRobinQuantum:         roundRobinQuantum,
		PriorityRoundRobinQuantum: priorityRoundRobinQuantum,
		logger:                    logger.With("component", "simulator"),
	}
}

// Validate checks the set against the simulator's limits.
func (s *Simulator) Validate(set core.ProcessSet) error {
	return set.ValidateWithin(s.Limits)
}

// Run executes one policy. The set is not validated here; see RunAll.
func (s *Simulator) Run(set core.ProcessSet, policy Policy) (*Outcome, error) {
	var (
		outcome *Outcome
		err     error
	)
	switch policy {
	case FirstComeFirstServe:
		outcome, err = ScheduleFirstComeFirstServe(set)
	case ShortestJobFirst:
		outcome, err = ScheduleShortestJobFirst(set)
	case ShortestRemainingTime:
		outcome, err = ScheduleShortestRemainingTime(set)
	case RoundRobin:
		outcome, err = ScheduleRoundRobin(set, s.RoundRobinQuantum)
	case PriorityNonPreemptive:
		outcome, err = SchedulePriority(set)
	case PriorityRoundRobin:
		outcome, err = SchedulePriorityRoundRobin(set, s.PriorityRoundRobinQuantum)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
	if err != nil {
		return nil, err
	}

	if outcome.Stalled {
		s.logger.Warn("run ended with incomplete processes",
			"policy", policy,
			"completed", outcome.Processes.Completed(),
			"processes", len(outcome.Processes))
	}
	s.logger.Debug("run finished",
		"policy", policy,
		"processes", len(outcome.Processes),
		"total_time", outcome.Metric.TotalTime,
		"idle_time", outcome.Metric.IdleTime,
		"slices", len(outcome.Timeline))
	return outcome, nil
}

// RunAll validates the set once and then runs every policy in order. A
// validation failure aborts before any policy runs. A policy rejected for an
// invalid quantum is logged and skipped; the others still run.
func (s *Simulator) RunAll(set core.ProcessSet, policies []Policy) ([]*Outcome, error) {
	if err := s.Validate(set); err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		policies = AllPolicies()
	}

	outcomes := make([]*Outcome, 0, len(policies))
	for _, policy := range policies {
		outcome, err := s.Run(set, policy)
		if errors.Is(err, ErrInvalidQuantum) {
			s.logger.Warn("skipping policy", "policy", policy, "error", err)
			continue
		}
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}
