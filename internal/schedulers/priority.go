package schedulers

import "cpu-scheduler/internal/core"

var highestPriority = core.Comparator{core.ByPriority, core.ByArrival, core.ByID}

// SchedulePriority is non-preemptive priority scheduling; lower values are
// more urgent. A running process is never interrupted.
func SchedulePriority(set core.ProcessSet) (*Outcome, error) {
	return runToCompletion(PriorityNonPreemptive, set, highestPriority), nil
}
