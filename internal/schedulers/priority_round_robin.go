package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// SchedulePriorityRoundRobin is preemptive priority scheduling with round
// robin among processes that share the most urgent priority value.
//
// Each round collects the arrived, incomplete processes holding the minimum
// priority value, ordered by (arrival, id), and gives each of them one turn of
// up to timeQuantum units. Execution advances one unit at a time: as soon as a
// process with a strictly lower priority value has arrived the turn is cut
// short and a new round starts. The same check runs after every turn, so a
// more urgent arrival never waits for the group to finish its rotation.
func SchedulePriorityRoundRobin(set core.ProcessSet, timeQuantum int) (*Outcome, error) {
	if timeQuantum <= 0 {
		return nil, fmt.Errorf("priority round robin: %w (got %d)", ErrInvalidQuantum, timeQuantum)
	}
	work, cpu := prepare(set)

	completed := 0
	for completed < len(work) {
		group, level := priorityGroup(work, cpu.Clock)
		if len(group) == 0 {
			if !idle(work, cpu) {
				return finish(PriorityRoundRobin, timeQuantum, work, cpu, true), nil
			}
			continue
		}

		for _, i := range group {
			p := &work[i]
			if p.IsCompleted {
				continue
			}
			for t := 0; t < timeQuantum && !p.IsCompleted; t++ {
				cpu.Execute(p, 1)
				if moreUrgentArrived(work, cpu.Clock, level) {
					break
				}
			}
			if p.IsCompleted {
				completed++
			}
			if moreUrgentArrived(work, cpu.Clock, level) {
				break
			}
		}
	}

	return finish(PriorityRoundRobin, timeQuantum, work, cpu, false), nil
}

// priorityGroup returns the ready processes holding the minimum priority
// value, in (arrival, id) order, together with that value.
func priorityGroup(work core.ProcessSet, now int) ([]int, int) {
	ready := work.Ready(now)
	if len(ready) == 0 {
		return nil, 0
	}
	level := work[work.SelectMin(ready, core.Comparator{core.ByPriority})].Priority

	var group []int
	for _, i := range ready {
		if work[i].Priority == level {
			group = append(group, i)
		}
	}
	return work.Sorted(group, core.ArrivalOrder), level
}

// moreUrgentArrived reports whether an incomplete process with a priority
// value below level has arrived by now.
func moreUrgentArrived(work core.ProcessSet, now, level int) bool {
	for i := range work {
		p := &work[i]
		if !p.IsCompleted && p.ArrivalTime <= now && p.Priority < level {
			return true
		}
	}
	return false
}
