package schedulers

import "cpu-scheduler/internal/core"

var shortestJob = core.Comparator{core.ByBurst, core.ByArrival, core.ByID}

// ScheduleShortestJobFirst is non-preemptive: at every scheduling point the
// arrived process with the smallest burst runs to completion.
func ScheduleShortestJobFirst(set core.ProcessSet) (*Outcome, error) {
	return runToCompletion(ShortestJobFirst, set, shortestJob), nil
}

// runToCompletion drives the non-preemptive selectors shared by SJF and
// Priority: pick the minimum under cmp, run it fully, repeat.
func runToCompletion(policy Policy, set core.ProcessSet, cmp core.Comparator) *Outcome {
	work, cpu := prepare(set)

	completed := 0
	for completed < len(work) {
		i := work.SelectMin(work.Ready(cpu.Clock), cmp)
		if i == -1 {
			if !idle(work, cpu) {
				return finish(policy, 0, work, cpu, true)
			}
			continue
		}
		cpu.Execute(&work[i], work[i].RemainingTime)
		completed++
	}

	return finish(policy, 0, work, cpu, false)
}
