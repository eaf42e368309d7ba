package schedulers

import "cpu-scheduler/internal/core"

var shortestRemaining = core.Comparator{core.ByRemaining, core.ByArrival, core.ByID}

// ScheduleShortestRemainingTime is preemptive SJF. The choice is re-made
// after every time unit, so a new arrival with less remaining work takes the
// CPU at the instant it arrives.
func ScheduleShortestRemainingTime(set core.ProcessSet) (*Outcome, error) {
	work, cpu := prepare(set)

	completed := 0
	for completed < len(work) {
		i := work.SelectMin(work.Ready(cpu.Clock), shortestRemaining)
		if i == -1 {
			if !idle(work, cpu) {
				return finish(ShortestRemainingTime, 0, work, cpu, true), nil
			}
			continue
		}
		cpu.Execute(&work[i], 1)
		if work[i].IsCompleted {
			completed++
		}
	}

	return finish(ShortestRemainingTime, 0, work, cpu, false), nil
}
