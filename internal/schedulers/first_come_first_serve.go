package schedulers

import "cpu-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in (arrival, id)
// order. The ordering is local; Outcome.Processes keeps the input order.
func ScheduleFirstComeFirstServe(set core.ProcessSet) (*Outcome, error) {
	work, cpu := prepare(set)

	for _, i := range work.Sorted(work.All(), core.ArrivalOrder) {
		p := &work[i]
		cpu.IdleUntil(p.ArrivalTime)
		cpu.Execute(p, p.RemainingTime)
	}

	return finish(FirstComeFirstServe, 0, work, cpu, false), nil
}
