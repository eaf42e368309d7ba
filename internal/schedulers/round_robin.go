package schedulers

import (
	"fmt"
	"math"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin gives each ready process up to timeQuantum units in FIFO
// order. The working copy is sorted by (arrival, id) first, so
// Outcome.Processes comes back in that order.
//
// After every slice the processes that arrived during it are queued before
// the preempted process is put back; swapping the two changes who runs next.
func ScheduleRoundRobin(set core.ProcessSet, timeQuantum int) (*Outcome, error) {
	if timeQuantum <= 0 {
		return nil, fmt.Errorf("round robin: %w (got %d)", ErrInvalidQuantum, timeQuantum)
	}
	work, cpu := prepare(set)
	work.SortInPlace(core.ArrivalOrder)

	queue := core.NewReadyQueue(len(work))
	for i := range work {
		if work[i].ArrivalTime == 0 {
			queue.Enqueue(i)
		}
	}

	completed := 0
	for completed < len(work) {
		if queue.IsEmpty() {
			if !idle(work, cpu) {
				return finish(RoundRobin, timeQuantum, work, cpu, true), nil
			}
			enqueueArrived(work, queue, math.MinInt, cpu.Clock)
			continue
		}

		i, _ := queue.Dequeue()
		start := cpu.Clock
		cpu.Execute(&work[i], timeQuantum)
		if work[i].IsCompleted {
			completed++
		}

		enqueueArrived(work, queue, start, cpu.Clock)
		if !work[i].IsCompleted {
			queue.Enqueue(i)
		}
	}

	return finish(RoundRobin, timeQuantum, work, cpu, false), nil
}

// enqueueArrived queues every incomplete process with arrival in (after, upTo].
// work is already in (arrival, id) order, so ties are queued by id.
func enqueueArrived(work core.ProcessSet, queue *core.ReadyQueue, after, upTo int) {
	for i := range work {
		p := &work[i]
		if p.IsCompleted || queue.Contains(i) {
			continue
		}
		if p.ArrivalTime > after && p.ArrivalTime <= upTo {
			queue.Enqueue(i)
		}
	}
}
