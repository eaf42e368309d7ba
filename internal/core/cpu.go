package core

// Slice is one contiguous stretch of execution on the CPU.
type Slice struct {
	PID   int `json:"process_id"`
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single logical processor. The clock only moves when a policy
// executes a process or skips an idle gap.
type Cpu struct {
	Clock    int
	Timeline []Slice
	Metric   CpuMetric
}

// IdleUntil advances the clock to t, accounting the gap as idle time.
// It does nothing if t is not in the future.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.Clock {
		return
	}
	c.Metric.IdleTime += t - c.Clock
	c.Clock = t
	c.Metric.TotalTime = c.Clock
}

// Execute runs p for units time units, or less if p finishes first, and
// returns the units actually consumed. Completion is recorded the moment
// RemainingTime reaches zero.
func (c *Cpu) Execute(p *Process, units int) int {
	if units > p.RemainingTime {
		units = p.RemainingTime
	}
	if units <= 0 {
		if p.RemainingTime <= 0 && !p.IsCompleted {
			c.complete(p)
		}
		return 0
	}
	if !p.Started {
		p.Started = true
		p.StartTime = c.Clock
	}

	start := c.Clock
	c.Clock += units
	p.RemainingTime -= units
	c.Metric.UtilizationTime += units
	c.Metric.TotalTime = c.Clock

	if n := len(c.Timeline); n > 0 && c.Timeline[n-1].PID == p.ID && c.Timeline[n-1].Stop == start {
		c.Timeline[n-1].Stop = c.Clock
	} else {
		c.Timeline = append(c.Timeline, Slice{PID: p.ID, Start: start, Stop: c.Clock})
	}

	if p.RemainingTime == 0 {
		c.complete(p)
	}
	return units
}

func (c *Cpu) complete(p *Process) {
	p.CompletionTime = c.Clock
	p.IsCompleted = true
}

// ContextSwitches counts the dispatches after the first one.
func (c *Cpu) ContextSwitches() int {
	if len(c.Timeline) == 0 {
		return 0
	}
	return len(c.Timeline) - 1
}
