package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int  `json:"process_id"`
	ArrivalTime    int  `json:"arrival_time"`
	BurstTime      int  `json:"burst_time"`
	Priority       int  `json:"priority"`
	CompletionTime int  `json:"completion_time"`
	ResponseTime   int  `json:"response_time"`
	TurnAroundTime int  `json:"turn_around_time"`
	WaitingTime    int  `json:"waiting_time"`
	Completed      bool `json:"completed"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Title                 string            `json:"title"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []core.Slice      `json:"timeline"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details []core.FieldError `json:"details,omitempty"`
}
