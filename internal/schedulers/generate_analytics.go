package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse turns an outcome into the report shape shared by the API,
// the CLI and the run store.
func GenerateResponse(outcome *Outcome) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(outcome.Processes))
	for _, p := range outcome.Processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(p))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	metric := outcome.Metric
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(outcome.Processes.Completed()) / float64(metric.TotalTime)
	}

	timeline := outcome.Timeline
	if timeline == nil {
		timeline = []core.Slice{}
	}

	return responses.ScheduleResponse{
		Algorithm:             string(outcome.Policy),
		Title:                 outcome.Policy.Title(),
		TimeQuantum:           outcome.TimeQuantum,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		ContextSwitches:       outcome.ContextSwitches,
		Details:               proccessDetails,
		Timeline:              timeline,
	}
}

func generateProcessDetails(p core.Process) responses.ProcessResponse {
	details := responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		CompletionTime: p.CompletionTime,
		TurnAroundTime: p.TurnaroundTime,
		WaitingTime:    p.WaitingTime,
		Completed:      p.IsCompleted,
	}
	if p.Started {
		details.ResponseTime = p.StartTime - p.ArrivalTime
	}
	return details
}
