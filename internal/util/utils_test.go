package util

import (
	"testing"

	"cpu-scheduler/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	details := []responses.ProcessResponse{
		{WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{WaitingTime: 4, ResponseTime: 3, TurnAroundTime: 7},
	}
	waiting, response, turnaround := CalculateAverage(details)
	if waiting != 2 || response != 1.5 || turnaround != 6 {
		t.Errorf("averages = %v/%v/%v, want 2/1.5/6", waiting, response, turnaround)
	}

	waiting, response, turnaround = CalculateAverage(nil)
	if waiting != 0 || response != 0 || turnaround != 0 {
		t.Error("empty input must average to zero")
	}
}
