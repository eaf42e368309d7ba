package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/store"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityRoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  store.Store // nil disables run history
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, st store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		store:  st,
		logger: logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTime)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityRoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityRoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, set, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	outcomes, err := s.simulator(request).RunAll(set, schedulers.AllPolicies())
	if err != nil {
		return s.fail(ctx, err)
	}

	results := make([]responses.ScheduleResponse, 0, len(outcomes))
	for _, outcome := range outcomes {
		result := schedulers.GenerateResponse(outcome)
		if err := s.record(ctx, request, outcome, result); err != nil {
			return s.fail(ctx, err)
		}
		results = append(results, result)
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request, set, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	sim := s.simulator(request)
	if err := sim.Validate(set); err != nil {
		return s.fail(ctx, err)
	}
	outcome, err := sim.Run(set, policy)
	if err != nil {
		return s.fail(ctx, err)
	}

	result := schedulers.GenerateResponse(outcome)
	if err := s.record(ctx, request, outcome, result); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(result)
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: "run history is disabled"})
	}
	runs, err := s.store.ListRuns(ctx.UserContext(), ctx.QueryInt("limit", 50))
	if err != nil {
		return s.fail(ctx, err)
	}
	if runs == nil {
		runs = []*store.Run{}
	}
	return ctx.JSON(runs)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: "run history is disabled"})
	}
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, err)
	}
	if run == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: "run '" + ctx.Params("id") + "' not found"})
	}
	return ctx.JSON(run)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// parse decodes the body into a process set. On failure the error response
// has already been written and ok is false.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*requests.ScheduleRequests, core.ProcessSet, bool) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		s.logger.Debug("bad request body", "error", err)
		_ = ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
		return nil, nil, false
	}
	if len(request.Jobs) == 0 {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "no processes to schedule"})
		return nil, nil, false
	}
	if request.TimeQuantum < 0 {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: schedulers.ErrInvalidQuantum.Error()})
		return nil, nil, false
	}
	return request, request.ProcessSet(), true
}

// simulator applies a positive request quantum to both round robin variants.
func (s *SchedulerHandlerImpl) simulator(request *requests.ScheduleRequests) *schedulers.Simulator {
	rr, prr := s.config.RoundRobinTimeQuantum, s.config.PriorityRoundRobinTimeQuantum
	if request.TimeQuantum > 0 {
		rr, prr = request.TimeQuantum, request.TimeQuantum
	}
	sim := schedulers.NewSimulator(s.logger, rr, prr)
	sim.Limits = s.config.Limits()
	return sim
}

func (s *SchedulerHandlerImpl) record(ctx *fiber.Ctx, request *requests.ScheduleRequests, outcome *schedulers.Outcome, result responses.ScheduleResponse) error {
	if s.store == nil {
		return nil
	}
	run := &store.Run{
		Policy:      string(outcome.Policy),
		TimeQuantum: outcome.TimeQuantum,
		Request:     *request,
		Result:      result,
	}
	if err := s.store.CreateRun(ctx.UserContext(), run); err != nil {
		return err
	}
	ctx.Append("X-Run-Id", run.ID)
	return nil
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	var validation *core.ValidationError
	switch {
	case errors.As(err, &validation):
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{
			Error:   core.ErrInvalidProcessSet.Error(),
			Details: validation.Details,
		})
	case errors.Is(err, schedulers.ErrInvalidQuantum):
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: err.Error()})
	}
	s.logger.Error("request failed", "path", ctx.Path(), "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: "can not process request"})
}
