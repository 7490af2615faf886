package handler

import (
	"time"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/deppfellow/exercise-tracker/internal/service"
	"github.com/deppfellow/exercise-tracker/internal/validation"
	"github.com/labstack/echo/v4"
)

type ExerciseHandler struct {
	Handler
	exerciseService *service.ExerciseService
}

func NewExerciseHandler(s *server.Server, exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		Handler:         NewHandler(s),
		exerciseService: exerciseService,
	}
}

func (h *ExerciseHandler) AddExercise(c echo.Context, req *AddExerciseRequest) (ExerciseResponse, error) {
	date, err := optionalDate(req.Date)
	if err != nil {
		return ExerciseResponse{}, err
	}

	exercise, err := h.exerciseService.AddExercise(
		c.Request().Context(),
		req.ID,
		req.Description,
		req.Duration.Int(),
		date,
	)
	if err != nil {
		return ExerciseResponse{}, err
	}

	return newExerciseResponse(*exercise), nil
}

func (h *ExerciseHandler) ListExercises(c echo.Context, req *UserIDRequest) ([]ExerciseResponse, error) {
	exercises, err := h.exerciseService.ListExercises(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	res := make([]ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		res = append(res, newExerciseResponse(e))
	}
	return res, nil
}

func (h *ExerciseHandler) GetLog(c echo.Context, req *GetLogRequest) (LogResponse, error) {
	from, err := optionalDate(req.From)
	if err != nil {
		return LogResponse{}, err
	}
	to, err := optionalDate(req.To)
	if err != nil {
		return LogResponse{}, err
	}

	query := service.LogQuery{From: from, To: to}
	if req.Limit != "" {
		limit := req.Limit.Int()
		query.Limit = &limit
	}

	log, err := h.exerciseService.GetLog(c.Request().Context(), req.ID, query)
	if err != nil {
		return LogResponse{}, err
	}

	return newLogResponse(log), nil
}

// optionalDate parses an already validated yyyy-mm-dd value; "" means unset.
func optionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := validation.ParseDate(value)
	if err != nil {
		return nil, errs.ValidationError([]string{"Date is invalid or has wrong format"})
	}
	return &d, nil
}
