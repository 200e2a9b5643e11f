package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/dto"
	"github.com/taskhive/server/internal/service/accountservice"
	"github.com/taskhive/server/internal/service/taskservice"
	"github.com/taskhive/server/pkg/utils"
)

type Service interface {
	CreateTask(ctx context.Context, params taskservice.CreateTaskParams) (*domain.Task, error)
	GetTasksByBuyer(ctx context.Context, email string) ([]domain.Task, error)
	GetAllTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id int, params taskservice.UpdateTaskParams) (*domain.Task, error)
	Cancel(ctx context.Context, id int) (int64, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func parseCompletionDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toTaskDTO(t *domain.Task) dto.TaskResponseDTO {
	return dto.TaskResponseDTO{
		ID:              t.ID,
		TaskTitle:       t.Title,
		TaskDetail:      t.Detail,
		RequiredWorkers: t.RequiredWorkers,
		PayableAmount:   t.PayableAmount,
		TotalPayable:    t.TotalPayable,
		EscrowRemaining: t.EscrowRemaining,
		ApprovedCount:   t.ApprovedCount,
		CompletionDate:  t.CompletionDate,
		SubmissionInfo:  t.SubmissionInfo,
		TaskImageURL:    t.ImageURL,
		BuyerEmail:      t.BuyerEmail,
		BuyerName:       t.BuyerName,
		CreatedAt:       t.CreatedAt,
	}
}

// Add godoc
//
//	@Summary		Create and fund a task
//	@Description	Escrow required_workers x payable_amount coins from the buyer and create the task atomically.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.AddTaskRequestDTO		true	"Task payload"
//	@Success		201		{object}	dto.TaskCreatedResponseDTO	"Task created"
//	@Failure		400		{object}	dto.InsufficientCoinsDTO	"Not enough coins"
//	@Failure		403		{object}	utils.Response				"Not a buyer"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/tasks/add [post]
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	completionDate, err := parseCompletionDate(req.CompletionDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid completion date")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), taskservice.CreateTaskParams{
		Title:           req.TaskTitle,
		Detail:          req.TaskDetail,
		RequiredWorkers: req.RequiredWorkers,
		PayableAmount:   req.PayableAmount,
		CompletionDate:  completionDate,
		SubmissionInfo:  req.SubmissionInfo,
		ImageURL:        req.TaskImageURL,
		BuyerEmail:      req.BuyerEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrUnauthorizedRole), errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized action")
		case errors.Is(err, accountservice.ErrInsufficientFunds):
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.InsufficientCoinsDTO{
				Message:  "Not enough coins. Please purchase more.",
				Redirect: "/dashboard/payments",
			})
		case errors.Is(err, taskservice.ErrInvalidTask):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.TaskCreatedResponseDTO{
		Message: "Task created successfully",
		Task:    toTaskDTO(task),
	})
}

// My godoc
//
//	@Summary		List the buyer's tasks
//	@Description	List tasks owned by the buyer, newest first.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			email	query		string	true	"Buyer email"
//	@Success		200		{array}		dto.TaskResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/my [get]
func (h *TaskHandler) My(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	tasks, err := h.taskService.GetTasksByBuyer(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load tasks")
		return
	}

	response := make([]dto.TaskResponseDTO, len(tasks))
	for i := range tasks {
		response[i] = toTaskDTO(&tasks[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Available godoc
//
//	@Summary		List all tasks
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TaskResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/available [get]
func (h *TaskHandler) Available(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.GetAllTasks(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	response := make([]dto.TaskResponseDTO, len(tasks))
	for i := range tasks {
		response[i] = toTaskDTO(&tasks[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Update godoc
//
//	@Summary		Edit task metadata
//	@Description	Update descriptive fields only; worker count, payable amount and escrow are immutable.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"Task ID"
//	@Param			request	body		dto.UpdateTaskRequestDTO	true	"Metadata payload"
//	@Success		200		{object}	dto.TaskResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/{id} [put]
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req dto.UpdateTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	completionDate, err := parseCompletionDate(req.CompletionDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid completion date")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, taskservice.UpdateTaskParams{
		Title:          req.TaskTitle,
		Detail:         req.TaskDetail,
		CompletionDate: completionDate,
		SubmissionInfo: req.SubmissionInfo,
		ImageURL:       req.TaskImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Task not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update task")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toTaskDTO(task))
}

// Delete godoc
//
//	@Summary		Delete an open task
//	@Description	Remove a task with no approved submissions and refund the remaining escrow to the buyer.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Task ID"
//	@Success		200	{object}	dto.TaskCancelledResponseDTO
//	@Failure		404	{object}	utils.Response	"Task not found"
//	@Failure		409	{object}	utils.Response	"Task has approved submissions"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/{id} [delete]
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	refund, err := h.taskService.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, taskservice.ErrNotCancellable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting task")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TaskCancelledResponseDTO{
		Message: "Task deleted successfully",
		Refund:  refund,
	})
}
