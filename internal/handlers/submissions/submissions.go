package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/dto"
	"github.com/taskhive/server/internal/service/submissionservice"
	"github.com/taskhive/server/internal/service/taskservice"
	"github.com/taskhive/server/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, taskID int, workerEmail, workerName, proof string) (*domain.Submission, error)
	Decide(ctx context.Context, id int, status string) (*domain.Submission, error)
	GetByWorker(ctx context.Context, email string) ([]domain.Submission, error)
	GetByTask(ctx context.Context, taskID int) ([]domain.Submission, error)
	GetAll(ctx context.Context) ([]domain.Submission, error)
}

type SubmissionHandler struct {
	submissionService Service
}

func New(submissionService Service) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

func toSubmissionDTO(s *domain.Submission) dto.SubmissionResponseDTO {
	return dto.SubmissionResponseDTO{
		ID:          s.ID,
		TaskID:      s.TaskID,
		TaskTitle:   s.TaskTitle,
		BuyerEmail:  s.BuyerEmail,
		WorkerEmail: s.WorkerEmail,
		WorkerName:  s.WorkerName,
		Proof:       s.Proof,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
	}
}

func respondWithSubmissions(w http.ResponseWriter, subs []domain.Submission) {
	response := make([]dto.SubmissionResponseDTO, len(subs))
	for i := range subs {
		response[i] = toSubmissionDTO(&subs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Submit proof of completion
//	@Description	Record a pending submission against a task. No coins move until the buyer decides.
//	@Tags			Submissions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateSubmissionRequestDTO		true	"Submission payload"
//	@Success		201		{object}	dto.SubmissionCreatedResponseDTO	"Submission recorded"
//	@Failure		400		{object}	utils.Response						"Invalid request body"
//	@Failure		404		{object}	utils.Response						"Task not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/tasks/submissions [post]
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSubmissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.submissionService.Submit(r.Context(), req.TaskID, req.WorkerEmail, req.WorkerName, req.Proof)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Task not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Submission failed")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmissionCreatedResponseDTO{
		Message:    "Submission successful",
		Submission: toSubmissionDTO(sub),
	})
}

// ByWorker godoc
//
//	@Summary		List a worker's submissions
//	@Tags			Submissions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			email	path		string	true	"Worker email"
//	@Success		200		{array}		dto.SubmissionResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/submissions/worker/{email} [get]
func (h *SubmissionHandler) ByWorker(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	subs, err := h.submissionService.GetByWorker(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	respondWithSubmissions(w, subs)
}

// ByTask godoc
//
//	@Summary		List submissions for a task
//	@Tags			Submissions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Task ID"
//	@Success		200	{array}		dto.SubmissionResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/submissions/task/{id} [get]
func (h *SubmissionHandler) ByTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	subs, err := h.submissionService.GetByTask(r.Context(), taskID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load submissions")
		return
	}
	respondWithSubmissions(w, subs)
}

// UpdateStatus godoc
//
//	@Summary		Approve or reject a submission
//	@Description	Move a pending submission to a terminal state. Approval releases one payout from the task escrow to the worker in the same transaction; replaying a decision changes nothing.
//	@Tags			Submissions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int									true	"Submission ID"
//	@Param			request	body		dto.UpdateSubmissionStatusRequestDTO	true	"Decision payload"
//	@Success		200		{object}	dto.SubmissionResponseDTO
//	@Failure		400		{object}	utils.Response	"Already processed or invalid status"
//	@Failure		404		{object}	utils.Response	"Submission not found"
//	@Failure		409		{object}	utils.Response	"Task escrow exhausted"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/submissions/{id}/status [put]
func (h *SubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid submission id")
		return
	}

	var req dto.UpdateSubmissionStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.submissionService.Decide(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, submissionservice.ErrSubmissionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Submission not found")
		case errors.Is(err, submissionservice.ErrAlreadyProcessed), errors.Is(err, submissionservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, taskservice.ErrEscrowExhausted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toSubmissionDTO(sub))
}
