package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/dto"
	"github.com/taskhive/server/internal/service/walletservice"
	"github.com/taskhive/server/pkg/utils"
)

type WalletService interface {
	GetWithdrawRequests(ctx context.Context) ([]domain.WithdrawRequest, error)
	Settle(ctx context.Context, id int) error
}

type SubmissionService interface {
	GetAll(ctx context.Context) ([]domain.Submission, error)
}

type AdminHandler struct {
	walletService     WalletService
	submissionService SubmissionService
}

func New(walletService WalletService, submissionService SubmissionService) *AdminHandler {
	return &AdminHandler{
		walletService:     walletService,
		submissionService: submissionService,
	}
}

// WithdrawRequests godoc
//
//	@Summary		List pending withdraw requests
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WithdrawResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdraw-requests [get]
func (h *AdminHandler) WithdrawRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.walletService.GetWithdrawRequests(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdraw requests")
		return
	}

	response := make([]dto.WithdrawResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.WithdrawResponseDTO{
			ID:          req.ID,
			WorkerEmail: req.WorkerEmail,
			WorkerName:  req.WorkerName,
			Amount:      req.Amount,
			Method:      req.Method,
			CreatedAt:   req.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SettleWithdrawRequest godoc
//
//	@Summary		Settle a withdraw request
//	@Description	Remove the queued request; the coins were already debited when it was made and the payout happens off-system.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdraw-requests/{id} [delete]
func (h *AdminHandler) SettleWithdrawRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.walletService.Settle(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, walletservice.ErrWithdrawalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Withdraw request not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Withdraw request settled"})
}

// AllSubmissions godoc
//
//	@Summary		List all submissions
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SubmissionResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/all-submissions [get]
func (h *AdminHandler) AllSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.submissionService.GetAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}

	response := make([]dto.SubmissionResponseDTO, len(subs))
	for i, s := range subs {
		response[i] = dto.SubmissionResponseDTO{
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
	utils.RespondWithJSON(w, http.StatusOK, response)
}
