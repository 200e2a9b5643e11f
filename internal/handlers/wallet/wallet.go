package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/dto"
	"github.com/taskhive/server/internal/service/accountservice"
	"github.com/taskhive/server/internal/service/walletservice"
	"github.com/taskhive/server/pkg/utils"
)

type Service interface {
	RequestWithdrawal(ctx context.Context, email string, amount int64, method string) (*domain.WithdrawRequest, error)
	Settle(ctx context.Context, id int) error
	GetWithdrawRequests(ctx context.Context) ([]domain.WithdrawRequest, error)
	PurchaseCoins(ctx context.Context, email string, coins int64) (*domain.User, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// Withdraw godoc
//
//	@Summary		Request a coin withdrawal
//	@Description	Debit the worker's balance immediately and queue the request for administrative settlement.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal payload"
//	@Success		201		{object}	dto.WithdrawResponseDTO	"Request queued"
//	@Failure		400		{object}	utils.Response			"Insufficient funds"
//	@Failure		403		{object}	utils.Response			"Not a worker"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.walletService.RequestWithdrawal(r.Context(), req.Email, req.Amount, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrUnauthorizedRole), errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized action")
		case errors.Is(err, accountservice.ErrInsufficientFunds), errors.Is(err, accountservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.WithdrawResponseDTO{
		ID:          request.ID,
		WorkerEmail: request.WorkerEmail,
		WorkerName:  request.WorkerName,
		Amount:      request.Amount,
		Method:      request.Method,
		CreatedAt:   request.CreatedAt,
	})
}

// Purchase godoc
//
//	@Summary		Purchase coins
//	@Description	Credit a buyer account. The payment provider runs outside this service.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO	"Coins credited"
//	@Failure		403		{object}	utils.Response			"Not a buyer"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/purchase [post]
func (h *WalletHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	buyer, err := h.walletService.PurchaseCoins(r.Context(), req.Email, req.Coins)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrUnauthorizedRole), errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized action")
		case errors.Is(err, accountservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Message: "Coins purchased successfully",
		Coins:   buyer.Coins,
	})
}
