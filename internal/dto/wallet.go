package dto

import "time"

type WithdrawRequestDTO struct {
	Email  string `json:"email" validate:"required,email"`
	Amount int64  `json:"amount" validate:"required,gt=0" example:"10"`
	Method string `json:"method" example:"bkash"`
}

type PurchaseRequestDTO struct {
	Email string `json:"email" validate:"required,email"`
	Coins int64  `json:"coins" validate:"required,gt=0" example:"100"`
}

type WithdrawResponseDTO struct {
	ID          int       `json:"id" example:"1"`
	WorkerEmail string    `json:"worker_email"`
	WorkerName  string    `json:"worker_name"`
	Amount      int64     `json:"amount" example:"10"`
	Method      string    `json:"method" example:"bkash"`
	CreatedAt   time.Time `json:"created_at"`
}

type PurchaseResponseDTO struct {
	Message string `json:"message" example:"Coins purchased successfully"`
	Coins   int64  `json:"coins" example:"150"`
}
