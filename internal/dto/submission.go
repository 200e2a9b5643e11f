package dto

import "time"

type CreateSubmissionRequestDTO struct {
	TaskID      int    `json:"task_id" validate:"required" example:"1"`
	WorkerEmail string `json:"worker_email" validate:"required,email"`
	WorkerName  string `json:"worker_name"`
	Proof       string `json:"proof"`
}

type UpdateSubmissionStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=approved rejected" example:"approved"`
}

type SubmissionResponseDTO struct {
	ID          int       `json:"id" example:"1"`
	TaskID      int       `json:"task_id" example:"1"`
	TaskTitle   string    `json:"task_title"`
	BuyerEmail  string    `json:"buyer_email"`
	WorkerEmail string    `json:"worker_email"`
	WorkerName  string    `json:"worker_name"`
	Proof       string    `json:"proof"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"created_at"`
}

type SubmissionCreatedResponseDTO struct {
	Message    string                `json:"message" example:"Submission successful"`
	Submission SubmissionResponseDTO `json:"submission"`
}
