package dto

import "time"

type AddTaskRequestDTO struct {
	TaskTitle       string `json:"task_title" validate:"required"`
	TaskDetail      string `json:"task_detail"`
	RequiredWorkers int    `json:"required_workers" validate:"required,gt=0" example:"2"`
	PayableAmount   int64  `json:"payable_amount" validate:"required,gt=0" example:"20"`
	CompletionDate  string `json:"completion_date" example:"2026-09-30"`
	SubmissionInfo  string `json:"submission_info"`
	TaskImageURL    string `json:"task_image_url"`
	BuyerEmail      string `json:"buyer_email" validate:"required,email"`
}

type UpdateTaskRequestDTO struct {
	TaskTitle      string `json:"task_title"`
	TaskDetail     string `json:"task_detail"`
	CompletionDate string `json:"completion_date"`
	SubmissionInfo string `json:"submission_info"`
	TaskImageURL   string `json:"task_image_url"`
}

type TaskResponseDTO struct {
	ID              int       `json:"id" example:"1"`
	TaskTitle       string    `json:"task_title"`
	TaskDetail      string    `json:"task_detail"`
	RequiredWorkers int       `json:"required_workers" example:"2"`
	PayableAmount   int64     `json:"payable_amount" example:"20"`
	TotalPayable    int64     `json:"total_payable" example:"40"`
	EscrowRemaining int64     `json:"escrow_remaining" example:"40"`
	ApprovedCount   int       `json:"approved_count" example:"0"`
	CompletionDate  time.Time `json:"completion_date"`
	SubmissionInfo  string    `json:"submission_info"`
	TaskImageURL    string    `json:"task_image_url"`
	BuyerEmail      string    `json:"buyer_email"`
	BuyerName       string    `json:"buyer_name"`
	CreatedAt       time.Time `json:"created_at"`
}

type TaskCreatedResponseDTO struct {
	Message string          `json:"message" example:"Task created successfully"`
	Task    TaskResponseDTO `json:"task"`
}

// InsufficientCoinsDTO carries the dashboard redirect the frontend expects on
// an underfunded task creation.
type InsufficientCoinsDTO struct {
	Message  string `json:"message" example:"Not enough coins. Please purchase more."`
	Redirect string `json:"redirect" example:"/dashboard/payments"`
}

type TaskCancelledResponseDTO struct {
	Message string `json:"message" example:"Task deleted successfully"`
	Refund  int64  `json:"refund" example:"40"`
}
