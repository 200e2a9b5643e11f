package domain

import "time"

const (
	RoleBuyer  string = "buyer"
	RoleWorker string = "worker"
	RoleAdmin  string = "admin"
)

const (
	// PendingSubmissionStatus initial status, no payout yet;
	PendingSubmissionStatus string = "pending"
	// ApprovedSubmissionStatus terminal, escrow released to the worker;
	ApprovedSubmissionStatus string = "approved"
	// RejectedSubmissionStatus terminal, no ledger effect;
	RejectedSubmissionStatus string = "rejected"
)

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	ProfilePic   string    `db:"profile_pic"`
	Coins        int64     `db:"coins"`
	CreatedAt    time.Time `db:"created_at"`
}

type Task struct {
	ID              int       `db:"id"`
	Title           string    `db:"title"`
	Detail          string    `db:"detail"`
	RequiredWorkers int       `db:"required_workers"`
	PayableAmount   int64     `db:"payable_amount"`
	TotalPayable    int64     `db:"total_payable"`
	EscrowRemaining int64     `db:"escrow_remaining"`
	ApprovedCount   int       `db:"approved_count"`
	CompletionDate  time.Time `db:"completion_date"`
	SubmissionInfo  string    `db:"submission_info"`
	ImageURL        string    `db:"image_url"`
	BuyerID         int       `db:"buyer_id"`
	BuyerEmail      string    `db:"buyer_email"`
	BuyerName       string    `db:"buyer_name"`
	CreatedAt       time.Time `db:"created_at"`
}

type Submission struct {
	ID          int       `db:"id"`
	TaskID      int       `db:"task_id"`
	TaskTitle   string    `db:"task_title"`
	BuyerEmail  string    `db:"buyer_email"`
	WorkerEmail string    `db:"worker_email"`
	WorkerName  string    `db:"worker_name"`
	Proof       string    `db:"proof"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type WithdrawRequest struct {
	ID          int       `db:"id"`
	WorkerEmail string    `db:"worker_email"`
	WorkerName  string    `db:"worker_name"`
	Amount      int64     `db:"amount"`
	Method      string    `db:"method"`
	CreatedAt   time.Time `db:"created_at"`
}
