package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/dto"
	"github.com/taskhive/server/internal/service/submissionservice"
	"github.com/taskhive/server/internal/service/taskservice"
)

func NewMock(t *testing.T) (*SubmissionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	body := `{"task_id":3,"worker_email":"worker@example.com","worker_name":"Worker","proof":"screenshot.png"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Submission is recorded as pending",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 3, "worker@example.com", "Worker", "screenshot.png").
					Return(&domain.Submission{
						ID: 5, TaskID: 3, WorkerEmail: "worker@example.com",
						Status: domain.PendingSubmissionStatus,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Missing task",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 3, "worker@example.com", "Worker", "screenshot.png").
					Return(nil, taskservice.ErrTaskNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Task not found",
		},
		{
			name:          "Invalid request body",
			body:          `{"task_id":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Internal server error",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 3, "worker@example.com", "Worker", "screenshot.png").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/tasks/submissions", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.SubmissionCreatedResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "Submission successful", body.Message)
				assert.Equal(t, "pending", body.Submission.Status)
			}
		})
	}
}

func TestByWorkerHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetByWorker(gomock.Any(), "worker@example.com").
		Return([]domain.Submission{{ID: 5, WorkerEmail: "worker@example.com"}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/tasks/submissions/worker/worker@example.com", nil)
	r = withURLParam(r, "email", "worker@example.com")
	w := httptest.NewRecorder()

	handler.ByWorker(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.SubmissionResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
}

func TestByTaskHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Task submissions are listed",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().GetByTask(gomock.Any(), 3).
					Return([]domain.Submission{{ID: 5, TaskID: 3}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid task id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid task id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/tasks/submissions/task/"+tt.id, nil)
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			handler.ByTask(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Approval succeeds",
			body: `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), 5, "approved").
					Return(&domain.Submission{ID: 5, Status: "approved"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Replayed decision",
			body: `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), 5, "approved").
					Return(nil, submissionservice.ErrAlreadyProcessed)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "submission already processed",
		},
		{
			name: "Missing submission",
			body: `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), 5, "approved").
					Return(nil, submissionservice.ErrSubmissionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Submission not found",
		},
		{
			name: "Exhausted task escrow",
			body: `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), 5, "approved").
					Return(nil, taskservice.ErrEscrowExhausted)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "task escrow exhausted",
		},
		{
			name: "Invalid status",
			body: `{"status":"maybe"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), 5, "maybe").
					Return(nil, submissionservice.ErrInvalidStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), 5, "approved").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/api/tasks/submissions/5/status", bytes.NewBufferString(tt.body))
			r = withURLParam(r, "id", "5")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
