package add

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/examprep/examprep-api/internal/models"
)

// MockService реализует интерфейс add.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AddQuestion(ctx context.Context, subject, chapter string, req models.DummyQuestion) (*models.Question, error) {
	args := m.Called(ctx, subject, chapter, req)
	question, _ := args.Get(0).(*models.Question)
	return question, args.Error(1)
}

func TestAddHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		subject        string
		chapter        string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное создание",
			subject: "JIGL",
			chapter: "Law of Torts",
			body:    `{"question":"Define tort.","answer":"A civil wrong."}`,
			setupMock: func(m *MockService) {
				m.On("AddQuestion", mock.Anything, "JIGL", "Law of Torts",
					models.DummyQuestion{Question: "Define tort.", Answer: "A civil wrong."}).
					Return(&models.Question{ID: 42, Subject: "JIGL", Chapter: "Law of Torts", Question: "Define tort.", Answer: "A civil wrong."}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":42`,
		},
		{
			name:           "неизвестный предмет",
			subject:        "Astrology",
			chapter:        "Stars",
			body:           `{"question":"q","answer":"a"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"Subject not found"`,
		},
		{
			name:           "пустой вопрос",
			subject:        "JIGL",
			chapter:        "Law of Torts",
			body:           `{"question":"","answer":"A civil wrong."}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Question is a required field`,
		},
		{
			name:    "ошибка сервиса",
			subject: "JIGL",
			chapter: "Law of Torts",
			body:    `{"question":"Define tort.","answer":"A civil wrong."}`,
			setupMock: func(m *MockService) {
				m.On("AddQuestion", mock.Anything, "JIGL", "Law of Torts", mock.Anything).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"failed to add question"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/questions/add-question", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("subject", tt.subject)
			rctx.URLParams.Add("chapter", tt.chapter)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
