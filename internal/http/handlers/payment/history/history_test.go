package history

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/examprep/examprep-api/internal/http/middlewarectx"
	"github.com/examprep/examprep-api/internal/models"
)

// MockService реализует интерфейс history.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) History(ctx context.Context, userUID string) ([]*models.Payment, error) {
	args := m.Called(ctx, userUID)
	payments, _ := args.Get(0).([]*models.Payment)
	return payments, args.Error(1)
}

func TestHistoryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "журнал с платежами",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("History", mock.Anything, "uid-1").
					Return([]*models.Payment{
						{ID: 1, UserUID: "uid-1", OrderID: "order_1", PaymentID: "pay_1"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"order_1"`,
		},
		{
			name:    "пустой журнал",
			userUID: "uid-2",
			setupMock: func(m *MockService) {
				m.On("History", mock.Anything, "uid-2").
					Return([]*models.Payment{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"payments":[]`,
		},
		{
			name:           "нет идентификатора пользователя",
			userUID:        "",
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"user identification missing"`,
		},
		{
			name:    "ошибка сервиса",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("History", mock.Anything, "uid-1").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"failed to load payment history"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/payment/history", nil)
			if tt.userUID != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID))
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
