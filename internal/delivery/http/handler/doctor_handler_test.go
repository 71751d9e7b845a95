package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/usecase"
	"github.com/DeepGajjar31/HealthNest/pkg/response"
	"github.com/DeepGajjar31/HealthNest/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDoctorUsecase is a mock implementation of the usecase.DoctorUsecase interface.
type mockDoctorUsecase struct {
	CreateDoctorFunc  func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctorFunc     func(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error)
	GetAllDoctorsFunc func(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctorFunc  func(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) error
	DeleteDoctorFunc  func(ctx context.Context, doctorID uint) error
	SaveProfileFunc   func(ctx context.Context, req *dto.SaveDoctorProfileRequest) (*dto.DoctorResponse, bool, error)
}

func (m *mockDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if m.CreateDoctorFunc != nil {
		return m.CreateDoctorFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error) {
	if m.GetDoctorFunc != nil {
		return m.GetDoctorFunc(ctx, doctorID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDoctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	if m.GetAllDoctorsFunc != nil {
		return m.GetAllDoctorsFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDoctorUsecase) UpdateDoctor(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) error {
	if m.UpdateDoctorFunc != nil {
		return m.UpdateDoctorFunc(ctx, doctorID, req)
	}
	return errors.New("not implemented")
}

func (m *mockDoctorUsecase) DeleteDoctor(ctx context.Context, doctorID uint) error {
	if m.DeleteDoctorFunc != nil {
		return m.DeleteDoctorFunc(ctx, doctorID)
	}
	return errors.New("not implemented")
}

func (m *mockDoctorUsecase) SaveProfile(ctx context.Context, req *dto.SaveDoctorProfileRequest) (*dto.DoctorResponse, bool, error) {
	if m.SaveProfileFunc != nil {
		return m.SaveProfileFunc(ctx, req)
	}
	return nil, false, errors.New("not implemented")
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body), "failed to decode response body")
	return body
}

func TestDoctorHandler_SaveProfile(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     map[string]interface{}
		saveProfileFunc func(ctx context.Context, req *dto.SaveDoctorProfileRequest) (*dto.DoctorResponse, bool, error)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:        "first save acknowledges a created profile",
			requestBody: map[string]interface{}{"email": "doc@example.com", "mobile": "555"},
			saveProfileFunc: func(ctx context.Context, req *dto.SaveDoctorProfileRequest) (*dto.DoctorResponse, bool, error) {
				return &dto.DoctorResponse{DoctorID: 1, Number: req.Mobile}, true, nil
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Doctor profile created successfully",
		},
		{
			name:        "repeat save acknowledges an updated profile",
			requestBody: map[string]interface{}{"email": "doc@example.com", "mobile": "999"},
			saveProfileFunc: func(ctx context.Context, req *dto.SaveDoctorProfileRequest) (*dto.DoctorResponse, bool, error) {
				return &dto.DoctorResponse{DoctorID: 1, Number: req.Mobile}, false, nil
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Doctor details updated successfully",
		},
		{
			name:        "unknown email",
			requestBody: map[string]interface{}{"email": "missing@example.com"},
			saveProfileFunc: func(ctx context.Context, req *dto.SaveDoctorProfileRequest) (*dto.DoctorResponse, bool, error) {
				return nil, false, usecase.ErrUserNotFound
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "User not found",
		},
		{
			name:        "storage failure",
			requestBody: map[string]interface{}{"email": "doc@example.com"},
			saveProfileFunc: func(ctx context.Context, req *dto.SaveDoctorProfileRequest) (*dto.DoctorResponse, bool, error) {
				return nil, false, errors.New("connection reset")
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Failed to save profile",
		},
		{
			name:            "missing email is rejected by validation",
			requestBody:     map[string]interface{}{"mobile": "555"},
			saveProfileFunc: nil,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockDoctorUsecase{SaveProfileFunc: tt.saveProfileFunc}
			h := NewDoctorHandler(mockUC, validator.NewValidator())

			payload, err := json.Marshal(tt.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors/profile", bytes.NewReader(payload))
			rec := httptest.NewRecorder()

			h.SaveProfile(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code, "status code does not match")
			body := decodeResponse(t, rec)
			assert.Equal(t, tt.expectedMessage, body.Message, "message does not match")
		})
	}
}

func TestDoctorHandler_GetDoctor(t *testing.T) {
	t.Run("existing doctor", func(t *testing.T) {
		mockUC := &mockDoctorUsecase{
			GetDoctorFunc: func(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error) {
				return &dto.DoctorResponse{DoctorID: doctorID, Name: "Dr. Smith"}, nil
			},
		}
		h := NewDoctorHandler(mockUC, validator.NewValidator())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		rec := httptest.NewRecorder()

		h.GetDoctor(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "status code does not match")
		body := decodeResponse(t, rec)
		assert.True(t, body.Success, "success flag should be true")
	})

	t.Run("missing doctor", func(t *testing.T) {
		mockUC := &mockDoctorUsecase{
			GetDoctorFunc: func(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error) {
				return nil, usecase.ErrDoctorNotFound
			},
		}
		h := NewDoctorHandler(mockUC, validator.NewValidator())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/999", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "999"})
		rec := httptest.NewRecorder()

		h.GetDoctor(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "status code does not match")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		h := NewDoctorHandler(&mockDoctorUsecase{}, validator.NewValidator())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rec := httptest.NewRecorder()

		h.GetDoctor(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "status code does not match")
	})
}

func TestDoctorHandler_UpdateDoctor(t *testing.T) {
	t.Run("missing doctor", func(t *testing.T) {
		mockUC := &mockDoctorUsecase{
			UpdateDoctorFunc: func(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) error {
				return usecase.ErrDoctorNotFound
			},
		}
		h := NewDoctorHandler(mockUC, validator.NewValidator())

		payload, _ := json.Marshal(map[string]interface{}{"name": "Dr. Jones", "email": "jones@example.com"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/doctors/999", bytes.NewReader(payload))
		req = mux.SetURLVars(req, map[string]string{"id": "999"})
		rec := httptest.NewRecorder()

		h.UpdateDoctor(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "status code does not match")
	})
}
