package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/scoring"
	"pengasuh_backend/internal/service"
	mock_service "pengasuh_backend/internal/service/mock"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func stressItems(n int) []model.StressQuestion {
	qs := make([]model.StressQuestion, n)
	for i := range qs {
		qs[i] = model.StressQuestion{ID: uint(i + 1), Question: "Q", Options: "0|1|2|3|4"}
	}
	return qs
}

func newStressRouter(t *testing.T, ctrl *gomock.Controller, insertErr error) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	questions := mock_service.NewMockQuestionRepositoryI(ctrl)
	questions.EXPECT().ListStress(gomock.Any()).Return(stressItems(3), nil).AnyTimes()
	results := mock_service.NewMockResultRepositoryI(ctrl)
	results.EXPECT().CreateStress(gomock.Any(), gomock.Any()).Return(insertErr).AnyTimes()

	log := zap.NewNop()
	qs := service.NewQuestionService(questions, service.NewMemoryStore(), time.Minute, log)
	c := NewStressController(service.NewStressService(qs, results, log))

	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(util.ContextUserKey, &util.Claims{UserID: 1, Role: model.Caregiver})
	})
	r.POST("/stress/submit", c.Submit)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStressController_Submit(t *testing.T) {
	tests := []struct {
		name      string
		insertErr error
		body      string
		wantCode  int
		wantSaved bool
		wantLevel string
	}{
		{
			name:      "saved",
			body:      `{"answers":{"1":4,"2":4,"3":4}}`,
			wantCode:  http.StatusOK,
			wantSaved: true,
			wantLevel: "rendah",
		},
		{
			name:      "insert fails but score is returned",
			insertErr: assert.AnError,
			body:      `{"answers":{"1":0,"2":1,"3":2}}`,
			wantCode:  http.StatusOK,
			wantSaved: false,
			wantLevel: "rendah",
		},
		{
			name:     "missing answer",
			body:     `{"answers":{"1":0,"2":1}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "value out of range",
			body:     `{"answers":{"1":0,"2":1,"3":9}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			body:     `{"answers":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			w := postJSON(newStressRouter(t, ctrl, tt.insertErr), "/stress/submit", tt.body)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode != http.StatusOK {
				return
			}

			var env envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			var sub service.StressSubmission
			require.NoError(t, json.Unmarshal(env.Data, &sub))
			assert.Equal(t, tt.wantSaved, sub.Saved)
			assert.Equal(t, tt.wantLevel, sub.Result.Level)
		})
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
	}{
		{util.ErrEmailRegistered, http.StatusConflict},
		{util.ErrInvalidCredentials, http.StatusUnauthorized},
		{util.ErrUserNotFound, http.StatusNotFound},
		{util.ErrInvalidTopic, http.StatusBadRequest},
		{fmt.Errorf("%w: question 2 got %q", scoring.ErrUnknownOption, "x"), http.StatusBadRequest},
		{util.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		respondError(ctx, tt.err)
		assert.Equal(t, tt.want, w.Code, tt.err.Error())
	}
}
