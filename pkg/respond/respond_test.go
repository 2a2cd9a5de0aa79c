package respond

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BuzzLyutic/choretle/internal/model"
)

func TestJSON(t *testing.T) {
	task := model.Task{
		ID:       "652f1c2e9b1e8a3d4c5b6a79",
		TaskData: model.TaskData{Name: "buy milk", Effort: model.EffortLow},
	}

	tests := []struct {
		name     string
		code     int
		data     any
		wantBody string
	}{
		{
			name:     "created task",
			code:     http.StatusCreated,
			data:     task,
			wantBody: `{"id":"652f1c2e9b1e8a3d4c5b6a79","name":"buy milk","effort":"low"}`,
		},
		{
			name: "task list",
			code: http.StatusOK,
			data: []model.Task{task, {ID: "652f1c2e9b1e8a3d4c5b6a7a", TaskData: model.TaskData{Name: "wash car", Effort: model.EffortHigh}}},
			wantBody: `[{"id":"652f1c2e9b1e8a3d4c5b6a79","name":"buy milk","effort":"low"},
				{"id":"652f1c2e9b1e8a3d4c5b6a7a","name":"wash car","effort":"high"}]`,
		},
		{
			name:     "empty task list",
			code:     http.StatusOK,
			data:     []model.Task{},
			wantBody: `[]`,
		},
		{
			name:     "health status",
			code:     http.StatusServiceUnavailable,
			data:     map[string]string{"status": "unavailable"},
			wantBody: `{"status":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/tasks", nil)

			JSON(w, r, tt.code, tt.data)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		message  string
		wantBody string
	}{
		{
			name:     "malformed id",
			code:     http.StatusBadRequest,
			message:  "invalid id",
			wantBody: `{"error":"invalid id"}`,
		},
		{
			name:     "missing task",
			code:     http.StatusNotFound,
			message:  "not found",
			wantBody: `{"error":"not found"}`,
		},
		{
			name:     "storage down",
			code:     http.StatusInternalServerError,
			message:  "internal error",
			wantBody: `{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/tasks/abc", nil)

			Error(w, r, tt.code, tt.message)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestEmpty(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/tasks/652f1c2e9b1e8a3d4c5b6a79", nil)

	Empty(w, r, http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("Content-Length"))
	assert.Empty(t, w.Body.String())
}
