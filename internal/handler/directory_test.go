package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BuzzLyutic/choretle/internal/config"
)

func TestLoginHandler_Login(t *testing.T) {
	w := httptest.NewRecorder()
	LoginHandler{}.Login(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDirectoryHandler_Services(t *testing.T) {
	tests := []struct {
		name     string
		services []config.ServiceData
		wantBody string
	}{
		{
			name: "configured services",
			services: []config.ServiceData{
				{Name: "overseer", URI: "http://localhost:8080"},
				{Name: "guardian", URI: "http://localhost:8081"},
			},
			wantBody: `[{"name":"overseer","uri":"http://localhost:8080"},{"name":"guardian","uri":"http://localhost:8081"}]`,
		},
		{
			name:     "no services",
			services: nil,
			wantBody: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewDirectoryHandler(tt.services).Services(w, httptest.NewRequest(http.MethodGet, "/services", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
