package handler

import (
	"net/http"

	"github.com/BuzzLyutic/choretle/internal/config"
	"github.com/BuzzLyutic/choretle/pkg/respond"
)

// LoginHandler accepts every login. Real authentication lives elsewhere.
type LoginHandler struct{}

func (LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	respond.Empty(w, r, http.StatusOK)
}

// DirectoryHandler serves the fixed list of services from configuration.
type DirectoryHandler struct {
	services []config.ServiceData
}

func NewDirectoryHandler(services []config.ServiceData) *DirectoryHandler {
	list := make([]config.ServiceData, len(services))
	copy(list, services)
	return &DirectoryHandler{services: list}
}

func (h *DirectoryHandler) Services(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, h.services)
}
