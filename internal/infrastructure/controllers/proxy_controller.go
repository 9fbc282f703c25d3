package controllers

import (
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/corrigir/internal/domain/commands"
	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

const proxyFailureMessage = "Erro ao carregar a página."

// ProxyController handles "GET /proxy-sicredi", serving the rendered documentation page.
type ProxyController struct {
	command commands.RenderPage
}

// NewProxyController creates a new ProxyController.
func NewProxyController(command commands.RenderPage) *ProxyController {
	return &ProxyController{command: command}
}

// GetBind returns where the proxy controller is mounted.
func (it *ProxyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Method: http.MethodGet,
		Path:   "/proxy-sicredi",
	}
}

// Execute renders the page and returns its HTML.
func (it *ProxyController) Execute(w http.ResponseWriter, r *http.Request) {
	html, err := it.command.Execute(r.Context())
	if err != nil {
		logger.Errorf("Failed to render documentation page: %v", err)
		writeError(w, proxyFailureMessage)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, writeErr := w.Write([]byte(html)); writeErr != nil {
		logger.Warnf("Failed to write rendered page: %v", writeErr)
	}
}
