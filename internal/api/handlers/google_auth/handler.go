package google_auth

import (
	"net/http"

	"golang.org/x/oauth2"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/handlers"
)

const (
	msgMissingCode    = "code query parameter is required"
	msgExchangeFailed = "failed to exchange authorization code"
	msgNoRefreshToken = "no refresh token in response, revoke access and try again"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler одноразовый bootstrap-флоу для получения refresh token
// владельца календаря. Не предназначен для аутентификации посетителей.
type Handler struct {
	oauthConfig *oauth2.Config
	logger      Logger
}

func NewHandler(oauthConfig *oauth2.Config, logger Logger) *Handler {
	return &Handler{
		oauthConfig: oauthConfig,
		logger:      logger,
	}
}

// HandleLogin GET /auth/google
// Редиректит владельца на страницу согласия Google. prompt=consent
// заставляет Google выдать refresh token даже при повторной авторизации.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	url := h.oauthConfig.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)

	h.logger.Info("GET /auth/google - Redirecting to Google consent page")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// HandleCallback GET /auth/google/callback
// Обменивает код авторизации на токены и возвращает refresh token,
// который нужно положить в GOOGLE_REFRESH_TOKEN.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		h.logger.Warn("GET /auth/google/callback - Missing code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("GET /auth/google/callback - Token exchange failed: %v", err)
		handlers.RespondBadGateway(w, msgExchangeFailed)
		return
	}

	if token.RefreshToken == "" {
		h.logger.Warn("GET /auth/google/callback - No refresh token in response")
		handlers.RespondBadRequest(w, msgNoRefreshToken)
		return
	}

	h.logger.Info("GET /auth/google/callback - Refresh token obtained")

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"refresh_token": token.RefreshToken,
		"note":          "set this value as GOOGLE_REFRESH_TOKEN and restart the service",
	})
}
