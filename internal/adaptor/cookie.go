package adaptor

import (
	"net/http"
	"time"

	"insekta-dashboard/pkg/utils"
)

func setSessionCookie(w http.ResponseWriter, config *utils.Config, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.JWT.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   !config.App.IsDevelopment(),
		SameSite: http.SameSiteStrictMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, config *utils.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.JWT.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !config.App.IsDevelopment(),
		SameSite: http.SameSiteStrictMode,
	})
}
