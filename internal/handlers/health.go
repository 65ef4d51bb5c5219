package handlers

import (
	"ItemKeeper/internal/repo"
	"net/http"
)

// Healthcheck отвечает 200, если процесс жив и база доступна.
func Healthcheck(pinger repo.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pinger.Ping(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
