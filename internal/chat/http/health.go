package http

import (
	"net/http"
	"time"

	"github.com/bvpstudios/verzechat/internal/chat/store"
	"github.com/bvpstudios/verzechat/pkg/httpx"
	"github.com/bvpstudios/verzechat/pkg/slogx"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always returns 200 OK while the process is running, with uptime and version information
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns 200 when the store answers a ping, 503 otherwise. The service must not receive traffic without a working store.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version"
//	@Failure		503	{object}	HealthResponse	"store unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness ping failed", "err", err)
			resp.Status = "unavailable"
			httpx.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}
