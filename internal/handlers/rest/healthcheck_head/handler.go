package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"courier-network/pkg/logger"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	storage        Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, storage Pinger) *Handler {
	return &Handler{
		log:            log.With(),
		isShuttingDown: isShuttingDown,
		storage:        storage,
	}
}

// ServeHTTP 503 во время остановки и при недоступном хранилище.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if h.storage != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.storage.Ping(ctx); err != nil {
			h.log.Warn("readiness: storage ping failed", logger.NewField("error", err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
