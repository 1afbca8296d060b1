package app

import (
	"context"
	"net/http"
	"time"

	httputil "utsavam/pkg/http"
	"utsavam/pkg/logger"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type healthHandler struct {
	mongo *mongo.Client
	log   *logger.Logger
}

func (h *healthHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/health", h.live)
	router.HandlerFunc(http.MethodGet, "/ready", h.ready)
}

func (h *healthHandler) live(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ready also pings the database so load balancers stop routing to a
// replica that lost its Mongo connection.
func (h *healthHandler) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.mongo != nil {
		if err := h.mongo.Ping(ctx, readpref.Primary()); err != nil {
			h.log.Error("Readiness check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
