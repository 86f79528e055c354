package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophstore/internal/server/models"
)

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	list, err := h.products.List(r.Context(), userID(r))
	if err != nil {
		h.logger.Error(r.Context(), "list products", "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondWithJSON(w, http.StatusOK, models.SnapshotToAPI(list))
}

// handleFeed streams one "snapshot" event per delivery until the client
// disconnects.
func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set(headerContentType, contentTypeSSE)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	uid := userID(r)
	h.logger.Debug(ctx, "sse feed opened", "user_id", uid)

	err := h.products.Watch(ctx, uid, func(list []*models.Product) error {
		data, err := json.Marshal(models.SnapshotToAPI(list))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil && ctx.Err() == nil {
		h.logger.Error(ctx, "sse feed failed", "user_id", uid, "error", err)
		_, _ = fmt.Fprint(w, "event: error\ndata: {\"error\":\"internal error\"}\n\n")
		flusher.Flush()
	}
}
