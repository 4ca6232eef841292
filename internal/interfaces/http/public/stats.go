package public

import (
	"context"
	"net/http"

	"github.com/sngm3741/attachment-quiz/api/internal/interfaces/http/common"
)

// statsHandler はダッシュボード用に結果タイプ別の件数を返す。毎回集計し直し、キャッシュしない。
func (h *Handler) statsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		stats, err := h.stats.Stats(ctx)
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		common.WriteJSON(h.logger, w, http.StatusOK, stats)
	}
}
