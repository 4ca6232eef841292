package admin

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sngm3741/attachment-quiz/api/internal/interfaces/http/common"
)

// responseListHandler は管理画面向けに最新の回答一覧と現在の集計をまとめて返す。
func (h *Handler) responseListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		limit := common.ParseLimit(r.URL.Query().Get("limit"), common.DefaultRecentLimit, common.MaxRecentLimit)

		responses, err := h.stats.Recent(ctx, limit)
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}
		stats, err := h.stats.Stats(ctx)
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		if op, ok := common.OperatorFromContext(r.Context()); ok {
			h.logger.Info("admin response list", zap.String("operator", op.Label()), zap.Int("limit", limit))
		}

		items := make([]responseItem, 0, len(responses))
		for _, resp := range responses {
			items = append(items, newResponseItem(resp))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, responseListResponse{
			Items: items,
			Limit: limit,
			Stats: stats,
		})
	}
}

func (h *Handler) settingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, h.settings)
	}
}
