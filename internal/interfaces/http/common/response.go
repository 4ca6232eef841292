package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Warn("JSON エンコードに失敗", zap.Error(err))
	}
}

// WriteError maps domain errors onto HTTP statuses. Validation failures are
// echoed to the client; anything else is logged and reported generically.
func WriteError(logger *zap.Logger, w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		WriteJSON(logger, w, http.StatusBadRequest, map[string]string{"error": "Invalid input data", "detail": verr.Error()})
		return
	}

	var serr *domain.StorageError
	if errors.As(err, &serr) {
		if logger != nil {
			logger.Error("ストレージ操作に失敗", zap.String("op", serr.Op), zap.Error(serr.Err))
		}
		WriteJSON(logger, w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
		return
	}

	if logger != nil {
		logger.Error("リクエスト処理に失敗", zap.Error(err))
	}
	WriteJSON(logger, w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
