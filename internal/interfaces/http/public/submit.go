package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/sngm3741/attachment-quiz/api/internal/interfaces/http/common"
	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

// submitHandler はクライアントが集計した合計点と設問数を受け取り、分類結果を保存して返す。
func (h *Handler) submitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := decodeBody(w, r, &req); err != nil {
			h.reject(w, err)
			return
		}

		in, err := req.toInput()
		if err != nil {
			h.reject(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		response, err := h.submissions.Submit(ctx, in)
		h.respondSubmission(w, response, err)
	}
}

// answersHandler は設問 ID ごとの回答をサーバー側で採点してから保存する。
func (h *Handler) answersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req answersRequest
		if err := decodeBody(w, r, &req); err != nil {
			h.reject(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		response, err := h.submissions.SubmitAnswers(ctx, domain.Answers(req.Answers))
		h.respondSubmission(w, response, err)
	}
}

func (h *Handler) respondSubmission(w http.ResponseWriter, response *domain.Response, err error) {
	if err != nil {
		h.reject(w, err)
		return
	}

	h.observer.ObserveSubmission(response.ResultType.String())
	h.logger.Debug("submission stored",
		zap.String("id", response.ID),
		zap.String("resultType", response.ResultType.String()),
		zap.Float64("anxietyPoint", response.AnxietyScore),
		zap.Float64("avoidancePoint", response.AvoidanceScore),
	)
	common.WriteJSON(h.logger, w, http.StatusCreated, newSubmitResponse(response))
}

func (h *Handler) reject(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.observer.ObserveRejection("validation")
	default:
		h.observer.ObserveRejection("storage")
	}
	common.WriteError(h.logger, w, err)
}

func (req submitRequest) toInput() (domain.SubmissionInput, error) {
	fields := []struct {
		name  string
		value *float64
	}{
		{"anxietyScore", req.AnxietyScore},
		{"avoidanceScore", req.AvoidanceScore},
		{"anxietyCount", req.AnxietyCount},
		{"avoidanceCount", req.AvoidanceCount},
	}
	for _, f := range fields {
		if f.value == nil {
			return domain.SubmissionInput{}, &domain.ValidationError{Field: f.name, Reason: "is required"}
		}
	}

	return domain.SubmissionInput{
		AnxietyScore:   *req.AnxietyScore,
		AvoidanceScore: *req.AvoidanceScore,
		AnxietyCount:   *req.AnxietyCount,
		AvoidanceCount: *req.AvoidanceCount,
	}, nil
}

// decodeBody reads a single JSON object. Malformed or mistyped bodies are
// reported as validation errors.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			return &domain.ValidationError{Field: typeErr.Field, Reason: fmt.Sprintf("must be a %s", typeErr.Type)}
		case errors.Is(err, io.EOF):
			return &domain.ValidationError{Reason: "request body is empty"}
		default:
			return &domain.ValidationError{Reason: "request body must be a JSON object"}
		}
	}
	if decoder.More() {
		return &domain.ValidationError{Reason: "request body must contain a single JSON object"}
	}
	return nil
}
