package public

import (
	"net/http"

	"github.com/sngm3741/attachment-quiz/api/internal/interfaces/http/common"
	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

func (h *Handler) questionsHandler() http.HandlerFunc {
	payload := buildQuestionsResponse(domain.Questions)
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, payload)
	}
}

func buildQuestionsResponse(questions []domain.Question) questionsResponse {
	items := make([]questionPayload, 0, len(questions))
	for _, q := range questions {
		items = append(items, questionPayload{ID: q.ID, Text: q.Text, Type: string(q.Axis)})
	}

	options := make([]int, 0, domain.MaxAnswer-domain.MinAnswer+1)
	for v := domain.MinAnswer; v <= domain.MaxAnswer; v++ {
		options = append(options, v)
	}

	resultTypes := make([]resultTypePayload, 0, len(domain.AllResultTypes))
	for _, rt := range domain.AllResultTypes {
		resultTypes = append(resultTypes, resultTypePayload{Key: rt.String(), DisplayName: rt.DisplayName()})
	}

	return questionsResponse{
		Questions:     items,
		Options:       options,
		DefaultAnswer: domain.DefaultAnswer,
		ResultTypes:   resultTypes,
	}
}
