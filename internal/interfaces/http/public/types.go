package public

import (
	"time"

	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

// submitRequest uses pointers so that missing fields are distinguishable from zero.
type submitRequest struct {
	AnxietyScore   *float64 `json:"anxietyScore"`
	AvoidanceScore *float64 `json:"avoidanceScore"`
	AnxietyCount   *float64 `json:"anxietyCount"`
	AvoidanceCount *float64 `json:"avoidanceCount"`
}

type answersRequest struct {
	Answers map[string]int `json:"answers"`
}

type submitResponse struct {
	ID             string    `json:"id"`
	AnxietyScore   float64   `json:"anxietyScore"`
	AvoidanceScore float64   `json:"avoidanceScore"`
	ResultType     string    `json:"resultType"`
	DisplayName    string    `json:"displayName"`
	CreatedAt      time.Time `json:"createdAt"`
}

type questionPayload struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

type resultTypePayload struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
}

type questionsResponse struct {
	Questions     []questionPayload   `json:"questions"`
	Options       []int               `json:"options"`
	DefaultAnswer int                 `json:"defaultAnswer"`
	ResultTypes   []resultTypePayload `json:"resultTypes"`
}

func newSubmitResponse(response *domain.Response) submitResponse {
	return submitResponse{
		ID:             response.ID,
		AnxietyScore:   response.AnxietyScore,
		AvoidanceScore: response.AvoidanceScore,
		ResultType:     response.ResultType.String(),
		DisplayName:    response.ResultType.DisplayName(),
		CreatedAt:      response.CreatedAt,
	}
}
