package admin

import (
	"time"

	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

type responseItem struct {
	ID             string    `json:"id"`
	AnxietyScore   float64   `json:"anxietyScore"`
	AvoidanceScore float64   `json:"avoidanceScore"`
	ResultType     string    `json:"resultType"`
	CreatedAt      time.Time `json:"createdAt"`
}

type responseListResponse struct {
	Items []responseItem `json:"items"`
	Limit int            `json:"limit"`
	Stats domain.Stats   `json:"stats"`
}

func newResponseItem(r domain.Response) responseItem {
	return responseItem{
		ID:             r.ID,
		AnxietyScore:   r.AnxietyScore,
		AvoidanceScore: r.AvoidanceScore,
		ResultType:     r.ResultType.String(),
		CreatedAt:      r.CreatedAt,
	}
}
