package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

// ResponseDocument は MongoDB 上でのアンケート結果スキーマを Go 構造体として表現したもの。
// anxietyScore / avoidanceScore には合計ではなく平均点を保存する。
type ResponseDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	AnxietyScore   float64            `bson:"anxietyScore"`
	AvoidanceScore float64            `bson:"avoidanceScore"`
	ResultType     string             `bson:"resultType"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// labelCountDocument は resultType ごとの $group 結果 1 行分。
type labelCountDocument struct {
	Label any   `bson:"_id"`
	Count int64 `bson:"count"`
}

// newResponseDocument はドメイン Response を保存用ドキュメントへ変換する。
func newResponseDocument(response *domain.Response) ResponseDocument {
	createdAt := response.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := response.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return ResponseDocument{
		ID:             primitive.NewObjectID(),
		AnxietyScore:   response.AnxietyScore,
		AvoidanceScore: response.AvoidanceScore,
		ResultType:     response.ResultType.String(),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// mapResponseDocument は保存済みドキュメントをドメイン Response に復元する。
// 未知の resultType はゼロ値のまま返し、呼び出し側で Valid() により判定させる。
func mapResponseDocument(doc ResponseDocument) domain.Response {
	resultType, _ := domain.ParseResultType(doc.ResultType)
	return domain.Response{
		ID:             doc.ID.Hex(),
		AnxietyScore:   doc.AnxietyScore,
		AvoidanceScore: doc.AvoidanceScore,
		ResultType:     resultType,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

// mapLabelCounts は $group の結果をドメインの LabelCount へ変換する。
// null や文字列以外のキーは空ラベルとして渡し、集計側で無視させる。
func mapLabelCounts(docs []labelCountDocument) []domain.LabelCount {
	result := make([]domain.LabelCount, 0, len(docs))
	for _, doc := range docs {
		label, _ := doc.Label.(string)
		result = append(result, domain.LabelCount{Label: label, Count: doc.Count})
	}
	return result
}
