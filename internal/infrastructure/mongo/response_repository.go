package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

// ResponseRepository はアンケート結果コレクションを MongoDB で扱う実装リポジトリ。
// 書き込みは InsertOne のみで、既存ドキュメントの更新・削除経路は持たない。
type ResponseRepository struct {
	responses *mongo.Collection
}

// NewResponseRepository は結果コレクションを束縛したリポジトリを構築する。
func NewResponseRepository(db *mongo.Database, collectionName string) *ResponseRepository {
	return &ResponseRepository{responses: db.Collection(collectionName)}
}

// EnsureIndexes は一覧取得用の createdAt 降順インデックスを作成する。既にあれば何もしない。
func (r *ResponseRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.responses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	})
	return err
}

// Create は結果ドキュメントを追加し、採番した ID とタイムスタンプをドメインモデルへ反映する。
func (r *ResponseRepository) Create(ctx context.Context, response *domain.Response) error {
	if !response.ResultType.Valid() {
		return fmt.Errorf("invalid result type %d", response.ResultType)
	}

	doc := newResponseDocument(response)
	if _, err := r.responses.InsertOne(ctx, doc); err != nil {
		return err
	}

	response.ID = doc.ID.Hex()
	response.CreatedAt = doc.CreatedAt
	response.UpdatedAt = doc.UpdatedAt
	return nil
}

// CountByResultType は resultType ごとの件数を DB 側の $group で集計する。
func (r *ResponseRepository) CountByResultType(ctx context.Context) ([]domain.LabelCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$resultType"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.responses.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]labelCountDocument, 0, len(domain.AllResultTypes))
	for cursor.Next(ctx) {
		var doc labelCountDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return mapLabelCounts(docs), nil
}

// Recent は作成日時の新しい順に最大 limit 件の結果を返す。
func (r *ResponseRepository) Recent(ctx context.Context, limit int) ([]domain.Response, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.responses.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := make([]domain.Response, 0)
	for cursor.Next(ctx) {
		var doc ResponseDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		responses = append(responses, mapResponseDocument(doc))
	}
	return responses, cursor.Err()
}

// Drop はコレクションを削除する。seed コマンドからのみ利用する。
func (r *ResponseRepository) Drop(ctx context.Context) error {
	return r.responses.Drop(ctx)
}
