package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

func TestResponseDocumentRoundTrip(t *testing.T) {
	created := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	in := &domain.Response{AnxietyScore: 3.75, AvoidanceScore: 2.5, ResultType: domain.Anxious, CreatedAt: created}

	doc := newResponseDocument(in)
	assert.False(t, doc.ID.IsZero())
	assert.Equal(t, "anxious", doc.ResultType)
	assert.Equal(t, created, doc.UpdatedAt)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded ResponseDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	out := mapResponseDocument(decoded)
	assert.Equal(t, doc.ID.Hex(), out.ID)
	assert.Equal(t, 3.75, out.AnxietyScore)
	assert.Equal(t, 2.5, out.AvoidanceScore)
	assert.Equal(t, domain.Anxious, out.ResultType)
	assert.True(t, created.Equal(out.CreatedAt))
}

func TestResponseDocumentDefaultsTimestamps(t *testing.T) {
	doc := newResponseDocument(&domain.Response{ResultType: domain.Secure})
	assert.False(t, doc.CreatedAt.IsZero())
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
}

func TestMapLabelCounts(t *testing.T) {
	raw, err := bson.Marshal(bson.D{{Key: "_id", Value: nil}, {Key: "count", Value: int32(2)}})
	require.NoError(t, err)
	var nullGroup labelCountDocument
	require.NoError(t, bson.Unmarshal(raw, &nullGroup))

	docs := []labelCountDocument{
		{Label: "secure", Count: 2},
		{Label: "fearful", Count: 1},
		nullGroup,
		{Label: int32(7), Count: 4},
	}

	got := mapLabelCounts(docs)
	require.Len(t, got, 4)
	assert.Equal(t, domain.LabelCount{Label: "secure", Count: 2}, got[0])
	assert.Equal(t, domain.LabelCount{Label: "", Count: 2}, got[2])
	assert.Equal(t, "", got[3].Label)

	assert.Equal(t, domain.Stats{Secure: 2, Fearful: 1}, domain.Aggregate(got))
}
