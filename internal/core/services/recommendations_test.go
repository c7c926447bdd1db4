package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/profdir/internal/adapters/driven/storage/memory"
)

func TestRecommendations_Recommend(t *testing.T) {
	r := NewRecommendations(memory.NewRecommendationStore())

	assert.False(t, r.IsRecommended("1"))
	assert.True(t, r.Recommend("1"))
	assert.True(t, r.IsRecommended("1"))
	assert.Equal(t, 1, r.Count())
}

func TestRecommendations_RecommendTwice(t *testing.T) {
	r := NewRecommendations(memory.NewRecommendationStore())

	assert.True(t, r.Recommend("1"))
	assert.False(t, r.Recommend("1"))
	assert.Equal(t, 1, r.Count())
}

func TestRecommendations_IDs(t *testing.T) {
	r := NewRecommendations(memory.NewRecommendationStore())
	r.Recommend("2")
	r.Recommend("1")
	r.Recommend("2")

	assert.Equal(t, []string{"2", "1"}, r.IDs())
}
