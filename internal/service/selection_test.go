package service

import (
	"testing"

	"github.com/coding-online/certexam/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectQuestions_SampleWithoutReplacement(t *testing.T) {
	pool := poolOf(20)
	selected := SelectQuestions(pool, 5)
	require.Len(t, selected, 5)

	seen := make(map[int]bool)
	for _, q := range selected {
		assert.False(t, seen[q.ID], "question %d sampled twice", q.ID)
		seen[q.ID] = true
		assert.True(t, q.ID >= 1 && q.ID <= 20, "sampled question must come from the pool")
	}
}

func TestSelectQuestions_CountClampedToPoolSize(t *testing.T) {
	pool := poolOf(3)
	selected := SelectQuestions(pool, 50)
	assert.Len(t, selected, 3)
}

func TestSelectQuestions_NonPositiveCount(t *testing.T) {
	pool := poolOf(3)
	assert.Empty(t, SelectQuestions(pool, 0))
	assert.Empty(t, SelectQuestions(pool, -1))
	assert.Empty(t, SelectQuestions(nil, 5))
}

func TestSelectQuestions_DoesNotMutatePool(t *testing.T) {
	pool := poolOf(10)
	original := make([]model.Question, len(pool))
	copy(original, pool)

	for i := 0; i < 20; i++ {
		SelectQuestions(pool, 10)
	}
	assert.Equal(t, original, pool)
}
