package service

import (
	"math/rand"

	"github.com/coding-online/certexam/internal/model"
)

// SelectQuestions draws a uniform random sample of count questions without
// replacement. The returned order is the shuffle order. The shared pool is
// never mutated; count is clamped to the pool size and count <= 0 yields an
// empty slice.
func SelectQuestions(pool []model.Question, count int) []model.Question {
	if count <= 0 {
		return []model.Question{}
	}
	if count > len(pool) {
		count = len(pool)
	}

	shuffled := make([]model.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}
