package dataset

import (
	"math/rand"
	"time"
)

// NewRand возвращает генератор с заданной затравкой, 0 - текущее время.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
