package gen

import (
	"math/rand"
	"sync"
)

// rng is the package-level seedable random source every generator in this
// package draws from by default, reseeded through Seed for reproducible
// random fixtures.
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed reseeds the package-level random source.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

func intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rng.Intn(n)
}
