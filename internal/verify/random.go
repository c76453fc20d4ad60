package verify

import (
	"math/rand"
	"time"
)

// RandomInts generates a slice of count random integers in [0, maxVal),
// using a fresh random source each call.
func RandomInts(count, maxVal int) []int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	nums := make([]int, count)

	for i := range nums {
		nums[i] = rng.Intn(maxVal)
	}

	return nums
}

// PermutedInts generates a permutation of the integers in [0, count).
func PermutedInts(count int) []int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return rng.Perm(count)
}
