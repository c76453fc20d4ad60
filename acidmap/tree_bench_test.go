package acidmap_test

import (
	"testing"

	"github.com/acidmap/acidmap/acidmap"
	"github.com/acidmap/acidmap/internal/verify"
)

func benchmarkFind(b *testing.B, m *acidmap.Map[int, struct{}], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			m.Find(key)
		}
	}
}

func benchmarkInsert(b *testing.B, m *acidmap.Map[int, struct{}], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			m.Insert(key, struct{}{})
		}
	}
}

func benchmarkErase(b *testing.B, m *acidmap.Map[int, struct{}], keys []int) {
	b.Helper()

	for range b.N {
		for _, key := range keys {
			m.Erase(key)
		}
	}
}

func benchmarkSizes(b *testing.B, run func(b *testing.B, size int)) {
	b.Helper()

	for _, size := range []int{100, 1000, 10000, 100000} {
		run(b, size)
	}
}

func BenchmarkMapFind(b *testing.B) {
	benchmarkSizes(b, func(b *testing.B, size int) {
		b.Run(nameFor(size), func(b *testing.B) {
			b.StopTimer()

			m := acidmap.New[int, struct{}]()
			keys := verify.PermutedInts(size)

			for _, key := range keys {
				m.Insert(key, struct{}{})
			}

			b.StartTimer()
			benchmarkFind(b, m, keys)
		})
	})
}

func BenchmarkMapInsert(b *testing.B) {
	benchmarkSizes(b, func(b *testing.B, size int) {
		b.Run(nameFor(size), func(b *testing.B) {
			b.StopTimer()

			m := acidmap.New[int, struct{}]()
			keys := verify.PermutedInts(size)

			b.StartTimer()
			benchmarkInsert(b, m, keys)
		})
	})
}

func BenchmarkMapErase(b *testing.B) {
	benchmarkSizes(b, func(b *testing.B, size int) {
		b.Run(nameFor(size), func(b *testing.B) {
			b.StopTimer()

			m := acidmap.New[int, struct{}]()
			keys := verify.PermutedInts(size)

			for _, key := range keys {
				m.Insert(key, struct{}{})
			}

			b.StartTimer()
			benchmarkErase(b, m, keys)
		})
	})
}

func nameFor(size int) string {
	switch size {
	case 100:
		return "100"
	case 1000:
		return "1000"
	case 10000:
		return "10000"
	default:
		return "100000"
	}
}
