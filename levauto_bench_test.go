package levauto

import (
	"math/rand"
	"testing"
)

var alphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randString(rng *rand.Rand, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(runes)
}

func benchmarkNew(b *testing.B, patternLen, k int) {
	rng := rand.New(rand.NewSource(0))
	pattern := randString(rng, patternLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(pattern, k)
	}
}

func BenchmarkNewK0(b *testing.B)          { benchmarkNew(b, 10, 0) }
func BenchmarkNewK1(b *testing.B)          { benchmarkNew(b, 10, 1) }
func BenchmarkNewK2(b *testing.B)          { benchmarkNew(b, 10, 2) }
func BenchmarkNewK3(b *testing.B)          { benchmarkNew(b, 10, 3) }
func BenchmarkNewLongPattern(b *testing.B) { benchmarkNew(b, 100, 2) }

func benchmarkCheck(b *testing.B, patternLen, queryLen, k int) {
	rng := rand.New(rand.NewSource(0))
	pattern := randString(rng, patternLen)
	a := New(pattern, k)
	queries := make([]string, 1000)
	for i := range queries {
		queries[i] = randString(rng, queryLen)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Check(queries[i%len(queries)])
	}
}

func BenchmarkCheckK1(b *testing.B)        { benchmarkCheck(b, 10, 10, 1) }
func BenchmarkCheckK2(b *testing.B)        { benchmarkCheck(b, 10, 10, 2) }
func BenchmarkCheckK3(b *testing.B)        { benchmarkCheck(b, 10, 10, 3) }
func BenchmarkCheckLongQuery(b *testing.B) { benchmarkCheck(b, 10, 200, 2) }

func BenchmarkLevenshteinDistance(b *testing.B) {
	rng := rand.New(rand.NewSource(0))
	a := randString(rng, 50)
	c := randString(rng, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		LevenshteinDistance(a, c)
	}
}
