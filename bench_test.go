package brotli

import (
	"testing"

	"github.com/xyproto/randomstring"
)

/* Word-shaped random text: compressible enough that the matchers do
   real work, unlike uniform noise. */
func benchCorpus(n int) []byte {
	randomstring.Seed()
	data := make([]byte, 0, n+64)
	for len(data) < n+64 {
		data = append(data, randomstring.HumanFriendlyString(48)...)
		data = append(data, ' ')
	}
	return data
}

func benchmarkFindLongestMatch(b *testing.B, quality int) {
	const n = 1 << 16
	data := benchCorpus(n)
	params := BrotliEncoderParams{quality: quality, lgwin: 18}
	SanitizeParams(&params)
	var handle HasherHandle
	HasherSetup(&handle, &params)

	var cache [4]int
	b.SetBytes(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		HasherReset(handle)
		for pos := uint(0); pos+64 < n; pos++ {
			var out HasherSearchResult
			HasherFindLongestMatch(handle, nil, data, ^uint(0), cache[:], pos, 48, 1<<15, &out)
			HasherStore(handle, data, ^uint(0), pos)
		}
	}
}

func BenchmarkFindLongestMatchH2(b *testing.B) {
	benchmarkFindLongestMatch(b, 2)
}

func BenchmarkFindLongestMatchH5(b *testing.B) {
	benchmarkFindLongestMatch(b, 5)
}

func BenchmarkFindLongestMatchH9(b *testing.B) {
	benchmarkFindLongestMatch(b, 9)
}

func BenchmarkFindAllMatchesH9(b *testing.B) {
	const n = 1 << 16
	data := benchCorpus(n)
	handle := HasherHandle(nil)
	params := BrotliEncoderParams{quality: 9, lgwin: 18}
	SanitizeParams(&params)
	HasherSetup(&handle, &params)

	matches := make([]BackwardMatch, kMaxZopfliLen+kMaxDictionaryMatchLen+1)
	b.SetBytes(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		HasherReset(handle)
		for pos := uint(0); pos+64 < n; pos++ {
			HasherFindAllMatches(handle, nil, data, ^uint(0), pos, 48, 1<<15, matches)
			HasherStore(handle, data, ^uint(0), pos)
		}
	}
}

func BenchmarkFindAllMatchesH10(b *testing.B) {
	const n = 1 << 16
	data := benchCorpus(n)
	handle := HasherHandle(nil)
	params := BrotliEncoderParams{quality: 10, lgwin: 18}
	SanitizeParams(&params)
	HasherSetup(&handle, &params)

	matches := make([]BackwardMatch, kH10NiceLength+kMaxDictionaryMatchLen+1)
	b.SetBytes(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		HasherReset(handle)

		/* The tree hasher indexes as a side effect of the search. */
		for pos := uint(0); pos+64 < n; pos++ {
			HasherFindAllMatches(handle, nil, data, ^uint(0), pos, 64, 1<<15, matches)
		}
	}
}
