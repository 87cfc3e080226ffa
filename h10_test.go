package brotli

import (
	"bytes"
	"testing"
)

/* Deterministic filler so the tree tests do not depend on any seed. */
func lcgBytes(n int) []byte {
	data := make([]byte, n)
	state := uint32(12345)
	for i := range data {
		state = state*1103515245 + 12345
		data[i] = byte(state >> 16)
	}
	return data
}

func TestH10LookaheadGuard(t *testing.T) {
	handle := newTestHasher(t, 10, 16)
	self := handle.(*H10)
	data := padded("short input, well under the nice length")

	matches := make([]BackwardMatch, kH10NiceLength+kMaxDictionaryMatchLen+1)
	if count := HasherFindAllMatches(handle, nil, data, linearMask, 0, 40, 1<<15, matches); count != 0 {
		t.Fatalf("count = %d, want 0 below the nice length", count)
	}

	/* The guard must leave the index untouched. */
	for i, v := range self.hash_tabs_ {
		if v != -self.window_mask_ {
			t.Fatalf("hash_tabs_[%d] modified to %d", i, v)
		}
	}
}

func TestH10OutOfWindow(t *testing.T) {
	handle := newTestHasher(t, 10, 10)
	data := bytes.Repeat([]byte("abcdefghijklmnop"), 256)
	mask := uint(4095)

	for i := uint(0); i <= 10; i++ {
		HasherStore(handle, data, mask, i)
	}

	/* Position 0 aged out of the 1 << 10 window; it must be silently
	   excluded at position 2000 even though the bytes repeat. */
	matches := make([]BackwardMatch, kH10NiceLength+kMaxDictionaryMatchLen+1)
	if count := HasherFindAllMatches(handle, nil, data, mask, 2000, 96, 1<<9, matches); count != 0 {
		t.Fatalf("count = %d, want 0 for out-of-window entries", count)
	}
}

func TestH10StoreNearEndIsNoop(t *testing.T) {
	handle := newTestHasher(t, 10, 16)
	self := handle.(*H10)
	data := lcgBytes(100)

	HasherStore(handle, data, linearMask, 60)
	for i, v := range self.hash_tabs_ {
		if v != -self.window_mask_ {
			t.Fatalf("hash_tabs_[%d] modified by a store without lookahead", i)
		}
	}
}

func TestFindAllMatchesH10Planted(t *testing.T) {
	handle := newTestHasher(t, 10, 12)
	data := lcgBytes(4096 + 64)
	copy(data[300:312], data[1000:1012])
	copy(data[500:508], data[1000:1008])

	for i := uint(0); i < 1000; i++ {
		HasherStore(handle, data, linearMask, i)
	}

	matches := make([]BackwardMatch, kH10NiceLength+kMaxDictionaryMatchLen+1)
	count := HasherFindAllMatches(handle, nil, data, linearMask, 1000, 64, 1<<11, matches)
	if count < 2 {
		t.Fatalf("count = %d, want the two planted matches", count)
	}

	prev_len := uint(0)
	var longest uint
	var longest_distance uint32
	for i := uint(0); i < count; i++ {
		l := BackwardMatchLength(&matches[i])
		if l <= prev_len {
			t.Fatalf("lengths not strictly increasing: %d after %d", l, prev_len)
		}
		prev_len = l
		checkMatchBytes(t, data, 1000, uint(matches[i].distance), l, 1000)
		longest = l
		longest_distance = matches[i].distance
	}

	if longest < 12 || longest_distance != 700 {
		t.Errorf("longest match (distance %d, len %d), want the 12-byte plant at distance 700", longest_distance, longest)
	}
}

func TestFindAllMatchesH10NiceLengthCollapse(t *testing.T) {
	handle := newTestHasher(t, 10, 12)
	data := bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz"), 80)

	for i := uint(0); i < 1000; i++ {
		HasherStore(handle, data, linearMask, i)
	}

	matches := make([]BackwardMatch, kH10NiceLength+kMaxDictionaryMatchLen+1)
	count := HasherFindAllMatches(handle, nil, data, linearMask, 1000, 64, 1<<11, matches)
	if count != 1 {
		t.Fatalf("count = %d, want exactly 1 at the nice length", count)
	}
	if matches[0].distance != 26 || BackwardMatchLength(&matches[0]) < kH10NiceLength {
		t.Fatalf("got (distance %d, len %d)", matches[0].distance, BackwardMatchLength(&matches[0]))
	}
	checkMatchBytes(t, data, 1000, uint(matches[0].distance), BackwardMatchLength(&matches[0]), 1000)
}

func TestFindLongestMatchH10(t *testing.T) {
	handle := newTestHasher(t, 10, 12)
	data := lcgBytes(4096 + 64)
	copy(data[300:312], data[1000:1012])
	copy(data[500:508], data[1000:1008])

	for i := uint(0); i < 1000; i++ {
		HasherStore(handle, data, linearMask, i)
	}

	var cache [4]int
	var out HasherSearchResult
	found := HasherFindLongestMatch(handle, nil, data, linearMask, cache[:], 1000, 64, 1<<11, &out)
	if !found {
		t.Fatal("expected a match")
	}
	if out.distance != 700 || out.len < 12 {
		t.Fatalf("got (distance %d, len %d), want the longer plant at distance 700", out.distance, out.len)
	}
	checkMatchBytes(t, data, 1000, out.distance, out.len, 1<<11)
}

/* Feeding a long repetitive stream must keep every traversal bounded and
   the tree consistent; this mainly asserts termination and that later
   queries still honor the match contract. */
func TestH10RerootLongStream(t *testing.T) {
	handle := newTestHasher(t, 10, 11)
	data := bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz"), 120)

	for i := uint(0); i < 3000; i++ {
		HasherStore(handle, data, linearMask, i)
	}

	matches := make([]BackwardMatch, kH10NiceLength+kMaxDictionaryMatchLen+1)
	count := HasherFindAllMatches(handle, nil, data, linearMask, 3000, 64, 1<<10, matches)
	if count != 1 {
		t.Fatalf("count = %d, want the single nice-length match", count)
	}
	if matches[0].distance != 26 {
		t.Fatalf("distance = %d, want 26", matches[0].distance)
	}
}
