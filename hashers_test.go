package brotli

import (
	"reflect"
	"testing"
)

func TestHasherResetClears(t *testing.T) {
	handle := newTestHasher(t, 5, 16)
	data := padded("abcdabcdabcd")
	var cache [4]int

	for i := uint(0); i < 4; i++ {
		HasherStore(handle, data, linearMask, i)
	}
	handle.Common().dict_num_lookups = 7

	HasherReset(handle)

	var out HasherSearchResult
	if HasherFindLongestMatch(handle, nil, data, linearMask, cache[:], 4, 8, 16, &out) {
		t.Fatal("match found after reset")
	}
	if handle.Common().dict_num_lookups != 0 {
		t.Error("dictionary counters not reset")
	}
}

func TestHasherStoreRangeDispatch(t *testing.T) {
	a := newTestHasher(t, 2, 16)
	b := newTestHasher(t, 2, 16)
	data := padded(repeatString("abcdefgh_123", 8))

	HasherStoreRange(a, data, linearMask, 0, 64)
	for i := uint(0); i < 64; i++ {
		HasherStore(b, data, linearMask, i)
	}

	if !reflect.DeepEqual(a.(*H2).buckets_, b.(*H2).buckets_) {
		t.Error("StoreRange differs from per-position stores")
	}
}

func TestPrependCustomDictionaryParity(t *testing.T) {
	for _, quality := range []int{2, 5} {
		a := newTestHasher(t, quality, 16)
		b := newTestHasher(t, quality, 16)
		prefix := []byte(repeatString("sliding window warmup text. ", 4))

		if !HasherPrependCustomDictionary(a, prefix) {
			t.Fatalf("quality %d: warmup reported unsupported", quality)
		}

		var type_length uint
		switch quality {
		case 2:
			type_length = HashTypeLengthH2()
		case 5:
			type_length = HashTypeLengthH5()
		}
		for i := uint(0); i+type_length-1 < uint(len(prefix)); i++ {
			HasherStore(b, prefix, ^uint(0), i)
		}

		switch quality {
		case 2:
			if !reflect.DeepEqual(a.(*H2).buckets_, b.(*H2).buckets_) {
				t.Errorf("quality %d: warmup state differs from manual stores", quality)
			}
		case 5:
			if !reflect.DeepEqual(a.(*H5).buckets_, b.(*H5).buckets_) || !reflect.DeepEqual(a.(*H5).num_, b.(*H5).num_) {
				t.Errorf("quality %d: warmup state differs from manual stores", quality)
			}
		}
	}
}

func TestPrependCustomDictionaryH10Unsupported(t *testing.T) {
	handle := newTestHasher(t, 10, 16)
	self := handle.(*H10)
	prefix := []byte(repeatString("sliding window warmup text. ", 8))

	if HasherPrependCustomDictionary(handle, prefix) {
		t.Fatal("tree hasher must report custom dictionaries as unsupported")
	}
	for i, v := range self.hash_tabs_ {
		if v != -self.window_mask_ {
			t.Fatalf("hash_tabs_[%d] modified by unsupported warmup", i)
		}
	}
}

func TestHasherFindAllMatchesQuickDegrade(t *testing.T) {
	handle := newTestHasher(t, 2, 16)
	data := padded(repeatString("abcdefgh", 6))
	for i := uint(0); i < 16; i++ {
		HasherStore(handle, data, linearMask, i)
	}

	matches := make([]BackwardMatch, kMaxZopfliLen+kMaxDictionaryMatchLen+1)
	count := HasherFindAllMatches(handle, nil, data, linearMask, 16, 16, 64, matches)
	if count != 1 {
		t.Fatalf("count = %d, want the single longest match", count)
	}
	if BackwardMatchLength(&matches[0]) != 16 || matches[0].distance != 8 {
		t.Fatalf("got (distance %d, len %d)", matches[0].distance, BackwardMatchLength(&matches[0]))
	}
	checkMatchBytes(t, data, 16, uint(matches[0].distance), BackwardMatchLength(&matches[0]), 64)
}

func TestStitchToPreviousBlock(t *testing.T) {
	a := newTestHasher(t, 5, 16)
	b := newTestHasher(t, 5, 16)
	data := padded(repeatString("block boundary bytes", 4))

	HasherStitchToPreviousBlock(a, 20, 40, data, linearMask)
	for i := uint(37); i < 40; i++ {
		HasherStore(b, data, linearMask, i)
	}

	if !reflect.DeepEqual(a.(*H5).buckets_, b.(*H5).buckets_) || !reflect.DeepEqual(a.(*H5).num_, b.(*H5).num_) {
		t.Error("stitch differs from storing the last three positions")
	}
}
