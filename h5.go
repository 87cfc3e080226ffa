package brotli

/* NOLINT(build/header_guard) */
/* Copyright 2010 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/
func HashTypeLengthH5() uint {
	return 4
}

func StoreLookaheadH5() uint {
	return 4
}

/* HashBytes is the function that chooses the bucket to place
   the address in. */
func HashBytesH5(data []byte, shift int) uint32 {
	var h uint32 = BROTLI_UNALIGNED_LOAD32LE(data) * kHashMul32

	/* The higher bits contain more mixture from the multiplication,
	   so we take our results from there. */
	return h >> uint(shift)
}

/* A (forgetful) hash table to the data seen by the compressor, to
   help create backward references to previous data.

   This is a hash map of fixed size (bucket_size_) to a ring buffer of
   fixed size (block_size_). The ring buffer contains the last
   block_size_ index positions of the given hash key in the compressed
   data. Quality levels 5 through 9 share this implementation and differ
   only in the table parameters chosen by ChooseHasher. */
type H5 struct {
	HasherCommon
	bucket_size_ uint
	block_size_  uint
	hash_shift_  int
	block_mask_  uint32

	/* Number of entries in a particular bucket. */
	num_ []uint16

	/* Buckets containing block_size_ of backward references. */
	buckets_ []uint32
}

func SelfH5(handle HasherHandle) *H5 {
	return handle.(*H5)
}

func InitializeH5(handle HasherHandle, params *BrotliEncoderParams) {
	var common *HasherCommon = handle.Common()
	var self *H5 = SelfH5(handle)
	self.hash_shift_ = 32 - common.params.bucket_bits
	self.bucket_size_ = uint(1) << uint(common.params.bucket_bits)
	self.block_size_ = uint(1) << uint(common.params.block_bits)
	self.block_mask_ = uint32(self.block_size_ - 1)
	self.num_ = make([]uint16, self.bucket_size_)
	self.buckets_ = make([]uint32, self.block_size_*self.bucket_size_)
}

func ResetH5(handle HasherHandle) {
	var self *H5 = SelfH5(handle)
	var i uint
	for i = 0; i < self.bucket_size_; i++ {
		self.num_[i] = 0
	}
}

/* Look at 4 bytes at &data[ix & mask].
   Compute a hash from these, and store the value of ix at that position. */
func StoreH5(handle HasherHandle, data []byte, mask uint, ix uint) {
	var self *H5 = SelfH5(handle)
	var key uint32 = HashBytesH5(data[ix&mask:], self.hash_shift_)
	var minor_ix uint = uint(self.num_[key]) & uint(self.block_mask_)
	self.buckets_[uint(key)*self.block_size_+minor_ix] = uint32(ix)
	self.num_[key]++
}

func StoreRangeH5(handle HasherHandle, data []byte, mask uint, ix_start uint, ix_end uint) {
	var i uint
	for i = ix_start; i < ix_end; i++ {
		StoreH5(handle, data, mask, i)
	}
}

func StitchToPreviousBlockH5(handle HasherHandle, num_bytes uint, position uint, ringbuffer []byte, ringbuffer_mask uint) {
	if num_bytes >= HashTypeLengthH5()-1 && position >= 3 {
		/* Prepare the hashes for three last bytes of the last write.
		   These could not be calculated before, since they require knowledge
		   of both the previous and the current block. */
		StoreH5(handle, ringbuffer, ringbuffer_mask, position-3)

		StoreH5(handle, ringbuffer, ringbuffer_mask, position-2)
		StoreH5(handle, ringbuffer, ringbuffer_mask, position-1)
	}
}

/* Find a longest backward match of &data[cur_ix & ring_buffer_mask]
   up to the length of max_length.

   Does not look for matches longer than max_length.
   Does not look for matches further away than max_backward.
   Writes the best match into |out|.
   |out| is only modified if a strictly better match is found.
   Storing cur_ix is the caller's responsibility. */
func FindLongestMatchH5(handle HasherHandle, dictionary *BrotliEncoderDictionary, data []byte, ring_buffer_mask uint, distance_cache []int, cur_ix uint, max_length uint, max_backward uint, out *HasherSearchResult) bool {
	var self *H5 = SelfH5(handle)
	var cur_ix_masked uint = cur_ix & ring_buffer_mask
	var best_len uint = out.len
	var match_found bool = false
	var i int

	/* Try last distance first. */
	for i = 0; i < self.params.num_last_distances_to_check; i++ {
		var idx int = kDistanceCacheIndex[i]
		var backward uint = uint(distance_cache[idx] + kDistanceCacheOffset[i])
		var prev_ix uint = cur_ix - backward
		if prev_ix >= cur_ix {
			continue
		}

		if backward > max_backward {
			continue
		}

		prev_ix &= ring_buffer_mask
		if cur_ix_masked+best_len > ring_buffer_mask || prev_ix+best_len > ring_buffer_mask || data[cur_ix_masked+best_len] != data[prev_ix+best_len] {
			continue
		}

		var len uint = FindMatchLengthWithLimit(data[prev_ix:], data[cur_ix_masked:], max_length)
		if len >= 3 || (len == 2 && i < 2) {
			/* Comparing for >= 2 does not change the semantics, but just
			   saves for a few unnecessary binary logarithms in backward
			   reference score, since we are not interested in such short
			   matches. */
			var score float64 = BackwardReferenceScoreUsingLastDistance(len, uint(i))
			if out.score < score {
				best_len = len
				out.len = len
				out.len_code = len
				out.distance = backward
				out.score = score
				match_found = true
			}
		}
	}

	var key uint32 = HashBytesH5(data[cur_ix_masked:], self.hash_shift_)
	var bucket []uint32 = self.buckets_[uint(key)*self.block_size_:]
	var down int
	if uint(self.num_[key]) > self.block_size_ {
		down = int(uint(self.num_[key]) - self.block_size_)
	} else {
		down = 0
	}

	for i = int(self.num_[key]) - 1; i >= down; i-- {
		var prev_ix uint = uint(bucket[uint32(i)&self.block_mask_])
		var backward uint = cur_ix - prev_ix
		if backward > max_backward {
			/* Older entries in the chain are strictly further away. */
			break
		}

		prev_ix &= ring_buffer_mask
		if cur_ix_masked+best_len > ring_buffer_mask || prev_ix+best_len > ring_buffer_mask || data[cur_ix_masked+best_len] != data[prev_ix+best_len] {
			continue
		}

		var len uint = FindMatchLengthWithLimit(data[prev_ix:], data[cur_ix_masked:], max_length)
		if len >= 4 {
			/* Comparing for >= 3 does not change the semantics, but just
			   saves for a few unnecessary binary logarithms in backward
			   reference score, since we are not interested in such short
			   matches. */
			var score float64 = BackwardReferenceScore(len, backward)
			if out.score < score {
				best_len = len
				out.len = len
				out.len_code = len
				out.distance = backward
				out.score = score
				match_found = true
			}
		}
	}

	if !match_found {
		match_found = SearchInStaticDictionary(dictionary, handle, data[cur_ix_masked:], max_length, max_backward, out, false)
	}

	return match_found
}

/* Similar to FindLongestMatchH5(), but finds all matches.

   Writes the found matches into matches[0] .. matches[count-1], sorted
   by strictly increasing length, and returns count.

   If the longest match is longer than kMaxZopfliLen, returns only this
   longest match.

   Requires that at least kMaxZopfliLen + kMaxDictionaryMatchLen space is
   available in matches. */
func FindAllMatchesH5(handle HasherHandle, dictionary *BrotliEncoderDictionary, data []byte, ring_buffer_mask uint, cur_ix uint, max_length uint, max_backward uint, matches []BackwardMatch) uint {
	var self *H5 = SelfH5(handle)
	var cur_ix_masked uint = cur_ix & ring_buffer_mask
	var count uint = 0
	var best_len uint = 1
	var stop int = int(cur_ix) - 64
	var i int
	if stop < 0 {
		stop = 0
	}

	/* Probe the nearest positions directly to pick up very short matches
	   the hash chain cannot represent. */
	for i = int(cur_ix) - 1; i > stop && best_len <= 2; i-- {
		var prev_ix uint = uint(i)
		var backward uint = cur_ix - prev_ix
		if backward > max_backward {
			break
		}

		prev_ix &= ring_buffer_mask
		if data[cur_ix_masked] != data[prev_ix] || data[cur_ix_masked+1] != data[prev_ix+1] {
			continue
		}

		var len uint = FindMatchLengthWithLimit(data[prev_ix:], data[cur_ix_masked:], max_length)
		if len > best_len {
			best_len = len
			if len > kMaxZopfliLen {
				count = 0
			}

			InitBackwardMatch(&matches[count], backward, len)
			count++
		}
	}

	var key uint32 = HashBytesH5(data[cur_ix_masked:], self.hash_shift_)
	var bucket []uint32 = self.buckets_[uint(key)*self.block_size_:]
	var down int
	if uint(self.num_[key]) > self.block_size_ {
		down = int(uint(self.num_[key]) - self.block_size_)
	} else {
		down = 0
	}

	for i = int(self.num_[key]) - 1; i >= down; i-- {
		var prev_ix uint = uint(bucket[uint32(i)&self.block_mask_])
		var backward uint = cur_ix - prev_ix
		if backward > max_backward {
			break
		}

		prev_ix &= ring_buffer_mask
		if cur_ix_masked+best_len > ring_buffer_mask || prev_ix+best_len > ring_buffer_mask || data[cur_ix_masked+best_len] != data[prev_ix+best_len] {
			continue
		}

		var len uint = FindMatchLengthWithLimit(data[prev_ix:], data[cur_ix_masked:], max_length)
		if len > best_len {
			best_len = len
			if len > kMaxZopfliLen {
				count = 0
			}

			InitBackwardMatch(&matches[count], backward, len)
			count++
		}
	}

	if dictionary != nil {
		var dict_matches [kMaxDictionaryMatchLen + 1]uint32
		var l uint
		for l = 0; l < uint(len(dict_matches)); l++ {
			dict_matches[l] = kInvalidMatch
		}

		var minlen uint = brotli_max_size_t(4, best_len+1)
		if FindAllStaticDictionaryMatches(dictionary, data[cur_ix_masked:], minlen, max_length, dict_matches[:]) {
			var maxlen uint = brotli_min_size_t(kMaxDictionaryMatchLen, max_length)
			for l = minlen; l <= maxlen; l++ {
				var dict_id uint32 = dict_matches[l]
				if dict_id < kInvalidMatch {
					InitDictionaryBackwardMatch(&matches[count], max_backward+uint(dict_id>>5)+1, l, uint(dict_id&31))
					count++
				}
			}
		}
	}

	return count
}
