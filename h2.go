package brotli

/* NOLINT(build/header_guard) */
/* Copyright 2010 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/
func HashTypeLengthH2() uint {
	return 8
}

func StoreLookaheadH2() uint {
	return 8
}

func HashBytesH2(data []byte) uint32 {
	var h uint64 = (BROTLI_UNALIGNED_LOAD64LE(data) << 24) * uint64(kHashMul32)

	/* The higher bits contain more mixture from the multiplication,
	   so we take our results from there. */
	return uint32(h >> (64 - 16))
}

/* A (forgetful) hash table to the data seen by the compressor, to
   help create backward references to previous data.

   This is a hash map of fixed size (1 << 16). Starting from the
   given index, 2 buckets are used to store values of a key. */
type H2 struct {
	HasherCommon
	buckets_ [(1 << 16) + 2]uint32
}

func SelfH2(handle HasherHandle) *H2 {
	return handle.(*H2)
}

func InitializeH2(handle HasherHandle, params *BrotliEncoderParams) {
}

func ResetH2(handle HasherHandle) {
	var self *H2 = SelfH2(handle)

	/* It is not strictly necessary to fill this buffer here, but
	   not filling will make the results of the compression stochastic
	   (but correct). This is because random data would cause the
	   system to find accidentally good backward references here and
	   there. */
	var i int
	for i = 0; i < len(self.buckets_); i++ {
		self.buckets_[i] = 0
	}
}

/* Look at 5 bytes at &data[ix & mask].
   Compute a hash from these, and store the value of ix in one of the
   slots [key .. key+1]. */
func StoreH2(handle HasherHandle, data []byte, mask uint, ix uint) {
	var key uint32 = HashBytesH2(data[ix&mask:])
	var off uint32 = uint32(ix>>3) % 2
	/* Wiggle the value with the bucket sweep range. */
	SelfH2(handle).buckets_[key+off] = uint32(ix)
}

func StoreRangeH2(handle HasherHandle, data []byte, mask uint, ix_start uint, ix_end uint) {
	var i uint
	for i = ix_start; i < ix_end; i++ {
		StoreH2(handle, data, mask, i)
	}
}

func StitchToPreviousBlockH2(handle HasherHandle, num_bytes uint, position uint, ringbuffer []byte, ringbuffer_mask uint) {
	if num_bytes >= HashTypeLengthH2()-1 && position >= 3 {
		/* Prepare the hashes for three last bytes of the last write.
		   These could not be calculated before, since they require knowledge
		   of both the previous and the current block. */
		StoreH2(handle, ringbuffer, ringbuffer_mask, position-3)

		StoreH2(handle, ringbuffer, ringbuffer_mask, position-2)
		StoreH2(handle, ringbuffer, ringbuffer_mask, position-1)
	}
}

/* Find a longest backward match of &data[cur_ix & ring_buffer_mask]
   up to the length of max_length.

   Does not look for matches longer than max_length.
   Does not look for matches further away than max_backward.
   Writes the best match into |out|.
   |out| is only modified if a strictly better match is found.
   Storing cur_ix is the caller's responsibility. */
func FindLongestMatchH2(handle HasherHandle, dictionary *BrotliEncoderDictionary, data []byte, ring_buffer_mask uint, distance_cache []int, cur_ix uint, max_length uint, max_backward uint, out *HasherSearchResult) bool {
	var self *H2 = SelfH2(handle)
	var best_len_in uint = out.len
	var cur_ix_masked uint = cur_ix & ring_buffer_mask
	var compare_char int = int(data[cur_ix_masked+best_len_in])
	var best_len uint = best_len_in
	var cached_backward uint = uint(distance_cache[0])
	var prev_ix uint = cur_ix - cached_backward
	var match_found bool = false
	if prev_ix < cur_ix {
		prev_ix &= ring_buffer_mask
		if compare_char == int(data[prev_ix+best_len]) {
			var len uint = FindMatchLengthWithLimit(data[prev_ix:], data[cur_ix_masked:], max_length)
			if len >= 4 {
				var score float64 = BackwardReferenceScoreUsingLastDistance(len, 0)
				if out.score < score {
					best_len = len
					out.len = len
					out.len_code = len
					out.distance = cached_backward
					out.score = score
					compare_char = int(data[cur_ix_masked+best_len])
					match_found = true
				}
			}
		}
	}

	var key uint32 = HashBytesH2(data[cur_ix_masked:])
	var bucket []uint32 = self.buckets_[key:]
	var i int
	for i = 0; i < 2; i++ {
		prev_ix = uint(bucket[i])
		var backward uint = cur_ix - prev_ix
		prev_ix &= ring_buffer_mask
		if compare_char != int(data[prev_ix+best_len]) {
			continue
		}

		if backward == 0 || backward > max_backward {
			continue
		}

		var len uint = FindMatchLengthWithLimit(data[prev_ix:], data[cur_ix_masked:], max_length)
		if len >= 4 {
			var score float64 = BackwardReferenceScore(len, backward)
			if out.score < score {
				best_len = len
				out.len = len
				out.len_code = len
				out.distance = backward
				out.score = score
				compare_char = int(data[cur_ix_masked+best_len])
				match_found = true
			}
		}
	}

	return match_found
}
