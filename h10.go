package brotli

/* NOLINT(build/header_guard) */
/* Copyright 2016 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Binary-tree (bt) based matchfinder.

   The main data structure is a hash table where each hash bucket
   contains a binary tree of sequences whose first 4 bytes share the same
   hash code. Each sequence is identified by its starting position in the
   input data. Each binary tree is always sorted such that each left
   child represents a sequence lexicographically lesser than its parent
   and each right child represents a sequence lexicographically greater
   than its parent.

   The algorithm processes the input data sequentially. At each byte
   position, the hash code of the first 4 bytes of the sequence beginning
   at that position (the sequence being matched against) is computed.
   This identifies the hash bucket to use for that position. Then, a new
   binary tree node is created to represent the current sequence. Then,
   in a single tree traversal, the hash bucket's binary tree is searched
   for matches and is re-rooted at the new node.

   Shorter matches of length 2 and 3 come from two auxiliary direct-map
   tables packed in front of the tree table. */
func HashTypeLengthH10() uint {
	return 8
}

func StoreLookaheadH10() uint {
	return 8
}

const kH10Hash2Log = 10

const kH10Hash3Log = 15

const kH10Hash4Log = 17

const kH10Hash2Offset = 0

const kH10Hash3Offset = kH10Hash2Offset + (1 << kH10Hash2Log)

const kH10Hash4Offset = kH10Hash3Offset + (1 << kH10Hash3Log)

const kH10HashTotalLength = kH10Hash4Offset + (1 << kH10Hash4Log)

/* Limit on the depth to search in a tree. Must be >= 1. */
const kH10MaxSearchDepth = 32

/* Stop searching if a match of at least this length is found. */
const kH10NiceLength = 48

/* Matches recorded per position: one length-2, one length-3, then tree
   matches in strictly increasing length up to the nice length. */
const kH10MaxNumMatches = kH10NiceLength + 16

type H10 struct {
	HasherCommon

	/* The window size minus 1. */
	window_mask_ uint32

	/* The hash tables:
	   - subtable of length 1 << kH10Hash2Log for finding length-2 matches
	   - subtable of length 1 << kH10Hash3Log for finding length-3 matches
	   - subtable of length 1 << kH10Hash4Log containing binary trees for
	     finding length-4+ matches */
	hash_tabs_ []uint32

	/* The child node references for the binary trees. The left and right
	   children of the node for the sequence with position pos are
	   child_tab_[2*pos] and child_tab_[2*pos+1], respectively. */
	child_tab_ []uint32

	max_search_depth_ uint32
	nice_length_      uint32
}

func SelfH10(handle HasherHandle) *H10 {
	return handle.(*H10)
}

func InitializeH10(handle HasherHandle, params *BrotliEncoderParams) {
	var self *H10 = SelfH10(handle)
	self.window_mask_ = (uint32(1) << params.lgwin) - 1
	self.hash_tabs_ = make([]uint32, kH10HashTotalLength)
	self.child_tab_ = make([]uint32, 2*(uint(self.window_mask_)+1))
	self.max_search_depth_ = kH10MaxSearchDepth
	self.nice_length_ = kH10NiceLength
}

func ResetH10(handle HasherHandle) {
	var self *H10 = SelfH10(handle)

	/* An unseeded slot holds -window_mask_: as an unsigned value it is
	   far in the past, so the distance checks reject it. The child table
	   needs no clearing, stale subtrees become unreachable. */
	var i int
	for i = 0; i < len(self.hash_tabs_); i++ {
		self.hash_tabs_[i] = -self.window_mask_
	}
}

/* Advance the matchfinder by one byte: record the length-2 and length-3
   table hits, install cur_ix as the new holder of all three hashes, and
   re-root the 4-byte tree at cur_ix. If record_matches, candidate
   matches are written into matches[num:] in strictly increasing length
   and the new count is returned; best_len_ret receives the longest tree
   match seen (or the starting threshold 3).

   The single traversal searches the tree for the current sequence,
   splits it into its lexicographically lesser-than-current and
   greater-than-current halves, and hooks those halves up as the new
   node's children. best_lt_len/best_gt_len carry the prefix already
   known to match from the ancestor chain, so it is never re-compared. */
func AdvanceOneByteH10(self *H10, data []byte, cur_ix uint, ring_buffer_mask uint, max_length uint, matches []BackwardMatch, num uint, best_len_ret *uint32, record_matches bool) uint {
	/* There needs to be at least nice_length_ bytes of lookahead for
	   positions to be inserted correctly; positions near the end of the
	   input are skipped entirely and left out of the index. */
	if max_length < uint(self.nice_length_) {
		return num
	}

	var orig_num uint = num
	var cur uint32 = uint32(cur_ix)
	var strptr []byte = data[cur_ix&ring_buffer_mask:]
	var nice_len uint32 = brotli_min_uint32_t(self.nice_length_, uint32(max_length))
	var depth_remaining uint32 = self.max_search_depth_
	var best_len uint32 = 3
	var seq4 uint32 = BROTLI_UNALIGNED_LOAD32LE(strptr)
	var seq3 uint32 = BROTLI_LOADED_U32_TO_U24(seq4)
	var seq2 uint32 = BROTLI_LOADED_U32_TO_U16(seq4)
	var prev_ix uint32

	/* Length 2 match (hash bucket only). */
	var hash2 uint32 = HashU32(seq2, kH10Hash2Log)
	prev_ix = self.hash_tabs_[kH10Hash2Offset+hash2]
	self.hash_tabs_[kH10Hash2Offset+hash2] = cur
	if record_matches && cur-prev_ix <= self.window_mask_-15 && seq2 == uint32(BROTLI_UNALIGNED_LOAD16LE(data[uint(prev_ix)&ring_buffer_mask:])) {
		InitBackwardMatch(&matches[num], uint(cur-prev_ix), 2)
		num++
	}

	/* Length 3 match (hash bucket only). */
	var hash3 uint32 = HashU32(seq3, kH10Hash3Log)
	prev_ix = self.hash_tabs_[kH10Hash3Offset+hash3]
	self.hash_tabs_[kH10Hash3Offset+hash3] = cur
	if record_matches && cur-prev_ix <= self.window_mask_-15 && seq3 == BROTLI_LOADED_U32_TO_U24(BROTLI_UNALIGNED_LOAD32LE(data[uint(prev_ix)&ring_buffer_mask:])) {
		InitBackwardMatch(&matches[num], uint(cur-prev_ix), 3)
		num++
	}

	/* Length 4+ matches (binary tree; the hash bucket contains the tree
	   root). */
	var hash4 uint32 = HashU32(seq4, kH10Hash4Log)
	prev_ix = self.hash_tabs_[kH10Hash4Offset+hash4]
	self.hash_tabs_[kH10Hash4Offset+hash4] = cur

	var pending_lt_ptr *uint32 = &self.child_tab_[2*(uint(cur)&uint(self.window_mask_))+0]
	var pending_gt_ptr *uint32 = &self.child_tab_[2*(uint(cur)&uint(self.window_mask_))+1]

	/* The 15-byte margin keeps the prefix-match reads and unaligned
	   loads of the traversal inside the window. */
	if cur-prev_ix > self.window_mask_-15 {
		*pending_lt_ptr = -self.window_mask_
		*pending_gt_ptr = -self.window_mask_
		*best_len_ret = best_len
		return num
	}

	var best_lt_len uint32 = 0
	var best_gt_len uint32 = 0
	var len uint32 = 0

	/* Rearrange the binary tree so that its new root is the current
	   sequence. If record_matches, also save matches to the matches
	   array while descending the tree. */
	for {
		var matchptr []byte = data[uint(prev_ix)&ring_buffer_mask:]
		var pair []uint32 = self.child_tab_[2*(uint(prev_ix)&uint(self.window_mask_)):]

		if matchptr[len] == strptr[len] {
			len++
			len += uint32(FindMatchLengthWithLimit(strptr[len:], matchptr[len:], max_length-uint(len)))
			if !record_matches {
				if len >= nice_len {
					*pending_lt_ptr = pair[0]
					*pending_gt_ptr = pair[1]
					return num
				}
			} else if len > best_len {
				best_len = len
				if best_len >= nice_len {
					/* A good-enough match dominates: drop everything
					   recorded so far and return it alone. */
					num = orig_num

					InitBackwardMatch(&matches[num], uint(cur-prev_ix), uint(best_len))
					num++
					*pending_lt_ptr = pair[0]
					*pending_gt_ptr = pair[1]
					*best_len_ret = best_len
					return num
				}

				InitBackwardMatch(&matches[num], uint(cur-prev_ix), uint(best_len))
				num++
			}
		}

		if matchptr[len] < strptr[len] {
			*pending_lt_ptr = prev_ix
			pending_lt_ptr = &pair[1]
			prev_ix = *pending_lt_ptr
			best_lt_len = len
			if best_gt_len < len {
				len = best_gt_len
			}
		} else {
			*pending_gt_ptr = prev_ix
			pending_gt_ptr = &pair[0]
			prev_ix = *pending_gt_ptr
			best_gt_len = len
			if best_lt_len < len {
				len = best_lt_len
			}
		}

		if cur-prev_ix > self.window_mask_-15 {
			*pending_lt_ptr = -self.window_mask_
			*pending_gt_ptr = -self.window_mask_
			*best_len_ret = best_len
			return num
		}

		depth_remaining--
		if depth_remaining == 0 {
			*pending_lt_ptr = -self.window_mask_
			*pending_gt_ptr = -self.window_mask_
			*best_len_ret = best_len
			return num
		}
	}
}

/* Skip a byte; don't search for matches at it. This re-roots the
   appropriate binary tree at the current sequence without recording
   anything; the tree must be maintained at skipped positions too. */
func SkipByteH10(self *H10, data []byte, cur_ix uint, ring_buffer_mask uint, max_length uint) {
	var best_len uint32
	AdvanceOneByteH10(self, data, cur_ix, ring_buffer_mask, max_length, nil, 0, &best_len, false)
}

func StoreH10(handle HasherHandle, data []byte, mask uint, ix uint) {
	var self *H10 = SelfH10(handle)
	var max_length uint = uint(len(data)) - (ix & mask)
	SkipByteH10(self, data, ix, mask, max_length)
}

func StoreRangeH10(handle HasherHandle, data []byte, mask uint, ix_start uint, ix_end uint) {
	var i uint
	for i = ix_start; i < ix_end; i++ {
		StoreH10(handle, data, mask, i)
	}
}

func StitchToPreviousBlockH10(handle HasherHandle, num_bytes uint, position uint, ringbuffer []byte, ringbuffer_mask uint) {
	if num_bytes >= HashTypeLengthH10()-1 && position >= 3 {
		/* Prepare the hashes for three last bytes of the last write.
		   These could not be calculated before, since they require knowledge
		   of both the previous and the current block. */
		StoreH10(handle, ringbuffer, ringbuffer_mask, position-3)

		StoreH10(handle, ringbuffer, ringbuffer_mask, position-2)
		StoreH10(handle, ringbuffer, ringbuffer_mask, position-1)
	}
}

/* Retrieve a list of matches with the current sequence.

   Writes the found matches into matches[0] .. matches[count-1], sorted
   by strictly increasing length and non-strictly increasing distance,
   and returns count. If the longest match is nice_length or longer,
   returns only this longest match.

   Requires that at least kH10NiceLength + kMaxDictionaryMatchLen space
   is available in matches. The window, not max_backward, bounds the
   tree search; max_backward is accepted for interface uniformity. */
func FindAllMatchesH10(handle HasherHandle, dictionary *BrotliEncoderDictionary, data []byte, ring_buffer_mask uint, cur_ix uint, max_length uint, max_backward uint, matches []BackwardMatch) uint {
	var self *H10 = SelfH10(handle)
	var best_len uint32 = 0
	if max_length < uint(self.nice_length_) {
		return 0
	}

	var num uint = AdvanceOneByteH10(self, data, cur_ix, ring_buffer_mask, max_length, matches, 0, &best_len, true)

	if dictionary != nil {
		var dict_matches [kMaxDictionaryMatchLen + 1]uint32
		var l uint
		for l = 0; l < uint(len(dict_matches)); l++ {
			dict_matches[l] = kInvalidMatch
		}

		var minlen uint = uint(best_len) + 1
		if FindAllStaticDictionaryMatches(dictionary, data[cur_ix&ring_buffer_mask:], minlen, max_length, dict_matches[:]) {
			var maxlen uint = brotli_min_size_t(kMaxDictionaryMatchLen, max_length)
			for l = minlen; l <= maxlen; l++ {
				var dict_id uint32 = dict_matches[l]
				if dict_id < kInvalidMatch {
					InitDictionaryBackwardMatch(&matches[num], brotli_min_size_t(cur_ix, uint(self.window_mask_-15))+uint(dict_id>>5)+1, l, uint(dict_id&31))
					num++
				}
			}
		}
	}

	return num
}

/* The tree hasher has no native single-match entry point; it records the
   candidates of one AdvanceOneByteH10 pass and keeps the best-scoring
   in-window one. Note that unlike the other hashers this stores cur_ix
   as a side effect, so a caller must not Store the same position again. */
func FindLongestMatchH10(handle HasherHandle, dictionary *BrotliEncoderDictionary, data []byte, ring_buffer_mask uint, distance_cache []int, cur_ix uint, max_length uint, max_backward uint, out *HasherSearchResult) bool {
	var self *H10 = SelfH10(handle)
	var matches [kH10MaxNumMatches]BackwardMatch
	var best_len uint32 = 0
	var match_found bool = false
	var i uint
	if max_length < uint(self.nice_length_) {
		return false
	}

	var num uint = AdvanceOneByteH10(self, data, cur_ix, ring_buffer_mask, max_length, matches[:], 0, &best_len, true)

	for i = 0; i < num; i++ {
		var backward uint = uint(matches[i].distance)
		var matchlen uint = BackwardMatchLength(&matches[i])
		if backward > max_backward {
			continue
		}

		var score float64
		if len(distance_cache) > 0 && backward == uint(distance_cache[0]) {
			score = BackwardReferenceScoreUsingLastDistance(matchlen, 0)
		} else if matchlen >= 4 {
			score = BackwardReferenceScore(matchlen, backward)
		} else {
			continue
		}

		if out.score < score {
			out.len = matchlen
			out.len_code = BackwardMatchLengthCode(&matches[i])
			out.distance = backward
			out.score = score
			match_found = true
		}
	}

	if !match_found {
		match_found = SearchInStaticDictionary(dictionary, handle, data[cur_ix&ring_buffer_mask:], max_length, max_backward, out, false)
	}

	return match_found
}
