package brotli

/* A (forgetful) hash table to the data seen by the compressor, to
   help create backward references to previous data.

   Excluding initialization and destruction, a hasher can be passed as
   HasherHandle by value. */
type HasherCommon struct {
	params           BrotliHasherParams
	is_prepared_     bool
	dict_num_lookups uint
	dict_num_matches uint
}

func (h *HasherCommon) Common() *HasherCommon {
	return h
}

type HasherHandle interface {
	Common() *HasherCommon
}

/* The distance short codes are pairs from these two tables: candidate i
   is distance_cache[kDistanceCacheIndex[i]] + kDistanceCacheOffset[i]. */
var kDistanceCacheIndex = [16]int{
	0, 1, 2, 3, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1,
}

var kDistanceCacheOffset = [16]int{
	0, 0, 0, 0, -1, 1, -2, 2, -3, 3, -1, 1, -2, 2, -3, 3,
}

const kCutoffTransformsCount = 10

var kCutoffTransforms = [kCutoffTransformsCount]uint32{0, 12, 27, 23, 42, 63, 56, 48, 59, 64}

/* kHashMul32 multiplier has these properties:
   * The multiplier must be odd. Otherwise we may lose the highest bit.
   * No long streaks of ones or zeros.
   * There is no effort to ensure that it is a prime, the oddity is enough
     for this use.
   * The number has been tuned heuristically against compression benchmarks. */
var kHashMul32 uint32 = 0x1E35A7BD

func Hash14(data []byte) uint32 {
	var h uint32 = BROTLI_UNALIGNED_LOAD32LE(data) * kHashMul32

	/* The higher bits contain more mixture from the multiplication,
	   so we take our results from there. */
	return h >> (32 - 14)
}

/* Hash for a sequence that has already been loaded and narrowed with
   BROTLI_LOADED_U32_TO_U24 / _TO_U16. */
func HashU32(seq uint32, num_bits uint) uint32 {
	var h uint32 = seq * kHashMul32
	return h >> (32 - num_bits)
}

/* Usually, we always choose the longest backward reference. This function
   allows for the exception of that rule.

   If we choose a backward reference that is further away, it will
   usually be coded with more bits. We approximate this by assuming
   log2(distance). If the distance can be expressed in terms of the
   last four distances, we use some heuristic constants to estimate
   the bits cost.

   This function is used to sometimes discard a longer backward reference
   when it is not much longer and the bit cost for encoding it is more
   than the saved literals.

   backward_reference_offset MUST be positive. */
func BackwardReferenceScore(copy_length uint, backward_reference_offset uint) float64 {
	return 5.4*float64(copy_length) - 1.20*float64(Log2FloorNonZero(backward_reference_offset))
}

var kDistanceShortCodeBitCost = [16]float64{
	-0.6, 0.95, 1.17, 1.27,
	0.93, 0.93, 0.96, 0.96, 0.99, 0.99,
	1.05, 1.05, 1.15, 1.15, 1.25, 1.25,
}

func BackwardReferenceScoreUsingLastDistance(copy_length uint, distance_short_code uint) float64 {
	return 5.4*float64(copy_length) - kDistanceShortCodeBitCost[distance_short_code]
}

/* The maximum length for which the zopflification uses distinct distances. */
const kMaxZopfliLen = 325

/* Result of a FindLongestMatch call. The caller seeds len and score with
   the best candidate it already has; the finders overwrite the fields only
   when they find a strictly better-scoring match. */
type HasherSearchResult struct {
	len      uint
	len_code uint
	distance uint
	score    float64
}

type BackwardMatch struct {
	distance        uint32
	length_and_code uint32
}

func InitBackwardMatch(self *BackwardMatch, dist uint, len uint) {
	self.distance = uint32(dist)
	self.length_and_code = uint32(len << 5)
}

func InitDictionaryBackwardMatch(self *BackwardMatch, dist uint, len uint, len_code uint) {
	self.distance = uint32(dist)
	var tmp uint
	if len == len_code {
		tmp = 0
	} else {
		tmp = len_code
	}
	self.length_and_code = uint32(len<<5 | tmp)
}

func BackwardMatchLength(self *BackwardMatch) uint {
	return uint(self.length_and_code >> 5)
}

func BackwardMatchLengthCode(self *BackwardMatch) uint {
	var code uint = uint(self.length_and_code) & 31
	if code != 0 {
		return code
	} else {
		return BackwardMatchLength(self)
	}
}

/* Allocates the hasher for the configured quality level and prepares it
   for a fresh stream. Exactly one hasher is live per stream; tables are
   sized here once and never grow. */
func HasherSetup(handle *HasherHandle, params *BrotliEncoderParams) {
	var self HasherHandle = nil
	var common *HasherCommon = nil
	if *handle == nil {
		ChooseHasher(params, &params.hasher)
		switch params.hasher.type_ {
		case 1:
			self = new(H1)
		case 2:
			self = new(H2)
		case 3:
			self = new(H3)
		case 4:
			self = new(H4)
		case 5, 6, 7, 8, 9:
			self = new(H5)
		case 10:
			self = new(H10)
		}

		*handle = self
		common = self.Common()
		common.params = params.hasher
		switch common.params.type_ {
		case 1:
			InitializeH1(*handle, params)
		case 2:
			InitializeH2(*handle, params)
		case 3:
			InitializeH3(*handle, params)
		case 4:
			InitializeH4(*handle, params)
		case 5, 6, 7, 8, 9:
			InitializeH5(*handle, params)
		case 10:
			InitializeH10(*handle, params)
		}
	}

	self = *handle
	common = self.Common()
	if !common.is_prepared_ {
		HasherReset(self)
	}
}

/* Empties all indexing state; does not touch the stream view. */
func HasherReset(handle HasherHandle) {
	if handle == nil {
		return
	}
	switch handle.Common().params.type_ {
	case 1:
		ResetH1(handle)
	case 2:
		ResetH2(handle)
	case 3:
		ResetH3(handle)
	case 4:
		ResetH4(handle)
	case 5, 6, 7, 8, 9:
		ResetH5(handle)
	case 10:
		ResetH10(handle)
	}

	var common *HasherCommon = handle.Common()
	common.dict_num_lookups = 0
	common.dict_num_matches = 0
	common.is_prepared_ = true
}

func HasherStore(handle HasherHandle, data []byte, mask uint, ix uint) {
	switch handle.Common().params.type_ {
	case 1:
		StoreH1(handle, data, mask, ix)
	case 2:
		StoreH2(handle, data, mask, ix)
	case 3:
		StoreH3(handle, data, mask, ix)
	case 4:
		StoreH4(handle, data, mask, ix)
	case 5, 6, 7, 8, 9:
		StoreH5(handle, data, mask, ix)
	case 10:
		StoreH10(handle, data, mask, ix)
	}
}

func HasherStoreRange(handle HasherHandle, data []byte, mask uint, ix_start uint, ix_end uint) {
	switch handle.Common().params.type_ {
	case 1:
		StoreRangeH1(handle, data, mask, ix_start, ix_end)
	case 2:
		StoreRangeH2(handle, data, mask, ix_start, ix_end)
	case 3:
		StoreRangeH3(handle, data, mask, ix_start, ix_end)
	case 4:
		StoreRangeH4(handle, data, mask, ix_start, ix_end)
	case 5, 6, 7, 8, 9:
		StoreRangeH5(handle, data, mask, ix_start, ix_end)
	case 10:
		StoreRangeH10(handle, data, mask, ix_start, ix_end)
	}
}

func HasherStitchToPreviousBlock(handle HasherHandle, num_bytes uint, position uint, ringbuffer []byte, ringbuffer_mask uint) {
	switch handle.Common().params.type_ {
	case 1:
		StitchToPreviousBlockH1(handle, num_bytes, position, ringbuffer, ringbuffer_mask)
	case 2:
		StitchToPreviousBlockH2(handle, num_bytes, position, ringbuffer, ringbuffer_mask)
	case 3:
		StitchToPreviousBlockH3(handle, num_bytes, position, ringbuffer, ringbuffer_mask)
	case 4:
		StitchToPreviousBlockH4(handle, num_bytes, position, ringbuffer, ringbuffer_mask)
	case 5, 6, 7, 8, 9:
		StitchToPreviousBlockH5(handle, num_bytes, position, ringbuffer, ringbuffer_mask)
	case 10:
		StitchToPreviousBlockH10(handle, num_bytes, position, ringbuffer, ringbuffer_mask)
	}
}

/* Finds the longest backward match of &data[cur_ix & ring_buffer_mask] up
   to max_length bytes and at most max_backward positions back, including
   the recent-distance candidates from distance_cache and, where the
   hasher is configured for it, the static dictionary. Returns whether a
   match scoring strictly better than |out|'s was found. */
func HasherFindLongestMatch(handle HasherHandle, dictionary *BrotliEncoderDictionary, data []byte, ring_buffer_mask uint, distance_cache []int, cur_ix uint, max_length uint, max_backward uint, out *HasherSearchResult) bool {
	switch handle.Common().params.type_ {
	case 1:
		return FindLongestMatchH1(handle, dictionary, data, ring_buffer_mask, distance_cache, cur_ix, max_length, max_backward, out)
	case 2:
		return FindLongestMatchH2(handle, dictionary, data, ring_buffer_mask, distance_cache, cur_ix, max_length, max_backward, out)
	case 3:
		return FindLongestMatchH3(handle, dictionary, data, ring_buffer_mask, distance_cache, cur_ix, max_length, max_backward, out)
	case 4:
		return FindLongestMatchH4(handle, dictionary, data, ring_buffer_mask, distance_cache, cur_ix, max_length, max_backward, out)
	case 5, 6, 7, 8, 9:
		return FindLongestMatchH5(handle, dictionary, data, ring_buffer_mask, distance_cache, cur_ix, max_length, max_backward, out)
	case 10:
		return FindLongestMatchH10(handle, dictionary, data, ring_buffer_mask, distance_cache, cur_ix, max_length, max_backward, out)
	}

	return false
}

/* Finds all matches at cur_ix, sorted by strictly increasing length, and
   writes them into the caller-supplied matches buffer. The buffer must
   have at least kMaxZopfliLen + kMaxDictionaryMatchLen slots (for H10,
   nice_length instead of kMaxZopfliLen). Quality levels 1-4 degrade to
   at most the single longest match their finder produces. */
func HasherFindAllMatches(handle HasherHandle, dictionary *BrotliEncoderDictionary, data []byte, ring_buffer_mask uint, cur_ix uint, max_length uint, max_backward uint, matches []BackwardMatch) uint {
	switch handle.Common().params.type_ {
	case 1, 2, 3, 4:
		var distance_cache [4]int
		var out HasherSearchResult
		if HasherFindLongestMatch(handle, dictionary, data, ring_buffer_mask, distance_cache[:], cur_ix, max_length, max_backward, &out) {
			InitDictionaryBackwardMatch(&matches[0], out.distance, out.len, out.len_code)
			return 1
		}

		return 0
	case 5, 6, 7, 8, 9:
		return FindAllMatchesH5(handle, dictionary, data, ring_buffer_mask, cur_ix, max_length, max_backward, matches)
	case 10:
		return FindAllMatchesH10(handle, dictionary, data, ring_buffer_mask, cur_ix, max_length, max_backward, matches)
	}

	return 0
}

/* Custom LZ77 window: indexes every valid starting position of the given
   prefix as if it had just been compressed, without emitting output.
   Returns whether the hasher supports warmup; the tree hasher (quality
   10) does not, because inserting a position requires nice_length bytes
   of lookahead that the tail of the prefix cannot provide. */
func HasherPrependCustomDictionary(handle HasherHandle, data []byte) bool {
	var size uint = uint(len(data))
	var mask uint = ^uint(0)
	var i uint
	switch handle.Common().params.type_ {
	case 1:
		for i = 0; i+HashTypeLengthH1()-1 < size; i++ {
			StoreH1(handle, data, mask, i)
		}
	case 2:
		for i = 0; i+HashTypeLengthH2()-1 < size; i++ {
			StoreH2(handle, data, mask, i)
		}
	case 3:
		for i = 0; i+HashTypeLengthH3()-1 < size; i++ {
			StoreH3(handle, data, mask, i)
		}
	case 4:
		for i = 0; i+HashTypeLengthH4()-1 < size; i++ {
			StoreH4(handle, data, mask, i)
		}
	case 5, 6, 7, 8, 9:
		for i = 0; i+HashTypeLengthH5()-1 < size; i++ {
			StoreH5(handle, data, mask, i)
		}
	case 10:
		return false
	}

	return true
}
