package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Class to model the static dictionary. */
const kMaxDictionaryMatchLen = 37

/* Distinguished "no dictionary word for this length" slot value. */
const kInvalidMatch uint32 = 0xFFFFFFF

/* Probes one packed hash-table item against the data and updates |out|
   when the item yields a strictly better-scoring match.

   An item packs (dict_slot << 5) | word_length. The word is allowed to
   run up to kCutoffTransformsCount-1 bytes past the in-stream match; the
   shortfall selects a cutoff transform, which shifts the synthesized
   word id (and so the synthetic distance) into the transform's bank. */
func TestStaticDictionaryItem(dictionary *BrotliEncoderDictionary, item uint, data []byte, max_length uint, max_backward uint, out *HasherSearchResult) bool {
	var len uint = item & 31
	var word_idx uint = item >> 5
	var offset uint = uint(dictionary.words.offsets_by_length[len]) + len*word_idx
	if len > max_length {
		return false
	}

	var matchlen uint = FindMatchLengthWithLimit(data, dictionary.words.data[offset:], len)
	if matchlen+kCutoffTransformsCount <= len || matchlen == 0 {
		return false
	}

	var transform_id uint = uint(kCutoffTransforms[len-matchlen])
	var word_id uint = transform_id<<dictionary.words.size_bits_by_length[len] + word_idx
	var backward uint = max_backward + word_id + 1
	var score float64 = BackwardReferenceScore(matchlen, backward)
	if out.score >= score {
		return false
	}

	out.len = matchlen
	out.len_code = len
	out.distance = backward
	out.score = score
	return true
}

/* Searches the static dictionary for the longest match against |data|.
   A shallow search probes one hash slot, a full search two adjacent
   slots. Unsuccessful probes are expensive, so probing stops while
   fewer than 1/128 of the lookups have produced a match. */
func SearchInStaticDictionary(dictionary *BrotliEncoderDictionary, handle HasherHandle, data []byte, max_length uint, max_backward uint, out *HasherSearchResult, shallow bool) bool {
	if dictionary == nil {
		return false
	}

	var self *HasherCommon = handle.Common()
	if self.dict_num_matches < self.dict_num_lookups>>7 {
		return false
	}

	var key uint = uint(Hash14(data) << 1)
	var num_probes uint = 2
	if shallow {
		num_probes = 1
	}

	var match_found bool = false
	var i uint
	for i = 0; i < num_probes; i++ {
		var item uint = uint(dictionary.hash_table[key])
		self.dict_num_lookups++
		if item != 0 && TestStaticDictionaryItem(dictionary, item, data, max_length, max_backward, out) {
			self.dict_num_matches++
			match_found = true
		}

		key++
	}

	return match_found
}

/* Matches data against static dictionary words, and for each length l
   for which a match is found, updates matches[l] to be the minimum
   possible (word_id << 5) + len_code. Returns whether any match was
   found.

   Prerequisites:
     matches array is at least kMaxDictionaryMatchLen + 1 long
     all elements are initialized to kInvalidMatch */
func FindAllStaticDictionaryMatches(dictionary *BrotliEncoderDictionary, data []byte, min_length uint, max_length uint, matches []uint32) bool {
	var has_found_match bool = false
	var key uint = uint(Hash14(data) << 1)
	var k uint
	for k = 0; k < 2; k++ {
		var item uint = uint(dictionary.hash_table[key])
		key++
		if item == 0 {
			continue
		}

		var word_len uint = item & 31
		var word_idx uint = item >> 5
		var offset uint = uint(dictionary.words.offsets_by_length[word_len]) + word_len*word_idx
		var matchlen uint = FindMatchLengthWithLimit(data, dictionary.words.data[offset:], brotli_min_size_t(word_len, max_length))
		var cut uint
		for cut = 0; cut < kCutoffTransformsCount && cut < word_len; cut++ {
			var l uint = word_len - cut
			if l < min_length {
				break
			}

			if l > matchlen {
				continue
			}

			var transform_id uint = uint(kCutoffTransforms[cut])
			var word_id uint = transform_id<<dictionary.words.size_bits_by_length[word_len] + word_idx
			var id uint32 = uint32(word_id<<5 | word_len)
			if id < matches[l] {
				matches[l] = id
				has_found_match = true
			}
		}
	}

	return has_found_match
}
