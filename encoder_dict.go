package brotli

/* Collection of static dictionary words keyed by word length. The word
   for (length, slot) lives at data[offsets_by_length[length] +
   length*slot]; size_bits_by_length gives the per-length slot-index
   width the transform banks are spaced by. */
type BrotliDictionary struct {
	size_bits_by_length [32]byte
	offsets_by_length   [32]uint32
	data                []byte
}

/* Dictionary data (words and the packed 14-bit-hash lookup table) for 1
   possible context. The tables are read-only constants supplied by the
   embedder; the match-finding core never owns or mutates them. */
type BrotliEncoderDictionary struct {
	words      *BrotliDictionary
	hash_table []uint16
}

func BrotliInitEncoderDictionary(dict *BrotliEncoderDictionary, words *BrotliDictionary, hash_table []uint16) {
	assert(len(hash_table) == 2<<14)
	dict.words = words
	dict.hash_table = hash_table
}
