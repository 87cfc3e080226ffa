package brotli

const BROTLI_MIN_QUALITY = 1

const BROTLI_MAX_QUALITY = 10

const BROTLI_MIN_WINDOW_BITS = 10

const BROTLI_MAX_WINDOW_BITS = 24

func SanitizeParams(params *BrotliEncoderParams) {
	params.quality = brotli_min_int(BROTLI_MAX_QUALITY, brotli_max_int(BROTLI_MIN_QUALITY, params.quality))
	if params.lgwin < BROTLI_MIN_WINDOW_BITS {
		params.lgwin = BROTLI_MIN_WINDOW_BITS
	} else if params.lgwin > BROTLI_MAX_WINDOW_BITS {
		params.lgwin = BROTLI_MAX_WINDOW_BITS
	}
}

/* Maps the quality levels one-to-one onto the hasher types:

   quality  1    2    3    4    5..9         10
   hasher   H1   H2   H3   H4   H5 family    H10

   H1..H4 are the direct-mapped quick hashers (bucket bits 16,16,16,17;
   sweep 1,2,4,4; dictionary on 1 and 4), the H5 family is the
   block-chain hasher with per-quality table parameters, H10 is the
   binary-tree matchfinder. */
func ChooseHasher(params *BrotliEncoderParams, hparams *BrotliHasherParams) {
	hparams.type_ = params.quality
	if params.quality >= 5 && params.quality <= 9 {
		hparams.block_bits = params.quality - 1
		if params.quality < 7 {
			hparams.bucket_bits = 14
		} else {
			hparams.bucket_bits = 15
		}

		if params.quality < 7 {
			hparams.num_last_distances_to_check = 4
		} else if params.quality < 9 {
			hparams.num_last_distances_to_check = 10
		} else {
			hparams.num_last_distances_to_check = 16
		}
	}
}
