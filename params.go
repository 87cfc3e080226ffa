package brotli

/* Copyright 2017 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Parameters for the match-finder backend of the encoder. */
type BrotliHasherParams struct {
	type_                       int
	bucket_bits                 int
	block_bits                  int
	num_last_distances_to_check int
}

/* Encoder parameters the match finder cares about: the quality level
   picks the hasher type, lgwin sizes the tree hasher's window. */
type BrotliEncoderParams struct {
	quality int
	lgwin   uint
	hasher  BrotliHasherParams
}
