package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Macros for compiler / platform specific features and build options.

   All multi-byte loads are little-endian normalized: on a little-endian
   host they correspond to a single machine load, elsewhere to the
   byte-wise composition below. The hash constants assume this
   convention. */

/* Read values byte-wise; hopefully compiler will understand. */
func BROTLI_UNALIGNED_LOAD16LE(p []byte) uint16 {
	var in []byte = []byte(p)
	return uint16(in[0]) | uint16(in[1])<<8
}

func BROTLI_UNALIGNED_LOAD32LE(p []byte) uint32 {
	var in []byte = []byte(p)
	var value uint32 = uint32(in[0])
	value |= uint32(in[1]) << 8
	value |= uint32(in[2]) << 16
	value |= uint32(in[3]) << 24
	return value
}

func BROTLI_UNALIGNED_LOAD64LE(p []byte) uint64 {
	var in []byte = []byte(p)
	var value uint64 = uint64(in[0])
	value |= uint64(in[1]) << 8
	value |= uint64(in[2]) << 16
	value |= uint64(in[3]) << 24
	value |= uint64(in[4]) << 32
	value |= uint64(in[5]) << 40
	value |= uint64(in[6]) << 48
	value |= uint64(in[7]) << 56
	return value
}

/* Given a 32-bit value that was loaded with BROTLI_UNALIGNED_LOAD32LE,
   return a value whose high-order 8 bits are 0 and whose low-order 24
   bits contain the first 3 bytes at the memory location from which the
   input value was loaded. */
func BROTLI_LOADED_U32_TO_U24(v uint32) uint32 {
	return v & 0xFFFFFF
}

/* Given a 32-bit value that was loaded with BROTLI_UNALIGNED_LOAD32LE,
   return a value whose high-order 16 bits are 0 and whose low-order 16
   bits contain the first 2 bytes at the memory location from which the
   input value was loaded. */
func BROTLI_LOADED_U32_TO_U16(v uint32) uint32 {
	return v & 0xFFFF
}

func brotli_min_int(a int, b int) int {
	if a < b {
		return a
	} else {
		return b
	}
}

func brotli_max_int(a int, b int) int {
	if a > b {
		return a
	} else {
		return b
	}
}

func brotli_min_size_t(a uint, b uint) uint {
	if a < b {
		return a
	} else {
		return b
	}
}

func brotli_max_size_t(a uint, b uint) uint {
	if a > b {
		return a
	} else {
		return b
	}
}

func brotli_min_uint32_t(a uint32, b uint32) uint32 {
	if a < b {
		return a
	} else {
		return b
	}
}

func brotli_max_uint32_t(a uint32, b uint32) uint32 {
	if a > b {
		return a
	} else {
		return b
	}
}
