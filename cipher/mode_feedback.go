package cipher

import (
	"github.com/masterkusok/desmatrix/bits"
	"github.com/masterkusok/desmatrix/internal/desround"
)

// updateFeedback drives CFB, OFB-ISO and OFB-FIPS81. Each 8-byte block is
// produced over rounds = 64/n sub-iterations that encipher the current IV
// to get a keystream word, extract its top n bits, and advance the IV
// shift register; the three modes differ in how the register advances
// (and, for DESX under OFB-ISO, in the whitening done by
// forwardBlockOFBISO and by the output-whitener XOR below). Bit extraction/insertion is expressed with the package's
// MSB-first bit indexer rather than byte-aligned shortcuts, since n can
// be as narrow as 1 bit.
func updateFeedback(ctx *Context, dst, src []byte) {
	rounds := 64 / ctx.N
	blocks := len(src) / 8

	var reg [8]byte
	desround.Unpack(reg[:], ctx.iv[0], ctx.iv[1])

	for i := 0; i < blocks; i++ {
		in := src[i*8 : i*8+8]
		out := dst[i*8 : i*8+8]

		var keystream [8]byte
		for j := 0; j < rounds; j++ {
			l, r := desround.Pack(reg[:])
			if ctx.Mode == OFBISO {
				l, r = ctx.forwardBlockOFBISO(l, r)
			} else {
				l, r = ctx.forwardBlock(l, r)
			}
			var work [8]byte
			desround.Unpack(work[:], l, r)

			copyBits(keystream[:], j*ctx.N, work[:], 0, ctx.N)
			advanceRegister(ctx, &reg, work[:], in, j)
		}

		for k := 0; k < 8; k++ {
			out[k] = in[k] ^ keystream[k]
		}
		if ctx.Mode == OFBISO && ctx.Variant == DESX {
			var ow [8]byte
			desround.Unpack(ow[:], ctx.outputWhitener[0], ctx.outputWhitener[1])
			for k := 0; k < 8; k++ {
				out[k] ^= ow[k]
			}
		}
	}

	ctx.iv[0], ctx.iv[1] = desround.Pack(reg[:])
}

// advanceRegister updates the IV shift register after sub-iteration j of
// the current block, per mode:
//
//   - OFB-ISO always replaces the whole register with the keystream word,
//     for every n, matching the original source's unconditional
//     `iv = work` rather than a true n-bit shift. For DESX, the carried
//     register is whitened with outputWhitener even though the keystream
//     bits extracted from work above are not.
//   - OFB-FIPS81 shifts in the top n bits of the keystream word.
//   - CFB shifts in the just-produced ciphertext sub-block on encrypt, or
//     the ciphertext sub-block taken directly from the input on decrypt.
func advanceRegister(ctx *Context, reg *[8]byte, work, in []byte, j int) {
	switch ctx.Mode {
	case OFBISO:
		if ctx.Variant == DESX {
			var whitened [8]byte
			var ow [8]byte
			desround.Unpack(ow[:], ctx.outputWhitener[0], ctx.outputWhitener[1])
			for k := 0; k < 8; k++ {
				whitened[k] = work[k] ^ ow[k]
			}
			copy(reg[:], whitened[:])
			return
		}
		copy(reg[:], work)

	case OFBFIPS81:
		if ctx.N == 64 {
			copy(reg[:], work)
			return
		}
		shiftLeftBringIn(reg, ctx.N, work, 0)

	case CFB:
		if ctx.Direction == Encrypt {
			var sub [8]byte
			xorBits(sub[:], work, 0, in, j*ctx.N, ctx.N)
			if ctx.N == 64 {
				copy(reg[:], sub[:])
				return
			}
			shiftLeftBringIn(reg, ctx.N, sub[:], 0)
			return
		}
		if ctx.N == 64 {
			copy(reg[:], in)
			return
		}
		shiftLeftBringIn(reg, ctx.N, in, j*ctx.N)
	}
}

// copyBits copies n bits (MSB-first) from src at srcOffset into dst at
// dstOffset.
func copyBits(dst []byte, dstOffset int, src []byte, srcOffset int, n int) {
	for i := 0; i < n; i++ {
		b, _ := bits.GetBit(src, srcOffset+i, bits.Inverted)
		_ = bits.SetBit(dst, dstOffset+i, bits.Inverted, b)
	}
}

// xorBits XORs n bits (MSB-first) of a at aOffset with n bits of b at
// bOffset, writing the result into the first n bits (MSB-first) of dst.
func xorBits(dst []byte, a []byte, aOffset int, b []byte, bOffset int, n int) {
	for i := 0; i < n; i++ {
		ab, _ := bits.GetBit(a, aOffset+i, bits.Inverted)
		bb, _ := bits.GetBit(b, bOffset+i, bits.Inverted)
		_ = bits.SetBit(dst, i, bits.Inverted, ab^bb)
	}
}

// shiftLeftBringIn shifts the 64-bit register left by n bits (MSB-first),
// bringing in n fresh bits copied from src at srcOffset.
func shiftLeftBringIn(reg *[8]byte, n int, src []byte, srcOffset int) {
	for i := 0; i < 64-n; i++ {
		b, _ := bits.GetBit(reg[:], i+n, bits.Inverted)
		_ = bits.SetBit(reg[:], i, bits.Inverted, b)
	}
	for i := 0; i < n; i++ {
		b, _ := bits.GetBit(src, srcOffset+i, bits.Inverted)
		_ = bits.SetBit(reg[:], 64-n+i, bits.Inverted, b)
	}
}
