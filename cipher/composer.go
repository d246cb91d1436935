package cipher

import "github.com/masterkusok/desmatrix/internal/desround"

// blockTransform applies one block-cipher transform for ECB/CBC, where
// DESX whitening order depends on ctx.Direction (the schedule itself was
// already built in the matching direction by Init).
func (ctx *Context) blockTransform(left, right uint32) (uint32, uint32) {
	switch ctx.Variant {
	case DES:
		return desround.Transform(left, right, &ctx.schedules[0])

	case DESX:
		if ctx.Direction == Encrypt {
			left ^= ctx.inputWhitener[0]
			right ^= ctx.inputWhitener[1]
			left, right = desround.Transform(left, right, &ctx.schedules[0])
			left ^= ctx.outputWhitener[0]
			right ^= ctx.outputWhitener[1]
			return left, right
		}
		left ^= ctx.outputWhitener[0]
		right ^= ctx.outputWhitener[1]
		left, right = desround.Transform(left, right, &ctx.schedules[0])
		left ^= ctx.inputWhitener[0]
		right ^= ctx.inputWhitener[1]
		return left, right

	case TripleDES:
		left, right = desround.Transform(left, right, &ctx.schedules[0])
		left, right = desround.Transform(left, right, &ctx.schedules[1])
		left, right = desround.Transform(left, right, &ctx.schedules[2])
		return left, right
	}
	return left, right
}

// forwardBlock is the keystream step shared by CFB and OFB-FIPS81: all
// sub-schedules run forward (encrypt direction, already arranged by
// Init), and DESX whitening is input-then-output regardless of
// ctx.Direction — feedback modes only ever run the cipher forward.
func (ctx *Context) forwardBlock(left, right uint32) (uint32, uint32) {
	switch ctx.Variant {
	case DES:
		return desround.Transform(left, right, &ctx.schedules[0])

	case DESX:
		left ^= ctx.inputWhitener[0]
		right ^= ctx.inputWhitener[1]
		left, right = desround.Transform(left, right, &ctx.schedules[0])
		left ^= ctx.outputWhitener[0]
		right ^= ctx.outputWhitener[1]
		return left, right

	case TripleDES:
		left, right = desround.Transform(left, right, &ctx.schedules[0])
		left, right = desround.Transform(left, right, &ctx.schedules[1])
		left, right = desround.Transform(left, right, &ctx.schedules[2])
		return left, right
	}
	return left, right
}

// forwardBlockOFBISO is the OFB-ISO keystream step. For DES and
// TripleDES it is identical to forwardBlock. For DESX it preserves two
// quirks of the original source verbatim rather than "fixing" them:
//
//   - the low half is whitened with inputWhitener[0] (not [1], as every
//     other DESX code path does) — almost certainly a source typo;
//   - the output whitener is not applied here at all; the mode driver
//     XORs it into each fully-accumulated output block and, in
//     advanceRegister, into the register carried to the next sub-iteration.
func (ctx *Context) forwardBlockOFBISO(left, right uint32) (uint32, uint32) {
	if ctx.Variant != DESX {
		return ctx.forwardBlock(left, right)
	}
	left ^= ctx.inputWhitener[0]
	right ^= ctx.inputWhitener[0]
	return desround.Transform(left, right, &ctx.schedules[0])
}
