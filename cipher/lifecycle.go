package cipher

import (
	"github.com/masterkusok/desmatrix/errors"
	"github.com/masterkusok/desmatrix/internal/desround"
)

// Init populates ctx for variant/mode/direction/n over the given key and
// IV. DES requires an 8-byte key; DESX and TripleDES require 24 bytes
// (DESX: DES key ‖ input whitener ‖ output whitener; TripleDES: K1 ‖ K2 ‖
// K3). iv must be exactly 8 bytes.
//
// For DES and DESX the schedule is built in encrypt order whenever
// direction is Encrypt, or unconditionally for CFB/OFB (both run the
// forward transform on every path, per the original source): this is why
// schedule direction cannot simply mirror ctx.Direction. TripleDES's three
// schedules are built by initTripleDESSchedules.
func Init(ctx *Context, variant Variant, mode Mode, key, iv []byte, direction Direction, n int) error {
	if err := validateSelectors(variant, mode, direction); err != nil {
		return err
	}
	if len(iv) != 8 {
		return errors.ErrInvalidIVSize
	}
	if feedbackMode(mode) && !validFeedbackWidth(n) {
		return errors.ErrInvalidFeedbackWidth
	}

	*ctx = Context{Variant: variant, Mode: mode, Direction: direction, N: n}

	switch variant {
	case DES:
		if len(key) != 8 {
			return errors.ErrInvalidKeySize
		}
		var k [8]byte
		copy(k[:], key)
		ctx.schedules[0] = desround.BuildSchedule(k, direction == Encrypt || feedbackMode(mode))

	case DESX:
		if len(key) != 24 {
			return errors.ErrInvalidKeySize
		}
		var k [8]byte
		copy(k[:], key[0:8])
		ctx.schedules[0] = desround.BuildSchedule(k, direction == Encrypt || feedbackMode(mode))
		ctx.inputWhitener[0], ctx.inputWhitener[1] = desround.Pack(key[8:16])
		ctx.outputWhitener[0], ctx.outputWhitener[1] = desround.Pack(key[16:24])

	case TripleDES:
		if len(key) != 24 {
			return errors.ErrInvalidKeySize
		}
		initTripleDESSchedules(ctx, key, direction, mode)
	}

	ctx.iv[0], ctx.iv[1] = desround.Pack(iv)
	ctx.originalIV = ctx.iv
	return nil
}

// initTripleDESSchedules builds the three DES schedules for 3DES.
//
// Under ECB/CBC the outer key slices are swapped by direction (schedule 0
// always uses key[0:8] when encrypting and key[16:24] when decrypting,
// and vice-versa for schedule 2) so the round engine can always be
// invoked in the fixed order 0,1,2; the middle schedule runs the inverse
// direction (E-D-E to encrypt, D-E-D to decrypt).
//
// Under CFB/OFB the key slices are not swapped (schedule 0 always uses
// key[0:8] and schedule 2 key[16:24]), so encrypting and decrypting
// contexts generate the same keystream. Matching the original source
// exactly, even though it reads as though it should not,
// schedule 1 (the middle key) is always built in decrypt direction while
// schedules 0 and 2 are always encrypt, regardless of ctx.Direction. This
// diverges from the general "feedback modes run everything forward" rule
// that holds for DES/DESX; see DESIGN.md for the source citation.
func initTripleDESSchedules(ctx *Context, key []byte, direction Direction, mode Mode) {
	encrypt := direction == Encrypt

	var k0, k1, k2 [8]byte
	if encrypt || feedbackMode(mode) {
		copy(k0[:], key[0:8])
		copy(k2[:], key[16:24])
	} else {
		copy(k0[:], key[16:24])
		copy(k2[:], key[0:8])
	}
	copy(k1[:], key[8:16])

	if feedbackMode(mode) {
		ctx.schedules[0] = desround.BuildSchedule(k0, true)
		ctx.schedules[1] = desround.BuildSchedule(k1, false)
		ctx.schedules[2] = desround.BuildSchedule(k2, true)
		return
	}

	ctx.schedules[0] = desround.BuildSchedule(k0, encrypt)
	ctx.schedules[1] = desround.BuildSchedule(k1, !encrypt)
	ctx.schedules[2] = desround.BuildSchedule(k2, encrypt)
}

// Restart copies originalIV back over iv, leaving schedules untouched so
// the same context can be reused for a fresh stream.
func Restart(ctx *Context) {
	ctx.iv = ctx.originalIV
}

func validateSelectors(variant Variant, mode Mode, direction Direction) error {
	switch variant {
	case DES, DESX, TripleDES:
	default:
		return errors.ErrInvalidVariant
	}
	switch mode {
	case ECB, CBC, CFB, OFBISO, OFBFIPS81:
	default:
		return errors.ErrInvalidMode
	}
	switch direction {
	case Encrypt, Decrypt:
	default:
		return errors.ErrInvalidDirection
	}
	return nil
}
