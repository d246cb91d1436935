package cipher

import "github.com/masterkusok/desmatrix/errors"

// Update transforms len(src) bytes from src into dst, dispatching on
// ctx.Mode (and, for CFB/OFB, ctx.N). The direction (encrypt or decrypt)
// was fixed at Init and is read from ctx, so the same call serves both
// the Encrypt and Decrypt operations named at the boundary.
//
// len(src) must be a multiple of 8 and dst must be at least as long;
// violating either returns ErrInvalidLength without writing to dst. For
// CFB/OFB, ctx.N must be one of {1, 8, 16, 32, 64}.
func Update(ctx *Context, dst, src []byte) error {
	if len(src)%8 != 0 || len(dst) < len(src) {
		return errors.ErrInvalidLength
	}
	if len(src) == 0 {
		return nil
	}

	switch ctx.Mode {
	case ECB:
		updateECB(ctx, dst, src)
		return nil
	case CBC:
		updateCBC(ctx, dst, src)
		return nil
	case CFB, OFBISO, OFBFIPS81:
		if !validFeedbackWidth(ctx.N) {
			return errors.ErrInvalidFeedbackWidth
		}
		updateFeedback(ctx, dst, src)
		return nil
	}
	return errors.ErrInvalidMode
}
