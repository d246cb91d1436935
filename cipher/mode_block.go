package cipher

import (
	"sync"

	"github.com/masterkusok/desmatrix/internal/desround"
)

// updateECB enciphers/deciphers each block independently, so — unlike
// every other mode here — blocks carry no dependency on one another and
// can be fanned out across goroutines, one per block, joined by a
// WaitGroup.
func updateECB(ctx *Context, dst, src []byte) {
	blocks := len(src) / 8

	var wg sync.WaitGroup
	wg.Add(blocks)
	for i := 0; i < blocks; i++ {
		go func(i int) {
			defer wg.Done()
			l, r := desround.Pack(src[i*8 : i*8+8])
			l, r = ctx.blockTransform(l, r)
			desround.Unpack(dst[i*8:i*8+8], l, r)
		}(i)
	}
	wg.Wait()
}

// updateCBC chains blocks sequentially; concurrent calls on the same
// context would race on ctx.iv, so this driver never parallelizes.
func updateCBC(ctx *Context, dst, src []byte) {
	blocks := len(src) / 8

	for i := 0; i < blocks; i++ {
		block := src[i*8 : i*8+8]
		out := dst[i*8 : i*8+8]

		if ctx.Direction == Encrypt {
			l, r := desround.Pack(block)
			l ^= ctx.iv[0]
			r ^= ctx.iv[1]
			l, r = ctx.blockTransform(l, r)
			ctx.iv[0], ctx.iv[1] = l, r
			desround.Unpack(out, l, r)
			continue
		}

		preL, preR := desround.Pack(block)
		l, r := ctx.blockTransform(preL, preR)
		l ^= ctx.iv[0]
		r ^= ctx.iv[1]
		ctx.iv[0], ctx.iv[1] = preL, preR
		desround.Unpack(out, l, r)
	}
}
