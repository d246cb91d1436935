// Package cipher implements a DES / DESX / 3DES block-cipher engine over
// five block and stream modes: ECB, CBC, CFB, OFB per ISO 10116, and OFB
// per FIPS PUB 81.
package cipher

import "github.com/masterkusok/desmatrix/internal/desround"

// Variant selects which cipher composes the round engine.
type Variant int

const (
	// DES is single-key DES.
	DES Variant = 1
	// DESX is DES with input/output whiteners.
	DESX Variant = 2
	// TripleDES is three-key Encrypt-Decrypt-Encrypt DES.
	TripleDES Variant = 3
)

// Mode selects the block/stream driver.
type Mode int

const (
	// ECB enciphers each block independently.
	ECB Mode = 1
	// CBC chains blocks by XOR-ing the previous ciphertext block in.
	CBC Mode = 2
	// CFB is Cipher Feedback mode.
	CFB Mode = 3
	// OFBISO is Output Feedback per ISO 10116.
	OFBISO Mode = 4
	// OFBFIPS81 is Output Feedback per FIPS PUB 81.
	OFBFIPS81 Mode = 5
)

// Direction selects the chaining direction.
type Direction int

const (
	// Decrypt deciphers ciphertext back to plaintext.
	Decrypt Direction = 0
	// Encrypt enciphers plaintext into ciphertext.
	Encrypt Direction = 1
)

func feedbackMode(m Mode) bool {
	return m == CFB || m == OFBISO || m == OFBFIPS81
}

func validFeedbackWidth(n int) bool {
	switch n {
	case 1, 8, 16, 32, 64:
		return true
	}
	return false
}

// Context is the stateful cipher handle: schedules, current and original
// IV, DESX whiteners, and the variant/mode/direction/feedback-width
// selectors fixed at Init. Its lifetime spans Init through the last
// Update; the caller owns zeroizing it when done.
type Context struct {
	Variant   Variant
	Mode      Mode
	Direction Direction
	N         int

	schedules [3]desround.Schedule

	iv         [2]uint32
	originalIV [2]uint32

	inputWhitener  [2]uint32
	outputWhitener [2]uint32
}
