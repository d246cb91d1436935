package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/masterkusok/desmatrix/cipher"
	"github.com/masterkusok/desmatrix/errors"
)

func encryptDecrypt(t *testing.T, variant cipher.Variant, mode cipher.Mode, key, iv, plaintext []byte, n int) (ciphertext, recovered []byte) {
	t.Helper()

	var encCtx cipher.Context
	require.NoError(t, cipher.Init(&encCtx, variant, mode, key, iv, cipher.Encrypt, n))
	ciphertext = make([]byte, len(plaintext))
	require.NoError(t, cipher.Update(&encCtx, ciphertext, plaintext))

	var decCtx cipher.Context
	require.NoError(t, cipher.Init(&decCtx, variant, mode, key, iv, cipher.Decrypt, n))
	recovered = make([]byte, len(ciphertext))
	require.NoError(t, cipher.Update(&decCtx, recovered, ciphertext))

	return ciphertext, recovered
}

func TestDESECBKnownAnswers(t *testing.T) {
	cases := []struct {
		name       string
		key        []byte
		plaintext  []byte
		ciphertext []byte
	}{
		{
			name:       "FIPS 81 weak-parity key",
			key:        []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF},
			plaintext:  []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xE7},
			ciphertext: []byte{0xC9, 0x57, 0x44, 0x25, 0x6A, 0x5E, 0xD3, 0x1D},
		},
		{
			name:       "Eric Young test vector",
			key:        []byte{0x13, 0x34, 0x57, 0x79, 0x9B, 0xBC, 0xDF, 0xF1},
			plaintext:  []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF},
			ciphertext: []byte{0x85, 0xE8, 0x13, 0x54, 0x0F, 0x0A, 0xB4, 0x05},
		},
	}

	iv := make([]byte, 8)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var encCtx cipher.Context
			require.NoError(t, cipher.Init(&encCtx, cipher.DES, cipher.ECB, tc.key, iv, cipher.Encrypt, 0))
			got := make([]byte, 8)
			require.NoError(t, cipher.Update(&encCtx, got, tc.plaintext))
			require.Equal(t, tc.ciphertext, got)

			var decCtx cipher.Context
			require.NoError(t, cipher.Init(&decCtx, cipher.DES, cipher.ECB, tc.key, iv, cipher.Decrypt, 0))
			back := make([]byte, 8)
			require.NoError(t, cipher.Update(&decCtx, back, got))
			require.Equal(t, tc.plaintext, back)
		})
	}
}

func TestDESCBCKnownAnswer(t *testing.T) {
	key := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	iv := []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xAB, 0xCD, 0xEF}
	plaintext := []byte("Now is the time for all ")[:24]
	expected := []byte{
		0xE5, 0xC7, 0xCD, 0xDE, 0x87, 0x2B, 0xF2, 0x7C,
		0x43, 0xE9, 0x34, 0x00, 0x8C, 0x38, 0x9C, 0x0F,
		0x68, 0x37, 0x88, 0x49, 0x9A, 0x7C, 0x05, 0xF6,
	}

	var encCtx cipher.Context
	require.NoError(t, cipher.Init(&encCtx, cipher.DES, cipher.CBC, key, iv, cipher.Encrypt, 0))
	got := make([]byte, len(plaintext))
	require.NoError(t, cipher.Update(&encCtx, got, plaintext))
	require.Equal(t, expected, got)

	var decCtx cipher.Context
	require.NoError(t, cipher.Init(&decCtx, cipher.DES, cipher.CBC, key, iv, cipher.Decrypt, 0))
	back := make([]byte, len(got))
	require.NoError(t, cipher.Update(&decCtx, back, got))
	require.Equal(t, plaintext, back)
}

func TestDESOFBFIPS81KnownAnswer(t *testing.T) {
	key := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	iv := []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xAB, 0xCD, 0xEF}
	plaintext := []byte("Now is t") // first block of FIPS 81's OFB example
	expected := []byte{0xF3, 0x09, 0x62, 0x49, 0xC7, 0xF4, 0x6E, 0x51}

	var encCtx cipher.Context
	require.NoError(t, cipher.Init(&encCtx, cipher.DES, cipher.OFBFIPS81, key, iv, cipher.Encrypt, 64))
	got := make([]byte, 8)
	require.NoError(t, cipher.Update(&encCtx, got, plaintext))
	require.Equal(t, expected, got)
}

func TestDESCFBSelfInverse(t *testing.T) {
	key := []byte{0x13, 0x34, 0x57, 0x79, 0x9B, 0xBC, 0xDF, 0xF1}
	iv := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	plaintext := []byte("0123456789ABCDEF01234567")

	for _, n := range []int{1, 8, 16, 32, 64} {
		_, recovered := encryptDecrypt(t, cipher.DES, cipher.CFB, key, iv, plaintext, n)
		require.Equal(t, plaintext, recovered, "n=%d", n)
	}
}

func TestOFBModesSymmetry(t *testing.T) {
	key := []byte{0x13, 0x34, 0x57, 0x79, 0x9B, 0xBC, 0xDF, 0xF1}
	iv := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x00, 0x11}
	plaintext := []byte("abcdefgh12345678")

	for _, mode := range []cipher.Mode{cipher.OFBISO, cipher.OFBFIPS81} {
		for _, n := range []int{1, 8, 16, 32, 64} {
			ciphertext, recovered := encryptDecrypt(t, cipher.DES, mode, key, iv, plaintext, n)
			require.Equal(t, plaintext, recovered)
			require.NotEqual(t, plaintext, ciphertext)
		}
	}
}

func TestDESXOFBISOMultiBlockSymmetry(t *testing.T) {
	key := []byte{
		0x13, 0x34, 0x57, 0x79, 0x9B, 0xBC, 0xDF, 0xF1,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80,
	}
	iv := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x00, 0x11}
	plaintext := []byte("DESX OFB-ISO test spans multiple blocks!")

	for _, n := range []int{1, 8, 16, 32, 64} {
		ciphertext, recovered := encryptDecrypt(t, cipher.DESX, cipher.OFBISO, key, iv, plaintext, n)
		require.Equal(t, plaintext, recovered, "n=%d", n)
		require.NotEqual(t, plaintext, ciphertext, "n=%d", n)
	}
}

func TestECBIndependence(t *testing.T) {
	key := []byte{0x13, 0x34, 0x57, 0x79, 0x9B, 0xBC, 0xDF, 0xF1}
	iv := make([]byte, 8)
	p1 := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	p2 := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}

	var whole cipher.Context
	require.NoError(t, cipher.Init(&whole, cipher.DES, cipher.ECB, key, iv, cipher.Encrypt, 0))
	combined := make([]byte, 16)
	require.NoError(t, cipher.Update(&whole, combined, append(append([]byte{}, p1...), p2...)))

	var c1Ctx, c2Ctx cipher.Context
	require.NoError(t, cipher.Init(&c1Ctx, cipher.DES, cipher.ECB, key, iv, cipher.Encrypt, 0))
	require.NoError(t, cipher.Init(&c2Ctx, cipher.DES, cipher.ECB, key, iv, cipher.Encrypt, 0))
	out1 := make([]byte, 8)
	out2 := make([]byte, 8)
	require.NoError(t, cipher.Update(&c1Ctx, out1, p1))
	require.NoError(t, cipher.Update(&c2Ctx, out2, p2))

	require.Equal(t, combined[:8], out1)
	require.Equal(t, combined[8:], out2)
}

func TestRestartIdempotence(t *testing.T) {
	key := []byte{0x13, 0x34, 0x57, 0x79, 0x9B, 0xBC, 0xDF, 0xF1}
	iv := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	block := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

	var ctx cipher.Context
	require.NoError(t, cipher.Init(&ctx, cipher.DES, cipher.CBC, key, iv, cipher.Encrypt, 0))

	first := make([]byte, 8)
	require.NoError(t, cipher.Update(&ctx, first, block))

	cipher.Restart(&ctx)

	second := make([]byte, 8)
	require.NoError(t, cipher.Update(&ctx, second, block))

	require.Equal(t, first, second)
}

func TestTripleDESReducesToDESWhenKeysEqual(t *testing.T) {
	desKey := []byte{0x13, 0x34, 0x57, 0x79, 0x9B, 0xBC, 0xDF, 0xF1}
	tripleKey := append(append(append([]byte{}, desKey...), desKey...), desKey...)
	iv := make([]byte, 8)
	plaintext := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

	var desCtx cipher.Context
	require.NoError(t, cipher.Init(&desCtx, cipher.DES, cipher.ECB, desKey, iv, cipher.Encrypt, 0))
	desOut := make([]byte, 8)
	require.NoError(t, cipher.Update(&desCtx, desOut, plaintext))

	var tripleCtx cipher.Context
	require.NoError(t, cipher.Init(&tripleCtx, cipher.TripleDES, cipher.ECB, tripleKey, iv, cipher.Encrypt, 0))
	tripleOut := make([]byte, 8)
	require.NoError(t, cipher.Update(&tripleCtx, tripleOut, plaintext))

	require.Equal(t, desOut, tripleOut)
}

func Test3DESEncryptDecryptRoundTrip(t *testing.T) {
	key := []byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF,
		0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x01,
		0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x01, 0x23,
	}
	iv := make([]byte, 8)
	plaintext := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xE7}

	for _, mode := range []cipher.Mode{cipher.ECB, cipher.CBC} {
		_, recovered := encryptDecrypt(t, cipher.TripleDES, mode, key, iv, plaintext, 0)
		require.Equal(t, plaintext, recovered)
	}
}

func Test3DESFeedbackModesRoundTrip(t *testing.T) {
	key := []byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF,
		0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x01,
		0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x01, 0x23,
	}
	iv := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	plaintext := []byte("0123456789ABCDEF01234567")

	for _, mode := range []cipher.Mode{cipher.CFB, cipher.OFBISO, cipher.OFBFIPS81} {
		for _, n := range []int{1, 8, 16, 32, 64} {
			ciphertext, recovered := encryptDecrypt(t, cipher.TripleDES, mode, key, iv, plaintext, n)
			require.Equal(t, plaintext, recovered, "mode=%v n=%d", mode, n)
			require.NotEqual(t, plaintext, ciphertext, "mode=%v n=%d", mode, n)
		}
	}
}

func TestInvalidKeySizes(t *testing.T) {
	iv := make([]byte, 8)
	var ctx cipher.Context

	require.ErrorIs(t, cipher.Init(&ctx, cipher.DES, cipher.ECB, make([]byte, 7), iv, cipher.Encrypt, 0), errors.ErrInvalidKeySize)
	require.ErrorIs(t, cipher.Init(&ctx, cipher.DESX, cipher.ECB, make([]byte, 16), iv, cipher.Encrypt, 0), errors.ErrInvalidKeySize)
	require.ErrorIs(t, cipher.Init(&ctx, cipher.TripleDES, cipher.ECB, make([]byte, 8), iv, cipher.Encrypt, 0), errors.ErrInvalidKeySize)
}

func TestInvalidLengthAndFeedbackWidth(t *testing.T) {
	key := []byte{0x13, 0x34, 0x57, 0x79, 0x9B, 0xBC, 0xDF, 0xF1}
	iv := make([]byte, 8)

	var ctx cipher.Context
	require.NoError(t, cipher.Init(&ctx, cipher.DES, cipher.ECB, key, iv, cipher.Encrypt, 0))
	out := make([]byte, 9)
	require.Error(t, cipher.Update(&ctx, out, make([]byte, 9)))

	var feedbackCtx cipher.Context
	require.Error(t, cipher.Init(&feedbackCtx, cipher.DES, cipher.CFB, key, iv, cipher.Encrypt, 3))
}
