package desround

// Schedule is a cooked 16-round DES key schedule: 32 words, two per round,
// laid out so Transform can index a 6-bit S-box window directly out of
// each word with a shift and mask, with no further permutation needed.
//
// When built for encryption the words are stored round 0 first. When
// built for decryption they are stored in reverse round order, so the
// same Transform loop (which always walks the schedule front-to-back)
// runs the rounds in the order required to invert the cipher.
type Schedule [32]uint32

// BuildSchedule derives the 16-round schedule for an 8-byte DES key.
// encrypt selects forward (round 0 first) or reverse (round 15 first)
// word ordering.
func BuildSchedule(key [8]byte, encrypt bool) Schedule {
	var pc1m, pcr [56]byte
	for j, l := range pc1 {
		m := l & 0o7
		if key[l>>3]&byte(byteBit[m]) != 0 {
			pc1m[j] = 1
		}
	}

	var kn [32]uint32
	for i := 0; i < 16; i++ {
		m := i << 1
		n := m + 1
		kn[m], kn[n] = 0, 0

		for j := 0; j < 28; j++ {
			l := j + int(totalRotations[i])
			if l < 28 {
				pcr[j] = pc1m[l]
			} else {
				pcr[j] = pc1m[l-28]
			}
		}
		for j := 28; j < 56; j++ {
			l := j + int(totalRotations[i])
			if l < 56 {
				pcr[j] = pc1m[l]
			} else {
				pcr[j] = pc1m[l-28]
			}
		}

		for j := 0; j < 24; j++ {
			if pcr[pc2[j]] != 0 {
				kn[m] |= bigByte[j]
			}
			if pcr[pc2[j+24]] != 0 {
				kn[n] |= bigByte[j]
			}
		}
	}

	return cookKey(&kn, encrypt)
}

// cookKey repacks the 32-word raw selection produced by PC2 into the
// final schedule layout Transform expects. Each round contributes two
// raw words (kn[2i], kn[2i+1]) and two cooked words; under decryption
// the cooked words are written back to front, 16 rounds each 2 words
// apart in reverse.
func cookKey(kn *[32]uint32, encrypt bool) Schedule {
	var subkeys Schedule

	pos := 0
	step := 2
	if !encrypt {
		pos = 30
		step = -2
	}

	for i := 0; i < 16; i++ {
		raw0 := kn[2*i]
		raw1 := kn[2*i+1]

		subkeys[pos] = (raw0&0x00fc0000)<<6 |
			(raw0&0x00000fc0)<<10 |
			(raw1&0x00fc0000)>>10 |
			(raw1&0x00000fc0)>>6
		subkeys[pos+1] = (raw0&0x0003f000)<<12 |
			(raw0&0x0000003f)<<16 |
			(raw1&0x0003f000)>>4 |
			(raw1 & 0x0000003f)

		pos += step
	}

	return subkeys
}
