package crypto

const (
	blockCount  = 3
	blockSize   = 6
	blockVowels = 2

	// maxShuffleAttempts bounds the reshuffle loop. Roughly 40% of
	// permutations of 2 vowels and 4 consonants are readable.
	maxShuffleAttempts = 64

	// PronounceableLength is the length of every pronounceable password.
	PronounceableLength = blockCount*blockSize + blockCount - 1
)

// readableLayout is the fallback vowel/consonant arrangement used when the
// shuffle attempts run out.
const readableLayout = "ccvccv"

type block [blockSize]byte

// Pronounceable returns a password shaped like "xxxxxx-xxxxxx-xxxxxx": three
// six-letter blocks of 2 vowels and 4 consonants, no block containing three
// consonants in a row, with exactly one uppercase letter and exactly one
// digit placed in different blocks.
func (g *Generator) Pronounceable() (string, error) {
	src := NewSource(g.rand)
	defer src.Close()

	var blocks [blockCount]block
	defer func() {
		for i := range blocks {
			clear(blocks[i][:])
		}
	}()

	for i := range blocks {
		if err := fillBlock(src, &blocks[i]); err != nil {
			return "", err
		}
	}

	upper, err := src.Int(0, blockCount)
	if err != nil {
		return "", err
	}
	if err := placeUpper(src, &blocks[upper]); err != nil {
		return "", err
	}

	skip, err := src.Int(0, blockCount-1)
	if err != nil {
		return "", err
	}
	digitBlock := (upper + 1 + skip) % blockCount
	offset, err := src.Int(0, blockSize)
	if err != nil {
		return "", err
	}
	digit, err := src.Char(digitPool)
	if err != nil {
		return "", err
	}
	blocks[digitBlock][offset] = digit

	out := make([]byte, 0, PronounceableLength)
	for i := range blocks {
		if i > 0 {
			out = append(out, '-')
		}
		out = append(out, blocks[i][:]...)
	}

	return string(out), nil
}

// fillBlock draws 2 vowels and 4 consonants into b and shuffles them until no
// three consonants are adjacent.
func fillBlock(src *Source, b *block) error {
	for i := range b {
		pool := consonantPool
		if i < blockVowels {
			pool = vowelPool
		}
		ch, err := src.Char(pool)
		if err != nil {
			return err
		}
		b[i] = ch
	}

	for range maxShuffleAttempts {
		if err := shuffle(src, b[:]); err != nil {
			return err
		}
		if !hasConsonantRun(b[:]) {
			return nil
		}
	}

	arrangeReadable(b)
	return nil
}

// arrangeReadable reorders b into readableLayout, keeping the relative order
// of vowels and of consonants. b must hold exactly 2 vowels and 4 consonants.
func arrangeReadable(b *block) {
	var vowels, consonants []byte
	for _, c := range b {
		if isConsonant(c) {
			consonants = append(consonants, c)
		} else {
			vowels = append(vowels, c)
		}
	}
	for i := range b {
		if readableLayout[i] == 'v' {
			b[i], vowels = vowels[0], vowels[1:]
		} else {
			b[i], consonants = consonants[0], consonants[1:]
		}
	}
}

// placeUpper writes a random uppercase letter into b at a random offset where
// it does not create a run of three consonants. Any consonant offset always
// qualifies, so there is at least one candidate.
func placeUpper(src *Source, b *block) error {
	ch, err := src.Char(upperPool)
	if err != nil {
		return err
	}

	var candidates [blockSize]int
	n := 0
	for i := range b {
		orig := b[i]
		b[i] = ch
		if !hasConsonantRun(b[:]) {
			candidates[n] = i
			n++
		}
		b[i] = orig
	}

	k, err := src.Int(0, n)
	if err != nil {
		return err
	}
	b[candidates[k]] = ch
	return nil
}

// hasConsonantRun reports whether s contains three consecutive consonants.
func hasConsonantRun(s []byte) bool {
	run := 0
	for _, c := range s {
		if !isConsonant(c) {
			run = 0
			continue
		}
		run++
		if run >= 3 {
			return true
		}
	}
	return false
}
