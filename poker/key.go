package poker

import "slices"

// Key field positions. Keys compare lexicographically from keyCategory down.
const (
	keyCategory = iota
	keyFour
	keyThree
	keyPairHigh
	keyPairLow
	keySingle5
	keySingle4
	keySingle3
	keySingle2
	keySingle1
	keyLen
)

// Key is the total-order key of a hand:
//
//	category, four, three, pair high, pair low, singles highest first
//
// Fields hold rank values (2..14) or 0 when absent. Two hands tie exactly when
// their keys are equal.
type Key [keyLen]uint8

// wheelSingles stands in for A-2-3-4-5 so it ranks below every other straight.
var wheelSingles = [5]uint8{5, 4, 3, 2, 1}

// Key computes the hand's ranking key.
func (h Hand) Key() Key {
	p := h.profile()
	var k Key
	k[keyCategory] = p.category().Severity()

	if p.wheel {
		copy(k[keySingle5:], wheelSingles[:])
		return k
	}

	pair, single := keyPairHigh, keySingle5
	for i := len(p.counts) - 1; i >= 0; i-- {
		v := uint8(Ranks[i].Value())
		switch p.counts[i] {
		case 4:
			k[keyFour] = v
		case 3:
			k[keyThree] = v
		case 2:
			k[pair] = v
			pair++
		case 1:
			k[single] = v
			single++
		}
	}
	return k
}

// Category returns the category encoded in the key.
func (k Key) Category() Category {
	return Category(k[keyCategory])
}

// Compare returns -1 if k ranks below o, 0 on a tie, 1 if k ranks above o.
func (k Key) Compare(o Key) int {
	return slices.Compare(k[:], o[:])
}

// Uint64 packs the key into 4-bit slots, category in the most significant
// slot. Packed values order the same way keys do.
func (k Key) Uint64() uint64 {
	var v uint64
	for _, f := range k {
		v = v<<4 | uint64(f&0xF)
	}
	return v
}
