package poker

// Compare returns -1 if h is weaker than o, 0 if they tie, 1 if h is stronger.
func (h Hand) Compare(o Hand) int {
	return h.Key().Compare(o.Key())
}

// Beats returns true if h is strictly stronger than o.
func (h Hand) Beats(o Hand) bool {
	return h.Compare(o) > 0
}

// Ties returns true if both hands rank equally, whatever their suits.
func (h Hand) Ties(o Hand) bool {
	return h.Compare(o) == 0
}

// Max returns the strongest hand. When several tie, the first one wins.
// ok is false for an empty list.
func Max(hands ...Hand) (best Hand, ok bool) {
	idx := Winners(hands)
	if len(idx) == 0 {
		return Hand{}, false
	}
	return hands[idx[0]], true
}

// Winners returns the indexes, in input order, of every hand whose key equals
// the best key in hands.
func Winners(hands []Hand) []int {
	if len(hands) == 0 {
		return nil
	}
	keys := make([]Key, len(hands))
	best := 0
	for i, h := range hands {
		keys[i] = h.Key()
		if keys[i].Compare(keys[best]) > 0 {
			best = i
		}
	}

	winners := make([]int, 0, 1)
	for i, k := range keys {
		if k == keys[best] {
			winners = append(winners, i)
		}
	}
	return winners
}
