package engine

// RankingSlots is the size of the high-score table.
const RankingSlots = 3

// Result is the plain record of a finished run handed to persistence.
type Result struct {
	Name  string
	Score int
	Lines int
}

// RankEntry is one ranking slot. Unfilled slots accept any result.
type RankEntry struct {
	Result
	Filled bool
}

// Ranking is the ordered top-three table, best first.
type Ranking [RankingSlots]RankEntry

// beats reports whether r takes slot e: the slot is empty, r scores higher,
// or the scores tie and r cleared more lines.
func (e RankEntry) beats(r Result) bool {
	if !e.Filled {
		return true
	}
	if r.Score != e.Score {
		return r.Score > e.Score
	}
	return r.Lines > e.Lines
}

// Qualifies returns the slot r would take, if any.
func (rk Ranking) Qualifies(r Result) (int, bool) {
	for i, e := range rk {
		if e.beats(r) {
			return i, true
		}
	}
	return -1, false
}

// Insert places r at its qualifying slot, shifting lower entries down and
// dropping the last one. It returns the slot index and whether r was inserted.
func (rk *Ranking) Insert(r Result) (int, bool) {
	slot, ok := rk.Qualifies(r)
	if !ok {
		return -1, false
	}
	copy(rk[slot+1:], rk[slot:RankingSlots-1])
	rk[slot] = RankEntry{Result: r, Filled: true}
	return slot, true
}

// Entries returns the filled slots in rank order.
func (rk Ranking) Entries() []Result {
	out := make([]Result, 0, RankingSlots)
	for _, e := range rk {
		if e.Filled {
			out = append(out, e.Result)
		}
	}
	return out
}
