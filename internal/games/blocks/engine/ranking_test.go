package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(score, lines int) RankEntry {
	return RankEntry{Result: Result{Score: score, Lines: lines}, Filled: true}
}

func TestRankingTieBrokenByLines(t *testing.T) {
	rk := Ranking{entry(1000, 5), entry(500, 3), {}}

	slot, ok := rk.Insert(Result{Score: 500, Lines: 10})

	assert.True(t, ok)
	assert.Equal(t, 1, slot)
	assert.Equal(t, entry(1000, 5), rk[0])
	assert.Equal(t, entry(500, 10), rk[1])
	assert.Equal(t, entry(500, 3), rk[2])
}

func TestRankingInsert(t *testing.T) {
	tests := []struct {
		name     string
		ranking  Ranking
		result   Result
		wantSlot int
		wantOK   bool
		want     Ranking
	}{
		{
			name:     "empty table",
			result:   Result{Score: 10, Lines: 1},
			wantSlot: 0,
			wantOK:   true,
			want:     Ranking{entry(10, 1)},
		},
		{
			name:     "new best shifts everything",
			ranking:  Ranking{entry(300, 3), entry(200, 2), entry(100, 1)},
			result:   Result{Score: 400, Lines: 4},
			wantSlot: 0,
			wantOK:   true,
			want:     Ranking{entry(400, 4), entry(300, 3), entry(200, 2)},
		},
		{
			name:     "full table, too low",
			ranking:  Ranking{entry(300, 3), entry(200, 2), entry(100, 1)},
			result:   Result{Score: 50, Lines: 9},
			wantSlot: -1,
			wantOK:   false,
			want:     Ranking{entry(300, 3), entry(200, 2), entry(100, 1)},
		},
		{
			name:     "exact tie goes below",
			ranking:  Ranking{entry(300, 3), {}, {}},
			result:   Result{Score: 300, Lines: 3},
			wantSlot: 1,
			wantOK:   true,
			want:     Ranking{entry(300, 3), entry(300, 3)},
		},
		{
			name:     "exact tie with full table",
			ranking:  Ranking{entry(300, 3), entry(200, 2), entry(100, 1)},
			result:   Result{Score: 100, Lines: 1},
			wantSlot: -1,
			wantOK:   false,
			want:     Ranking{entry(300, 3), entry(200, 2), entry(100, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rk := tt.ranking
			slot, ok := rk.Insert(tt.result)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSlot, slot)
			assert.Equal(t, tt.want, rk)
		})
	}
}

func TestRankingEntries(t *testing.T) {
	rk := Ranking{entry(300, 3), {}, {}}
	assert.Equal(t, []Result{{Score: 300, Lines: 3}}, rk.Entries())
}
