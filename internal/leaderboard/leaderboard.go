// Package leaderboard maintains the capped, score-sorted list of top players
// and persists it as a single JSON document.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Capacity is the number of entries kept.
const Capacity = 10

// MaxNameLength is the longest accepted player name, in runes.
const MaxNameLength = 10

// DateLayout is the persisted date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ErrCorruptPersistedState is reported when stored data cannot be decoded.
// Callers recover by starting from an empty board.
var ErrCorruptPersistedState = errors.New("leaderboard: corrupt persisted state")

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Board is the ordered list of entries, highest score first.
type Board []Entry

// Clone returns an independent copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// Full reports whether the board holds Capacity entries.
func (b Board) Full() bool {
	return len(b) >= Capacity
}

// Lowest returns the score of the last entry, or 0 when empty.
func (b Board) Lowest() int {
	if len(b) == 0 {
		return 0
	}
	return b[len(b)-1].Score
}

// Qualifies reports whether score would earn a place on b.
// A full board requires strictly beating the last entry.
func Qualifies(score int, b Board) bool {
	if len(b) < Capacity {
		return true
	}
	return score > b[Capacity-1].Score
}

// Insert adds e to b, keeps ties in insertion order and truncates to Capacity.
// Returns the new board and the 1-based rank of e, or 0 if it fell off.
func Insert(b Board, e Entry) (Board, int) {
	out := make(Board, 0, len(b)+1)
	out = append(out, b...)
	out = append(out, e)

	// Track the new entry through the sort by its index
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return out[idx[i]].Score > out[idx[j]].Score
	})

	sorted := make(Board, len(out))
	rank := 0
	for pos, i := range idx {
		sorted[pos] = out[i]
		if i == len(out)-1 {
			rank = pos + 1
		}
	}

	if len(sorted) > Capacity {
		sorted = sorted[:Capacity]
	}
	if rank > Capacity {
		rank = 0
	}
	return sorted, rank
}

// NewEntry builds an entry dated at now.
func NewEntry(name string, score int, now time.Time) Entry {
	return Entry{
		Name:  name,
		Score: score,
		Date:  now.Format(DateLayout),
	}
}

// Encode serializes b as a JSON array.
func Encode(b Board) ([]byte, error) {
	if b == nil {
		b = Board{}
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: encode: %w", err)
	}
	return data, nil
}

// Decode parses a persisted board. Any malformed input yields an error
// wrapping ErrCorruptPersistedState. Valid input is normalized to the
// sorted, capped form.
func Decode(data []byte) (Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPersistedState, err)
	}
	if b == nil {
		// JSON null
		return Board{}, nil
	}

	for i, e := range b {
		if e.Score < 0 {
			return nil, fmt.Errorf("%w: entry %d has negative score", ErrCorruptPersistedState, i)
		}
		if _, err := time.Parse(DateLayout, e.Date); err != nil {
			return nil, fmt.Errorf("%w: entry %d has bad date %q", ErrCorruptPersistedState, i, e.Date)
		}
	}

	sort.SliceStable(b, func(i, j int) bool {
		return b[i].Score > b[j].Score
	})
	if len(b) > Capacity {
		b = b[:Capacity]
	}
	return b, nil
}

// Rank returns the 1-based position of e in b, or 0 if absent.
func (b Board) Rank(e Entry) int {
	for i := range b {
		if b[i] == e {
			return i + 1
		}
	}
	return 0
}
