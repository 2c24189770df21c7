package fruity

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInsufficientFruitVariety is returned when the catalog cannot supply one
// distinct fruit per group.
var ErrInsufficientFruitVariety = errors.New("fruity: insufficient fruit variety")

// DefaultCatalog is the built-in fruit set.
var DefaultCatalog = []string{
	"apple", "banana", "orange", "strawberry", "grape",
	"watermelon", "pineapple", "cherry", "pear", "kiwi",
	"mango", "blueberry", "peach", "lemon", "coconut",
}

// TileID identifies a tile within one board.
type TileID int

// Tile is a single card on the board.
type Tile struct {
	ID      TileID `json:"id"`
	Fruit   string `json:"fruit"`
	Flipped bool   `json:"flipped"`
	Matched bool   `json:"matched"`
}

// Board is the ordered tile sequence for one level.
type Board []Tile

// Index returns the position of the tile with the given ID, or -1.
func (b Board) Index(id TileID) int {
	for i := range b {
		if b[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no memory with b.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// CountByFruit returns how many tiles carry each fruit.
func (b Board) CountByFruit() map[string]int {
	counts := make(map[string]int)
	for _, t := range b {
		counts[t.Fruit]++
	}
	return counts
}

// Generator builds shuffled boards from a fruit catalog.
type Generator struct {
	rng     *rand.Rand
	catalog []string
}

// NewGenerator creates a generator seeded for reproducible boards.
// Duplicate fruits in the catalog are collapsed; a nil catalog uses DefaultCatalog.
func NewGenerator(seed int64, catalog []string) *Generator {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	seen := make(map[string]bool, len(catalog))
	unique := make([]string, 0, len(catalog))
	for _, f := range catalog {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		unique = append(unique, f)
	}

	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		catalog: unique,
	}
}

// Catalog returns the fruits the generator draws from.
func (g *Generator) Catalog() []string {
	out := make([]string, len(g.catalog))
	copy(out, g.catalog)
	return out
}

// Generate builds a new shuffled board for the level.
func (g *Generator) Generate(level int) (Board, error) {
	cfg, err := ResolveLevel(level)
	if err != nil {
		return nil, err
	}

	totalGroups := cfg.TotalGroups()
	if len(g.catalog) < totalGroups {
		return nil, fmt.Errorf("%w: need %d fruits, catalog has %d",
			ErrInsufficientFruitVariety, totalGroups, len(g.catalog))
	}

	// Pick fruits via a permutation of the catalog
	perm := g.rng.Perm(len(g.catalog))
	fruits := make([]string, totalGroups)
	for i := 0; i < totalGroups; i++ {
		fruits[i] = g.catalog[perm[i]]
	}

	// IDs are a per-board counter so they can never collide
	board := make(Board, 0, totalGroups*cfg.GroupSize)
	nextID := TileID(1)
	for _, fruit := range fruits {
		for j := 0; j < cfg.GroupSize; j++ {
			board = append(board, Tile{ID: nextID, Fruit: fruit})
			nextID++
		}
	}

	g.rng.Shuffle(len(board), func(i, j int) {
		board[i], board[j] = board[j], board[i]
	})

	return board, nil
}
