package game

import (
	"fmt"

	"hexfront/meta"
)

// Config carries the per-game parameters. All fields are fixed once a board
// is constructed.
type Config struct {
	Radius   int     // grid radius: coordinates satisfy |q|, |r|, |s| < Radius
	TilePool int     // tiles each player may place over the whole game
	CellSize float64 // flat-top cell size for the pixel mapping
}

func DefaultConfig() Config {
	return Config{
		Radius:   meta.GRID_RADIUS,
		TilePool: meta.TILE_POOL,
		CellSize: meta.CELL_SIZE,
	}
}

func (c Config) validate() {
	if c.Radius < 1 {
		panic(fmt.Sprintf("grid radius must be at least 1, got %d", c.Radius))
	}
	if c.TilePool < 1 {
		panic(fmt.Sprintf("tile pool must be at least 1, got %d", c.TilePool))
	}
	if c.CellSize <= 0 {
		panic(fmt.Sprintf("cell size must be positive, got %v", c.CellSize))
	}
}
