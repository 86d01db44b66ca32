// meta/meta.go
package meta

// GRID_RADIUS defines the grid radius: coordinates satisfy |q|, |r|, |s| < GRID_RADIUS.
const GRID_RADIUS = 8

// TILE_POOL defines the number of tiles each player may place over a full game.
const TILE_POOL = 20

// CELL_SIZE defines the flat-top hex cell size used by the pixel mapping.
const CELL_SIZE = 32.0

// MAX_MOVES caps the number of placements in a self-play game.
const MAX_MOVES = 100
