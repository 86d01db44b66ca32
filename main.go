package main

import (
	"flag"

	"hexfront/experiments"
)

func main() {
	games := flag.Int("games", experiments.DefaultGames, "Number of self-play games")
	seed := flag.Uint64("seed", 0, "RNG seed, 0 seeds from the clock")
	flag.Parse()

	experiments.RunBalance(*games, *seed)
}
