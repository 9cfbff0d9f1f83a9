package ports

// CoinSource yields independent binary draws with a nominal 50% chance of a positive result.
type CoinSource interface {
	Toss() bool
}

/*
CoinSourceFactory hands out the coin sources for one simulation run.
This is a driven port, typically implemented by a seeded PRNG adapter.
*/
type CoinSourceFactory interface {
	// NewSources returns count independent sources derived from seed.
	// A zero seed asks the factory to draw one itself. The seed actually
	// used is returned so the run can be reproduced.
	NewSources(seed uint64, count int) ([]CoinSource, uint64, error)
}
