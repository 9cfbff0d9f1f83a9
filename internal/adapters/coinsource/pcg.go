package coinsource

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand/v2"

	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
)

// golden is the splitmix64 increment, used to spread stream indexes apart.
const golden = 0x9e3779b97f4a7c15

// PCGFactory implements the CoinSourceFactory interface with PCG generators.
type PCGFactory struct {
	entropy io.Reader
}

// NewPCGFactory creates a factory that draws missing seeds from the operating system.
func NewPCGFactory() ports.CoinSourceFactory {
	return &PCGFactory{entropy: rand.Reader}
}

// NewPCGFactoryWithEntropy creates a factory that draws missing seeds from r.
func NewPCGFactoryWithEntropy(r io.Reader) ports.CoinSourceFactory {
	if r == nil {
		panic("entropy reader cannot be nil")
	}
	return &PCGFactory{entropy: r}
}

// NewSources returns count coins with one PCG stream each. Every stream is
// seeded from the same root seed and its own index, so a fixed seed and
// count always reproduce the same draws.
func (f *PCGFactory) NewSources(seed uint64, count int) ([]ports.CoinSource, uint64, error) {
	if count < 1 {
		return nil, 0, fmt.Errorf("coin source count must be positive, got %d", count)
	}
	if seed == 0 {
		var err error
		seed, err = f.drawSeed()
		if err != nil {
			return nil, 0, err
		}
	}

	sources := make([]ports.CoinSource, count)
	for i := range sources {
		stream := uint64(i+1) * golden
		sources[i] = NewCoin(mrand.NewPCG(seed, seed^stream))
	}
	return sources, seed, nil
}

func (f *PCGFactory) drawSeed() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(f.entropy, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read seed from entropy source: %w", err)
	}
	seed := binary.LittleEndian.Uint64(buf[:])
	if seed == 0 {
		// Zero means "no seed" in configuration; keep the returned seed replayable.
		seed = golden
	}
	return seed, nil
}

// Coin tosses one bit at a time out of 64-bit words pulled from its source.
type Coin struct {
	src  mrand.Source
	word uint64
	bits int
}

// NewCoin wraps src. The coin is not safe for concurrent use.
func NewCoin(src mrand.Source) *Coin {
	if src == nil {
		panic("random source cannot be nil")
	}
	return &Coin{src: src}
}

// Toss reports whether the next draw is positive.
func (c *Coin) Toss() bool {
	if c.bits == 0 {
		c.word = c.src.Uint64()
		c.bits = 64
	}
	c.bits--
	positive := c.word&1 == 1
	c.word >>= 1
	return positive
}
