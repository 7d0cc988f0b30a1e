package draw

import (
	"crypto/rand"
	"math/big"
)

// Source produces uniform random values in [0, 1). It is an interface
// so tests can inject deterministic sequences and assert exact
// boundary and tie-break behavior.
type Source interface {
	Float64() (float64, error)
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() Source {
	return &cryptoSource{}
}

func (s *cryptoSource) Float64() (float64, error) {
	// 53 bits keeps the full float64 mantissa precision.
	n, err := rand.Int(rand.Reader, big.NewInt(1<<53))
	if err != nil {
		return 0, err
	}
	return float64(n.Int64()) / float64(1<<53), nil
}
