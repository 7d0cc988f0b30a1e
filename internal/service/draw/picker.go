package draw

import (
	"errors"
)

var ErrNoPrizes = errors.New("no prizes to draw from")

// Picker selects one prize from an ordered candidate list by
// roulette-wheel selection. The caller's ordering is the accumulation
// order, so the prize absorbing floating-point edge mass at a boundary
// is deterministic.
type Picker struct {
	source Source
}

func NewPicker(source Source) *Picker {
	return &Picker{
		source: source,
	}
}

// Pick draws one prize proportionally to its weight. Missing weights
// default to 1, negative weights count as 0. When the total weight is
// not positive the draw degrades to uniform so that a weight
// misconfiguration can never block availability.
func (p *Picker) Pick(prizes []string, weights map[string]float64) (string, error) {
	if len(prizes) == 0 {
		return "", ErrNoPrizes
	}

	effective := make([]float64, len(prizes))
	total := 0.0
	for i, prize := range prizes {
		w, ok := weights[prize]
		if !ok {
			w = 1
		}
		if w < 0 {
			w = 0
		}
		effective[i] = w
		total += w
	}

	value, err := p.source.Float64()
	if err != nil {
		return "", err
	}

	if total <= 0 {
		idx := int(value * float64(len(prizes)))
		if idx >= len(prizes) {
			idx = len(prizes) - 1
		}
		return prizes[idx], nil
	}

	target := value * total
	cumulative := 0.0
	for i, prize := range prizes {
		cumulative += effective[i]
		if target < cumulative {
			return prize, nil
		}
	}

	// Floating-point accumulation can leave target a hair past the last
	// boundary; the final prize absorbs it.
	return prizes[len(prizes)-1], nil
}
