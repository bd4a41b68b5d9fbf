package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse oscillates a visual's global alpha between two bounds, for
// hover and selection feedback while editing. Call Update once per tick;
// there is no global animation manager — callers drive their own pulses.
type Pulse struct {
	target   *EntityVisual
	tween    *gween.Tween
	min, max float32
	period   float32
	rising   bool
	fn       ease.TweenFunc
}

// NewPulse creates a pulse fading the visual between minAlpha and maxAlpha,
// one full cycle per period seconds.
func NewPulse(target *EntityVisual, minAlpha, maxAlpha float64, period float32) *Pulse {
	p := &Pulse{
		target: target,
		min:    float32(minAlpha),
		max:    float32(maxAlpha),
		period: period,
		fn:     ease.InOutSine,
	}
	p.rising = false
	p.tween = gween.New(p.max, p.min, period/2, p.fn)
	return p
}

// Update advances the pulse by dt seconds and writes the resulting alpha
// through the visual's propagating style setter.
func (p *Pulse) Update(dt float32) {
	val, finished := p.tween.Update(dt)
	p.target.SetStyle(p.target.Style().WithAlpha(float64(val)))
	if finished {
		p.rising = !p.rising
		from, to := p.max, p.min
		if p.rising {
			from, to = p.min, p.max
		}
		p.tween = gween.New(from, to, p.period/2, p.fn)
	}
}

// Stop restores the visual's alpha to 1.
func (p *Pulse) Stop() {
	p.target.SetStyle(p.target.Style().WithAlpha(1))
}
