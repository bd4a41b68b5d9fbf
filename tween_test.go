package easel

import "testing"

func TestPulseStaysWithinBounds(t *testing.T) {
	v := NewEntityVisual()
	p := NewPulse(v, 0.2, 1.0, 1.0)

	for i := 0; i < 100; i++ {
		p.Update(0.05)
		a := v.Style().Alpha()
		if a < 0.2-1e-4 || a > 1.0+1e-4 {
			t.Fatalf("alpha = %v after %d updates, want within [0.2, 1.0]", a, i+1)
		}
	}
}

func TestPulseReverses(t *testing.T) {
	v := NewEntityVisual()
	p := NewPulse(v, 0.0, 1.0, 1.0)

	// First half-cycle fades out completely.
	p.Update(0.5)
	low := v.Style().Alpha()
	if low > 0.01 {
		t.Fatalf("alpha after half cycle = %v, want near 0", low)
	}

	// Second half-cycle fades back in.
	p.Update(0.25)
	p.Update(0.25)
	high := v.Style().Alpha()
	if high < 0.99 {
		t.Errorf("alpha after full cycle = %v, want near 1", high)
	}
}

func TestPulsePropagatesToComponents(t *testing.T) {
	v := NewEntityVisual()
	v.OnEntityChanged(VisualExplosion, nil, nil)
	p := NewPulse(v, 0.5, 1.0, 2.0)

	p.Update(0.1)
	imgAlpha := v.Image().Style().Alpha()
	shapeAlpha := v.Shapes()[0].Style().Alpha()
	if imgAlpha != v.Style().Alpha() || shapeAlpha != v.Style().Alpha() {
		t.Errorf("alphas (image %v, shape %v) diverge from visual %v",
			imgAlpha, shapeAlpha, v.Style().Alpha())
	}
}

func TestPulseStopRestoresAlpha(t *testing.T) {
	v := NewEntityVisual()
	p := NewPulse(v, 0.2, 0.8, 1.0)
	p.Update(0.3)
	p.Stop()
	if v.Style().Alpha() != 1 {
		t.Errorf("alpha after Stop = %v, want 1", v.Style().Alpha())
	}
}
