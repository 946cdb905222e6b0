package component

// Health is a bounded counter in [0, Max]. Besides hit points it is used as
// a countdown timer for lifetimes and attack cooldowns.
type Health struct {
	Current float64
	Max     float64
}

// NewHealth returns a full Health of the given maximum.
func NewHealth(max float64) Health {
	return Health{Current: max, Max: max}
}

// Change adds delta and clamps the result into [0, Max].
func (h *Health) Change(delta float64) {
	h.Current += delta
	if h.Current < 0 {
		h.Current = 0
	} else if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Kill forces the counter to zero.
func (h *Health) Kill() {
	h.Current = 0
}

// Reset refills the counter to Max.
func (h *Health) Reset() {
	h.Current = h.Max
}

func (h Health) IsAlive() bool {
	return h.Current > 0
}

// HpFrac is Current/Max, or 0 for a zero-sized counter.
func (h Health) HpFrac() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}
