package sdram

// holdTimer is a saturating cycle counter with a one-shot completion
// signal. The same abstraction times every held state: the owner advances
// the counter once per cycle against the hold time of the current state
// and receives a single true return on the cycle the hold time has
// elapsed.
type holdTimer struct {
	count int
}

// advance moves the counter one cycle toward the threshold. It returns
// true exactly once, on the cycle the counter has reached the threshold,
// and resets the counter at the same time.
func (t *holdTimer) advance(threshold int) bool {
	if t.count >= threshold {
		t.count = 0
		return true
	}

	t.count++

	return false
}

// reset forces the counter back to zero without emitting a completion.
func (t *holdTimer) reset() {
	t.count = 0
}

// powerUpSequencer counts cycles since reset deassertion and latches a
// permanent ready flag once the power-stabilization delay has elapsed.
type powerUpSequencer struct {
	count int
	ready bool
}

func (p *powerUpSequencer) tick(wait int) {
	if p.ready {
		return
	}

	p.count++
	if p.count >= wait {
		p.ready = true
	}
}

func (p *powerUpSequencer) reset() {
	p.count = 0
	p.ready = false
}

// refreshTimer is the free-running refresh interval counter. It increments
// every cycle except while a refresh is executing, which is the only point
// that clears it. due is a level signal: it stays asserted until a refresh
// execution clears the counter.
type refreshTimer struct {
	count int
}

func (t *refreshTimer) tick(refreshExecuting bool) {
	if refreshExecuting {
		t.count = 0
		return
	}

	t.count++
}

func (t *refreshTimer) due(tREF int) bool {
	return t.count >= tREF
}
