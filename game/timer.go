package game

import "time"

// Timer counts simulation frames up to a target duration.
type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
	frame       time.Duration
}

func NewTimer(target, frame time.Duration) *Timer {
	return &Timer{
		currentTime: target,
		targetTime:  target,
		frame:       frame,
	}
}

func (t *Timer) Update() {
	if t.currentTime < t.targetTime {
		t.currentTime += t.frame
	}
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

// Reset starts a fresh countdown.
func (t *Timer) Reset() {
	t.currentTime = 0
}
