package goal

import "time"

const (
	reactionDelay = 250 * time.Millisecond // before the first skate-back retarget
	settleFrames  = 3                      // frames back in bounds before ReturnInBounds clears
	reentryGap    = 0.5                    // meters behind the competitor being yielded to

	boundaryMargin = 0.1 // lateral share of the track treated as too close to a bound
	safeInner      = 0.25
	safeOuter      = 0.75

	lookAhead = 3.0 // meters along the pack line for ordinary targets

	evadeRange      = 5.0 // blockers closer than this ahead trigger evasion
	evadeCandidates = 9   // lateral offsets tried, evenly spaced
	racingAmplitude = 0.35

	blockRange   = 4.0
	offenseRange = 6.0
	chaseGiveUp  = 1.5 // of the trigger range

	wallSize    = 3
	wallSpacing = 1.2 // meters; the widest pair gap for a formed wall
	wallFor     = 2 * time.Second
	wallPace    = 2.5

	cruiseFor   = time.Second
	cruiseSpeed = 3.5
	slowSpeed   = 1.0
	returnSpeed = 2.0
)
