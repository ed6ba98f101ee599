package checkin

import (
	"math/rand/v2"
	"time"
)

// RewardPolicy computes the points granted for a successful check-in.
// Implementations must return a strictly positive value.
type RewardPolicy interface {
	// Reward is given the streak length the check-in produced (>= 1).
	Reward(streak int) int
}

// StreakRewardPolicy grants a base amount plus a per-day bonus scaled by the
// current streak: reward = base + perDay*streak.
type StreakRewardPolicy struct {
	base   int
	perDay int
}

// NewStreakRewardPolicy returns the default deterministic policy
// (10 points base, 2 extra per streak day).
func NewStreakRewardPolicy() *StreakRewardPolicy {
	return &StreakRewardPolicy{base: 10, perDay: 2}
}

func (p *StreakRewardPolicy) Reward(streak int) int {
	return p.base + p.perDay*streak
}

// RandomRewardPolicy grants a uniformly random amount in [min, max],
// independent of the streak.
type RandomRewardPolicy struct {
	min int
	max int
	rng *rand.Rand
}

// NewRandomRewardPolicy returns a randomized policy over the inclusive range
// [min, max]. A nil rng is seeded from the wall clock; tests pass a fixed one.
func NewRandomRewardPolicy(min, max int, rng *rand.Rand) *RandomRewardPolicy {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &RandomRewardPolicy{min: min, max: max, rng: rng}
}

func (p *RandomRewardPolicy) Reward(int) int {
	return p.min + p.rng.IntN(p.max-p.min+1)
}
