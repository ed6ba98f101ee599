package checkin

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreakRewardPolicy(t *testing.T) {
	policy := NewStreakRewardPolicy()

	// 10 base points plus 2 per streak day.
	assert.Equal(t, 12, policy.Reward(1))
	assert.Equal(t, 14, policy.Reward(2))
	assert.Equal(t, 30, policy.Reward(10))
}

func TestRandomRewardPolicyStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	policy := NewRandomRewardPolicy(1, 30, rng)

	for i := 0; i < 1000; i++ {
		reward := policy.Reward(i)
		assert.GreaterOrEqual(t, reward, 1)
		assert.LessOrEqual(t, reward, 30)
	}
}

func TestRandomRewardPolicyClampsBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	// A non-positive minimum is lifted to 1 so rewards stay strictly positive.
	policy := NewRandomRewardPolicy(0, 0, rng)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, policy.Reward(i))
	}

	// max < min collapses to a single value.
	policy = NewRandomRewardPolicy(5, 3, rng)
	assert.Equal(t, 5, policy.Reward(1))
}

func TestRandomRewardPolicySeedsItself(t *testing.T) {
	policy := NewRandomRewardPolicy(1, 30, nil)
	reward := policy.Reward(1)
	assert.GreaterOrEqual(t, reward, 1)
	assert.LessOrEqual(t, reward, 30)
}
