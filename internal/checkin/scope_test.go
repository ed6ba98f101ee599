package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveScopeGroup(t *testing.T) {
	assert.Equal(t, "group:-100123", ResolveScope(GroupContext{ChatID: -100123}))
}

func TestResolveScopePrivate(t *testing.T) {
	assert.Equal(t, "private:42", ResolveScope(PrivateContext{UserID: 42}))
}

func TestResolveScopeOpaqueIsStable(t *testing.T) {
	a := ResolveScope(OpaqueContext{Kind: "channel", Key: "777"})
	b := ResolveScope(OpaqueContext{Kind: "channel", Key: "777"})
	assert.Equal(t, a, b, "same context must map to the same scope")
	assert.Contains(t, a, "opaque:")
}

func TestResolveScopeOpaqueDistinguishesContexts(t *testing.T) {
	a := ResolveScope(OpaqueContext{Kind: "channel", Key: "777"})
	b := ResolveScope(OpaqueContext{Kind: "channel", Key: "778"})
	c := ResolveScope(OpaqueContext{Kind: "sender", Key: "777"})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestResolveScopeNilFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultScope, ResolveScope(nil))
}

func TestResolveScopeVariantsNeverCollide(t *testing.T) {
	group := ResolveScope(GroupContext{ChatID: 42})
	private := ResolveScope(PrivateContext{UserID: 42})
	opaque := ResolveScope(OpaqueContext{Kind: "group", Key: "42"})
	assert.NotEqual(t, group, private)
	assert.NotEqual(t, group, opaque)
	assert.NotEqual(t, private, opaque)
}
