package checkin

import (
	"fmt"
	"hash/fnv"
)

// DefaultScope is the bucket used when no caller context is available at all.
const DefaultScope = "global"

// ChatContext identifies where a request came from, resolved once by the
// host from its message metadata. The three variants cover structured group
// identity, structured private identity, and anything else.
type ChatContext interface {
	isChatContext()
}

// GroupContext is a request from a group chat.
type GroupContext struct {
	ChatID int64
}

// PrivateContext is a request from a one-on-one conversation.
type PrivateContext struct {
	UserID int64
}

// OpaqueContext carries unstructured metadata for chats that are neither
// groups nor private conversations. Equal contexts resolve to equal scopes.
type OpaqueContext struct {
	Kind string
	Key  string
}

func (GroupContext) isChatContext()   {}
func (PrivateContext) isChatContext() {}
func (OpaqueContext) isChatContext()  {}

// ResolveScope derives the isolation key for a caller context. Group identity
// wins over private identity, opaque metadata is hashed to a stable key, and
// a nil context falls back to DefaultScope. It never fails.
func ResolveScope(c ChatContext) string {
	switch v := c.(type) {
	case GroupContext:
		return fmt.Sprintf("group:%d", v.ChatID)
	case PrivateContext:
		return fmt.Sprintf("private:%d", v.UserID)
	case OpaqueContext:
		h := fnv.New64a()
		h.Write([]byte(v.Kind))
		h.Write([]byte{0})
		h.Write([]byte(v.Key))
		return fmt.Sprintf("opaque:%016x", h.Sum64())
	}
	return DefaultScope
}
