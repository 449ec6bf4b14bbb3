package accessgate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityFeed(t *testing.T) {
	feed := NewIdentityFeed()

	var early []*Identity
	sub := feed.SubscribeIdentity(func(id *Identity) { early = append(early, id) })
	assert.Empty(t, early, "nothing delivered before the first publish")

	published := &Identity{UID: "uid-ana"}
	feed.Publish(published)
	published.UID = "mutated"

	feed.Publish(nil)

	var late []*Identity
	feed.SubscribeIdentity(func(id *Identity) { late = append(late, id) })

	assert.Len(t, early, 2)
	assert.Equal(t, "uid-ana", early[0].UID)
	assert.Nil(t, early[1])
	assert.Equal(t, []*Identity{nil}, late, "late subscribers get the current identity")

	sub.Cancel()
	sub.Cancel()
	feed.Publish(&Identity{UID: "uid-ben"})
	assert.Len(t, early, 2)
	assert.Len(t, late, 2)
}
