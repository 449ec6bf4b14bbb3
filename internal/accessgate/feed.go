package accessgate

import (
	"sync"
)

// IdentityFeed is an IdentitySource fed by the caller, e.g. from sign-in
// frames on a socket. Subscribers get the current identity once it is
// known, then every change, in publish order.
type IdentityFeed struct {
	mu      sync.Mutex
	known   bool
	current *Identity
	subs    map[*feedSubscription]struct{}
}

type feedSubscription struct {
	feed *IdentityFeed
	fn   func(*Identity)
}

func NewIdentityFeed() *IdentityFeed {
	return &IdentityFeed{subs: make(map[*feedSubscription]struct{})}
}

// sets the identity; nil signs out
func (f *IdentityFeed) Publish(identity *Identity) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var id *Identity
	if identity != nil {
		v := *identity
		id = &v
	}

	f.known = true
	f.current = id

	for sub := range f.subs {
		sub.fn(id)
	}
}

func (f *IdentityFeed) SubscribeIdentity(fn func(*Identity)) Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub := &feedSubscription{feed: f, fn: fn}
	f.subs[sub] = struct{}{}

	if f.known {
		fn(f.current)
	}

	return sub
}

func (s *feedSubscription) Cancel() {
	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()

	delete(s.feed.subs, s)
}
