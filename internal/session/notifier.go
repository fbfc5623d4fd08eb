package session

import (
	"sync/atomic"

	"github.com/gmdesk/console/internal/threadsafe"
)

// Notifier broadcasts forced-logout events to interested subscribers.
// It replaces an ambient process-wide event mechanism with an explicit
// registry owned by the same composition root that owns the Store.
type Notifier struct {
	nextID      atomic.Uint64
	subscribers *threadsafe.Map[uint64, func()]
}

// NewNotifier creates a new forced-logout notifier without any subscribers
func NewNotifier() *Notifier {
	return &Notifier{
		subscribers: threadsafe.NewMap[uint64, func()](),
	}
}

// Subscribe registers a callback that is invoked on every forced logout.
// The returned subscription ID may be passed to Unsubscribe.
func (notifier *Notifier) Subscribe(fn func()) uint64 {
	id := notifier.nextID.Add(1)
	notifier.subscribers.Set(id, fn)
	return id
}

// Unsubscribe removes a previously registered callback.
// Unsubscribing an unknown ID is a no-op.
func (notifier *Notifier) Unsubscribe(id uint64) {
	notifier.subscribers.Remove(id)
}

// Notify invokes every subscribed callback.
// The broadcast is fire-and-forget: callbacks run synchronously and their
// behavior is entirely up to the subscriber.
func (notifier *Notifier) Notify() {
	notifier.subscribers.Range(func(_ uint64, fn func()) {
		fn()
	})
}
