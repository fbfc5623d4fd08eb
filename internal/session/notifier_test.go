package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gmdesk/console/internal/session"
)

func TestNotifier_NotifiesEverySubscriber(t *testing.T) {
	t.Parallel()

	notifier := session.NewNotifier()

	first, second := 0, 0
	notifier.Subscribe(func() { first++ })
	notifier.Subscribe(func() { second++ })

	notifier.Notify()
	notifier.Notify()

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestNotifier_Unsubscribe(t *testing.T) {
	t.Parallel()

	notifier := session.NewNotifier()

	calls := 0
	id := notifier.Subscribe(func() { calls++ })

	notifier.Notify()
	notifier.Unsubscribe(id)
	notifier.Notify()

	assert.Equal(t, 1, calls)
}

func TestNotifier_UnsubscribeUnknownID(t *testing.T) {
	t.Parallel()

	notifier := session.NewNotifier()
	notifier.Unsubscribe(42)
	notifier.Notify()
}

func TestNotifier_SubscriberMayUnsubscribeItself(t *testing.T) {
	t.Parallel()

	notifier := session.NewNotifier()

	calls := 0
	var id uint64
	id = notifier.Subscribe(func() {
		calls++
		notifier.Unsubscribe(id)
	})

	notifier.Notify()
	notifier.Notify()

	assert.Equal(t, 1, calls)
}
