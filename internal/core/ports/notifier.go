package ports

// Subscription is a live file-change watch. Closing it stops delivery;
// Close is idempotent.
type Subscription interface {
	Close() error
}

// ChangeNotifier subscribes callbacks to modification events on a fixed set
// of absolute file paths. Implementations must support multiple independent
// subscriptions over overlapping path sets and must not fire for files
// outside the subscribed set.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type ChangeNotifier interface {
	// Subscribe starts watching the given paths. onChange is invoked with
	// the changed path; it may be called from an internal goroutine and
	// must be safe for concurrent use.
	Subscribe(paths []string, onChange func(path string)) (Subscription, error)
}
