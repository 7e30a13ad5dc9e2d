package arena

import "log"

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithReserver sets where chunk memory comes from. Defaults to HeapReserver.
func WithReserver(r Reserver) Option {
	return func(a *Arena) {
		if r != nil {
			a.reserver = r
		}
	}
}

// WithMaxCapacity caps the total bytes reserved across all chunks.
// Growth past the cap fails with ErrCapacityExceeded. n <= 0 means no cap.
func WithMaxCapacity(n int) Option {
	return func(a *Arena) {
		a.maxCapacity = n
	}
}

// WithLogger reports chunk reservation and release failures to l.
func WithLogger(l *log.Logger) Option {
	return func(a *Arena) {
		a.logger = l
	}
}
