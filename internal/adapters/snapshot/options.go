package snapshot

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithBusyTimeout sets the SQLite busy timeout in milliseconds for the
// snapshot database handle.
func WithBusyTimeout(ms int) Option {
	return func(s *Store) {
		if ms > 0 {
			s.busyTimeoutMS = ms
		}
	}
}
