package core

// Frame is one raw signaling message, forwarded byte-identical on relay.
type Frame []byte

// SignalConnection abstracts the system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	// TrySend queues a frame without blocking. It returns an error when
	// the connection is closed or its send queue is full; callers treat
	// both as "peer not reachable" and drop.
	TrySend(Frame) error
	Close()
}
