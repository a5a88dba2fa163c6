package mock

import "io"

// noopRSC wraps an io.ReadSeeker with a no-op Close.
type noopRSC struct {
	io.ReadSeeker
}

func (noopRSC) Close() error { return nil }
