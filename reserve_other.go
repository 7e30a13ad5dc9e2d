//go:build !unix

package arena

// MmapReserver is unavailable on this platform; every Reserve fails with
// ErrNotSupported.
var MmapReserver Reserver = mmapReserver{}

type mmapReserver struct{}

func (mmapReserver) Reserve(int) ([]byte, error) {
	return nil, ErrNotSupported
}

func (mmapReserver) Release([]byte) error {
	return nil
}
