//go:build !windows

package regstore

type liveStore struct{}

// Live returns a Store backed by the local machine's registry. Off Windows
// every OpenKey fails with ErrUnsupported; use a Tree instead.
func Live() Store {
	return liveStore{}
}

func (liveStore) OpenKey(path string) (Key, error) {
	return nil, ErrUnsupported
}
