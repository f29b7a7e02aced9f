// Package diskv implements a diskv-backed inventory subsystem storage backend.
package diskv

import (
	"path/filepath"

	"github.com/micromdm/nanodevice/subsystem/inventory/storage/kv"

	"github.com/micromdm/nanolib/storage/kv/kvdiskv"
	"github.com/peterbourgon/diskv/v3"
)

// Diskv is an on-disk enrollment inventory data store.
type Diskv struct {
	*kv.KV
}

// New creates a new initialized inventory data store rooted at path.
func New(path string) *Diskv {
	return &Diskv{
		KV: kv.New(kvdiskv.New(diskv.New(diskv.Options{
			BasePath:     filepath.Join(path, "inventory"),
			Transform:    kvdiskv.FlatTransform,
			CacheSizeMax: 1024 * 1024,
		}))),
	}
}
