package inmem

import (
	"testing"

	"github.com/micromdm/nanodevice/subsystem/inventory/storage"
	"github.com/micromdm/nanodevice/subsystem/inventory/storage/test"
)

func TestInMem(t *testing.T) {
	test.TestStorage(t, func() storage.Storage { return New() })
}
