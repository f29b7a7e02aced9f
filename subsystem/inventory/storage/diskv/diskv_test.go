package diskv

import (
	"context"
	"testing"

	"github.com/micromdm/nanodevice/subsystem/inventory/storage"
	"github.com/micromdm/nanodevice/subsystem/inventory/storage/test"
)

func TestDiskv(t *testing.T) {
	test.TestStorage(t, func() storage.Storage { return New(t.TempDir()) })
}

func TestDiskvReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	err := New(dir).StoreInventoryValues(ctx, "AA11BB22", storage.Values{storage.KeyModel: "iPhone 4"})
	if err != nil {
		t.Fatal(err)
	}

	idVals, err := New(dir).RetrieveInventory(ctx, &storage.SearchOptions{IDs: []string{"AA11BB22"}})
	if err != nil {
		t.Fatal(err)
	}
	if have, _ := idVals["AA11BB22"].String(storage.KeyModel); have != "iPhone 4" {
		t.Errorf("have: %v, want: %v", have, "iPhone 4")
	}
}
