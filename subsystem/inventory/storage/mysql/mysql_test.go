package mysql

import (
	"os"
	"testing"

	"github.com/micromdm/nanodevice/subsystem/inventory/storage"
	"github.com/micromdm/nanodevice/subsystem/inventory/storage/test"

	_ "github.com/go-sql-driver/mysql"
)

func TestMySQLStorage(t *testing.T) {
	testDSN := os.Getenv("NANODEVICE_MYSQL_STORAGE_TEST_DSN")
	if testDSN == "" {
		t.Skip("NANODEVICE_MYSQL_STORAGE_TEST_DSN not set")
	}

	s, err := New(WithDSN(testDSN))
	if err != nil {
		t.Fatal(err)
	}

	test.TestStorage(t, func() storage.Storage { return s })
}
