package main

import (
	"fmt"
	"path/filepath"

	storageinv "github.com/micromdm/nanodevice/subsystem/inventory/storage"
	storageinvdiskv "github.com/micromdm/nanodevice/subsystem/inventory/storage/diskv"
	storageinvinmem "github.com/micromdm/nanodevice/subsystem/inventory/storage/inmem"
	storageinvmysql "github.com/micromdm/nanodevice/subsystem/inventory/storage/mysql"

	_ "github.com/go-sql-driver/mysql"
)

type storageConfig struct {
	inventory storageinv.Storage
}

func parseStorage(name, dsn string) (*storageConfig, error) {
	switch name {
	case "inmem":
		return &storageConfig{inventory: storageinvinmem.New()}, nil
	case "file", "diskv":
		if dsn == "" {
			dsn = "db"
		}
		return &storageConfig{
			inventory: storageinvdiskv.New(filepath.Join(dsn, "inventory")),
		}, nil
	case "mysql":
		inv, err := storageinvmysql.New(storageinvmysql.WithDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("creating mysql storage: %w", err)
		}
		return &storageConfig{inventory: inv}, nil
	}
	return nil, fmt.Errorf("unknown storage: %s", name)
}
