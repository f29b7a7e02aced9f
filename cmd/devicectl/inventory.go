package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/micromdm/nanodevice/device"
	"github.com/micromdm/nanodevice/subsystem/inventory/storage"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// inventoryRow is a device found in an inventory document.
type inventoryRow struct {
	ID          string        `json:"id"`
	ProductName string        `json:"product_name"`
	Stored      string        `json:"stored_model,omitempty"`
	Device      device.Device `json:"-"`
	Name        string        `json:"model"`
}

// parseInventory reads the output of the inventory API: a JSON object of
// enrollment IDs to inventory values. Enrollments without a product name
// are skipped.
func parseInventory(doc []byte, r *device.Resolver) ([]inventoryRow, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.New("invalid JSON")
	}
	result := gjson.ParseBytes(doc)
	if !result.IsObject() {
		return nil, errors.New("expected JSON object")
	}
	var rows []inventoryRow
	result.ForEach(func(id, values gjson.Result) bool {
		product := values.Get(storage.KeyProductName).String()
		if product == "" {
			return true
		}
		d := r.Resolve(product)
		rows = append(rows, inventoryRow{
			ID:          id.String(),
			ProductName: product,
			Stored:      values.Get(storage.KeyModel).String(),
			Device:      d,
			Name:        d.String(),
		})
		return true
	})
	return rows, nil
}

func inventoryCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inventory <file>",
		Short: "Resolve the devices in an inventory document",
		Long: `Resolve the product names in a document returned by the /v1/inventory
API endpoint. Use "-" to read from standard input.`,
		Example: `  curl -u nanodevice:$KEY 'http://localhost:9005/v1/inventory?id=ID' | devicectl inventory -`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				doc []byte
				err error
			)
			if args[0] == "-" {
				doc, err = io.ReadAll(cmd.InOrStdin())
			} else {
				doc, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading inventory: %w", err)
			}
			rows, err := parseInventory(doc, device.NewResolver())
			if err != nil {
				return fmt.Errorf("parsing inventory: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, rows)
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%s  %-14s %s", bold(row.ID), row.ProductName, renderName(row.Device))
				if row.Stored != "" && row.Stored != row.Name {
					fmt.Fprintf(out, " %s", dim("(stored as "+row.Stored+")"))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}
