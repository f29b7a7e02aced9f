package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devicectl",
		Short: "Identify Apple devices by hardware identifier",
		Long: `devicectl resolves Apple hardware identifiers (e.g. "iPhone14,2") into
devices and describes their capabilities.

Common workflows:
  devicectl resolve iPhone14,2        Describe a device
  devicectl catalog --group lidar     List devices in a group
  devicectl inventory inv.json        Resolve stored inventory`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(resolveCmd())
	cmd.AddCommand(catalogCmd())
	cmd.AddCommand(groupsCmd())
	cmd.AddCommand(batteryCmd())
	cmd.AddCommand(cpuCmd())
	cmd.AddCommand(inventoryCmd())

	return cmd
}

// Execute runs the devicectl root command.
func Execute(ctx context.Context, version string) error {
	return newRootCmd(version).ExecuteContext(ctx)
}
