package main

import (
	"fmt"

	"github.com/micromdm/nanodevice/device"

	"github.com/spf13/cobra"
)

func batteryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battery",
		Short: "Work with battery states",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "compare <state> <state>",
		Short: "Compare two battery states",
		Long: `Compare two battery states. States are "full", "charging:N" or
"unplugged:N" where N is a level from 0 to 100.`,
		Example: `  devicectl battery compare charging:40 unplugged:80
  devicectl battery compare full unplugged:100`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := device.ParseBatteryState(args[0])
			if err != nil {
				return err
			}
			b, err := device.ParseBatteryState(args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			renderOrder(out, args[0], args[1], a.Compare(b), a.Equal(b))
			fmt.Fprintln(out, dim(a.String()))
			fmt.Fprintln(out, dim(b.String()))
			return nil
		},
	})
	return cmd
}

func cpuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpu",
		Short: "Work with processors",
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "compare <cpu> <cpu>",
		Short:   "Compare the release order of two processors",
		Example: `  devicectl cpu compare "A15 Bionic" M1`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := device.ParseCPU(args[0])
			if err != nil {
				return err
			}
			b, err := device.ParseCPU(args[1])
			if err != nil {
				return err
			}
			renderOrder(cmd.OutOrStdout(), a.String(), b.String(), a.Compare(b), a == b)
			return nil
		},
	})
	return cmd
}
