package main

import (
	"fmt"

	"github.com/micromdm/nanodevice/device"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	var (
		group   string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List known devices",
		Example: `  devicectl catalog
  devicectl catalog --group face-id
  devicectl catalog --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var devices []device.Device
			if group != "" {
				g, ok := device.GroupByName(group)
				if !ok {
					return fmt.Errorf("unknown group: %s", group)
				}
				devices = g.Devices()
			} else {
				for _, m := range device.Models() {
					devices = append(devices, m.Device())
				}
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				infos := make([]device.Info, len(devices))
				for i, d := range devices {
					infos[i] = d.Info()
				}
				return writeJSON(out, infos)
			}
			for _, d := range devices {
				fmt.Fprintf(out, "%-36s %s\n", renderName(d), dim(d.CPU()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Only list devices in this group")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func groupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List device groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range device.GroupNames() {
				g, _ := device.GroupByName(name)
				fmt.Fprintf(out, "%-24s %s\n", bold(name), dim(fmt.Sprintf("%d devices", len(g.Devices()))))
			}
			return nil
		},
	}
}
