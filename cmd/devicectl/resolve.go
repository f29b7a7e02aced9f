package main

import (
	"fmt"

	"github.com/micromdm/nanodevice/device"

	"github.com/spf13/cobra"
)

func resolveCmd() *cobra.Command {
	var (
		platform string
		simModel string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <identifier>...",
		Short: "Resolve hardware identifiers into devices",
		Long: `Resolve one or more hardware identifiers. Simulator identifiers
(i386, x86_64 and arm64) resolve to the device named by --simulator-model or
the SIMULATOR_MODEL_IDENTIFIER environment variable.`,
		Example: `  devicectl resolve iPhone14,2
  devicectl resolve arm64 --simulator-model iPad13,1
  devicectl resolve AppleTV5,3 iPad99,9 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := device.ParsePlatform(platform)
			if err != nil {
				return err
			}
			opts := []device.Option{device.WithPlatform(p)}
			if simModel != "" {
				opts = append(opts, device.WithSimulatorModel(simModel))
			}
			r := device.NewResolver(opts...)

			out := cmd.OutOrStdout()
			var infos []device.Info
			for i, id := range args {
				d := r.Resolve(id)
				if jsonOut {
					infos = append(infos, d.Info())
					continue
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				renderInfo(out, d)
			}
			if jsonOut {
				return writeJSON(out, infos)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "ios", "Platform for simulator placeholders (ios, tvos, watchos, visionos)")
	cmd.Flags().StringVar(&simModel, "simulator-model", "", "Hardware identifier of simulated devices")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}
