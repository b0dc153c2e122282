package main

import (
	"github.com/spf13/cobra"

	"github.com/edgefleet/nmconfig/configurator"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Identify the local host and install its connection files",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		sourceDir, err := flags.GetString("source-dir")
		if err != nil {
			return err
		}
		destinationDir, err := flags.GetString("destination-dir")
		if err != nil {
			return err
		}

		nics, err := configurator.ListNetworkInterfaces()
		if err != nil {
			return err
		}

		return configurator.Apply(sourceDir, destinationDir, nics)
	},
}

func init() {
	applyCmd.Flags().StringP("source-dir", "s", "_out", "Directory holding the host mapping and the per-host connection files")
	applyCmd.Flags().StringP("destination-dir", "d", "/etc/NetworkManager/system-connections", "Directory to install the identified host's connection files into")
}
