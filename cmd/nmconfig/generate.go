package main

import (
	"github.com/spf13/cobra"

	"github.com/edgefleet/nmconfig/generator"
	"github.com/edgefleet/nmconfig/netstate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate connection files and a host mapping from network state documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		configDir, err := flags.GetString("config-dir")
		if err != nil {
			return err
		}
		outputDir, err := flags.GetString("output-dir")
		if err != nil {
			return err
		}

		return generator.New(netstate.NewEngine()).Run(configDir, outputDir)
	},
}

func init() {
	generateCmd.Flags().StringP("config-dir", "c", "config", "Directory holding one network state document per host")
	generateCmd.Flags().StringP("output-dir", "o", "_out", "Directory to store the generated connection files and host mapping in")
}
