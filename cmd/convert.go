package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertOutput string // destination path for the converted file, "" = stdout

// convertCmd rewrites a classic configuration file in the YAML format.
var convertCmd = &cobra.Command{
	Use:   "convert <config-file>",
	Short: "Convert a classic configuration file to YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadConfigClassic(args[0])
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		data, err := MarshalConfigYAML(cfg)
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		if convertOutput == "" {
			fmt.Print(string(data))
			return
		}
		if err := os.WriteFile(convertOutput, data, 0o644); err != nil {
			logrus.Fatalf("Error: %v", err)
		}
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write the YAML configuration to this file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}
