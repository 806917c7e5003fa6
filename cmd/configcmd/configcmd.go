// Package configcmd inspects and bootstraps the application configuration
package configcmd

import (
	"fmt"
	"path/filepath"

	"canefield/harvest-csv/cmd/root"
	"canefield/harvest-csv/internal/config"

	"github.com/spf13/cobra"
)

// Cmd represents the config command group
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or bootstrap the application configuration",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Run:   showFunc,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file with the current effective values",
	Run:   initFunc,
}

func showFunc(cmd *cobra.Command, args []string) {
	data, err := config.Dump(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error rendering configuration: %v", err)
	}
	fmt.Print(string(data))
}

func initFunc(cmd *cobra.Command, args []string) {
	path := filepath.Join(".harvest-csv", "config.yaml")
	if err := config.WriteConfigFile(root.Cfg, path); err != nil {
		root.Log.Fatalf("Error writing config file: %v", err)
	}
	root.Log.Infof("Wrote config file %s", path)
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(initCmd)
}
