// Package main provides the entry point for the harvest-csv CLI application.
package main

import (
	"fmt"
	"os"

	"canefield/harvest-csv/cmd/add"
	"canefield/harvest-csv/cmd/configcmd"
	"canefield/harvest-csv/cmd/db"
	"canefield/harvest-csv/cmd/export"
	"canefield/harvest-csv/cmd/ingest"
	"canefield/harvest-csv/cmd/list"
	"canefield/harvest-csv/cmd/remove"
	reportcmd "canefield/harvest-csv/cmd/report"
	"canefield/harvest-csv/cmd/root"
	"canefield/harvest-csv/cmd/show"
	statscmd "canefield/harvest-csv/cmd/stats"
)

func init() {
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(show.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(statscmd.Cmd)
	root.Cmd.AddCommand(reportcmd.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(db.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
