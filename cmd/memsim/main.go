package main

import (
	"os"

	"memlist/internal/logx"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "memsim",
	Short: "Memory space simulator",
	Long:  "Runs malloc/free/defrag scripts against a simulated memory space tracked by linked lists.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed: ", err)
		os.Exit(1)
	}
}
