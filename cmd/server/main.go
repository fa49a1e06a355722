// Package main is the entry point for the apparel gRPC server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-apparel/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-apparel",
	Short: "RPG apparel gRPC server",
	Long:  `rpg-apparel tracks the clothing and armor each character is wearing and serves equip/dequip over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
