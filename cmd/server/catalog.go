package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the apparel catalog",
	Long:  `Print every catalog item with its position, weight, value and armor rating.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeCatalog(cmd.OutOrStdout(), catalogFormat)
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFormat, "format", "yaml", "Output format: yaml or json")
}

// catalogEntry is the printed form of one catalog item
type catalogEntry struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Kind      string `json:"kind" yaml:"kind"`
	Position  string `json:"position" yaml:"position"`
	Weight    uint16 `json:"weight" yaml:"weight"`
	Value     uint16 `json:"value" yaml:"value"`
	BaseArmor uint16 `json:"base_armor,omitempty" yaml:"base_armor,omitempty"`
}

func catalogEntries() []catalogEntry {
	items := apparel.Catalog()
	entries := make([]catalogEntry, len(items))
	for i, a := range items {
		intrinsic := a.Intrinsic()
		entries[i] = catalogEntry{
			ID:       a.GetID(),
			Name:     a.Name(),
			Kind:     string(intrinsic.Kind),
			Position: a.Position().String(),
			Weight:   a.Weight(),
			Value:    a.Value(),
		}
		if armor, ok := intrinsic.Armor(); ok {
			entries[i].BaseArmor = armor.Armor()
		}
	}
	return entries
}

func writeCatalog(w io.Writer, format string) error {
	entries := catalogEntries()

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
