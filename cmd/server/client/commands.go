package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-apparel/internal/handlers/wardrobe/v1alpha1"
)

var (
	itemID   string
	position string
	kind     string
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show what a character is wearing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd.OutOrStdout(), v1alpha1.MethodGetPlacement, map[string]any{
			v1alpha1.FieldCharacterID: characterID,
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip",
	Short: "Equip a catalog item on a character",
	Long: `Equip a catalog item. The item goes into the slot it is made for;
whatever was worn there is reported as displaced.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd.OutOrStdout(), v1alpha1.MethodEquip, map[string]any{
			v1alpha1.FieldCharacterID: characterID,
			v1alpha1.FieldItemID:      itemID,
		})
	},
}

var dequipCmd = &cobra.Command{
	Use:   "dequip",
	Short: "Remove whatever a character wears in one position",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd.OutOrStdout(), v1alpha1.MethodDequip, map[string]any{
			v1alpha1.FieldCharacterID: characterID,
			v1alpha1.FieldPosition:    position,
		})
	},
}

var listCatalogCmd = &cobra.Command{
	Use:   "list-catalog",
	Short: "List catalog items known to the server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd.OutOrStdout(), v1alpha1.MethodListCatalog, map[string]any{
			v1alpha1.FieldPosition: position,
			v1alpha1.FieldKind:     kind,
		})
	},
}

func init() {
	equipCmd.Flags().StringVar(&itemID, "item", "", "Catalog item ID (required)")
	_ = equipCmd.MarkFlagRequired("item")

	dequipCmd.Flags().StringVar(&position, "position", "", "head, torso, hands or feet (required)")
	_ = dequipCmd.MarkFlagRequired("position")

	listCatalogCmd.Flags().StringVar(&position, "position", "", "Only items worn in this position")
	listCatalogCmd.Flags().StringVar(&kind, "kind", "", "Only clothing or armor")
}
