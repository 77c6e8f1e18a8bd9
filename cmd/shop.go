package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/retomath/internal/catalog"
	"github.com/abhisek/retomath/internal/profile"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse and buy avatars and stickers",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items with price and ownership",
	RunE: func(cmd *cobra.Command, args []string) error {
		kindVal, _ := cmd.Flags().GetString("kind")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		p := e.profile.Snapshot()
		cat := e.profile.Catalog()

		kinds := []catalog.Kind{catalog.KindAvatar, catalog.KindSticker}
		if kindVal != "" {
			k := catalog.Kind(strings.ToLower(kindVal))
			if k != catalog.KindAvatar && k != catalog.KindSticker {
				return fmt.Errorf("invalid kind %q: must be avatar or sticker", kindVal)
			}
			kinds = []catalog.Kind{k}
		}

		fmt.Printf("Coins: %d\n", p.Coins)
		for _, k := range kinds {
			fmt.Println()
			fmt.Printf("%s\n", strings.ToUpper(string(k))+"S")
			fmt.Println(strings.Repeat("─", 56))
			for _, it := range cat.ByKind(k) {
				fmt.Printf("%s  %-16s  %-22s  %s\n", it.Glyph(), it.ID, it.Name, itemStatus(p, it))
			}
		}
		return nil
	},
}

func itemStatus(p profile.Profile, it catalog.Item) string {
	switch {
	case p.SelectedAvatar == it.ID:
		return "equipped"
	case p.Owns(it.ID):
		return "owned"
	case p.Coins < it.Price:
		return fmt.Sprintf("%d coins (need %d more)", it.Price, it.Price-p.Coins)
	}
	return fmt.Sprintf("%d coins", it.Price)
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <id>",
	Short: "Buy an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		item, err := e.profile.Purchase(cmd.Context(), args[0])
		switch {
		case errors.Is(err, profile.ErrInsufficientFunds):
			have := e.profile.Snapshot().Coins
			return fmt.Errorf("%s costs %d coins, you have %d", item.Name, item.Price, have)
		case errors.Is(err, profile.ErrAlreadyOwned):
			fmt.Printf("You already own %s %s.\n", item.Glyph(), item.Name)
			return nil
		case err != nil:
			return err
		}
		fmt.Printf("Bought %s %s for %d coins. %d left.\n",
			item.Glyph(), item.Name, item.Price, e.profile.Snapshot().Coins)
		return nil
	},
}

var shopEquipCmd = &cobra.Command{
	Use:   "equip <id>",
	Short: "Select an owned avatar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.profile.Equip(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("equip %s: %w", args[0], err)
		}
		it, _ := e.profile.Catalog().Lookup(args[0])
		fmt.Printf("Avatar set to %s %s.\n", it.Glyph(), it.Name)
		return nil
	},
}

func init() {
	shopListCmd.Flags().StringP("kind", "k", "", "Only show avatar or sticker items")

	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopEquipCmd)
}
