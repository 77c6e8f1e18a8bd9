package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the learner profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print coins, streak, avatar and inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		p := e.profile.Snapshot()
		cat := e.profile.Catalog()

		avatar := p.SelectedAvatar
		if it, ok := cat.Lookup(p.SelectedAvatar); ok {
			avatar = it.Glyph() + " " + it.Name
		}
		last := p.LastPlayedDate
		if last == "" {
			last = "never"
		}

		fmt.Printf("Name:      %s\n", p.Name)
		fmt.Printf("Coins:     %d\n", p.Coins)
		fmt.Printf("Streak:    %d (last played %s)\n", p.Streak, last)
		fmt.Printf("Language:  %s\n", p.Language)
		fmt.Printf("Avatar:    %s\n", avatar)
		fmt.Printf("Inventory: %d items\n", len(p.Inventory))
		for _, id := range p.Inventory {
			it, ok := cat.Lookup(id)
			if !ok {
				continue
			}
			fmt.Printf("  %s %-24s %s\n", it.Glyph(), it.Name, it.Kind)
		}
		return nil
	},
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset coins, purchases and streak to a fresh profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("This erases coins, purchases and the streak. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.profile.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Profile reset.")
		return nil
	},
}

var profileNameCmd = &cobra.Command{
	Use:   "name <name>",
	Short: "Set the display name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.profile.SetName(cmd.Context(), strings.Join(args, " ")); err != nil {
			return err
		}
		fmt.Printf("Name set to %s.\n", e.profile.Snapshot().Name)
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

func init() {
	profileResetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileResetCmd)
	profileCmd.AddCommand(profileNameCmd)
}
