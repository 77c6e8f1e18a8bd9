package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "retomath",
	Short: "Math challenges for kids",
	Long:  "RetoMath: terminal math challenges for primary school (grades 1-5), with coins, a shop and daily streaks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RETOMATH_DB env var)")
	rootCmd.PersistentFlags().String("redis", "", "Redis URL for the profile (overrides RETOMATH_REDIS_URL env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
