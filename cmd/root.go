package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordgym",
	Short: "Vocabulary practice in the terminal",
	Long:  "WordGym — terminal trainer that drills your word list with six practice games.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
