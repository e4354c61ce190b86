package cmd

import (
	"fmt"
	"os"

	"github.com/kpurdon/siteconf/logging"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "siteconf",
		Short: "siteconf - Settings for the blog's static-site generator",
		Long: `siteconf keeps the blog's generator settings as YAML site files. It validates
them, renders them into the generator's pelicanconf.py and previews them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			jsonLogs, _ := cmd.Flags().GetBool("log-json")
			logging.Configure(logging.Config{
				Level:   level,
				Output:  cmd.ErrOrStderr(),
				Console: !jsonLogs,
			})
		},
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(
		newListCmd(),
		newValidateCmd(),
		newRenderCmd(),
		newBuildCmd(),
		newServeCmd(),
	)

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
