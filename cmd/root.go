package cmd

import "github.com/spf13/cobra"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "planpath",
	Short: "CPM/PERT project scheduler",
	Long: "planpath computes project schedules from activities with precedence\n" +
		"relations and three-point duration estimates, using the Critical Path\n" +
		"Method and PERT probability analysis.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.AddCommand(scheduleCmd, serveCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
