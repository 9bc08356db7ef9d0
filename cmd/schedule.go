package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/planpath/app"
	"github.com/kilianp07/planpath/config"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Compute a schedule from the configured activity file",
	RunE:  runSchedule,
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Input.Validate(); err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()
	return svc.RunBatch()
}
