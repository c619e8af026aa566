package cmd

import (
	"fmt"
	"os"

	"device-auditor/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "device-auditor",
	Short: "Device Auditor Service",
	Long: `Device Auditor reconciles the on-prem directory, the cloud directory,
and device management into a single enrollment health report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug config so CLI errors get readable
		// ISO8601 timestamps instead of the production epoch encoding.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
