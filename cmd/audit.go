package cmd

import (
	"context"
	"fmt"
	"time"

	"device-auditor/core/config"
	"device-auditor/core/database"
	"device-auditor/core/logger"
	"device-auditor/core/report"
	"device-auditor/core/storage"
	"device-auditor/feature/audit"
	"device-auditor/feature/sources"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the audit command
	auditSink      string
	auditOutputDir string
	auditDelayMS   int
	auditNoHistory bool
)

// auditCmd runs one enrollment audit from the terminal.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run one enrollment audit and write the report",
	Long: `Run one enrollment audit: load the inventory snapshots, reconcile them,
and write the CSV report to the configured sink.

Examples:
  # Audit with the configured sink (storage by default)
  device-auditor audit

  # Write the report to a local directory instead
  device-auditor audit --sink file --output ./reports

  # Watch per-record progress
  device-auditor audit --delay-ms 50`,
	RunE: runAuditCommand,
}

func init() {
	auditCmd.Flags().StringVar(&auditSink, "sink", "", "Report sink (storage, file); overrides configuration")
	auditCmd.Flags().StringVar(&auditOutputDir, "output", "", "Output directory for the file sink; overrides configuration")
	auditCmd.Flags().IntVar(&auditDelayMS, "delay-ms", -1, "Delay between records in milliseconds; overrides configuration")
	auditCmd.Flags().BoolVar(&auditNoHistory, "no-history", false, "Skip recording the run in the history database")

	RootCmd.AddCommand(auditCmd)
}

func runAuditCommand(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply flag overrides
	if auditSink != "" {
		cfg.Audit.Sink = auditSink
	}
	if auditOutputDir != "" {
		cfg.Audit.OutputDir = auditOutputDir
	}
	if auditDelayMS >= 0 {
		cfg.Audit.ProgressDelayMS = auditDelayMS
	}

	if !cfg.Audit.IsValidSink() {
		return fmt.Errorf("invalid audit sink: %q", cfg.Audit.Sink)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	// Snapshots are always fetched fresh for a one-shot run.
	srcCfg := cfg.Sources
	srcCfg.CacheTTLSeconds = 0
	loader := sources.NewLoader(client, cfg.Storage.Bucket, srcCfg)

	var sink report.Sink
	switch cfg.Audit.Sink {
	case audit.SinkFile:
		sink = report.NewFileSink(cfg.Audit.OutputDir)
	default:
		sink = report.NewStorageSink(client, cfg.Storage.Bucket, cfg.Audit.ReportPrefix, cfg.Audit.KeepReports)
	}

	var store *audit.Store
	if !auditNoHistory {
		if db, err := database.Connect(cfg.Database); err != nil {
			l.Warn("History database unavailable, run will not be recorded", zap.Error(err))
		} else {
			store = audit.NewStore(db)
			if err := store.Migrate(); err != nil {
				return fmt.Errorf("failed to prepare history schema: %w", err)
			}
		}
	}

	svc := audit.NewService(loader, sink, store, l)
	svc.SetProgressDelay(time.Duration(cfg.Audit.ProgressDelayMS) * time.Millisecond)

	detail, err := svc.RunAudit(ctx)
	if err != nil {
		return err
	}

	printAuditReport(l, detail)
	return nil
}

// printAuditReport prints the run outcome using the logger.
func printAuditReport(l *zap.Logger, detail *audit.RunDetail) {
	l.Info("Enrollment audit report",
		zap.Int("total_devices", detail.TotalDevices),
		zap.Int("healthy", detail.Healthy),
		zap.Int("unregistered", detail.Unregistered),
		zap.Int("registered_not_enrolled", detail.RegisteredNotEnrolled),
		zap.Int("enrolled_without_cloud_record", detail.EnrolledWithoutCloudRecord),
		zap.Int("skipped_records", detail.DefectCount),
		zap.String("report", detail.ReportLocation),
		zap.Duration("duration", time.Duration(detail.DurationMS)*time.Millisecond),
	)

	for _, d := range detail.Defects {
		l.Warn("Skipped record",
			zap.Int("index", d.Index),
			zap.String("name", d.Name),
			zap.String("reason", d.Reason),
		)
	}
}
