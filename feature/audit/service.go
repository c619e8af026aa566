package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"device-auditor/core/reconcile"
	"device-auditor/core/report"
	"device-auditor/core/storage"
	"device-auditor/feature/sources"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrHistoryDisabled is returned for history operations when no database is
// configured.
var ErrHistoryDisabled = errors.New("run history requires a database connection")

// Service runs enrollment audits and manages their history.
type Service struct {
	loader sources.SnapshotLoader
	sink   report.Sink
	store  *Store // nil when no database is configured
	logger *zap.Logger

	// Report browsing/deletion context; optional.
	lister report.Lister
	client storage.Client
	bucket string

	// delay paces progress output; cosmetic only.
	delay time.Duration
}

// NewService creates an audit service. store may be nil; history endpoints
// then report ErrHistoryDisabled.
func NewService(loader sources.SnapshotLoader, sink report.Sink, store *Store, logger *zap.Logger) *Service {
	return &Service{
		loader: loader,
		sink:   sink,
		store:  store,
		logger: logger,
	}
}

// SetReportAccess enables report listing and deletion against the bucket.
func (s *Service) SetReportAccess(client storage.Client, bucket string, lister report.Lister) {
	s.client = client
	s.bucket = bucket
	s.lister = lister
}

// SetProgressDelay paces per-record progress output. Zero disables pacing.
func (s *Service) SetProgressDelay(d time.Duration) {
	s.delay = d
}

// RunAudit executes one full audit: snapshots, reconciliation, report,
// history.
func (s *Service) RunAudit(ctx context.Context) (*RunDetail, error) {
	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}

	s.logger.Info("Starting reconciliation",
		zap.Int("onprem_devices", len(snap.Authoritative)),
		zap.Int("cloud_devices", len(snap.Cloud)),
		zap.Int("managed_devices", len(snap.Managed)),
	)

	started := time.Now()

	lastPercent := -1
	progress := reconcile.ReporterFunc(func(p reconcile.Progress) {
		// Log every tenth percent step, not every record.
		if p.Percent == lastPercent || p.Percent%10 != 0 {
			return
		}
		lastPercent = p.Percent
		s.logger.Debug("Reconciliation progress",
			zap.Int("percent", p.Percent),
			zap.Int("processed", p.Index+1),
			zap.Int("total", p.Total),
			zap.String("device", p.DisplayName),
		)
	})

	result, err := reconcile.Run(ctx, snap.Authoritative, snap.Cloud, snap.Managed, reconcile.Options{
		Progress: progress,
		Delay:    s.delay,
	})
	if err != nil {
		return nil, err
	}

	location, err := s.sink.Write(ctx, result.Devices)
	if err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	run := Run{
		ID:                         uuid.NewString(),
		StartedAt:                  started,
		DurationMS:                 time.Since(started).Milliseconds(),
		TotalDevices:               result.Summary.Total,
		Healthy:                    result.Summary.Healthy,
		Unregistered:               result.Summary.Unregistered,
		RegisteredNotEnrolled:      result.Summary.RegisteredNotEnrolled,
		EnrolledWithoutCloudRecord: result.Summary.EnrolledWithoutCloudRecord,
		DefectCount:                result.Summary.Defects,
		ReportLocation:             location,
	}

	if len(result.Defects) > 0 {
		detail, err := json.Marshal(result.Defects)
		if err != nil {
			return nil, fmt.Errorf("failed to encode defects: %w", err)
		}
		run.DefectDetail = string(detail)
	}

	if s.store != nil {
		// History is secondary to the report itself; a failed insert is not
		// a failed audit.
		if err := s.store.Save(ctx, &run); err != nil {
			s.logger.Warn("Failed to persist run history", zap.Error(err))
		}
	}

	s.logger.Info("Audit complete",
		zap.String("run_id", run.ID),
		zap.Int("total", run.TotalDevices),
		zap.Int("healthy", run.Healthy),
		zap.Int("unregistered", run.Unregistered),
		zap.Int("registered_not_enrolled", run.RegisteredNotEnrolled),
		zap.Int("enrolled_without_cloud_record", run.EnrolledWithoutCloudRecord),
		zap.Int("defects", run.DefectCount),
		zap.String("report", location),
	)

	return &RunDetail{Run: run, Defects: result.Defects}, nil
}

// ListRuns returns recent run records, newest first.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = 20
	}
	return s.store.Recent(ctx, limit)
}

// GetRun returns one run with its defect list expanded.
func (s *Service) GetRun(ctx context.Context, id string) (*RunDetail, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	run, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	defects, err := run.Defects()
	if err != nil {
		return nil, fmt.Errorf("failed to decode defects for run %s: %w", id, err)
	}
	return &RunDetail{Run: *run, Defects: defects}, nil
}

// DeleteRun removes a run record and, when report access is configured, its
// stored report object.
func (s *Service) DeleteRun(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrHistoryDisabled
	}
	run, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	if run.ReportLocation != "" && s.client != nil {
		if err := s.client.RemoveObject(ctx, s.bucket, run.ReportLocation, minio.RemoveObjectOptions{}); err != nil {
			// Record is gone; an orphaned report object is worth a warning,
			// not a failure.
			s.logger.Warn("Failed to remove report object",
				zap.String("object", run.ReportLocation), zap.Error(err))
		}
	}
	return nil
}

// ListReports enumerates stored report objects, newest first.
func (s *Service) ListReports(ctx context.Context) ([]string, error) {
	if s.lister == nil {
		return nil, errors.New("report listing requires the storage sink")
	}
	return s.lister.List(ctx)
}
