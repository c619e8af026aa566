package audit

import (
	"time"

	"device-auditor/core/report"
	"device-auditor/core/storage"
	"device-auditor/feature/sources"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the audit feature: snapshot loader (with cache), storage
// report sink, run-history store, and HTTP handler. db may be nil.
func NewFeature(client storage.Client, bucket string, log *zap.Logger, db *gorm.DB, cfg Config, srcCfg sources.Config) *Feature {
	loader := sources.NewCachedLoader(
		sources.NewLoader(client, bucket, srcCfg),
		time.Duration(srcCfg.CacheTTLSeconds)*time.Second,
	)
	sink := report.NewStorageSink(client, bucket, cfg.ReportPrefix, cfg.KeepReports)

	var store *Store
	if db != nil {
		store = NewStore(db)
	}

	svc := NewService(loader, sink, store, log)
	svc.SetReportAccess(client, bucket, sink)
	svc.SetProgressDelay(time.Duration(cfg.ProgressDelayMS) * time.Millisecond)

	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "audit"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes and prepares the history schema.
func (f *Feature) Load(app fiber.Router) error {
	if f.service.store != nil {
		if err := f.service.store.Migrate(); err != nil {
			return err
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}
