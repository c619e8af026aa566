package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"device-auditor/core/reconcile"
	"device-auditor/core/storage"

	"github.com/minio/minio-go/v7"
)

// nameLayout produces lexicographically sortable report names, so retention
// pruning can order reports by name alone.
const nameLayout = "20060102-150405"

// Sink accepts the full ordered sequence of reconciled devices after a pass
// completes and persists it. It returns the location of the written report.
type Sink interface {
	Write(ctx context.Context, devices []reconcile.ReconciledDevice) (string, error)
}

// Lister enumerates previously written reports, newest first. Only sinks with
// a browsable backing store implement it.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// reportName builds the timestamped report file name.
func reportName(now time.Time) string {
	return fmt.Sprintf("enrollment-report-%s.csv", now.Format(nameLayout))
}

// StorageSink uploads CSV reports to the object-storage bucket.
type StorageSink struct {
	client storage.Client
	bucket string
	prefix string

	// keep limits how many reports are retained under the prefix; 0 disables
	// pruning.
	keep int

	// now is swappable for tests.
	now func() time.Time
}

// NewStorageSink creates a sink writing under prefix in the given bucket.
// keep > 0 prunes the oldest reports beyond that count after each write.
func NewStorageSink(client storage.Client, bucket, prefix string, keep int) *StorageSink {
	return &StorageSink{
		client: client,
		bucket: bucket,
		prefix: strings.TrimSuffix(prefix, "/"),
		keep:   keep,
		now:    time.Now,
	}
}

// Write uploads the report and applies retention. The returned location is
// the object name within the bucket.
func (s *StorageSink) Write(ctx context.Context, devices []reconcile.ReconciledDevice) (string, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, devices); err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	objectName := s.prefix + "/" + reportName(s.now())

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	if s.keep > 0 {
		if err := s.prune(ctx); err != nil {
			// The report itself is written; retention failure is secondary.
			return objectName, fmt.Errorf("report written but pruning failed: %w", err)
		}
	}

	return objectName, nil
}

// List returns the report object names currently under the prefix, newest
// first.
func (s *StorageSink) List(ctx context.Context) ([]string, error) {
	names, err := s.listSorted(ctx)
	if err != nil {
		return nil, err
	}
	// listSorted is oldest-first; reverse for presentation.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names, nil
}

// prune removes the oldest reports beyond the retention count in one batch.
func (s *StorageSink) prune(ctx context.Context) error {
	names, err := s.listSorted(ctx)
	if err != nil {
		return err
	}
	if len(names) <= s.keep {
		return nil
	}

	stale := names[:len(names)-s.keep]
	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, name := range stale {
		objectsCh <- minio.ObjectInfo{Key: name}
	}
	close(objectsCh)

	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			return fmt.Errorf("failed to remove %s: %w", rerr.ObjectName, rerr.Err)
		}
	}
	return nil
}

// listSorted lists report objects under the prefix, oldest first. Report
// names embed a sortable timestamp, so name order is chronological order.
func (s *StorageSink) listSorted(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if strings.HasSuffix(obj.Key, ".csv") {
			names = append(names, obj.Key)
		}
	}
	sort.Strings(names)
	return names, nil
}

// FileSink writes CSV reports to a local directory.
type FileSink struct {
	dir string
	now func() time.Time
}

// NewFileSink creates a sink writing into dir, creating it if needed.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir, now: time.Now}
}

// Write persists the report and returns its path.
func (s *FileSink) Write(ctx context.Context, devices []reconcile.ReconciledDevice) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(s.dir, reportName(s.now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, devices); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}
