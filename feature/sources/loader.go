package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"device-auditor/core/reconcile"
	"device-auditor/core/storage"

	"github.com/minio/minio-go/v7"
)

// Snapshots holds the three fully materialized inventories for one audit.
// The collections are read-only once loaded.
type Snapshots struct {
	// Authoritative is the on-prem directory computer list, in export order.
	Authoritative []reconcile.AuthoritativeDevice

	// Cloud is the cloud directory device list.
	Cloud []reconcile.CloudDevice

	// Managed is the device-management device list.
	Managed []reconcile.ManagedDevice

	// FetchedAt is when the snapshots were downloaded.
	FetchedAt time.Time
}

// Loader downloads and decodes inventory snapshots from the storage bucket.
type Loader struct {
	client storage.Client
	bucket string
	cfg    Config
}

// NewLoader creates a snapshot loader for the given bucket.
func NewLoader(client storage.Client, bucket string, cfg Config) *Loader {
	return &Loader{client: client, bucket: bucket, cfg: cfg}
}

// Load fetches and decodes all three snapshots concurrently. Any fetch or
// decode failure fails the whole load; partial inventories would skew the
// classification counts.
func (l *Loader) Load(ctx context.Context) (*Snapshots, error) {
	var (
		snap       Snapshots
		adErr      error
		cloudErr   error
		managedErr error
		wg         sync.WaitGroup
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		adErr = l.fetch(ctx, l.cfg.ADObject, &snap.Authoritative)
	}()

	go func() {
		defer wg.Done()
		cloudErr = l.fetch(ctx, l.cfg.CloudObject, &snap.Cloud)
	}()

	go func() {
		defer wg.Done()
		managedErr = l.fetch(ctx, l.cfg.ManagedObject, &snap.Managed)
	}()

	wg.Wait()

	if adErr != nil {
		return nil, adErr
	}
	if cloudErr != nil {
		return nil, cloudErr
	}
	if managedErr != nil {
		return nil, managedErr
	}

	snap.FetchedAt = time.Now()
	return &snap, nil
}

// fetch downloads one snapshot object and decodes its JSON array into out.
func (l *Loader) fetch(ctx context.Context, objectName string, out any) error {
	obj, err := l.client.GetObject(ctx, l.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to fetch snapshot %s: %w", objectName, err)
	}
	defer obj.Close()

	if err := json.NewDecoder(obj).Decode(out); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", objectName, err)
	}
	return nil
}
