package reconcile

import (
	"context"
	"strings"
	"time"

	"device-auditor/core/utils"
)

// Options configures a reconciliation pass.
type Options struct {
	// Progress receives a notification after each authoritative record.
	// Nil disables reporting.
	Progress Reporter

	// Delay is an optional pause between records, used only to pace
	// interactive progress output. Zero (the default) disables it; it is
	// never a correctness requirement.
	Delay time.Duration
}

// Run reconciles the authoritative on-prem device list against the cloud and
// managed record sets. It builds both indexes in one pass each, then iterates
// the authoritative list in order, emitting exactly one ReconciledDevice per
// record that carries a canonical identifier. Records without one are skipped
// and accumulated as defects.
//
// Run performs no I/O; the only error it can return is ctx cancellation,
// in which case the partial result built so far is returned alongside it.
func Run(ctx context.Context, onprem []AuthoritativeDevice, cloud []CloudDevice, managed []ManagedDevice, opts Options) (*Result, error) {
	cloudIx := BuildIndex(cloud, CloudDevice.JoinKey)
	managedIx := BuildIndex(managed, ManagedDevice.JoinKey)
	return runIndexed(ctx, onprem, cloudIx, managedIx, opts)
}

// runIndexed is the core pass over the authoritative list with pre-built
// indexes. Each record's classification is independent of every other's.
func runIndexed(ctx context.Context, onprem []AuthoritativeDevice, cloudIx Index[CloudDevice], managedIx Index[ManagedDevice], opts Options) (*Result, error) {
	result := &Result{
		Devices: make([]ReconciledDevice, 0, len(onprem)),
		Summary: Summary{Total: len(onprem)},
	}

	for i, rec := range onprem {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		key := rec.JoinKey()
		if key == "" {
			result.Defects = append(result.Defects, Defect{
				Index:  i,
				Name:   rec.Name,
				Reason: "missing canonical identifier",
			})
			result.Summary.Defects++
			notify(opts, i, len(onprem), rec.Name)
			continue
		}

		row := buildRow(rec, cloudIx.Lookup(key), managedIx.Lookup(key))
		result.Devices = append(result.Devices, row)

		switch row.State() {
		case StateHealthy:
			result.Summary.Healthy++
		case StateUnregistered:
			result.Summary.Unregistered++
		case StateRegisteredNotEnrolled:
			result.Summary.RegisteredNotEnrolled++
		case StateEnrolledWithoutCloudRecord:
			result.Summary.EnrolledWithoutCloudRecord++
		}

		notify(opts, i, len(onprem), rec.Name)

		if opts.Delay > 0 {
			select {
			case <-time.After(opts.Delay):
			case <-ctx.Done():
				return result, ctx.Err()
			}
		}
	}

	return result, nil
}

// buildRow combines one authoritative record with its (possibly empty) match
// lists into a fully populated output row.
func buildRow(rec AuthoritativeDevice, cloudMatches []CloudDevice, managedMatches []ManagedDevice) ReconciledDevice {
	row := ReconciledDevice{
		Name:          rec.Name,
		LastLogonDate: utils.FormatTime(rec.LastLogonDate),
		Enabled:       rec.Enabled,
		CanonicalID:   rec.CanonicalID,
	}

	if len(cloudMatches) == 0 {
		row.CloudDisplayName = NotRegistered
		row.CloudOSType = NotRegistered
		row.CloudOSVersion = NotRegistered
		row.CloudLastDirSyncTime = NotRegistered
		row.CloudApproxLastLogon = NotRegistered
	} else {
		row.CloudDisplayName = joinField(cloudMatches, func(d CloudDevice) string { return d.DisplayName })
		row.CloudOSType = joinField(cloudMatches, func(d CloudDevice) string { return d.OSType })
		row.CloudOSVersion = joinField(cloudMatches, func(d CloudDevice) string { return d.OSVersion })
		row.CloudLastDirSyncTime = joinField(cloudMatches, func(d CloudDevice) string { return utils.FormatTime(d.LastDirSyncTime) })
		row.CloudApproxLastLogon = joinField(cloudMatches, func(d CloudDevice) string { return utils.FormatTime(d.ApproxLastLogon) })
	}

	if len(managedMatches) == 0 {
		row.ManagedDeviceName = NotEnrolled
		row.ManagedOSVersion = NotEnrolled
		row.ManagedLastSyncDateTime = NotEnrolled
		row.ManagedUserPrincipalName = NotEnrolled
	} else {
		row.ManagedDeviceName = joinField(managedMatches, func(d ManagedDevice) string { return d.DeviceName })
		row.ManagedOSVersion = joinField(managedMatches, func(d ManagedDevice) string { return d.OSVersion })
		row.ManagedLastSyncDateTime = joinField(managedMatches, func(d ManagedDevice) string { return utils.FormatTime(d.LastSyncDateTime) })
		row.ManagedUserPrincipalName = joinField(managedMatches, func(d ManagedDevice) string { return d.UserPrincipalName })
	}

	return row
}

// joinField coalesces one field across all matches with ", ", preserving the
// source list's order. Ambiguous matches are surfaced, not resolved.
func joinField[T any](matches []T, f func(T) string) string {
	if len(matches) == 1 {
		return f(matches[0])
	}
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = f(m)
	}
	return strings.Join(parts, ", ")
}

// notify delivers a progress event if a reporter is configured.
func notify(opts Options, index, total int, name string) {
	if opts.Progress == nil {
		return
	}
	opts.Progress.Report(Progress{
		Index:       index,
		Total:       total,
		Percent:     percentDone(index, total),
		DisplayName: name,
	})
}
