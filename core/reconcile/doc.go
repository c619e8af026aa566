// Package reconcile correlates device inventory across three sources of truth:
// the on-premises directory, the cloud directory (Azure AD / Entra ID), and the
// device-management service (Intune/MDM).
//
// The on-prem inventory is authoritative: it drives iteration and determines
// the output row count. Records from the other two sources are matched against
// it by a shared device identifier and every on-prem device is classified into
// one of four enrollment-health states:
//
//   - Unregistered: no cloud record, no management record
//   - EnrolledWithoutCloudRecord: managed but missing from the cloud directory
//   - RegisteredNotEnrolled: cloud-joined but not under management
//   - Healthy: present in all three sources
//
// # Architecture
//
// The package consists of three parts:
//
// 1. Index: O(1) lookup tables over the cloud and managed record sets, keyed
// by device identifier. Multiple records sharing a key are kept in input
// order; nothing is deduplicated.
//
// 2. Engine: a single ordered pass over the authoritative list. Each record is
// looked up in both indexes, classified, and emitted as exactly one
// ReconciledDevice. Fields from an absent source are filled with fixed
// sentinel strings so every output row has the same shape.
//
// 3. Progress: an optional observer notified after each record with the
// current completion fraction. Reporting is fire-and-forget.
//
// The engine performs no I/O and holds no state between runs. Records lacking
// a device identifier are skipped and reported as defects at the end of the
// pass rather than aborting the run.
//
// # Usage Example
//
//	result, err := reconcile.Run(ctx, onprem, cloud, managed, reconcile.Options{
//	    Progress: reconcile.ReporterFunc(func(p reconcile.Progress) {
//	        log.Printf("%d%% (%s)", p.Percent, p.DisplayName)
//	    }),
//	})
//
// # Identifier Assumption
//
// The AD ObjectGUID, Azure AD DeviceID, and Intune AzureADDeviceID are assumed
// to carry the same value for one physical device. The engine cannot verify
// this; if the convention does not hold in a deployment, devices silently
// classify as Unregistered.
package reconcile
