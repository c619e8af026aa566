package report

import (
	"encoding/csv"
	"io"

	"device-auditor/core/reconcile"
	"device-auditor/core/utils"
)

// Header is the fixed CSV column order.
var Header = []string{
	"Name",
	"LastLogonDate",
	"Enabled",
	"AADDisplayName",
	"AADOperatingSystem",
	"AADOSVersion",
	"AADLastDirSyncTime",
	"AADApproximateLastLogon",
	"MDMDeviceName",
	"MDMOSVersion",
	"MDMLastSyncDateTime",
	"MDMUserPrincipalName",
	"DeviceID",
}

// WriteCSV serializes the reconciled device sequence to w, one row per
// device, preserving sequence order.
func WriteCSV(w io.Writer, devices []reconcile.ReconciledDevice) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, d := range devices {
		row := []string{
			d.Name,
			d.LastLogonDate,
			utils.FormatBool(d.Enabled),
			d.CloudDisplayName,
			d.CloudOSType,
			d.CloudOSVersion,
			d.CloudLastDirSyncTime,
			d.CloudApproxLastLogon,
			d.ManagedDeviceName,
			d.ManagedOSVersion,
			d.ManagedLastSyncDateTime,
			d.ManagedUserPrincipalName,
			d.CanonicalID,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
