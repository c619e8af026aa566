package reconcile

import "time"

// Sentinel values substituted for fields of an absent source so every output
// row has a uniform, fully populated shape. The classification state is not
// stored on the record; it is recomputed from sentinel presence.
const (
	// NotRegistered fills cloud-directory fields when no cloud record matched.
	NotRegistered = "Not AAD Registered"
	// NotEnrolled fills device-management fields when no managed record matched.
	NotEnrolled = "Not MDM Enrolled"
)

// AuthoritativeDevice is one on-prem directory computer object. The
// authoritative list determines which devices exist and the output order.
type AuthoritativeDevice struct {
	// Name is the directory account name of the computer.
	Name string `json:"name"`

	// LastLogonDate is the last recorded logon, if any.
	LastLogonDate *time.Time `json:"lastLogonDate"`

	// Enabled reports whether the computer account is enabled.
	Enabled bool `json:"enabled"`

	// CanonicalID is the device identifier shared across all three sources
	// (the AD ObjectGUID). Empty values are data-quality defects.
	CanonicalID string `json:"objectGUID"`
}

// CloudDevice is one cloud-directory (Azure AD) device record.
type CloudDevice struct {
	DisplayName     string     `json:"displayName"`
	OSType          string     `json:"operatingSystem"`
	OSVersion       string     `json:"operatingSystemVersion"`
	LastDirSyncTime *time.Time `json:"lastDirSyncTime"`
	ApproxLastLogon *time.Time `json:"approximateLastLogonTimestamp"`

	// DeviceID occupies the same identifier space as
	// AuthoritativeDevice.CanonicalID.
	DeviceID string `json:"deviceId"`
}

// ManagedDevice is one device-management (Intune/MDM) record.
type ManagedDevice struct {
	DeviceName        string     `json:"deviceName"`
	OSVersion         string     `json:"osVersion"`
	LastSyncDateTime  *time.Time `json:"lastSyncDateTime"`
	UserPrincipalName string     `json:"userPrincipalName"`

	// AzureADDeviceID occupies the same identifier space as
	// AuthoritativeDevice.CanonicalID.
	AzureADDeviceID string `json:"azureADDeviceId"`
}

// JoinKey returns the device identifier used to match this record across
// sources. Pure field selection; no transformation is applied.
func (d AuthoritativeDevice) JoinKey() string { return d.CanonicalID }

// JoinKey returns the device identifier used to match this record across sources.
func (d CloudDevice) JoinKey() string { return d.DeviceID }

// JoinKey returns the device identifier used to match this record across sources.
func (d ManagedDevice) JoinKey() string { return d.AzureADDeviceID }

// State is the enrollment-health classification of a reconciled device.
type State string

const (
	// StateUnregistered means the device matched neither source.
	StateUnregistered State = "UNREGISTERED"
	// StateEnrolledWithoutCloudRecord means the device is managed but has no
	// cloud directory record. Anomalous.
	StateEnrolledWithoutCloudRecord State = "ENROLLED_WITHOUT_CLOUD_RECORD"
	// StateRegisteredNotEnrolled means the device is cloud-joined but not
	// under management.
	StateRegisteredNotEnrolled State = "REGISTERED_NOT_ENROLLED"
	// StateHealthy means the device is fully joined and enrolled.
	StateHealthy State = "HEALTHY"
)

// ReconciledDevice is the normalized output row for one authoritative device.
// Cross-source fields are strings so sentinel substitution and multi-match
// coalescing are representable. Immutable once constructed.
type ReconciledDevice struct {
	// Authoritative (on-prem) fields.
	Name          string `json:"name"`
	LastLogonDate string `json:"last_logon_date"`
	Enabled       bool   `json:"enabled"`

	// Cloud directory fields. All equal NotRegistered when no record matched.
	CloudDisplayName     string `json:"aad_display_name"`
	CloudOSType          string `json:"aad_os_type"`
	CloudOSVersion       string `json:"aad_os_version"`
	CloudLastDirSyncTime string `json:"aad_last_dir_sync_time"`
	CloudApproxLastLogon string `json:"aad_approximate_last_logon"`

	// Device-management fields. All equal NotEnrolled when no record matched.
	ManagedDeviceName        string `json:"mdm_device_name"`
	ManagedOSVersion         string `json:"mdm_os_version"`
	ManagedLastSyncDateTime  string `json:"mdm_last_sync_date_time"`
	ManagedUserPrincipalName string `json:"mdm_user_principal_name"`

	// CanonicalID is the shared device identifier, kept last in tabular output.
	CanonicalID string `json:"device_id"`
}

// State recomputes the enrollment-health classification from sentinel
// presence. Exactly one state applies to every reconciled device.
func (d ReconciledDevice) State() State {
	registered := d.CloudDisplayName != NotRegistered
	enrolled := d.ManagedDeviceName != NotEnrolled

	switch {
	case registered && enrolled:
		return StateHealthy
	case registered:
		return StateRegisteredNotEnrolled
	case enrolled:
		return StateEnrolledWithoutCloudRecord
	default:
		return StateUnregistered
	}
}

// Defect records an authoritative device that could not be reconciled because
// it lacks a usable canonical identifier. Defects are accumulated and reported
// at the end of a pass, never raised per-record.
type Defect struct {
	// Index is the position of the record in the authoritative input.
	Index int `json:"index"`

	// Name is the directory name of the defective record, if any.
	Name string `json:"name"`

	// Reason describes the data-quality problem.
	Reason string `json:"reason"`
}

// Summary provides aggregate counts for one reconciliation pass.
type Summary struct {
	// Total is the number of authoritative input records.
	Total int `json:"total"`

	// Healthy counts devices present in all three sources.
	Healthy int `json:"healthy"`

	// Unregistered counts devices matched in neither source.
	Unregistered int `json:"unregistered"`

	// RegisteredNotEnrolled counts cloud-joined but unmanaged devices.
	RegisteredNotEnrolled int `json:"registered_not_enrolled"`

	// EnrolledWithoutCloudRecord counts managed devices missing a cloud record.
	EnrolledWithoutCloudRecord int `json:"enrolled_without_cloud_record"`

	// Defects counts records skipped for missing identifiers.
	Defects int `json:"defects"`
}

// Result is the outcome of one reconciliation pass.
type Result struct {
	// Devices holds one row per valid authoritative record, in input order.
	Devices []ReconciledDevice `json:"devices"`

	// Defects lists the skipped records.
	Defects []Defect `json:"defects"`

	// Summary aggregates state counts.
	Summary Summary `json:"summary"`
}
