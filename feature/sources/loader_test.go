package sources

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"device-auditor/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		ADObject:      "snapshots/ad-computers.json",
		CloudObject:   "snapshots/entra-devices.json",
		ManagedObject: "snapshots/intune-devices.json",
	}
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

// TestLoader_Load verifies all three snapshots decode, including timestamps.
func TestLoader_Load(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/ad-computers.json", mock.Anything).
		Return(body(`[
			{"name":"PC01","objectGUID":"G1","enabled":true,"lastLogonDate":"2026-08-20T08:30:00Z"},
			{"name":"PC02","objectGUID":"G2","enabled":false,"lastLogonDate":null}
		]`), nil)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/entra-devices.json", mock.Anything).
		Return(body(`[
			{"displayName":"PC01","deviceId":"G1","operatingSystem":"Windows","operatingSystemVersion":"10.0.22631"}
		]`), nil)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/intune-devices.json", mock.Anything).
		Return(body(`[
			{"deviceName":"PC01","azureADDeviceId":"G1","userPrincipalName":"alice@corp.example","lastSyncDateTime":"2026-08-28T23:00:00Z"}
		]`), nil)

	loader := NewLoader(client, "device-audit", testConfig())

	snap, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Authoritative, 2)
	assert.Equal(t, "PC01", snap.Authoritative[0].Name)
	assert.Equal(t, "G1", snap.Authoritative[0].CanonicalID)
	require.NotNil(t, snap.Authoritative[0].LastLogonDate)
	assert.Equal(t, time.Date(2026, 8, 20, 8, 30, 0, 0, time.UTC), snap.Authoritative[0].LastLogonDate.UTC())
	assert.Nil(t, snap.Authoritative[1].LastLogonDate)

	require.Len(t, snap.Cloud, 1)
	assert.Equal(t, "Windows", snap.Cloud[0].OSType)

	require.Len(t, snap.Managed, 1)
	assert.Equal(t, "alice@corp.example", snap.Managed[0].UserPrincipalName)

	assert.False(t, snap.FetchedAt.IsZero())
}

// TestLoader_FetchError verifies a failing snapshot fails the load.
func TestLoader_FetchError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/ad-computers.json", mock.Anything).
		Return(nil, fmt.Errorf("object not found"))
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/entra-devices.json", mock.Anything).
		Return(body(`[]`), nil)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/intune-devices.json", mock.Anything).
		Return(body(`[]`), nil)

	loader := NewLoader(client, "device-audit", testConfig())

	snap, err := loader.Load(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "snapshots/ad-computers.json")
	assert.Nil(t, snap)
}

// TestLoader_MalformedSnapshot verifies decode failures surface the object name.
func TestLoader_MalformedSnapshot(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/ad-computers.json", mock.Anything).
		Return(body(`[]`), nil)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/entra-devices.json", mock.Anything).
		Return(body(`{not valid json`), nil)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/intune-devices.json", mock.Anything).
		Return(body(`[]`), nil)

	loader := NewLoader(client, "device-audit", testConfig())

	_, err := loader.Load(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "snapshots/entra-devices.json")
}

// TestLoader_EmptySnapshots verifies empty exports load as zero devices, not
// errors.
func TestLoader_EmptySnapshots(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/ad-computers.json", mock.Anything).
		Return(body(`[]`), nil)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/entra-devices.json", mock.Anything).
		Return(body(`[]`), nil)
	client.On("GetObject", mock.Anything, "device-audit", "snapshots/intune-devices.json", mock.Anything).
		Return(body(`[]`), nil)

	loader := NewLoader(client, "device-audit", testConfig())

	snap, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Authoritative)
	assert.Empty(t, snap.Cloud)
	assert.Empty(t, snap.Managed)
}
