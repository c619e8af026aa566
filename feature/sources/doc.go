// Package sources loads the three raw device inventories consumed by the
// reconcile engine.
//
// Fetching devices live from the directory services is out of scope for the
// auditor; instead, the surrounding tooling exports each inventory as a JSON
// snapshot into the storage bucket:
//
//   - on-prem directory computers (authoritative list)
//   - cloud directory (Azure AD) devices
//   - device-management (Intune/MDM) devices
//
// Each snapshot is a plain JSON array with RFC 3339 timestamps. The Loader
// downloads and decodes all three concurrently; the CachedLoader adds a
// TTL-based cache with stampede protection so repeated HTTP-triggered audits
// do not re-download unchanged exports.
//
// A missing or malformed snapshot is an error here. Callers that want the
// "fetch failure means zero devices" behavior substitute an empty collection
// explicitly; the loader never does it silently.
package sources
