// Package report persists reconciled device sequences as CSV reports.
//
// The reconcile engine hands over the full ordered record set after a pass
// completes; this package owns all serialization, naming, and placement
// concerns. Two sinks are provided:
//
//   - StorageSink uploads the report to the object-storage bucket under a
//     configurable prefix, with optional retention pruning of old reports.
//   - FileSink writes the report to a local directory (CLI usage).
//
// Column order is fixed: authoritative fields, cloud-directory fields,
// device-management fields, device identifier last. Sentinel substitution
// happens upstream in the engine, so every cell is already populated.
package report
