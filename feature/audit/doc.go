// Package audit orchestrates enrollment audits end to end.
//
// One audit is: load the three inventory snapshots, run the reconcile engine
// over them, hand the full ordered result to the report sink, and persist a
// run record (counts, defects, report location) to the database when one is
// configured. The database is optional, as everywhere in this service; an
// audit without history persistence still produces its report.
//
// # HTTP Endpoints
//
//   - POST   /audit/run        : Runs an audit and returns its summary.
//   - GET    /audit/runs       : Lists recent runs (supports ?limit=N).
//   - GET    /audit/runs/:id   : Returns one run including its defect list.
//   - DELETE /audit/runs/:id   : Deletes a run record and its stored report.
//   - GET    /audit/reports    : Lists stored report objects, newest first.
package audit
