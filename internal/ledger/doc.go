// Package ledger persists the outcome of every processed clip in a small
// SQLite database.
//
// The ledger is what lets a re-run over the same recordings directory skip
// clips that already exported successfully. Records are keyed by the clip
// directory name; recording an outcome upserts, so a failed clip that
// later succeeds ends up completed.
package ledger
