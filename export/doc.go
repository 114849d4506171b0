// Package export writes resolved configuration snapshots to a relational
// store as rows.
//
// A snapshot captures every key defined on any tier of a project cascade,
// flattened to the segmented key form with the resolved value and the
// winning tier recorded per row:
//
//	store, err := export.Open("confstack.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	rows := export.RowsFromProject(cfg)
//	id, err := store.WriteSnapshot(ctx, cfg.Identity(), rows)
//
// Storage is SQLite via database/sql; each snapshot is written in a single
// transaction.
package export
