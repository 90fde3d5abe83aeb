// Package borealis is a compatibility layer between an application's
// native record model and Snowflake's row/columnar model.
//
// An application works with unordered key/value records whose field
// names follow its own convention; the remote engine works with
// ordered, schema-positioned rows whose column names follow another.
// Borealis translates between the two without hardcoding either
// convention: the key mapping is configuration, supplied as an
// encode/decode function pair at session or table construction.
//
// # Packages
//
//   - keymap: the encode/decode key-mapping contract and the named
//     built-in conventions
//   - record: the application-side record and storage-side row models
//   - schema: schema descriptors, inference from sample records and
//     derivation from Go struct types
//   - convert: record-to-row and row-to-record conversion
//   - colname: parsing and normalization of raw column identifiers,
//     including quoted aggregate names
//   - table: the dynamic, name-resolving facade over a remote table
//   - session: Snowflake connection lifecycle and eager operations
//
// # Quick Start
//
//	cfg, err := config.Load("borealis.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sess, err := session.Open(ctx, cfg, session.WithKeyMapper(keymap.CamelUpper))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	employees := sess.Table("EMPLOYEES")
//	if col, err := employees.Col(ctx, "firstName"); err == nil && col != nil {
//	    fmt.Println(col) // EMPLOYEES.FIRST_NAME
//	}
package borealis
