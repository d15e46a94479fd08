// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering SQL scalar
// functions over embedding BLOBs, so cached stores can be inspected with
// plain SQL.
package engine
