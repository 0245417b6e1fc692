// Package storage implements ports.KeyValueStore.
//
// SQLiteStore is the persistent store. It keeps every key in a single
// kv table of a local SQLite file, so the quote list and the selected
// filter survive restarts. MemoryStore is the session store: values
// live only as long as the process.
package storage
