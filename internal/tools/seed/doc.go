// Package seed writes the community demo dataset into a document store.
//
// A run is forward-only: contacts, then announcements with their comment
// thread, then polls, each write awaited before the next is issued. Nothing
// is read back, so running twice duplicates every document. The first
// failed write aborts the run and leaves earlier documents in place.
package seed
