package models

import "time"

/*
StoreEntry is a single object record from a bucket listing.
*/
type StoreEntry struct {
	Key          string
	Size         int64
	LastModified time.Time
}
