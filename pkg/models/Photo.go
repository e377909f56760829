package models

type Photo struct {
	Key          string
	Filename     string
	Size         int64
	LastModified string
	URL          string
}
