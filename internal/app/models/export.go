package models

import "time"

// MergedTable is the result set of the merge procedure in source column order.
type MergedTable struct {
	Columns []string
	Rows    [][]interface{}
}

type StoredObject struct {
	Bucket       string
	Name         string
	Size         int64
	LastModified time.Time
}
