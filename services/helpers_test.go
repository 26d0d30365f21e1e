package services

import "bytes"

// bytesReader wraps a byte slice for excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// f64 returns a pointer to the given float, for optional numeric fields.
func f64(v float64) *float64 {
	return &v
}
