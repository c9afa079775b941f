// File: pool/region_other.go
//go:build !unix

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// mapAnon falls back to the Go heap on platforms without mmap.
func mapAnon(size int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

func unmapAnon([]byte) error { return nil }
