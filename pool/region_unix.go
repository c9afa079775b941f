// File: pool/region_unix.go
//go:build unix

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"golang.org/x/sys/unix"
)

// mapAnon maps private anonymous memory; it falls back to the Go heap when
// the kernel refuses the mapping.
func mapAnon(size int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return make([]byte, size), false, nil
	}
	return data, true, nil
}

func unmapAnon(data []byte) error {
	return unix.Munmap(data)
}
