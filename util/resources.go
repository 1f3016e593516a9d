// util/resources.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"io"
	"io/fs"
	"path"

	"github.com/klauspost/compress/zstd"
)

// Unfortunately, unlike io.ReadCloser, the zstd Decoder's Close() method
// doesn't return an error, so we need to make our own custom ReadCloser
// interface.
type ResourceReadCloser interface {
	io.Reader
	Close()
}

type bytesReadCloser struct {
	*bytes.Reader
}

func (bytesReadCloser) Close() {}

// LoadResource provides a ResourceReadCloser to access the specified file
// from the given resources filesystem; if it's zstd compressed, the Reader
// will handle decompression transparently. It panics if the file is not
// found since missing embedded resources are pretty much impossible to
// recover from.
func LoadResource(filesystem fs.FS, filename string) ResourceReadCloser {
	f, err := fs.ReadFile(filesystem, filename)
	if err != nil {
		panic(err)
	}
	br := bytesReadCloser{bytes.NewReader(f)}

	if path.Ext(filename) == ".zst" {
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(0))
		if err != nil {
			panic(err)
		}
		return zr
	}

	return br
}

func LoadResourceBytes(filesystem fs.FS, filename string) []byte {
	r := LoadResource(filesystem, filename)
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}
	return b
}

// ResourceExists returns true if the specified resource file exists.
func ResourceExists(filesystem fs.FS, filename string) bool {
	_, err := fs.Stat(filesystem, filename)
	return err == nil
}
