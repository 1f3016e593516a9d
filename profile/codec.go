// profile/codec.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package profile

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Save writes the profile to w as msgpack compressed with zstd, the format
// used for on-disk profile caches.
func (p FlightProfile) Save(w io.Writer) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	defer zw.Close()

	if err := msgpack.NewEncoder(zw).Encode(p); err != nil {
		return fmt.Errorf("failed to encode flight profile: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}

// LoadProfile reads a profile written by Save.
func LoadProfile(r io.Reader) (FlightProfile, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return FlightProfile{}, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var p FlightProfile
	if err := msgpack.NewDecoder(zr).Decode(&p); err != nil {
		return FlightProfile{}, fmt.Errorf("failed to decode flight profile: %w", err)
	}
	return p, nil
}
