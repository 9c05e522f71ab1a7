// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/hopblocks/hopping"
)

// Version is the snapshot layout written by Marshal.
const Version = 1

var (
	// ErrUnsupportedVersion indicates a snapshot written by an unknown layout.
	ErrUnsupportedVersion = errors.New("codec: unsupported snapshot version")

	// ErrCorruptSnapshot indicates a structurally invalid snapshot.
	ErrCorruptSnapshot = errors.New("codec: corrupt snapshot")
)

// snapshot is the on-wire layout; integer keys keep it compact.
type snapshot struct {
	Version  uint16    `cbor:"1,keyasint"`
	NumSites int       `cbor:"2,keyasint"`
	Blocks   [][]int32 `cbor:"3,keyasint"` // per family: row, col interleaved
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(fmt.Sprintf("codec: cbor enc mode: %v", err))
	}
	// Blocks routinely exceed the default array limit (131072 elements).
	if decMode, err = (cbor.DecOptions{MaxArrayElements: math.MaxInt32}).DecMode(); err != nil {
		panic(fmt.Sprintf("codec: cbor dec mode: %v", err))
	}
}

// Marshal encodes s as a CBOR snapshot. The store is validated first, so
// anything Marshal accepts Unmarshal accepts too.
func Marshal(s *hopping.Store) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("could not encode hopping snapshot: %w", err)
	}
	data, err := encMode.Marshal(toSnapshot(s))
	if err != nil {
		return nil, fmt.Errorf("could not encode hopping snapshot: %w", err)
	}

	return data, nil
}

// Unmarshal decodes a snapshot and returns a validated store.
func Unmarshal(data []byte) (*hopping.Store, error) {
	var snap snapshot
	if err := decMode.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("could not decode hopping snapshot: %w", err)
	}

	return fromSnapshot(snap)
}

// Write streams a snapshot of s to w. Like Marshal it refuses stores that
// fail validation.
func Write(w io.Writer, s *hopping.Store) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("could not write hopping snapshot: %w", err)
	}
	if err := encMode.NewEncoder(w).Encode(toSnapshot(s)); err != nil {
		return fmt.Errorf("could not write hopping snapshot: %w", err)
	}

	return nil
}

// Read decodes one snapshot from r.
func Read(r io.Reader) (*hopping.Store, error) {
	var snap snapshot
	if err := decMode.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("could not read hopping snapshot: %w", err)
	}

	return fromSnapshot(snap)
}

func toSnapshot(s *hopping.Store) snapshot {
	snap := snapshot{
		Version:  Version,
		NumSites: s.NumSites(),
		Blocks:   make([][]int32, s.NumFamilies()),
	}
	for id, b := range s.All() {
		flat := make([]int32, 0, 2*len(b))
		for _, c := range b {
			flat = append(flat, c.Row, c.Col)
		}
		snap.Blocks[id] = flat
	}

	return snap
}

func fromSnapshot(snap snapshot) (*hopping.Store, error) {
	if snap.Version != Version {
		return nil, fmt.Errorf("snapshot version %d (want %d): %w", snap.Version, Version, ErrUnsupportedVersion)
	}

	blocks := make(hopping.Blocks, len(snap.Blocks))
	for id, flat := range snap.Blocks {
		if len(flat)%2 != 0 {
			return nil, fmt.Errorf("family %d has odd coordinate count %d: %w", id, len(flat), ErrCorruptSnapshot)
		}
		if len(flat) == 0 {
			continue
		}
		b := make(hopping.Block, len(flat)/2)
		for k := range b {
			b[k] = hopping.COO{Row: flat[2*k], Col: flat[2*k+1]}
		}
		blocks[id] = b
	}

	s, err := hopping.FromBlocks(snap.NumSites, blocks)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot failed validation: %w", err)
	}

	return s, nil
}
