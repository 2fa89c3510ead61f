// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache memoises solve results keyed by (object identity, material
// parameters, indentation depth). Entries are persisted to content-addressed
// files with an atomic, write-once discipline so concurrent solvers need no
// locking.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/gelsense/gelfem/fld"
)

// keyQuantum is the precision to which numeric key components are rounded
// before hashing. The calibration search explores a 1e-4 parameter grid, so
// finer floating-point noise must not cause cache misses.
const keyQuantum = 1e-4

// Entry is one cached solve result
type Entry struct {
	Depth   *fld.DepthField
	Markers *fld.MarkerField
}

// Key composes a deterministic, collision-resistant cache key from the
// object identity and the quantised numeric inputs
func Key(objectID string, E, nu, depth float64) string {
	h := sha256.New()
	h.Write([]byte(objectID))
	h.Write([]byte{0})
	var buf [8]byte
	for _, v := range []float64{E, nu, depth} {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(math.Round(v/keyQuantum))))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Cache is a directory-backed result store
type Cache struct {
	dir string
}

// New opens (creating if needed) a cache rooted at dir
func New(dir string) (o *Cache, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{"create", dir, err}
	}
	return &Cache{dir: dir}, nil
}

// Get returns the entry stored under key, or ok=false on a miss
func (o *Cache) Get(key string) (ent *Entry, ok bool, err error) {
	b, err := os.ReadFile(o.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, &Error{"read", o.path(key), err}
	}
	ent, err = decode(b)
	if err != nil {
		return nil, false, &Error{"decode", o.path(key), err}
	}
	return ent, true, nil
}

// Put persists an entry under key. The write is atomic (temporary file then
// rename) and write-once: if another solver already stored this key, the
// new entry is discarded; outputs are deterministic and interchangeable.
func (o *Cache) Put(key string, ent *Entry) (err error) {
	dst := o.path(key)
	if _, err := os.Stat(dst); err == nil {
		return nil // first writer wins
	}
	b, err := encode(ent)
	if err != nil {
		return &Error{"encode", dst, err}
	}
	tmp, err := os.CreateTemp(o.dir, ".put-*")
	if err != nil {
		return &Error{"write", dst, err}
	}
	if _, err = tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &Error{"write", dst, err}
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &Error{"write", dst, err}
	}
	if _, err := os.Stat(dst); err == nil {
		os.Remove(tmp.Name()) // lost the race; keep the first entry
		return nil
	}
	if err = os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return &Error{"rename", dst, err}
	}
	return nil
}

func (o *Cache) path(key string) string {
	return filepath.Join(o.dir, key+".fields")
}

// codec //////////////////////////////////////////////////////////////////////////////////////////

// entryData is the portable on-disk form of an Entry. float64 grid data
// round-trips exactly through CBOR.
type entryData struct {
	DepthRows, DepthCols   int
	Depth                  []float64
	MarkerRows, MarkerCols int
	MarkerU, MarkerV       []float64
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

func encode(ent *Entry) ([]byte, error) {
	d := entryData{
		DepthRows: ent.Depth.Nrow, DepthCols: ent.Depth.Ncol,
		Depth:      ent.Depth.Z.RawMatrix().Data,
		MarkerRows: ent.Markers.Nrow, MarkerCols: ent.Markers.Ncol,
		MarkerU: ent.Markers.U.RawMatrix().Data,
		MarkerV: ent.Markers.V.RawMatrix().Data,
	}
	return encMode.Marshal(&d)
}

func decode(b []byte) (ent *Entry, err error) {
	var d entryData
	if err = cbor.Unmarshal(b, &d); err != nil {
		return
	}
	ent = &Entry{
		Depth: &fld.DepthField{
			Nrow: d.DepthRows, Ncol: d.DepthCols,
			Z: mat.NewDense(d.DepthRows, d.DepthCols, d.Depth),
		},
		Markers: &fld.MarkerField{
			Nrow: d.MarkerRows, Ncol: d.MarkerCols,
			U: mat.NewDense(d.MarkerRows, d.MarkerCols, d.MarkerU),
			V: mat.NewDense(d.MarkerRows, d.MarkerCols, d.MarkerV),
		},
	}
	return
}
