// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import "github.com/cpmech/gosl/io"

// Error indicates a cache storage failure. Callers degrade gracefully to
// recompute-without-caching instead of failing the solve.
type Error struct {
	Op   string // "create", "read", "decode", "encode", "write", "rename"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return io.Sf("cache %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
