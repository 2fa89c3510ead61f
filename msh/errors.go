// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "github.com/cpmech/gosl/io"

// AssetError indicates a missing or malformed geometry source. It is
// unrecoverable for the object in question and must not be retried.
type AssetError struct {
	Path   string
	Reason string
	Err    error // underlying error, may be nil
}

func (e *AssetError) Error() string {
	if e.Err != nil {
		return io.Sf("asset %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return io.Sf("asset %q: %s", e.Path, e.Reason)
}

func (e *AssetError) Unwrap() error { return e.Err }
