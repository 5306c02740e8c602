// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import "sync/atomic"

// owner is a handle to a mantissa's backing byte buffer. A nil *owner means
// the mantissa lives in static storage (a package-level digit array, e.g.
// the mantissa of ONE) and is never written to.
//
// Unlike the Rc/Arc-backed Owner this is grounded on (see DESIGN.md "Shared
// mutable mantissa"), the refcount here is not kept in sync with every copy
// of a Scientific value made via a plain Go assignment -- Go has no copy
// hook to intercept that. It changes only through retain/release, and no
// code in the package currently calls retain, release, unique or
// capacity: every kernel builds its result in a fresh buffer and no
// buffer is written in place. The public *Assign methods likewise always
// produce a new mantissa rather than relying on unique().
type owner struct {
	refs int32
	cap  int
}

func newOwner(capacity int) *owner {
	return &owner{refs: 1, cap: capacity}
}

func (o *owner) retain() *owner {
	if o != nil {
		atomic.AddInt32(&o.refs, 1)
	}
	return o
}

func (o *owner) release() {
	if o != nil {
		atomic.AddInt32(&o.refs, -1)
	}
}

// unique reports whether o is non-nil and held by exactly one reference,
// i.e. whether its buffer may be written to in place.
func (o *owner) unique() bool {
	return o != nil && atomic.LoadInt32(&o.refs) == 1
}

// capacity returns the backing allocation size, or 0 for static mantissas.
func (o *owner) capacity() int {
	if o == nil {
		return 0
	}
	return o.cap
}
