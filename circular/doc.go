// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular provides sliding-window arithmetic helpers, frequently
// useful when iterating through sorted genomic data or rotating a fixed-size
// window over a larger index space (for example, the adaptive alignment
// band's ring buffer).
package circular
