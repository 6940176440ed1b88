// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

// Package savetest builds synthetic save-file buffers for tests.
// Fixtures are assembled with the same archive writer the encoder
// uses, so a fixture is always a structurally valid container unless
// the test asks for a specific defect (a missing required entry, a
// bad offset, truncation).
package savetest
