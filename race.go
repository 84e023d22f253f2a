// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package asq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests that move non-atomic values
// through atomix-ordered rings, which the detector reports as false positives.
const RaceEnabled = true
