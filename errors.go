// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

import "errors"

// ErrUnknownAlgorithm is returned by NewMonoid/NewGroup for a name that
// does not match any registered engine.
var ErrUnknownAlgorithm = errors.New("swag: unknown algorithm")

// ErrUnknownFunction names the case of a function name that has no
// operator constructor. No function in this module returns it: the
// benchmark CLI reports an unknown (algorithm, function) pair with its own
// formatted error.
var ErrUnknownFunction = errors.New("swag: unknown function")
