// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

type loggerConfiguration struct {
	Level  string
	Output string
	Format string
}

// pkg/search package configs.
type searchConfiguration struct {
	// Algorithm used on sorted slices. See AlgorithmBinary and AlgorithmExponential.
	Algorithm string
	// VerifyMonotonic runs search.VerifyMonotonic before predicate searches.
	VerifyMonotonic bool
}
