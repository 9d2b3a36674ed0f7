// Copyright 2026 Buildstock Contributors
// This file is part of Panelsampler, an electrical panel sampler for building stock models
//
// Panelsampler is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Panelsampler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Panelsampler. If not, see <http://www.gnu.org/licenses/>.

package panel

import "fmt"

// UnsupportedCategoryError reports a building attribute that has no bucket
// in the controlled vocabulary of the probability tables.
type UnsupportedCategoryError struct {
	Field string
	Value string
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("unsupported %s %q", e.Field, e.Value)
}

// TranslationError reports an outcome label that cannot be turned into a
// number.
type TranslationError struct {
	Label string
	Cause error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot translate outcome %q to a value: %v", e.Label, e.Cause)
	}
	return fmt.Sprintf("cannot translate outcome %q to a value", e.Label)
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}
