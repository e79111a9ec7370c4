// This file is part of Meru.
//
// Meru is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Meru is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Meru.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function and implement the
// error interface.
//
// The Errorf() pattern is what differentiates one curated error from another.
// The Is() function checks whether an error was created with a specific
// pattern and the Has() function checks whether the pattern appears anywhere
// in the chain of curated errors:
//
//	e := curated.Errorf("rewind: cursor %d out of range", 10)
//	f := curated.Errorf("playmode: %v", e)
//
//	curated.Is(f, "rewind: cursor %d out of range")  // false
//	curated.Has(f, "rewind: cursor %d out of range") // true
//
// Sentinel patterns should be stored as exported const strings in the package
// that produces them. For example, rewind.EmptyHistory.
//
// The Error() function normalises the message such that adjacent duplicate
// parts are removed. Parts are separated by the sub-string ": ". This means
// that wrapping an error with the same prefix, which happens naturally when
// errors pass through several functions of the same package, does not result
// in a stuttering error message:
//
//	rewind: rewind: history is empty
//
// becomes:
//
//	rewind: history is empty
//
// Curated errors will also unwrap to the first error value in the list of
// values. This means that the errors.Is() and errors.As() functions of the
// standard library work as expected for non-curated errors wrapped by a
// curated error.
package curated
