// SPDX-License-Identifier: MIT
// Package lie: coordinate-storage abstraction.
// This file defines the capability interfaces a storage type may satisfy
// (readable, modifiable, mappable) and the two concrete backings used by the
// concrete group packages: an owning Array and a non-owning View.

package lie

// Storage is the minimal read capability: indexable access to a fixed
// number of float64 coordinates. Every group element exposes its
// coordinate buffer through this interface.
//
// Indexing outside [0, Len()) is a programmer error and panics like a
// slice access; public entry points validate sizes before indexing.
type Storage interface {
	// At returns coordinate i.
	At(i int) float64
	// Len returns the number of coordinates (the element's RepSize).
	Len() int
}

// MutableStorage is a Storage whose coordinates may be written.
// Mutating operations (SetIdentity, SetRandom, in-place normalization)
// require this capability; requesting it from a read-only storage is a
// compile-time interface error.
type MutableStorage interface {
	Storage
	// SetAt writes coordinate i.
	SetAt(i int, v float64)
}

// MappedStorage is a MutableStorage backed by contiguous memory that can
// be exposed as a raw slice, e.g. for zero-copy interop with gonum.
type MappedStorage interface {
	MutableStorage
	// Data returns the backing slice. The slice aliases the storage:
	// writes through it are visible to the owner and vice versa.
	Data() []float64
}

// Array is an owning storage: it holds its own coordinate buffer, and no
// other component writes to it. Constructors always copy, so two elements
// never share an Array.
type Array struct {
	data []float64
}

// NewArray allocates an owning buffer of n zero coordinates.
func NewArray(n int) *Array {
	return &Array{data: make([]float64, n)}
}

// ArrayOf allocates an owning buffer initialized with a copy of vals.
func ArrayOf(vals ...float64) *Array {
	d := make([]float64, len(vals))
	copy(d, vals)

	return &Array{data: d}
}

// At returns coordinate i.
func (a *Array) At(i int) float64 { return a.data[i] }

// Len returns the buffer length.
func (a *Array) Len() int { return len(a.data) }

// SetAt writes coordinate i.
func (a *Array) SetAt(i int, v float64) { a.data[i] = v }

// Data returns the backing slice of the owning buffer.
func (a *Array) Data() []float64 { return a.data }

// View is a non-owning storage: it aliases a caller-provided slice.
// The referenced memory must outlive the View (and any element built on
// it); concurrent writes to the underlying slice are the caller's to
// serialize.
type View struct {
	data []float64
}

// NewView wraps data without copying. Writes through the View are visible
// in data and vice versa.
func NewView(data []float64) *View {
	return &View{data: data}
}

// At returns coordinate i.
func (v *View) At(i int) float64 { return v.data[i] }

// Len returns the length of the aliased slice.
func (v *View) Len() int { return len(v.data) }

// SetAt writes coordinate i through to the aliased slice.
func (v *View) SetAt(i int, x float64) { v.data[i] = x }

// Data returns the aliased slice itself.
func (v *View) Data() []float64 { return v.data }
