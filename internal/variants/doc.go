// Package variants turns a variant descriptor into the ordered list of define
// combinations a shader source must be compiled with.
//
// A descriptor is a list of levels. Each level lists mutually exclusive define
// options; the reserved option "_" selects nothing on that level. Expand walks
// the levels depth-first and yields one DefineSet per leaf, varying the last
// level fastest.
package variants
