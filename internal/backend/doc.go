// Package backend knows the fixed set of shader compiler targets and turns one
// (source, DefineSet, backend) triple into an output file name and a compiler
// command line.
package backend
