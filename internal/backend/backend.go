// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the compiler targets. There are two argument grammars:
// the modern MonoGame effect compiler (mgfxc) shared by the DirectX and OpenGL
// profiles, and the legacy DirectX effect compiler (fxc) used for FNA.
package backend

// Family selects the command-line grammar of a backend.
type Family int

const (
	// Modern backends use mgfxc with a /Profile switch and a combined /Defines list.
	Modern Family = iota
	// Legacy backends use fxc with a /T target and one /D switch per define.
	Legacy
)

func (f Family) String() string {
	switch f {
	case Modern:
		return "modern"
	case Legacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Backend is one compiler/profile combination.
type Backend struct {
	// Name identifies the backend in logs.
	Name string
	// Subfolder is the directory under the scan root that receives the scripts.
	Subfolder string
	Family    Family
	// Tool is the compiler executable.
	Tool string
	// Profile is the /Profile value for modern backends and the /T value for
	// legacy ones.
	Profile string
}

var (
	MGDX11 = Backend{Name: "MGDX11", Subfolder: "MonoGameDX11", Family: Modern, Tool: "mgfxc", Profile: "DirectX_11"}
	MGOGL  = Backend{Name: "MGOGL", Subfolder: "MonoGameOGL", Family: Modern, Tool: "mgfxc", Profile: "OpenGL"}
	FNA    = Backend{Name: "FNA", Subfolder: "FNA", Family: Legacy, Tool: "fxc", Profile: "fx_2_0"}
)

// All returns the backends in processing order.
func All() []Backend {
	return []Backend{MGDX11, MGOGL, FNA}
}

func (b Backend) String() string {
	return b.Name
}
