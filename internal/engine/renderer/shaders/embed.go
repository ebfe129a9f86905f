// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader is the vertex shader for lit meshes.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader is the fragment shader for lit meshes.
//
//go:embed phong.frag
var PhongFragmentShader string

// LineVertexShader is the vertex shader for wireframe overlays.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for wireframe overlays.
//
//go:embed line.frag
var LineFragmentShader string
