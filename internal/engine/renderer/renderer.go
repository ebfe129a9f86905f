// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubedrop/internal/engine/camera"
	"github.com/Faultbox/cubedrop/internal/engine/debug"
	"github.com/Faultbox/cubedrop/internal/engine/lighting"
	"github.com/Faultbox/cubedrop/internal/engine/mesh"
	"github.com/Faultbox/cubedrop/internal/engine/renderer/shaders"
	"github.com/Faultbox/cubedrop/internal/engine/scene"
	"github.com/Faultbox/cubedrop/internal/engine/shader"
	"github.com/Faultbox/cubedrop/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// ShowBounds draws wireframe boxes around translucent objects.
	ShowBounds bool
}

// gpuMesh is a mesh uploaded to the GPU.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	// Lit mesh shader
	program         uint32
	locViewProj     int32
	locModel        int32
	locNormalMatrix int32
	locCameraPos    int32
	locAmbient      int32
	locLightDirs    int32
	locLightColors  int32
	locLightCount   int32
	locColor        int32
	locShininess    int32
	locOpacity      int32

	// Wireframe shader
	lineProgram     uint32
	locLineViewProj int32
	locLineColor    int32
	lineVAO         uint32
	lineVBO         uint32

	meshes map[*mesh.Mesh]*gpuMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[*mesh.Mesh]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	var err error
	r.program, err = shader.CompileProgram(shaders.PhongVertexShader, shaders.PhongFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("phong shader: %w", err)
	}
	missing := shader.Bind(r.program, map[string]*int32{
		"uViewProj":     &r.locViewProj,
		"uModel":        &r.locModel,
		"uNormalMatrix": &r.locNormalMatrix,
		"uCameraPos":    &r.locCameraPos,
		"uAmbient":      &r.locAmbient,
		"uLightDirs":    &r.locLightDirs,
		"uLightColors":  &r.locLightColors,
		"uLightCount":   &r.locLightCount,
		"uColor":        &r.locColor,
		"uShininess":    &r.locShininess,
		"uOpacity":      &r.locOpacity,
	})
	if len(missing) > 0 {
		logger.Warn("inactive phong uniforms", zap.Strings("names", missing))
	}

	r.lineProgram, err = shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		gl.DeleteProgram(r.program)
		return nil, fmt.Errorf("line shader: %w", err)
	}
	r.locLineViewProj = shader.GetUniform(r.lineProgram, "uViewProj")
	r.locLineColor = shader.GetUniform(r.lineProgram, "uColor")
	r.createLineBuffers()

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Upload copies a mesh to the GPU. Uploading the same mesh twice is a no-op.
func (r *Renderer) Upload(m *mesh.Mesh) error {
	if m == nil {
		return errors.New("nil mesh")
	}
	if _, ok := r.meshes[m]; ok {
		return nil
	}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("mesh %q is empty", m.Name)
	}

	g := &gpuMesh{indexCount: int32(len(m.Indices))}
	stride := int32(unsafe.Sizeof(mesh.Vertex{}))

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)
	// TexCoord (location = 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 24)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.meshes[m] = g
	logger.Debug("mesh uploaded",
		zap.String("mesh", m.Name),
		zap.Uint32("vao", g.vao),
		zap.Int("triangles", m.TriangleCount()),
	)
	return nil
}

// Release frees the GPU buffers of a mesh.
func (r *Renderer) Release(m *mesh.Mesh) {
	g, ok := r.meshes[m]
	if !ok {
		return
	}
	deleteMesh(g)
	delete(r.meshes, m)
	logger.Debug("mesh released", zap.String("mesh", m.Name))
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the output size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// SetShowBounds toggles the wireframe overlay.
func (r *Renderer) SetShowBounds(show bool) {
	r.config.ShowBounds = show
}

// ShowBounds reports whether the wireframe overlay is on.
func (r *Renderer) ShowBounds() bool {
	return r.config.ShowBounds
}

// Render draws the scene as seen by cam. Opaque objects are drawn first, then
// translucent ones blended on top without writing depth.
func (r *Renderer) Render(s *scene.Scene, cam *camera.PerspectiveCamera) {
	gl.ClearColor(s.Background[0], s.Background[1], s.Background[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := cam.ViewProjection()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	camPos := cam.Position.Array()
	gl.Uniform3fv(r.locCameraPos, 1, &camPos[0])
	r.setLights(&s.Lights)

	for _, obj := range s.Opaque() {
		r.drawObject(obj)
	}

	transparent := s.Transparent()
	if len(transparent) > 0 {
		gl.Enable(gl.BLEND)
		gl.DepthMask(false)
		gl.Disable(gl.CULL_FACE)
		for _, obj := range transparent {
			r.drawObject(obj)
		}
		gl.Enable(gl.CULL_FACE)
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}

	if r.config.ShowBounds {
		r.drawBounds(transparent, viewProj.Ptr())
	}

	gl.UseProgram(0)
}

func (r *Renderer) setLights(rig *lighting.Rig) {
	ambient := rig.AmbientColor()
	gl.Uniform3fv(r.locAmbient, 1, &ambient[0])

	dirs, colors, count := rig.Uniforms()
	gl.Uniform3fv(r.locLightDirs, lighting.MaxDirectionalLights, &dirs[0])
	gl.Uniform3fv(r.locLightColors, lighting.MaxDirectionalLights, &colors[0])
	gl.Uniform1i(r.locLightCount, count)
}

func (r *Renderer) drawObject(obj *scene.Object) {
	if !obj.Visible {
		return
	}
	g, ok := r.meshes[obj.Mesh]
	if !ok {
		return
	}

	model := obj.ModelMatrix()
	normal := model.NormalMatrix()
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.UniformMatrix3fv(r.locNormalMatrix, 1, false, &normal[0])

	mat := obj.Material
	gl.Uniform3fv(r.locColor, 1, &mat.Color[0])
	gl.Uniform1f(r.locShininess, mat.Shininess)
	gl.Uniform1f(r.locOpacity, mat.Opacity)

	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawBounds(objs []*scene.Object, viewProj *float32) {
	if len(objs) == 0 {
		return
	}

	var vertices []float32
	for _, obj := range objs {
		if obj.Mesh == nil {
			continue
		}
		vertices = append(vertices, debug.WireframeFromBounds(obj.Mesh.Bounds, obj.ModelMatrix())...)
	}
	if len(vertices) == 0 {
		return
	}

	gl.UseProgram(r.lineProgram)
	gl.UniformMatrix4fv(r.locLineViewProj, 1, false, viewProj)
	gl.Uniform4f(r.locLineColor, 1, 1, 1, 0.6)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (r *Renderer) createLineBuffers() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)

	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, debug.BBoxWireframeVertexCount*3*4, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Close releases every GPU object the renderer still owns and reports any
// pending OpenGL error.
func (r *Renderer) Close() error {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))

	for m, g := range r.meshes {
		deleteMesh(g)
		delete(r.meshes, m)
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
		r.lineVAO = 0
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
		r.lineVBO = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
		r.lineProgram = 0
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl error 0x%04x during teardown", code)
	}
	return nil
}

func deleteMesh(g *gpuMesh) {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}
