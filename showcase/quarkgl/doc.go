// Package quarkgl is the small software 3D engine behind the showcase scene.
//
// It draws boxes and other triangle meshes with flat lighting into a
// caller-provided Target, and keeps a per-pixel pick buffer so the pointer can
// be resolved back to a mesh without a physics layer.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Frame + pick output.
//
// All math is float32. The render hot path does not allocate once the depth and
// pick buffers have been sized for the target.
package quarkgl
