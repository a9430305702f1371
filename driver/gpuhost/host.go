// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

// Package gpuhost provides a tilectx display driver that presents
// through a host application's GPU surface.
//
// The driver never creates a GPU device of its own: the host attaches a
// gpucontext.TextureDrawer (for example from a gogpu application's draw
// context) and tilectx uploads composed frames as textures and draws
// them.  Import for side effects, then attach the host before creating
// contexts:
//
//	import "github.com/tilectx/tilectx/driver/gpuhost"
//
//	gpuhost.AttachHost(dc.AsTextureDrawer(), width, height)
//	ctx, err := tilectx.NewWindow(width, height,
//	    tilectx.WithRenderer(tilectx.RendererGPU))
package gpuhost

import (
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/tilectx/tilectx"
)

func init() {
	tilectx.Register("gpu", 100, New, Available)
}

// hostState is the process-wide host attachment.
var hostState struct {
	mu     sync.RWMutex
	drawer gpucontext.TextureDrawer
	width  int
	height int
}

// AttachHost installs the host draw context and the current surface
// size.  Call it again after the host surface resizes.
func AttachHost(drawer gpucontext.TextureDrawer, width, height int) {
	hostState.mu.Lock()
	defer hostState.mu.Unlock()
	hostState.drawer = drawer
	hostState.width = width
	hostState.height = height
}

// DetachHost removes the host attachment.  Displays created earlier
// fail their next Present.
func DetachHost() {
	hostState.mu.Lock()
	defer hostState.mu.Unlock()
	hostState.drawer = nil
	hostState.width = 0
	hostState.height = 0
}

// host returns the current attachment.
func host() (gpucontext.TextureDrawer, int, int) {
	hostState.mu.RLock()
	defer hostState.mu.RUnlock()
	return hostState.drawer, hostState.width, hostState.height
}

// Available reports whether the driver can present: a host must be
// attached and a GPU adapter reachable.
func Available() bool {
	drawer, _, _ := host()
	if drawer == nil {
		return false
	}
	_, err := probeAdapter()
	return err == nil
}
