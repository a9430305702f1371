// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/tilectx/tilectx"
)

// AdapterInfo describes the GPU adapter found by the availability
// probe.
type AdapterInfo struct {
	// Name is the adapter name (e.g. "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the adapter vendor.
	Vendor string
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the adapter.
func (a *AdapterInfo) String() string {
	if a.Driver == "" {
		return a.Name
	}
	return fmt.Sprintf("%s (%s)", a.Name, a.Driver)
}

var (
	probeOnce sync.Once
	probeInfo *AdapterInfo
	probeErr  error
)

// probeAdapter requests and immediately releases a GPU adapter, caching
// the result.  The probe answers the registry's availability question
// and supplies adapter details for introspection without holding any
// GPU resource: the host owns the device used for actual presentation.
func probeAdapter() (*AdapterInfo, error) {
	probeOnce.Do(func() {
		instance := core.NewInstance(&gputypes.InstanceDescriptor{
			Backends: gputypes.BackendsPrimary,
		})
		adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
			PowerPreference: gputypes.PowerPreferenceHighPerformance,
		})
		if err != nil {
			probeErr = fmt.Errorf("gpuhost: no GPU adapter: %w", err)
			return
		}
		defer func() {
			_ = core.AdapterDrop(adapterID)
		}()

		info, err := core.GetAdapterInfo(adapterID)
		if err != nil {
			probeErr = fmt.Errorf("gpuhost: adapter info: %w", err)
			return
		}
		probeInfo = &AdapterInfo{
			Name:   info.Name,
			Vendor: info.Vendor,
			Driver: info.Driver,
		}
		tilectx.Logger().Info("gpuhost: GPU adapter",
			slog.String("adapter", probeInfo.String()),
			slog.String("vendor", probeInfo.Vendor))
	})
	return probeInfo, probeErr
}

// Adapter returns details of the probed GPU adapter, or an error when
// no adapter is reachable.
func Adapter() (*AdapterInfo, error) {
	return probeAdapter()
}
