package config

import "sync"

// RenderSettings holds frame pacing configuration shared by the app loop
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means unlimited
	vsync    bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 60,
	vsync:    true,
}

// GetFPSLimit returns the frame cap, or 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 disable it.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetVSync reports whether buffer swaps wait for vertical blank
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync enables or disables vsync
func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}
