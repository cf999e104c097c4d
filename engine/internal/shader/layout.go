// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package shader defines the fixed float32 layouts through
// which per-frame, per-view and per-instance data reach the
// vertex stage.
package shader

import (
	"unsafe"

	"github.com/gviegas/stereo/linear"
)

// NSH is the number of spherical harmonics coefficients
// stored in a FrameLayout.
const NSH = 9

// FrameLayout is the layout of per-frame, global data.
// It is defined as follows:
//
//	[0:27]  | irradiance SH coefficients (RGB each)
//	[27]    | animation clock in seconds
//	[28]    | view count (int32)
//	[29:32] | dominant light direction
type FrameLayout [32]float32

// SetSH sets the irradiance SH coefficients.
func (l *FrameLayout) SetSH(sh *[NSH]linear.V3) {
	copy(l[:27], unsafe.Slice((*float32)(unsafe.Pointer(sh)), 27))
}

// SH returns the irradiance SH coefficients.
func (l *FrameLayout) SH() (sh [NSH]linear.V3) {
	copy(unsafe.Slice((*float32)(unsafe.Pointer(&sh)), 27), l[:27])
	return
}

// SetClock sets the animation clock.
func (l *FrameLayout) SetClock(s float32) { l[27] = s }

// Clock returns the animation clock.
func (l *FrameLayout) Clock() float32 { return l[27] }

// SetViewCount sets the number of views.
func (l *FrameLayout) SetViewCount(n int32) { l[28] = *(*float32)(unsafe.Pointer(&n)) }

// ViewCount returns the number of views.
func (l *FrameLayout) ViewCount() int32 { return *(*int32)(unsafe.Pointer(&l[28])) }

// SetLight sets the dominant light direction.
func (l *FrameLayout) SetLight(d *linear.V3) { l[29], l[30], l[31] = d[0], d[1], d[2] }

// Light returns the dominant light direction.
func (l *FrameLayout) Light() linear.V3 { return linear.V3{l[29], l[30], l[31]} }

// ViewLayout is the layout of view data.
// It is defined as follows:
//
//	[0:16]  | view-projection matrix
//	[16:19] | camera position in world space
//	[19]    | target slot (int32)
type ViewLayout [20]float32

// SetVP sets the view-projection matrix.
func (l *ViewLayout) SetVP(m *linear.M4) { copyM4(l[:16], m) }

// VP returns the view-projection matrix.
func (l *ViewLayout) VP() (m linear.M4) {
	copy(unsafe.Slice((*float32)(unsafe.Pointer(&m)), 16), l[:16])
	return
}

// SetCamera sets the camera position.
func (l *ViewLayout) SetCamera(p *linear.V3) { l[16], l[17], l[18] = p[0], p[1], p[2] }

// Camera returns the camera position.
func (l *ViewLayout) Camera() linear.V3 { return linear.V3{l[16], l[17], l[18]} }

// SetSlot sets the target slot.
func (l *ViewLayout) SetSlot(slot int32) { l[19] = *(*float32)(unsafe.Pointer(&slot)) }

// Slot returns the target slot.
func (l *ViewLayout) Slot() int32 { return *(*int32)(unsafe.Pointer(&l[19])) }

// InstanceLayout is the layout of instance data.
// It is defined as follows:
//
//	[0:16]  | world matrix
//	[16:20] | tint color
type InstanceLayout [20]float32

// SetWorld sets the world matrix.
func (l *InstanceLayout) SetWorld(m *linear.M4) { copyM4(l[:16], m) }

// World returns the world matrix.
func (l *InstanceLayout) World() (m linear.M4) {
	copy(unsafe.Slice((*float32)(unsafe.Pointer(&m)), 16), l[:16])
	return
}

// SetTint sets the tint color.
func (l *InstanceLayout) SetTint(c *linear.V4) { copy(l[16:20], c[:]) }

// Tint returns the tint color.
func (l *InstanceLayout) Tint() linear.V4 { return linear.V4{l[16], l[17], l[18], l[19]} }

func copyM4(dst []float32, m *linear.M4) {
	copy(dst, unsafe.Slice((*float32)(unsafe.Pointer(m)), 16))
}
