// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package pbr implements the metallic-roughness
// reflectance model shared by every lit material.
package pbr

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/stereo/linear"
)

const (
	// MinRoughness is the smallest roughness that
	// the model will use. Smaller values (including
	// zero) are raised to it.
	MinRoughness = 0.045

	// DielectricF0 is the reflectance at normal
	// incidence used for non-metals.
	DielectricF0 = 0.04

	// Lower bound for N⋅V and N⋅L in denominators.
	minDot = 1e-4
)

// Shade evaluates the surface response.
//
// albedo is the base color (alpha is ignored),
// irradiance is the incoming light estimate for the
// surface, ao, metallic and roughness are clamped
// to [0, 1] (roughness is further raised to
// MinRoughness), view points from the surface towards
// the eye and light points towards the dominant light.
// Neither view, normal nor light need be normalized.
//
// The result is not clamped.
func Shade(albedo linear.V4, irradiance linear.V3, ao, metallic, roughness float32, view, normal, light linear.V3) linear.V3 {
	d, s := Eval(albedo, irradiance, ao, metallic, roughness, view, normal, light)
	d.Add(&d, &s)
	return d
}

// Eval is like Shade but returns the diffuse and
// specular contributions separately.
func Eval(albedo linear.V4, irradiance linear.V3, ao, metallic, roughness float32, view, normal, light linear.V3) (diffuse, specular linear.V3) {
	ao = linear.Saturate(ao)
	metallic = linear.Saturate(metallic)
	roughness = max(linear.Saturate(roughness), MinRoughness)

	var n, v, l, h linear.V3
	n.Norm(&normal)
	v.Norm(&view)
	l.Norm(&light)
	h.Add(&v, &l)
	h.Norm(&h)

	nv := max(n.Dot(&v), minDot)
	nl := max(n.Dot(&l), 0)
	nh := max(n.Dot(&h), 0)
	vh := max(v.Dot(&h), 0)

	base := albedo.XYZ()

	// Diffuse: what the dielectric layer does not
	// reflect, absent entirely for metals.
	kd := (1 - metallic) * (1 - fresnel(DielectricF0, nv))
	diffuse.Hadamard(&base, &irradiance)
	diffuse.Scale(kd*ao, &diffuse)

	// Specular: GGX distribution, Smith-Schlick
	// visibility and Schlick's Fresnel, with F0
	// tinted by albedo as metallic increases.
	a := roughness * roughness
	a2 := a * a
	dn := nh*nh*(a2-1) + 1
	dist := a2 / (math32.Pi * dn * dn)
	k := (roughness + 1) * (roughness + 1) / 8
	vis := nv / (nv*(1-k) + k) * nl / (nl*(1-k)+k)
	lobe := dist * vis / (4 * nv)
	for i := range specular {
		f0 := linear.Lerp(DielectricF0, base[i], metallic)
		specular[i] = lobe * fresnel(f0, vh) * irradiance[i] * ao
	}
	return
}

// fresnel is Schlick's approximation.
func fresnel(f0, cos float32) float32 {
	x := 1 - cos
	x2 := x * x
	return f0 + (1-f0)*x2*x2*x
}
