package main

import "github.com/chewxy/math32"

// Lambert evaluates the Lambertian diffuse BRDF: cd*kd/pi.
func Lambert(kd float32, cd ColorRGB) ColorRGB {
	return cd.Scale(kd / math32.Pi)
}

// Phong evaluates the Phong specular BRDF term, matching BRDF::Phong:
// ks * dot(Reflect(l, n), v)^exp, or black when that dot product is
// negative. ShadeVertex passes l = -LightDirection (pointing from the
// shaded point toward the light) and v = the interpolated view direction
// (pointing from the eye toward the shaded point), the reference's own
// sign convention, which it reproduces rather than "fixes".
func Phong(ks ColorRGB, exp float32, l, v, n Vector3) ColorRGB {
	reflected := Reflect(l, n)
	cosAngle := DotV3(reflected, v)
	if cosAngle < 0 {
		return ColorBlack
	}
	return ks.Scale(math32.Pow(cosAngle, exp))
}

// ShadeVertex computes the final pixel color for one rasterized fragment,
// matching Renderer::PixelShading: start from the ambient term, build a
// TBN basis, optionally perturb the surface normal with a normal map,
// bail out to the ambient-only color if the surface faces away from the
// light, then accumulate the observed-area/Lambert/Phong terms the active
// shading mode calls for.
func ShadeVertex(v VertexOut, textures MaterialTextures, mode ShadingMode, useNormalMap bool) ColorRGB {
	pixelColor := AmbientColor

	normal := v.Normal
	if useNormalMap && textures.Normal != nil {
		tangent := v.Tangent
		binormal := CrossV3(normal, tangent)

		tbn := Matrix{data: [4]Vector4{
			tangent.ToVector4(0),
			binormal.ToVector4(0),
			normal.ToVector4(0),
			{X: 0, Y: 0, Z: 0, W: 1},
		}}

		sampled := textures.Normal.Sample(v.UV)
		mapped := Vector3{
			X: 2*sampled.R - 1,
			Y: 2*sampled.G - 1,
			Z: 2*sampled.B - 1,
		}
		normal = tbn.TransformVector(mapped).Normalized()
	}

	lightDir := LightDirection.Normalized()
	observedArea := DotV3(normal, lightDir.Negate())
	if observedArea < 0 {
		return pixelColor
	}

	if mode == ShadingObservedArea {
		return pixelColor.Add(ColorRGB{R: observedArea, G: observedArea, B: observedArea})
	}

	diffuseColor := ColorWhite
	if textures.Diffuse != nil {
		diffuseColor = textures.Diffuse.Sample(v.UV)
	}
	lambert := Lambert(LightIntensity, diffuseColor)

	specularColor := ColorWhite
	if textures.Specular != nil {
		specularColor = textures.Specular.Sample(v.UV)
	}
	glossiness := float32(ShaderShininess)
	if textures.Gloss != nil {
		glossiness *= textures.Gloss.Sample(v.UV).R
	}
	specular := Phong(specularColor, glossiness, lightDir.Negate(), v.ViewDirection, normal)

	switch mode {
	case ShadingDiffused:
		return pixelColor.Add(lambert.Scale(observedArea))
	case ShadingSpecular:
		return pixelColor.Add(specular.Scale(observedArea))
	case ShadingCombined:
		return pixelColor.Add(lambert.Add(specular).Scale(observedArea))
	default:
		panic("ShadeVertex: impossible shading mode")
	}
}

// MaterialTextures bundles the four maps a mesh may be shaded with. Any of
// them may be nil, in which case the shader falls back to a sane default
// the way the reference renderer does when a slot has no bound texture.
type MaterialTextures struct {
	Diffuse  *Texture
	Normal   *Texture
	Gloss    *Texture
	Specular *Texture
}
