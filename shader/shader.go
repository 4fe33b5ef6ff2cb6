package shader

import (
	"fmt"
	"strings"

	"github.com/richinsley/texfmt/gltex"
	"github.com/richinsley/texfmt/texture"
)

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
void main() {
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// ──────────────────────────────────── WebGL2 ────────────────────────────────────

// The fragment shader reads its coordinates from gl_FragCoord so it does not
// depend on varying names surviving translation.
const blitFragmentTemplate = `#version 300 es
precision highp float;
precision highp int;
precision highp sampler3D;

uniform SAMPLER_TYPE u_texture;
uniform vec2  u_resolution;
uniform float u_slice;    // 3D textures: slice in [0,1]
uniform int   u_channels; // component count of the source pixel format
uniform int   u_flip;

out vec4 fragColor;

vec4 fetch(vec2 uv)
{
FETCH_BODY
}

void main()
{
    vec2 uv = gl_FragCoord.xy / u_resolution;
    if (u_flip != 0) {
        uv.y = 1.0 - uv.y;
    }

    vec4 c = fetch(uv);
    if (u_channels == 1) {
        c = vec4(c.rrr, 1.0);
    } else if (u_channels == 2) {
        c = vec4(c.rrr, c.g);
    } else if (u_channels == 3) {
        c.a = 1.0;
    }
    fragColor = c;
}
`

const fetch2D = `    return texture(u_texture, uv);`

const fetch3D = `    return texture(u_texture, vec3(uv, u_slice));`

// Cubemaps are unwrapped as an equirectangular panorama.
const fetchCube = `    float theta = uv.x * 6.28318530718;
    float phi   = (1.0 - uv.y) * 3.14159265359;
    vec3  dir   = vec3(sin(phi) * cos(theta), cos(phi), sin(phi) * sin(theta));
    return texture(u_texture, dir);`

// Uniform names used by the blit fragment shader.
const (
	UniformTexture    = "u_texture"
	UniformResolution = "u_resolution"
	UniformSlice      = "u_slice"
	UniformChannels   = "u_channels"
	UniformFlip       = "u_flip"
)

// ────────────────────────────────── Public API ─────────────────────────────────

// Vertex returns the full-screen quad vertex shader (GLSL 4.10).
func Vertex() string {
	return vertexShaderSourceGL
}

// BlitFragment returns the WebGL2 fragment shader that draws a texture of type
// t over the whole viewport. WebGL2 has no 1D or multisample samplers, so
// those types are rejected.
func BlitFragment(t texture.Type) (string, error) {
	var body string
	switch t {
	case texture.Type2D:
		body = fetch2D
	case texture.Type3D:
		body = fetch3D
	case texture.TypeCubemap:
		body = fetchCube
	default:
		return "", fmt.Errorf("%w: no preview shader for %s textures", texture.ErrUnsupported, t)
	}

	return strings.NewReplacer(
		"SAMPLER_TYPE", gltex.SamplerType(t),
		"FETCH_BODY", body,
	).Replace(blitFragmentTemplate), nil
}
