package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sphere-scene/internal/light"
	"sphere-scene/internal/scene"
)

// ErrShader is returned by the first Render when the material shader fails to compile.
var ErrShader = errors.New("material shader failed to compile")

// ambient keeps the unlit side of the sphere from going pure black.
var ambient = [3]float32{0.03, 0.03, 0.035}

// standardShader is a metal/rough point-light shader. Uniform locations are looked up once.
type standardShader struct {
	shader           rl.Shader
	locViewPos       int32
	locLightPos      int32
	locLightColor    int32
	locLightDistance int32
	locLightDecay    int32
	locMetalness     int32
	locRoughness     int32
	locAmbient       int32
	locBase          int32
}

func loadStandardShader() (*standardShader, error) {
	sh := rl.LoadShaderFromMemory(standardVS, standardFS)
	if !rl.IsShaderValid(sh) {
		return nil, ErrShader
	}
	return &standardShader{
		shader:           sh,
		locViewPos:       rl.GetShaderLocation(sh, "viewPos"),
		locLightPos:      rl.GetShaderLocation(sh, "lightPos"),
		locLightColor:    rl.GetShaderLocation(sh, "lightColor"),
		locLightDistance: rl.GetShaderLocation(sh, "lightDistance"),
		locLightDecay:    rl.GetShaderLocation(sh, "lightDecay"),
		locMetalness:     rl.GetShaderLocation(sh, "metalness"),
		locRoughness:     rl.GetShaderLocation(sh, "roughness"),
		locAmbient:       rl.GetShaderLocation(sh, "ambient"),
		locBase:          rl.GetShaderLocation(sh, "baseColor"),
	}, nil
}

// setUniforms uploads the frame's light, view and material values (cgo-safe: local arrays).
func (s *standardShader) setUniforms(viewPos [3]float32, l *light.PointLight, m scene.StandardMaterial) {
	pos := [3]float32{l.Position[0], l.Position[1], l.Position[2]}
	radiance := l.Radiance()
	base := m.Color.Floats()
	amb := ambient
	set3 := func(loc int32, v [3]float32) {
		if loc >= 0 {
			rl.SetShaderValueV(s.shader, loc, v[:], rl.ShaderUniformVec3, 1)
		}
	}
	set1 := func(loc int32, v float32) {
		if loc >= 0 {
			rl.SetShaderValue(s.shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	set3(s.locViewPos, viewPos)
	set3(s.locLightPos, pos)
	set3(s.locLightColor, radiance)
	set3(s.locAmbient, amb)
	set3(s.locBase, base)
	set1(s.locLightDistance, l.Distance)
	set1(s.locLightDecay, l.Decay)
	set1(s.locMetalness, m.Metalness)
	set1(s.locRoughness, m.Roughness)
}

const (
	standardVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// Cook-Torrance GGX with Schlick fresnel. Attenuation is inverse power of distance,
	// windowed to zero at lightDistance when it is positive.
	standardFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec3 lightColor;
uniform float lightDistance;
uniform float lightDecay;
uniform vec3 baseColor;
uniform float metalness;
uniform float roughness;
uniform vec3 ambient;
out vec4 finalColor;
const float PI = 3.14159265359;
float attenuation(float d) {
  float a = 1.0 / max(pow(d, lightDecay), 0.01);
  if (lightDistance > 0.0) {
    float r = clamp(1.0 - pow(d / lightDistance, 4.0), 0.0, 1.0);
    a *= r * r;
  }
  return a;
}
void main() {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 toLight = lightPos - fragPosition;
  vec3 L = normalize(toLight);
  vec3 H = normalize(L + V);
  float NdotL = max(dot(N, L), 0.0);
  float NdotV = max(dot(N, V), 1e-4);
  float NdotH = max(dot(N, H), 0.0);
  float VdotH = max(dot(V, H), 0.0);

  float rough = clamp(roughness, 0.04, 1.0);
  float a2 = pow(rough, 4.0);
  float denom = NdotH * NdotH * (a2 - 1.0) + 1.0;
  float D = a2 / (PI * denom * denom);
  float k = (rough + 1.0) * (rough + 1.0) / 8.0;
  float G = (NdotV / (NdotV * (1.0 - k) + k)) * (NdotL / (NdotL * (1.0 - k) + k));
  vec3 F0 = mix(vec3(0.04), baseColor, metalness);
  vec3 F = F0 + (1.0 - F0) * pow(1.0 - VdotH, 5.0);

  vec3 specular = D * G * F / (4.0 * NdotV * max(NdotL, 1e-4));
  vec3 diffuse = (1.0 - F) * (1.0 - metalness) * baseColor / PI;
  vec3 radiance = lightColor * attenuation(length(toLight));
  vec3 color = (diffuse + specular) * radiance * NdotL * PI + ambient * baseColor;
  finalColor = vec4(pow(color, vec3(1.0 / 2.2)), 1.0);
}
`
)
