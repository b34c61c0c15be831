package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// MtlMaterial is one material entry of a Wavefront MTL library.
type MtlMaterial struct {
	Name            string
	AmbientTexture  string
	DiffuseTexture  string
	SpecularTexture string
	OpacityMap      string
	Ambient         mgl32.Vec3
	Diffuse         mgl32.Vec3
	Specular        mgl32.Vec3
	Shininess       float32
	Alpha           float32
}

// NewDefaultMtlMaterial returns a white material with the given name.
func NewDefaultMtlMaterial(name string) MtlMaterial {
	return MtlMaterial{
		Name:      name,
		Ambient:   mgl32.Vec3{1, 1, 1},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Specular:  mgl32.Vec3{1, 1, 1},
		Shininess: 60,
		Alpha:     1,
	}
}

// ParseMtlFile parses a Wavefront MTL library from disk.
//
// Parameters:
//   - path: filesystem path of the .mtl file
//
// Returns:
//   - []MtlMaterial: the materials declared in the library, in order
//   - error: any I/O or syntax error
func ParseMtlFile(path string) ([]MtlMaterial, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mtl file %s: %w", path, err)
	}
	defer f.Close()
	return ParseMtl(f)
}

// ParseMtl parses a Wavefront MTL library. Unknown statements are skipped.
func ParseMtl(r io.Reader) ([]MtlMaterial, error) {
	var (
		materials []MtlMaterial
		current   *MtlMaterial
		lineNum   int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		words := strings.Fields(scanner.Text())
		if len(words) == 0 || strings.HasPrefix(words[0], "#") {
			continue
		}

		if words[0] == "newmtl" {
			if len(words) < 2 {
				return nil, fmt.Errorf("line %d: newmtl requires a name", lineNum)
			}
			materials = append(materials, NewDefaultMtlMaterial(strings.Join(words[1:], " ")))
			current = &materials[len(materials)-1]
			continue
		}
		if current == nil {
			continue
		}

		var err error
		switch words[0] {
		case "Ka":
			current.Ambient, err = parseVec3(words[1:])
		case "Kd":
			current.Diffuse, err = parseVec3(words[1:])
		case "Ks":
			current.Specular, err = parseVec3(words[1:])
		case "Ns":
			current.Shininess, err = parseFloat(words[1:])
		case "d":
			current.Alpha, err = parseFloat(words[1:])
		case "Tr":
			var tr float32
			tr, err = parseFloat(words[1:])
			current.Alpha = 1 - tr
		case "map_Ka":
			current.AmbientTexture = strings.Join(words[1:], " ")
		case "map_Kd":
			current.DiffuseTexture = strings.Join(words[1:], " ")
		case "map_Ks":
			current.SpecularTexture = strings.Join(words[1:], " ")
		case "map_d":
			current.OpacityMap = strings.Join(words[1:], " ")
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mtl data: %w", err)
	}
	return materials, nil
}

func parseVec3(words []string) (mgl32.Vec3, error) {
	if len(words) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("3 components were expected, found %d", len(words))
	}
	var out mgl32.Vec3
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(words[i], 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("failed to parse %q as a float: %w", words[i], err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseFloat(words []string) (float32, error) {
	if len(words) < 1 {
		return 0, fmt.Errorf("1 component was expected, found 0")
	}
	v, err := strconv.ParseFloat(words[0], 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q as a float: %w", words[0], err)
	}
	return float32(v), nil
}
