// Package loader parses Wavefront OBJ geometry and its MTL material
// libraries into engine meshes.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/geometry"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

// ObjGroup is one named object group of an OBJ file, triangulated and
// re-indexed so every vertex carries its own coordinate, normal and uv.
type ObjGroup struct {
	Name     string
	Mesh     geometry.TriMesh
	Material *MtlMaterial
}

// ObjEntry pairs a GPU-ready mesh with the material of its group.
type ObjEntry struct {
	Name     string
	Mesh     *resource.Mesh
	Material *MtlMaterial
}

// LoadObjFile loads an OBJ file and uploads one mesh per object group.
// Groups without normals get them recomputed from the triangle faces.
//
// Parameters:
//   - ctx: graphics context the meshes are created against
//   - path: filesystem path of the .obj file
//   - mtlDir: directory MTL library references are resolved against
//
// Returns:
//   - []ObjEntry: one entry per non-empty group, in declaration order
//   - error: any I/O or syntax error
func LoadObjFile(ctx gfx.Context, path, mtlDir string) ([]ObjEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open obj file %s: %w", path, err)
	}
	defer f.Close()

	groups, err := ParseObj(f, mtlDir)
	if err != nil {
		return nil, fmt.Errorf("failed to parse obj file %s: %w", path, err)
	}

	entries := make([]ObjEntry, 0, len(groups))
	for _, g := range groups {
		mesh := resource.NewMesh(ctx, g.Mesh.Coords, g.Mesh.Faces, g.Mesh.Normals, g.Mesh.UVs, false)
		entries = append(entries, ObjEntry{Name: g.Name, Mesh: mesh, Material: g.Material})
	}
	return entries, nil
}

type objVertexKey struct {
	v, vt, vn int32
}

type objGroup struct {
	name           string
	material       *MtlMaterial
	mesh           geometry.TriMesh
	lookup         map[objVertexKey]uint32
	missingNormals bool
}

type objParser struct {
	coords  []mgl32.Vec3
	normals []mgl32.Vec3
	uvs     []mgl32.Vec2
	groups  []*objGroup
	current *objGroup
	mtllib  map[string]MtlMaterial
	mtlDir  string
	lineNum int
}

// ParseObj parses OBJ data into triangulated groups. Faces with more than
// three vertices are fan-triangulated. Indices may be negative, counting
// from the end of the streams declared so far. Statements other than v, vn,
// vt, f, g, o, usemtl and mtllib are skipped.
func ParseObj(r io.Reader, mtlDir string) ([]ObjGroup, error) {
	p := &objParser{
		mtllib: make(map[string]MtlMaterial),
		mtlDir: mtlDir,
	}
	p.startGroup("default")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		p.lineNum++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read obj data: %w", err)
	}

	var out []ObjGroup
	for _, g := range p.groups {
		if len(g.mesh.Faces) == 0 {
			continue
		}
		if g.missingNormals || len(g.mesh.Normals) == 0 {
			g.mesh.Normals = resource.ComputeNormals(g.mesh.Coords, g.mesh.Faces)
		}
		out = append(out, ObjGroup{Name: g.name, Mesh: g.mesh, Material: g.material})
	}
	return out, nil
}

func (p *objParser) parseLine(line string) error {
	words := strings.Fields(line)
	if len(words) == 0 || strings.HasPrefix(words[0], "#") {
		return nil
	}

	switch words[0] {
	case "v":
		v, err := parseVec3(words[1:])
		if err != nil {
			return fmt.Errorf("line %d: %w", p.lineNum, err)
		}
		p.coords = append(p.coords, v)
	case "vn":
		v, err := parseVec3(words[1:])
		if err != nil {
			return fmt.Errorf("line %d: %w", p.lineNum, err)
		}
		p.normals = append(p.normals, v)
	case "vt":
		uv, err := parseUV(words[1:])
		if err != nil {
			return fmt.Errorf("line %d: %w", p.lineNum, err)
		}
		p.uvs = append(p.uvs, uv)
	case "f":
		if err := p.parseFace(words[1:]); err != nil {
			return fmt.Errorf("line %d: %w", p.lineNum, err)
		}
	case "g", "o":
		name := "default"
		if len(words) > 1 {
			name = strings.Join(words[1:], " ")
		}
		p.startGroup(name)
	case "usemtl":
		p.useMaterial(strings.Join(words[1:], " "))
	case "mtllib":
		p.loadMtlLib(strings.Join(words[1:], " "))
	}
	return nil
}

// startGroup opens a new group unless the current one is still unused, in
// which case it is renamed in place.
func (p *objParser) startGroup(name string) {
	if p.current != nil && len(p.current.mesh.Faces) == 0 && p.current.material == nil {
		p.current.name = name
		return
	}
	g := &objGroup{name: name, lookup: make(map[objVertexKey]uint32)}
	p.groups = append(p.groups, g)
	p.current = g
}

// useMaterial assigns a library material to the current group, splitting off
// a new group when the current one already has one.
func (p *objParser) useMaterial(name string) {
	if name == "" || name == "None" {
		return
	}
	m, ok := p.mtllib[name]
	if !ok {
		log.Printf("loader: line %d: could not find the material %s", p.lineNum, name)
		return
	}
	if p.current.material != nil && len(p.current.mesh.Faces) != 0 {
		p.startGroup(p.current.name + "/" + name)
	}
	p.current.material = &m
}

func (p *objParser) loadMtlLib(name string) {
	path := filepath.Join(p.mtlDir, name)
	materials, err := ParseMtlFile(path)
	if err != nil {
		log.Printf("loader: line %d: %v", p.lineNum, err)
		return
	}
	for _, m := range materials {
		p.mtllib[m.Name] = m
	}
}

func (p *objParser) parseFace(words []string) error {
	if len(words) < 3 {
		return fmt.Errorf("a face requires at least 3 vertices, found %d", len(words))
	}

	indices := make([]uint32, 0, len(words))
	for _, word := range words {
		idx, err := p.resolveVertex(word)
		if err != nil {
			return err
		}
		indices = append(indices, idx)
	}

	for i := 2; i < len(indices); i++ {
		p.current.mesh.Faces = append(p.current.mesh.Faces,
			common.Face{indices[0], indices[i-1], indices[i]})
	}
	return nil
}

// resolveVertex parses one v/vt/vn reference and returns its index in the
// current group's deduplicated vertex streams.
func (p *objParser) resolveVertex(word string) (uint32, error) {
	parts := strings.Split(word, "/")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid vertex reference %q", word)
	}

	key := objVertexKey{v: -1, vt: -1, vn: -1}
	for i, part := range parts {
		if part == "" {
			continue
		}
		raw, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("failed to parse %q as an integer: %w", part, err)
		}
		var idx int32
		switch {
		case raw > 0:
			idx = int32(raw - 1)
		case raw < 0:
			idx = int32(int64(p.streamLen(i)) + raw)
		default:
			return 0, fmt.Errorf("invalid zero index in %q", word)
		}
		if idx < 0 || int(idx) >= p.streamLen(i) {
			return 0, fmt.Errorf("index %d out of range in %q", raw, word)
		}
		switch i {
		case 0:
			key.v = idx
		case 1:
			key.vt = idx
		case 2:
			key.vn = idx
		}
	}
	if key.v == -1 {
		return 0, fmt.Errorf("vertex reference %q has no coordinate index", word)
	}

	g := p.current
	if id, ok := g.lookup[key]; ok {
		return id, nil
	}

	id := uint32(len(g.mesh.Coords))
	g.mesh.Coords = append(g.mesh.Coords, p.coords[key.v])
	if key.vt != -1 {
		g.mesh.UVs = append(g.mesh.UVs, p.uvs[key.vt])
	} else {
		g.mesh.UVs = append(g.mesh.UVs, mgl32.Vec2{})
	}
	if key.vn != -1 {
		g.mesh.Normals = append(g.mesh.Normals, p.normals[key.vn])
	} else {
		g.mesh.Normals = append(g.mesh.Normals, mgl32.Vec3{})
		g.missingNormals = true
	}
	g.lookup[key] = id
	return id, nil
}

func (p *objParser) streamLen(i int) int {
	switch i {
	case 0:
		return len(p.coords)
	case 1:
		return len(p.uvs)
	default:
		return len(p.normals)
	}
}

func parseUV(words []string) (mgl32.Vec2, error) {
	if len(words) < 2 {
		return mgl32.Vec2{}, fmt.Errorf("2 components were expected, found %d", len(words))
	}
	var out mgl32.Vec2
	for i := 0; i < 2; i++ {
		v, err := strconv.ParseFloat(words[i], 32)
		if err != nil {
			return mgl32.Vec2{}, fmt.Errorf("failed to parse %q as a float: %w", words[i], err)
		}
		out[i] = float32(v)
	}
	return out, nil
}
