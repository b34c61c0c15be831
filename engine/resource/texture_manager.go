package resource

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
)

// TextureManager hands out textures keyed by name and owns a built-in 1x1
// white default used by objects with no texture of their own. Image decoding
// for batch loads runs on a worker pool; GPU uploads always happen on the
// calling thread since the graphics context is thread-bound.
type TextureManager struct {
	mu         sync.RWMutex
	ctx        gfx.Context
	defaultTex *Texture
	textures   map[string]*Texture

	// decodePool runs CPU-side image decodes for AddAll.
	decodePool worker.DynamicWorkerPool
}

// NewTextureManager creates a manager with the default texture registered.
//
// Parameters:
//   - ctx: graphics context textures upload through
//
// Returns:
//   - *TextureManager: the manager, holding only the default texture
func NewTextureManager(ctx gfx.Context) *TextureManager {
	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	return &TextureManager{
		ctx:        ctx,
		defaultTex: NewTexture(ctx, white),
		textures:   make(map[string]*Texture),
		decodePool: worker.NewDynamicWorkerPool(runtime.NumCPU(), 64, 1*time.Second),
	}
}

// GetDefault returns the built-in 1x1 white texture.
func (m *TextureManager) GetDefault() *Texture {
	return m.defaultTex
}

// Get looks up a texture by name.
//
// Returns:
//   - *Texture: the texture, or nil
//   - bool: whether the name was registered
func (m *TextureManager) Get(name string) (*Texture, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.textures[name]
	return t, ok
}

// Add loads an image file and registers it under the given name. A name that
// is already registered returns the existing texture without touching the
// file again.
//
// Parameters:
//   - path: image file to load (PNG or JPEG)
//   - name: registry key
//
// Returns:
//   - *Texture: the registered texture
//   - error: error if the file cannot be decoded
func (m *TextureManager) Add(path, name string) (*Texture, error) {
	if t, ok := m.Get(name); ok {
		return t, nil
	}

	img, err := common.LoadImageRGBA(path)
	if err != nil {
		return nil, err
	}
	return m.AddImage(img, name), nil
}

// AddImage registers an already decoded image under the given name,
// replacing any previous entry.
func (m *TextureManager) AddImage(img *image.RGBA, name string) *Texture {
	t := NewTexture(m.ctx, img)

	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.textures[name]; ok {
		old.Delete()
	}
	m.textures[name] = t
	return t
}

// AddAll loads several image files, decoding them concurrently on the
// worker pool and uploading the results sequentially. Already registered
// names are skipped.
//
// Parameters:
//   - paths: registry name to file path
//
// Returns:
//   - error: the first decode failure, or nil
func (m *TextureManager) AddAll(paths map[string]string) error {
	type decoded struct {
		name string
		img  *image.RGBA
		err  error
	}

	var wg sync.WaitGroup
	results := make(chan decoded, len(paths))

	taskID := 0
	for name, path := range paths {
		if _, ok := m.Get(name); ok {
			continue
		}

		wg.Add(1)
		n, p := name, path
		m.decodePool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				img, err := common.LoadImageRGBA(p)
				results <- decoded{name: n, img: img, err: err}
				return nil, nil
			},
		})
		taskID++
	}

	wg.Wait()
	close(results)

	var firstErr error
	for d := range results {
		if d.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to load texture %s: %w", d.name, d.err)
			}
			continue
		}
		m.AddImage(d.img, d.name)
	}
	return firstErr
}

// Remove deletes a texture and unregisters its name.
func (m *TextureManager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.textures[name]; ok {
		t.Delete()
		delete(m.textures, name)
	}
}

// Clear deletes every registered texture, keeping only the default.
func (m *TextureManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, t := range m.textures {
		t.Delete()
		delete(m.textures, name)
	}
}
