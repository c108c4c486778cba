package thicket

import (
	"encoding/json"
	"io/fs"
	"path"
	"sort"

	"github.com/pkg/errors"
)

// AtlasRegion describes a named sub-rectangle within an atlas page.
type AtlasRegion struct {
	Page          int    // page index
	X, Y          uint32 // top-left corner of the region within the page
	Width, Height uint32 // size as drawn (unrotated)
	// Rotated regions are stored 90 degrees clockwise, so they occupy
	// Height x Width pixels in the page.
	Rotated bool
}

// Box returns the region's drawn size at (x, y).
func (r AtlasRegion) Box(x, y uint32) Box {
	return NewBox(x, y, r.Width, r.Height)
}

// Atlas holds one or more page surfaces and a map of named regions.
type Atlas struct {
	Pages       []*Surface
	regions     map[string]AtlasRegion
	transparent bool
}

// Transparent reports whether DrawRegion skips key-colored pixels.
func (a *Atlas) Transparent() bool { return a.transparent }

// SetTransparent toggles color-keyed drawing. The key is the region's
// top-left pixel, as with sprites.
func (a *Atlas) SetTransparent(enabled bool) { a.transparent = enabled }

// Region returns the region registered under name.
func (a *Atlas) Region(name string) (AtlasRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Names returns the region names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// images. Supports both the hash format (single "frames" object) and the
// array format ("textures" array with per-page frame lists). The images are
// consumed as by Surface.Load.
func LoadAtlas(jsonData []byte, pages []*Image) (*Atlas, error) {
	doc, err := parseAtlasJSON(jsonData)
	if err != nil {
		return nil, err
	}
	atlas := &Atlas{regions: make(map[string]AtlasRegion)}
	for _, img := range pages {
		s := &Surface{}
		if err := s.Load(img); err != nil {
			return nil, err
		}
		atlas.Pages = append(atlas.Pages, s)
	}
	for i, p := range doc.pages {
		for name, f := range p.Frames {
			if err := atlas.add(name, f, i); err != nil {
				return nil, err
			}
		}
	}
	return atlas, nil
}

// LoadAtlasFS reads a TexturePacker JSON file from fsys and loads every
// page image it names relative to the JSON file's directory.
func LoadAtlasFS(fsys fs.FS, name string) (*Atlas, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "thicket: read atlas %q: %v", name, err)
	}
	doc, err := parseAtlasJSON(data)
	if err != nil {
		return nil, err
	}
	pages := make([]*Image, 0, len(doc.pages))
	for _, p := range doc.pages {
		if p.Image == "" {
			return nil, errors.Wrapf(ErrFormat, "thicket: atlas %q page has no image", name)
		}
		img, err := LoadFS(fsys, path.Join(path.Dir(name), p.Image))
		if err != nil {
			return nil, err
		}
		pages = append(pages, img)
	}
	return LoadAtlas(data, pages)
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

type atlasDoc struct {
	pages []jsonTexturePage
}

func parseAtlasJSON(data []byte) (atlasDoc, error) {
	var probe struct {
		Frames   json.RawMessage   `json:"frames"`
		Textures []jsonTexturePage `json:"textures"`
		Meta     struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return atlasDoc{}, errors.Wrapf(ErrFormat, "thicket: parse atlas JSON: %v", err)
	}

	switch {
	case probe.Textures != nil:
		return atlasDoc{pages: probe.Textures}, nil
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return atlasDoc{}, errors.Wrapf(ErrFormat, "thicket: parse atlas frames: %v", err)
		}
		return atlasDoc{pages: []jsonTexturePage{{Image: probe.Meta.Image, Frames: frames}}}, nil
	}
	return atlasDoc{}, errors.Wrap(ErrFormat, `thicket: atlas JSON has neither "frames" nor "textures" key`)
}

// add validates f against its page and registers it.
func (a *Atlas) add(name string, f jsonFrame, page int) error {
	r := f.Frame
	if r.X < 0 || r.Y < 0 || r.W <= 0 || r.H <= 0 {
		return errors.Wrapf(ErrFormat, "thicket: atlas region %q has rect %+v", name, r)
	}
	if page >= len(a.Pages) {
		return errors.Wrapf(ErrFormat, "thicket: atlas region %q on missing page %d", name, page)
	}
	stored := r
	if f.Rotated {
		stored.W, stored.H = r.H, r.W
	}
	p := a.Pages[page]
	if uint64(stored.X+stored.W) > uint64(p.Width()) || uint64(stored.Y+stored.H) > uint64(p.Height()) {
		return errors.Wrapf(ErrFormat, "thicket: atlas region %q exceeds page %d (%dx%d)", name, page, p.Width(), p.Height())
	}
	a.regions[name] = AtlasRegion{
		Page:    page,
		X:       uint32(r.X),
		Y:       uint32(r.Y),
		Width:   uint32(r.W),
		Height:  uint32(r.H),
		Rotated: f.Rotated,
	}
	return nil
}

// source returns the page offset of drawn pixel (dx, dy) in r.
func (a *Atlas) source(r AtlasRegion, dx, dy uint32) uint32 {
	p := a.Pages[r.Page]
	if r.Rotated {
		return p.Offset(0, r.X+r.Height-1-dy, r.Y+dx)
	}
	return p.Offset(0, r.X+dx, r.Y+dy)
}

// DrawRegion draws the named region with its top-left corner at (x, y). It
// reports false when no region has that name.
func (a *Atlas) DrawRegion(target Target, name string, x, y uint32) bool {
	r, ok := a.regions[name]
	if !ok {
		Logger().Warn("atlas region not found", "region", name)
		return false
	}
	p := a.Pages[r.Page]
	key := a.source(r, 0, 0)
	for dy := uint32(0); dy < r.Height; dy++ {
		for dx := uint32(0); dx < r.Width; dx++ {
			off := a.source(r, dx, dy)
			if a.transparent && !p.Compare(off, key) {
				continue
			}
			p.drawPixel(target, off, x+dx, y+dy)
		}
	}
	return true
}
