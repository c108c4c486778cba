package thicket

import "github.com/pkg/errors"

// GID flag bits (same convention as Tiled TMX format). A GID of 0 is an
// empty cell; otherwise GID-1 indexes the tileset with rows running along X.
const (
	TileFlipH    uint32 = 1 << 31 // horizontal flip
	TileFlipV    uint32 = 1 << 30 // vertical flip
	tileFlagMask uint32 = TileFlipH | TileFlipV
)

// AnimFrame describes a single frame in a tile animation sequence.
type AnimFrame struct {
	GID      uint32 // tile GID for this frame (no flag bits)
	Duration int    // milliseconds
}

// TileMap is a grid of tile GIDs drawn through a Tileset. The scroll
// offset is in map pixels and may leave the map; cells outside it are not
// drawn.
type TileMap struct {
	Tiles *Tileset

	data   []uint32 // row-major GIDs, len = width * height
	width  int
	height int

	anims       map[uint32][]AnimFrame // base GID -> frames
	animElapsed int                    // milliseconds

	ScrollX, ScrollY int
}

// NewTileMap returns a width x height map of empty cells drawn with tiles.
func NewTileMap(tiles *Tileset, width, height int) (*TileMap, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "thicket: tilemap %dx%d", width, height)
	}
	return &TileMap{
		Tiles:  tiles,
		data:   make([]uint32, width*height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *TileMap) Height() int { return m.height }

// PixelWidth returns the map width in pixels.
func (m *TileMap) PixelWidth() int { return m.width * int(m.Tiles.TileWidth()) }

// PixelHeight returns the map height in pixels.
func (m *TileMap) PixelHeight() int { return m.height * int(m.Tiles.TileHeight()) }

// Tile returns the GID at (col, row), or 0 when out of range.
func (m *TileMap) Tile(col, row int) uint32 {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return 0
	}
	return m.data[row*m.width+col]
}

// SetTile updates a single cell. Out-of-range cells are ignored.
func (m *TileMap) SetTile(col, row int, gid uint32) {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return
	}
	m.data[row*m.width+col] = gid
}

// SetData replaces the whole grid. data must hold width*height GIDs.
func (m *TileMap) SetData(data []uint32, width, height int) error {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return errors.Wrapf(ErrInvalidSize, "thicket: tilemap data %d for %dx%d", len(data), width, height)
	}
	m.data = data
	m.width = width
	m.height = height
	return nil
}

// SetAnimations sets the animation definitions. The map is keyed by base
// GID (no flag bits).
func (m *TileMap) SetAnimations(anims map[uint32][]AnimFrame) {
	m.anims = anims
}

// Update advances tile animations by dt seconds.
func (m *TileMap) Update(dt float64) {
	if ms := int(dt * 1000); ms > 0 {
		m.animElapsed += ms
	}
}

// resolve maps a base GID to the GID of its current animation frame.
func (m *TileMap) resolve(gid uint32) uint32 {
	frames, ok := m.anims[gid]
	if !ok || len(frames) == 0 {
		return gid
	}
	total := 0
	for _, f := range frames {
		total += f.Duration
	}
	if total <= 0 {
		return gid
	}
	elapsed := m.animElapsed % total
	acc := 0
	for _, f := range frames {
		acc += f.Duration
		if elapsed < acc {
			return f.GID
		}
	}
	return frames[0].GID
}

// tileOrigin returns the tileset pixel origin of a base GID.
func (m *TileMap) tileOrigin(gid uint32) (x, y uint32, ok bool) {
	t := m.Tiles
	if gid == 0 || t.rows == 0 || t.columns == 0 {
		return 0, 0, false
	}
	idx := gid - 1
	if idx >= t.rows*t.columns {
		return 0, 0, false
	}
	return (idx % t.rows) * t.TileWidth(), (idx / t.rows) * t.TileHeight(), true
}

// Draw renders the part of the map under the scroll offset so that it
// fills target.
func (m *TileMap) Draw(target Target) {
	m.DrawView(target, 0, 0, target.FrameWidth(), target.FrameHeight())
}

// DrawView renders the scrolled map into the target rectangle
// (x, y, width, height).
func (m *TileMap) DrawView(target Target, x, y, width, height uint32) {
	if m.Tiles == nil {
		return
	}
	tw, th := int(m.Tiles.TileWidth()), int(m.Tiles.TileHeight())
	if tw == 0 || th == 0 {
		return
	}

	startCol := floorDiv(m.ScrollX, tw)
	startRow := floorDiv(m.ScrollY, th)
	endCol := floorDiv(m.ScrollX+int(width)-1, tw)
	endRow := floorDiv(m.ScrollY+int(height)-1, th)

	for row := max(startRow, 0); row <= endRow && row < m.height; row++ {
		for col := max(startCol, 0); col <= endCol && col < m.width; col++ {
			gid := m.data[row*m.width+col]
			if gid == 0 {
				continue
			}
			m.drawCell(target, gid, col*tw-m.ScrollX, row*th-m.ScrollY, x, y, width, height)
		}
	}
}

// drawCell draws one tile whose top-left corner sits at view coordinates
// (vx, vy), clipped to the view rectangle.
func (m *TileMap) drawCell(target Target, gid uint32, vx, vy int, x, y, width, height uint32) {
	flags := gid & tileFlagMask
	sx, sy, ok := m.tileOrigin(m.resolve(gid &^ tileFlagMask))
	if !ok {
		return
	}
	t := m.Tiles
	tw, th := int(t.TileWidth()), int(t.TileHeight())
	for ty := range th {
		py := vy + ty
		if py < 0 || py >= int(height) {
			continue
		}
		srcY := ty
		if flags&TileFlipV != 0 {
			srcY = th - 1 - ty
		}
		for tx := range tw {
			px := vx + tx
			if px < 0 || px >= int(width) {
				continue
			}
			srcX := tx
			if flags&TileFlipH != 0 {
				srcX = tw - 1 - tx
			}
			t.drawPixel(target, t.Offset(0, sx+uint32(srcX), sy+uint32(srcY)), x+uint32(px), y+uint32(py))
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
