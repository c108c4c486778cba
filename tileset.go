package thicket

import "github.com/pkg/errors"

// Tileset divides its image into a rows x columns grid and draws one
// selected tile at a time.
//
// Tile width is the image width divided by rows and tile height is the
// image height divided by columns; a selected (row, column) starts at pixel
// (row*tileWidth, column*tileHeight). Rows therefore run along the X axis.
type Tileset struct {
	Canvas
	rows, columns uint32
	row, column   uint32
}

// NewTileset returns an empty tileset.
func NewTileset() *Tileset {
	return &Tileset{}
}

// Load copies img into the tileset and sets the grid. Zero rows or columns
// are rejected before the image is touched.
func (t *Tileset) Load(img *Image, rows, columns uint32) error {
	if rows == 0 || columns == 0 {
		return errors.Wrapf(ErrInvalidSize, "thicket: tileset grid %dx%d", rows, columns)
	}
	if err := t.Surface.Load(img); err != nil {
		return err
	}
	t.rows = rows
	t.columns = columns
	t.row, t.column = 0, 0
	return nil
}

// Rows returns the grid's row count.
func (t *Tileset) Rows() uint32 { return t.rows }

// Columns returns the grid's column count.
func (t *Tileset) Columns() uint32 { return t.columns }

// TileWidth returns the width of one tile.
func (t *Tileset) TileWidth() uint32 {
	if t.rows == 0 {
		return 0
	}
	return t.Surface.Width() / t.rows
}

// TileHeight returns the height of one tile.
func (t *Tileset) TileHeight() uint32 {
	if t.columns == 0 {
		return 0
	}
	return t.Surface.Height() / t.columns
}

// SelectTile picks the tile drawn by DrawTile. Out-of-range coordinates are
// ignored.
func (t *Tileset) SelectTile(row, column uint32) {
	if row < t.rows && column < t.columns {
		t.row = row
		t.column = column
	}
}

// SelectedOffset returns the buffer offset of the selected tile's top-left
// pixel.
func (t *Tileset) SelectedOffset() uint32 {
	return t.Offset(0, t.row*t.TileWidth(), t.column*t.TileHeight())
}

// DrawTile draws the selected tile with its top-left corner at (x, y).
func (t *Tileset) DrawTile(target Target, x, y uint32) {
	if t.rows == 0 || t.columns == 0 {
		return
	}
	start := t.SelectedOffset()
	tw, th := t.TileWidth(), t.TileHeight()
	for ty := uint32(0); ty < th; ty++ {
		for tx := uint32(0); tx < tw; tx++ {
			t.drawPixel(target, t.Offset(start, tx, ty), x+tx, y+ty)
		}
	}
}

// DrawTileAt selects (row, column) and draws it at (x, y).
func (t *Tileset) DrawTileAt(target Target, row, column, x, y uint32) {
	t.SelectTile(row, column)
	t.DrawTile(target, x, y)
}
