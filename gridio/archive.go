package gridio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ahlab/gridroute/grid"
)

// Version is the archive format version written by Save. Load accepts any
// 1.x archive.
const Version = "1.0"

// ErrUnsupportedVersion indicates an archive written by an incompatible
// major format version.
var ErrUnsupportedVersion = errors.New("gridio: unsupported archive version")

// PathKey names one stored path by the stable IDs of its start and end
// markers.
type PathKey struct {
	StartID, EndID int
}

// wire-format records. Kept separate from the public types so the on-disk
// layout can evolve independently of the core API.
type (
	wireMarker struct {
		ID  int `msgpack:"id"`
		Row int `msgpack:"row"`
		Col int `msgpack:"col"`
	}

	wirePath struct {
		StartID int      `msgpack:"start_id"`
		EndID   int      `msgpack:"end_id"`
		Cells   [][2]int `msgpack:"cells"`
	}

	wireArchive struct {
		Version string       `msgpack:"version"`
		SavedAt time.Time    `msgpack:"saved_at"`
		Width   int          `msgpack:"width"`
		Height  int          `msgpack:"height"`
		Cells   []uint8      `msgpack:"cells"`
		Starts  []wireMarker `msgpack:"starts"`
		Ends    []wireMarker `msgpack:"ends"`
		Paths   []wirePath   `msgpack:"paths"`
	}
)

// Save writes g and the given computed paths to w as a compressed archive.
// Paths may be nil; they are opaque cargo the core can regenerate.
func Save(w io.Writer, g *grid.Grid, paths map[PathKey][]grid.Coord) error {
	cells := g.Cells()
	arch := wireArchive{
		Version: Version,
		SavedAt: time.Now().UTC(),
		Width:   g.Width(),
		Height:  g.Height(),
		Cells:   make([]uint8, len(cells)),
		Starts:  toWireMarkers(g.Starts()),
		Ends:    toWireMarkers(g.Ends()),
	}
	for i, t := range cells {
		arch.Cells[i] = uint8(t)
	}

	// Deterministic path order keeps archives byte-comparable across runs.
	keys := make([]PathKey, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].StartID != keys[j].StartID {
			return keys[i].StartID < keys[j].StartID
		}

		return keys[i].EndID < keys[j].EndID
	})
	for _, k := range keys {
		wp := wirePath{StartID: k.StartID, EndID: k.EndID, Cells: make([][2]int, len(paths[k]))}
		for i, at := range paths[k] {
			wp.Cells[i] = [2]int{at.Row, at.Col}
		}
		arch.Paths = append(arch.Paths, wp)
	}

	zw := gzip.NewWriter(w)
	if err := msgpack.NewEncoder(zw).Encode(&arch); err != nil {
		zw.Close()

		return fmt.Errorf("gridio: encode archive: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("gridio: finish archive: %w", err)
	}

	return nil
}

// Load reads an archive from r and reconstructs the grid and its stored
// paths. Marker ID counters resume past the highest loaded ID.
func Load(r io.Reader) (*grid.Grid, map[PathKey][]grid.Coord, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("gridio: open archive: %w", err)
	}
	defer zr.Close()

	var arch wireArchive
	if err := msgpack.NewDecoder(zr).Decode(&arch); err != nil {
		return nil, nil, fmt.Errorf("gridio: decode archive: %w", err)
	}
	if !strings.HasPrefix(arch.Version, "1.") {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, arch.Version)
	}

	cells := make([]grid.CellType, len(arch.Cells))
	for i, v := range arch.Cells {
		cells[i] = grid.CellType(v)
	}
	g, err := grid.Restore(arch.Width, arch.Height, cells, fromWireMarkers(arch.Starts), fromWireMarkers(arch.Ends))
	if err != nil {
		return nil, nil, fmt.Errorf("gridio: restore grid: %w", err)
	}

	paths := make(map[PathKey][]grid.Coord, len(arch.Paths))
	for _, wp := range arch.Paths {
		path := make([]grid.Coord, len(wp.Cells))
		for i, rc := range wp.Cells {
			path[i] = grid.Coord{Row: rc[0], Col: rc[1]}
		}
		paths[PathKey{StartID: wp.StartID, EndID: wp.EndID}] = path
	}

	return g, paths, nil
}

// SaveFile writes the archive to the named file, creating or truncating it.
func SaveFile(path string, g *grid.Grid, paths map[PathKey][]grid.Coord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: create %s: %w", path, err)
	}
	if err := Save(f, g, paths); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// LoadFile reads an archive from the named file.
func LoadFile(path string) (*grid.Grid, map[PathKey][]grid.Coord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("gridio: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

func toWireMarkers(src []grid.Marker) []wireMarker {
	out := make([]wireMarker, len(src))
	for i, m := range src {
		out[i] = wireMarker{ID: m.ID, Row: m.At.Row, Col: m.At.Col}
	}

	return out
}

func fromWireMarkers(src []wireMarker) []grid.Marker {
	out := make([]grid.Marker, len(src))
	for i, m := range src {
		out[i] = grid.Marker{ID: m.ID, At: grid.Coord{Row: m.Row, Col: m.Col}}
	}

	return out
}
