// Package gridio persists grids and their computed paths as versioned,
// gzip-compressed msgpack archives.
//
// What:
//
//   - Save/Load stream an archive over io.Writer/io.Reader; SaveFile and
//     LoadFile are path-based conveniences.
//   - An archive carries everything needed to reconstruct the core state:
//     dimensions, the row-major cell classification array, and the marker
//     lists with their stable IDs (ID counters resume past the highest
//     saved ID, so the never-reuse contract survives a round trip).
//   - Computed paths ride along keyed by (start marker ID, end marker ID),
//     but they are opaque cargo: the core never depends on them at load
//     time and can always regenerate them.
//
// Format:
//
//   - msgpack map with version string, timestamp, grid payload and path
//     records, wrapped in a gzip stream. Loading rejects any major version
//     other than 1.
//
// Errors:
//
//   - ErrUnsupportedVersion for an archive written by an incompatible
//     major version; grid reconstruction errors propagate from the grid
//     package; I/O and decode errors are wrapped with context.
package gridio
