// Package scenario loads declarative grid scenarios from HCL files: grid
// dimensions, obstacle/surface fills, start/end markers, and search
// options, assembled into ready-to-run core objects.
//
// A scenario file looks like:
//
//	grid {
//	  width  = 20
//	  height = 20
//	}
//
//	fill {
//	  rect = [3, 0, 3, 15]   // [row0, col0, row1, col1], inclusive
//	  type = obstacle
//	}
//
//	start { at = [0, 0] }
//	end   { at = [19, 19] }
//
//	search {
//	  diagonal       = true
//	  sdf_weight     = 0.5
//	  epsilon        = 0.1
//	  max_iterations = 100000
//	}
//
// Cell types appear as bare identifiers (free, obstacle, surface), resolved
// through an HCL evaluation context. Fill blocks apply in file order, so a
// later fill overwrites an earlier one, exactly like interactive edits.
// The search block is optional; omitted attributes keep their astar
// defaults.
//
// Errors:
//
//   - ErrMissingGrid: no grid block in the file.
//   - ErrBadRect / ErrBadAt: malformed coordinate lists.
//   - option and marker validation errors propagate from astar and grid.
package scenario
