// Package editor is the interactive terminal front end for gridroute: a
// tcell full-screen editor for painting obstacles, placing start/end
// markers, running pathfinding, and inspecting the distance field as a
// heatmap.
//
// Keys:
//
//	arrows / h j k l   move the cursor (the viewport follows)
//	o                  toggle Obstacle at the cursor
//	x                  paint Surface at the cursor
//	f                  clear the cursor cell to Free
//	s / e              add a start / end marker at the cursor
//	D                  remove any marker at the cursor
//	r                  route every start against every end
//	d                  toggle the distance-field heatmap
//	c                  clear routed paths
//	w                  save the archive (when a save path was given)
//	q / Esc / Ctrl-C   quit
//
// The editor owns presentation state only: cell edits, markers and searches
// all go through the grid/astar packages, and computed paths are treated as
// a disposable overlay that any grid edit invalidates wholesale.
package editor
