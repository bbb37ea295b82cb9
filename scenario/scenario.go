package scenario

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/ahlab/gridroute/astar"
	"github.com/ahlab/gridroute/grid"
)

// Sentinel errors for scenario loading.
var (
	// ErrMissingGrid indicates a scenario file without a grid block.
	ErrMissingGrid = errors.New("scenario: missing grid block")
	// ErrBadRect indicates a fill rect that is not [row0, col0, row1, col1].
	ErrBadRect = errors.New("scenario: rect must have four elements")
	// ErrBadAt indicates a marker position that is not [row, col].
	ErrBadAt = errors.New("scenario: at must have two elements")
	// ErrBadFill indicates a fill block with neither rect nor at.
	ErrBadFill = errors.New("scenario: fill needs a rect or an at attribute")
)

// Scenario is a fully assembled grid plus the search options to run on it.
type Scenario struct {
	Grid    *grid.Grid
	Options astar.Options
}

// HCL decode targets.
type (
	scenarioFile struct {
		Grid   *gridBlock    `hcl:"grid,block"`
		Fills  []fillBlock   `hcl:"fill,block"`
		Starts []markerBlock `hcl:"start,block"`
		Ends   []markerBlock `hcl:"end,block"`
		Search *searchBlock  `hcl:"search,block"`
	}

	gridBlock struct {
		Width  int `hcl:"width"`
		Height int `hcl:"height"`
	}

	fillBlock struct {
		Rect []int  `hcl:"rect,optional"` // [row0, col0, row1, col1]
		At   []int  `hcl:"at,optional"`   // single-cell alternative
		Type string `hcl:"type"`
	}

	markerBlock struct {
		At []int `hcl:"at"` // [row, col]
	}

	searchBlock struct {
		Diagonal      *bool    `hcl:"diagonal,optional"`
		SDFWeight     *float64 `hcl:"sdf_weight,optional"`
		Epsilon       *float64 `hcl:"epsilon,optional"`
		MaxIterations *int     `hcl:"max_iterations,optional"`
	}
)

// evalContext exposes the cell-type names as bare identifiers so scenario
// files can write `type = obstacle` instead of a quoted string.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"free":     cty.StringVal("free"),
			"obstacle": cty.StringVal("obstacle"),
			"surface":  cty.StringVal("surface"),
		},
	}
}

// Load parses and assembles the scenario in the named HCL file.
func Load(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, diags)
	}

	return assemble(file.Body)
}

// Parse assembles a scenario from in-memory HCL source; filename is used
// only for diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: parse %s: %w", filename, diags)
	}

	return assemble(file.Body)
}

// assemble decodes the HCL body and replays it onto fresh core objects:
// grid creation, fills in file order, then markers, then search options.
func assemble(body hcl.Body) (*Scenario, error) {
	var sf scenarioFile
	if diags := gohcl.DecodeBody(body, evalContext(), &sf); diags.HasErrors() {
		return nil, fmt.Errorf("scenario: decode: %w", diags)
	}
	if sf.Grid == nil {
		return nil, ErrMissingGrid
	}

	g, err := grid.New(sf.Grid.Width, sf.Grid.Height)
	if err != nil {
		return nil, err
	}

	for i, fill := range sf.Fills {
		t, err := cellTypeNamed(fill.Type)
		if err != nil {
			return nil, fmt.Errorf("fill block %d: %w", i, err)
		}
		switch {
		case len(fill.Rect) == 4:
			g.FillRect(fill.Rect[0], fill.Rect[1], fill.Rect[2], fill.Rect[3], t)
		case len(fill.Rect) > 0:
			return nil, fmt.Errorf("%w: fill block %d has %d", ErrBadRect, i, len(fill.Rect))
		case len(fill.At) == 2:
			if err := g.Set(fill.At[0], fill.At[1], t); err != nil {
				return nil, fmt.Errorf("fill block %d: %w", i, err)
			}
		case len(fill.At) > 0:
			return nil, fmt.Errorf("%w: fill block %d has %d", ErrBadAt, i, len(fill.At))
		default:
			return nil, fmt.Errorf("%w: block %d", ErrBadFill, i)
		}
	}

	for i, m := range sf.Starts {
		if len(m.At) != 2 {
			return nil, fmt.Errorf("%w: start block %d has %d", ErrBadAt, i, len(m.At))
		}
		if _, err := g.AddStart(m.At[0], m.At[1]); err != nil {
			return nil, fmt.Errorf("start block %d: %w", i, err)
		}
	}
	for i, m := range sf.Ends {
		if len(m.At) != 2 {
			return nil, fmt.Errorf("%w: end block %d has %d", ErrBadAt, i, len(m.At))
		}
		if _, err := g.AddEnd(m.At[0], m.At[1]); err != nil {
			return nil, fmt.Errorf("end block %d: %w", i, err)
		}
	}

	opts, err := searchOptions(sf.Search)
	if err != nil {
		return nil, err
	}

	return &Scenario{Grid: g, Options: opts}, nil
}

// searchOptions folds an optional search block over the astar defaults.
// Validation mirrors the astar option constructors but reports errors
// instead of panicking, since this is file input rather than caller code.
func searchOptions(b *searchBlock) (astar.Options, error) {
	opts := astar.DefaultOptions()
	if b == nil {
		return opts, nil
	}
	if b.Diagonal != nil {
		opts.AllowDiagonal = *b.Diagonal
	}
	if b.SDFWeight != nil {
		if *b.SDFWeight < 0 {
			return opts, fmt.Errorf("%w: %v", astar.ErrBadWeight, *b.SDFWeight)
		}
		opts.SDFWeight = *b.SDFWeight
	}
	if b.Epsilon != nil {
		if *b.Epsilon <= 0 {
			return opts, fmt.Errorf("%w: %v", astar.ErrBadEpsilon, *b.Epsilon)
		}
		opts.Epsilon = *b.Epsilon
	}
	if b.MaxIterations != nil {
		if *b.MaxIterations <= 0 {
			return opts, fmt.Errorf("%w: %d", astar.ErrBadIterations, *b.MaxIterations)
		}
		opts.MaxIterations = *b.MaxIterations
	}

	return opts, nil
}

// cellTypeNamed maps a scenario identifier to its CellType.
func cellTypeNamed(name string) (grid.CellType, error) {
	switch name {
	case "free":
		return grid.Free, nil
	case "obstacle":
		return grid.Obstacle, nil
	case "surface":
		return grid.Surface, nil
	default:
		return grid.Free, fmt.Errorf("%w: %q", grid.ErrBadCellType, name)
	}
}
