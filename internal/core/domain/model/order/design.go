package order

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

// Side identifies the garment face a design is placed on.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Validate checks that the side is front or back.
func (s Side) Validate() error {
	if s != SideFront && s != SideBack {
		return newInvalidConfigurationError("side",
			fmt.Errorf("%q is not a known garment side", string(s)))
	}
	return nil
}

// Position is a design anchor point in the caller's coordinate space.
// The values are deliberately unconstrained: physical placement bounds are a
// rendering concern that lives outside this model.
type Position struct {
	X float64
	Y float64
}

// ErrPlacedDesignIsNotConstructed is returned when using an improperly
// initialized PlacedDesign.
var ErrPlacedDesignIsNotConstructed = errors.New(
	"PlacedDesign must be created via NewPlacedDesign constructor")

// PlacedDesign is one graphic placed on a garment side. The price is a
// snapshot taken from the design-asset store at selection time; it is never
// re-fetched, so historical orders keep the price that was actually charged.
type PlacedDesign struct {
	designRef      kernel.UUID
	side           Side
	position       Position
	renderSize     float64
	price          kernel.Money
	isCustomUpload bool
	guard          guard.ConstructorGuard
}

// NewPlacedDesign creates a validated design placement.
func NewPlacedDesign(
	designRef kernel.UUID,
	side Side,
	position Position,
	renderSize float64,
	price kernel.Money,
	isCustomUpload bool,
) (PlacedDesign, error) {
	if err := designRef.Validate(); err != nil {
		return PlacedDesign{}, newInvalidConfigurationError("designRef", err)
	}
	if err := side.Validate(); err != nil {
		return PlacedDesign{}, err
	}
	if renderSize <= 0 {
		return PlacedDesign{}, newInvalidConfigurationError("renderSize",
			fmt.Errorf("%g is not greater than 0", renderSize))
	}
	if err := price.Validate(); err != nil {
		return PlacedDesign{}, newInvalidConfigurationError("price", err)
	}

	return PlacedDesign{
		designRef:      designRef,
		side:           side,
		position:       position,
		renderSize:     renderSize,
		price:          price,
		isCustomUpload: isCustomUpload,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// DesignRef returns the asset-store reference of the placed graphic.
func (p PlacedDesign) DesignRef() kernel.UUID {
	return p.designRef
}

// Side returns the garment face the design sits on.
func (p PlacedDesign) Side() Side {
	return p.side
}

// Position returns the anchor point in the caller's coordinate space.
func (p PlacedDesign) Position() Position {
	return p.position
}

// RenderSize returns the requested render size of the graphic.
func (p PlacedDesign) RenderSize() float64 {
	return p.renderSize
}

// Price returns the price snapshotted at selection time.
func (p PlacedDesign) Price() kernel.Money {
	return p.price
}

// IsCustomUpload reports whether the graphic is a one-off customer upload
// rather than a catalog preset.
func (p PlacedDesign) IsCustomUpload() bool {
	return p.isCustomUpload
}

// Validate returns ErrPlacedDesignIsNotConstructed for the zero value.
func (p PlacedDesign) Validate() error {
	return p.guard.Validate(ErrPlacedDesignIsNotConstructed)
}

// SelectedDesign is the optional primary design chosen for the order,
// tracked separately from the individual placements. Like placements it
// carries a price snapshot from selection time.
type SelectedDesign struct {
	Ref            kernel.UUID
	Price          kernel.Money
	IsCustomUpload bool
}

// ErrDesignSpecIsNotConstructed is returned when using an improperly
// initialized DesignSpec.
var ErrDesignSpecIsNotConstructed = errors.New(
	"DesignSpec must be created via NewDesignSpec or EmptyDesignSpec constructors")

// DesignSpec is the complete design side of an order configuration: an
// optional selected design plus an ordered list of placements. An empty spec
// is valid and describes a plain garment with no print.
type DesignSpec struct {
	selected *SelectedDesign
	placed   []PlacedDesign
	guard    guard.ConstructorGuard
}

// NewDesignSpec creates a validated design specification.
// Placement order is preserved; it matters for layered rendering.
func NewDesignSpec(selected *SelectedDesign, placed []PlacedDesign) (DesignSpec, error) {
	if selected != nil {
		if err := selected.Ref.Validate(); err != nil {
			return DesignSpec{}, newInvalidConfigurationError("selectedDesign", err)
		}
		if err := selected.Price.Validate(); err != nil {
			return DesignSpec{}, newInvalidConfigurationError("selectedDesign", err)
		}
	}
	for _, p := range placed {
		if err := p.Validate(); err != nil {
			return DesignSpec{}, err
		}
	}

	spec := DesignSpec{
		selected: selected,
		placed:   make([]PlacedDesign, len(placed)),
		guard:    guard.NewConstructorGuard(),
	}
	copy(spec.placed, placed)
	return spec, nil
}

// EmptyDesignSpec returns a valid specification with no designs.
func EmptyDesignSpec() DesignSpec {
	return DesignSpec{
		placed: []PlacedDesign{},
		guard:  guard.NewConstructorGuard(),
	}
}

// Selected returns the optional primary design, or nil.
func (d DesignSpec) Selected() *SelectedDesign {
	if d.selected == nil {
		return nil
	}
	selected := *d.selected
	return &selected
}

// Placed returns the ordered design placements.
func (d DesignSpec) Placed() []PlacedDesign {
	placed := make([]PlacedDesign, len(d.placed))
	copy(placed, d.placed)
	return placed
}

// DesignCost returns the summed price snapshots of the selected design and
// every placement. An empty spec costs zero.
func (d DesignSpec) DesignCost() kernel.Money {
	cost := kernel.Zero()
	if d.selected != nil {
		cost = cost.Add(d.selected.Price)
	}
	for _, p := range d.placed {
		cost = cost.Add(p.price)
	}
	return cost
}

// Validate returns ErrDesignSpecIsNotConstructed for the zero value.
func (d DesignSpec) Validate() error {
	return d.guard.Validate(ErrDesignSpecIsNotConstructed)
}
