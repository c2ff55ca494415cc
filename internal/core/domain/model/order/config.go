package order

import (
	"errors"
	"fmt"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrInvalidConfiguration is the sentinel for all caller-correctable garment
// configuration failures: unknown clothing type or size, quantity below one,
// malformed design references. Wrap with newInvalidConfigurationError so
// callers can classify with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid garment configuration")

func newInvalidConfigurationError(paramName string, cause error) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration,
		errs.NewValueIsInvalidErrorWithCause(paramName, cause))
}

// ClothingType is the closed set of garments the atelier produces.
type ClothingType string

const (
	ClothingTShirt     ClothingType = "tshirt"
	ClothingPolo       ClothingType = "polo"
	ClothingLongsleeve ClothingType = "longsleeve"
	ClothingSweatshirt ClothingType = "sweatshirt"
	ClothingHoodie     ClothingType = "hoodie"
)

func getClothingTypes() map[ClothingType]struct{} {
	return map[ClothingType]struct{}{
		ClothingTShirt:     {},
		ClothingPolo:       {},
		ClothingLongsleeve: {},
		ClothingSweatshirt: {},
		ClothingHoodie:     {},
	}
}

// Validate checks membership in the closed clothing type set.
func (c ClothingType) Validate() error {
	if _, ok := getClothingTypes()[c]; !ok {
		return newInvalidConfigurationError("clothingType",
			fmt.Errorf("%q is not a known clothing type", string(c)))
	}
	return nil
}

// Size is the closed set of garment sizes.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

func getSizes() map[Size]struct{} {
	return map[Size]struct{}{
		SizeXS: {}, SizeS: {}, SizeM: {}, SizeL: {}, SizeXL: {}, SizeXXL: {},
	}
}

// Validate checks membership in the closed size set.
func (s Size) Validate() error {
	if _, ok := getSizes()[s]; !ok {
		return newInvalidConfigurationError("size",
			fmt.Errorf("%q is not a known size", string(s)))
	}
	return nil
}

// ErrGarmentConfigIsNotConstructed is returned when using an improperly
// initialized GarmentConfig.
var ErrGarmentConfigIsNotConstructed = errors.New(
	"GarmentConfig must be created via NewGarmentConfig constructor")

// GarmentConfig is the customer-chosen garment configuration of an order:
// what to produce, in which size and color, and how many. It is an immutable
// value object; editing a pending order replaces the whole configuration.
type GarmentConfig struct {
	clothingType ClothingType
	size         Size
	color        string
	quantity     int
	notes        string
	guard        guard.ConstructorGuard
}

// NewGarmentConfig creates a validated garment configuration.
// The clothing type and size must belong to their closed sets, color must be
// non-empty, and quantity must be at least one. Notes are free-form and
// optional.
func NewGarmentConfig(
	clothingType ClothingType,
	size Size,
	color string,
	quantity int,
	notes string,
) (GarmentConfig, error) {
	if err := clothingType.Validate(); err != nil {
		return GarmentConfig{}, err
	}
	if err := size.Validate(); err != nil {
		return GarmentConfig{}, err
	}
	if color == "" {
		return GarmentConfig{}, newInvalidConfigurationError("color",
			errors.New("color is required"))
	}
	if quantity < 1 {
		return GarmentConfig{}, newInvalidConfigurationError("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return GarmentConfig{
		clothingType: clothingType,
		size:         size,
		color:        color,
		quantity:     quantity,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// ClothingType returns the garment type.
func (c GarmentConfig) ClothingType() ClothingType {
	return c.clothingType
}

// Size returns the garment size.
func (c GarmentConfig) Size() Size {
	return c.size
}

// Color returns the garment color.
func (c GarmentConfig) Color() string {
	return c.color
}

// Quantity returns the number of garments ordered.
func (c GarmentConfig) Quantity() int {
	return c.quantity
}

// Notes returns the optional free-form customer notes.
func (c GarmentConfig) Notes() string {
	return c.notes
}

// Validate returns ErrGarmentConfigIsNotConstructed for the zero value.
func (c GarmentConfig) Validate() error {
	return c.guard.Validate(ErrGarmentConfigIsNotConstructed)
}
