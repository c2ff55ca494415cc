package services

import (
	"encoding/json"
	"fmt"
	"os"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// PriceList holds the externally configured pricing tables in minor
// currency units: a base price per clothing type and an extra charge per
// size. The calculator consults the tables but does not own them; operators
// ship them as data (see LoadPriceList) and can change them without a
// rebuild. Changed tables never re-price existing orders: design prices are
// snapshotted and the order total freezes when the order leaves pending.
type PriceList struct {
	Base      map[order.ClothingType]int64 `json:"base"`
	SizeExtra map[order.Size]int64         `json:"size_extra"`
}

// DefaultPriceList returns the built-in tables used when no price file is
// configured.
func DefaultPriceList() PriceList {
	return PriceList{
		Base: map[order.ClothingType]int64{
			order.ClothingTShirt:     2500,
			order.ClothingPolo:       3200,
			order.ClothingLongsleeve: 3000,
			order.ClothingSweatshirt: 4500,
			order.ClothingHoodie:     5500,
		},
		SizeExtra: map[order.Size]int64{
			order.SizeXL:  300,
			order.SizeXXL: 500,
		},
	}
}

// LoadPriceList reads pricing tables from a JSON file:
//
//	{"base": {"tshirt": 2500}, "size_extra": {"XL": 300}}
func LoadPriceList(path string) (PriceList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PriceList{}, fmt.Errorf("failed to read price list: %w", err)
	}

	var list PriceList
	if err := json.Unmarshal(data, &list); err != nil {
		return PriceList{}, fmt.Errorf("failed to parse price list: %w", err)
	}
	return list, nil
}

// PricingService computes order totals from the injected price list.
// It is a pure domain service: deterministic, no state beyond the tables,
// no I/O. It implements order.PriceCalculator.
//
// Pricing rules:
//   - the clothing type must have a base price, otherwise the configuration
//     is invalid;
//   - a size missing from the extra table contributes zero;
//   - the design cost is the sum of the snapshot prices carried by the
//     design specification (an empty design prices at base + size only);
//   - the unit price is multiplied by the quantity.
type PricingService struct {
	prices PriceList
}

// NewPricingService creates a calculator over the given price list.
func NewPricingService(prices PriceList) PricingService {
	return PricingService{prices: prices}
}

// Total computes (base + sizeExtra + designCost) * quantity.
func (s PricingService) Total(config order.GarmentConfig, design order.DesignSpec) (kernel.Money, error) {
	if err := config.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := design.Validate(); err != nil {
		return kernel.Money{}, err
	}

	baseAmount, ok := s.prices.Base[config.ClothingType()]
	if !ok {
		return kernel.Money{}, fmt.Errorf("%w: no base price for clothing type %q",
			order.ErrInvalidConfiguration, config.ClothingType())
	}
	base, err := kernel.NewMoney(baseAmount)
	if err != nil {
		return kernel.Money{}, err
	}

	// Absent sizes price at zero extra; the size itself was already
	// validated against the closed set by the configuration.
	extra, err := kernel.NewMoney(s.prices.SizeExtra[config.Size()])
	if err != nil {
		return kernel.Money{}, err
	}

	unit := base.Add(extra).Add(design.DesignCost())
	return unit.MultiplyBy(config.Quantity()), nil
}
