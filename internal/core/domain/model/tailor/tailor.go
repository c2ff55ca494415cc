package tailor

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// Domain errors for tailor operations.
var (
	// ErrNameIsRequired is returned when attempting to create a tailor without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrTailorIsNotConstructed is returned when using an improperly initialized Tailor.
	ErrTailorIsNotConstructed = errors.New("Tailor must be created via NewTailor or RestoreTailor constructors")
)

const (
	ratingMin = 0.0
	ratingMax = 5.0
)

// Tailor represents a fulfillment agent capable of working custom orders.
// It is a read-mostly registry entry: identity, contact data, skills, an
// optional rating, and the active flag the assignment path checks.
//
// Deactivating a tailor only blocks new assignment; orders already assigned
// continue unaffected.
type Tailor struct {
	id        kernel.UUID
	name      string
	phone     string
	skills    []string
	isActive  bool
	rating    *float64
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewTailor creates an active tailor with the given name, optional phone,
// and skill set. Skills are free-form tags ("embroidery", "screen_print");
// duplicates are kept as provided.
func NewTailor(id kernel.UUID, name string, phone string, skills []string) (*Tailor, error) {
	t := &Tailor{
		isActive:  true,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
	); err != nil {
		return nil, err
	}

	t.phone = phone
	t.skills = append([]string(nil), skills...)
	return t, nil
}

// RestoreTailor reconstructs a tailor from persistent storage, including
// its active flag and optional rating.
func RestoreTailor(
	id kernel.UUID,
	name string,
	phone string,
	skills []string,
	isActive bool,
	rating *float64,
	createdAt time.Time,
) (*Tailor, error) {
	t := &Tailor{
		isActive:  isActive,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
	); err != nil {
		return nil, err
	}
	if rating != nil {
		if err := t.SetRating(*rating); err != nil {
			return nil, err
		}
	}

	t.phone = phone
	t.skills = append([]string(nil), skills...)
	return t, nil
}

// Validate ensures the Tailor was created via a constructor.
func (t *Tailor) Validate() error {
	if t == nil {
		return ErrTailorIsNotConstructed
	}
	return t.guard.Validate(ErrTailorIsNotConstructed)
}

// IsEqual compares two tailors by identity.
func (t *Tailor) IsEqual(other *Tailor) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tailor's unique identifier.
func (t *Tailor) ID() kernel.UUID {
	return t.id
}

// Name returns the tailor's display name.
func (t *Tailor) Name() string {
	return t.name
}

// Phone returns the optional contact phone, empty when unset.
func (t *Tailor) Phone() string {
	return t.phone
}

// Skills returns a copy of the tailor's skill tags.
func (t *Tailor) Skills() []string {
	return append([]string(nil), t.skills...)
}

// IsActive reports whether the tailor accepts new assignments.
func (t *Tailor) IsActive() bool {
	return t.isActive
}

// Rating returns the optional rating, or nil when not yet rated.
func (t *Tailor) Rating() *float64 {
	if t.rating == nil {
		return nil
	}
	rating := *t.rating
	return &rating
}

// CreatedAt returns the registration timestamp.
func (t *Tailor) CreatedAt() time.Time {
	return t.createdAt
}

// SetActive toggles whether the tailor may receive new assignments.
// Deactivation is the soft alternative to deletion: orders that already
// reference this tailor stay intact.
func (t *Tailor) SetActive(active bool) {
	t.isActive = active
}

// SetRating records a rating in the [0, 5] range.
func (t *Tailor) SetRating(rating float64) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	t.rating = &rating
	return nil
}

func (t *Tailor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tailor) setName(name string) error {
	if name == "" {
		return fmt.Errorf("tailor is invalid: %w", ErrNameIsRequired)
	}
	t.name = name
	return nil
}
