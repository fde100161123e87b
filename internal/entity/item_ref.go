package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ItemKind tells which identifier space an ItemRef points into.
type ItemKind int

const (
	ItemFuel ItemKind = iota + 1
	ItemService
)

func (k ItemKind) String() string {
	switch k {
	case ItemFuel:
		return "fuel"
	case ItemService:
		return "service"
	default:
		return "unknown"
	}
}

// ErrMalformedItemRef is returned when a textual item reference cannot be parsed.
var ErrMalformedItemRef = errors.New("malformed item reference")

// ItemRef references either a FuelStock or a Service. The two id spaces are
// unrelated, so an id is never meaningful without its kind.
type ItemRef struct {
	Kind ItemKind
	ID   uint
}

// FuelRef builds a reference to a fuel stock row.
func FuelRef(id uint) ItemRef { return ItemRef{Kind: ItemFuel, ID: id} }

// ServiceRef builds a reference to a service row.
func ServiceRef(id uint) ItemRef { return ItemRef{Kind: ItemService, ID: id} }

// IsFuel reports whether the reference points to a fuel stock.
func (r ItemRef) IsFuel() bool { return r.Kind == ItemFuel }

// IsService reports whether the reference points to a service.
func (r ItemRef) IsService() bool { return r.Kind == ItemService }

// String renders the canonical "fuel:<id>" / "service:<id>" form.
func (r ItemRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// ParseItemRef parses "fuel:7", "service:3" and the short "C:7" / "S:3" forms.
func ParseItemRef(raw string) (ItemRef, error) {
	tag, idStr, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return ItemRef{}, fmt.Errorf("%w: %q", ErrMalformedItemRef, raw)
	}

	var kind ItemKind
	switch strings.ToLower(tag) {
	case "fuel", "c":
		kind = ItemFuel
	case "service", "s":
		kind = ItemService
	default:
		return ItemRef{}, fmt.Errorf("%w: unknown tag %q", ErrMalformedItemRef, tag)
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return ItemRef{}, fmt.Errorf("%w: invalid id %q", ErrMalformedItemRef, idStr)
	}
	return ItemRef{Kind: kind, ID: uint(id)}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (r ItemRef) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *ItemRef) UnmarshalText(b []byte) error {
	parsed, err := ParseItemRef(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
