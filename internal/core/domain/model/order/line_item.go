package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one ordered part/quantity/unit entry within an Order. It is
// owned by exactly one order and never exists, nor is deleted, on its own.
//
// LineItem maintains these invariants:
//   - part number and description are always present (denormalized from the
//     catalog at order time; later catalog edits do not touch them)
//   - ordered quantity is positive, unit is fixed at creation
//   - 0 <= shipped quantity <= ordered quantity at all times
//   - the date fully shipped is set once and never changes afterwards
//
// Shipment state (unshipped / partially shipped / fully shipped) is derived
// on demand from these fields and never stored.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// partID optionally references the catalog part this item was taken from
	partID *kernel.UUID

	// partNumber is the part number captured at order time
	partNumber string

	// description is the part description captured at order time
	description string

	// colors holds the ordered color specification, if any
	colors string

	// quantity is the ordered quantity (always positive)
	quantity kernel.Quantity

	// unit is the unit of measure, fixed at creation
	unit Unit

	// shippedQuantity is the running total of all recorded shipments
	shippedQuantity kernel.Quantity

	// inProduction is set by an explicit production-start action and
	// never cleared automatically
	inProduction bool

	// dateShipped is set when shippedQuantity reaches quantity; write-once
	dateShipped *time.Time

	// isConstructed ensures the line item was created via a constructor
	isConstructed bool
}

// NewLineItem creates a line item for a new order. The part reference is
// optional; part number and description are required because they are the
// order's own record of what was sold, independent of later catalog edits.
func NewLineItem(
	id kernel.UUID,
	partID *kernel.UUID,
	partNumber string,
	description string,
	colors string,
	quantity kernel.Quantity,
	unit Unit,
) (*LineItem, error) {
	item := &LineItem{
		shippedQuantity: kernel.ZeroQuantity(),
		isConstructed:   true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setPartID(partID),
		item.setPartNumber(partNumber),
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setUnit(unit),
	); err != nil {
		return nil, err
	}

	item.colors = colors
	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence, including its
// shipped total, production flag, and ship date.
func RestoreLineItem(
	id kernel.UUID,
	partID *kernel.UUID,
	partNumber string,
	description string,
	colors string,
	quantity kernel.Quantity,
	unit Unit,
	shippedQuantity kernel.Quantity,
	inProduction bool,
	dateShipped *time.Time,
) (*LineItem, error) {
	item, err := NewLineItem(id, partID, partNumber, description, colors, quantity, unit)
	if err != nil {
		return nil, err
	}

	if shippedQuantity.GreaterThan(quantity) {
		return nil, errs.NewValueIsInvalidError("shipped quantity exceeds ordered quantity")
	}

	item.shippedQuantity = shippedQuantity
	item.inProduction = inProduction
	item.dateShipped = dateShipped
	return item, nil
}

// Validate ensures the LineItem instance was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// PartID returns the optional catalog part reference.
// Returns nil if the item was entered without a catalog part.
func (li *LineItem) PartID() *kernel.UUID {
	return li.partID
}

// PartNumber returns the part number captured at order time.
func (li *LineItem) PartNumber() string {
	return li.partNumber
}

// Description returns the part description captured at order time.
func (li *LineItem) Description() string {
	return li.description
}

// Colors returns the ordered color specification, if any.
func (li *LineItem) Colors() string {
	return li.colors
}

// Quantity returns the ordered quantity.
func (li *LineItem) Quantity() kernel.Quantity {
	return li.quantity
}

// Unit returns the unit of measure.
func (li *LineItem) Unit() Unit {
	return li.unit
}

// ShippedQuantity returns the running total of all recorded shipments.
func (li *LineItem) ShippedQuantity() kernel.Quantity {
	return li.shippedQuantity
}

// InProduction reports whether production has been started for this item.
func (li *LineItem) InProduction() bool {
	return li.inProduction
}

// DateShipped returns the date the item became fully shipped.
// Returns nil while the item is not fully shipped.
func (li *LineItem) DateShipped() *time.Time {
	return li.dateShipped
}

// RemainingQuantity returns the ordered quantity minus the shipped total.
func (li *LineItem) RemainingQuantity() kernel.Quantity {
	remaining, err := li.quantity.Sub(li.shippedQuantity)
	if err != nil {
		// unreachable while the ledger invariant holds
		return kernel.ZeroQuantity()
	}
	return remaining
}

// ShipmentState derives the item's shipment state from its fields:
//   - Unshipped: nothing shipped and no ship date set
//   - PartiallyShipped: some but not all of the quantity shipped
//   - FullyShipped: the ship date is set
func (li *LineItem) ShipmentState() ItemState {
	if li.dateShipped != nil {
		return FullyShipped
	}
	if li.shippedQuantity.IsZero() {
		return Unshipped
	}
	return PartiallyShipped
}

// recordShipment applies one shipment to the ledger.
//
// The requested quantity must be positive and must not exceed the remaining
// quantity; an excess request is rejected whole with OverShipmentError and
// leaves the shipped total unchanged. When the shipped total reaches the
// ordered quantity the ship date is set, unless a previous shipment already
// set it.
//
// Only the owning Order calls this, so every ledger update is paired with a
// shipment record and a status recompute.
func (li *LineItem) recordShipment(quantity kernel.Quantity, shipDate time.Time) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidError("shipment quantity must be greater than 0")
	}

	newShipped := li.shippedQuantity.Add(quantity)
	if newShipped.GreaterThan(li.quantity) {
		return errs.NewOverShipmentError(quantity.String(), li.RemainingQuantity().String())
	}

	li.shippedQuantity = newShipped
	if !li.shippedQuantity.LessThan(li.quantity) && li.dateShipped == nil {
		li.dateShipped = &shipDate
	}
	return nil
}

// startProduction sets the production flag. The flag is independent of
// shipment state and is never cleared automatically.
func (li *LineItem) startProduction() {
	li.inProduction = true
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setPartID(partID *kernel.UUID) error {
	if partID == nil {
		return nil
	}
	if err := partID.Validate(); err != nil {
		return err
	}
	li.partID = partID
	return nil
}

func (li *LineItem) setPartNumber(partNumber string) error {
	if partNumber == "" {
		return errs.NewValueIsRequiredError("partNumber")
	}
	li.partNumber = partNumber
	return nil
}

func (li *LineItem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	li.description = description
	return nil
}

func (li *LineItem) setQuantity(quantity kernel.Quantity) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnit(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	li.unit = unit
	return nil
}
