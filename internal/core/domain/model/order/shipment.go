package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment is one immutable entry in a line item's shipment ledger.
//
// A Shipment is created exactly once, by Order.ShipLineItem, at the same
// moment the line item's shipped total is incremented by its quantity. It
// carries no mutators: corrections would be compensating records, which this
// system does not model. The reconciliation invariant is that the sum of a
// line item's shipment quantities equals that item's shipped total.
type Shipment struct {
	// id is the unique identifier for the shipment record
	id kernel.UUID

	// lineItemID references the line item this shipment was recorded against
	lineItemID kernel.UUID

	// quantity is the amount shipped (always positive)
	quantity kernel.Quantity

	// shipDate is the date the goods went out
	shipDate time.Time

	// trackingNumber is the optional carrier tracking reference
	trackingNumber string

	// notes holds optional free-form remarks
	notes string

	// createdBy identifies the actor who recorded the shipment
	createdBy string

	// createdAt is the record creation timestamp
	createdAt time.Time

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a shipment record with validation. The quantity must be
// positive and the creator identity must be present; tracking number and
// notes are optional.
func NewShipment(
	id kernel.UUID,
	lineItemID kernel.UUID,
	quantity kernel.Quantity,
	shipDate time.Time,
	trackingNumber string,
	notes string,
	createdBy string,
	createdAt time.Time,
) (*Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := lineItemID.Validate(); err != nil {
		return nil, err
	}
	if !quantity.IsPositive() {
		return nil, errs.NewValueIsInvalidError("shipment quantity must be greater than 0")
	}
	if shipDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("shipDate")
	}
	if createdBy == "" {
		return nil, errs.NewValueIsRequiredError("createdBy")
	}

	return &Shipment{
		id:             id,
		lineItemID:     lineItemID,
		quantity:       quantity,
		shipDate:       shipDate,
		trackingNumber: trackingNumber,
		notes:          notes,
		createdBy:      createdBy,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// RestoreShipment reconstructs a shipment from persistence. It applies the
// same validation as NewShipment; a row that fails it is corrupt.
func RestoreShipment(
	id kernel.UUID,
	lineItemID kernel.UUID,
	quantity kernel.Quantity,
	shipDate time.Time,
	trackingNumber string,
	notes string,
	createdBy string,
	createdAt time.Time,
) (*Shipment, error) {
	return NewShipment(id, lineItemID, quantity, shipDate, trackingNumber, notes, createdBy, createdAt)
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// LineItemID returns the identifier of the line item shipped against.
func (s *Shipment) LineItemID() kernel.UUID {
	return s.lineItemID
}

// Quantity returns the shipped quantity.
func (s *Shipment) Quantity() kernel.Quantity {
	return s.quantity
}

// ShipDate returns the date the goods shipped.
func (s *Shipment) ShipDate() time.Time {
	return s.shipDate
}

// TrackingNumber returns the carrier tracking reference, if any.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Notes returns the free-form remarks, if any.
func (s *Shipment) Notes() string {
	return s.notes
}

// CreatedBy returns the identity of the actor who recorded the shipment.
func (s *Shipment) CreatedBy() string {
	return s.createdBy
}

// CreatedAt returns the record creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}
