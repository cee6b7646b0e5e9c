package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the fulfillment domain. A customer places
// an order composed of line items; line items are partially or fully shipped
// over time, and the order's status is derived from the aggregate shipment
// state of its items.
//
// Order maintains these invariants:
//   - created together with at least one line item, as one unit
//   - the purchase-order number is present (its per-customer uniqueness is
//     enforced by the repository)
//   - status is never set directly: it is recomputed after every line-item
//     mutation, except the explicit Cancel transition, which is terminal
//   - shipments are appended only through ShipLineItem, which updates the
//     ledger, the ship date, and the status as one logical step
//
// The struct uses private fields; all mutation goes through validated
// methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// poNumber is the customer's purchase-order number (unique per customer)
	poNumber string

	// dueDate is the optional date the order is due
	dueDate *time.Time

	// quotedShipDate is the optional ship date quoted to the customer
	quotedShipDate *time.Time

	// notes holds optional free-form remarks
	notes string

	// status is the derived lifecycle state
	status Status

	// lineItems are the owned line items (never empty)
	lineItems []*LineItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order together with its line items, as one unit.
// Initial status is Pending: no shipments exist yet, so no recompute runs.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the customer placing the order
//   - poNumber: the customer's purchase-order number (required)
//   - dueDate, quotedShipDate: optional dates
//   - notes: optional remarks
//   - lineItems: the ordered items, at least one, each built via NewLineItem
//
// Returns a validation error if any parameter is invalid; in that case no
// order exists at all, mirroring the all-or-nothing creation contract.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	poNumber string,
	dueDate *time.Time,
	quotedShipDate *time.Time,
	notes string,
	lineItems []*LineItem,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPONumber(poNumber),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	order.dueDate = dueDate
	order.quotedShipDate = quotedShipDate
	order.notes = notes
	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status
// and line items. The status must be a valid Status value.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	poNumber string,
	dueDate *time.Time,
	quotedShipDate *time.Time,
	notes string,
	status Status,
	lineItems []*LineItem,
) (*Order, error) {
	order, err := NewOrder(id, customerID, poNumber, dueDate, quotedShipDate, notes, lineItems)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PONumber returns the customer's purchase-order number.
func (o *Order) PONumber() string {
	return o.poNumber
}

// DueDate returns the optional due date.
func (o *Order) DueDate() *time.Time {
	return o.dueDate
}

// QuotedShipDate returns the optional quoted ship date.
func (o *Order) QuotedShipDate() *time.Time {
	return o.quotedShipDate
}

// Notes returns the free-form remarks, if any.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current derived status of the order.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns the order's line items. The slice is a copy; the items
// themselves are the aggregate's own and must only be mutated through the
// order's methods.
func (o *Order) LineItems() []*LineItem {
	items := make([]*LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// LineItem returns the owned line item with the given ID.
// Returns ObjectNotFoundError if no such item belongs to this order; this is
// the cross-check that stops a shipment addressed through the wrong order.
func (o *Order) LineItem(lineItemID kernel.UUID) (*LineItem, error) {
	if err := lineItemID.Validate(); err != nil {
		return nil, err
	}
	for _, item := range o.lineItems {
		if item.ID().IsEqual(lineItemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineItem", lineItemID.String())
}

// UpdateDetails replaces the order's editable fields: PO number, due date,
// quoted ship date, and notes. Status is not editable through any update;
// it only ever changes via recompute or Cancel.
func (o *Order) UpdateDetails(
	poNumber string,
	dueDate *time.Time,
	quotedShipDate *time.Time,
	notes string,
) error {
	if err := o.setPONumber(poNumber); err != nil {
		return err
	}
	o.dueDate = dueDate
	o.quotedShipDate = quotedShipDate
	o.notes = notes
	return nil
}

// Cancel performs the explicit, terminal cancellation transition.
// Rows are not removed; line items stay as they are, and subsequent
// recomputes leave the Cancelled status untouched.
//
// Returns an error if the order is already cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartProduction flags the given line item as in production and recomputes
// the order status. The flag does not affect the item's shipment state and
// is never cleared automatically.
//
// Returns ObjectNotFoundError if the line item does not belong to this order.
func (o *Order) StartProduction(lineItemID kernel.UUID) (*LineItem, error) {
	item, err := o.LineItem(lineItemID)
	if err != nil {
		return nil, err
	}

	item.startProduction()
	o.recomputeStatus()
	return item, nil
}

// ShipLineItem records a shipment against one of the order's line items.
//
// This is the shipment recorder of the aggregate. In one logical step it:
//   - locates the line item (ObjectNotFoundError if it belongs to another
//     order)
//   - applies the quantity to the ledger (OverShipmentError if the request
//     exceeds the remaining quantity; the whole request is rejected)
//   - sets the item's ship date when it becomes fully shipped
//   - appends an immutable Shipment record
//   - recomputes the order status
//
// Persisting all of it atomically is the caller's transaction's concern; the
// aggregate guarantees the in-memory state is consistent or unchanged.
func (o *Order) ShipLineItem(
	lineItemID kernel.UUID,
	quantity kernel.Quantity,
	shipDate time.Time,
	trackingNumber string,
	notes string,
	createdBy string,
) (*Shipment, error) {
	item, err := o.LineItem(lineItemID)
	if err != nil {
		return nil, err
	}

	shipment, err := NewShipment(
		kernel.NewUUID(),
		item.ID(),
		quantity,
		shipDate,
		trackingNumber,
		notes,
		createdBy,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = item.recordShipment(quantity, shipDate); err != nil {
		return nil, err
	}

	o.recomputeStatus()
	return shipment, nil
}

// DeriveStatus is the order status aggregation rule as a pure function,
// evaluated over the current set of line items:
//
//   - current == Cancelled: stays Cancelled (recompute never overrides it)
//   - every item fully shipped: Shipped
//   - any item in production, or any item with a non-zero shipped total:
//     Production
//   - otherwise, including zero items: Pending
func DeriveStatus(current Status, lineItems []*LineItem) Status {
	if current.IsCancelled() {
		return Cancelled
	}
	if len(lineItems) == 0 {
		return Pending
	}

	allShipped := true
	anyStarted := false
	for _, item := range lineItems {
		if item.ShipmentState() != FullyShipped {
			allShipped = false
		}
		if item.InProduction() || item.ShippedQuantity().IsPositive() {
			anyStarted = true
		}
	}

	if allShipped {
		return Shipped
	}
	if anyStarted {
		return Production
	}
	return Pending
}

// recomputeStatus applies DeriveStatus to the aggregate. Every line-item
// mutation ends here; callers cannot skip it.
func (o *Order) recomputeStatus() {
	o.status = DeriveStatus(o.status, o.lineItems)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPONumber(poNumber string) error {
	if poNumber == "" {
		return errs.NewValueIsRequiredError("poNumber")
	}
	o.poNumber = poNumber
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	seen := make(map[kernel.UUID]struct{}, len(lineItems))
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.ID()]; dup {
			return errs.NewValueIsInvalidError("duplicate line item ID")
		}
		seen[item.ID()] = struct{}{}
	}

	o.lineItems = make([]*LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}
