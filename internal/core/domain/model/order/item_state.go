package order

// ItemState is the derived shipment state of a line item. It is a pure
// function of the line item's fields (see LineItem.ShipmentState) and is
// never stored.
type ItemState int

const (
	// ItemStateUnknown represents an undefined state.
	ItemStateUnknown ItemState = iota

	// Unshipped: nothing has shipped and no ship date is set.
	Unshipped

	// PartiallyShipped: some, but not all, of the ordered quantity shipped.
	PartiallyShipped

	// FullyShipped: the full ordered quantity shipped and the ship date is set.
	FullyShipped
)

// String returns the wire name of the item state. Implements fmt.Stringer.
func (s ItemState) String() string {
	switch s {
	case Unshipped:
		return "unshipped"
	case PartiallyShipped:
		return "partially_shipped"
	case FullyShipped:
		return "fully_shipped"
	default:
		return "Unknown"
	}
}
