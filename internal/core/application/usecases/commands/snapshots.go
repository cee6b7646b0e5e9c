package commands

import (
	"fulfillment/internal/core/domain/model/order"
)

// orderSnapshot captures the audit-relevant state of an order, including its
// line items. Used as the before/after payload of order-level audit entries.
func orderSnapshot(o *order.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		items = append(items, lineItemSnapshot(item))
	}

	return map[string]any{
		"id":               o.ID().String(),
		"customer_id":      o.CustomerID().String(),
		"po_number":        o.PONumber(),
		"due_date":         o.DueDate(),
		"quoted_ship_date": o.QuotedShipDate(),
		"notes":            o.Notes(),
		"status":           o.Status().String(),
		"line_items":       items,
	}
}

// lineItemSnapshot captures the audit-relevant state of a line item.
func lineItemSnapshot(item *order.LineItem) map[string]any {
	return map[string]any{
		"id":               item.ID().String(),
		"part_number":      item.PartNumber(),
		"description":      item.Description(),
		"quantity":         item.Quantity().String(),
		"unit":             item.Unit().String(),
		"shipped_quantity": item.ShippedQuantity().String(),
		"in_production":    item.InProduction(),
		"date_shipped":     item.DateShipped(),
		"state":            item.ShipmentState().String(),
	}
}
