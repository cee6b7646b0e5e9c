// Package order contains the order fulfillment aggregate.
//
// Order is the aggregate root. It owns its LineItems for their whole
// lifecycle: they are created with the order, mutated only through the
// order's methods, and soft-retired with it on cancellation. Every mutation
// that touches a line item ends with a status recompute, so an order's
// status is always the pure derivation of its line items' shipment states
// (except the explicit, terminal Cancelled transition).
//
// Shipments are append-only records produced by Order.ShipLineItem. They are
// never updated or deleted; the sum of a line item's shipment quantities
// always equals that item's shipped total.
package order
