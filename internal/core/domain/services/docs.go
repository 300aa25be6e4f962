// Package services contains the domain services of the fulfillment pipeline:
// logic that operates on orders but belongs to no single entity.
//
// CODCalculator derives the cash-on-delivery amount the carrier collects for
// an order. LabelRequestBuilder turns an order plus its COD amount into the
// waybill-generation payload the carrier endpoint expects.
//
// Both services are pure: they hold only configuration (VAT rate, threshold,
// sender block, clock) and never perform I/O, which keeps the business rules
// testable without any remote collaborator.
package services
