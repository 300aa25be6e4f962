// Package order models the marketplace order feed entities consumed by the
// fulfillment pipeline.
//
// Unlike aggregates this system owns, orders are externally owned, created
// and numbered by the marketplace and fetched read-only. The types here are
// therefore plain JSON-bound structs mirroring the feed wire shape, with
// domain behavior limited to the questions the pipeline asks of an order:
// whether it is cash-on-delivery, whether the receiver uses a parcel locker,
// and how its shipping locality and label filename are derived.
//
// Money fields use shopspring decimal to keep COD arithmetic exact; the feed
// serializes prices both as JSON numbers and as quoted strings.
package order
