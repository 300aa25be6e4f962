package services

import (
	"time"

	"fulfillment/internal/core/domain/model/label"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Carrier-facing parcel attributes. One parcel per order, no envelopes,
// and the flat weight the carrier bills a standard marketplace parcel at.
const (
	defaultParcelWeight = 1.2
	parcelsPerOrder     = 1
	receiverCountry     = "Romania"
)

// LabelRequestBuilder assembles the waybill-generation payload for an order.
// The sender block is static per deployment; the receiver block and parcel
// attributes are derived from the order and the precomputed COD amount.
type LabelRequestBuilder struct {
	sender label.Party
	now    func() time.Time
}

// NewLabelRequestBuilder creates a builder with the configured sender block.
// now may be nil, in which case the system clock is used; tests inject a
// fixed clock to pin the waybill date.
func NewLabelRequestBuilder(sender label.Party, now func() time.Time) LabelRequestBuilder {
	if now == nil {
		now = time.Now
	}
	return LabelRequestBuilder{sender: sender, now: now}
}

// Build constructs the waybill request for the order with the given COD
// amount, which doubles as the declared insured value.
//
// The receiver locality must parse as an integer; an unparsable locality is
// returned as a validation error and fails the order rather than being
// silently coerced to zero.
func (b LabelRequestBuilder) Build(o order.Order, cod decimal.Decimal) (label.Request, error) {
	localityID, err := o.Customer.LocalityID()
	if err != nil {
		return label.Request{}, err
	}

	dropoffLocker := 0
	if o.Customer.UsesLockerDropoff() {
		dropoffLocker = 1
	}

	return label.Request{
		OrderID:        o.ID,
		Date:           b.now().Format("2006-01-02"),
		InsuredValue:   cod,
		Weight:         defaultParcelWeight,
		ParcelNumber:   parcelsPerOrder,
		EnvelopeNumber: 0,
		COD:            cod,
		DropoffLocker:  dropoffLocker,
		Observation:    o.IDString(),
		Receiver: label.Party{
			Name:       o.Customer.Name,
			Contact:    o.Customer.Name,
			Phone1:     o.Customer.Phone1,
			LocalityID: localityID,
			Street:     o.Customer.ShippingStreet,
			Zipcode:    o.Customer.ShippingPostalCode,
			Country:    receiverCountry,
		},
		Sender: b.sender,
	}, nil
}
