package order

import (
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PaymentModeCashOnDelivery is the marketplace payment mode code for orders
// whose total is collected by the carrier at delivery time.
const PaymentModeCashOnDelivery = 1

// lockerMarker is the case-sensitive substring the marketplace embeds in the
// shipping street when the customer selected an automated parcel locker.
const lockerMarker = "EasyBox"

// Order represents one customer purchase ready to be shipped, exactly as the
// marketplace order feed reports it. Orders are created by the marketplace
// and fetched read-only; this system never mutates them.
//
// Money fields decode as decimals because the feed serializes prices both as
// JSON numbers and as quoted strings depending on endpoint version.
type Order struct {
	ID            int64           `json:"id"`
	PaymentModeID int             `json:"payment_mode_id"`
	Products      []Product       `json:"products"`
	ShippingTax   decimal.Decimal `json:"shipping_tax"`
	Customer      Customer        `json:"customer"`
}

// Product is one order line: a unit sale price, a quantity, and any vouchers
// the marketplace split onto the line.
type Product struct {
	SalePrice decimal.Decimal `json:"sale_price"`
	// Quantity of zero means the feed omitted the field; callers treat it as 1.
	Quantity     int            `json:"quantity"`
	VoucherSplit []VoucherSplit `json:"product_voucher_split"`
}

// VoucherSplit is a voucher amount applied to a single product line.
// Values are negative for discounts.
type VoucherSplit struct {
	Value decimal.Decimal `json:"value"`
}

// Customer carries the receiver contact and shipping address fields used to
// build a waybill request.
type Customer struct {
	Name               string `json:"name"`
	Phone1             string `json:"phone_1"`
	ShippingLocalityID string `json:"shipping_locality_id"`
	ShippingStreet     string `json:"shipping_street"`
	ShippingPostalCode string `json:"shipping_postal_code"`
}

// IsCashOnDelivery reports whether the carrier collects payment at delivery.
func (o Order) IsCashOnDelivery() bool {
	return o.PaymentModeID == PaymentModeCashOnDelivery
}

// IDString returns the order identifier as a string, the form used in log
// lines and error values.
func (o Order) IDString() string {
	return strconv.FormatInt(o.ID, 10)
}

// LabelFilename returns the file name the rendered label is stored under,
// both locally and on the remote archive.
func (o Order) LabelFilename() string {
	return o.IDString() + ".pdf"
}

// LocalityID parses the shipping locality identifier the carrier requires.
// The feed serializes it as a string; an unparsable value is a validation
// failure rather than a silent zero, so a broken address fails the order
// instead of producing a waybill to nowhere.
func (c Customer) LocalityID() (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.ShippingLocalityID))
	if err != nil {
		return 0, errs.NewValidationErrorWithCause("shipping_locality_id", err)
	}
	return id, nil
}

// UsesLockerDropoff reports whether the shipping street designates an
// automated parcel locker rather than a street address.
func (c Customer) UsesLockerDropoff() bool {
	return strings.Contains(c.ShippingStreet, lockerMarker)
}
