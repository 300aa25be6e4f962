package services

import (
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Regional defaults. The VAT rate is the Romanian standard rate and the
// threshold is the marketplace's free-shipping cutoff; both are configuration
// with these values as fallback, not universal constants.
var (
	DefaultVATRate              = decimal.NewFromFloat(0.19)
	DefaultShippingTaxThreshold = decimal.NewFromInt(250)
)

// CODCalculator computes the cash-on-delivery amount the carrier collects
// for one order. Pure and deterministic: the same order always yields the
// same amount, and no state is read or written.
//
// The amount is the VAT-inclusive product total plus any line vouchers;
// orders below the threshold additionally absorb the shipping fee into the
// collectible amount.
type CODCalculator struct {
	vatRate              decimal.Decimal
	shippingTaxThreshold decimal.Decimal
}

// NewCODCalculator creates a calculator with the given VAT rate (as a
// fraction, e.g. 0.19) and the COD total below which shipping tax is added.
func NewCODCalculator(vatRate, shippingTaxThreshold decimal.Decimal) CODCalculator {
	return CODCalculator{
		vatRate:              vatRate,
		shippingTaxThreshold: shippingTaxThreshold,
	}
}

// Calculate returns the COD amount for the order, rounded half-up to two
// decimal places. Orders not paid on delivery always yield zero.
//
// A product quantity of zero means the feed omitted the field and counts
// as one unit.
func (c CODCalculator) Calculate(o order.Order) decimal.Decimal {
	if !o.IsCashOnDelivery() {
		return decimal.Zero
	}

	vatMultiplier := decimal.NewFromInt(1).Add(c.vatRate)

	total := decimal.Zero
	for _, p := range o.Products {
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}

		line := p.SalePrice.Mul(decimal.NewFromInt(int64(quantity))).Mul(vatMultiplier)
		for _, voucher := range p.VoucherSplit {
			line = line.Add(voucher.Value)
		}

		total = total.Add(line)
	}

	if total.LessThan(c.shippingTaxThreshold) {
		total = total.Add(o.ShippingTax)
	}

	return total.Round(2)
}
