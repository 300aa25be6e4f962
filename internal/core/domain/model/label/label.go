package label

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Label identifies a successfully issued waybill. It exists only transiently
// in memory between issuance and document fetch; the remote identifier is
// the only handle the carrier gives back.
type Label struct {
	EmagID int64
}

// EmagIDString returns the remote label identifier as a string, the form
// used in query parameters and log lines.
func (l Label) EmagIDString() string {
	return strconv.FormatInt(l.EmagID, 10)
}

// Party is one endpoint of a shipment: the receiver built from the order's
// customer block, or the static sender block drawn from configuration.
type Party struct {
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Phone1     string `json:"phone1"`
	LocalityID int    `json:"locality_id"`
	Street     string `json:"street"`
	Zipcode    string `json:"zipcode"`
	Country    string `json:"country"`
}

// Request is the waybill-generation payload: order identity, parcel
// attributes, COD amounts, and the two shipment parties. Built once per
// order, after the COD amount is computed; the carrier adapter owns the
// wire encoding.
type Request struct {
	OrderID          int64
	Date             string
	IsOversize       int
	InsuredValue     decimal.Decimal
	Weight           float64
	ParcelNumber     int
	EnvelopeNumber   int
	COD              decimal.Decimal
	PickupAndReturn  int
	SaturdayDelivery int
	SamedayDelivery  int
	DropoffLocker    int
	Observation      string
	Receiver         Party
	Sender           Party
}

// Document is the rendered label PDF for one order. A fire-and-forget
// artifact: written to local storage as an audit copy, then uploaded to the
// remote archive, with no further lifecycle.
type Document struct {
	OrderID int64
	Content []byte
}

// Filename returns the name the document is stored under.
func (d Document) Filename() string {
	return strconv.FormatInt(d.OrderID, 10) + ".pdf"
}
