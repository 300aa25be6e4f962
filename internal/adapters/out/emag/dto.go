package emag

import (
	"encoding/json"

	"fulfillment/internal/core/domain/model/label"
	"fulfillment/internal/core/domain/model/order"
)

// orderReadResponse is the wire shape of POST order/read.
type orderReadResponse struct {
	IsError bool          `json:"isError"`
	Results []order.Order `json:"results"`
}

// awbSaveRequest is the wire shape of POST awb/save. The endpoint expects the
// monetary amounts as JSON numbers, so they are converted out of their decimal
// form here; decimal's default encoding would quote them.
type awbSaveRequest struct {
	OrderID          int64       `json:"order_id"`
	Date             string      `json:"date"`
	IsOversize       int         `json:"is_oversize"`
	InsuredValue     json.Number `json:"insured_value"`
	Weight           float64     `json:"weight"`
	ParcelNumber     int         `json:"parcel_number"`
	EnvelopeNumber   int         `json:"envelope_number"`
	COD              json.Number `json:"cod"`
	PickupAndReturn  int         `json:"pickup_and_return"`
	SaturdayDelivery int         `json:"saturday_delivery"`
	SamedayDelivery  int         `json:"sameday_delivery"`
	DropoffLocker    int         `json:"dropoff_locker"`
	Observation      string      `json:"observation"`
	Receiver         label.Party `json:"receiver"`
	Sender           label.Party `json:"sender"`
}

func newAWBSaveRequest(r label.Request) awbSaveRequest {
	return awbSaveRequest{
		OrderID:          r.OrderID,
		Date:             r.Date,
		IsOversize:       r.IsOversize,
		InsuredValue:     json.Number(r.InsuredValue.String()),
		Weight:           r.Weight,
		ParcelNumber:     r.ParcelNumber,
		EnvelopeNumber:   r.EnvelopeNumber,
		COD:              json.Number(r.COD.String()),
		PickupAndReturn:  r.PickupAndReturn,
		SaturdayDelivery: r.SaturdayDelivery,
		SamedayDelivery:  r.SamedayDelivery,
		DropoffLocker:    r.DropoffLocker,
		Observation:      r.Observation,
		Receiver:         r.Receiver,
		Sender:           r.Sender,
	}
}

// awbSaveResponse is the wire shape of POST awb/save. Messages keep their
// raw JSON form: the API emits them as strings, arrays, or objects depending
// on the error, and they are only ever surfaced verbatim.
type awbSaveResponse struct {
	IsError  bool            `json:"isError"`
	Messages json.RawMessage `json:"messages"`
	Results  awbSaveResults  `json:"results"`
}

type awbSaveResults struct {
	AWB []awbEntry `json:"awb"`
}

type awbEntry struct {
	EmagID int64 `json:"emag_id"`
}

// messageText flattens the raw messages field for error reporting.
func (r awbSaveResponse) messageText() string {
	if len(r.Messages) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(r.Messages, &s); err == nil {
		return s
	}
	return string(r.Messages)
}
