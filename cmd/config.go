package cmd

import (
	"errors"

	"fulfillment/internal/core/domain/model/label"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Config is the full configuration surface of the service, constructed once
// at startup and injected into components; there are no ambient globals.
type Config struct {
	HTTPPort string

	EmagBaseURL  string
	EmagUsername string
	EmagPassword string

	// OrderStatus is the feed status code the pipeline polls for;
	// status 2 means ready for waybill generation.
	OrderStatus int

	// PollSchedule is a six-field cron expression (seconds included).
	PollSchedule string

	// LabelOutputDir is where local audit copies of labels are written.
	LabelOutputDir string

	// RunOnce makes the process execute a single pipeline pass and exit,
	// with a non-zero status when any order failed.
	RunOnce bool

	VATRate              decimal.Decimal
	ShippingTaxThreshold decimal.Decimal

	// Sender is the static sender block stamped onto every waybill request.
	Sender label.Party

	SFTPHost      string
	SFTPPort      string
	SFTPUsername  string
	SFTPPassword  string
	SFTPUploadDir string
}

// Validate fails fast on missing credentials: the pipeline must never start
// with empty marketplace or file-transfer credentials and fail order by
// order at runtime instead. All missing values are reported together.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"EMAG_USERNAME", c.EmagUsername},
		{"EMAG_PASSWORD", c.EmagPassword},
		{"SFTP_HOST", c.SFTPHost},
		{"SFTP_PORT", c.SFTPPort},
		{"SFTP_USERNAME", c.SFTPUsername},
		{"SFTP_PASSWORD", c.SFTPPassword},
		{"SFTP_UPLOAD_DIR", c.SFTPUploadDir},
	}

	var missing []error
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, errs.NewValueIsRequiredError(r.name))
		}
	}

	return errors.Join(missing...)
}
