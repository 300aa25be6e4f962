package cmd

import (
	"log/slog"
	"os"

	"fulfillment/internal/adapters/out/emag"
	"fulfillment/internal/adapters/out/localfs"
	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/adapters/out/sftp"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
)

// CompositionRoot wires adapters into use case handlers. The marketplace
// client and the report journal are shared; everything else is constructed
// per handler.
type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	emagClient *emag.Client
	journal    *memory.ReportJournal
}

// NewCompositionRoot builds the object graph from validated configuration.
func NewCompositionRoot(configs Config) CompositionRoot {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	return CompositionRoot{
		configs:    configs,
		logger:     logger,
		emagClient: emag.NewClient(configs.EmagBaseURL, configs.EmagUsername, configs.EmagPassword, logger),
		journal:    memory.NewReportJournal(),
	}
}

// CreateProcessOrdersCommandHandler assembles the pipeline orchestrator with
// all its collaborators. The marketplace client serves as order feed, label
// issuer, and label fetcher at once.
func (c *CompositionRoot) CreateProcessOrdersCommandHandler() commands.ProcessOrdersCommandHandler {
	calculator := services.NewCODCalculator(c.configs.VATRate, c.configs.ShippingTaxThreshold)
	builder := services.NewLabelRequestBuilder(c.configs.Sender, nil)
	store := localfs.NewStore(c.configs.LabelOutputDir, c.logger)

	dialer := sftp.NewSSHDialer(sftp.Config{
		Host:     c.configs.SFTPHost,
		Port:     c.configs.SFTPPort,
		Username: c.configs.SFTPUsername,
		Password: c.configs.SFTPPassword,
	})
	uploader := sftp.NewUploader(dialer, c.configs.SFTPUploadDir, c.logger)

	return commands.NewProcessOrdersCommandHandler(
		c.emagClient,
		calculator,
		builder,
		c.emagClient,
		c.emagClient,
		store,
		uploader,
		c.journal,
		c.logger,
	)
}

// CreateGetLastReportQueryHandler assembles the read side of the report
// journal.
func (c *CompositionRoot) CreateGetLastReportQueryHandler() queries.GetLastReportQueryHandler {
	return queries.NewGetLastReportQueryHandler(c.journal)
}

// Logger returns the process-wide structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}
