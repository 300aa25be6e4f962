package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/label"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/pipeline"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ProcessOrdersCommandHandler is the pipeline orchestrator. It drains the
// feed snapshot taken at the start of the run and pipelines each order fully
// before the next begins: compute COD, issue the waybill, download the
// rendered label, keep a local audit copy, and upload it to the archive.
//
// Failure at any stage terminates only that order's pass; the handler logs
// the failure with the offending order id and proceeds to the next order.
// A run never aborts because one order failed, and there are no retries.
type ProcessOrdersCommandHandler struct {
	feed       ports.OrderFeed
	calculator services.CODCalculator
	builder    services.LabelRequestBuilder
	issuer     ports.LabelIssuer
	fetcher    ports.LabelFetcher
	store      ports.DocumentStore
	uploader   ports.ArchiveUploader
	journal    ports.ReportJournal
	logger     *slog.Logger
}

// NewProcessOrdersCommandHandler creates the orchestrator with all pipeline
// collaborators injected.
func NewProcessOrdersCommandHandler(
	feed ports.OrderFeed,
	calculator services.CODCalculator,
	builder services.LabelRequestBuilder,
	issuer ports.LabelIssuer,
	fetcher ports.LabelFetcher,
	store ports.DocumentStore,
	uploader ports.ArchiveUploader,
	journal ports.ReportJournal,
	logger *slog.Logger,
) ProcessOrdersCommandHandler {
	return ProcessOrdersCommandHandler{
		feed:       feed,
		calculator: calculator,
		builder:    builder,
		issuer:     issuer,
		fetcher:    fetcher,
		store:      store,
		uploader:   uploader,
		journal:    journal,
		logger:     logger.With("component", "process_orders"),
	}
}

// Handle runs one pipeline pass and returns its report. A feed failure is
// fail-soft: it is logged and the run completes as a zero-order snapshot.
// The report is appended to the journal before returning.
func (h ProcessOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessOrdersCommand) (pipeline.Report, error) {
	if err := cmd.Validate(); err != nil {
		return pipeline.Report{}, err
	}

	report := pipeline.NewReport()
	log := h.logger.With("run_id", report.RunID.String())

	orders, err := h.feed.FetchOrders(ctx, cmd.Status())
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch orders", "status", cmd.Status(), "error", err)
		orders = nil
	} else {
		log.InfoContext(ctx, "Fetched orders", "status", cmd.Status(), "count", len(orders))
	}

	for _, o := range orders {
		stage, err := h.processOrder(ctx, log, o)
		if err != nil {
			report.RecordFailure(o.IDString(), stage, err)
			log.ErrorContext(ctx, "Order failed",
				"order_id", o.IDString(), "stage", stage.String(), "error", err)
			continue
		}
		report.RecordSuccess()
	}

	h.journal.Append(report)
	log.InfoContext(ctx, "Run finished",
		"processed", report.Processed, "succeeded", report.Succeeded, "failed", report.Failed)

	return report, nil
}

// processOrder pipelines a single order and reports the stage a failure
// occurred at. A panic in any collaborator is converted to an unexpected
// error at the current stage instead of taking down the whole run.
func (h ProcessOrdersCommandHandler) processOrder(
	ctx context.Context,
	log *slog.Logger,
	o order.Order,
) (stage pipeline.Stage, err error) {
	stage = pipeline.StageFetched

	defer func() {
		if r := recover(); r != nil {
			err = errs.NewUnexpectedErrorWithCause(
				"order "+o.IDString(), fmt.Errorf("panic: %v", r))
		}
	}()

	stage = pipeline.StageCODComputed
	cod := h.calculator.Calculate(o)
	log.InfoContext(ctx, "COD amount computed", "order_id", o.IDString(), "cod", cod.String())

	stage = pipeline.StageLabelIssued
	req, err := h.builder.Build(o, cod)
	if err != nil {
		return stage, err
	}

	lbl, err := h.issuer.IssueLabel(ctx, req)
	if err != nil {
		return stage, err
	}
	log.InfoContext(ctx, "Label issued", "order_id", o.IDString(), "emag_id", lbl.EmagIDString())

	stage = pipeline.StageDocumentFetched
	content, err := h.fetcher.FetchLabelDocument(ctx, lbl)
	if err != nil {
		return stage, err
	}

	stage = pipeline.StageArchived
	doc := label.Document{OrderID: o.ID, Content: content}

	path, err := h.store.Save(doc)
	if err != nil {
		return stage, err
	}
	log.InfoContext(ctx, "Label saved locally", "order_id", o.IDString(), "path", path)

	if err := h.uploader.Upload(ctx, doc.Filename(), content); err != nil {
		return stage, err
	}
	log.InfoContext(ctx, "Label archived", "order_id", o.IDString(), "filename", doc.Filename())

	return stage, nil
}
