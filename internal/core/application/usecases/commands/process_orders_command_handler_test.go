package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/label"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/pipeline"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderFeed struct{ mock.Mock }

func (m *MockOrderFeed) FetchOrders(ctx context.Context, status int) ([]order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

type MockLabelIssuer struct{ mock.Mock }

func (m *MockLabelIssuer) IssueLabel(ctx context.Context, req label.Request) (label.Label, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(label.Label), args.Error(1)
}

type MockLabelFetcher struct{ mock.Mock }

func (m *MockLabelFetcher) FetchLabelDocument(ctx context.Context, l label.Label) ([]byte, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockDocumentStore struct{ mock.Mock }

func (m *MockDocumentStore) Save(doc label.Document) (string, error) {
	args := m.Called(doc)
	return args.String(0), args.Error(1)
}

type MockArchiveUploader struct{ mock.Mock }

func (m *MockArchiveUploader) Upload(ctx context.Context, filename string, content []byte) error {
	args := m.Called(ctx, filename, content)
	return args.Error(0)
}

type PanickingUploader struct{}

func (PanickingUploader) Upload(_ context.Context, _ string, _ []byte) error {
	panic("session torn down mid-transfer")
}

type MockReportJournal struct{ mock.Mock }

func (m *MockReportJournal) Append(report pipeline.Report) {
	m.Called(report)
}

func (m *MockReportJournal) Last() (pipeline.Report, bool) {
	args := m.Called()
	return args.Get(0).(pipeline.Report), args.Bool(1)
}

type handlerFixture struct {
	feed     *MockOrderFeed
	issuer   *MockLabelIssuer
	fetcher  *MockLabelFetcher
	store    *MockDocumentStore
	uploader *MockArchiveUploader
	journal  *MockReportJournal
}

func newFixture() *handlerFixture {
	return &handlerFixture{
		feed:     new(MockOrderFeed),
		issuer:   new(MockLabelIssuer),
		fetcher:  new(MockLabelFetcher),
		store:    new(MockDocumentStore),
		uploader: new(MockArchiveUploader),
		journal:  new(MockReportJournal),
	}
}

func (f *handlerFixture) handler() commands.ProcessOrdersCommandHandler {
	return f.handlerWithUploader(f.uploader)
}

func (f *handlerFixture) handlerWithUploader(uploader interface {
	Upload(ctx context.Context, filename string, content []byte) error
}) commands.ProcessOrdersCommandHandler {
	calculator := services.NewCODCalculator(
		services.DefaultVATRate, services.DefaultShippingTaxThreshold)
	builder := services.NewLabelRequestBuilder(label.Party{Name: "ACME SRL"}, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return commands.NewProcessOrdersCommandHandler(
		f.feed, calculator, builder, f.issuer, f.fetcher, f.store, uploader, f.journal, logger)
}

func codOrder(id int64) order.Order {
	return order.Order{
		ID:            id,
		PaymentModeID: order.PaymentModeCashOnDelivery,
		ShippingTax:   decimal.NewFromInt(10),
		Products:      []order.Product{{SalePrice: decimal.NewFromInt(100), Quantity: 1}},
		Customer: order.Customer{
			Name:               "Ion Popescu",
			Phone1:             "+40700000000",
			ShippingLocalityID: "8801",
			ShippingStreet:     "Str. Exemplu 1",
			ShippingPostalCode: "010101",
		},
	}
}

func mustCommand(t *testing.T, status int) commands.ProcessOrdersCommand {
	t.Helper()
	cmd, err := commands.NewProcessOrdersCommand(status)
	require.NoError(t, err)
	return cmd
}

func TestProcessOrdersCommandHandler_AllOrdersArchived(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	pdf := []byte("%PDF-1.4 label")

	f.feed.On("FetchOrders", ctx, 2).
		Return([]order.Order{codOrder(1), codOrder(2)}, nil).Once()
	f.issuer.On("IssueLabel", ctx, mock.AnythingOfType("label.Request")).
		Return(label.Label{EmagID: 777}, nil).Twice()
	f.fetcher.On("FetchLabelDocument", ctx, label.Label{EmagID: 777}).
		Return(pdf, nil).Twice()
	f.store.On("Save", mock.AnythingOfType("label.Document")).Return("1.pdf", nil).Twice()
	f.uploader.On("Upload", ctx, "1.pdf", pdf).Return(nil).Once()
	f.uploader.On("Upload", ctx, "2.pdf", pdf).Return(nil).Once()
	f.journal.On("Append", mock.AnythingOfType("pipeline.Report")).Once()

	report, err := f.handler().Handle(ctx, mustCommand(t, 2))

	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 0, report.Failed)
	f.feed.AssertExpectations(t)
	f.issuer.AssertExpectations(t)
	f.fetcher.AssertExpectations(t)
	f.store.AssertExpectations(t)
	f.uploader.AssertExpectations(t)
	f.journal.AssertExpectations(t)
}

func TestProcessOrdersCommandHandler_IssuanceFailureIsIsolated(t *testing.T) {
	// Order 2 fails at issuance; orders 1 and 3 must still reach the archive.
	ctx := context.Background()
	f := newFixture()
	pdf := []byte("%PDF-1.4 label")

	f.feed.On("FetchOrders", ctx, 2).
		Return([]order.Order{codOrder(1), codOrder(2), codOrder(3)}, nil).Once()

	issuedFor := func(id int64) any {
		return mock.MatchedBy(func(req label.Request) bool { return req.OrderID == id })
	}
	f.issuer.On("IssueLabel", ctx, issuedFor(1)).Return(label.Label{EmagID: 101}, nil).Once()
	f.issuer.On("IssueLabel", ctx, issuedFor(2)).
		Return(label.Label{}, errs.NewUpstreamBusinessError("2", "no courier contract")).Once()
	f.issuer.On("IssueLabel", ctx, issuedFor(3)).Return(label.Label{EmagID: 103}, nil).Once()

	f.fetcher.On("FetchLabelDocument", ctx, mock.AnythingOfType("label.Label")).
		Return(pdf, nil).Twice()
	f.store.On("Save", mock.AnythingOfType("label.Document")).Return("saved", nil).Twice()
	f.uploader.On("Upload", ctx, "1.pdf", pdf).Return(nil).Once()
	f.uploader.On("Upload", ctx, "3.pdf", pdf).Return(nil).Once()
	f.journal.On("Append", mock.AnythingOfType("pipeline.Report")).Once()

	report, err := f.handler().Handle(ctx, mustCommand(t, 2))

	require.NoError(t, err)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "2", report.Failures[0].OrderID)
	assert.Equal(t, pipeline.StageLabelIssued, report.Failures[0].Stage)
	f.uploader.AssertExpectations(t)
}

func TestProcessOrdersCommandHandler_FeedFailureIsFailSoft(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.feed.On("FetchOrders", ctx, 2).
		Return(nil, errs.NewTransportError("order/read", nil)).Once()
	f.journal.On("Append", mock.AnythingOfType("pipeline.Report")).Once()

	report, err := f.handler().Handle(ctx, mustCommand(t, 2))

	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
	assert.False(t, report.HasFailures())
	f.issuer.AssertNotCalled(t, "IssueLabel", mock.Anything, mock.Anything)
}

func TestProcessOrdersCommandHandler_UnparsableLocalityFailsBeforeIssuance(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	broken := codOrder(5)
	broken.Customer.ShippingLocalityID = "Bucuresti"

	f.feed.On("FetchOrders", ctx, 2).Return([]order.Order{broken}, nil).Once()
	f.journal.On("Append", mock.AnythingOfType("pipeline.Report")).Once()

	report, err := f.handler().Handle(ctx, mustCommand(t, 2))

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, pipeline.StageLabelIssued, report.Failures[0].Stage)
	f.issuer.AssertNotCalled(t, "IssueLabel", mock.Anything, mock.Anything)
}

func TestProcessOrdersCommandHandler_FetchFailureStopsBeforeUpload(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.feed.On("FetchOrders", ctx, 2).Return([]order.Order{codOrder(7)}, nil).Once()
	f.issuer.On("IssueLabel", ctx, mock.AnythingOfType("label.Request")).
		Return(label.Label{EmagID: 707}, nil).Once()
	f.fetcher.On("FetchLabelDocument", ctx, label.Label{EmagID: 707}).
		Return(nil, errs.NewTransportError("awb/read_pdf", nil)).Once()
	f.journal.On("Append", mock.AnythingOfType("pipeline.Report")).Once()

	report, err := f.handler().Handle(ctx, mustCommand(t, 2))

	require.NoError(t, err)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, pipeline.StageDocumentFetched, report.Failures[0].Stage)
	f.store.AssertNotCalled(t, "Save", mock.Anything)
	f.uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessOrdersCommandHandler_PanicIsConvertedToUnexpectedFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	pdf := []byte("%PDF-1.4 label")

	f.feed.On("FetchOrders", ctx, 2).
		Return([]order.Order{codOrder(1), codOrder(2)}, nil).Once()
	f.issuer.On("IssueLabel", ctx, mock.AnythingOfType("label.Request")).
		Return(label.Label{EmagID: 808}, nil).Twice()
	f.fetcher.On("FetchLabelDocument", ctx, label.Label{EmagID: 808}).
		Return(pdf, nil).Twice()
	f.store.On("Save", mock.AnythingOfType("label.Document")).Return("saved", nil).Twice()
	f.journal.On("Append", mock.AnythingOfType("pipeline.Report")).Once()

	report, err := f.handlerWithUploader(PanickingUploader{}).Handle(ctx, mustCommand(t, 2))

	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Failures, 2)
	for _, failure := range report.Failures {
		assert.Equal(t, pipeline.StageArchived, failure.Stage)
		assert.Contains(t, failure.Message, "unexpected failure")
	}
}

func TestProcessOrdersCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	f := newFixture()

	_, err := f.handler().Handle(context.Background(), commands.ProcessOrdersCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProcessOrdersCommandIsNotConstructed)
}
