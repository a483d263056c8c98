package bulk_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/bulk"
	"github.com/MrJamesThe3rd/liftdesk/internal/customer"
	"github.com/MrJamesThe3rd/liftdesk/internal/importer"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
	"github.com/MrJamesThe3rd/liftdesk/internal/item"
	"github.com/MrJamesThe3rd/liftdesk/internal/payment"
	"github.com/MrJamesThe3rd/liftdesk/internal/quotation"
	"github.com/MrJamesThe3rd/liftdesk/internal/requisition"
)

type mocks struct {
	customers    *bulk.MockCustomers
	items        *bulk.MockItems
	amcs         *bulk.MockAMCs
	invoices     *bulk.MockInvoices
	requisitions *bulk.MockRequisitions
	quotations   *bulk.MockQuotations
	payments     *bulk.MockPayments
	aliases      *bulk.MockAliases
}

func newService(t *testing.T) (*bulk.Service, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		customers:    bulk.NewMockCustomers(ctrl),
		items:        bulk.NewMockItems(ctrl),
		amcs:         bulk.NewMockAMCs(ctrl),
		invoices:     bulk.NewMockInvoices(ctrl),
		requisitions: bulk.NewMockRequisitions(ctrl),
		quotations:   bulk.NewMockQuotations(ctrl),
		payments:     bulk.NewMockPayments(ctrl),
		aliases:      bulk.NewMockAliases(ctrl),
	}

	svc := bulk.NewService(bulk.Deps{
		Customers:    m.customers,
		Items:        m.items,
		AMCs:         m.amcs,
		Invoices:     m.invoices,
		Requisitions: m.requisitions,
		Quotations:   m.quotations,
		Payments:     m.payments,
		Aliases:      m.aliases,
	}, 0)

	return svc, m
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestService_ImportRows_Customers(t *testing.T) {
	svc, m := newService(t)

	m.customers.EXPECT().Create(gomock.Any(), customer.Params{Name: "Shanti Apartments", Phone: "9876543210"}).
		Return(&customer.Customer{ReferenceID: "CUST001"}, nil)
	m.customers.EXPECT().Create(gomock.Any(), customer.Params{Name: "Om Towers", GSTIN: "27AAAAA0000A1Z5"}).
		Return(&customer.Customer{ReferenceID: "CUST002"}, nil)

	report, err := svc.ImportRows(context.Background(), bulk.KindCustomers, [][]string{
		{"Customer Name", "Mobile No", "GST No"},
		{"Shanti Apartments", "9876543210", ""},
		{"", "9000000000", ""},
		{"Om Towers", "", "27AAAAA0000A1Z5"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, []importer.RowError{{Row: 3, Column: "name", Code: importer.CodeRequired, Message: "is required"}}, report.Errors)
}

func TestService_ImportRows_AMCs(t *testing.T) {
	svc, m := newService(t)
	customerID := uuid.New()

	m.customers.EXPECT().GetByReference(gomock.Any(), "CUST001").Return(&customer.Customer{ID: customerID}, nil)
	m.customers.EXPECT().GetByReference(gomock.Any(), "CUST404").Return(nil, apperr.NotFound("customer", "CUST404"))
	m.amcs.EXPECT().Create(gomock.Any(), amc.Params{
		CustomerID:       customerID,
		LiftDescription:  "Passenger lift, 8 stops",
		StartDate:        time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Price:            dec("12000"),
		UnitCount:        dec("2"),
		GSTPercent:       dec("18"),
		GenerateContract: true,
	}).Return(&amc.AMC{ReferenceID: "AMC01"}, nil)

	report, err := svc.ImportRows(context.Background(), bulk.KindAMCs, [][]string{
		{"Customer ID", "Lift Description", "Start Date", "End Date", "Price", "No of Units", "GST %", "Contract"},
		{"cust001", "Passenger lift, 8 stops", "01/04/2025", "2026-03-31", "12,000", "2", "18", "yes"},
		{"CUST404", "", "01/04/2025", "31/03/2026", "", "", "", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 3, report.Errors[0].Row)
	assert.Equal(t, "customer", report.Errors[0].Column)
	assert.Equal(t, importer.CodeNotFound, report.Errors[0].Code)
}

func TestService_ImportRows_QuotationItemByAlias(t *testing.T) {
	svc, m := newService(t)
	customerID := uuid.New()
	rope := &item.Item{ID: uuid.New(), Code: "ROPE-8MM", Name: "Wire rope 8mm", Rate: dec("450"), TaxPercent: dec("18")}

	m.customers.EXPECT().GetByReference(gomock.Any(), "CUST001").Return(&customer.Customer{ID: customerID}, nil)
	m.items.EXPECT().GetByCode(gomock.Any(), "8mm rope (Usha)").Return(nil, apperr.NotFound("item", "8mm rope (Usha)"))
	m.aliases.EXPECT().Suggest(gomock.Any(), "8mm rope (Usha)").Return("ROPE-8MM", nil)
	m.items.EXPECT().GetByCode(gomock.Any(), "ROPE-8MM").Return(rope, nil)
	m.quotations.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p quotation.Params) (*quotation.Quotation, error) {
			require.Len(t, p.Lines, 1)

			line := p.Lines[0]
			assert.Equal(t, customerID, p.CustomerID)
			assert.Equal(t, &rope.ID, line.ItemID)
			assert.Equal(t, "Wire rope 8mm", line.Description)
			assert.Equal(t, "450", line.Rate.String())
			assert.Equal(t, "30", line.Quantity.String())
			assert.Equal(t, "18", line.TaxPercent.String())

			return &quotation.Quotation{ReferenceID: "QUO001"}, nil
		})

	report, err := svc.ImportRows(context.Background(), bulk.KindQuotations, [][]string{
		{"customer", "item", "qty"},
		{"CUST001", "8mm rope (Usha)", "30"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
}

func TestService_ImportRows_RequisitionUnknownItem(t *testing.T) {
	svc, m := newService(t)

	m.customers.EXPECT().GetByReference(gomock.Any(), "CUST001").Return(&customer.Customer{ID: uuid.New()}, nil)
	m.items.EXPECT().GetByCode(gomock.Any(), "brake shoe").Return(nil, apperr.NotFound("item", "brake shoe"))
	m.aliases.EXPECT().Suggest(gomock.Any(), "brake shoe").Return("", nil)

	report, err := svc.ImportRows(context.Background(), bulk.KindRequisitions, [][]string{
		{"customer", "material", "qty"},
		{"CUST001", "brake shoe", "2"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, importer.RowError{
		Row: 2, Column: "item", Code: importer.CodeNotFound, Message: `item "brake shoe" not found`, Value: "brake shoe",
	}, report.Errors[0])
}

func TestService_ImportRows_Requisition(t *testing.T) {
	svc, m := newService(t)
	customerID, amcID := uuid.New(), uuid.New()
	sensor := &item.Item{ID: uuid.New(), Code: "SENSOR-ARD"}

	m.customers.EXPECT().GetByReference(gomock.Any(), "CUST001").Return(&customer.Customer{ID: customerID}, nil)
	m.amcs.EXPECT().GetByReference(gomock.Any(), "AMC01").Return(&amc.AMC{ID: amcID}, nil)
	m.items.EXPECT().GetByCode(gomock.Any(), "SENSOR-ARD").Return(sensor, nil)
	m.requisitions.EXPECT().Create(gomock.Any(), requisition.Params{
		CustomerID:  customerID,
		AMCID:       &amcID,
		RequestedOn: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Note:        "urgent",
		Lines:       []requisition.Line{{ItemID: sensor.ID, Quantity: decimal.RequireFromString("1")}},
	}).Return(&requisition.Requisition{ReferenceID: "REQ001"}, nil)

	report, err := svc.ImportRows(context.Background(), bulk.KindRequisitions, [][]string{
		{"Site", "AMC", "Date", "Item Code", "Qty", "Remarks"},
		{"CUST001", "AMC01", "03/06/2025", "SENSOR-ARD", "1", "urgent"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
}

func TestService_ImportRows_Payments(t *testing.T) {
	svc, m := newService(t)
	inv := &invoice.Invoice{ID: uuid.New(), CustomerID: uuid.New()}
	contract := &amc.AMC{ID: uuid.New(), CustomerID: uuid.New()}

	m.invoices.EXPECT().GetByReference(gomock.Any(), "INV001").Return(inv, nil).Times(2)
	m.amcs.EXPECT().GetByReference(gomock.Any(), "AMC01").Return(contract, nil)
	m.payments.EXPECT().Create(gomock.Any(), payment.Params{
		CustomerID: inv.CustomerID,
		TargetKind: payment.TargetInvoice,
		TargetID:   inv.ID,
		Amount:     decimal.RequireFromString("1500.50"),
		Mode:       payment.ModeBankTransfer,
		Note:       "UTR 4471",
	}).Return(&payment.Payment{ReferenceID: "PAY001"}, nil)
	m.payments.EXPECT().Create(gomock.Any(), payment.Params{
		CustomerID: contract.CustomerID,
		TargetKind: payment.TargetAMC,
		TargetID:   contract.ID,
		Amount:     decimal.RequireFromString("28320"),
		ReceivedOn: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		Mode:       payment.ModeCash,
	}).Return(&payment.Payment{ReferenceID: "PAY002"}, nil)

	report, err := svc.ImportRows(context.Background(), bulk.KindPayments, [][]string{
		{"Against", "Amount", "Payment Date", "Payment Mode", "Remarks"},
		{"inv001", "1,500.50", "", "NEFT", "UTR 4471"},
		{"AMC01", "28320", "05/04/2025", "", ""},
		{"PO-77", "100", "", "", ""},
		{"INV001", "100", "", "barter", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Succeeded)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, "target", report.Errors[0].Column)
	assert.Equal(t, 4, report.Errors[0].Row)
	assert.Equal(t, "mode", report.Errors[1].Column)
	assert.Equal(t, 5, report.Errors[1].Row)
}

func TestService_Import_CSVFile(t *testing.T) {
	svc, m := newService(t)

	m.items.EXPECT().Create(gomock.Any(), item.Params{Code: "ROPE-8MM", Name: "Wire rope 8mm", Unit: "m", Rate: dec("450"), TaxPercent: dec("18")}).
		Return(&item.Item{ReferenceID: "ITM001"}, nil)

	csv := "Part No;Description;UOM;Price;GST\nROPE-8MM;Wire rope 8mm;m;450;18\n;;;;\n"

	report, err := svc.Import(context.Background(), bulk.KindItems, "items.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Succeeded)
}

func TestService_ImportRows_UnknownKind(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ImportRows(context.Background(), bulk.Kind("stock"), [][]string{{"a"}})

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "kind")
}

func TestParseKind(t *testing.T) {
	k, err := bulk.ParseKind(" AMCs ")
	require.NoError(t, err)
	assert.Equal(t, bulk.KindAMCs, k)

	_, err = bulk.ParseKind("attendance")
	assert.Error(t, err)
}
