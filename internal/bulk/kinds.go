package bulk

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/customer"
	"github.com/MrJamesThe3rd/liftdesk/internal/importer"
	"github.com/MrJamesThe3rd/liftdesk/internal/item"
	"github.com/MrJamesThe3rd/liftdesk/internal/lineitem"
	"github.com/MrJamesThe3rd/liftdesk/internal/payment"
	"github.com/MrJamesThe3rd/liftdesk/internal/quotation"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
	"github.com/MrJamesThe3rd/liftdesk/internal/requisition"
)

type kind struct {
	schema importer.Schema
	apply  importer.ApplyFunc
}

func (s *Service) kinds() map[Kind]kind {
	return map[Kind]kind{
		KindCustomers:    {schema: customerSchema, apply: s.applyCustomer},
		KindItems:        {schema: itemSchema, apply: s.applyItem},
		KindAMCs:         {schema: s.amcSchema(), apply: s.applyAMC},
		KindRequisitions: {schema: s.requisitionSchema(), apply: s.applyRequisition},
		KindQuotations:   {schema: s.quotationSchema(), apply: s.applyQuotation},
		KindPayments:     {schema: s.paymentSchema(), apply: s.applyPayment},
	}
}

var customerSchema = importer.Schema{Fields: []importer.Field{
	{Name: "name", Aliases: []string{"customer name", "customer", "party name"}, Required: true},
	{Name: "phone", Aliases: []string{"mobile", "mobile no", "contact", "phone no"}},
	{Name: "email", Aliases: []string{"email id", "e-mail"}},
	{Name: "address", Aliases: []string{"site address", "site"}},
	{Name: "gstin", Aliases: []string{"gst no", "gst number"}},
}}

func (s *Service) applyCustomer(ctx context.Context, row importer.Row) error {
	_, err := s.deps.Customers.Create(ctx, customer.Params{
		Name:    row.Text("name"),
		Phone:   row.Text("phone"),
		Email:   row.Text("email"),
		Address: row.Text("address"),
		GSTIN:   row.Text("gstin"),
	})

	return err
}

var itemSchema = importer.Schema{Fields: []importer.Field{
	{Name: "code", Aliases: []string{"item code", "part no", "part number"}, Required: true},
	{Name: "name", Aliases: []string{"item name", "description", "item"}, Required: true},
	{Name: "unit", Aliases: []string{"uom"}},
	{Name: "rate", Aliases: []string{"price", "unit price"}, Kind: importer.KindDecimal},
	{Name: "tax_percent", Aliases: []string{"gst", "gst %", "gst percent", "tax"}, Kind: importer.KindDecimal},
}}

func (s *Service) applyItem(ctx context.Context, row importer.Row) error {
	_, err := s.deps.Items.Create(ctx, item.Params{
		Code:       row.Text("code"),
		Name:       row.Text("name"),
		Unit:       row.Text("unit"),
		Rate:       row.Decimal("rate"),
		TaxPercent: row.Decimal("tax_percent"),
	})

	return err
}

func (s *Service) amcSchema() importer.Schema {
	return importer.Schema{Fields: []importer.Field{
		{Name: "customer", Aliases: []string{"customer id", "customer ref", "customer reference"}, Required: true, Resolve: s.resolveCustomer},
		{Name: "lift", Aliases: []string{"lift description", "lift details"}},
		{Name: "start_date", Aliases: []string{"start", "from"}, Kind: importer.KindDate, Required: true},
		{Name: "end_date", Aliases: []string{"end", "to"}, Kind: importer.KindDate, Required: true},
		{Name: "price", Aliases: []string{"amc price", "rate"}, Kind: importer.KindDecimal},
		{Name: "unit_count", Aliases: []string{"units", "no of units", "lifts"}, Kind: importer.KindDecimal},
		{Name: "gst_percent", Aliases: []string{"gst", "gst %"}, Kind: importer.KindDecimal},
		{Name: "generate_contract", Aliases: []string{"contract"}, Kind: importer.KindBool},
	}}
}

func (s *Service) applyAMC(ctx context.Context, row importer.Row) error {
	_, err := s.deps.AMCs.Create(ctx, amc.Params{
		CustomerID:       row.Value("customer").(uuid.UUID),
		LiftDescription:  row.Text("lift"),
		StartDate:        row.Date("start_date"),
		EndDate:          row.Date("end_date"),
		Price:            row.Decimal("price"),
		UnitCount:        row.Decimal("unit_count"),
		GSTPercent:       row.Decimal("gst_percent"),
		GenerateContract: row.Bool("generate_contract"),
	})

	return err
}

// Requisition and quotation files carry one line per row; each row becomes its own document.
func (s *Service) requisitionSchema() importer.Schema {
	return importer.Schema{Fields: []importer.Field{
		{Name: "customer", Aliases: []string{"customer id", "customer ref", "site"}, Required: true, Resolve: s.resolveCustomer},
		{Name: "amc", Aliases: []string{"amc id", "amc ref", "contract"}, Resolve: s.resolveAMC},
		{Name: "requested_on", Aliases: []string{"date", "requested"}, Kind: importer.KindDate},
		{Name: "item", Aliases: []string{"item code", "material", "part"}, Required: true, Resolve: s.resolveItem},
		{Name: "quantity", Aliases: []string{"qty"}, Kind: importer.KindDecimal, Required: true},
		{Name: "note", Aliases: []string{"remarks", "notes"}},
	}}
}

func (s *Service) applyRequisition(ctx context.Context, row importer.Row) error {
	it := row.Value("item").(*item.Item)

	params := requisition.Params{
		CustomerID:  row.Value("customer").(uuid.UUID),
		RequestedOn: row.Date("requested_on"),
		Note:        row.Text("note"),
		Lines:       []requisition.Line{{ItemID: it.ID, Quantity: *row.Decimal("quantity")}},
	}

	if id, ok := row.Value("amc").(uuid.UUID); ok {
		params.AMCID = &id
	}

	_, err := s.deps.Requisitions.Create(ctx, params)

	return err
}

func (s *Service) quotationSchema() importer.Schema {
	return importer.Schema{Fields: []importer.Field{
		{Name: "customer", Aliases: []string{"customer id", "customer ref"}, Required: true, Resolve: s.resolveCustomer},
		{Name: "quote_date", Aliases: []string{"date", "quotation date"}, Kind: importer.KindDate},
		{Name: "valid_until", Aliases: []string{"valid till", "validity"}, Kind: importer.KindDate},
		{Name: "item", Aliases: []string{"item code", "part"}, Required: true, Resolve: s.resolveItem},
		{Name: "description", Aliases: []string{"particulars"}},
		{Name: "rate", Aliases: []string{"price"}, Kind: importer.KindDecimal},
		{Name: "quantity", Aliases: []string{"qty"}, Kind: importer.KindDecimal, Required: true},
		{Name: "tax_percent", Aliases: []string{"gst", "gst %"}, Kind: importer.KindDecimal},
	}}
}

// applyQuotation falls back to the catalogue for anything the row leaves blank.
func (s *Service) applyQuotation(ctx context.Context, row importer.Row) error {
	it := row.Value("item").(*item.Item)

	line := lineitem.Line{
		ItemID:      &it.ID,
		Description: row.Text("description"),
		Rate:        row.Decimal("rate"),
		Quantity:    row.Decimal("quantity"),
		TaxPercent:  row.Decimal("tax_percent"),
	}

	if line.Description == "" {
		line.Description = it.Name
	}

	if line.Rate == nil {
		line.Rate = it.Rate
	}

	if line.TaxPercent == nil {
		line.TaxPercent = it.TaxPercent
	}

	_, err := s.deps.Quotations.Create(ctx, quotation.Params{
		CustomerID: row.Value("customer").(uuid.UUID),
		QuoteDate:  row.Date("quote_date"),
		ValidUntil: row.Date("valid_until"),
		Lines:      []lineitem.Line{line},
	})

	return err
}

func (s *Service) paymentSchema() importer.Schema {
	return importer.Schema{Fields: []importer.Field{
		{Name: "target", Aliases: []string{"invoice", "invoice no", "amc", "against", "reference"}, Required: true, Resolve: s.resolveTarget},
		{Name: "amount", Aliases: []string{"amount received", "received"}, Kind: importer.KindDecimal, Required: true},
		{Name: "received_on", Aliases: []string{"date", "payment date"}, Kind: importer.KindDate},
		{Name: "mode", Aliases: []string{"payment mode"}},
		{Name: "note", Aliases: []string{"remarks", "cheque no", "utr"}},
	}}
}

func (s *Service) applyPayment(ctx context.Context, row importer.Row) error {
	t := row.Value("target").(target)

	mode, err := parseMode(row.Text("mode"))
	if err != nil {
		return err
	}

	_, err = s.deps.Payments.Create(ctx, payment.Params{
		CustomerID: t.customerID,
		TargetKind: t.kind,
		TargetID:   t.id,
		Amount:     *row.Decimal("amount"),
		ReceivedOn: row.Date("received_on"),
		Mode:       mode,
		Note:       row.Text("note"),
	})

	return err
}

var modeAliases = map[string]payment.Mode{
	"":              payment.ModeCash,
	"cash":          payment.ModeCash,
	"cheque":        payment.ModeCheque,
	"check":         payment.ModeCheque,
	"chq":           payment.ModeCheque,
	"bank_transfer": payment.ModeBankTransfer,
	"bank":          payment.ModeBankTransfer,
	"neft":          payment.ModeBankTransfer,
	"rtgs":          payment.ModeBankTransfer,
	"imps":          payment.ModeBankTransfer,
	"upi":           payment.ModeUPI,
	"gpay":          payment.ModeUPI,
}

// parseMode maps the labels people type into a payment mode; blank means cash.
func parseMode(raw string) (payment.Mode, error) {
	key := strings.Join(strings.Fields(strings.ToLower(raw)), "_")
	if m, ok := modeAliases[key]; ok {
		return m, nil
	}

	return "", apperr.Invalid("mode", "must be one of: cash cheque bank_transfer upi")
}

type target struct {
	kind       payment.TargetKind
	id         uuid.UUID
	customerID uuid.UUID
}

func (s *Service) resolveCustomer(ctx context.Context, raw string) (any, error) {
	c, err := s.deps.Customers.GetByReference(ctx, strings.ToUpper(raw))
	if err != nil {
		return nil, err
	}

	return c.ID, nil
}

func (s *Service) resolveAMC(ctx context.Context, raw string) (any, error) {
	a, err := s.deps.AMCs.GetByReference(ctx, strings.ToUpper(raw))
	if err != nil {
		return nil, err
	}

	return a.ID, nil
}

// resolveItem accepts a catalogue code, or any text a learned alias recognises.
func (s *Service) resolveItem(ctx context.Context, raw string) (any, error) {
	it, err := s.deps.Items.GetByCode(ctx, raw)
	if err == nil {
		return it, nil
	}

	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	code, err := s.deps.Aliases.Suggest(ctx, raw)
	if err != nil {
		return nil, err
	}

	if code == "" {
		return nil, apperr.NotFound("item", raw)
	}

	return s.deps.Items.GetByCode(ctx, code)
}

var (
	invoiceScheme, _ = reference.SchemeFor(reference.EntityInvoice)
	amcScheme, _     = reference.SchemeFor(reference.EntityAMC)
)

// resolveTarget tells invoices and AMCs apart by their reference prefix.
func (s *Service) resolveTarget(ctx context.Context, raw string) (any, error) {
	ref := strings.ToUpper(raw)

	switch {
	case strings.HasPrefix(ref, invoiceScheme.Prefix):
		inv, err := s.deps.Invoices.GetByReference(ctx, ref)
		if err != nil {
			return nil, err
		}

		return target{kind: payment.TargetInvoice, id: inv.ID, customerID: inv.CustomerID}, nil
	case strings.HasPrefix(ref, amcScheme.Prefix):
		a, err := s.deps.AMCs.GetByReference(ctx, ref)
		if err != nil {
			return nil, err
		}

		return target{kind: payment.TargetAMC, id: a.ID, customerID: a.CustomerID}, nil
	}

	return nil, apperr.Invalid("target", "must be an invoice or AMC reference")
}
