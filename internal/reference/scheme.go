package reference

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
)

// Entity names a class of business record that owns its own reference sequence.
type Entity string

const (
	EntityCustomer    Entity = "customer"
	EntityItem        Entity = "item"
	EntityAMC         Entity = "amc"
	EntityInvoice     Entity = "invoice"
	EntityQuotation   Entity = "quotation"
	EntityRequisition Entity = "requisition"
	EntityPayment     Entity = "payment"
	EntityComplaint   Entity = "complaint"
)

// Scheme describes how references for one entity look.
// Base is the value the counter starts from, so the first reference is Base+1.
type Scheme struct {
	Entity   Entity
	Prefix   string
	PadWidth int
	Base     int64
}

var schemes = map[Entity]Scheme{
	EntityCustomer:    {Entity: EntityCustomer, Prefix: "CUST", PadWidth: 3},
	EntityItem:        {Entity: EntityItem, Prefix: "ITM", PadWidth: 3},
	EntityAMC:         {Entity: EntityAMC, Prefix: "AMC", PadWidth: 2},
	EntityInvoice:     {Entity: EntityInvoice, Prefix: "INV", PadWidth: 3},
	EntityQuotation:   {Entity: EntityQuotation, Prefix: "QUO", PadWidth: 3},
	EntityRequisition: {Entity: EntityRequisition, Prefix: "REQ", PadWidth: 3},
	EntityPayment:     {Entity: EntityPayment, Prefix: "PAY", PadWidth: 3},
	EntityComplaint:   {Entity: EntityComplaint, Prefix: "CMP", PadWidth: 3},
}

var ErrUnknownEntity = errors.New("unknown entity")

func SchemeFor(e Entity) (Scheme, error) {
	s, ok := schemes[e]
	if !ok {
		return Scheme{}, fmt.Errorf("%w: %q", ErrUnknownEntity, e)
	}

	return s, nil
}

// Entities lists every sequenced entity in a stable order.
func Entities() []Entity {
	out := make([]Entity, 0, len(schemes))
	for e := range schemes {
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Format renders n with the scheme's prefix and zero padding.
// Numbers wider than PadWidth are printed in full.
func (s Scheme) Format(n int64) string {
	if s.PadWidth <= 0 {
		return s.Prefix + strconv.FormatInt(n, 10)
	}

	return fmt.Sprintf("%s%0*d", s.Prefix, s.PadWidth, n)
}

var (
	errWrongPrefix = errors.New("missing prefix")
	errNoDigits    = errors.New("no digits after prefix")
)

// Parse extracts the sequence number from ref.
func (s Scheme) Parse(ref string) (int64, error) {
	trimmed := strings.TrimSpace(ref)

	rest, ok := strings.CutPrefix(trimmed, s.Prefix)
	if !ok {
		return 0, &apperr.ParseError{Field: "reference_id", Value: ref, Err: errWrongPrefix}
	}

	if rest == "" {
		return 0, &apperr.ParseError{Field: "reference_id", Value: ref, Err: errNoDigits}
	}

	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, &apperr.ParseError{Field: "reference_id", Value: ref, Err: fmt.Errorf("unexpected %q", r)}
		}
	}

	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, &apperr.ParseError{Field: "reference_id", Value: ref, Err: err}
	}

	return n, nil
}
