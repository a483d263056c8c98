package reference_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

func TestScheme_Format(t *testing.T) {
	type testCase struct {
		name   string
		scheme reference.Scheme
		n      int64
		want   string
	}

	tests := []testCase{
		{name: "Padded", scheme: reference.Scheme{Prefix: "INV", PadWidth: 3}, n: 7, want: "INV007"},
		{name: "TwoWide", scheme: reference.Scheme{Prefix: "AMC", PadWidth: 2}, n: 1, want: "AMC01"},
		{name: "WiderThanPad", scheme: reference.Scheme{Prefix: "AMC", PadWidth: 2}, n: 1234, want: "AMC1234"},
		{name: "NoPadding", scheme: reference.Scheme{Prefix: "CMP"}, n: 1001, want: "CMP1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scheme.Format(tt.n))
		})
	}
}

func TestScheme_Parse(t *testing.T) {
	scheme, err := reference.SchemeFor(reference.EntityInvoice)
	require.NoError(t, err)

	type testCase struct {
		name    string
		ref     string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "Padded", ref: "INV007", want: 7},
		{name: "Unpadded", ref: "INV12345", want: 12345},
		{name: "Whitespace", ref: " INV010 ", want: 10},
		{name: "WrongPrefix", ref: "QUO007", wantErr: true},
		{name: "NoDigits", ref: "INV", wantErr: true},
		{name: "Junk", ref: "INV-7A", wantErr: true},
		{name: "Empty", ref: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scheme.Parse(tt.ref)

			if tt.wantErr {
				var pe *apperr.ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, "reference_id", pe.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheme_FormatParseAgree(t *testing.T) {
	for _, e := range reference.Entities() {
		scheme, err := reference.SchemeFor(e)
		require.NoError(t, err)

		for _, n := range []int64{1, 9, 10, 99, 100, 1000, 123456} {
			got, err := scheme.Parse(scheme.Format(n))
			require.NoError(t, err, "%s %d", e, n)
			assert.Equal(t, n, got)
		}
	}
}

func TestSchemeFor_Unknown(t *testing.T) {
	_, err := reference.SchemeFor("stock")
	assert.ErrorIs(t, err, reference.ErrUnknownEntity)
}
