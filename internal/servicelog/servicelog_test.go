package servicelog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/complaint"
	"github.com/MrJamesThe3rd/liftdesk/internal/servicelog"
)

func date(m, d int) time.Time {
	return time.Date(2025, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()

	complaints := servicelog.NewMockComplaintLister(ctrl)
	amcs := servicelog.NewMockAMCLister(ctrl)

	complaints.EXPECT().List(gomock.Any(), complaint.ListFilter{CustomerID: &customerID}).Return([]*complaint.Complaint{
		{ReferenceID: "CMP002", ReportedOn: date(5, 10)},
		{ReferenceID: "CMP001", ReportedOn: date(4, 1)},
	}, nil)
	amcs.EXPECT().List(gomock.Any(), amc.ListFilter{CustomerID: &customerID}).Return([]*amc.AMC{
		{ReferenceID: "AMC01", StartDate: date(4, 1)},
	}, nil)

	got, err := servicelog.NewService(complaints, amcs).List(context.Background(), customerID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	var refs []string
	for _, e := range got {
		refs = append(refs, e.Reference())
	}

	assert.Equal(t, []string{"AMC01", "CMP001", "CMP002"}, refs)

	switch e := got[0].(type) {
	case servicelog.Contract:
		assert.Equal(t, servicelog.KindContract, e.Kind())
		assert.Equal(t, "AMC01", e.AMC.ReferenceID)
	default:
		t.Fatalf("first entry is %T, want Contract", e)
	}

	assert.Equal(t, servicelog.KindRegular, got[1].Kind())
}

func TestService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	complaints := servicelog.NewMockComplaintLister(ctrl)
	complaints.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := servicelog.NewService(complaints, servicelog.NewMockAMCLister(ctrl)).List(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "listing complaints")
}
