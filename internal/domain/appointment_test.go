package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanConvertToInvoice(t *testing.T) {
	staffID := int64(7)
	invoiceID := int64(3)

	staffed := []AppointmentService{{ServiceID: 1, StaffID: &staffID}}
	unstaffed := []AppointmentService{{ServiceID: 1}}

	tests := []struct {
		name string
		a    Appointment
		want bool
	}{
		{"approved with staffed slot", Appointment{Status: AppointmentApproved, Services: staffed}, true},
		{"completed with staffed slot", Appointment{Status: AppointmentCompleted, Services: staffed}, true},
		{"pending", Appointment{Status: AppointmentPending, Services: staffed}, false},
		{"cancelled", Appointment{Status: AppointmentCancelled, Services: staffed}, false},
		{"no-show", Appointment{Status: AppointmentNoShow, Services: staffed}, false},
		{"no staff assigned", Appointment{Status: AppointmentApproved, Services: unstaffed}, false},
		{"no slots at all", Appointment{Status: AppointmentApproved}, false},
		{"already invoiced", Appointment{Status: AppointmentApproved, InvoiceID: &invoiceID, Services: staffed}, false},
		{
			"mixed slots count as eligible",
			Appointment{Status: AppointmentApproved, Services: []AppointmentService{
				{ServiceID: 1},
				{ServiceID: 2, StaffID: &staffID},
			}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.CanConvertToInvoice())
		})
	}
}

func TestTotalDuration(t *testing.T) {
	a := Appointment{Services: []AppointmentService{
		{Service: &Service{TimeEstimate: 45}},
		{Service: &Service{TimeEstimate: 30}},
		{ServiceID: 9}, // not preloaded
	}}
	assert.Equal(t, 75, a.TotalDuration())
}
