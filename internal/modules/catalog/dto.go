package catalog

type ServiceRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	TimeEstimate int     `json:"time_estimate" validate:"gte=0"`
}

type StaffRequest struct {
	FirstName        string  `json:"first_name" validate:"required,max=255"`
	LastName         string  `json:"last_name" validate:"required,max=255"`
	Email            string  `json:"email" validate:"required,email,max=255"`
	Phone            string  `json:"phone" validate:"max=20"`
	Address          string  `json:"address"`
	EmergencyContact string  `json:"emergency_contact"`
	CommissionRate   float64 `json:"commission_rate" validate:"gte=0,lte=100"`
	// Optional; when present the specialization set is replaced wholesale.
	SpecializationIDs *[]int64 `json:"specialization_ids,omitempty"`
}

type SyncSpecializationsRequest struct {
	ServiceIDs []int64 `json:"service_ids" validate:"required"`
}
