package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"
)

func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusCompleted:
		return true
	}
	return false
}

// RentalRequest is a customer's inquiry to rent a catalog product or an
// unlisted outfit type. ProductID is empty when the customer named an outfit
// type instead of picking a product. Phone is the join key to Customer.
type RentalRequest struct {
	ID            string        `json:"id"`
	ProductID     string        `json:"productId,omitempty"`
	ProductName   string        `json:"productName"`
	CustomerName  string        `json:"customerName"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email,omitempty"`
	EventDate     string        `json:"eventDate"`
	DaysRequired  int           `json:"daysRequired"`
	OutfitType    string        `json:"outfitType"`
	Message       string        `json:"message,omitempty"`
	Status        RequestStatus `json:"status"`
	AdminNotes    string        `json:"adminNotes"`
	QuotedPrice   float64       `json:"quotedPrice"`
	AdvancePaid   float64       `json:"advancePaid"`
	DepositAmount float64       `json:"depositAmount"`
	Origin        Origin        `json:"origin,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// RequestPatch carries the admin-editable fields of a request. Status changes
// and financial drafts are saved together from the admin workflow.
type RequestPatch struct {
	Status        *RequestStatus `json:"status,omitempty"`
	QuotedPrice   *float64       `json:"quotedPrice,omitempty"`
	AdvancePaid   *float64       `json:"advancePaid,omitempty"`
	DepositAmount *float64       `json:"depositAmount,omitempty"`
	AdminNotes    *string        `json:"adminNotes,omitempty"`
}

func (patch *RequestPatch) Apply(r *RentalRequest) {
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.QuotedPrice != nil {
		r.QuotedPrice = *patch.QuotedPrice
	}
	if patch.AdvancePaid != nil {
		r.AdvancePaid = *patch.AdvancePaid
	}
	if patch.DepositAmount != nil {
		r.DepositAmount = *patch.DepositAmount
	}
	if patch.AdminNotes != nil {
		r.AdminNotes = *patch.AdminNotes
	}
}
