package domain

import "time"

// LeadStatus is a closed enum. Writes go through AllowedLeadTransitions so an
// invalid state can never reach the database.
type LeadStatus string

const (
	LeadPending       LeadStatus = "pending"
	LeadTalkDone      LeadStatus = "talk_done"
	LeadQuotationSent LeadStatus = "quotation_sent"
	LeadDealFinal     LeadStatus = "deal_final"
	LeadDone          LeadStatus = "done"
)

// AllowedLeadTransitions maps a status to the set of statuses it may move to.
// "done" is terminal.
var AllowedLeadTransitions = map[LeadStatus][]LeadStatus{
	LeadPending:       {LeadTalkDone, LeadQuotationSent, LeadDone},
	LeadTalkDone:      {LeadQuotationSent, LeadDealFinal, LeadDone},
	LeadQuotationSent: {LeadDealFinal, LeadDone},
	LeadDealFinal:     {LeadDone},
	LeadDone:          {},
}

func (s LeadStatus) Valid() bool {
	_, ok := AllowedLeadTransitions[s]
	return ok
}

// CanTransitionTo reports whether the move from s to next is allowed.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	for _, allowed := range AllowedLeadTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Lead is a journey request captured from the storefront form.
type Lead struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	Destination   string     `gorm:"type:varchar(160);not null" json:"destination" validate:"required"`
	TravelDate    time.Time  `gorm:"not null" json:"travel_date" validate:"required"`
	ContactNumber string     `gorm:"type:varchar(20);not null" json:"contact_number" validate:"required"`
	Status        LeadStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Lead) TableName() string { return "journey_requests" }
