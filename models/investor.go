package models

import "time"

// Investor statuses.
const (
	InvestorStatusActive   = "active"
	InvestorStatusInactive = "inactive"
	InvestorStatusProspect = "prospect"
)

// InvestmentSize is the cheque range an investor is willing to write, in whole currency units.
type InvestmentSize struct {
	Min int64 `bson:"min" json:"min" binding:"gte=0"`
	Max int64 `bson:"max" json:"max" binding:"gte=0,gtefield=Min"`
}

// Contains reports whether amount falls inside the inclusive range.
func (s InvestmentSize) Contains(amount int64) bool {
	return s.Min <= amount && amount <= s.Max
}

type Investor struct {
	ID                   string         `bson:"id" json:"id"`
	Name                 string         `bson:"name" json:"name" binding:"required,notblank"`
	Email                string         `bson:"email" json:"email" binding:"required,email"`
	Phone                *string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Company              string         `bson:"company" json:"company"`
	Title                string         `bson:"title" json:"title"`
	InvestmentSize       InvestmentSize `bson:"investmentSize" json:"investmentSize"`
	PreferredSectors     []string       `bson:"preferredSectors" json:"preferredSectors" binding:"required,min=1,dive,notblank"`
	PreferredStages      []string       `bson:"preferredStages" json:"preferredStages" binding:"required,min=1,dive,notblank"`
	PreferredGeographies []string       `bson:"preferredGeographies" json:"preferredGeographies" binding:"required,min=1,dive,notblank"`
	Status               string         `bson:"status" json:"status" binding:"required,oneof=active inactive prospect"`
	Tags                 []string       `bson:"tags" json:"tags"`
	Notes                *string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt            time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// InvestorQuery narrows the investor list. Empty fields impose no constraint.
type InvestorQuery struct {
	Search    string `form:"search" json:"search"`
	Sector    string `form:"sector" json:"sector,omitempty"`
	Stage     string `form:"stage" json:"stage,omitempty"`
	Geography string `form:"geography" json:"geography,omitempty"`
}
