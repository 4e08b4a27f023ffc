package models

import "time"

// Client statuses. Only raising clients are considered for matching.
const (
	ClientStatusRaising = "raising"
	ClientStatusFunded  = "funded"
	ClientStatusClosed  = "closed"
)

// Client is a company the firm is helping raise capital.
type Client struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name" binding:"required,notblank"`
	Company       string    `bson:"company" json:"company" binding:"required,notblank"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty" binding:"omitempty,email"`
	Sector        string    `bson:"sector" json:"sector" binding:"required,notblank"`
	Stage         string    `bson:"stage" json:"stage" binding:"required,notblank"`
	Geography     string    `bson:"geography" json:"geography" binding:"required,notblank"`
	FundingNeeded int64     `bson:"fundingNeeded" json:"fundingNeeded" binding:"gte=0"`
	Description   string    `bson:"description" json:"description"`
	Status        string    `bson:"status" json:"status" binding:"required,oneof=raising funded closed"`
	Tags          []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ClientQuery struct {
	Search    string `form:"search" json:"search"`
	Sector    string `form:"sector" json:"sector,omitempty"`
	Stage     string `form:"stage" json:"stage,omitempty"`
	Geography string `form:"geography" json:"geography,omitempty"`
	Status    string `form:"status" json:"status,omitempty"`
}
