package model

import "time"

// AccountSummaryResponse represents response for GET /edgex/summary
type AccountSummaryResponse struct {
	AccountID        string     `json:"accountId"`
	CollateralAmount string     `json:"collateralAmount"`
	LastFundingFee   string     `json:"lastFundingFee,omitempty"`
	LastFundingTime  *time.Time `json:"lastFundingTime,omitempty"`
}
