package model

import (
	"fmt"
	"time"

	"edgetrack/internal/common"
)

// TransactionType position transaction type on EdgeX
type TransactionType string

const (
	TransactionTypeSettleFundingFee TransactionType = "SETTLE_FUNDING_FEE"
	TransactionTypeSettleFillFee    TransactionType = "SETTLE_FILL_FEE"
	TransactionTypeBuyPosition      TransactionType = "BUY_POSITION"
	TransactionTypeSellPosition     TransactionType = "SELL_POSITION"
)

// PositionTransaction represents one entry of the EdgeX
// getPositionTransactionPage data list. All numeric values arrive
// as decimal strings; times are epoch milliseconds as strings.
type PositionTransaction struct {
	ID                 string          `json:"id"`
	AccountID          string          `json:"accountId"`
	CoinID             string          `json:"coinId"`
	ContractID         string          `json:"contractId"`
	Type               TransactionType `json:"type"`
	DeltaOpenSize      string          `json:"deltaOpenSize"`
	DeltaOpenValue     string          `json:"deltaOpenValue"`
	DeltaOpenFee       string          `json:"deltaOpenFee"`
	DeltaFundingFee    string          `json:"deltaFundingFee"`
	FundingRate        string          `json:"fundingRate"`
	FundingIndexPrice  string          `json:"fundingIndexPrice"`
	FundingOraclePrice string          `json:"fundingOraclePrice"`
	CreatedTime        string          `json:"createdTime"`
	UpdatedTime        string          `json:"updatedTime"`
}

// FundingTransaction represents one processed transaction in
// GET /edgex/funding responses
type FundingTransaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	ContractID  string          `json:"contractId"`
	Amount      string          `json:"amount"` // signed collateral delta
	FundingRate string          `json:"fundingRate,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

// FundingHistoryResponse represents response for GET /edgex/funding
type FundingHistoryResponse struct {
	AccountID            string               `json:"accountId"`
	TotalFundingPaid     string               `json:"total_funding_paid"`     // SETTLE_FUNDING_FEE only
	TotalFundingReceived string               `json:"total_funding_received"` // SETTLE_FUNDING_FEE only
	Transactions         []FundingTransaction `json:"transactions"`
}

// FundingFilter represents request parameters for GET /edgex/funding
type FundingFilter struct {
	Types     []TransactionType `form:"type"`
	From      *time.Time        `form:"from"`
	To        *time.Time        `form:"to"`
	MinAmount *string           `form:"minAmount"`
	MaxAmount *string           `form:"maxAmount"`
	PageSize  int               `form:"size"`
}

// validTransactionTypes are the types the history endpoint accepts
var validTransactionTypes = map[TransactionType]bool{
	TransactionTypeSettleFundingFee: true,
	TransactionTypeSettleFillFee:    true,
	TransactionTypeBuyPosition:      true,
	TransactionTypeSellPosition:     true,
}

// Validate validates FundingFilter parameters.
func (f *FundingFilter) Validate() error {
	for _, t := range f.Types {
		if !validTransactionTypes[t] {
			return fmt.Errorf("unknown transaction type %q", t)
		}
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return fmt.Errorf("to date must be after or equal to from date")
	}
	if f.PageSize < 0 || f.PageSize > 100 {
		return fmt.Errorf("size must be between 0 and 100")
	}
	if f.MinAmount != nil && f.MaxAmount != nil {
		cmp, err := common.CompareAbsAmounts(*f.MinAmount, *f.MaxAmount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		if cmp == 1 {
			return fmt.Errorf("minAmount must be less than or equal to maxAmount")
		}
	}
	return nil
}
