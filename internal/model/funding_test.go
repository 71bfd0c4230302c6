package model

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestFundingFilterValidate(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		filter  FundingFilter
		wantErr bool
	}{
		{name: "empty", filter: FundingFilter{}},
		{name: "valid types", filter: FundingFilter{Types: []TransactionType{TransactionTypeSettleFundingFee, TransactionTypeSettleFillFee}}},
		{name: "unknown type", filter: FundingFilter{Types: []TransactionType{"NOPE"}}, wantErr: true},
		{name: "valid dates", filter: FundingFilter{From: &from, To: &to}},
		{name: "to before from", filter: FundingFilter{From: &to, To: &from}, wantErr: true},
		{name: "valid amounts", filter: FundingFilter{MinAmount: strPtr("0.01"), MaxAmount: strPtr("1")}},
		{name: "min above max", filter: FundingFilter{MinAmount: strPtr("2"), MaxAmount: strPtr("1")}, wantErr: true},
		{name: "bad amount", filter: FundingFilter{MinAmount: strPtr("x"), MaxAmount: strPtr("1")}, wantErr: true},
		{name: "valid size", filter: FundingFilter{PageSize: 100}},
		{name: "size too large", filter: FundingFilter{PageSize: 101}, wantErr: true},
		{name: "negative size", filter: FundingFilter{PageSize: -1}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.filter.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
