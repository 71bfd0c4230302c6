package edgex

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"edgetrack/internal/client"
	"edgetrack/internal/common"
	"edgetrack/internal/model"
)

const (
	// maxHistoryPages caps how many pages a single history request follows
	maxHistoryPages = 20

	defaultPageSize = 10
)

// Client is the part of the EdgeX API client the service layer needs.
type Client interface {
	AccountID() string
	GetPositionTransactionPage(ctx context.Context, params client.PositionTransactionParams) (*client.PositionTransactionPage, error)
	GetAccountAsset(ctx context.Context) (*client.AccountAsset, error)
}

// GetFundingHistory pages through the account's position transactions,
// applies the local filters and computes funding totals.
func GetFundingHistory(ctx context.Context, c Client, filter *model.FundingFilter) (*model.FundingHistoryResponse, error) {
	if filter == nil {
		filter = &model.FundingFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	types := filter.Types
	if len(types) == 0 {
		types = []model.TransactionType{model.TransactionTypeSettleFundingFee}
	}
	typeNames := make([]string, 0, len(types))
	for _, t := range types {
		typeNames = append(typeNames, string(t))
	}

	size := filter.PageSize
	if size == 0 {
		size = defaultPageSize
	}

	params := client.PositionTransactionParams{
		FilterTypeList: strings.Join(typeNames, ","),
		Size:           strconv.Itoa(size),
	}

	transactions := make([]model.FundingTransaction, 0, size)
	var paidMicro, receivedMicro int64

	for page := 0; page < maxHistoryPages; page++ {
		p, err := c.GetPositionTransactionPage(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to get position transactions: %w", err)
		}

		for _, raw := range p.DataList {
			tx, err := convertTransaction(raw)
			if err != nil {
				return nil, err
			}

			include, err := matchesFilter(tx, filter)
			if err != nil {
				return nil, err
			}
			if !include {
				continue
			}

			// Totals cover funding fees only; negative = paid to the counterparty
			if tx.Type == model.TransactionTypeSettleFundingFee {
				micro, err := common.AmountToMicro(tx.Amount)
				if err != nil {
					return nil, fmt.Errorf("invalid funding amount %q: %w", tx.Amount, err)
				}
				if micro < 0 {
					paidMicro += -micro
				} else {
					receivedMicro += micro
				}
			}

			transactions = append(transactions, tx)
		}

		if p.NextPageOffsetData == "" {
			break
		}
		params.OffsetData = p.NextPageOffsetData
	}

	return &model.FundingHistoryResponse{
		AccountID:            c.AccountID(),
		TotalFundingPaid:     common.MicroToAmount(paidMicro),
		TotalFundingReceived: common.MicroToAmount(receivedMicro),
		Transactions:         transactions,
	}, nil
}

// convertTransaction maps a raw API entry to the response shape
func convertTransaction(raw model.PositionTransaction) (model.FundingTransaction, error) {
	ms, err := strconv.ParseInt(raw.CreatedTime, 10, 64)
	if err != nil {
		return model.FundingTransaction{}, fmt.Errorf("invalid createdTime %q: %w", raw.CreatedTime, err)
	}

	return model.FundingTransaction{
		ID:          raw.ID,
		Type:        raw.Type,
		ContractID:  raw.ContractID,
		Amount:      amountOf(raw),
		FundingRate: raw.FundingRate,
		Timestamp:   time.UnixMilli(ms).UTC(),
	}, nil
}

// amountOf picks the signed collateral delta of a transaction
func amountOf(raw model.PositionTransaction) string {
	switch {
	case raw.Type == model.TransactionTypeSettleFundingFee && raw.DeltaFundingFee != "":
		return raw.DeltaFundingFee
	case raw.DeltaOpenValue != "":
		return raw.DeltaOpenValue
	case raw.DeltaOpenFee != "":
		return raw.DeltaOpenFee
	}
	return "0"
}

// matchesFilter applies the date range and amount filters
func matchesFilter(tx model.FundingTransaction, filter *model.FundingFilter) (bool, error) {
	if filter.From != nil && tx.Timestamp.Before(*filter.From) {
		return false, nil
	}
	if filter.To != nil && tx.Timestamp.After(*filter.To) {
		return false, nil
	}

	if filter.MinAmount != nil {
		cmp, err := common.CompareAbsAmounts(tx.Amount, *filter.MinAmount)
		if err != nil {
			return false, fmt.Errorf("invalid amount: %w", err)
		}
		if cmp == -1 {
			return false, nil
		}
	}
	if filter.MaxAmount != nil {
		cmp, err := common.CompareAbsAmounts(tx.Amount, *filter.MaxAmount)
		if err != nil {
			return false, fmt.Errorf("invalid amount: %w", err)
		}
		if cmp == 1 {
			return false, nil
		}
	}

	return true, nil
}
