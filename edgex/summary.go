package edgex

import (
	"context"
	"fmt"

	"edgetrack/internal/client"
	"edgetrack/internal/model"

	"golang.org/x/sync/errgroup"
)

// GetAccountSummary fetches the account asset overview and the latest
// funding fee settlement concurrently and merges them.
func GetAccountSummary(ctx context.Context, c Client) (*model.AccountSummaryResponse, error) {
	g, gctx := errgroup.WithContext(ctx)

	var asset *client.AccountAsset
	var page *client.PositionTransactionPage

	g.Go(func() error {
		var err error
		asset, err = c.GetAccountAsset(gctx)
		if err != nil {
			return fmt.Errorf("failed to get account asset: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		page, err = c.GetPositionTransactionPage(gctx, client.PositionTransactionParams{Size: "1"})
		if err != nil {
			return fmt.Errorf("failed to get latest funding fee: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &model.AccountSummaryResponse{
		AccountID:        c.AccountID(),
		CollateralAmount: "0",
	}
	if len(asset.CollateralList) > 0 {
		resp.CollateralAmount = asset.CollateralList[0].Amount
	}

	if len(page.DataList) > 0 {
		tx, err := convertTransaction(page.DataList[0])
		if err != nil {
			return nil, err
		}
		resp.LastFundingFee = tx.Amount
		t := tx.Timestamp
		resp.LastFundingTime = &t
	}

	return resp, nil
}
