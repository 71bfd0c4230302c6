package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"edgetrack/internal/config"
	"edgetrack/internal/model"
	"edgetrack/internal/signer"

	"go.uber.org/zap"
)

const (
	positionTransactionPageEndpoint = "/api/v1/private/account/getPositionTransactionPage"
	accountAssetEndpoint            = "/api/v1/private/account/getAccountAsset"

	headerSignature = "X-edgeX-Api-Signature"
	headerTimestamp = "X-edgeX-Api-Timestamp"

	codeSuccess = "SUCCESS"

	defaultFilterTypeList = string(model.TransactionTypeSettleFundingFee)
	defaultPageSize       = "10"
)

// APIError is an error returned by the EdgeX API itself (envelope code
// other than SUCCESS), as opposed to a transport failure.
type APIError struct {
	Code string
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("edgex api error %s: %s", e.Code, e.Msg)
}

// IsAPIError checks if error is an APIError
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// apiResponse is the envelope every EdgeX endpoint returns
type apiResponse struct {
	Code         string            `json:"code"`
	Data         json.RawMessage   `json:"data"`
	Msg          string            `json:"msg"`
	ErrorParam   map[string]string `json:"errorParam"`
	RequestTime  string            `json:"requestTime"`
	ResponseTime string            `json:"responseTime"`
	TraceID      string            `json:"traceId"`
}

// PositionTransactionPage is the data payload of getPositionTransactionPage
type PositionTransactionPage struct {
	DataList           []model.PositionTransaction `json:"dataList"`
	NextPageOffsetData string                      `json:"nextPageOffsetData"`
}

// PositionTransactionParams are query parameters for GetPositionTransactionPage.
// Zero values fall back to the client's account id, SETTLE_FUNDING_FEE and
// a page size of 10.
type PositionTransactionParams struct {
	AccountID      string
	FilterTypeList string
	Size           string
	OffsetData     string
}

// AccountAsset is the data payload of getAccountAsset
type AccountAsset struct {
	Account        AccountInfo  `json:"account"`
	CollateralList []Collateral `json:"collateralList"`
}

// AccountInfo represents the account section of getAccountAsset
type AccountInfo struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime"`
}

// Collateral represents one collateral balance of the account
type Collateral struct {
	CoinID string `json:"coinId"`
	Amount string `json:"amount"`
}

// EdgeXClient is a client for the EdgeX private REST API. Every request
// carries a Stark signature over timestamp, method, path and sorted query.
type EdgeXClient struct {
	baseURL    string
	httpClient *http.Client
	signer     *signer.Signer
	accountID  string
	maxRetries int
	baseWait   time.Duration
	maxWait    time.Duration
	log        *zap.Logger
}

// NewEdgeXClient creates a new EdgeX client for the given account.
func NewEdgeXClient(accountID string, sig *signer.Signer, logger *zap.Logger) *EdgeXClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EdgeXClient{
		baseURL: config.GetEdgeXBaseURL(),
		httpClient: &http.Client{
			Timeout: config.GetRequestTimeout(),
		},
		signer:     sig,
		accountID:  accountID,
		maxRetries: config.GetMaxRetries(),
		baseWait:   config.GetRetryBaseWait(),
		maxWait:    config.GetRetryMaxWait(),
		log:        logger,
	}
}

// AccountID returns the account id the client was created for
func (c *EdgeXClient) AccountID() string {
	return c.accountID
}

// GetPositionTransactionPage gets one page of position transactions
// (funding fees, fill fees, position changes) for the account.
func (c *EdgeXClient) GetPositionTransactionPage(ctx context.Context, params PositionTransactionParams) (*PositionTransactionPage, error) {
	if params.AccountID == "" {
		params.AccountID = c.accountID
	}
	if params.FilterTypeList == "" {
		params.FilterTypeList = defaultFilterTypeList
	}
	if params.Size == "" {
		params.Size = defaultPageSize
	}

	queryParams := map[string]string{
		"accountId":      params.AccountID,
		"filterTypeList": params.FilterTypeList,
		"size":           params.Size,
	}
	if params.OffsetData != "" {
		queryParams["offsetData"] = params.OffsetData
	}

	data, err := c.sendRequest(ctx, http.MethodGet, positionTransactionPageEndpoint, queryParams, nil)
	if err != nil {
		return nil, err
	}

	var page PositionTransactionPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal position transaction page: %w", err)
	}
	return &page, nil
}

// GetAccountAsset gets the account's asset overview (collateral balances).
func (c *EdgeXClient) GetAccountAsset(ctx context.Context) (*AccountAsset, error) {
	queryParams := map[string]string{
		"accountId": c.accountID,
	}

	data, err := c.sendRequest(ctx, http.MethodGet, accountAssetEndpoint, queryParams, nil)
	if err != nil {
		return nil, err
	}

	var asset AccountAsset
	if err := json.Unmarshal(data, &asset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account asset: %w", err)
	}
	return &asset, nil
}

// sendRequest sends a signed request and retries transport failures with a
// linearly growing wait, capped at maxWait. API errors are not retried.
func (c *EdgeXClient) sendRequest(ctx context.Context, httpMethod, endpoint string, queryParams map[string]string, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	attempt := 0
	for {
		data, err := c.doRequest(ctx, httpMethod, endpoint, queryParams, payload)
		if err == nil {
			return data, nil
		}
		if IsAPIError(err) {
			return nil, err
		}

		attempt++
		if attempt > c.maxRetries {
			return nil, err
		}

		wait := time.Duration(attempt) * c.baseWait
		if wait > c.maxWait {
			wait = c.maxWait
		}

		c.log.Warn("edgex request failed, retrying",
			zap.String("endpoint", endpoint),
			zap.Int("attempt", attempt),
			zap.Int("maxRetries", c.maxRetries),
			zap.Duration("wait", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// doRequest performs a single signed request attempt
func (c *EdgeXClient) doRequest(ctx context.Context, httpMethod, endpoint string, queryParams map[string]string, payload []byte) (json.RawMessage, error) {
	// Signature headers are rebuilt per attempt - the timestamp must be fresh
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	sig, err := c.signer.SignRequest(timestamp, httpMethod, endpoint, queryParams)
	if err != nil {
		return nil, err
	}

	requestURL := c.baseURL + endpoint
	values := url.Values{}
	for k, v := range queryParams {
		values.Set(k, v)
	}
	if len(values) > 0 {
		requestURL += "?" + values.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(headerSignature, sig)
	req.Header.Set(headerTimestamp, timestamp)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// 5xx bodies are not guaranteed to carry the envelope
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if envelope.Code != codeSuccess {
		return nil, &APIError{Code: envelope.Code, Msg: envelope.Msg}
	}

	return envelope.Data, nil
}
