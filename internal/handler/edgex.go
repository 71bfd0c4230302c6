package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"edgetrack/edgex"
	"edgetrack/internal/client"
	"edgetrack/internal/config"
	"edgetrack/internal/model"
	"edgetrack/internal/signer"

	"go.uber.org/zap"
)

// EdgeXHandler holds the signed API client for EdgeX operations
type EdgeXHandler struct {
	client *client.EdgeXClient
}

// NewEdgeXHandler creates a new EdgeXHandler from the loaded secret
func NewEdgeXHandler(logger *zap.Logger) (*EdgeXHandler, error) {
	sig, err := signer.New(config.GetPrivateKeyHex())
	if err != nil {
		return nil, fmt.Errorf("failed to create signer: %w", err)
	}

	return &EdgeXHandler{
		client: client.NewEdgeXClient(config.GetAccountID(), sig, logger),
	}, nil
}

// Funding handles GET /edgex/funding
// @Summary      Get funding fee history
// @Description  Gets the account's funding fee settlements with filtering capability
// @Tags         edgex
// @Produce      json
// @Param        type       query     string   false  "Comma-separated transaction types (default SETTLE_FUNDING_FEE)"
// @Param        from       query     string   false  "Start date (YYYY-MM-DD)"
// @Param        to         query     string   false  "End date (YYYY-MM-DD)"
// @Param        minAmount  query     string   false  "Minimum absolute amount"
// @Param        maxAmount  query     string   false  "Maximum absolute amount"
// @Param        size       query     int      false  "Page size (1-100)"
// @Success      200  {object}  model.FundingHistoryResponse
// @Router       /edgex/funding [get]
func (h *EdgeXHandler) Funding(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	var filter model.FundingFilter

	// Parse date parameters (YYYY-MM-DD)
	const dateLayout = "2006-01-02"
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		t, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(model.ErrorResponse{Error: "invalid from date: use YYYY-MM-DD (e.g. 2006-01-02)"})
			return
		}
		filter.From = &t
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		t, err := time.Parse(dateLayout, toStr)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(model.ErrorResponse{Error: "invalid to date: use YYYY-MM-DD (e.g. 2006-01-02)"})
			return
		}
		// End of day so filter is inclusive
		t = t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &t
	}

	// Parse transaction types (comma-separated)
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		for _, name := range strings.Split(typeStr, ",") {
			filter.Types = append(filter.Types, model.TransactionType(strings.TrimSpace(name)))
		}
	}

	// Parse amounts
	if minAmount := r.URL.Query().Get("minAmount"); minAmount != "" {
		filter.MinAmount = &minAmount
	}
	if maxAmount := r.URL.Query().Get("maxAmount"); maxAmount != "" {
		filter.MaxAmount = &maxAmount
	}

	// Parse page size
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(model.ErrorResponse{Error: "invalid size: must be an integer"})
			return
		}
		filter.PageSize = size
	}

	// Validate
	if err := filter.Validate(); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
		return
	}

	historyResp, err := edgex.GetFundingHistory(r.Context(), h.client, &filter)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusForError(err))
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(historyResp)
}

// Transactions handles GET /edgex/transactions
// @Summary      Get raw position transaction page
// @Description  Gets one page of position transactions as returned by EdgeX
// @Tags         edgex
// @Produce      json
// @Param        type        query     string  false  "Comma-separated transaction types"
// @Param        size        query     string  false  "Page size"
// @Param        offsetData  query     string  false  "Page cursor from a previous response"
// @Success      200  {object}  client.PositionTransactionPage
// @Router       /edgex/transactions [get]
func (h *EdgeXHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	params := client.PositionTransactionParams{
		FilterTypeList: r.URL.Query().Get("type"),
		Size:           r.URL.Query().Get("size"),
		OffsetData:     r.URL.Query().Get("offsetData"),
	}

	page, err := h.client.GetPositionTransactionPage(r.Context(), params)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusForError(err))
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(page)
}

// Summary handles GET /edgex/summary
// @Summary      Get account summary
// @Description  Gets collateral balance and the latest funding fee settlement
// @Tags         edgex
// @Produce      json
// @Success      200  {object}  model.AccountSummaryResponse
// @Router       /edgex/summary [get]
func (h *EdgeXHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	summaryResp, err := edgex.GetAccountSummary(r.Context(), h.client)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusForError(err))
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summaryResp)
}

// statusForError maps API-level failures to 502, everything else to 500
func statusForError(err error) int {
	if client.IsAPIError(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
