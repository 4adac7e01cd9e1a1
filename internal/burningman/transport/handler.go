// Package transport serves burning man queries over HTTP.
package transport

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goodnatureofminers/burningman/internal/burningman/service"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

var errBadRequest = errors.New("bad request")

// Handler serves the burning man JSON API.
type Handler struct {
	svc     BurningMan
	outputs OutputBuilder
	logger  *zap.Logger
}

// NewHandler returns a Handler. outputs may be nil, then payout responses carry no scripts.
func NewHandler(svc BurningMan, outputs OutputBuilder, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, outputs: outputs, logger: logger}
}

// Router returns the API routes wrapped in permissive CORS.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/height", h.handleHeight)
		r.Get("/snapshot-height", h.handleSnapshotHeight)
		r.Get("/candidates", h.handleCandidates)
		r.Get("/candidates/{name}", h.handleCandidate)
		r.Get("/burn-target", h.handleBurnTarget)
		r.Get("/reimbursements", h.handleReimbursements)
		r.Get("/delayed-payout", h.handleDelayedPayout)
		r.Get("/fee-receiver", h.handleFeeReceiver)
		r.Get("/legacy-address", h.handleLegacyAddress)
		r.Get("/me/genesis-names", h.handleMyGenesisNames)
		r.Get("/me/compensation-names", h.handleMyCompensationNames)
	})

	return cors.Default().Handler(r)
}

func (h *Handler) handleHeight(w http.ResponseWriter, r *http.Request) {
	height, err := h.svc.CurrentHeight(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, heightResponse{Height: height})
}

func (h *Handler) handleSnapshotHeight(w http.ResponseWriter, r *http.Request) {
	chainHeight, ok, err := optionalInt(r, "height")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !ok {
		if chainHeight, err = h.svc.CurrentHeight(r.Context()); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	h.writeJSON(w, snapshotHeightResponse{
		ChainHeight:    chainHeight,
		SnapshotHeight: h.svc.SnapshotHeightFor(chainHeight),
	})
}

func (h *Handler) handleCandidates(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	withRecords := r.URL.Query().Get("records") == "true"
	h.writeJSON(w, newCandidatesResponse(view, withRecords))
}

func (h *Handler) handleCandidate(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	// chi matches on the raw path, so an escaped slash reaches us still encoded.
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: invalid candidate name: %v", errBadRequest, err))
		return
	}
	c, ok := view.Candidates[name]
	if !ok {
		h.writeStatus(w, http.StatusNotFound, fmt.Sprintf("candidate %q not found at %d", name, view.Height))
		return
	}
	h.writeJSON(w, newCandidate(c, true))
}

func (h *Handler) handleBurnTarget(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, burnTargetResponse{Height: view.Height, BurnTarget: view.BurnTarget})
}

func (h *Handler) handleReimbursements(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, newReimbursementsResponse(view))
}

func (h *Handler) handleDelayedPayout(w http.ResponseWriter, r *http.Request) {
	inputAmount, err := requiredInt64(r, "input_amount")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	tradeTxFee, err := requiredInt64(r, "trade_tx_fee")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	selectionHeight, ok, err := optionalInt(r, "selection_height")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !ok {
		if selectionHeight, err = h.svc.SelectionHeight(r.Context()); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	receivers, err := h.svc.DelayedPayoutReceivers(r.Context(), selectionHeight, inputAmount, tradeTxFee)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := delayedPayoutResponse{
		SelectionHeight: selectionHeight,
		Receivers:       make([]receiver, 0, len(receivers)),
	}
	for _, rc := range receivers {
		resp.Receivers = append(resp.Receivers, receiver{
			Address:   rc.Address,
			Amount:    rc.Amount,
			AmountBTC: btcutil.Amount(rc.Amount).String(),
		})
	}
	if h.outputs != nil && len(receivers) > 0 {
		outs, err := h.outputs.TxOuts(receivers)
		if err != nil {
			h.logger.Warn("build payout outputs", zap.Int("selection_height", selectionHeight), zap.Error(err))
		} else {
			for i, out := range outs {
				resp.Receivers[i].PkScript = hex.EncodeToString(out.PkScript)
			}
		}
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handleFeeReceiver(w http.ResponseWriter, r *http.Request) {
	address, err := h.svc.FeeReceiverAddress(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, addressResponse{Address: address})
}

func (h *Handler) handleLegacyAddress(w http.ResponseWriter, r *http.Request) {
	height, ok, err := optionalInt(r, "height")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !ok {
		if height, err = h.svc.CurrentHeight(r.Context()); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	address, err := h.svc.LegacyBurningManAddress(r.Context(), height)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, addressResponse{Address: address})
}

func (h *Handler) handleMyGenesisNames(w http.ResponseWriter, r *http.Request) {
	names, known, err := h.svc.MyGenesisOutputNames(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	h.writeJSON(w, namesResponse{Known: known, Names: names})
}

func (h *Handler) handleMyCompensationNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.MyCompensationRequestNames(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	h.writeJSON(w, namesResponse{Known: true, Names: names})
}

// view returns the view of the height query param, or the current view without one.
func (h *Handler) view(r *http.Request) (*service.View, error) {
	height, ok, err := optionalInt(r, "height")
	if err != nil {
		return nil, err
	}
	if !ok {
		return h.svc.CurrentView(r.Context())
	}
	return h.svc.View(r.Context(), height)
}

func optionalInt(r *http.Request, key string) (int, bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, key)
	}
	return v, true, nil
}

func requiredInt64(r *http.Request, key string) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", errBadRequest, key)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, key)
	}
	return v, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errBadRequest):
		h.writeStatus(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled):
		h.writeStatus(w, http.StatusServiceUnavailable, "request canceled")
	default:
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		h.writeStatus(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		h.logger.Warn("write error response", zap.Error(err))
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
