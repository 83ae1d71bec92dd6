package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"payment-service/internal/logger"
	"payment-service/internal/order"
	"payment-service/internal/signature"
	"payment-service/internal/utils"

	"go.uber.org/zap"
)

// maxBodyBytes also bounds how many digits an amount literal can carry.
const maxBodyBytes = 64 << 10

var errTrailingData = errors.New("unexpected data after JSON body")

// VerifyRequest field names are fixed by the checkout client.
type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerificationObserver is satisfied by *metrics.Metrics.
type VerificationObserver interface {
	ObserveVerification(status string)
}

type Handler struct {
	OrderSvc order.Service
	Verifier *signature.Verifier
	Metrics  VerificationObserver
	DevMode  bool
}

func NewHandler(orderSvc order.Service, verifier *signature.Verifier, m VerificationObserver, devMode bool) *Handler {
	return &Handler{
		OrderSvc: orderSvc,
		Verifier: verifier,
		Metrics:  m,
		DevMode:  devMode,
	}
}

// Root is the liveness probe.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Payment service is running"))
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	var req order.CreateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Warn("Invalid create-order body", zap.Error(err))
		h.writeError(w, "Invalid request body", err, http.StatusBadRequest)
		return
	}

	created, err := h.OrderSvc.CreateOrder(r.Context(), req)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusOK, created)
	case errors.Is(err, order.ErrInvalidAmount):
		h.writeError(w, "Invalid amount", err, http.StatusBadRequest)
	case errors.Is(err, order.ErrInvalidNotes):
		h.writeError(w, "Invalid notes", err, http.StatusBadRequest)
	default:
		log.Error("Failed to create order", zap.Error(err))
		h.writeError(w, "Failed to create order", err, http.StatusInternalServerError)
	}
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	var req VerifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Warn("Invalid verify body", zap.Error(err))
		h.writeError(w, "Invalid request body", err, http.StatusBadRequest)
		return
	}

	res, err := h.Verifier.Verify(req.OrderID, req.PaymentID, req.Signature)
	if errors.Is(err, signature.ErrMissingParameters) {
		h.writeError(w, "Missing required parameters", err, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Error("Verification failed unexpectedly", zap.Error(err))
		h.writeError(w, "Verification failed", err, http.StatusInternalServerError)
		return
	}

	if h.Metrics != nil {
		h.Metrics.ObserveVerification(res.Status)
	}
	log.Info("Payment verification",
		zap.String("order_id", req.OrderID),
		zap.String("payment_id", req.PaymentID),
		zap.String("status", res.Status),
	)
	utils.WriteJSON(w, http.StatusOK, res)
}

// writeError hides err from clients unless the service runs in development mode.
func (h *Handler) writeError(w http.ResponseWriter, message string, err error, code int) {
	if h.DevMode && err != nil {
		utils.WriteJSONErrorDetail(w, message, err.Error(), code)
		return
	}
	utils.WriteJSONError(w, message, code)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	// An empty body decodes to the zero value so that validation reports
	// the missing fields.
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
