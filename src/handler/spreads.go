package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jiaming2012/options-flow/src/eventmodels"
	"github.com/jiaming2012/options-flow/src/spreads"
)

type errorResponse struct {
	Type string `json:"type"`
	Msg  string `json:"message"`
}

func NewErrorResponse(errType string, message string) *errorResponse {
	return &errorResponse{
		Type: errType,
		Msg:  message,
	}
}

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("setResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(errType string, statusCode int, err error, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := NewErrorResponse(errType, err.Error())
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		return encodeErr
	}

	return nil
}

// SpreadsQuery holds the optional query parameters of POST /spreads.
type SpreadsQuery struct {
	Threshold  float64 `schema:"threshold"`
	SingleLegs *bool   `schema:"single_legs"`
}

func (q *SpreadsQuery) includeSingleLegs() bool {
	return q.SingleLegs == nil || *q.SingleLegs
}

type SpreadsRequest struct {
	Trades []eventmodels.OptionTrade `json:"trades"`
}

type SpreadsResponse struct {
	RequestID string                    `json:"request_id"`
	Count     int                       `json:"count"`
	Spreads   eventmodels.OptionSpreads `json:"spreads"`
}

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func handleSpreads(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var query SpreadsQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		setErrorResponse("handleSpreads: invalid query", http.StatusBadRequest, err, w)
		return
	}

	var req SpreadsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		setErrorResponse("handleSpreads: invalid body", http.StatusBadRequest, err, w)
		return
	}

	if len(req.Trades) == 0 {
		setErrorResponse("handleSpreads: no trades", http.StatusBadRequest, eventmodels.ErrEmptyBatch, w)
		return
	}

	var out eventmodels.OptionSpreads
	if query.includeSingleLegs() {
		out = spreads.Assemble(req.Trades)
	} else {
		out = spreads.GetSpreads(req.Trades)
	}

	if query.Threshold > 0 {
		out = out.Larger(query.Threshold)
	}

	if out == nil {
		out = eventmodels.OptionSpreads{}
	}

	log.WithFields(log.Fields{
		"request_id": requestID,
		"trades":     len(req.Trades),
		"spreads":    len(out),
	}).Info("classified batch")

	resp := SpreadsResponse{
		RequestID: requestID,
		Count:     len(out),
		Spreads:   out,
	}

	if err := setResponse(resp, w); err != nil {
		log.Errorf("handleSpreads: %v", err)
	}
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := setResponse(map[string]string{"status": "ok"}, w); err != nil {
		setErrorResponse("handleHealthz: failed to set response", http.StatusInternalServerError, err, w)
	}
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	setErrorResponse("not found", http.StatusNotFound, errors.New(r.URL.Path), w)
}

// SetupHandler registers the spread routes on router.
func SetupHandler(router *mux.Router) {
	router.Handle("/spreads", otelhttp.WithRouteTag("/spreads", http.HandlerFunc(handleSpreads))).Methods(http.MethodPost)
	router.Handle("/healthz", otelhttp.WithRouteTag("/healthz", http.HandlerFunc(handleHealthz))).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(handleNotFound)
}
