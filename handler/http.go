package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pyama86/inquiry-relay/metrics"
)

const maxBodyBytes = 1 << 20

// 成功・失敗に関わらず全てのレスポンスに付ける
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type",
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/submit", h.HandleSubmit)
	mux.HandleFunc("/health", h.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	for k, v := range corsHeaders {
		w.Header().Set(k, v)
	}

	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "POST, OPTIONS")
		writeJSON(w, http.StatusMethodNotAllowed, submitResponse{Message: messageMethodNotAllowed})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		status, resp := h.fail(fmt.Errorf("failed to read request body: %w", err), "")
		writeJSON(w, status, resp)
		return
	}

	// クライアントが切断しても一度始めた処理は最後まで実行する
	status, resp := h.process(context.WithoutCancel(r.Context()), body)
	writeJSON(w, status, resp)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// process はリクエストボディを受け取り、返すべきステータスとボディを決める
func (h *Handler) process(ctx context.Context, body []byte) (int, submitResponse) {
	req, err := decodeSubmitRequest(body)
	if err != nil {
		return h.fail(err, "")
	}

	inquiry, err := h.Submit(ctx, req)
	if err != nil {
		return h.fail(err, inquiry.ID)
	}

	metrics.RecordSubmission(metrics.ResultSuccess)
	slog.Info("Inquiry submitted", slog.String("inquiry_id", inquiry.ID))
	return http.StatusOK, submitResponse{
		Message:   messageSuccess,
		InquiryID: inquiry.ID,
	}
}

// 原因に関わらず同じエラーレスポンスを返す
func (h *Handler) fail(err error, inquiryID string) (int, submitResponse) {
	metrics.RecordSubmission(metrics.ResultFailure)
	attrs := []any{slog.Any("err", err)}
	if inquiryID != "" {
		attrs = append(attrs, slog.String("inquiry_id", inquiryID))
	}
	slog.Error("Submit failed", attrs...)
	return http.StatusInternalServerError, submitResponse{Message: messageError}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response", slog.Any("err", err))
	}
}
