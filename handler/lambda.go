package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// HandleAPIGatewayProxy は API Gateway のプロキシ統合から呼ばれる Lambda のエントリポイント
func (h *Handler) HandleAPIGatewayProxy(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := map[string]string{}
	for k, v := range corsHeaders {
		headers[k] = v
	}

	switch req.HTTPMethod {
	case http.MethodOptions:
		headers["Access-Control-Allow-Methods"] = "POST, OPTIONS"
		return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent, Headers: headers}, nil
	case http.MethodPost, "":
	default:
		headers["Allow"] = "POST, OPTIONS"
		return apiGatewayResponse(http.StatusMethodNotAllowed, headers, submitResponse{Message: messageMethodNotAllowed}), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			status, resp := h.fail(fmt.Errorf("failed to decode base64 body: %w", err), "")
			return apiGatewayResponse(status, headers, resp), nil
		}
		body = decoded
	}

	status, resp := h.process(ctx, body)
	return apiGatewayResponse(status, headers, resp), nil
}

func apiGatewayResponse(status int, headers map[string]string, resp submitResponse) events.APIGatewayProxyResponse {
	headers["Content-Type"] = "application/json"
	// submitResponse は文字列だけなので Marshal は失敗しない
	b, _ := json.Marshal(resp)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(b),
	}
}
