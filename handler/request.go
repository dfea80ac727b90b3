package handler

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	messageSuccess          = "Success!"
	messageError            = "Error submitting inquiry"
	messageMethodNotAllowed = "Method not allowed"
)

type SubmitRequest struct {
	Name    string
	Email   string
	Message string
}

// null やキー欠落を区別するためポインタで受ける
type submitPayload struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
}

type submitResponse struct {
	Message   string `json:"message"`
	InquiryID string `json:"inquiryId,omitempty"`
}

func decodeSubmitRequest(body []byte) (*SubmitRequest, error) {
	var p submitPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	var missing []error
	if p.Name == nil {
		missing = append(missing, errors.New("name is required"))
	}
	if p.Email == nil {
		missing = append(missing, errors.New("email is required"))
	}
	if p.Message == nil {
		missing = append(missing, errors.New("message is required"))
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("invalid request body: %w", errors.Join(missing...))
	}

	return &SubmitRequest{
		Name:    *p.Name,
		Email:   *p.Email,
		Message: *p.Message,
	}, nil
}
