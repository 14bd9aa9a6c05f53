package storage

import (
	"encoding/json"
	"fmt"

	"github.com/mmynk/aidledger/internal/models"
)

// EncodePayload returns the JSON document stored for a pending request's
// submission.
func EncodePayload(req *models.PendingRequest) ([]byte, error) {
	var v any
	switch req.Type {
	case models.RequestIndividual:
		if req.Individual == nil {
			return nil, fmt.Errorf("individual request %s has no submission", req.ID)
		}
		v = req.Individual
	case models.RequestNeed:
		if req.Need == nil {
			return nil, fmt.Errorf("need request %s has no submission", req.ID)
		}
		v = req.Need
	default:
		return nil, fmt.Errorf("unknown request type %q", req.Type)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}
	return data, nil
}

// DecodePayload sets the submission of req from its stored JSON document.
// req.Type must already be set.
func DecodePayload(req *models.PendingRequest, data []byte) error {
	switch req.Type {
	case models.RequestIndividual:
		req.Individual = new(models.IndividualSubmission)
		if err := json.Unmarshal(data, req.Individual); err != nil {
			return fmt.Errorf("failed to decode individual submission: %w", err)
		}
	case models.RequestNeed:
		req.Need = new(models.NeedSubmission)
		if err := json.Unmarshal(data, req.Need); err != nil {
			return fmt.Errorf("failed to decode need submission: %w", err)
		}
	default:
		return fmt.Errorf("unknown request type %q", req.Type)
	}
	return nil
}
