package controller

import (
	"encoding/json"
	"fmt"
)

const maxKeyLength = 200

type KeyReq struct {
	Key string `json:"key"`
}

func ParseKeyReq(data []byte) (*KeyReq, error) {
	req := &KeyReq{}

	err := json.Unmarshal(data, req)
	if err != nil {
		return nil, err
	}

	if err = checkKey(req.Key); err != nil {
		return nil, err
	}

	return req, nil
}

type SetReq struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func ParseSetReq(data []byte) (*SetReq, error) {
	req := &SetReq{}

	err := json.Unmarshal(data, req)
	if err != nil {
		return nil, err
	}

	if err = checkKey(req.Key); err != nil {
		return nil, err
	}

	return req, nil
}

// Responses

type GetResponse struct {
	Value json.RawMessage `json:"value"`
}

type AckResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Service

func checkKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("empty key supplied")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key exceeds length limit: %d / %d", len(key), maxKeyLength)
	}
	return nil
}
