package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"blinkgate.io/infrastructure/logger"
)

// NetworkController is a thin JSON client for the internal services
// this app depends on. BaseUrl should not have a trailing slash.
type NetworkController struct {
	BaseUrl string
}

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

func (network *NetworkController) Post(path string, headers *map[string]string, body any, params *map[string]string, stream bool, timeout *time.Duration) (*[]byte, *int, error) {
	var payload io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			logger.Error("error marshalling request body", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			return nil, nil, err
		}
		payload = bytes.NewBuffer(jsonBody)
	}
	req, err := http.NewRequest("POST", fmt.Sprintf("%s%s", network.BaseUrl, path), payload)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if headers != nil {
		for key, value := range *headers {
			req.Header.Set(key, value)
		}
	}
	if params != nil {
		query := req.URL.Query()
		for key, value := range *params {
			query.Add(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}
	client := httpClient
	if timeout != nil {
		client = &http.Client{Timeout: *timeout}
	}
	res, err := client.Do(req)
	if err != nil {
		logger.Error("network request failed", logger.LoggerOptions{
			Key:  "url",
			Data: req.URL.String(),
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, nil, err
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &res.StatusCode, err
	}
	return &resBody, &res.StatusCode, nil
}

func (network *NetworkController) Get(path string, headers *map[string]string, params *map[string]string) (*[]byte, *int, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s%s", network.BaseUrl, path), nil)
	if err != nil {
		return nil, nil, err
	}
	if headers != nil {
		for key, value := range *headers {
			req.Header.Set(key, value)
		}
	}
	if params != nil {
		query := req.URL.Query()
		for key, value := range *params {
			query.Add(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}
	res, err := httpClient.Do(req)
	if err != nil {
		logger.Error("network request failed", logger.LoggerOptions{
			Key:  "url",
			Data: req.URL.String(),
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, nil, err
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &res.StatusCode, err
	}
	return &resBody, &res.StatusCode, nil
}
