package client

// http_client.go = talks to the JustCo chat API for the CLI.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"justco/internal/microservices/http-api/dto"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken sets the admin bearer token used by DeleteRoom.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) CreateRoom(request *dto.CreateRoomRequest) (*dto.StatusResponse, error) {
	var result dto.StatusResponse
	if err := c.do(http.MethodPost, "/chat/create", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) JoinRoom(secretCode string) (*dto.JoinRoomResponse, error) {
	var result dto.JoinRoomResponse
	if err := c.do(http.MethodPost, "/chat/join", dto.JoinRoomRequest{SecretCode: secretCode}, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListRooms() ([]dto.RoomResponse, error) {
	var result []dto.RoomResponse
	if err := c.do(http.MethodGet, "/chat/rooms", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) DeleteRoom(secretCode string) error {
	return c.do(http.MethodDelete, "/chat/room/"+url.PathEscape(secretCode), nil, http.StatusOK, nil)
}

func (c *HTTPClient) PostMessage(request *dto.PostMessageRequest) (*dto.StatusResponse, error) {
	var result dto.StatusResponse
	if err := c.do(http.MethodPost, "/chat/message", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetMessages(secretCode string) ([]dto.MessageResponse, error) {
	var result []dto.MessageResponse
	if err := c.do(http.MethodGet, "/chat/messages/"+url.PathEscape(secretCode), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) do(method, path string, body interface{}, want int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // Ensure the response body is closed

	if resp.StatusCode != want {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody dto.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
