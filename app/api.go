package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// apiError decodes the server's {"message": "..."} body so the raw message
// can be surfaced verbatim in a toast.
func apiError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return errors.New(resp.Status)
	}
	return errors.New(body.Message)
}

func apiGet(path string, out any) error {
	resp, err := http.Get(path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiSend(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiPost(path string, body, out any) error {
	return apiSend(http.MethodPost, path, body, out)
}

func apiPut(path string, body, out any) error {
	return apiSend(http.MethodPut, path, body, out)
}

func apiDelete(path string, body any) error {
	return apiSend(http.MethodDelete, path, body, nil)
}

// apiGetCtx is the fetch used by polling loops; a cancelled context drops the
// response instead of applying it.
func apiGetCtx(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
