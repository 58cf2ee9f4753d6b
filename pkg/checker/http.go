package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// maxDrainBytes bounds how much of a response body is read before closing,
// enough to let the transport reuse the connection.
const maxDrainBytes = 4 << 10

var defaultHTTPClient = &http.Client{Timeout: 10 * time.Second}

// HTTP returns an existence check that issues GET endpoint?param=value. A
// 200 response means the value is taken, 404 means it is free, anything else
// is a fault. A nil client falls back to a 10 second timeout default. Panics
// when endpoint is not an absolute URL or param is empty.
func HTTP(client *http.Client, endpoint, param string) func(ctx context.Context, value string) (bool, error) {
	base, err := url.Parse(endpoint)
	if err != nil || base.Scheme == "" || base.Host == "" {
		panic("checker: endpoint must be an absolute URL")
	}
	if param == "" {
		panic("checker: param must not be empty")
	}
	if client == nil {
		client = defaultHTTPClient
	}

	return func(ctx context.Context, value string) (bool, error) {
		u := *base
		q := u.Query()
		q.Set(param, value)
		u.RawQuery = q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return false, errors.Join(ErrRequestFailed, err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return false, errors.Join(ErrRequestFailed, err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

		switch resp.StatusCode {
		case http.StatusOK:
			return true, nil
		case http.StatusNotFound:
			return false, nil
		default:
			return false, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
		}
	}
}
