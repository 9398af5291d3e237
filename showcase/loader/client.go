// Package loader fetches the product list and hands it to the frame loop.
package loader

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"

	"vitrine/showcase/catalog"
)

// ErrUnexpectedStatus is returned for non-2xx API responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

const maxBody = 4 << 20

// Client performs the product API request.
type Client struct {
	url  string
	http *http.Client
}

// NewClient returns a client for url. A zero timeout leaves requests bounded
// only by their context.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{url: url, http: &http.Client{Timeout: timeout}}
}

// URL returns the endpoint the client fetches.
func (c *Client) URL() string { return c.url }

// FetchProducts downloads and decodes the product list.
func (c *Client) FetchProducts(ctx context.Context) (catalog.ProductList, error) {
	body, err := c.fetch(ctx)
	if err != nil {
		return catalog.ProductList{}, err
	}
	return catalog.DecodeProductList(body)
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil, errors.Wrapf(ErrUnexpectedStatus, "%d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	return body, nil
}
