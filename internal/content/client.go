// Package content is the HTTP client for the upstream content API.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/templui/postpage/internal/model"
	"github.com/templui/postpage/internal/validation"
)

var ErrUnexpectedStatus = errors.New("unexpected status from content api")

// maxBodySize caps how much of a post response is read.
const maxBodySize = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// PostByID fetches GET {base}/posts/{id}.
// A 404 or a JSON null body means there is no such post and returns (nil, nil).
// Any other failure, including an incomplete record, is returned as an error.
func (c *Client) PostByID(ctx context.Context, id string) (*model.Post, error) {
	endpoint := c.baseURL + "/posts/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post %s: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read post %s: %w", id, err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var post *model.Post
	err = json.Unmarshal(body, &post)
	if err != nil {
		return nil, fmt.Errorf("failed to decode post %s: %w", id, err)
	}
	if post == nil {
		return nil, nil
	}

	err = validation.ValidatePost(post)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", id, err)
	}

	return post, nil
}
