// Package apiversion finds the newest platform API version an org
// supports.
package apiversion

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Getter fetches and decodes a JSON document. *httpclient.Client
// satisfies it.
type Getter interface {
	GetJSON(ctx context.Context, url string, headers map[string]string, target any) error
}

// Version is one entry of the versions endpoint response.
type Version struct {
	Label   string `json:"label"`
	URL     string `json:"url"`
	Version string `json:"version"`
}

// Client queries a versions endpoint such as
// https://<instance>.my.salesforce.com/services/data.
type Client struct {
	getter Getter
	logger sfdelta.Logger
}

// NewClient creates a Client.
func NewClient(getter Getter, logger sfdelta.Logger) *Client {
	return &Client{getter: getter, logger: logger}
}

// Latest returns the highest version listed at url, as the endpoint spells it.
func (c *Client) Latest(ctx context.Context, url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("versions URL is required: %w", sfdelta.ErrInvalidConfig)
	}

	var versions []Version
	if err := c.getter.GetJSON(ctx, url, nil, &versions); err != nil {
		return "", fmt.Errorf("failed to list API versions: %w (%w)", err, sfdelta.ErrAPIVersionUnavailable)
	}

	latest, err := Max(versions)
	if err != nil {
		return "", err
	}
	c.logger.Verbose("latest API version at %s is %s", url, latest)
	return latest, nil
}

// Max returns the numerically highest version string.
func Max(versions []Version) (string, error) {
	var (
		best    string
		bestNum float64
	)
	for _, v := range versions {
		num, err := strconv.ParseFloat(strings.TrimSpace(v.Version), 64)
		if err != nil {
			return "", fmt.Errorf("invalid API version %q: %w", v.Version, sfdelta.ErrAPIVersionUnavailable)
		}
		if best == "" || num > bestNum {
			best, bestNum = strings.TrimSpace(v.Version), num
		}
	}
	if best == "" {
		return "", fmt.Errorf("no API versions listed: %w", sfdelta.ErrAPIVersionUnavailable)
	}
	return best, nil
}
