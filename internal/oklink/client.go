package oklink

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/brc20-export/common/errs"
	"github.com/gaze-network/brc20-export/internal/brc20"
	"github.com/gaze-network/brc20-export/pkg/httpclient"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL      = "https://www.oklink.com"
	transactionListPath = "/api/v5/explorer/btc/transaction-list"

	// pageLimit is the fixed page size requested from the explorer.
	pageLimit = 50
)

type Config struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Debug   bool   `mapstructure:"debug"`
}

// Client is a minimal OKLink explorer API client. No retries, no backoff:
// any transport or decode failure is surfaced to the caller as-is.
type Client struct {
	httpClient *httpclient.Client
	config     Config
}

func NewClient(config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.New("oklink.api_key config is required")
	}
	baseURL := utils.Default(config.BaseURL, defaultBaseURL)
	httpClient, err := httpclient.New(baseURL, httpclient.Config{
		Debug: config.Debug,
		Headers: map[string]string{
			"Ok-Access-Key": config.APIKey,
			"Content-Type":  "application/json",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{
		httpClient: httpClient,
		config:     config,
	}, nil
}

// GetInscriptionPage fetches one page (1-based) of a wallet's BRC20
// inscription history and normalizes it into domain types.
func (c *Client) GetInscriptionPage(ctx context.Context, address string, page int) (*brc20.Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(pageLimit))
	query.Set("address", address)
	resp, err := c.httpClient.Get(ctx, transactionListPath, httpclient.RequestOptions{
		Query: query,
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't send request")
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, errors.Errorf("got error response from oklink: http status %d, response: %s", resp.StatusCode(), resp.Body())
	}
	var raw responseRaw
	if err := resp.UnmarshalBody(&raw); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(raw.Data) == 0 {
		return nil, errors.Wrap(errs.NotFound, "no pagination found")
	}
	pagination, err := mapPagination(raw.Data[0])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return pagination, nil
}
