package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/codec"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/logger"
	"golang.org/x/net/html/charset"
)

const (
	// DefaultBaseURL is the HNB exchange rate list endpoint
	DefaultBaseURL = "http://api.hnb.hr/tecajn/v2"

	currencyParam  = "valuta"
	startDateParam = "datum-primjene-od"
	endDateParam   = "datum-primjene-do"

	// maxErrorBody bounds how much of a failed response ends up in the error message
	maxErrorBody = 512
)

// HNBAPIClient queries the Croatian National Bank exchange rate list
type HNBAPIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewHNBAPIClient creates a new HNB API client. An empty baseURL selects
// DefaultBaseURL and a nil httpClient uses the transport defaults.
func NewHNBAPIClient(baseURL string, httpClient *http.Client, log logger.Logger) *HNBAPIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &HNBAPIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log,
	}
}

// RequestURL builds the query URL for a resolved date range
func (c *HNBAPIClient) RequestURL(query entity.DateRangeQuery) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}

	// An empty valuta is sent as-is; HNB answers with every currency
	q := u.Query()
	q.Set(currencyParam, query.Currency)
	q.Set(startDateParam, query.StartParam())
	q.Set(endDateParam, query.EndParam())
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// FetchRates retrieves the rate list for the query in the order HNB returns it
func (c *HNBAPIClient) FetchRates(ctx context.Context, query entity.DateRangeQuery) ([]entity.ExchangeRate, error) {
	reqURL, err := c.RequestURL(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrTransport, err)
	}

	c.logger.Debug("HNB API request", map[string]interface{}{
		"url": reqURL,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", entity.ErrTransport, err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", entity.ErrTransport, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Error closing response body", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &entity.HTTPStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.ToValidUTF8(string(excerpt), ""),
		}
	}

	body, err := utf8Body(resp)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", entity.ErrTransport, err)
	}

	c.logger.Debug("HNB API response", map[string]interface{}{
		"status": resp.StatusCode,
		"bytes":  len(bodyBytes),
	})

	rates, err := codec.DecodeRates(bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return rates, nil
}

// utf8Body transcodes the body when the response declares a charset; JSON
// without one is UTF-8.
func utf8Body(resp *http.Response) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || params["charset"] == "" {
		return resp.Body, nil
	}

	body, err := charset.NewReaderLabel(params["charset"], resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported response charset %q: %w", entity.ErrDecode, params["charset"], err)
	}
	return body, nil
}
