package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"employee-facade/internal/domains/employee/model"
)

var _ EmployeeGateway = (*Client)(nil)

type Options struct {
	BaseURL          string
	EmployeeResource string
	Timeout          time.Duration

	HTTPClient *http.Client
}

// Client is the HTTP implementation of EmployeeGateway. It keeps no state between calls.
type Client struct {
	collectionURL string
	httpClient    *http.Client
}

func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("upstream base URL required")
	}

	resource := strings.TrimSpace(opts.EmployeeResource)
	if resource == "" {
		return nil, errors.New("upstream employee resource required")
	}
	if !strings.HasPrefix(resource, "/") {
		resource = "/" + resource
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		collectionURL: baseURL + strings.TrimRight(resource, "/"),
		httpClient:    hc,
	}, nil
}

func (c *Client) itemURL(id string) string {
	return c.collectionURL + "/" + url.PathEscape(id)
}

// FetchAll returns every upstream record. A null data array yields an empty slice.
func (c *Client) FetchAll(ctx context.Context) ([]model.Employee, error) {
	status, raw, err := c.doJSON(ctx, http.MethodGet, c.collectionURL, nil)
	if err != nil {
		return nil, model.NewIntegrationError("Failed to fetch employees from upstream", err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, model.NewRateLimited(newHTTPError(http.MethodGet, c.collectionURL, status, raw))
	default:
		return nil, model.NewIntegrationError("Unexpected upstream status while fetching employees",
			newHTTPError(http.MethodGet, c.collectionURL, status, raw))
	}

	var env model.ListEnvelope
	if err := decodeJSON(raw, &env); err != nil {
		return nil, model.NewIntegrationError("Malformed upstream employee list", err)
	}
	if env.Data == nil {
		return []model.Employee{}, nil
	}

	for i := range env.Data {
		if !env.Data[i].Complete() {
			return nil, model.NewIntegrationError("Malformed upstream employee list",
				fmt.Errorf("record %d is missing required fields", i))
		}
	}
	return env.Data, nil
}

func (c *Client) FetchByID(ctx context.Context, id string) (*model.Employee, error) {
	if err := model.RequireNonBlank(id, "Employee ID"); err != nil {
		return nil, err
	}

	target := c.itemURL(id)
	status, raw, err := c.doJSON(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, model.NewIntegrationError("Failed to fetch employee from upstream", err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, model.NewNotFound()
	case http.StatusTooManyRequests:
		return nil, model.NewRateLimited(newHTTPError(http.MethodGet, target, status, raw))
	default:
		return nil, model.NewIntegrationError("Unexpected upstream status while fetching employee",
			newHTTPError(http.MethodGet, target, status, raw))
	}

	var env model.SingleEnvelope
	if err := decodeJSON(raw, &env); err != nil {
		return nil, model.NewIntegrationError("Malformed upstream employee", err)
	}
	if env.Data == nil || !env.Data.Complete() {
		return nil, model.NewIntegrationError("Malformed upstream employee", errors.New("record is missing required fields"))
	}
	if env.Data.ID != id {
		return nil, model.NewIntegrationError("Upstream returned a different employee",
			fmt.Errorf("requested id %q, got %q", id, env.Data.ID))
	}
	return env.Data, nil
}

// Create validates with GatewayAgeBounds before any network call.
func (c *Client) Create(ctx context.Context, req model.CreateEmployeeRequest) (*model.Employee, error) {
	if err := model.ValidateCreate(req, model.GatewayAgeBounds); err != nil {
		return nil, err
	}

	status, raw, err := c.doJSON(ctx, http.MethodPost, c.collectionURL, req)
	if err != nil {
		return nil, model.NewIntegrationError("Failed to reach upstream while creating employee", err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, model.NewRateLimited(newHTTPError(http.MethodPost, c.collectionURL, status, raw))
	default:
		return nil, model.NewCreationFailed(newHTTPError(http.MethodPost, c.collectionURL, status, raw))
	}

	var env model.SingleEnvelope
	if err := decodeJSON(raw, &env); err != nil {
		return nil, model.NewIntegrationError("Malformed upstream employee", err)
	}
	if env.Data == nil || !env.Data.Complete() {
		return nil, model.NewIntegrationError("Malformed upstream employee", errors.New("record is missing required fields"))
	}
	return env.Data, nil
}

// DeleteByName succeeds only on 200 with a true deleted flag.
func (c *Client) DeleteByName(ctx context.Context, name string) error {
	if err := model.RequireNonBlank(name, "Employee name"); err != nil {
		return err
	}

	status, raw, err := c.doJSON(ctx, http.MethodDelete, c.collectionURL, model.DeleteByNameRequest{Name: name})
	if err != nil {
		return model.NewIntegrationError("Failed to reach upstream while deleting employee", err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return model.NewRateLimited(newHTTPError(http.MethodDelete, c.collectionURL, status, raw))
	default:
		return model.NewDeletionFailed(name, newHTTPError(http.MethodDelete, c.collectionURL, status, raw))
	}

	var env model.DeleteEnvelope
	if err := decodeJSON(raw, &env); err != nil {
		return model.NewDeletionFailed(name, err)
	}
	if env.Data == nil || !*env.Data {
		return model.NewDeletionFailed(name, errors.New("upstream reported the employee was not deleted"))
	}
	return nil
}

func newHTTPError(method, target string, status int, body []byte) *HTTPError {
	return &HTTPError{Method: method, URL: target, StatusCode: status, Body: body}
}
