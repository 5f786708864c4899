package connect

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/blang/semver/v4"
	"github.com/go-resty/resty/v2"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

// MinimumVersion is the first Connect release able to list connectors with their status in one call
var MinimumVersion = semver.MustParse("2.3.0")

type ServerInfo struct {
	Version        string `json:"version"`
	Commit         string `json:"commit"`
	KafkaClusterID string `json:"kafka_cluster_id"`
}

// CheckVersion fails when the worker is too old to be reconciled
func (s *ServerInfo) CheckVersion() error {
	version, err := semver.ParseTolerant(s.Version)
	if err != nil {
		return fmt.Errorf("unparseable Connect version %q: %v", s.Version, err)
	}
	// pre-release builds of the minimum version are accepted
	version.Pre = nil
	if version.LT(MinimumVersion) {
		return fmt.Errorf("unsupported Connect version %s, %s or later is required", s.Version, MinimumVersion)
	}
	return nil
}

// StateFailed is reported for a connector or task that stopped on an error
const StateFailed = "FAILED"

type State struct {
	State    string `json:"state"`
	WorkerID string `json:"worker_id"`
	Trace    string `json:"trace,omitempty"`
}

type TaskState struct {
	State
	ID int `json:"id"`
}

type ConnectorStatus struct {
	Name      string      `json:"name"`
	Connector State       `json:"connector"`
	Tasks     []TaskState `json:"tasks"`
	Type      string      `json:"type"`
}

// Failure returns the trace of the failed connector, or of its first failed task
func (s ConnectorStatus) Failure() (string, bool) {
	if s.Connector.State == StateFailed {
		return s.Connector.Trace, true
	}
	for _, task := range s.Tasks {
		if task.State.State == StateFailed {
			return task.Trace, true
		}
	}
	return "", false
}

type ConnectorInfo struct {
	Name   string             `json:"name"`
	Config map[string]*string `json:"config"`
	Type   string             `json:"type"`
}

// Connector is a connector deployed on a Connect cluster
type Connector struct {
	Info   ConnectorInfo   `json:"info"`
	Status ConnectorStatus `json:"status"`
}

type ConfigValue struct {
	Name   string   `json:"name"`
	Value  *string  `json:"value"`
	Errors []string `json:"errors"`
}

type ConfigValidation struct {
	Value ConfigValue `json:"value"`
}

type ValidationResult struct {
	Name       string             `json:"name"`
	ErrorCount int                `json:"error_count"`
	Configs    []ConfigValidation `json:"configs"`
}

// Errors returns one message per invalid config entry
func (v *ValidationResult) Errors() []string {
	var messages []string
	for _, c := range v.Configs {
		for _, e := range c.Value.Errors {
			messages = append(messages, fmt.Sprintf("%s: %s", c.Value.Name, e))
		}
	}
	return messages
}

type apiError struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

//go:generate moq -out client_moq.go . Client
type Client interface {
	ServerInfo(ctx context.Context) (*ServerInfo, error)
	ListConnectors(ctx context.Context) (map[string]Connector, error)
	Validate(ctx context.Context, connectorClass string, config map[string]*string) (*ValidationResult, error)
	Upsert(ctx context.Context, name string, config map[string]*string) error
	Delete(ctx context.Context, name string) error
	Restart(ctx context.Context, name string) error
}

var _ Client = &client{}

type client struct {
	name string
	rest *resty.Client
}

// NewClient returns a client of the Connect cluster reachable at baseURL. Basic authentication is used when username is set.
func NewClient(name string, baseURL string, username string, password string, timeout time.Duration) Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if username != "" {
		rest.SetBasicAuth(username, password)
	}
	return &client{name: name, rest: rest}
}

func (c *client) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	info := &ServerInfo{}
	resp, err := c.rest.R().SetContext(ctx).SetResult(info).SetError(&apiError{}).Get("/")
	if err := c.check(resp, err, "failed to get server info"); err != nil {
		return nil, err
	}
	return info, nil
}

// ListConnectors returns the deployed connectors keyed by name
func (c *client) ListConnectors(ctx context.Context) (map[string]Connector, error) {
	connectors := map[string]Connector{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParamsFromValues(url.Values{"expand": []string{"info", "status"}}).
		SetResult(&connectors).
		SetError(&apiError{}).
		Get("/connectors")
	if err := c.check(resp, err, "failed to list connectors"); err != nil {
		return nil, err
	}
	return connectors, nil
}

func (c *client) Validate(ctx context.Context, connectorClass string, config map[string]*string) (*ValidationResult, error) {
	result := &ValidationResult{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("class", connectorClass).
		SetBody(config).
		SetResult(result).
		SetError(&apiError{}).
		Put("/connector-plugins/{class}/config/validate")
	if err := c.check(resp, err, "failed to validate connector of class %q", connectorClass); err != nil {
		return nil, err
	}
	return result, nil
}

// Upsert creates the connector or replaces its configuration
func (c *client) Upsert(ctx context.Context, name string, config map[string]*string) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetBody(config).
		SetError(&apiError{}).
		Put("/connectors/{name}/config")
	return c.check(resp, err, "failed to deploy connector %q", name)
}

// Delete removes the connector, a connector already gone is not an error
func (c *client) Delete(ctx context.Context, name string) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetError(&apiError{}).
		Delete("/connectors/{name}")
	if err == nil && resp.StatusCode() == http.StatusNotFound {
		return nil
	}
	return c.check(resp, err, "failed to delete connector %q", name)
}

// Restart restarts the connector and its tasks
func (c *client) Restart(ctx context.Context, name string) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetQueryParam("includeTasks", "true").
		SetError(&apiError{}).
		Post("/connectors/{name}/restart")
	return c.check(resp, err, "failed to restart connector %q", name)
}

func (c *client) check(resp *resty.Response, err error, reason string, values ...interface{}) error {
	msg := fmt.Sprintf(reason, values...)
	if err != nil {
		return errors.Connect(err, "%s on Connect cluster %q: %v", msg, c.name, err)
	}
	if resp.IsError() {
		detail := resp.Status()
		if e, ok := resp.Error().(*apiError); ok && e.Message != "" {
			detail = e.Message
		}
		return errors.Connect(nil, "%s on Connect cluster %q: %s", msg, c.name, detail)
	}
	return nil
}
