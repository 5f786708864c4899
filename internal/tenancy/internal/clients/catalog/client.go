package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

const (
	topicEntityType = "kafka_topic"
	pageSize        = 500
)

// TopicMetadata is the catalog view of a topic
type TopicMetadata struct {
	Name        string
	Description string
	Tags        []string
}

type tagDef struct {
	Name string `json:"name"`
}

type tagAssignment struct {
	TypeName   string `json:"typeName"`
	EntityName string `json:"entityName"`
	EntityType string `json:"entityType"`
}

type entityAttributes struct {
	QualifiedName string `json:"qualifiedName"`
	Name          string `json:"name,omitempty"`
	Description   string `json:"description"`
}

type entity struct {
	TypeName            string           `json:"typeName"`
	Attributes          entityAttributes `json:"attributes"`
	ClassificationNames []string         `json:"classificationNames,omitempty"`
}

type searchResult struct {
	Entities []entity `json:"entities"`
}

type entityUpdate struct {
	Entity entity `json:"entity"`
}

type apiError struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

//go:generate moq -out client_moq.go . Client
type Client interface {
	ListTagDefs(ctx context.Context) ([]string, error)
	CreateTagDefs(ctx context.Context, tags []string) error
	TagTopic(ctx context.Context, topic string, tags []string) error
	UntagTopic(ctx context.Context, topic string, tag string) error
	ListTopics(ctx context.Context) ([]TopicMetadata, error)
	SetTopicDescription(ctx context.Context, topic string, description string) error
}

var _ Client = &client{}

type client struct {
	clusterID string
	rest      *resty.Client
}

func NewClient(settings config.CatalogConfig, timeout time.Duration) Client {
	rest := resty.New().
		SetBaseURL(settings.URL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if settings.APIKey != "" {
		rest.SetBasicAuth(settings.APIKey, settings.APISecret)
	}
	return &client{clusterID: settings.KafkaClusterID, rest: rest}
}

func (c *client) entityName(topic string) string {
	return c.clusterID + ":" + topic
}

func (c *client) ListTagDefs(ctx context.Context) ([]string, error) {
	var defs []tagDef
	resp, err := c.rest.R().SetContext(ctx).SetResult(&defs).SetError(&apiError{}).Get("/catalog/v1/types/tagdefs")
	if err := check(resp, err, "failed to list tag definitions"); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}
	return names, nil
}

func (c *client) CreateTagDefs(ctx context.Context, tags []string) error {
	defs := make([]tagDef, 0, len(tags))
	for _, t := range tags {
		defs = append(defs, tagDef{Name: t})
	}
	resp, err := c.rest.R().SetContext(ctx).SetBody(defs).SetError(&apiError{}).Post("/catalog/v1/types/tagdefs")
	return check(resp, err, "failed to create tag definitions %v", tags)
}

func (c *client) TagTopic(ctx context.Context, topic string, tags []string) error {
	assignments := make([]tagAssignment, 0, len(tags))
	for _, t := range tags {
		assignments = append(assignments, tagAssignment{
			TypeName:   t,
			EntityName: c.entityName(topic),
			EntityType: topicEntityType,
		})
	}
	resp, err := c.rest.R().SetContext(ctx).SetBody(assignments).SetError(&apiError{}).Post("/catalog/v1/entity/tags")
	return check(resp, err, "failed to tag topic %q", topic)
}

func (c *client) UntagTopic(ctx context.Context, topic string, tag string) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"type": topicEntityType,
			"name": c.entityName(topic),
			"tag":  tag,
		}).
		SetError(&apiError{}).
		Delete("/catalog/v1/entity/type/{type}/name/{name}/tags/{tag}")
	return check(resp, err, "failed to remove tag %q from topic %q", tag, topic)
}

// ListTopics walks every page of the topic search
func (c *client) ListTopics(ctx context.Context) ([]TopicMetadata, error) {
	var topics []TopicMetadata
	for offset := 0; ; offset += pageSize {
		page := &searchResult{}
		resp, err := c.rest.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"type":   topicEntityType,
				"limit":  strconv.Itoa(pageSize),
				"offset": strconv.Itoa(offset),
			}).
			SetResult(page).
			SetError(&apiError{}).
			Get("/catalog/v1/search/basic")
		if err := check(resp, err, "failed to list topics"); err != nil {
			return nil, err
		}
		for _, e := range page.Entities {
			topics = append(topics, TopicMetadata{
				Name:        e.Attributes.Name,
				Description: e.Attributes.Description,
				Tags:        e.ClassificationNames,
			})
		}
		if len(page.Entities) < pageSize {
			return topics, nil
		}
	}
}

func (c *client) SetTopicDescription(ctx context.Context, topic string, description string) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(entityUpdate{Entity: entity{
			TypeName: topicEntityType,
			Attributes: entityAttributes{
				QualifiedName: c.entityName(topic),
				Description:   description,
			},
		}}).
		SetError(&apiError{}).
		Put("/catalog/v1/entity")
	return check(resp, err, "failed to set description of topic %q", topic)
}

func check(resp *resty.Response, err error, reason string, values ...interface{}) error {
	msg := fmt.Sprintf(reason, values...)
	if err != nil {
		return errors.Catalog(err, "%s: %v", msg, err)
	}
	if resp.IsError() {
		detail := resp.Status()
		if e, ok := resp.Error().(*apiError); ok && e.Message != "" {
			detail = e.Message
		}
		return errors.Catalog(nil, "%s: %s", msg, detail)
	}
	return nil
}
