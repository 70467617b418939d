package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/helpdesk-go/helpdesk/types"
)

// RequestsService handles request (ticket) API operations
type RequestsService struct {
	client *Client
}

// List retrieves a list of requests
func (s *RequestsService) List(ctx context.Context, options *types.RequestListOptions) (*types.RequestListResponse, error) {
	query := url.Values{}

	if options != nil {
		if options.Page > 0 {
			query.Set("page", strconv.Itoa(options.Page))
		}
		if options.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(options.PageSize))
		}
		if len(options.Status) > 0 {
			query.Set("status", strings.Join(options.Status, ","))
		}
		if len(options.Priority) > 0 {
			query.Set("priority", strings.Join(options.Priority, ","))
		}
		if options.TeamID != "" {
			query.Set("team_id", options.TeamID)
		}
		if options.AssignedTo != "" {
			query.Set("assigned_to", options.AssignedTo)
		}
		if options.Query != "" {
			query.Set("q", options.Query)
		}
		if len(options.Tags) > 0 {
			query.Set("tags", strings.Join(options.Tags, ","))
		}
		if options.SortBy != "" {
			query.Set("sort_by", options.SortBy)
		}
		if options.SortOrder != "" {
			query.Set("sort_order", options.SortOrder)
		}
	}

	var result types.RequestListResponse
	err := s.client.Get(ctx, "requests", query, &result)
	return &result, err
}

// Get retrieves a specific request by ID
func (s *RequestsService) Get(ctx context.Context, id string) (*types.Request, error) {
	path := fmt.Sprintf("requests/%s", url.PathEscape(id))

	var result types.Request
	err := s.client.Get(ctx, path, nil, &result)
	return &result, err
}

// Create creates a new request
func (s *RequestsService) Create(ctx context.Context, request *types.RequestCreateRequest) (*types.Request, error) {
	var result types.Request
	err := s.client.Post(ctx, "requests", request, &result)
	return &result, err
}

// Update updates an existing request
func (s *RequestsService) Update(ctx context.Context, id string, request *types.RequestUpdateRequest) (*types.Request, error) {
	path := fmt.Sprintf("requests/%s", url.PathEscape(id))

	var result types.Request
	err := s.client.Patch(ctx, path, request, &result)
	return &result, err
}

// Delete deletes a request
func (s *RequestsService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("requests/%s", url.PathEscape(id))
	return s.client.Delete(ctx, path, nil)
}

// PostMessage adds a message to a request thread
func (s *RequestsService) PostMessage(ctx context.Context, id string, message *types.MessageCreateRequest) (*types.Message, error) {
	path := fmt.Sprintf("requests/%s/messages", url.PathEscape(id))

	var result types.Message
	err := s.client.Post(ctx, path, message, &result)
	return &result, err
}

// AddTags attaches tags to a request
func (s *RequestsService) AddTags(ctx context.Context, id string, tags []string) (*types.Request, error) {
	path := fmt.Sprintf("requests/%s/tags", url.PathEscape(id))

	var result types.Request
	err := s.client.Patch(ctx, path, &types.TagsUpdateRequest{Tags: tags}, &result)
	return &result, err
}

// RemoveTag detaches a single tag from a request
func (s *RequestsService) RemoveTag(ctx context.Context, id, tagID string) error {
	path := fmt.Sprintf("requests/%s/tags/%s", url.PathEscape(id), url.PathEscape(tagID))
	return s.client.Delete(ctx, path, nil)
}
