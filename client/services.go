package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/helpdesk-go/helpdesk/types"
)

// TeamsService handles team API operations
type TeamsService struct {
	client *Client
}

// List retrieves a list of teams
func (s *TeamsService) List(ctx context.Context, options *types.TeamListOptions) (*types.TeamListResponse, error) {
	query := url.Values{}

	if options != nil {
		if options.Page > 0 {
			query.Set("page", strconv.Itoa(options.Page))
		}
		if options.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(options.PageSize))
		}
		if options.Query != "" {
			query.Set("q", options.Query)
		}
	}

	var result types.TeamListResponse
	err := s.client.Get(ctx, "teams", query, &result)
	return &result, err
}

// Update updates an existing team
func (s *TeamsService) Update(ctx context.Context, id string, request *types.TeamUpdateRequest) (*types.Team, error) {
	path := fmt.Sprintf("teams/%s", url.PathEscape(id))

	var result types.Team
	err := s.client.Patch(ctx, path, request, &result)
	return &result, err
}

// UsersService handles user API operations
type UsersService struct {
	client *Client
}

// List retrieves a list of users
func (s *UsersService) List(ctx context.Context, options *types.UserListOptions) (*types.UserListResponse, error) {
	query := url.Values{}

	if options != nil {
		if options.Page > 0 {
			query.Set("page", strconv.Itoa(options.Page))
		}
		if options.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(options.PageSize))
		}
		if options.Role != "" {
			query.Set("role", options.Role)
		}
		if options.Query != "" {
			query.Set("q", options.Query)
		}
	}

	var result types.UserListResponse
	err := s.client.Get(ctx, "users", query, &result)
	return &result, err
}

// TagsService handles tag API operations
type TagsService struct {
	client *Client
}

// List retrieves a list of tags
func (s *TagsService) List(ctx context.Context, options *types.TagListOptions) (*types.TagListResponse, error) {
	query := url.Values{}

	if options != nil {
		if options.Page > 0 {
			query.Set("page", strconv.Itoa(options.Page))
		}
		if options.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(options.PageSize))
		}
		if options.Query != "" {
			query.Set("q", options.Query)
		}
	}

	var result types.TagListResponse
	err := s.client.Get(ctx, "tags", query, &result)
	return &result, err
}

// RequestTypesService handles request type API operations
type RequestTypesService struct {
	client *Client
}

// List retrieves the request types configured on the account
func (s *RequestTypesService) List(ctx context.Context, options *types.RequestTypeListOptions) (*types.RequestTypeListResponse, error) {
	query := url.Values{}

	if options != nil {
		if options.Page > 0 {
			query.Set("page", strconv.Itoa(options.Page))
		}
		if options.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(options.PageSize))
		}
		if options.Query != "" {
			query.Set("q", options.Query)
		}
	}

	var result types.RequestTypeListResponse
	err := s.client.Get(ctx, "request_types", query, &result)
	return &result, err
}
