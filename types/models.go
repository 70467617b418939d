package types

import (
	"time"
)

// Request represents a helpdesk request (ticket)
type Request struct {
	ID           string                 `json:"id"`
	Subject      string                 `json:"subject"`
	Status       string                 `json:"status"`
	Priority     string                 `json:"priority,omitempty"`
	TypeID       string                 `json:"type_id,omitempty"`
	Requester    *Requester             `json:"requester,omitempty"`
	Assignment   *Assignment            `json:"assignment,omitempty"`
	Tags         []Tag                  `json:"tags,omitempty"`
	Messages     []Message              `json:"messages,omitempty"`
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	ClosedAt     *time.Time             `json:"closed_at,omitempty"`
}

// Requester identifies the person a request was opened for
type Requester struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Assignment describes which team and agent own a request
type Assignment struct {
	TeamID  string `json:"team_id,omitempty"`
	AgentID string `json:"agent_id,omitempty"`
}

// Message represents a message on a request thread
type Message struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	Text        string    `json:"text"`
	Private     bool      `json:"private"`
	AuthorEmail string    `json:"author_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Team represents an agent team
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MemberIDs   []string  `json:"member_ids,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// User represents an agent or requester account
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Role      string    `json:"role,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tag represents a label that can be attached to requests
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// RequestType represents a request category configured on the account
type RequestType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RequestListOptions represents query parameters for listing requests
type RequestListOptions struct {
	Page       int
	PageSize   int
	Status     []string
	Priority   []string
	TeamID     string
	AssignedTo string
	Query      string
	Tags       []string
	SortBy     string
	SortOrder  string
}

// TeamListOptions represents query parameters for listing teams
type TeamListOptions struct {
	Page     int
	PageSize int
	Query    string
}

// UserListOptions represents query parameters for listing users
type UserListOptions struct {
	Page     int
	PageSize int
	Role     string
	Query    string
}

// TagListOptions represents query parameters for listing tags
type TagListOptions struct {
	Page     int
	PageSize int
	Query    string
}

// RequestTypeListOptions represents query parameters for listing request types
type RequestTypeListOptions struct {
	Page     int
	PageSize int
	Query    string
}

// RequestListResponse represents a paginated list of requests
type RequestListResponse struct {
	Requests   []Request `json:"requests"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams      []Team `json:"teams"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []User `json:"users"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

// TagListResponse represents a paginated list of tags
type TagListResponse struct {
	Tags       []Tag `json:"tags"`
	TotalCount int   `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

// RequestTypeListResponse represents a list of request types
type RequestTypeListResponse struct {
	RequestTypes []RequestType `json:"request_types"`
	TotalCount   int           `json:"total_count"`
}

// RequestCreateRequest represents a request creation payload
type RequestCreateRequest struct {
	Subject      string                 `json:"subject"`
	Text         string                 `json:"text"`
	Requester    Requester              `json:"requester"`
	TeamID       string                 `json:"team_id,omitempty"`
	TypeID       string                 `json:"type_id,omitempty"`
	Priority     string                 `json:"priority,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
}

// RequestUpdateRequest represents a request update payload
type RequestUpdateRequest struct {
	Subject    *string     `json:"subject,omitempty"`
	Status     *string     `json:"status,omitempty"`
	Priority   *string     `json:"priority,omitempty"`
	TypeID     *string     `json:"type_id,omitempty"`
	Assignment *Assignment `json:"assignment,omitempty"`
}

// TeamUpdateRequest represents a team update payload
type TeamUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	MemberIDs   []string `json:"member_ids,omitempty"`
}

// MessageCreateRequest represents a message creation payload
type MessageCreateRequest struct {
	Text        string `json:"text"`
	Private     bool   `json:"private,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
}

// TagsUpdateRequest represents the payload for attaching tags to a request
type TagsUpdateRequest struct {
	Tags []string `json:"tags"`
}

// ErrorResponse represents an API error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
