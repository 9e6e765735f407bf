package server

import (
	"github.com/amaranand360/enterprise-search/internal/index"
	"github.com/amaranand360/enterprise-search/internal/query"
)

type AuthSignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type searchResponse struct {
	Parsed      query.ParsedQuery `json:"parsed"`
	Results     []index.Hit       `json:"results"`
	Explanation string            `json:"explanation"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type ingestRequest struct {
	Tool        string `json:"tool"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	ContentType string `json:"content_type"`
	HTML        string `json:"html"`
}
