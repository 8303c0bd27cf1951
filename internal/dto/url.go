package dto

import (
	"shortener-go/internal/model"
	"shortener-go/response"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// CreateUrlRequest is the body of POST /urls and one item of POST /urls/batch.
type CreateUrlRequest struct {
	FullURL string `json:"full_url" binding:"required,url,max=512" msg:"error.full_url_invalid"`
}

// StatusQuery holds the query of GET /urls/:id/status. Offset overrides Skip when present.
type StatusQuery struct {
	FullInfo bool `form:"full_info"`
	Skip     *int `form:"skip" binding:"omitempty,min=0" msg:"error.invalid_pagination"`
	Offset   *int `form:"offset" binding:"omitempty,min=0" msg:"error.invalid_pagination"`
	Limit    *int `form:"limit" binding:"omitempty,min=1,max=100" msg:"error.invalid_pagination"`
}

// Page resolves the effective skip and limit.
func (q *StatusQuery) Page() (skip, limit int) {
	limit = DefaultLimit
	if q.Limit != nil {
		limit = *q.Limit
	}
	if q.Skip != nil {
		skip = *q.Skip
	}
	if q.Offset != nil {
		skip = *q.Offset
	}
	return skip, limit
}

// UrlStatusResponse is returned by the status endpoint when full_info is set.
type UrlStatusResponse struct {
	Url     *model.Url                          `json:"url"`
	History *response.PageResponse[model.Click] `json:"history"`
}
