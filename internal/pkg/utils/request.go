package utils

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/requests"
	"uesvalle-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// BuildListQuery reads search, page and page_size from the URL and validates them.
func BuildListQuery(r *http.Request) (*requests.ListQuery, error) {
	query := r.URL.Query()
	request := &requests.ListQuery{
		Search:   strings.TrimSpace(query.Get(constvars.URLQueryParamSearch)),
		Page:     constvars.DefaultPage,
		PageSize: constvars.DefaultPageSize,
	}

	if raw := query.Get(constvars.URLQueryParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLQueryParamPage)
		}
		request.Page = page
	}

	if raw := query.Get(constvars.URLQueryParamPageSize); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLQueryParamPageSize)
		}
		request.PageSize = pageSize
	}

	if err := ValidateStruct(request); err != nil {
		return nil, exceptions.ErrQueryParamValidation(err)
	}
	return request, nil
}

// ParseURLParamID reads the {id} path segment as a positive integer key.
func ParseURLParamID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constvars.URLParamID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	if id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID)
	}
	return id, nil
}

// ParseBoolQueryParam treats a missing or unparsable value as false.
func ParseBoolQueryParam(r *http.Request, key string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && value
}

// BuildEntityForm decodes a JSON object of column values.
func BuildEntityForm(r *http.Request) (requests.EntityForm, error) {
	form := requests.EntityForm{}
	if r.Body == nil || r.ContentLength == 0 {
		return form, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, exceptions.ErrRequestBodyTooLarge(err, maxBytesErr.Limit)
		}
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&form); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return form, nil
}
