package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/response"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// not-found -> 404, relationship conflict -> 409, constraint/validation
// -> 400, anything else -> 500 without leaking the raw error.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var nf *application.NotFoundError
	var conflict *application.ConflictError
	var constraint *application.ConstraintError
	switch {
	case errors.As(err, &nf):
		response.Error[any](c, http.StatusNotFound, nf.Error(), nil)
	case errors.As(err, &conflict):
		response.Error[any](c, http.StatusConflict, conflict.Error(), nil)
	case errors.As(err, &constraint):
		response.Error[any](c, http.StatusBadRequest, "constraint violation", map[string]string{constraint.Field: constraint.Reason})
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// pathID parses a positive int64 path parameter, writing a 400 itself
// when the value is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.Error[any](c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// queryPtr returns the query value as a pointer, nil when absent or
// empty, matching the "absent filter contributes nothing" contract.
func queryPtr(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok && v != "" {
		return &v
	}
	return nil
}

func parseInt64(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// parseDateTime accepts RFC 3339 timestamps and bare dates, which are
// read as midnight UTC.
func parseDateTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// pageRequest assembles the page/size/sort query triple, writing a 400
// itself on malformed input.
func pageRequest(c *gin.Context, defaultSort ...pagination.SortKey) (pagination.PageRequest, bool) {
	req, err := pagination.ParsePageRequest(c.Query("page"), c.Query("size"), c.QueryArray("sort"), defaultSort...)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		return pagination.PageRequest{}, false
	}
	return req, true
}
