package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultPage = 0
	defaultSize = 10
	maxSize     = 100
)

// SortKey is one (field, direction) pair of a page request.
type SortKey struct {
	Field string
	Desc  bool
}

// PageRequest describes the slice of a collection a caller wants:
// zero-based page number, page size and an ordered list of sort keys.
type PageRequest struct {
	Page int
	Size int
	Sort []SortKey
}

// ParsePageRequest assembles a PageRequest from raw query values.
// Sort params use the "field,asc|desc" form (a bare "field" sorts
// ascending). When no sort param is given the caller-supplied default
// sort applies.
func ParsePageRequest(pageStr, sizeStr string, sortParams []string, defaultSort ...SortKey) (PageRequest, error) {
	req := PageRequest{Page: defaultPage, Size: defaultSize}

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 0 {
			return PageRequest{}, fmt.Errorf("invalid page number: %q", pageStr)
		}
		req.Page = p
	}
	if sizeStr != "" {
		s, err := strconv.Atoi(sizeStr)
		if err != nil || s < 1 {
			return PageRequest{}, fmt.Errorf("invalid page size: %q", sizeStr)
		}
		if s > maxSize {
			s = maxSize
		}
		req.Size = s
	}

	for _, raw := range sortParams {
		key, err := parseSortKey(raw)
		if err != nil {
			return PageRequest{}, err
		}
		req.Sort = append(req.Sort, key)
	}
	if len(req.Sort) == 0 {
		req.Sort = defaultSort
	}
	return req, nil
}

func parseSortKey(raw string) (SortKey, error) {
	parts := strings.Split(raw, ",")
	field := strings.TrimSpace(parts[0])
	if field == "" {
		return SortKey{}, fmt.Errorf("invalid sort parameter: %q", raw)
	}
	if len(parts) == 1 {
		return SortKey{Field: field}, nil
	}
	switch dir := strings.ToLower(strings.TrimSpace(parts[1])); dir {
	case "asc", "":
		return SortKey{Field: field}, nil
	case "desc":
		return SortKey{Field: field, Desc: true}, nil
	default:
		return SortKey{}, fmt.Errorf("invalid sort direction: %q", raw)
	}
}

// Offset returns the row offset of the requested page.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is a raw paged query result as returned by repositories:
// the items of the current page plus the total match count.
type Page[T any] struct {
	Items  []T
	Number int
	Size   int
	Total  int64
}

// MapPage converts the items of a page, keeping the paging numbers.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[U]{Items: items, Number: p.Number, Size: p.Size, Total: p.Total}
}

// PageResponse is the uniform envelope every list endpoint returns.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// NewPageResponse wraps a raw page result into the envelope.
// TotalPages is ceil(total/size), 0 for an empty result; an empty
// result is both first and last.
func NewPageResponse[T any](items []T, number, size int, total int64) PageResponse[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if total > 0 && size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return PageResponse[T]{
		Content:       items,
		PageNumber:    number,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         number == 0,
		Last:          total == 0 || number == totalPages-1,
	}
}

// FromPage is shorthand for wrapping a repository page directly.
func FromPage[T any](p Page[T]) PageResponse[T] {
	return NewPageResponse(p.Items, p.Number, p.Size, p.Total)
}
