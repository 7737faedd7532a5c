package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

func Test_ParsePageRequest(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		size    string
		sort    []string
		want    pagination.PageRequest
		wantErr bool
	}{
		{
			name: "defaults_when_everything_absent",
			want: pagination.PageRequest{Page: 0, Size: 10},
		},
		{
			name: "explicit_page_and_size",
			page: "3",
			size: "25",
			want: pagination.PageRequest{Page: 3, Size: 25},
		},
		{
			name: "size_capped_at_maximum",
			size: "5000",
			want: pagination.PageRequest{Page: 0, Size: 100},
		},
		{
			name: "sort_field_with_direction",
			sort: []string{"last_name,desc", "id,asc"},
			want: pagination.PageRequest{Page: 0, Size: 10, Sort: []pagination.SortKey{
				{Field: "last_name", Desc: true},
				{Field: "id"},
			}},
		},
		{
			name: "bare_sort_field_is_ascending",
			sort: []string{"email"},
			want: pagination.PageRequest{Page: 0, Size: 10, Sort: []pagination.SortKey{{Field: "email"}}},
		},
		{
			name:    "negative_page_rejected",
			page:    "-1",
			wantErr: true,
		},
		{
			name:    "zero_size_rejected",
			size:    "0",
			wantErr: true,
		},
		{
			name:    "garbage_page_rejected",
			page:    "abc",
			wantErr: true,
		},
		{
			name:    "bad_sort_direction_rejected",
			sort:    []string{"id,sideways"},
			wantErr: true,
		},
		{
			name:    "empty_sort_field_rejected",
			sort:    []string{",desc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pagination.ParsePageRequest(tt.page, tt.size, tt.sort)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ParsePageRequest_DefaultSortApplies(t *testing.T) {
	def := pagination.SortKey{Field: "created_date"}

	got, err := pagination.ParsePageRequest("", "", nil, def)
	require.NoError(t, err)
	assert.Equal(t, []pagination.SortKey{def}, got.Sort)

	got, err = pagination.ParsePageRequest("", "", []string{"status,desc"}, def)
	require.NoError(t, err)
	assert.Equal(t, []pagination.SortKey{{Field: "status", Desc: true}}, got.Sort)
}

func Test_PageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.PageRequest{Page: 0, Size: 10}.Offset())
	assert.Equal(t, 40, pagination.PageRequest{Page: 2, Size: 20}.Offset())
}

func Test_NewPageResponse(t *testing.T) {
	tests := []struct {
		name       string
		items      []string
		number     int
		size       int
		total      int64
		totalPages int
		first      bool
		last       bool
	}{
		{
			name:       "empty_result_is_first_and_last",
			items:      nil,
			number:     0,
			size:       10,
			total:      0,
			totalPages: 0,
			first:      true,
			last:       true,
		},
		{
			name:       "single_full_page",
			items:      []string{"a", "b"},
			number:     0,
			size:       2,
			total:      2,
			totalPages: 1,
			first:      true,
			last:       true,
		},
		{
			name:       "middle_page",
			items:      []string{"c", "d"},
			number:     1,
			size:       2,
			total:      6,
			totalPages: 3,
			first:      false,
			last:       false,
		},
		{
			name:       "partial_final_page_rounds_up",
			items:      []string{"e"},
			number:     2,
			size:       2,
			total:      5,
			totalPages: 3,
			first:      false,
			last:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := pagination.NewPageResponse(tt.items, tt.number, tt.size, tt.total)
			assert.NotNil(t, resp.Content)
			assert.Equal(t, tt.number, resp.PageNumber)
			assert.Equal(t, tt.size, resp.PageSize)
			assert.Equal(t, tt.total, resp.TotalElements)
			assert.Equal(t, tt.totalPages, resp.TotalPages)
			assert.Equal(t, tt.first, resp.First)
			assert.Equal(t, tt.last, resp.Last)
		})
	}
}

func Test_MapPage(t *testing.T) {
	p := pagination.Page[int]{Items: []int{1, 2, 3}, Number: 1, Size: 3, Total: 9}
	mapped := pagination.MapPage(p, func(i int) int { return i * 10 })
	assert.Equal(t, []int{10, 20, 30}, mapped.Items)
	assert.Equal(t, p.Number, mapped.Number)
	assert.Equal(t, p.Size, mapped.Size)
	assert.Equal(t, p.Total, mapped.Total)
}
