package utils

import (
	"healthsync-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

func BuildQueryParamsRequest(r *http.Request) *requests.QueryParams {
	query := r.URL.Query()
	return &requests.QueryParams{
		Filter:    query.Get("filter"),
		Search:    query.Get("search"),
		Date:      query.Get("date"),
		DoctorID:  query.Get("doctor_id"),
		PatientID: query.Get("patient_id"),
	}
}

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// PageBounds converts a pagination request into slice bounds over a list of
// the given length. A page past the end yields an empty range.
func PageBounds(pagination *requests.Pagination, length int) (start, end int) {
	start = (pagination.Page - 1) * pagination.PageSize
	if start >= length {
		return length, length
	}
	end = start + pagination.PageSize
	if end > length {
		end = length
	}
	return start, end
}
