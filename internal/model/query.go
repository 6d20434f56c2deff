package model

// Page is one page of a paginated list response.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

// EntryQuery parameterizes entry list fetches.
type EntryQuery struct {
	Type      EntryType
	YearMonth string // YYYY-MM, empty for all periods
	Sort      []string
	Page      int
	Size      int
}

// EntryQueryPatch is a partial entry query. Nil fields are left untouched
// when the patch is applied, so callers can change a single parameter
// without discarding the rest of the query.
type EntryQueryPatch struct {
	YearMonth *string
	Sort      *[]string
	Page      *int
	Size      *int
}

// Apply merges the patch into the query. The entry type is fixed and can
// never be patched.
func (q *EntryQuery) Apply(p EntryQueryPatch) {
	if p.YearMonth != nil {
		q.YearMonth = *p.YearMonth
	}
	if p.Sort != nil {
		q.Sort = *p.Sort
	}
	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.Size != nil {
		q.Size = *p.Size
	}
}

// PaymentQuery parameterizes payment list fetches.
type PaymentQuery struct {
	Sort []string
	Page int
	Size int
}
