package employee

// Page is one visible window of a filtered collection plus the metadata
// the pagination controls render.
type Page struct {
	Items      []Employee `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPages int        `json:"total_pages"`
	StartIndex int        `json:"start_index"`
	EndIndex   int        `json:"end_index"`
}

// Paginate windows items to the given 1-based page. It is a pure
// slicing function: it does not clamp pageNumber, so an out-of-range
// page legally yields an empty slice. Re-clamping the page when the
// underlying filtered set shrinks is the caller's job (see ClampPage).
func Paginate(items []Employee, pageNumber, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (pageNumber - 1) * pageSize
	if start < 0 || start >= total {
		return Page{
			Items:      []Employee{},
			TotalItems: total,
			TotalPages: totalPages,
			StartIndex: start,
			EndIndex:   start,
		}
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      items[start:end],
		TotalItems: total,
		TotalPages: totalPages,
		StartIndex: start,
		EndIndex:   end,
	}
}

// ClampPage pulls a page number back into [1, totalPages]. Callers use
// it whenever filter criteria or the page size change, so the window
// never points past the end of a shrunk result set.
func ClampPage(pageNumber, totalPages int) int {
	if pageNumber < 1 {
		return 1
	}
	if totalPages >= 1 && pageNumber > totalPages {
		return totalPages
	}
	return pageNumber
}
