package sitemeta

// PageCount returns the number of listing pages needed for total items.
// An empty listing still has one page.
func (s *Site) PageCount(total int) int {
	size := s.meta.PaginationSize
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// PageBounds returns the half-open range [start, end) of items shown on the
// 1-based page. ok is false when page is outside 1..PageCount(total).
func (s *Site) PageBounds(page, total int) (start, end int, ok bool) {
	if page < 1 || page > s.PageCount(total) {
		return 0, 0, false
	}
	if total < 0 {
		total = 0
	}
	start = (page - 1) * s.meta.PaginationSize
	end = min(start+s.meta.PaginationSize, total)
	return start, end, true
}
