package trivia

// DefaultPageSize matches the listing contract: ten questions per page.
const DefaultPageSize = 10

// Paginate returns the 1-indexed page of size pageSize from items, preserving
// input order. A page past the end yields an empty slice; callers decide
// whether that is a not-found condition.
func Paginate(items []Question, page, pageSize int) []Question {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
