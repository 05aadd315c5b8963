package service

import (
	"strings"

	"logidocs/internal/repository"
)

const (
	defaultPageLimit = 5
	maxPageLimit     = 100
)

// PageParams is the page/limit pair accepted by list use cases. Zero values
// select page 1 and the default limit.
type PageParams struct {
	Page  int
	Limit int
}

func (p PageParams) resolve() (page int, q repository.PageQuery, err error) {
	page, limit := p.Page, p.Limit
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	if page < 1 {
		return 0, q, validationf("page must be 1 or greater")
	}
	if limit < 1 || limit > maxPageLimit {
		return 0, q, validationf("limit must be between 1 and %d", maxPageLimit)
	}
	return page, repository.PageQuery{Limit: limit, Offset: (page - 1) * limit}, nil
}

func totalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func parseSortOrder(s string, def repository.SortOrder) (repository.SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "asc":
		return repository.SortAsc, nil
	case "desc":
		return repository.SortDesc, nil
	default:
		return "", validationf("sortOrder must be asc or desc")
	}
}

func parseSortBy(s, def string, allowed ...string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", validationf("sortBy must be one of %s", strings.Join(allowed, ", "))
}
