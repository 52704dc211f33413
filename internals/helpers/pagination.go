// 📁 internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PaginationOptions struct {
	DefaultPerPage int
	MaxPerPage     int
	AllowAll       bool // allow per_page=all
	AllHardCap     int  // cap when all
}

// ===== Presets =====
var (
	DefaultOpts = PaginationOptions{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = PaginationOptions{DefaultPerPage: 50, MaxPerPage: 500}
	ExportOpts  = PaginationOptions{DefaultPerPage: 100, MaxPerPage: 1000, AllowAll: true, AllHardCap: 10_000}
)

type PaginationParams struct {
	Page    int
	PerPage int
	All     bool
}

func ParsePagination(c *fiber.Ctx, opt PaginationOptions) PaginationParams {
	p := PaginationParams{Page: DefaultPage, PerPage: opt.DefaultPerPage}

	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}

	raw := strings.TrimSpace(c.Query("per_page"))
	if opt.AllowAll && strings.EqualFold(raw, "all") {
		p.All = true
		p.PerPage = opt.AllHardCap
		return p
	}
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.PerPage = n
		}
	}
	if p.PerPage > opt.MaxPerPage {
		p.PerPage = opt.MaxPerPage
	}
	return p
}

// Slice applies the params to an already-ordered in-memory snapshot. The
// collection layer always delivers whole collections; paging happens here,
// after any sector filtering.
func Slice[T any](items []T, p PaginationParams) []T {
	if p.All {
		if len(items) > p.PerPage {
			return items[:p.PerPage]
		}
		return items
	}
	start := (p.Page - 1) * p.PerPage
	if start >= len(items) {
		return []T{}
	}
	end := start + p.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Meta is the envelope block describing one delivered page.
func Meta(p PaginationParams, total int) fiber.Map {
	return fiber.Map{
		"page":     p.Page,
		"per_page": p.PerPage,
		"total":    total,
	}
}
