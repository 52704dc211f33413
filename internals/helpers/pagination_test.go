package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOn(t *testing.T, target string, opt PaginationOptions) PaginationParams {
	t.Helper()
	app := fiber.New()
	var got PaginationParams
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c, opt)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParsePaginationDefaults(t *testing.T) {
	p := parseOn(t, "/", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.False(t, p.All)
}

func TestParsePaginationCapsPerPage(t *testing.T) {
	p := parseOn(t, "/?page=3&per_page=9999", DefaultOpts)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 200, p.PerPage)
}

func TestParsePaginationIgnoresGarbage(t *testing.T) {
	p := parseOn(t, "/?page=abc&per_page=-5", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
}

func TestParsePaginationAllForExports(t *testing.T) {
	p := parseOn(t, "/?per_page=all", ExportOpts)
	assert.True(t, p.All)
	assert.Equal(t, 10_000, p.PerPage)

	// "all" is only honored where the preset allows it
	p = parseOn(t, "/?per_page=all", DefaultOpts)
	assert.False(t, p.All)
	assert.Equal(t, 25, p.PerPage)
}

func TestSliceWindows(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Slice(items, PaginationParams{Page: 1, PerPage: 2}))
	assert.Equal(t, []int{3, 4}, Slice(items, PaginationParams{Page: 2, PerPage: 2}))
	assert.Equal(t, []int{5}, Slice(items, PaginationParams{Page: 3, PerPage: 2}))
	assert.Empty(t, Slice(items, PaginationParams{Page: 4, PerPage: 2}))
}

func TestMetaTotals(t *testing.T) {
	m := Meta(PaginationParams{Page: 2, PerPage: 10}, 25)
	assert.Equal(t, 2, m["page"])
	assert.Equal(t, 10, m["per_page"])
	assert.Equal(t, 25, m["total"])
}
