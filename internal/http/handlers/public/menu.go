package public

import (
	"strconv"

	"github.com/sofreh-next/internal/http/response"
	"github.com/sofreh-next/internal/service"

	"github.com/gin-gonic/gin"
)

var menuItemErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.item_not_found"},
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
}

// GetMenu returns the full menu, or only the popular items when
// isPopular=true.
func (h *Handler) GetMenu(c *gin.Context) {
	if c.Query("isPopular") == "true" {
		items, err := h.MenuService.Popular()
		if err != nil {
			respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
			return
		}
		response.Success(c, items)
		return
	}

	menu, err := h.MenuService.Menu(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
		return
	}
	response.Success(c, menu)
}

// GetMenuItem returns one menu item by id.
func (h *Handler) GetMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	item, err := h.MenuService.ItemByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, menuItemErrorRules, response.CodeInternal, "error.menu_fetch_failed")
		return
	}
	response.Success(c, item)
}

// GetCategories returns the distinct category names on the menu.
func (h *Handler) GetCategories(c *gin.Context) {
	names, err := h.MenuService.CategoryNames(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
		return
	}
	response.Success(c, names)
}

// GetCategoryItems returns the items of one category. Unknown categories
// are a 404; a known but empty category returns an empty list.
func (h *Handler) GetCategoryItems(c *gin.Context) {
	onlyPopular := c.Query("isPopular") == "true"
	items, err := h.MenuService.ItemsByCategory(c.Param("category"), onlyPopular)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.menu_fetch_failed")
		return
	}
	response.Success(c, items)
}

// Search matches the q parameter against names and descriptions in both
// languages. A missing or empty q is a bad request.
func (h *Handler) Search(c *gin.Context) {
	keyword, ok := c.GetQuery("q")
	if !ok || keyword == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	items, err := h.MenuService.Search(keyword)
	if err != nil {
		respondError(c, response.CodeInternal, "error.search_failed", err)
		return
	}
	response.Success(c, items)
}
