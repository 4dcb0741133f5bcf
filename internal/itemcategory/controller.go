package itemcategory

import (
	"errors"
	"net/http"
	"strconv"
	"tinylunches/internal/web"

	"github.com/gin-gonic/gin"
)

const recordKey = "itemCategoryRecord"

type ItemCategoryController struct {
	service ItemCategoryServiceInterface
}

func NewItemCategoryController(service ItemCategoryServiceInterface) *ItemCategoryController {
	return &ItemCategoryController{service: service}
}

// SetupRoutes mounts the join-table routes. Single entries live under
// /id/:id; the remaining lookups filter by one foreign key each.
func (a *ItemCategoryController) SetupRoutes(r *gin.Engine) {
	entries := r.Group("/api/itemtocategory")
	{
		entries.GET("", a.List)
		entries.POST("", a.Create)
		entries.GET("/user_id/:user_id", a.ListByUser)
		entries.GET("/item_id/:item_id", a.ListByItem)
		entries.GET("/category_id/:category_id", a.ListByCategory)
	}

	record := entries.Group("/id/:id", a.load)
	{
		record.GET("", a.Get)
		record.PATCH("", a.Patch)
		record.DELETE("", a.Delete)
	}
}

func (a *ItemCategoryController) List(c *gin.Context) {
	entries, err := a.service.GetAll()
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if entries == nil {
		entries = []*ItemCategory{}
	}
	c.JSON(http.StatusOK, entries)
}

func (a *ItemCategoryController) Create(c *gin.Context) {
	var req struct {
		ItemID     *int `json:"item_id"`
		CategoryID *int `json:"category_id"`
		UserID     *int `json:"user_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ItemID == nil {
		web.MissingField(c, "item_id")
		return
	}
	if req.CategoryID == nil {
		web.MissingField(c, "category_id")
		return
	}
	if req.UserID == nil {
		web.MissingField(c, "user_id")
		return
	}

	entry := &ItemCategory{
		ItemID:     *req.ItemID,
		CategoryID: *req.CategoryID,
		UserID:     *req.UserID,
	}
	if err := a.service.Create(entry); err != nil {
		web.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (a *ItemCategoryController) load(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		web.Error(c, http.StatusBadRequest, "Invalid entry ID")
		c.Abort()
		return
	}

	entry, err := a.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "Item to Category entry doesn't exist")
		} else {
			web.ServerError(c, err)
		}
		c.Abort()
		return
	}

	c.Set(recordKey, entry)
	c.Next()
}

func (a *ItemCategoryController) Get(c *gin.Context) {
	entry := c.MustGet(recordKey).(*ItemCategory)
	c.JSON(http.StatusOK, entry)
}

func (a *ItemCategoryController) Patch(c *gin.Context) {
	var req Update
	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ItemID == nil && req.CategoryID == nil && req.UserID == nil {
		web.FieldError(c, http.StatusBadRequest, "Request body must contain either 'item_id', 'category_id', or 'user_id'")
		return
	}

	entry := c.MustGet(recordKey).(*ItemCategory)
	if err := a.service.Update(entry.ID, &req); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "Item to Category entry doesn't exist")
			return
		}
		web.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *ItemCategoryController) Delete(c *gin.Context) {
	entry := c.MustGet(recordKey).(*ItemCategory)
	if err := a.service.Delete(entry.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "Item to Category entry doesn't exist")
			return
		}
		web.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *ItemCategoryController) ListByUser(c *gin.Context) {
	a.listBy(c, c.Param("user_id"), a.service.GetByUserID)
}

func (a *ItemCategoryController) ListByItem(c *gin.Context) {
	a.listBy(c, c.Param("item_id"), a.service.GetByItemID)
}

func (a *ItemCategoryController) ListByCategory(c *gin.Context) {
	a.listBy(c, c.Param("category_id"), a.service.GetByCategoryID)
}

func (a *ItemCategoryController) listBy(c *gin.Context, param string, fetch func(int) ([]*ItemCategory, error)) {
	id, err := strconv.Atoi(param)
	if err != nil {
		web.Error(c, http.StatusBadRequest, "Invalid ID")
		return
	}

	entries, err := fetch(id)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if entries == nil {
		entries = []*ItemCategory{}
	}
	c.JSON(http.StatusOK, entries)
}
