package item

import (
	"errors"
	"net/http"
	"strconv"
	"tinylunches/internal/web"

	"github.com/gin-gonic/gin"
)

const recordKey = "itemRecord"

type ItemController struct {
	service ItemServiceInterface
}

func NewItemController(service ItemServiceInterface) *ItemController {
	return &ItemController{service: service}
}

func (a *ItemController) SetupRoutes(r *gin.Engine) {
	items := r.Group("/api/items")
	{
		items.GET("", a.List)
		items.POST("", a.Create)
	}

	record := items.Group("/:id", a.load)
	{
		record.GET("", a.Get)
		record.PATCH("", a.Patch)
		record.DELETE("", a.Delete)
	}
}

func (a *ItemController) List(c *gin.Context) {
	items, err := a.service.GetAll()
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if items == nil {
		items = []*Item{}
	}
	c.JSON(http.StatusOK, items)
}

func (a *ItemController) Create(c *gin.Context) {
	var req struct {
		Name *string `json:"item_name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == nil {
		web.MissingField(c, "item_name")
		return
	}

	item := &Item{Name: *req.Name}
	if err := a.service.Create(item); err != nil {
		web.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (a *ItemController) load(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		web.Error(c, http.StatusBadRequest, "Invalid item ID")
		c.Abort()
		return
	}

	item, err := a.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "Item doesn't exist")
		} else {
			web.ServerError(c, err)
		}
		c.Abort()
		return
	}

	c.Set(recordKey, item)
	c.Next()
}

func (a *ItemController) Get(c *gin.Context) {
	item := c.MustGet(recordKey).(*Item)
	c.JSON(http.StatusOK, item)
}

func (a *ItemController) Patch(c *gin.Context) {
	var req Update
	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == nil {
		web.FieldError(c, http.StatusBadRequest, "Request body must contain item_name")
		return
	}

	item := c.MustGet(recordKey).(*Item)
	if err := a.service.Update(item.ID, &req); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "Item doesn't exist")
			return
		}
		web.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *ItemController) Delete(c *gin.Context) {
	item := c.MustGet(recordKey).(*Item)
	if err := a.service.Delete(item.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "Item doesn't exist")
			return
		}
		web.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
