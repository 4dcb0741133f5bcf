package category

import (
	"errors"
	"net/http"
	"strconv"
	"tinylunches/internal/web"

	"github.com/gin-gonic/gin"
)

const recordKey = "categoryRecord"

type CategoryController struct {
	service CategoryServiceInterface
}

func NewCategoryController(service CategoryServiceInterface) *CategoryController {
	return &CategoryController{service: service}
}

func (a *CategoryController) SetupRoutes(r *gin.Engine) {
	categories := r.Group("/api/categories")
	{
		categories.GET("", a.List)
		categories.POST("", a.Create)
	}

	record := categories.Group("/:id", a.load)
	{
		record.GET("", a.Get)
		record.PATCH("", a.Patch)
		record.DELETE("", a.Delete)
	}
}

func (a *CategoryController) List(c *gin.Context) {
	categories, err := a.service.GetAll()
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if categories == nil {
		categories = []*Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (a *CategoryController) Create(c *gin.Context) {
	var req struct {
		Name *string `json:"name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == nil {
		web.MissingField(c, "name")
		return
	}

	category := &Category{Name: *req.Name}
	if err := a.service.Create(category); err != nil {
		web.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (a *CategoryController) load(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		web.Error(c, http.StatusBadRequest, "Invalid category ID")
		c.Abort()
		return
	}

	category, err := a.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "Category doesn't exist")
		} else {
			web.ServerError(c, err)
		}
		c.Abort()
		return
	}

	c.Set(recordKey, category)
	c.Next()
}

func (a *CategoryController) Get(c *gin.Context) {
	category := c.MustGet(recordKey).(*Category)
	c.JSON(http.StatusOK, category)
}

func (a *CategoryController) Patch(c *gin.Context) {
	var req Update
	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == nil {
		web.FieldError(c, http.StatusBadRequest, "Request body must contain name")
		return
	}

	category := c.MustGet(recordKey).(*Category)
	if err := a.service.Update(category.ID, &req); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "Category doesn't exist")
			return
		}
		web.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *CategoryController) Delete(c *gin.Context) {
	category := c.MustGet(recordKey).(*Category)
	if err := a.service.Delete(category.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "Category doesn't exist")
			return
		}
		web.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
