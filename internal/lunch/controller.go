package lunch

import (
	"errors"
	"net/http"
	"strconv"
	"tinylunches/internal/web"

	"github.com/gin-gonic/gin"
)

const recordKey = "lunchRecord"

type LunchController struct {
	service LunchServiceInterface
}

func NewLunchController(service LunchServiceInterface) *LunchController {
	return &LunchController{service: service}
}

func (a *LunchController) SetupRoutes(r *gin.Engine) {
	lunches := r.Group("/api/savedlunches")
	{
		lunches.GET("", a.List)
		lunches.POST("", a.Create)
		lunches.GET("/users/:user_id", a.ListByUser)
	}

	record := lunches.Group("/:id", a.load)
	{
		record.GET("", a.Get)
		record.PATCH("", a.Patch)
		record.DELETE("", a.Delete)
	}
}

func (a *LunchController) List(c *gin.Context) {
	lists, err := a.service.GetAll()
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if lists == nil {
		lists = []*SavedLunch{}
	}
	c.JSON(http.StatusOK, lists)
}

func (a *LunchController) Create(c *gin.Context) {
	var req struct {
		UserID *int      `json:"user_id"`
		Title  *string   `json:"title"`
		Items  *[]string `json:"items"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == nil {
		web.MissingField(c, "user_id")
		return
	}
	if req.Title == nil {
		web.MissingField(c, "title")
		return
	}
	if req.Items == nil {
		web.MissingField(c, "items")
		return
	}

	list := &SavedLunch{
		UserID: *req.UserID,
		Title:  *req.Title,
		Items:  *req.Items,
	}
	if err := a.service.Create(list); err != nil {
		web.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (a *LunchController) load(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		web.Error(c, http.StatusBadRequest, "Invalid list ID")
		c.Abort()
		return
	}

	list, err := a.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "List doesn't exist")
		} else {
			web.ServerError(c, err)
		}
		c.Abort()
		return
	}

	c.Set(recordKey, list)
	c.Next()
}

func (a *LunchController) Get(c *gin.Context) {
	list := c.MustGet(recordKey).(*SavedLunch)
	c.JSON(http.StatusOK, list)
}

func (a *LunchController) Patch(c *gin.Context) {
	var req Update
	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == nil && req.Title == nil && req.Items == nil {
		web.FieldError(c, http.StatusBadRequest, "Request body must contain at least one value")
		return
	}

	list := c.MustGet(recordKey).(*SavedLunch)
	if err := a.service.Update(list.ID, &req); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "List doesn't exist")
			return
		}
		web.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *LunchController) Delete(c *gin.Context) {
	list := c.MustGet(recordKey).(*SavedLunch)
	if err := a.service.Delete(list.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "List doesn't exist")
			return
		}
		web.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *LunchController) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		web.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	lists, err := a.service.GetByUserID(userID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if len(lists) == 0 {
		web.NotFound(c, "List doesn't exist")
		return
	}

	c.JSON(http.StatusOK, lists)
}
