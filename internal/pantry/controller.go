package pantry

import (
	"errors"
	"net/http"
	"strconv"
	"tinylunches/internal/web"

	"github.com/gin-gonic/gin"
)

const recordKey = "pantryRecord"

type PantryController struct {
	service PantryServiceInterface
}

func NewPantryController(service PantryServiceInterface) *PantryController {
	return &PantryController{service: service}
}

// SetupRoutes mounts the pantry routes. Every route sits behind the auth
// guard; the pantry is the only fully private router.
func (a *PantryController) SetupRoutes(r *gin.Engine, guard gin.HandlerFunc) {
	pantry := r.Group("/api/pantry", guard)
	{
		pantry.GET("", a.List)
		pantry.POST("", a.Create)
		pantry.GET("/search/item", a.Search)
		pantry.GET("/users/:user_id", a.ListByUser)
	}

	record := pantry.Group("/:id", a.load)
	{
		record.GET("", a.Get)
		record.PATCH("", a.Patch)
		record.DELETE("", a.Delete)
	}
}

func (a *PantryController) List(c *gin.Context) {
	items, err := a.service.GetAll()
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if items == nil {
		items = []*PantryItem{}
	}
	c.JSON(http.StatusOK, items)
}

// Create inserts a pantry row. Required fields are checked in a fixed order
// so the first missing one names itself in the error.
func (a *PantryController) Create(c *gin.Context) {
	var req struct {
		UserID    *int    `json:"user_id"`
		ItemName  *string `json:"item_name"`
		Category1 *string `json:"category_1"`
		Category2 *string `json:"category_2"`
		Category3 *string `json:"category_3"`
		Category4 *string `json:"category_4"`
		Category5 *string `json:"category_5"`
		Category6 *string `json:"category_6"`
		Category7 *string `json:"category_7"`
		Quantity  *int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == nil {
		web.MissingField(c, "user_id")
		return
	}
	if req.ItemName == nil {
		web.MissingField(c, "item_name")
		return
	}
	if req.Category1 == nil {
		web.MissingField(c, "category_1")
		return
	}
	if req.Quantity == nil {
		web.MissingField(c, "quantity")
		return
	}

	item := &PantryItem{
		UserID:    *req.UserID,
		ItemName:  *req.ItemName,
		Category1: *req.Category1,
		Category2: req.Category2,
		Category3: req.Category3,
		Category4: req.Category4,
		Category5: req.Category5,
		Category6: req.Category6,
		Category7: req.Category7,
		Quantity:  *req.Quantity,
	}

	if err := a.service.Create(item); err != nil {
		web.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (a *PantryController) load(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		web.Error(c, http.StatusBadRequest, "Invalid pantry item ID")
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

func (a *PantryController) Get(c *gin.Context) {
	item := c.MustGet(recordKey).(*PantryItem)
	c.JSON(http.StatusOK, item)
}

func (a *PantryController) Patch(c *gin.Context) {
	var req Update
	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.provided() == 0 {
		web.FieldError(c, http.StatusBadRequest, "Request body must contain at least one value")
		return
	}

	item := c.MustGet(recordKey).(*PantryItem)
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

func (a *PantryController) Delete(c *gin.Context) {
	item := c.MustGet(recordKey).(*PantryItem)
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

func (a *PantryController) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		web.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	items, err := a.service.GetByUserID(userID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if len(items) == 0 {
		web.NotFound(c, "No Pantry Items exist for this User")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (a *PantryController) Search(c *gin.Context) {
	items, err := a.service.Search(c.Query("string"))
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if items == nil {
		items = []*PantryItem{}
	}
	c.JSON(http.StatusOK, items)
}
