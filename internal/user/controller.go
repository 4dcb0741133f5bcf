package user

import (
	"errors"
	"net/http"
	"strconv"
	"tinylunches/internal/auth"
	"tinylunches/internal/web"

	"github.com/gin-gonic/gin"
)

// recordKey holds the user row loaded by the lookup step for /:id routes.
const recordKey = "userRecord"

type UserController struct {
	userService UserServiceInterface
	tokens      *auth.TokenManager
}

func NewUserController(userService UserServiceInterface, tokens *auth.TokenManager) *UserController {
	return &UserController{
		userService: userService,
		tokens:      tokens,
	}
}

// SetupRoutes mounts the user and auth routes. Listing and registration are
// public; individual user records require a valid bearer token.
func (a *UserController) SetupRoutes(r *gin.Engine, guard gin.HandlerFunc) {
	r.POST("/api/auth/login", a.Login)

	users := r.Group("/api/users")
	{
		users.GET("", a.List)
		users.POST("", a.Register)
	}

	// Explicit pipeline: guard first, then resource lookup, then the handler.
	record := users.Group("/:id", guard, a.load)
	{
		record.GET("", a.Get)
		record.PATCH("", a.Patch)
		record.DELETE("", a.Delete)
	}
}

// Register handles user registration. Field presence, the password policy
// and username uniqueness are checked in that order; the response carries
// only the id and username, never the hash.
func (a *UserController) Register(c *gin.Context) {
	var req struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == nil {
		web.MissingField(c, "username")
		return
	}
	if req.Password == nil {
		web.MissingField(c, "password")
		return
	}

	user, err := a.userService.Register(*req.Username, *req.Password)
	if err != nil {
		switch {
		case auth.IsPolicyViolation(err):
			web.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUsernameTaken):
			web.Error(c, http.StatusBadRequest, "Username already taken")
		default:
			web.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Login validates a credential and issues a bearer token.
func (a *UserController) Login(c *gin.Context) {
	var req struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == nil {
		web.MissingField(c, "username")
		return
	}
	if req.Password == nil {
		web.MissingField(c, "password")
		return
	}

	user, err := a.userService.Authenticate(*req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.Error(c, http.StatusBadRequest, "Incorrect username or password")
			return
		}
		web.ServerError(c, err)
		return
	}

	token, err := a.tokens.CreateToken(user.ID, user.Username)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"authToken": token})
}

func (a *UserController) List(c *gin.Context) {
	users, err := a.userService.GetAll()
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if users == nil {
		users = []*User{}
	}
	c.JSON(http.StatusOK, users)
}

// load resolves the :id path parameter to a stored user or short-circuits
// with 404.
func (a *UserController) load(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		web.Error(c, http.StatusBadRequest, "Invalid user ID")
		c.Abort()
		return
	}

	user, err := a.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "User doesn't exist")
		} else {
			web.ServerError(c, err)
		}
		c.Abort()
		return
	}

	c.Set(recordKey, user)
	c.Next()
}

func (a *UserController) Get(c *gin.Context) {
	user := c.MustGet(recordKey).(*User)
	c.JSON(http.StatusOK, user)
}

// Patch updates username and/or password; at least one must be provided.
func (a *UserController) Patch(c *gin.Context) {
	var req Update
	if err := c.ShouldBindJSON(&req); err != nil {
		web.FieldError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == nil && req.Password == nil {
		web.FieldError(c, http.StatusBadRequest, "Request body must contain either 'password' or 'username'")
		return
	}

	user := c.MustGet(recordKey).(*User)
	if err := a.userService.Update(user.ID, &req); err != nil {
		switch {
		case auth.IsPolicyViolation(err):
			web.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUsernameTaken):
			web.Error(c, http.StatusBadRequest, "Username already taken")
		case errors.Is(err, ErrNotFound):
			web.NotFound(c, "User doesn't exist")
		default:
			web.ServerError(c, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *UserController) Delete(c *gin.Context) {
	user := c.MustGet(recordKey).(*User)
	if err := a.userService.Delete(user.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.NotFound(c, "User doesn't exist")
			return
		}
		web.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
