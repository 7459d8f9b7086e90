package user

import (
	"net/http"
	"strconv"

	"github.com/emeka-osuagwu/user-post-ui/internal/errors"
	"github.com/emeka-osuagwu/user-post-ui/internal/model"
	"github.com/emeka-osuagwu/user-post-ui/internal/service"
	"github.com/emeka-osuagwu/user-post-ui/internal/util"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserServiceInterface
}

func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	util.RegisterValidators()
	return &UserHandler{userService}
}

// ListUsers GET /users?page=&limit=
func (h *UserHandler) ListUsers(c *gin.Context) {
	// 非数字按 0 处理，由 Pagination 换成默认值
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	page, limit, _ = service.Pagination(page, limit)

	users, err := h.userService.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  users,
		"page":  page,
		"limit": limit,
	})
}

// GetUser GET /user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrResourceNotFound, "User not found"))
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// CreateUser POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input model.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的用户数据", err))
		return
	}

	if _, err := h.userService.CreateUser(c.Request.Context(), &input); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleMessage(c, http.StatusCreated, "User created successfully")
}
