package post

import (
	"net/http"
	"strconv"

	"github.com/emeka-osuagwu/user-post-ui/internal/errors"
	"github.com/emeka-osuagwu/user-post-ui/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService service.PostServiceInterface
}

func NewPostHandler(postService service.PostServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

// DeletePost DELETE /post/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrResourceNotFound, "Post not found"))
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleMessage(c, http.StatusOK, "Post deleted successfully")
}
