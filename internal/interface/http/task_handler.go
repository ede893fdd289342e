package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	taskapp "github.com/mahmoudaladin7/To-Do-List/internal/application"
	"github.com/mahmoudaladin7/To-Do-List/internal/domain/entity"
	"github.com/mahmoudaladin7/To-Do-List/pkg/response"
	"github.com/mahmoudaladin7/To-Do-List/pkg/validation"
)

type TaskHandler struct {
	Svc    *taskapp.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *taskapp.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status" binding:"omitempty,oneof=pending in_progress done"`
	DueDate     string  `json:"dueDate" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type listTasksQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending in_progress done"`
	Search string `form:"search"`
	Sort   string `form:"sort" binding:"omitempty,oneof=created_at due_date status"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=20" binding:"min=1"`
}

func taskJSON(t *entity.Task) gin.H {
	return gin.H{
		"id":          t.ID,
		"userId":      t.UserID,
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status,
		"dueDate":     t.DueDate,
		"createdAt":   t.CreatedAt,
		"updatedAt":   t.UpdatedAt,
	}
}

// Create POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), uid, taskapp.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": taskJSON(t)})
}

// List GET /api/v1/tasks?status=&search=&sort=&order=&page=&limit=
func (h *TaskHandler) List(c *gin.Context) {
	uid := c.GetString("userID")

	var q listTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.List(c.Request.Context(), uid, taskapp.ListTasksInput{
		Status: q.Status,
		Search: q.Search,
		Sort:   q.Sort,
		Order:  q.Order,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}

	data := make([]gin.H, 0, len(res.Data))
	for i := range res.Data {
		data = append(data, taskJSON(&res.Data[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": res.Meta})
}

// Get GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	uid := c.GetString("userID")

	t, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": taskJSON(t)})
}

// Update PATCH /api/v1/tasks/:id — partial body, absent fields untouched.
func (h *TaskHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")

	var req taskapp.UpdateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), req)
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": taskJSON(t)})
}

// Delete DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")

	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
