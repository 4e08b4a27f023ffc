package handlers

import (
	"net/http"

	"raisedesk/models"
	"raisedesk/services/board"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	Service board.BoardService
}

func NewBoardHandler(s board.BoardService) *BoardHandler {
	return &BoardHandler{Service: s}
}

func (h *BoardHandler) GetBoardHandler(c *gin.Context) {
	columns, err := h.Service.GetBoard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load board")
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

func (h *BoardHandler) CreateTaskHandler(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Service.CreateTask(c.Request.Context(), &task); err != nil {
		respondError(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *BoardHandler) UpdateTaskHandler(c *gin.Context) {
	var patch board.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	task, err := h.Service.UpdateTask(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// MoveTaskHandler handles POST /api/tasks/:id/move and returns the whole board.
func (h *BoardHandler) MoveTaskHandler(c *gin.Context) {
	var req models.TaskMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	columns, err := h.Service.MoveTask(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to move task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

func (h *BoardHandler) DeleteTaskHandler(c *gin.Context) {
	if err := h.Service.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
