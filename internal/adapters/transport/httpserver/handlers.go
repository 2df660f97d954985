package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bnema/todo/internal/application"
	"github.com/bnema/todo/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	taskAddedMessage       = "Task added"
	taskRequiredMessage    = "Task content is required"
	invalidBodyMessage     = "invalid request body"
	internalFailureMessage = "Internal Server Error"
)

type addTaskRequest struct {
	Task string `json:"task"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) listTasks(c *gin.Context) {
	tasks, err := s.tasks.ListTasks(c.Request.Context())
	if err != nil {
		s.internalError(c, "list tasks", err)
		return
	}

	c.JSON(http.StatusOK, domain.Strings(tasks))
}

func (s *Server) addTask(c *gin.Context) {
	var req addTaskRequest
	// Only JSON bodies are parsed; anything else carries no task.
	if c.ContentType() == binding.MIMEJSON {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: invalidBodyMessage})
			return
		}
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				c.JSON(http.StatusBadRequest, errorResponse{Error: invalidBodyMessage})
				return
			}
		}
	}

	if err := s.tasks.AddTask(c.Request.Context(), application.AddTaskCommand{Content: req.Task}); err != nil {
		if errors.Is(err, domain.ErrTaskContentRequired) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: taskRequiredMessage})
			return
		}
		s.internalError(c, "add task", err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: taskAddedMessage})
}

func (s *Server) internalError(c *gin.Context, op string, err error) {
	s.logger.Error(op+" failed",
		slog.String("request_id", c.GetString(requestIDKey)),
		slog.Any("error", err),
	)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: internalFailureMessage})
}
