package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/daily-lab/todolite/pkg/domain/model"
	"github.com/daily-lab/todolite/pkg/domain/types"
	"github.com/daily-lab/todolite/pkg/utils/errutil"
	"github.com/daily-lab/todolite/pkg/utils/safe"
)

type todoRequest struct {
	Text      string     `json:"text"`
	Date      types.Date `json:"date"`
	Completed bool       `json:"completed"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // header already committed
}

func (s *Server) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode todo"), http.StatusBadRequest, "invalid request body")
		return
	}

	todo := &model.Todo{
		Text:      req.Text,
		Date:      req.Date,
		Completed: req.Completed,
	}
	if err := todo.Validate(); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.uc.Todo.Create(ctx, todo)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError, "failed to create to-do")
		return
	}

	respondJSON(w, http.StatusOK, created)
}

func (s *Server) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	todos, err := s.uc.Todo.List(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError, "failed to list to-dos")
		return
	}

	respondJSON(w, http.StatusOK, todos)
}

func (s *Server) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	id, err := types.ParseTodoID(chi.URLParam(r, "id"))
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid todo ID"), http.StatusBadRequest, "invalid to-do ID")
		return
	}

	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode todo"), http.StatusBadRequest, "invalid request body")
		return
	}

	todo := &model.Todo{
		ID:        id,
		Text:      req.Text,
		Date:      req.Date,
		Completed: req.Completed,
	}
	if err := todo.Validate(); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.uc.Todo.Update(ctx, todo)
	if err != nil {
		if errors.Is(err, model.ErrTodoNotFound) {
			errutil.HandleHTTP(ctx, w, nil, http.StatusNotFound, "To-do not found")
			return
		}
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError, "failed to update to-do")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := types.ParseTodoID(chi.URLParam(r, "id"))
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid todo ID"), http.StatusBadRequest, "invalid to-do ID")
		return
	}

	if err := s.uc.Todo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrTodoNotFound) {
			errutil.HandleHTTP(ctx, w, nil, http.StatusNotFound, "To-do not found")
			return
		}
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError, "failed to delete to-do")
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("To-do with ID %d deleted.", id),
	})
}

func (s *Server) deleteAllTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := s.uc.Todo.DeleteAll(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError, "failed to delete to-dos")
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Deleted %d to-do(s).", deleted),
	})
}
