package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/daily-lab/todolite/pkg/usecase"
	"github.com/daily-lab/todolite/pkg/utils/errutil"
	"github.com/daily-lab/todolite/pkg/utils/safe"
)

type insightRequest struct {
	Tasks []string `json:"tasks"`
}

type insightResponse struct {
	Insights string `json:"insights"`
}

func (s *Server) generateInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode insight request"), http.StatusBadRequest, "invalid request body")
		return
	}

	insights, err := s.uc.Insight.GenerateInsights(ctx, req.Tasks)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTaskList) {
			errutil.HandleHTTP(ctx, w, nil, http.StatusBadRequest, "empty task list")
			return
		}
		// Upstream failure details are logged, never returned to the client
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError, "failed to generate insights")
		return
	}

	respondJSON(w, http.StatusOK, insightResponse{Insights: insights})
}
