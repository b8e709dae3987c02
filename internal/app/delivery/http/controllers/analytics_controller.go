package controllers

import (
	"context"
	"net/http"
	"salon-service/internal/app/contracts"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type AnalyticsController struct {
	Log              *zap.Logger
	AnalyticsUsecase contracts.AnalyticsUsecase
}

func NewAnalyticsController(logger *zap.Logger, analyticsUsecase contracts.AnalyticsUsecase) *AnalyticsController {
	return &AnalyticsController{
		Log:              logger,
		AnalyticsUsecase: analyticsUsecase,
	}
}

func (ctrl *AnalyticsController) Overview(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	days, err := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamDays))
	if err != nil || days <= 0 {
		days = 30
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.Overview(ctx, sessionData, days)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAnalyticsSuccessMessage, result)
}
