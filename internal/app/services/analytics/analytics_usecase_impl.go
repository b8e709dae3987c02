package analytics

import (
	"context"
	"fmt"
	"net/url"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/responses"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// metricEndpoint binds a metric name to its role-scoped upstream path.
type metricEndpoint struct {
	Name string
	Path string
}

var (
	analyticsUsecaseInstance contracts.AnalyticsUsecase
	onceAnalyticsUsecase     sync.Once
)

type analyticsUsecase struct {
	SalonAnalyticsClient contracts.SalonAnalyticsClient
	Log                  *zap.Logger
}

func NewAnalyticsUsecase(
	salonAnalyticsClient contracts.SalonAnalyticsClient,
	logger *zap.Logger,
) contracts.AnalyticsUsecase {
	onceAnalyticsUsecase.Do(func() {
		analyticsUsecaseInstance = &analyticsUsecase{
			SalonAnalyticsClient: salonAnalyticsClient,
			Log:                  logger,
		}
	})
	return analyticsUsecaseInstance
}

// metricEndpoints selects the metric set for the session's role. Client
// metrics are scoped to the user's own id.
func metricEndpoints(sessionData *models.Session, days int) []metricEndpoint {
	switch sessionData.UserRole {
	case constvars.RoleAdmin:
		return []metricEndpoint{
			{Name: "bookings", Path: fmt.Sprintf("/analytics/bookings/%d", days)},
			{Name: "revenue", Path: fmt.Sprintf("/analytics/revenue/%d", days)},
			{Name: "bookingsByEmployee", Path: fmt.Sprintf("/analytics/bookings-by-employee/%d", days)},
			{Name: "bookingsByService", Path: fmt.Sprintf("/analytics/bookings-by-service/%d", days)},
			{Name: "newClients", Path: fmt.Sprintf("/analytics/new-clients/%d", days)},
		}
	case constvars.RoleEmployee:
		return []metricEndpoint{
			{Name: "bookings", Path: fmt.Sprintf("/analytics/employee/bookings/%d", days)},
			{Name: "bookingsByService", Path: fmt.Sprintf("/analytics/employee/bookings-by-service/%d", days)},
		}
	default:
		userID := url.PathEscape(sessionData.UserID)
		return []metricEndpoint{
			{Name: "bookings", Path: fmt.Sprintf("/analytics/client/bookings/%d/%s", days, userID)},
			{Name: "spending", Path: fmt.Sprintf("/analytics/client/spending/%d/%s", days, userID)},
		}
	}
}

// Overview fans out to every metric endpoint for the role concurrently. A
// failing metric is logged and skipped; the rest of the panel still renders.
func (uc *analyticsUsecase) Overview(ctx context.Context, sessionData *models.Session, days int) (*responses.Analytics, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("analyticsUsecase.Overview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, sessionData.UserID),
		zap.Int("days", days),
	)

	if days <= 0 {
		days = 30
	}
	endpoints := metricEndpoints(sessionData, days)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		metrics = make([]models.Metric, 0, len(endpoints))
	)
	for _, endpoint := range endpoints {
		wg.Add(1)
		go func(endpoint metricEndpoint) {
			defer wg.Done()

			raw, err := uc.SalonAnalyticsClient.Fetch(ctx, sessionData, endpoint.Path)
			if err != nil {
				uc.Log.Error(constvars.ErrDevAnalyticsMetricFetch,
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingMetricNameKey, endpoint.Name),
					zap.Error(err),
				)
				return
			}

			metric, err := ClassifyMetric(endpoint.Name, raw)
			if err != nil {
				uc.Log.Error(constvars.ErrDevAnalyticsUnexpectedShape,
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingMetricNameKey, endpoint.Name),
					zap.Error(err),
				)
				return
			}

			mu.Lock()
			metrics = append(metrics, metric)
			mu.Unlock()
		}(endpoint)
	}
	wg.Wait()

	// Fan-out completion order is nondeterministic; fix the panel order.
	order := make(map[string]int, len(endpoints))
	for i, endpoint := range endpoints {
		order[endpoint.Name] = i
	}
	sort.Slice(metrics, func(i, j int) bool {
		return order[metrics[i].Name] < order[metrics[j].Name]
	})

	return &responses.Analytics{
		Role:    sessionData.UserRole,
		Days:    days,
		Metrics: metrics,
	}, nil
}
