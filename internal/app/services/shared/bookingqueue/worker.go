package bookingqueue

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"salon-service/internal/app/config"
	"salon-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Worker periodically forwards queued booking events to the configured
// notification webhook with at-least-once semantics.
type Worker struct {
	log    *zap.Logger
	cfg    *config.InternalConfig
	queue  *Service
	client *http.Client
	stop   chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, queue *Service) *Worker {
	timeout := time.Duration(cfg.Events.HTTPTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Worker{
		log:    log,
		cfg:    cfg,
		queue:  queue,
		client: &http.Client{Timeout: timeout},
		stop:   make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(time.Minute)
	stopped := make(chan struct{})

	fmt.Println("Booking event worker started")

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case now := <-ticker.C:
				w.runOnce(ctx, now)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *Worker) runOnce(ctx context.Context, now time.Time) {
	if strings.TrimSpace(w.cfg.Events.WebhookURL) == "" {
		return
	}

	w.log.Info("bookingqueue.worker.runOnce tick",
		zap.Time("now", now))

	max := w.cfg.Events.MaxQueue
	if max <= 0 {
		max = 1
	}
	items, err := w.queue.FetchN(ctx, max)
	if err != nil {
		w.log.Info("queue.FetchN error", zap.Error(err))
		return
	}

	w.log.Info("queue.FetchN success", zap.Int("fetched_count", len(items)))

	for _, item := range items {
		w.processItem(ctx, item)
	}
}

func (w *Worker) processItem(ctx context.Context, item QueuedItem) {
	msg := item.Message
	url := fmt.Sprintf("%s/%s", strings.TrimRight(w.cfg.Events.WebhookURL, "/"), msg.Event)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(msg.Body))
	if err != nil {
		w.log.Info("build http request failed",
			zap.String("event", msg.Event),
			zap.Error(err))
		w.requeueOnError(ctx, item, msg)
		return
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	token, err := w.deliveryToken(msg.Event)
	if err != nil {
		w.log.Info("delivery token signing failed",
			zap.String("event", msg.Event),
			zap.Error(err))
		w.requeueOnError(ctx, item, msg)
		return
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

	w.log.Info("forwarding booking event",
		zap.String("event", msg.Event),
		zap.String(constvars.LoggingQueueMessageIDKey, msg.ID),
		zap.String(constvars.LoggingUpstreamUrlKey, url),
		zap.Int("failed_count", msg.FailedCount))

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.Info("http request failed",
			zap.String("event", msg.Event),
			zap.Error(err))
		w.requeueOnError(ctx, item, msg)
		return
	}
	defer resp.Body.Close()
	_, _ = io.ReadAll(resp.Body) // drain for connection reuse

	w.log.Info("booking event response received",
		zap.String("event", msg.Event),
		zap.String(constvars.LoggingQueueMessageIDKey, msg.ID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode))
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		if ackErr := w.queue.AckMessage(item.DeliveryTag); ackErr != nil {
			w.log.Info("ack failed after success",
				zap.String("event", msg.Event),
				zap.String(constvars.LoggingQueueMessageIDKey, msg.ID),
				zap.Error(ackErr))
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		// requeue without incrementing the failed count; the receiver's auth
		// config may still be rolling out
		if err := w.queue.Reenqueue(ctx, msg); err != nil {
			w.log.Info("reenqueue failed (401/403)",
				zap.String("event", msg.Event),
				zap.String(constvars.LoggingQueueMessageIDKey, msg.ID),
				zap.Error(err))
			return
		}
		_ = w.queue.AckMessage(item.DeliveryTag)
		w.log.Warn("received 401/403; message returned to tail",
			zap.String("event", msg.Event),
			zap.String(constvars.LoggingQueueMessageIDKey, msg.ID))
	default:
		w.requeueOnError(ctx, item, msg)
	}
}

func (w *Worker) requeueOnError(ctx context.Context, item QueuedItem, msg Message) {
	msg.FailedCount++
	if msg.FailedCount >= w.cfg.Events.ThrottleRetry {
		if err := w.queue.EnqueueToDeadQueue(ctx, msg); err != nil {
			w.log.Info("enqueue to DLQ failed",
				zap.String("event", msg.Event),
				zap.String(constvars.LoggingQueueMessageIDKey, msg.ID),
				zap.Error(err))
			return
		}
		_ = w.queue.AckMessage(item.DeliveryTag)
		w.log.Info("moved message to DLQ",
			zap.String("event", msg.Event),
			zap.String(constvars.LoggingQueueMessageIDKey, msg.ID),
			zap.Int("failed_count", msg.FailedCount))
		return
	}
	if err := w.queue.Reenqueue(ctx, msg); err != nil {
		w.log.Info("reenqueue failed",
			zap.String("event", msg.Event),
			zap.String(constvars.LoggingQueueMessageIDKey, msg.ID),
			zap.Error(err))
		return
	}
	_ = w.queue.AckMessage(item.DeliveryTag)
	w.log.Info("retryable failure; incremented failedCount and requeued",
		zap.String("event", msg.Event),
		zap.String(constvars.LoggingQueueMessageIDKey, msg.ID),
		zap.Int("failed_count", msg.FailedCount))
}

func (w *Worker) deliveryToken(event string) (string, error) {
	claims := jwt.MapClaims{
		"sub": event,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(5 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(w.cfg.JWT.Secret))
}
