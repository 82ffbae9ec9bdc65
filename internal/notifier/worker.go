package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_guardian_system/internal/config"
	"github.com/sirupsen/logrus"
)

// AlertForwardWorker вычитывает очередь оповещений локальных служб и
// пересылает их на настроенный эндпоинт
type AlertForwardWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewAlertForwardWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *AlertForwardWorker {
	return &AlertForwardWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.AlertTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди оповещений
func (w *AlertForwardWorker) Start(ctx context.Context) {
	w.logger.Info("Starting alert forward worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert forward worker.")
				return
			default:
				// BRPop - блокирующее извлечение из правой части очереди,
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop alert from Redis")
					time.Sleep(w.cfg.AlertTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var alert localServicesAlert
				if err := json.Unmarshal([]byte(payload), &alert); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert from Redis")
					continue
				}

				w.forwardAlert(ctx, alert, []byte(payload))
			}
		}
	}()
}

func (w *AlertForwardWorker) forwardAlert(ctx context.Context, alert localServicesAlert, rawPayload []byte) {
	log := w.logger.WithField("alert_user_id", alert.UserID).WithField("service_id", alert.ServiceID)
	log.Debug("Forwarding local services alert...")

	if w.cfg.LocalServicesURL == "" {
		log.Warn("Local services URL is not configured. Skipping alert forwarding.")
		return
	}

	maxRetries := w.cfg.AlertMaxRetries
	baseDelay := w.cfg.AlertBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.LocalServicesURL, bytes.NewReader(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create alert request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если ALERT_SECRET задан
		if w.cfg.AlertSecret != "" {
			req.Header.Set("X-Alert-Signature", generateHMACSHA256(rawPayload, w.cfg.AlertSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to forward alert. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Local services alert forwarded successfully.")
			return
		}
		log.Warnf("Alert forwarding failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to forward local services alert after %d retries.", maxRetries)
}
