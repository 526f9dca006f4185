// Package events streams recorded activities to NATS for consumers such
// as dashboards. Publishing is best-effort and config-gated; the service
// runs fine without a broker.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/config"
	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
)

// ActivityEvent is the wire form of a published activity
type ActivityEvent struct {
	Type     string           `json:"type"` // "created", "deleted"
	Activity *models.Activity `json:"activity"`
}

// Publisher publishes activity events to NATS
type Publisher struct {
	conn   *nats.Conn
	logger *logrus.Logger
}

// NewPublisher connects to NATS and returns a publisher. Returns an error
// only on a configuration-level failure; transient connection loss is
// handled by the client's reconnect loop.
func NewPublisher(cfg config.NATSConfig, logger *logrus.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("crm-tool"),
		nats.Timeout(10 * time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(time.Duration(cfg.ReconnectWait) * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.WithError(err).Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", cfg.URL, err)
	}

	return &Publisher{conn: conn, logger: logger}, nil
}

// PublishActivity publishes an activity event on
// crm.activity.<entity_type>. Errors are logged, not returned; the feed is
// advisory and must never fail a request.
func (p *Publisher) PublishActivity(eventType string, activity *models.Activity) {
	if p == nil || p.conn == nil || !p.conn.IsConnected() {
		return
	}

	data, err := json.Marshal(ActivityEvent{Type: eventType, Activity: activity})
	if err != nil {
		p.logger.WithError(err).Warn("Failed to marshal activity event")
		return
	}

	subject := fmt.Sprintf("crm.activity.%s", activity.EntityType)
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.WithError(err).WithField("subject", subject).Warn("Failed to publish activity event")
	}
}

// Close drains the connection
func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}
