// The background consumer listens to the auth.login queue and appends
// each event to logs/auth.log, giving operators a local audit trail of who
// logged in from where without querying the broker.
package queue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/flight-reservation-api/pkg/logger"
)

// StartLoginConsumer connects to RabbitMQ, declares the auth.login queue
// and consumes it forever, reconnecting with exponential backoff. Bad
// messages are rejected without requeue so one malformed event cannot wedge
// the queue. Intended to run in its own goroutine for the process lifetime.
func StartLoginConsumer(log logger.Logger) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Warn("login consumer dial failed", "error", err, "retry_in", backoff.String())
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after a successful connect

		if err := consumeLoop(conn, log); err != nil {
			log.Warn("login consumer loop ended", "error", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, log logger.Logger) error {
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(loginQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	deliveries, err := ch.Consume(loginQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for d := range deliveries {
		var ev LoginEvent
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			log.Warn("login consumer: bad event payload", "error", err)
			_ = d.Reject(false)
			continue
		}
		if err := appendAuditLine(ev); err != nil {
			log.Error("login consumer: write audit line", "error", err)
			_ = d.Reject(true) // requeue; the disk may recover
			continue
		}
		_ = d.Ack(false)
	}
	return fmt.Errorf("delivery channel closed")
}

func appendAuditLine(ev LoginEvent) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join("logs", "auth.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	line := fmt.Sprintf("%s login username=%s role=%s ip=%s\n",
		ev.At.UTC().Format(time.RFC3339), ev.Username, ev.Role, ev.RemoteIP)
	_, err = f.WriteString(line)
	return err
}
