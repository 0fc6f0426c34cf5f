// Package queue publishes domain events to RabbitMQ. The publisher is
// optional: when no queue URL is configured the publish helpers are no-ops, so
// request handling never depends on the broker being up.
package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/streadway/amqp"

	"github.com/naruhodo/newsapp/internal/pkg/env"
)

// Event names published by the API.
const (
	EventNewsCreated    = "news.created"
	EventCommentCreated = "comment.created"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

var client *Client

// Setup connects to the broker named by QUEUE_URL. A missing URL leaves the
// publisher disabled; a failed connection only logs, requests must not fail
// because the broker is away.
func Setup() {
	url := env.GetEnv("QUEUE_URL", "")
	if url == "" {
		return
	}

	queueName := env.GetEnv("QUEUE_PREFIX", "newsapp") + ".events"
	c, err := newClient(url, queueName)
	if err != nil {
		log.Printf("Warning: could not connect to queue: %v", err)
		return
	}
	client = c
}

func newClient(url, queueName string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", queueName, err)
	}

	return &Client{conn: conn, channel: ch, queue: queueName}, nil
}

// Close closes the RabbitMQ connection and channel.
func Close() {
	if client == nil {
		return
	}
	if client.channel != nil {
		client.channel.Close()
	}
	if client.conn != nil {
		client.conn.Close()
	}
	client = nil
}

// Publish sends one event with a JSON payload. Publish failures are logged
// and swallowed; events are best-effort by contract.
func Publish(event string, payload map[string]interface{}) {
	if client == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"payload": payload,
		"at":      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("queue: marshal %s event: %v", event, err)
		return
	}

	err = client.channel.Publish(
		"",           // default exchange
		client.queue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		log.Printf("queue: publish %s event: %v", event, err)
	}
}
