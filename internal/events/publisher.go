// Package events publishes store changes to an MQTT broker.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/diegoclair/shift-roster/internal/store"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultPublishTimeout = 5 * time.Second
	defaultKeepAlive      = 60 * time.Second
	disconnectQuiesce     = 1000 // milliseconds

	eventQoS = 1
	queueLen = 256
)

// Config describes the broker connection.
type Config struct {
	Broker   string // tcp://host:1883
	ClientID string
	Prefix   string
}

// mqttClient is the subset of pahomqtt.Client the publisher uses.
type mqttClient interface {
	IsConnected() bool
	Publish(topic string, qos byte, retained bool, payload any) pahomqtt.Token
	Disconnect(quiesce uint)
}

// Publisher forwards store events to MQTT. Events are queued and published
// from a single goroutine so store listeners never wait on the network. When
// the queue is full the event is dropped and logged.
type Publisher struct {
	client mqttClient
	topics Topics
	logger *slog.Logger

	queue chan store.Event
	wg    sync.WaitGroup
	once  sync.Once
}

// Connect dials the broker and returns a started publisher.
func Connect(cfg Config, logger *slog.Logger) (*Publisher, error) {
	topics := Topics{Prefix: cfg.Prefix}

	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(defaultConnectTimeout)
	opts.SetKeepAlive(defaultKeepAlive)
	opts.SetWill(topics.Status(), statusPayload("offline", cfg.ClientID), eventQoS, true)
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		logger.Warn("mqtt connection lost", "error", err)
	})
	opts.SetOnConnectHandler(func(c pahomqtt.Client) {
		c.Publish(topics.Status(), eventQoS, true, statusPayload("online", cfg.ClientID))
	})

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(defaultConnectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, defaultConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	p := NewPublisher(client, cfg.Prefix, logger)
	p.Start()
	return p, nil
}

// NewPublisher wraps an already connected client. Call Start before use.
func NewPublisher(client mqttClient, prefix string, logger *slog.Logger) *Publisher {
	return &Publisher{
		client: client,
		topics: Topics{Prefix: prefix},
		logger: logger,
		queue:  make(chan store.Event, queueLen),
	}
}

func (p *Publisher) Start() {
	p.wg.Add(1)
	go p.run()
}

// Handle is a store.Listener.
func (p *Publisher) Handle(ev store.Event) {
	select {
	case p.queue <- ev:
	default:
		p.logger.Warn("mqtt queue full, dropping store event",
			"action", ev.Action,
			"revision", ev.Revision,
		)
	}
}

// Close drains the queue and disconnects. The publisher must be
// unsubscribed from the store first.
func (p *Publisher) Close() {
	p.once.Do(func() {
		close(p.queue)
		p.wg.Wait()
		p.client.Disconnect(disconnectQuiesce)
	})
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for ev := range p.queue {
		if err := p.publishEvent(ev); err != nil {
			p.logger.Error("failed to publish store event",
				"action", ev.Action,
				"revision", ev.Revision,
				"error", err,
			)
		}
	}
}

func (p *Publisher) publishEvent(ev store.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if err := p.publish(p.topics.Event(ev.Action), payload, false); err != nil {
		return err
	}
	return p.publish(p.topics.Revision(), []byte(strconv.FormatUint(ev.Revision, 10)), true)
}

func (p *Publisher) publish(topic string, payload []byte, retained bool) error {
	if !p.client.IsConnected() {
		return ErrNotConnected
	}

	token := p.client.Publish(topic, eventQoS, retained, payload)
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}

func statusPayload(status, clientID string) string {
	return fmt.Sprintf(`{"status":%q,"client_id":%q,"timestamp":%q}`,
		status, clientID, time.Now().UTC().Format(time.RFC3339))
}
