package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	mqttConnectTimeout = 10 * time.Second
	mqttPublishTimeout = 5 * time.Second
)

// publisher is the part of paho.Client the sink uses.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Disconnect(quiesce uint)
}

// MQTT publishes alerts as JSON to a broker topic.
type MQTT struct {
	client publisher
	topic  string
	now    func() time.Time
}

var _ Sink = (*MQTT)(nil)

// Payload is the MQTT alert message body.
type Payload struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// NewMQTT connects to broker and returns a sink publishing on topic.
func NewMQTT(broker, clientID, topic string) (*MQTT, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("connect to broker %s: timeout", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker %s: %w", broker, err)
	}
	return &MQTT{client: client, topic: topic, now: time.Now}, nil
}

func (m *MQTT) Notify(ctx context.Context, msg string) error {
	payload, err := json.Marshal(Payload{
		Timestamp: m.now().UTC().Format(time.RFC3339),
		Message:   msg,
	})
	if err != nil {
		return fmt.Errorf("format alert payload: %w", err)
	}

	// QoS 1: alerts should arrive at least once.
	token := m.client.Publish(m.topic, 1, false, payload)
	select {
	case <-token.Done():
	case <-time.After(mqttPublishTimeout):
		return fmt.Errorf("publish alert: timeout")
	case <-ctx.Done():
		return fmt.Errorf("publish alert: %w", ctx.Err())
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish alert: %w", err)
	}
	return nil
}

// Close disconnects from the broker.
func (m *MQTT) Close() error {
	m.client.Disconnect(1000) // 1 second quiesce
	return nil
}
