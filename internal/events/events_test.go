package events

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder
	var p Publisher = &r
	require.NoError(t, p.PublishEvent(context.Background(), ProductTopic, "k", map[string]any{"type": "product_created"}))
	require.Len(t, r.Events, 1)
	assert.Equal(t, ProductTopic, r.Events[0].Topic)
	assert.Equal(t, "k", r.Events[0].Key)
	require.NoError(t, p.Close())
}

func TestNop(t *testing.T) {
	t.Parallel()

	var p Publisher = Nop{}
	assert.NoError(t, p.PublishEvent(context.Background(), UserTopic, "k", nil))
	assert.NoError(t, p.Close())
}

func TestPublishEvent_MarshalError(t *testing.T) {
	t.Parallel()

	p := NewProducer([]string{"127.0.0.1:1"})
	defer p.Close()

	err := p.PublishEvent(context.Background(), UserTopic, "k", map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json.Marshal")
}

func TestProducer_Kafka(t *testing.T) {
	broker := os.Getenv("TEST_KAFKA_BROKER")
	if broker == "" {
		t.Skip("TEST_KAFKA_BROKER is required for tests")
	}

	topic := "test_events_" + uuid.NewString()
	conn, err := kafka.Dial("tcp", broker)
	require.NoError(t, err)
	require.NoError(t, conn.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}))
	_ = conn.Close()

	p := NewProducer([]string{broker})
	defer p.Close()

	require.NoError(t, p.PublishEvent(context.Background(), topic, "id-1", map[string]any{"type": "product_created", "id": "id-1"}))

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  10e6,
		MaxWait:   time.Second,
	})
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	m, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "id-1", string(m.Key))

	var event map[string]any
	require.NoError(t, json.Unmarshal(m.Value, &event))
	assert.Equal(t, "product_created", event["type"])
}
