package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/it22117250/ITPM-Project/models"
	"github.com/segmentio/kafka-go"
)

// ProducerAPI abstracts the order event producer for tests.
type ProducerAPI interface {
	Publish(topic string, message []byte) error
	PublishOrderEvent(evt models.OrderEvent) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	// Topic is set per message; kafka-go rejects writes that carry a topic
	// on both the writer and the message.
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	log.Printf("[KafkaProducer] initialized topic=%s brokers=%v", topic, brokers)
	return &Producer{writer: w, topic: topic}
}

func (p *Producer) Publish(topic string, message []byte) error {
	msg := kafka.Message{
		Topic: topic,
		Value: message,
	}
	return p.writer.WriteMessages(context.Background(), msg)
}

// PublishOrderEvent publishes an order lifecycle event keyed by order ID so
// events for the same order land on the same partition.
func (p *Producer) PublishOrderEvent(evt models.OrderEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(evt.OrderID),
		Value: data,
	}
	if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
		log.Printf("[KafkaProducer] failed to publish %s order=%s topic=%s err=%v", evt.Type, evt.OrderID, p.topic, err)
		return err
	}
	log.Printf("[KafkaProducer] %s published order=%s topic=%s", evt.Type, evt.OrderSlug, p.topic)
	return nil
}

func (p *Producer) Close() error {
	log.Printf("[KafkaProducer] closing writer topic=%s", p.topic)
	return p.writer.Close()
}
