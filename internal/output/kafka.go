package output

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/florasim/florasim/internal/models"
	"github.com/sirupsen/logrus"
)

// KafkaSink streams sale events and inventory snapshots as JSON messages on
// their respective topics.
type KafkaSink struct {
	producer sarama.SyncProducer
}

func NewKafkaSink(config *models.Config) (*KafkaSink, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(config.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logrus.WithField("brokers", brokerList).Info("Kafka producer created")
	return &KafkaSink{producer: producer}, nil
}

func (k *KafkaSink) RecordSale(_ context.Context, sale models.SaleRecord) error {
	return k.send(saleTopic, sale)
}

func (k *KafkaSink) RecordInventory(_ context.Context, snapshots []models.InventoryRecord) error {
	for _, snapshot := range snapshots {
		if err := k.send(inventoryTopic, snapshot); err != nil {
			return err
		}
	}
	return nil
}

func (k *KafkaSink) send(topic string, v interface{}) error {
	if k.producer == nil {
		return fmt.Errorf("Kafka producer is closed")
	}

	msg, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", topic, err)
	}
	return nil
}

func (k *KafkaSink) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
