package output

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/florasim/florasim/internal/models"
)

// JSONLSink appends one JSON line per record to a file per topic under
// basePath/folder.
type JSONLSink struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONLSink(basePath, folder string) (*JSONLSink, error) {
	dir := filepath.Join(basePath, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &JSONLSink{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}, nil
}

func (j *JSONLSink) RecordSale(_ context.Context, sale models.SaleRecord) error {
	return j.append(saleTopic, sale)
}

func (j *JSONLSink) RecordInventory(_ context.Context, snapshots []models.InventoryRecord) error {
	for _, snapshot := range snapshots {
		if err := j.append(inventoryTopic, snapshot); err != nil {
			return err
		}
	}
	return nil
}

func (j *JSONLSink) append(topic string, v interface{}) error {
	file, ok := j.files[topic]
	if !ok {
		filename := filepath.Join(j.basePath, j.folder, topic+".jsonl")
		var err error
		file, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open file for topic %s: %w", topic, err)
		}
		j.files[topic] = file
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record to topic %s: %w", topic, err)
	}
	return nil
}

func (j *JSONLSink) Close() error {
	var lastErr error
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
