package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/florasim/florasim/internal/cloudwriter"
	"github.com/florasim/florasim/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

type parquetSale struct {
	ID        string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Timestamp int64   `parquet:"name=timestamp, type=INT64"`
	Item      string  `parquet:"name=item, type=BYTE_ARRAY, convertedtype=UTF8"`
	Quantity  int32   `parquet:"name=quantity, type=INT32"`
	Price     float64 `parquet:"name=price, type=DOUBLE"`
	Profit    float64 `parquet:"name=profit, type=DOUBLE"`
}

type parquetInventory struct {
	Timestamp int64   `parquet:"name=timestamp, type=INT64"`
	Item      string  `parquet:"name=item, type=BYTE_ARRAY, convertedtype=UTF8"`
	Quantity  int32   `parquet:"name=quantity, type=INT32"`
	Price     float64 `parquet:"name=price, type=DOUBLE"`
}

// ParquetSink writes one parquet file per topic, locally or to cloud object
// storage through the cloudwriter abstraction.
type ParquetSink struct {
	basePath string
	folder   string

	mu      sync.Mutex
	writers map[string]*writer.ParquetWriter
	files   map[string]source.ParquetFile

	cloudFactory    cloudwriter.ObjectWriterFactory
	cloudBucketName string
}

func NewParquetSink(config *models.Config) (*ParquetSink, error) {
	p := &ParquetSink{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if config.OutputDestination != "" && config.OutputDestination != "local" {
		switch config.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			p.cloudFactory = factory
			p.cloudBucketName = config.CloudStorage.BucketName
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
	}

	return p, nil
}

func (p *ParquetSink) RecordSale(_ context.Context, sale models.SaleRecord) error {
	row := parquetSale{
		ID:        sale.ID,
		Timestamp: sale.Timestamp.Unix(),
		Item:      sale.Item,
		Quantity:  int32(sale.Quantity),
		Price:     sale.Price,
		Profit:    sale.Profit,
	}
	return p.write(saleTopic, new(parquetSale), row)
}

func (p *ParquetSink) RecordInventory(_ context.Context, snapshots []models.InventoryRecord) error {
	for _, snapshot := range snapshots {
		row := parquetInventory{
			Timestamp: snapshot.Timestamp.Unix(),
			Item:      snapshot.Item,
			Quantity:  int32(snapshot.Quantity),
			Price:     snapshot.Price,
		}
		if err := p.write(inventoryTopic, new(parquetInventory), row); err != nil {
			return err
		}
	}
	return nil
}

func (p *ParquetSink) write(topic string, schema interface{}, row interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	pw, ok := p.writers[topic]
	if !ok {
		var err error
		pw, err = p.createWriter(topic, schema)
		if err != nil {
			return fmt.Errorf("failed to create parquet writer for %s: %w", topic, err)
		}
	}

	if err := pw.Write(row); err != nil {
		return fmt.Errorf("failed to write parquet row to %s: %w", topic, err)
	}
	return nil
}

func (p *ParquetSink) createWriter(topic string, schema interface{}) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	if p.cloudFactory != nil {
		// the writer lives until Close, past any single step's context, and
		// the upload only happens then
		key := filepath.Join(p.folder, topic+".parquet")
		ow, err := p.cloudFactory.NewWriter(context.Background(), p.cloudBucketName, key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud object writer: %w", err)
		}
		fw = newCloudParquetFile(ow)
	} else {
		dir := filepath.Join(p.basePath, p.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		var err error
		fw, err = local.NewLocalFileWriter(filepath.Join(dir, topic+".parquet"))
		if err != nil {
			return nil, err
		}
	}

	pw, err := writer.NewParquetWriter(fw, schema, 4)
	if err != nil {
		return nil, err
	}

	p.writers[topic] = pw
	p.files[topic] = fw
	return pw, nil
}

func (p *ParquetSink) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			lastErr = err
			logrus.WithError(err).WithField("topic", topic).Error("error closing parquet writer")
		}
		if fw, ok := p.files[topic]; ok {
			if err := fw.Close(); err != nil {
				lastErr = err
				logrus.WithError(err).WithField("topic", topic).Error("error closing parquet file")
			}
		}
	}
	return lastErr
}

// cloudParquetFile adapts an ObjectWriter to the parquet source interface.
// The object store path is write-only: reads and seeks from the end are not
// supported.
type cloudParquetFile struct {
	writer cloudwriter.ObjectWriter
	offset int64
}

func newCloudParquetFile(w cloudwriter.ObjectWriter) *cloudParquetFile {
	return &cloudParquetFile{writer: w}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (n int, err error) {
	return c.writer.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.writer.Close()
}
