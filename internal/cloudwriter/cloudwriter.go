package cloudwriter

import "context"

// ObjectWriter accumulates one object's bytes; the object only becomes
// visible in the store when Close uploads it.
type ObjectWriter interface {
	Write(p []byte) (int, error)
	Close() error
}

// ObjectWriterFactory creates writers bound to a bucket and object key. The
// context covers the writer's whole lifetime, including the final upload.
type ObjectWriterFactory interface {
	NewWriter(ctx context.Context, bucket, key string) (ObjectWriter, error)
}
