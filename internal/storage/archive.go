package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/arzan03/MedicineShop/internal/services"
	"github.com/arzan03/MedicineShop/internal/utils"
	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const putTimeout = 30 * time.Second

// ObjectStore is the part of *minio.Client the archive needs.
type ObjectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
}

// Archive mirrors uploaded images to an object store in the background. The
// document in MongoDB stays the source of truth; a failed mirror is only logged.
type Archive struct {
	store   ObjectStore
	bucket  string
	pool    *utils.WorkerPool
	breaker *gobreaker.CircuitBreaker[minio.UploadInfo]
}

func NewArchive(store ObjectStore, bucket string, workers int) *Archive {
	var st gobreaker.Settings
	st.Name = "image-archive"
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
	}

	return &Archive{
		store:   store,
		bucket:  bucket,
		pool:    utils.NewWorkerPool(workers),
		breaker: gobreaker.NewCircuitBreaker[minio.UploadInfo](st),
	}
}

// ObjectName is where the image of document id in collection is mirrored.
func ObjectName(collection string, id primitive.ObjectID) string {
	return fmt.Sprintf("%s/%s", collection, id.Hex())
}

// Mirror queues a copy of img and returns at once. When the queue is full or the
// archive is closed the image is dropped and only logged.
func (a *Archive) Mirror(collection string, id primitive.ObjectID, img services.Image) {
	name := ObjectName(collection, id)
	ok := a.pool.TrySubmit(func() {
		if _, err := a.put(name, img); err != nil {
			log.Error().Err(err).Str("component", "ArchiveMirror").Str("object", name).Msg("")
		}
	})
	if !ok {
		log.Warn().Str("component", "ArchiveMirror").Str("object", name).Msg("archive busy or closed, image not mirrored")
	}
}

func (a *Archive) put(name string, img services.Image) (minio.UploadInfo, error) {
	return a.breaker.Execute(func() (minio.UploadInfo, error) {
		ctx, cancel := context.WithTimeout(context.Background(), putTimeout)
		defer cancel()

		return a.store.PutObject(ctx, a.bucket, name, bytes.NewReader(img.Data), int64(len(img.Data)),
			minio.PutObjectOptions{ContentType: img.ContentType})
	})
}

// Ping checks that the bucket is reachable.
func (a *Archive) Ping(ctx context.Context) error {
	exists, err := a.store.BucketExists(ctx, a.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("archive bucket missing")
	}
	return nil
}

// Wait blocks until queued mirrors are done.
func (a *Archive) Wait() {
	a.pool.Wait()
}

// Close finishes queued mirrors and stops the workers.
func (a *Archive) Close() {
	a.pool.Close()
}
