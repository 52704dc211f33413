// 📁 internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"almanar_backend/internals/configs"
)

var (
	clientOnce sync.Once
	bucket     *oss.Bucket
	initErr    error
)

func getBucket() (*oss.Bucket, error) {
	clientOnce.Do(func() {
		client, err := oss.New(configs.OSSEndpoint, configs.OSSAccessKeyID, configs.OSSAccessSecret)
		if err != nil {
			initErr = fmt.Errorf("oss client: %w", err)
			return
		}
		bucket, initErr = client.Bucket(configs.OSSBucket)
	})
	return bucket, initErr
}

// UploadWebP stores an already-encoded webp payload under
// <folder>/<date>-<random>.webp and returns its public URL. The URL is the
// only thing the entity models keep; everything else about the object store
// is opaque to them.
func UploadWebP(folder string, payload []byte) (string, error) {
	b, err := getBucket()
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s-%s.webp",
		strings.Trim(folder, "/"),
		time.Now().Format("20060102"),
		uuid.NewString()[:8],
	)
	if err := b.PutObject(key, bytes.NewReader(payload),
		oss.ContentType("image/webp")); err != nil {
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}

	base := strings.TrimRight(configs.OSSPublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", configs.OSSBucket, configs.OSSEndpoint)
	}
	return base + "/" + key, nil
}
