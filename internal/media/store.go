package media

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"safar-travel-api/internal/util"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// Store is the media collaborator the record managers talk to. The object
// path returned alongside the public URL is the opaque handle used for
// later deletion; callers persist both together or not at all.
type Store interface {
	Upload(ctx context.Context, data []byte, contentType, objectName string) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

type GCSStore struct {
	Bucket string
}

var newGCSClientHook = func(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx)
}

func (s *GCSStore) Upload(ctx context.Context, data []byte, contentType, objectName string) (string, error) {
	client, err := newGCSClientHook(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	w := client.Bucket(s.Bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return PublicURL(s.Bucket, objectName), nil
}

func (s *GCSStore) Delete(ctx context.Context, objectPath string) error {
	client, err := newGCSClientHook(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Bucket(s.Bucket).Object(objectPath).Delete(ctx)
}

type ObjectInfo struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	Updated time.Time `json:"updated"`
}

// ListObjects walks the bucket under prefix. Used by the admin audit to
// surface objects orphaned by a crash between upload and record write.
func (s *GCSStore) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	client, err := newGCSClientHook(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	objects := []ObjectInfo{}
	it := client.Bucket(s.Bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		objects = append(objects, ObjectInfo{
			Name:    attrs.Name,
			Size:    attrs.Size,
			Updated: attrs.Updated,
		})
	}

	return objects, nil
}

func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

// ObjectName builds a collision-resistant bucket path for an uploaded image,
// e.g. "hajj/economy_hajj_1756461722000000000.jpg". Nanosecond resolution so
// that replacing a record's image twice in quick succession never reuses a
// path.
func ObjectName(kind, title, filename, mime string) string {
	ext := util.ExtFromFilenameOrMime(filename, mime)
	return fmt.Sprintf("%s/%s_%d%s", kind, util.SanitizePart(title), time.Now().UTC().UnixNano(), ext)
}

// ExtractObjectPath recovers the object path from a stored public URL.
// Supports both storage.googleapis.com/<bucket>/<object> and
// <bucket>.storage.googleapis.com/<object>; query params are ignored.
func ExtractObjectPath(bucket, raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	u.RawQuery = ""
	u.Fragment = ""

	host := strings.ToLower(u.Host)
	p := strings.TrimPrefix(u.Path, "/")

	if host == "storage.googleapis.com" {
		prefix := bucket + "/"
		if strings.HasPrefix(p, prefix) {
			return strings.TrimPrefix(p, prefix), nil
		}
		return p, nil
	}

	if strings.HasSuffix(host, ".storage.googleapis.com") {
		return p, nil
	}

	return p, nil
}
