// Package documents implements the typed repositories on top of a repository.DocumentStore.
// Each record type maps a JSON document to a domain value and refuses documents that do not validate.
package documents

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"travel/internal/repository"
)

// decode unmarshals a document into dst and runs validate on the result.
func decode(doc repository.Document, dst any, validate func() error) error {
	if err := json.Unmarshal(doc.Data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", repository.ErrInvalidDocument, doc.ID, err)
	}
	if err := validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", repository.ErrInvalidDocument, doc.ID, err)
	}
	return nil
}

// decodeAll converts documents with convert, skipping and logging the ones that fail.
func decodeAll[T any](log logrus.FieldLogger, collection string, docs []repository.Document, convert func(repository.Document) (T, error)) []T {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := convert(doc)
		if err != nil {
			log.WithError(err).WithField("collection", collection).Warn("skipping invalid document")
			continue
		}
		out = append(out, v)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// orDefault prefers the time stored in the document over the row metadata.
func orDefault(ts Timestamp, fallback time.Time) time.Time {
	if ts.IsZero() {
		return fallback
	}
	return ts.Time
}
