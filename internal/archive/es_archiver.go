package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/google/uuid"
	"github.com/mvelja/benchtab/internal/catalog"
)

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

// Archiver indexes fetched benchmark records into Elasticsearch so the
// dashboards linked from the records have a queryable source.
type Archiver struct {
	client    *elasticsearch.TypedClient
	indexName string
}

type document struct {
	ID         string              `json:"id"`
	FetchID    string              `json:"fetch_id"`
	Type       string              `json:"type"`
	Values     map[string]string   `json:"values"`
	Alarms     map[string][]string `json:"alarms"`
	ArchivedAt time.Time           `json:"archived_at"`
}

func NewArchiver(ctx context.Context, config ClientConfig) (*Archiver, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewTypedClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create Elasticsearch client: %w", err)
	}

	a := &Archiver{client: client, indexName: config.IndexName}
	if err := a.ensureIndex(ctx); err != nil {
		return nil, fmt.Errorf("ensure index exists: %w", err)
	}
	return a, nil
}

func (a *Archiver) ensureIndex(ctx context.Context) error {
	exists, err := a.client.Indices.Exists(a.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := a.client.Indices.Create(a.indexName).Do(ctx); err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	slog.Info("archive index created", "index", a.indexName)
	return nil
}

// ArchiveFetch bulk-indexes one committed fetch pass.
func (a *Archiver) ArchiveFetch(ctx context.Context, fetchID uuid.UUID, entries []catalog.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         a.indexName,
		Client:        a.client,
		NumWorkers:    2,
		FlushInterval: 10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create bulk indexer: %w", err)
	}

	archivedAt := time.Now().UTC()
	var failed int64

	for _, entry := range entries {
		doc := entryToDocument(entry, fetchID, archivedAt)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal archive document", "error", err, "type", doc.Type)
			failed++
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(docBytes),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed++
				if err != nil {
					slog.Error("bulk archive error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk archive rejected", "id", item.DocumentID, "reason", res.Error.Reason)
				}
			},
		})
		if err != nil {
			return fmt.Errorf("add document to bulk indexer: %w", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("flush bulk indexer: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("archive fetch %s: %d documents failed", fetchID, failed)
	}

	slog.Info("fetch archived", "fetch_id", fetchID, "index", a.indexName, "documents", len(entries))
	return nil
}

func entryToDocument(entry catalog.Entry, fetchID uuid.UUID, archivedAt time.Time) document {
	values := make(map[string]string, len(entry.Record))
	for h, v := range entry.Record {
		values[h] = v.String()
	}
	alarms := make(map[string][]string, len(entry.Alarms))
	for h, uris := range entry.Alarms {
		alarms[h] = uris
	}
	return document{
		ID:         uuid.New().String(),
		FetchID:    fetchID.String(),
		Type:       entry.Record.Type(),
		Values:     values,
		Alarms:     alarms,
		ArchivedAt: archivedAt,
	}
}
