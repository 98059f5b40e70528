package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/labelgrid/royalty-engine/internal/config"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/repository"
)

type searchRepository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewSearchRepository(client *opensearch.Client, config *config.OpenSearchConfig) repository.SearchRepository {
	return &searchRepository{
		client: client,
		config: config,
	}
}

func (r *searchRepository) IndexWork(ctx context.Context, doc *domain.WorkDocument) error {
	indexName := r.config.GetIndexName(doc.TenantID)

	// Ensure index exists
	if err := r.CreateIndex(ctx, doc.TenantID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal work document: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: doc.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *searchRepository) SearchWorks(ctx context.Context, filter *domain.WorkSearchFilter) ([]domain.WorkDocument, error) {
	query := r.buildSearchQuery(filter)

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName(filter.TenantID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		// A tenant with no indexed works has no index yet
		if res.StatusCode == 404 {
			return []domain.WorkDocument{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.WorkDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var docs []domain.WorkDocument
	for _, hit := range searchResult.Hits.Hits {
		docs = append(docs, hit.Source)
	}

	return docs, nil
}

// buildSearchQuery constructs the OpenSearch query based on the filter
func (r *searchRepository) buildSearchQuery(filter *domain.WorkSearchFilter) map[string]any {
	must := make([]map[string]any, 0)

	// Full-text match across title and artist name
	if filter.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  filter.Query,
				"fields": []string{"title", "artist_name"},
			},
		})
	}

	// Exact match filters (keyword fields)
	exactMatches := map[string]string{
		"genre":               filter.Genre,
		"distribution_status": filter.Status,
	}
	for field, value := range exactMatches {
		if value != "" {
			must = append(must, createTermQuery(field, value))
		}
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}

	if filter.Limit > 0 {
		query["size"] = filter.Limit
		query["from"] = filter.Offset
	}

	// Most recent first
	query["sort"] = []map[string]any{
		{
			"created_at": map[string]any{
				"order": "desc",
			},
		},
	}

	return query
}

func createTermQuery(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: value,
		},
	}
}

// getIndexMapping returns the mapping for the work catalog index
func (r *searchRepository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"tenant_id": { "type": "keyword" },
				"artist_id": { "type": "keyword" },
				"artist_name": { "type": "text", "fields": { "raw": { "type": "keyword" } } },
				"title": { "type": "text", "fields": { "raw": { "type": "keyword" } } },
				"genre": { "type": "keyword" },
				"duration_seconds": { "type": "integer" },
				"distribution_status": { "type": "keyword" },
				"created_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *searchRepository) CreateIndex(ctx context.Context, tenantID string) error {
	indexName := r.config.GetIndexName(tenantID)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil // Index already exists
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}

func (r *searchRepository) DeleteIndex(ctx context.Context, tenantID string) error {
	indexName := r.config.GetIndexName(tenantID)

	delete := opensearchapi.IndicesDeleteRequest{
		Index: []string{indexName},
	}

	res, err := delete.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error deleting index: %s", res.String())
	}

	return nil
}

func (r *searchRepository) DeleteWork(ctx context.Context, tenantID, workID string) error {
	indexName := r.config.GetIndexName(tenantID)

	req := opensearchapi.DeleteRequest{
		Index:      indexName,
		DocumentID: workID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error deleting document: %s", res.String())
	}

	return nil
}
