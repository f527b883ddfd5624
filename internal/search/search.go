package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"

	"github.com/mgalihpp/inventory-dashboard/internal/models"
)

// ErrDisabled is returned by indexes that cannot answer queries.
var ErrDisabled = errors.New("search index disabled")

type Index interface {
	Put(ctx context.Context, p models.Product) error
	Remove(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, from, size int) (int64, []uuid.UUID, error)
}

type Config struct {
	URL      string
	User     string
	Password string
	Index    string
}

type ProductIndex struct {
	ES    *elasticsearch.Client
	Index string
}

type productDoc struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func NewClient(cfg Config) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.User,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch info: %s: %s", res.Status(), body)
	}

	return client, nil
}

func NewProductIndex(es *elasticsearch.Client, index string) *ProductIndex {
	return &ProductIndex{ES: es, Index: index}
}

func (x *ProductIndex) Put(ctx context.Context, p models.Product) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(productDoc{
		ID:       p.ID.String(),
		Name:     p.Name,
		Category: string(p.Category),
		Status:   string(p.Status),
		Price:    p.Price,
		Quantity: p.Quantity,
	}); err != nil {
		return err
	}

	res, err := x.ES.Index(x.Index, &buf,
		x.ES.Index.WithContext(ctx),
		x.ES.Index.WithDocumentID(p.ID.String()),
	)
	if err != nil {
		return fmt.Errorf("index product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index product: %s", res.Status())
	}
	return nil
}

func (x *ProductIndex) Remove(ctx context.Context, id uuid.UUID) error {
	res, err := x.ES.Delete(x.Index, id.String(), x.ES.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("remove product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("remove product: %s", res.Status())
	}
	return nil
}

func (x *ProductIndex) Search(ctx context.Context, query string, from, size int) (int64, []uuid.UUID, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "category"},
				"fuzziness": "AUTO",
			},
		},
		"_source": []string{"id"},
		"from":    from,
		"size":    size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, err
	}

	res, err := x.ES.Search(
		x.ES.Search.WithContext(ctx),
		x.ES.Search.WithIndex(x.Index),
		x.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search products: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search products: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	ids := make([]uuid.UUID, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return r.Hits.Total.Value, ids, nil
}

type Nop struct{}

func (Nop) Put(context.Context, models.Product) error { return nil }
func (Nop) Remove(context.Context, uuid.UUID) error   { return nil }
func (Nop) Search(context.Context, string, int, int) (int64, []uuid.UUID, error) {
	return 0, nil, ErrDisabled
}
