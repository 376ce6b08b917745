package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/model"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/blob"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/kvstore"
)

// Retriever resolves a query to structure data, either directly from the
// key-value store or, for characters, through a pointer to a remote blob.
type Retriever struct {
	store    kvstore.Store
	fetcher  blob.Fetcher
	pointers *pointerCache
	tracer   trace.Tracer
}

// NewRetriever creates a new Retriever usecase. A nil store means the store
// credential is not configured; every request then fails with ErrConfigMissing.
func NewRetriever(store kvstore.Store, fetcher blob.Fetcher, cfg Config) *Retriever {
	r := &Retriever{
		store:   store,
		fetcher: fetcher,
		tracer:  otel.Tracer("structure/usecase"),
	}

	if cfg.PointerCacheTTL > 0 {
		r.pointers = newPointerCache(time.Duration(cfg.PointerCacheTTL) * time.Millisecond)
	}

	return r
}

// Retrieve returns the structure for q together with the HTTP status to serve.
func (r *Retriever) Retrieve(ctx context.Context, q model.Query) (*model.Structure, int, error) {
	category := q.Category()

	ctx, span := r.tracer.Start(ctx, "structure.retrieve",
		trace.WithAttributes(
			attribute.String("structure.category", string(category)),
			attribute.String("structure.id", q.ID),
		))
	defer span.End()

	s, status, err := r.retrieve(ctx, category, q.ID)
	span.SetAttributes(attribute.Int("http.status_code", status))
	if status == http.StatusInternalServerError {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("structure retrieval failed", "type", q.Type, "id", q.ID, "err", err)
	}

	return s, status, err
}

func (r *Retriever) retrieve(ctx context.Context, category model.Category, id string) (*model.Structure, int, error) {
	if r.store == nil {
		return nil, http.StatusInternalServerError, ErrConfigMissing
	}

	if category == model.CategoryChar {
		return r.retrieveChar(ctx, id)
	}

	key := model.GlobalKey
	if category == model.CategoryUnit {
		unitKey, ok := model.UnitKey(id)
		if !ok {
			return nil, http.StatusNotFound, ErrUnitUnsupported
		}
		key = unitKey
	}

	value, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	if model.IsFalsy(value) {
		return nil, http.StatusNotFound, ErrDataNotFound
	}

	return &model.Structure{Data: value, Cacheable: true}, http.StatusOK, nil
}

// retrieveChar resolves the blob pointer first and only then fetches the blob.
// Character data is never marked cacheable.
func (r *Retriever) retrieveChar(ctx context.Context, id string) (*model.Structure, int, error) {
	pointer, err := r.charPointer(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	if model.IsFalsy(pointer) {
		return nil, http.StatusNotFound, ErrCharPointerNotFound
	}

	var url string
	if err := json.Unmarshal(pointer, &url); err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("invalid char url pointer: %w", err)
	}

	body, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	var chars map[string]json.RawMessage
	if err := json.Unmarshal(body, &chars); err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if chars == nil {
		return nil, http.StatusInternalServerError, ErrCharBlobNotObject
	}

	data, ok := chars[id]
	if !ok || model.IsFalsy(data) {
		return nil, http.StatusNotFound, ErrCharDataMissing
	}

	return &model.Structure{Data: data}, http.StatusOK, nil
}

func (r *Retriever) charPointer(ctx context.Context) (json.RawMessage, error) {
	if r.pointers != nil {
		if v, ok := r.pointers.get(); ok {
			return v, nil
		}
	}

	v, err := r.store.Get(ctx, model.CharURLKey)
	if err != nil {
		return nil, err
	}

	if r.pointers != nil && !model.IsFalsy(v) {
		r.pointers.set(v)
	}

	return v, nil
}
