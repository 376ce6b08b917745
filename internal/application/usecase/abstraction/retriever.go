package abstraction

import (
	"context"

	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/model"
)

// Retriever defines the interface for resolving structure data.
type Retriever interface {
	Retrieve(ctx context.Context, q model.Query) (*model.Structure, int, error)
}
