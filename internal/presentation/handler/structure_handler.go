package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/application/usecase/abstraction"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/dto"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/model"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/presentation"
)

type StructureHandler struct {
	retriever abstraction.Retriever
}

func NewStructureHandler(retriever abstraction.Retriever) *StructureHandler {
	return &StructureHandler{
		retriever: retriever,
	}
}

// HandleGet handles GET /api/structure?type=<type>&id=<id> requests.
func (h *StructureHandler) HandleGet(c echo.Context) error {
	q := model.Query{
		Type: c.QueryParam(presentation.TypeParam),
		ID:   c.QueryParam(presentation.IDParam),
	}

	s, status, err := h.retriever.Retrieve(c.Request().Context(), q)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
	}

	if s.Cacheable {
		c.Response().Header().Set(presentation.CacheControl, presentation.CachePolicy)
	}

	return c.JSONBlob(http.StatusOK, s.Data)
}
