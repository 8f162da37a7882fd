package http

import (
	"strconv"

	"pokedex-srv/internal/model"
	"pokedex-srv/pkg/paginator"
	"pokedex-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	req := listReq{Limit: paginator.DefaultLimit}

	if raw, ok := c.GetQuery("afterId"); ok && raw != "" {
		after, err := paginator.DecodeCursor(raw)
		if err != nil {
			return req, errInvalidCursor
		}
		req.AfterID = &after
	}

	if raw, ok := c.GetQuery("limit"); ok && raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return req, errInvalidLimit
		}
		req.Limit = limit
	}

	if raw, ok := c.GetQuery("includeMoves"); ok && raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return req, errInvalidFlag
		}
		req.IncludeMoves = include
	}

	return req, nil
}

func (h *handler) processIDRequest(c *gin.Context) (idReq, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return idReq{}, errInvalidID
	}
	return idReq{ID: id}, nil
}

// processDeleteRequest returns a nil scope for anonymous requests.
func (h *handler) processDeleteRequest(c *gin.Context) (idReq, *model.Scope, error) {
	req, err := h.processIDRequest(c)
	if err != nil {
		return req, nil, err
	}

	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return req, nil, nil
	}
	return req, &sc, nil
}
