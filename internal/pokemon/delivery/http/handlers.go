package http

import (
	"net/http"

	"pokedex-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List Pokémon
// @Description Cursor-paginated catalog ordered by pokedex number
// @Tags Pokemon
// @Produce json
// @Param afterId query int false "Pokedex number of the last item already seen"
// @Param limit query int false "Page size, clamped to [1,100] (default 10)"
// @Param includeMoves query bool false "Embed learnable moves in every node"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /pokemon [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "pokemon.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "pokemon.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, http.StatusOK, h.newListResp(o))
}

// @Summary Get Pokémon detail
// @Description Pokémon with types, abilities and moves
// @Tags Pokemon
// @Produce json
// @Param id path string true "Pokemon ID (UUID)"
// @Success 200 {object} pokemonResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /pokemon/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Detail(ctx, req.toDetailInput())
	if err != nil {
		h.l.Warnf(ctx, "pokemon.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, http.StatusOK, h.newPokemonResp(o))
}

// @Summary List learnable moves
// @Description Moves of one Pokémon ordered by learn level
// @Tags Pokemon
// @Produce json
// @Param id path string true "Pokemon ID (UUID)"
// @Success 200 {array} moveResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /pokemon/{id}/moves [get]
func (h *handler) ListMoves(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.ListMoves(ctx, req.toMovesInput())
	if err != nil {
		h.l.Warnf(ctx, "pokemon.delivery.http.ListMoves: usecase ListMoves failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, http.StatusOK, h.newMovesResp(o))
}

// @Summary Delete a Pokémon
// @Description Admin only. Removes the Pokémon and its type, ability and move links
// @Tags Pokemon
// @Security Bearer
// @Param id path string true "Pokemon ID (UUID)"
// @Success 204
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /pokemon/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDeleteRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.toDeleteInput()); err != nil {
		h.l.Warnf(ctx, "pokemon.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
