// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package season

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/kaamelott/internal/platform/request"
	"github.com/taibuivan/kaamelott/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the season endpoints. writes guards every mutating route.
func (handler *Handler) RegisterRoutes(router chi.Router, writes func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listSeasons)
	router.Get("/{id}", handler.getSeason)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(writes)

		editorRoute.Post("/", handler.createSeason)
		editorRoute.Patch("/{id}", handler.updateSeason)
		editorRoute.Delete("/{id}", handler.deleteSeason)
	})
}

func (handler *Handler) listSeasons(writer http.ResponseWriter, request *http.Request) {
	list, err := requestutil.ListFilter(request, SortKeys)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	number, err := requestutil.IntQuery(request, FieldNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	showID, err := requestutil.IntQuery(request, FieldShowID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Name:   requestutil.StringQuery(request, FieldName),
		Number: number,
		ShowID: showID,
	}

	page, err := handler.service.ListSeasons(request.Context(), filter, list)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page)
}

func (handler *Handler) getSeason(writer http.ResponseWriter, request *http.Request) {
	seasonID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	season, err := handler.service.GetSeason(request.Context(), seasonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, season)
}

func (handler *Handler) createSeason(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	season, err := handler.service.CreateSeason(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, season)
}

func (handler *Handler) updateSeason(writer http.ResponseWriter, request *http.Request) {
	seasonID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	season, err := handler.service.UpdateSeason(request.Context(), seasonID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, season)
}

func (handler *Handler) deleteSeason(writer http.ResponseWriter, request *http.Request) {
	seasonID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSeason(request.Context(), seasonID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
