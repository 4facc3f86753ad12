// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package episode

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

// RegisterRoutes mounts the episode endpoints. writes guards every mutating route.
func (handler *Handler) RegisterRoutes(router chi.Router, writes func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listEpisodes)
	router.Get("/{id}", handler.getEpisode)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(writes)

		editorRoute.Post("/", handler.createEpisode)
		editorRoute.Patch("/{id}", handler.updateEpisode)
		editorRoute.Delete("/{id}", handler.deleteEpisode)
	})
}

func (handler *Handler) listEpisodes(writer http.ResponseWriter, request *http.Request) {
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
	seasonID, err := requestutil.IntQuery(request, FieldSeasonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Name:     requestutil.StringQuery(request, FieldName),
		Number:   number,
		SeasonID: seasonID,
	}

	page, err := handler.service.ListEpisodes(request.Context(), filter, list)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page)
}

func (handler *Handler) getEpisode(writer http.ResponseWriter, request *http.Request) {
	episodeID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	episode, err := handler.service.GetEpisode(request.Context(), episodeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, episode)
}

func (handler *Handler) createEpisode(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	episode, err := handler.service.CreateEpisode(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, episode)
}

func (handler *Handler) updateEpisode(writer http.ResponseWriter, request *http.Request) {
	episodeID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	episode, err := handler.service.UpdateEpisode(request.Context(), episodeID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, episode)
}

func (handler *Handler) deleteEpisode(writer http.ResponseWriter, request *http.Request) {
	episodeID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteEpisode(request.Context(), episodeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
