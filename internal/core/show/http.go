// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

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

// RegisterRoutes mounts the show endpoints. writes guards every mutating route.
func (handler *Handler) RegisterRoutes(router chi.Router, writes func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listShows)
	router.Get("/{id}", handler.getShow)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(writes)

		editorRoute.Post("/", handler.createShow)
		editorRoute.Patch("/{id}", handler.updateShow)
		editorRoute.Delete("/{id}", handler.deleteShow)
	})
}

func (handler *Handler) listShows(writer http.ResponseWriter, request *http.Request) {
	list, err := requestutil.ListFilter(request, SortKeys)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Name: requestutil.StringQuery(request, FieldName),
		Slug: requestutil.StringQuery(request, FieldSlug),
	}

	page, err := handler.service.ListShows(request.Context(), filter, list)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page)
}

func (handler *Handler) getShow(writer http.ResponseWriter, request *http.Request) {
	showID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	show, err := handler.service.GetShow(request.Context(), showID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, show)
}

func (handler *Handler) createShow(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	show, err := handler.service.CreateShow(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, show)
}

func (handler *Handler) updateShow(writer http.ResponseWriter, request *http.Request) {
	showID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	show, err := handler.service.UpdateShow(request.Context(), showID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, show)
}

func (handler *Handler) deleteShow(writer http.ResponseWriter, request *http.Request) {
	showID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteShow(request.Context(), showID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
