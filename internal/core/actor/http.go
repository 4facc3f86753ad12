// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package actor

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

// RegisterRoutes mounts the actor endpoints. writes guards every mutating route.
func (handler *Handler) RegisterRoutes(router chi.Router, writes func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listActors)
	router.Get("/{id}", handler.getActor)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(writes)

		editorRoute.Post("/", handler.createActor)
		editorRoute.Patch("/{id}", handler.updateActor)
		editorRoute.Delete("/{id}", handler.deleteActor)
	})
}

func (handler *Handler) listActors(writer http.ResponseWriter, request *http.Request) {
	list, err := requestutil.ListFilter(request, SortKeys)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		FirstName: requestutil.StringQuery(request, FieldFirstName),
		LastName:  requestutil.StringQuery(request, FieldLastName),
	}

	page, err := handler.service.ListActors(request.Context(), filter, list)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page)
}

func (handler *Handler) getActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor, err := handler.service.GetActor(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, actor)
}

func (handler *Handler) createActor(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor, err := handler.service.CreateActor(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, actor)
}

func (handler *Handler) updateActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor, err := handler.service.UpdateActor(request.Context(), actorID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, actor)
}

func (handler *Handler) deleteActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteActor(request.Context(), actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
