// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

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

// RegisterRoutes mounts the character endpoints and the actor link sub-resource.
func (handler *Handler) RegisterRoutes(router chi.Router, writes func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listCharacters)
	router.Get("/{id}", handler.getCharacter)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(writes)

		editorRoute.Post("/", handler.createCharacter)
		editorRoute.Patch("/{id}", handler.updateCharacter)
		editorRoute.Delete("/{id}", handler.deleteCharacter)

		editorRoute.Post("/{id}/actors/{actorId}", handler.addActor)
		editorRoute.Delete("/{id}/actors/{actorId}", handler.removeActor)
	})
}

func (handler *Handler) listCharacters(writer http.ResponseWriter, request *http.Request) {
	list, err := requestutil.ListFilter(request, SortKeys)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actorID, err := requestutil.IntQuery(request, FieldActorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Name:    requestutil.StringQuery(request, FieldName),
		ActorID: actorID,
	}

	page, err := handler.service.ListCharacters(request.Context(), filter, list)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page)
}

func (handler *Handler) getCharacter(writer http.ResponseWriter, request *http.Request) {
	characterID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	character, err := handler.service.GetCharacter(request.Context(), characterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, character)
}

func (handler *Handler) createCharacter(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	character, err := handler.service.CreateCharacter(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, character)
}

func (handler *Handler) updateCharacter(writer http.ResponseWriter, request *http.Request) {
	characterID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	character, err := handler.service.UpdateCharacter(request.Context(), characterID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, character)
}

func (handler *Handler) deleteCharacter(writer http.ResponseWriter, request *http.Request) {
	characterID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCharacter(request.Context(), characterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) addActor(writer http.ResponseWriter, request *http.Request) {
	characterID, actorID, err := linkIDs(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	character, err := handler.service.AddActor(request.Context(), characterID, actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, character)
}

func (handler *Handler) removeActor(writer http.ResponseWriter, request *http.Request) {
	characterID, actorID, err := linkIDs(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	character, err := handler.service.RemoveActor(request.Context(), characterID, actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, character)
}

func linkIDs(request *http.Request) (int, int, error) {
	characterID, err := requestutil.ID(request, "id")
	if err != nil {
		return 0, 0, err
	}
	actorID, err := requestutil.ID(request, FieldActorID)
	if err != nil {
		return 0, 0, err
	}
	return characterID, actorID, nil
}
