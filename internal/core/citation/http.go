// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

import (
	"context"
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

// RegisterRoutes mounts the citation endpoints and the actor and author link sub-resources.
func (handler *Handler) RegisterRoutes(router chi.Router, writes func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listCitations)
	router.Get("/{id}", handler.getCitation)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(writes)

		editorRoute.Post("/", handler.createCitation)
		editorRoute.Patch("/{id}", handler.updateCitation)
		editorRoute.Delete("/{id}", handler.deleteCitation)

		editorRoute.Post("/{id}/actors/{actorId}", handler.changeLink(FieldActorID, handler.service.AddActor))
		editorRoute.Delete("/{id}/actors/{actorId}", handler.changeLink(FieldActorID, handler.service.RemoveActor))
		editorRoute.Post("/{id}/authors/{authorId}", handler.changeLink(FieldAuthorID, handler.service.AddAuthor))
		editorRoute.Delete("/{id}/authors/{authorId}", handler.changeLink(FieldAuthorID, handler.service.RemoveAuthor))
	})
}

func (handler *Handler) listCitations(writer http.ResponseWriter, request *http.Request) {
	list, err := requestutil.ListFilter(request, SortKeys)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	characterID, err := requestutil.IntQuery(request, FieldCharacterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	episodeID, err := requestutil.IntQuery(request, FieldEpisodeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	movieID, err := requestutil.IntQuery(request, FieldMovieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Text:        requestutil.StringQuery(request, FieldText),
		CharacterID: characterID,
		EpisodeID:   episodeID,
		MovieID:     movieID,
	}

	page, err := handler.service.ListCitations(request.Context(), filter, list)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page)
}

func (handler *Handler) getCitation(writer http.ResponseWriter, request *http.Request) {
	citationID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	citation, err := handler.service.GetCitation(request.Context(), citationID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, citation)
}

func (handler *Handler) createCitation(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	citation, err := handler.service.CreateCitation(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, citation)
}

func (handler *Handler) updateCitation(writer http.ResponseWriter, request *http.Request) {
	citationID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	citation, err := handler.service.UpdateCitation(request.Context(), citationID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, citation)
}

func (handler *Handler) deleteCitation(writer http.ResponseWriter, request *http.Request) {
	citationID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCitation(request.Context(), citationID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// changeLink adapts a link operation keyed by the URL parameter param.
func (handler *Handler) changeLink(param string, change func(ctx context.Context, id, relatedID int) (*Citation, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		citationID, err := requestutil.ID(request, "id")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		relatedID, err := requestutil.ID(request, param)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		citation, err := change(request.Context(), citationID, relatedID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, citation)
	}
}
