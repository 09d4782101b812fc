package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jse-go/restkit/handler"
	"github.com/jse-go/restkit/pkg/binder"
	"github.com/jse-go/restkit/pkg/errorcode"
	"github.com/jse-go/restkit/pkg/httpserver"
	"github.com/jse-go/restkit/pkg/i18n"
	"github.com/jse-go/restkit/pkg/requestid"
	"github.com/jse-go/restkit/pkg/validator"
)

type routerDeps struct {
	log       *slog.Logger
	catalog   *i18n.Catalog
	codes     *errorcode.Table
	languages []string
	store     *itemStore
}

func newRouter(d routerDeps) (http.Handler, error) {
	builder := handler.NewErrorResponseBuilder(d.log,
		handler.WithCodes(d.codes),
		handler.WithMessages(d.catalog),
	)
	mappers := handler.DefaultMappers(builder)
	onError := mappers.ErrorHandler()

	structs := validator.New(validator.WithCatalog(d.catalog))
	messages := validator.WithMessages(d.catalog)
	contacts, err := validator.NewPlayground(messages)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(d.languages)))
	r.Use(handler.Recover(mappers))

	r.NotFound(handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[handler.Context, struct{}](onError)))
	r.MethodNotAllowed(handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.Error(handler.ErrMethodNotAllowed)
	}, handler.WithErrorHandler[handler.Context, struct{}](onError)))

	r.Get("/healthz", httpserver.HealthCheckHandler(builder))

	r.Route("/items", func(r chi.Router) {
		r.Get("/", handler.Wrap(listItems(d.store),
			handler.WithErrorHandler[handler.Context, struct{}](onError)))
		r.Post("/", handler.Wrap(createItem(d.store),
			handler.WithBinders[handler.Context, createItemRequest](binder.JSON()),
			handler.WithValidator[handler.Context, createItemRequest](structs, validator.DefaultGroup, "contact"),
			handler.WithErrorHandler[handler.Context, createItemRequest](onError)))
		r.Get("/{code}", handler.Wrap(getItem(d.store),
			handler.WithErrorHandler[handler.Context, struct{}](onError)))
	})

	r.Post("/contacts", handler.Wrap(checkContact(contacts, messages),
		handler.WithBinders[handler.Context, contactRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, contactRequest](onError)))

	r.Get("/fail/{status}", handler.Wrap(failWith(),
		handler.WithErrorHandler[handler.Context, struct{}](onError)))
	r.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("demo panic")
	})

	return r, nil
}
