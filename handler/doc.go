// Package handler is the HTTP host runtime: typed handlers, request binding
// and validation, and the translation of errors into JSON error envelopes.
//
//	type CreateItem struct {
//		Code string `json:"code" regex:"(ok|OK)"`
//	}
//
//	create := func(ctx handler.Context, req CreateItem) handler.Response {
//		return handler.JSON(req, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	mappers := handler.DefaultMappers(handler.NewErrorResponseBuilder(log))
//	r.Post("/items", handler.Wrap(create,
//		handler.WithBinders[handler.Context, CreateItem](binder.JSON()),
//		handler.WithValidator[handler.Context, CreateItem](validator.New()),
//		handler.WithErrorHandler[handler.Context, CreateItem](mappers.ErrorHandler()),
//	))
//
// # Errors
//
// Errors reaching the error handler are dispatched by type through Mappers.
// Every mapper ends in ErrorResponseBuilder, which renders
//
//	{"id": "...", "status": 503, "code": "E-REST-SERVER#599", "message": "..."}
//
// with the response status equal to the error's status, a fresh correlation
// id, a code from errorcode and a message from the request locale's catalog.
// Each error produces exactly one log record: error level for 5xx, warn for
// 4xx. Errors nobody claimed are unclassified 500s.
package handler
