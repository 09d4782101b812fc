package main

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	playground "github.com/go-playground/validator/v10"

	"github.com/jse-go/restkit/handler"
	"github.com/jse-go/restkit/pkg/validator"
)

var errUpstream = errors.New("upstream dependency failed")

type item struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type createItemRequest struct {
	Code  string  `json:"code" regex:"[A-Z]{2}-[0-9]{4}"`
	Name  string  `json:"name" regex:"\\S.{0,63}" message:"must start with a visible character"`
	Phone *string `json:"phone" regex:"\\+?[0-9]{7,15}" groups:"contact"`
}

type contactRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"regexp=\\+?[0-9]{70x2C15}"`
}

type itemStore struct {
	mu    sync.RWMutex
	items map[string]item
}

func newItemStore() *itemStore {
	return &itemStore{items: make(map[string]item)}
}

func (s *itemStore) add(it item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[it.Code]; ok {
		return false
	}
	s.items[it.Code] = it
	return true
}

func (s *itemStore) get(code string) (item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[code]
	return it, ok
}

func (s *itemStore) list() []item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b item) int { return strings.Compare(a.Code, b.Code) })
	return out
}

func createItem(store *itemStore) handler.HandlerFunc[handler.Context, createItemRequest] {
	return func(ctx handler.Context, req createItemRequest) handler.Response {
		it := item{Code: req.Code, Name: req.Name}
		if req.Phone != nil {
			it.Phone = *req.Phone
		}
		if !store.add(it) {
			return handler.Error(handler.ErrConflict)
		}
		return handler.JSON(it, handler.WithJSONStatus(http.StatusCreated))
	}
}

func listItems(store *itemStore) handler.HandlerFunc[handler.Context, struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		items := store.list()
		return handler.JSON(items, handler.WithJSONMeta(map[string]any{"total": len(items)}))
	}
}

func getItem(store *itemStore) handler.HandlerFunc[handler.Context, struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		it, ok := store.get(chi.URLParam(ctx.Request(), "code"))
		if !ok {
			return handler.Error(handler.ErrNotFound)
		}
		return handler.JSON(it)
	}
}

// checkContact validates with go-playground tags and reports failures in
// the same shape as the regex engine.
func checkContact(v *playground.Validate, opts ...validator.RegexOption) handler.HandlerFunc[handler.Context, contactRequest] {
	return func(ctx handler.Context, req contactRequest) handler.Response {
		if err := v.Struct(req); err != nil {
			return handler.Error(validator.FromPlayground(err, ctx.Locale(), opts...))
		}
		return handler.Empty()
	}
}

// failWith answers with a classified server error for the status in the
// path, which is how upstream failures surface to clients.
func failWith() handler.HandlerFunc[handler.Context, struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		status, err := strconv.Atoi(chi.URLParam(ctx.Request(), "status"))
		if err != nil {
			return handler.Error(handler.ErrBadRequest.Wrap(err))
		}
		return handler.Error(handler.NewServerError(status, fmt.Errorf("%w: simulated %d", errUpstream, status)))
	}
}
