package schema

import (
	"errors"
	"fmt"
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidModel is returned when a value that is not a struct (or pointer
// to struct) is introspected.
var ErrInvalidModel = errors.New("invalid model")

// Context introspects structs into EntityMeta and caches the results.
type Context struct {
	namingStrategy NamingStrategy
	tagName        string
	cacheSize      int

	tags        *TagParser
	entityCache *lru.Cache[reflect.Type, *EntityMeta]
}

type Option func(*Context)

// WithNamingStrategy sets the naming strategy for untagged fields and objects.
func WithNamingStrategy(strategy NamingStrategy) Option {
	return func(ctx *Context) { ctx.namingStrategy = strategy }
}

// WithTagName sets the struct tag name to read.
func WithTagName(tagName string) Option {
	return func(ctx *Context) { ctx.tagName = tagName }
}

// WithCacheSize sets the LRU cache size for struct metadata.
func WithCacheSize(size int) Option {
	return func(ctx *Context) { ctx.cacheSize = size }
}

// New creates a schema context. Defaults: DefaultNamingStrategy, the soql
// tag and 256 cached types.
func New(options ...Option) *Context {
	ctx := &Context{
		namingStrategy: DefaultNamingStrategy(),
		tagName:        DefaultTagName,
		cacheSize:      256,
	}

	for _, opt := range options {
		opt(ctx)
	}

	if ctx.cacheSize <= 0 {
		ctx.cacheSize = 1
	}
	// size is positive, lru.New only fails otherwise
	ctx.entityCache, _ = lru.New[reflect.Type, *EntityMeta](ctx.cacheSize)
	ctx.tags = NewTagParser(ctx.tagName, ctx.namingStrategy)

	return ctx
}

var defaultContext = New()

// Default returns the package level context used by Introspect.
func Default() *Context {
	return defaultContext
}

// Introspect describes t with the default context.
func Introspect(t reflect.Type) (*EntityMeta, error) {
	return defaultContext.Introspect(t)
}

// IntrospectValue is Introspect for a model value such as Account{} or &Account{}.
func (c *Context) IntrospectValue(model any) (*EntityMeta, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidModel)
	}
	return c.Introspect(reflect.TypeOf(model))
}

// Introspect returns the selectable fields and sObject name of a struct
// type. Pointers are dereferenced, unexported fields skipped and embedded
// structs flattened in declaration order.
func (c *Context) Introspect(t reflect.Type) (*EntityMeta, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrInvalidModel)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidModel, t.Kind())
	}

	if meta, ok := c.entityCache.Get(t); ok {
		return meta, nil
	}

	meta := &EntityMeta{
		Type:       t,
		ObjectName: objectNameOf(t, c.namingStrategy),
	}
	if err := c.collectFields(t, nil, meta); err != nil {
		return nil, fmt.Errorf("introspect %s: %w", t.Name(), err)
	}

	c.entityCache.Add(t, meta)
	return meta, nil
}

func (c *Context) collectFields(t reflect.Type, parent []int, meta *EntityMeta) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		index := append(append([]int(nil), parent...), i)

		tag, err := c.tags.ParseTag(f.Name, f.Tag)
		if err != nil {
			return err
		}
		if tag.Skip {
			continue
		}

		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			_, tagged := f.Tag.Lookup(c.tagName)
			if ft.Kind() == reflect.Struct && !tagged {
				if err := c.collectFields(ft, index, meta); err != nil {
					return err
				}
				continue
			}
		}

		if !f.IsExported() {
			continue
		}

		meta.Fields = append(meta.Fields, &FieldMeta{
			GoName: f.Name,
			Name:   tag.FieldName,
			Index:  index,
			Tag:    tag,
		})
	}
	return nil
}
