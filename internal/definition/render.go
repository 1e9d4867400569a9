package definition

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Konsultn-Engineering/soql/cache"
	"github.com/Konsultn-Engineering/soql/query"
)

// Result is one rendered query.
type Result struct {
	Name string `yaml:"name"`
	SOQL string `yaml:"soql"`
}

// Renderer turns definitions into SOQL through one shared render cache.
type Renderer struct {
	qcache cache.QueryCache
	logger zerolog.Logger
}

func NewRenderer(cacheSize int, logger zerolog.Logger) (*Renderer, error) {
	c, err := cache.NewQueryCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{qcache: c, logger: logger}, nil
}

// Render renders one query.
func (r *Renderer) Render(q *Query) (string, error) {
	qb := query.New(query.WithCache(r.qcache), query.WithLogger(r.logger))
	defer qb.Release()

	if err := q.Apply(qb); err != nil {
		return "", errors.Wrapf(err, "query %q", q.Name)
	}
	soql, err := qb.ToSOQL()
	if err != nil {
		return "", errors.Wrapf(err, "query %q", q.Name)
	}
	return soql, nil
}

// RenderAll renders every query in file order and stops at the first error.
func (r *Renderer) RenderAll(file *File) ([]Result, error) {
	results := make([]Result, 0, len(file.Queries))
	for _, q := range file.Queries {
		soql, err := r.Render(q)
		if err != nil {
			return nil, err
		}
		r.logger.Debug().Str("name", q.Name).Str("object", q.Object).Msg("query rendered")
		results = append(results, Result{Name: q.Name, SOQL: soql})
	}
	r.logger.Info().Int("queries", len(results)).Int("cached", r.qcache.Len()).Msg("render complete")
	return results, nil
}
