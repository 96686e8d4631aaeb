/*
Copyright © 2019 the HazPlume authors.
This file is part of HazPlume.

HazPlume is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

HazPlume is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with HazPlume.  If not, see <http://www.gnu.org/licenses/>.
*/

package hazplumeutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hazplume"
	"github.com/spatialmodel/hazplume/footprint"
	"github.com/spatialmodel/hazplume/internal/hash"
)

// Batch evaluates many scenarios in parallel. Identical scenarios are
// only evaluated once.
type Batch struct {
	projector *footprint.Projector
	cache     *requestcache.Cache
	log       logrus.FieldLogger
}

// NewBatch creates a batch evaluator that uses up to workers goroutines
// and remembers up to cacheSize results.
func NewBatch(p *footprint.Projector, workers, cacheSize int, log logrus.FieldLogger) *Batch {
	if workers < 1 {
		workers = 1
	}
	if cacheSize < 1 {
		cacheSize = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	b := &Batch{projector: p, log: log}
	b.cache = requestcache.NewCache(b.process, workers,
		requestcache.Deduplicate(), requestcache.Memory(cacheSize))
	return b
}

type batchRequest struct {
	name     string
	scenario *hazplume.Scenario
}

func (b *Batch) process(ctx context.Context, payload interface{}) (interface{}, error) {
	req := payload.(batchRequest)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	b.log.WithFields(logrus.Fields{
		"scenario": req.name,
		"chemical": req.scenario.Chemical,
	}).Debug("hazplumeutil: evaluating scenario")
	return Evaluate(b.projector, req.name, req.scenario), nil
}

// Evaluate evaluates the scenarios in configs and returns the results in
// the same order.
func (b *Batch) Evaluate(ctx context.Context, configs []ScenarioConfig) ([]*Result, error) {
	scenarios := make([]*hazplume.Scenario, len(configs))
	for i, c := range configs {
		s, err := c.Scenario()
		if err != nil {
			return nil, err
		}
		scenarios[i] = s
	}

	results := make([]*Result, len(configs))
	errs := make([]error, len(configs))
	var wg sync.WaitGroup
	wg.Add(len(configs))
	for i := range configs {
		go func(i int) {
			defer wg.Done()
			req := b.cache.NewRequest(ctx, batchRequest{name: configs[i].Name, scenario: scenarios[i]},
				hash.Key(scenarios[i]))
			r, err := req.Result()
			if err != nil {
				errs[i] = fmt.Errorf("hazplumeutil: scenario %q: %v", configs[i].Name, err)
				return
			}
			// Cached results may come from a scenario with a different name.
			res := *r.(*Result)
			res.Name = configs[i].Name
			results[i] = &res
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Requests returns the number of requests received by the deduplication
// stage, the memory cache, and the evaluator, in that order.
func (b *Batch) Requests() []int {
	return b.cache.Requests()
}
