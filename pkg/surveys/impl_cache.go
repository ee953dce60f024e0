/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveys

import (
	"fmt"

	lruPkg "github.com/hashicorp/golang-lru/v2"
	"github.com/untillpro/goutils/logger"

	"github.com/surveta/surveta/pkg/surveydef"
)

// # Implements:
//   - ISurveysProvider
type cachedProvider struct {
	load  LoadFunc
	cache *lruPkg.Cache[string, *surveydef.Scheme]
}

func newCachedProvider(load LoadFunc, size int) *cachedProvider {
	cache, err := lruPkg.New[string, *surveydef.Scheme](size)
	if err != nil {
		panic("failed to create LRU cache: " + err.Error())
	}
	return &cachedProvider{load: load, cache: cache}
}

func (p *cachedProvider) Survey(name string) (*surveydef.Scheme, error) {
	k := foldName(name)
	if scheme, ok := p.cache.Get(k); ok {
		logger.Verbose(fmt.Sprintf("survey «%s»: cache hit", name))
		return scheme, nil
	}
	scheme, err := p.load(name)
	if err != nil {
		// load failures are not cached
		return nil, err
	}
	p.cache.Add(k, scheme)
	logger.Verbose(fmt.Sprintf("survey «%s»: loaded", name))
	return scheme, nil
}
