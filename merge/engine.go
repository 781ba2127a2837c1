package merge

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sebieire/csscade/css"
)

// Options configures an Engine. Zero values select the defaults (smart
// shorthand handling, match importance handling).
type Options struct {
	Shorthand ShorthandStrategy
	Important ImportantStrategy
}

// Engine merges a source property set with an override set, expanding
// shorthands to longhand granularity, resolving !important conflicts and
// recombining complete groups back into shorthands.
//
// An Engine is stateless between calls and safe for concurrent use.
type Engine struct {
	cat  *Catalog
	exp  *Expander
	rec  *Recombiner
	log  *zap.Logger
	opts Options
}

// NewEngine creates a merge engine with the default catalog.
func NewEngine(log *zap.Logger, opts Options) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("merge-engine")
	if opts.Shorthand == "" {
		opts.Shorthand = ShorthandSmart
	}
	if opts.Important == "" {
		opts.Important = ImportantMatch
	}
	cat := DefaultCatalog()
	return &Engine{
		cat:  cat,
		exp:  NewExpander(cat, log),
		rec:  NewRecombiner(cat),
		log:  log,
		opts: opts,
	}
}

// Result is the outcome of one merge call: the final property set plus
// informational and warning diagnostics accumulated along the way.
type Result struct {
	Properties *css.PropertySet
	Info       []string
	Warnings   []string
}

// session is the ephemeral per-call state: strategy in effect and message
// accumulators. It never outlives a single Merge call.
type session struct {
	important ImportantStrategy
	shorthand ShorthandStrategy
	info      []string
	warnings  []string
}

func (s *session) infof(format string, args ...any) {
	s.info = append(s.info, fmt.Sprintf(format, args...))
}

func (s *session) warnf(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

// Merge merges override into source using the engine's configured
// strategies. Neither input is mutated; nil inputs are treated as empty
// sets. Merge never fails - malformed values degrade to unexpanded
// passthrough with a warning.
func (e *Engine) Merge(source, override *css.PropertySet) Result {
	return e.MergeWith(source, override, e.opts.Important)
}

// MergeWith is Merge with the importance strategy chosen per call. An
// unknown strategy produces a warning and falls back to match.
func (e *Engine) MergeWith(source, override *css.PropertySet, strategy ImportantStrategy) Result {
	s := &session{important: strategy, shorthand: e.opts.Shorthand}

	if _, ok := ParseImportantStrategy(string(strategy)); !ok {
		s.warnf("Unknown important strategy '%s', using 'match'", string(strategy))
		s.important = ImportantMatch
	}

	if source == nil {
		source = css.NewPropertySet()
	}
	if override == nil {
		override = css.NewPropertySet()
	}

	// Expanding: both sides independently, at longhand granularity.
	working := e.expandSet(source, s)
	overrideExp := e.expandSet(override, s)

	// Merging: override entries replace source entries name by name.
	for _, prop := range overrideExp.Properties() {
		existing, found := working.Get(prop.Name)

		if s.important == ImportantRespect && found && existing.Important {
			s.infof("Property '%s' has !important and 'respect' mode is active - not overriding", prop.Name)
			continue
		}

		var original *css.Property
		if found {
			original = &existing
		}
		working.Set(resolveImportant(original, prop, s.important, s))
	}

	// Recombining: collapse complete uniform groups back into shorthands.
	if s.shorthand != ShorthandCascade {
		e.recombineSet(working)
	}

	e.log.Debug("merged properties",
		zap.Int("source", source.Len()),
		zap.Int("override", override.Len()),
		zap.Int("result", working.Len()),
		zap.Int("warnings", len(s.warnings)))

	return Result{Properties: working, Info: s.info, Warnings: s.warnings}
}

// expandSet expands every eligible shorthand of the input in place,
// preserving declaration order: expanded longhands take the position of
// their shorthand.
func (e *Engine) expandSet(in *css.PropertySet, s *session) *css.PropertySet {
	out := css.NewPropertySet()
	for _, prop := range in.Properties() {
		if !e.shouldExpand(prop.Name, s.shorthand) {
			out.Set(prop)
			continue
		}
		expanded, warnings := e.exp.Expand(prop)
		s.warnings = append(s.warnings, warnings...)
		for _, lp := range expanded {
			out.Set(lp)
		}
	}
	return out
}

// shouldExpand applies the shorthand strategy: cascade expands nothing,
// smart expands only the lossless box-model families, expand covers every
// group with a distribution rule.
func (e *Engine) shouldExpand(name string, strategy ShorthandStrategy) bool {
	switch strategy {
	case ShorthandCascade:
		return false
	case ShorthandSmart:
		return name == "margin" || name == "padding" ||
			strings.HasPrefix(name, "margin-") || strings.HasPrefix(name, "padding-")
	default: // ShorthandExpand
		dist, ok := e.cat.distributionOf(name)
		return ok && dist != distOpaque
	}
}

// recombineSet walks the recombinable groups in priority order and replaces
// each complete uniform group with its shorthand, keeping the position of
// the group's first longhand.
func (e *Engine) recombineSet(set *css.PropertySet) {
	for _, shorthand := range recombinable {
		combined, ok := e.rec.Recombine(shorthand, set)
		if !ok {
			continue
		}
		longhands := e.cat.LonghandsOf(shorthand)
		first := firstPresent(set, longhands)
		set.Replace(first, combined)
		for _, name := range longhands {
			if name != first {
				set.Delete(name)
			}
		}
	}
}

// firstPresent returns the member of names that appears earliest in the
// set's insertion order.
func firstPresent(set *css.PropertySet, names []string) string {
	member := make(map[string]struct{}, len(names))
	for _, n := range names {
		member[n] = struct{}{}
	}
	for _, n := range set.Names() {
		if _, ok := member[n]; ok {
			return n
		}
	}
	return names[0]
}
