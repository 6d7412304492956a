package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	funcs      map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size <= 0 {
			return
		}
		if cache, err := lru.New[string, CompiledFilter](size); err == nil {
			c.cache = cache
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.customFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		customFuncs: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	customFuncs map[string]any
	cache       *lru.Cache[string, CompiledFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// A zero entry gives the checker the type of every variable and helper
	env := createEnvironment(Entry{})
	maps.Copy(env, c.customFuncs)

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		funcs:      c.customFuncs,
	}

	if c.cache != nil {
		c.cache.Add(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Run evaluates the filter against an entry
func (f *exprFilter) Run(entry Entry) (bool, error) {
	env := createEnvironment(entry)
	maps.Copy(env, f.funcs)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieTitle: entry.Movie.Title,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieTitle: entry.Movie.Title,
			Reason:     fmt.Sprintf("expected bool result, got %T", result),
		}
	}

	return matched, nil
}

// Evaluate evaluates the filter against an entry; evaluation errors do not match
func (f *exprFilter) Evaluate(entry Entry) bool {
	matched, err := f.Run(entry)
	return err == nil && matched
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the movie independent helpers to env
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = parseDate
	// String helpers, case-insensitive. contains, startsWith and endsWith
	// are expr operators and cannot be used as function names.
	env["containsText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// createEnvironment creates the runtime environment for filter evaluation
func createEnvironment(entry Entry) map[string]any {
	movie := entry.Movie
	released := parseDate(movie.ReleaseDate)

	env := make(map[string]any, 32)
	addHelperFunctions(env)

	// Movie properties
	env["ID"] = movie.ID
	env["Title"] = movie.Title
	env["Overview"] = movie.Overview
	env["VoteAverage"] = movie.VoteAverage
	env["ReleaseDate"] = movie.ReleaseDate
	env["Released"] = released
	env["Year"] = movie.Year()
	env["HasPoster"] = movie.HasPoster()
	env["Genres"] = entry.Genres

	// Movie-specific helpers
	env["hasGenre"] = createHasGenreFunc(entry.Genres)
	env["releasedAfter"] = func(t time.Time) bool {
		return !released.IsZero() && released.After(t)
	}
	env["releasedBefore"] = func(t time.Time) bool {
		return !released.IsZero() && released.Before(t)
	}

	return env
}

func createHasGenreFunc(genres []string) func(string) bool {
	lowerGenres := make([]string, len(genres))
	for i, genre := range genres {
		lowerGenres[i] = strings.ToLower(genre)
	}
	return func(genre string) bool {
		return slices.Contains(lowerGenres, strings.ToLower(genre))
	}
}

// parseDate parses an ISO calendar date, returning the zero time on failure
func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}
