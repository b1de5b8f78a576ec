package styled

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"

	"github.com/pthm/styled/lib/extract"
	"github.com/pthm/styled/lib/serialize"
	"github.com/pthm/styled/lib/sheet"
	"github.com/pthm/styled/lib/snapshot"
)

// DefaultKey prefixes generated class names when no key is configured.
const DefaultKey = "css"

// ContextOptions configures a RenderContext.
type ContextOptions struct {
	// Key namespaces generated class names ({key}-{hash}). Lowercase
	// letters and hyphens only. Defaults to "css".
	Key string `validate:"omitempty,cachekey"`

	// Nonce is copied onto every emitted style element.
	Nonce string `validate:"omitempty,printascii"`

	// Collect keeps rules in the sheet instead of emitting a style element
	// next to each component. Render the collected rules with
	// RenderContext.StyleElement.
	Collect bool

	// Serializer replaces the default serializer.
	Serializer serialize.Serializer
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	keyPattern = regexp.MustCompile(`^[a-z-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("cachekey", func(fl validator.FieldLevel) bool {
			return keyPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// RenderContext is the per-render-tree bundle of registration cache, live
// sheet and namespacing key. Create one per request (see Middleware) and
// attach it with WithContext; components never fall back to a global one.
//
// Insertion is check-before-insert under a lock, so re-entrant and
// repeated renders of the same styles never duplicate sheet entries.
type RenderContext struct {
	key        string
	collect    bool
	serializer serialize.Serializer
	sheet      *sheet.Sheet

	mu         sync.Mutex
	registered map[string]string // class name -> styles; replaced on write
	inserted   map[string]string // hash name -> compiled rules
	order      []string
}

// NewContext validates opts and creates an empty render context.
func NewContext(opts ContextOptions) (*RenderContext, error) {
	if err := validatorInstance().Struct(opts); err != nil {
		return nil, &ConfigurationError{
			Op:  "NewContext",
			Err: fmt.Errorf("%w: %v", ErrInvalidOptions, err),
		}
	}

	key := opts.Key
	if key == "" {
		key = DefaultKey
	}
	ser := opts.Serializer
	if ser == nil {
		ser = serialize.Default
	}

	return &RenderContext{
		key:        key,
		collect:    opts.Collect,
		serializer: ser,
		sheet:      sheet.New(key, opts.Nonce),
		registered: make(map[string]string),
		inserted:   make(map[string]string),
	}, nil
}

// MustContext is like NewContext but panics on invalid options.
func MustContext(opts ContextOptions) *RenderContext {
	rc, err := NewContext(opts)
	if err != nil {
		panic(err)
	}
	return rc
}

type renderContextKey struct{}

// WithContext attaches rc to ctx.
func WithContext(ctx context.Context, rc *RenderContext) context.Context {
	return context.WithValue(ctx, renderContextKey{}, rc)
}

// ContextFrom returns the render context attached to ctx, or nil.
func ContextFrom(ctx context.Context) *RenderContext {
	rc, _ := ctx.Value(renderContextKey{}).(*RenderContext)
	return rc
}

// Key returns the namespacing key.
func (rc *RenderContext) Key() string {
	return rc.key
}

// Sheet returns the sheet rules are inserted into.
func (rc *RenderContext) Sheet() *sheet.Sheet {
	return rc.sheet
}

// Inline reports whether rules are emitted next to the components that
// first use them.
func (rc *RenderContext) Inline() bool {
	return !rc.collect
}

// Registered returns the styles registered for a class name.
func (rc *RenderContext) Registered(className string) (string, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	styles, ok := rc.registered[className]
	return styles, ok
}

// Inserted reports whether the rules for a hash name are in the sheet (or
// already on the client, after Hydrate or Restore).
func (rc *RenderContext) Inserted(name string) bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	_, ok := rc.inserted[name]
	return ok
}

// Names returns inserted hash names in insertion order.
func (rc *RenderContext) Names() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	out := make([]string, len(rc.order))
	copy(out, rc.order)
	return out
}

// registeredView returns the current registration map. The map is never
// written after it is published, so callers may read it without the lock.
func (rc *RenderContext) registeredView() map[string]string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.registered
}

// RegisteredStyles splits a class string into the tokens this context
// has registered, returned as style fragments, and the remaining literal
// prefix (each token followed by a space).
func (rc *RenderContext) RegisteredStyles(classNames string) (string, []any) {
	registered := rc.registeredView()

	var (
		raw            strings.Builder
		interpolations []any
	)
	for _, name := range strings.Fields(classNames) {
		if styles, ok := registered[name]; ok {
			interpolations = append(interpolations, styles+";")
			continue
		}
		raw.WriteString(name)
		raw.WriteString(" ")
	}
	return raw.String(), interpolations
}

// Serialize runs the configured serializer against the current
// registration map.
func (rc *RenderContext) Serialize(chain []any, props Props) *serialize.Serialized {
	return rc.serializer.Serialize(chain, rc.registeredView(), props)
}

// Insert registers s under its class name and inserts its rules, and the
// rules of its Next chain, into the sheet. It returns the names whose
// rules were inserted by this call; an already inserted name is a no-op
// that returns none.
//
// In inline mode the compiled rule text for those names is returned so
// the caller can emit it; in collect mode the text stays in the sheet.
func (rc *RenderContext) Insert(s *serialize.Serialized, isElement bool) (string, []string) {
	className := rc.key + "-" + s.Name

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if _, ok := rc.registered[className]; !ok && (!isElement || !rc.collect) {
		next := make(map[string]string, len(rc.registered)+1)
		for k, v := range rc.registered {
			next[k] = v
		}
		next[className] = s.Styles
		rc.registered = next
	}

	if _, ok := rc.inserted[s.Name]; ok {
		return "", nil
	}

	var (
		rules strings.Builder
		names []string
	)
	for cur := s; cur != nil; cur = cur.Next {
		if _, ok := rc.inserted[cur.Name]; ok && cur != s {
			continue
		}
		selector := ""
		if cur == s {
			selector = "." + className
		}
		compiled := sheet.Compile(selector, cur.Styles)
		rc.sheet.Insert(compiled...)
		text := strings.Join(compiled, "")
		rc.inserted[cur.Name] = text
		rc.order = append(rc.order, cur.Name)
		rules.WriteString(text)
		names = append(names, cur.Name)
	}

	if rc.collect {
		return "", names
	}
	return rules.String(), names
}

// Hydrate marks every name found in this context's style elements of an
// HTML document as inserted, so rules the client already has are not
// emitted again. It returns the number of names marked.
func (rc *RenderContext) Hydrate(r io.Reader) (int, error) {
	blocks, err := extract.Document(r)
	if err != nil {
		return 0, err
	}
	return rc.markInserted(func(yield func(string)) {
		for _, b := range blocks {
			if b.Key != rc.key {
				continue
			}
			for _, name := range b.Names {
				yield(name)
			}
		}
	}), nil
}

// Snapshot encodes the inserted names as a signed token.
func (rc *RenderContext) Snapshot(codec *snapshot.Codec) (string, error) {
	names := rc.Names()
	sort.Strings(names)
	return codec.Encode(snapshot.State{Key: rc.key, Names: names})
}

// Restore marks the names of a token produced by Snapshot as inserted.
func (rc *RenderContext) Restore(codec *snapshot.Codec, token string) error {
	st, err := codec.Decode(token)
	if err != nil {
		return err
	}
	if st.Key != rc.key {
		return fmt.Errorf("%w: %q != %q", ErrSnapshotKey, st.Key, rc.key)
	}
	rc.markInserted(func(yield func(string)) {
		for _, name := range st.Names {
			yield(name)
		}
	})
	return nil
}

func (rc *RenderContext) markInserted(names func(yield func(string))) int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	n := 0
	names(func(name string) {
		if _, ok := rc.inserted[name]; ok {
			return
		}
		rc.inserted[name] = ""
		rc.order = append(rc.order, name)
		n++
	})
	return n
}

// StyleElement renders every rule in the sheet as a single style element.
// Use it in collect mode, after the body has been rendered.
func (rc *RenderContext) StyleElement() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if rc.sheet.Len() == 0 {
			return nil
		}
		return writeStyle(w, rc.key, rc.sheetNames(), rc.sheet.Nonce(), rc.sheet.String())
	})
}

// sheetNames returns the names whose rules were inserted into the sheet
// by this context (as opposed to hydrated or restored ones).
func (rc *RenderContext) sheetNames() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	var names []string
	for _, name := range rc.order {
		if rc.inserted[name] != "" {
			names = append(names, name)
		}
	}
	return names
}

// Critical returns the rules needed by an HTML document: those of every
// class name it uses, plus keyframes those rules reference.
func (rc *RenderContext) Critical(doc string) (string, []string, error) {
	classes, err := extract.ClassNames(strings.NewReader(doc))
	if err != nil {
		return "", nil, err
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	var (
		css   strings.Builder
		names []string
	)
	for _, name := range rc.order {
		if rules := rc.inserted[name]; rules != "" && classes[rc.key+"-"+name] {
			css.WriteString(rules)
			names = append(names, name)
		}
	}
	used := css.String()
	for _, name := range rc.order {
		if rules := rc.inserted[name]; rules != "" && strings.HasPrefix(rules, "@keyframes "+name) && strings.Contains(used, name) {
			css.WriteString(rules)
			names = append(names, name)
		}
	}
	return css.String(), names, nil
}
