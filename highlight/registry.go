package highlight

import (
	"sort"
	"sync"
	"time"

	"github.com/iw2rmb/codepad/internal/log"
)

// FallbackLanguage is used for identifiers no profile answers to.
const FallbackLanguage = "javascript"

// Registry holds compiled language profiles. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]*compiledProfile
	aliases  map[string]string
	timeout  time.Duration
	gen      uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[string]*compiledProfile),
		aliases:  make(map[string]string),
		timeout:  DefaultMatchTimeout,
	}
}

// NewDefaultRegistry returns a registry holding the built-in profiles.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range builtinProfiles() {
		if err := r.Register(p); err != nil {
			// Built-in patterns are fixed; a failure here is a programming error.
			panic(err)
		}
	}
	return r
}

// SetMatchTimeout changes the per-match timeout. Registered profiles are
// recompiled with it.
func (r *Registry) SetMatchTimeout(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d == r.timeout {
		return
	}
	r.timeout = d
	for name, cp := range r.profiles {
		next, err := compileProfile(cp.Profile, d)
		if err != nil {
			// Already compiled once with the same patterns.
			log.ErrorErr(log.CatHighlight, "recompile failed", err, "name", name)
			continue
		}
		r.profiles[name] = next
	}
	r.gen++
}

// Register compiles p and adds it, replacing any profile with the same name.
func (r *Registry) Register(p Profile) error {
	r.mu.RLock()
	timeout := r.timeout
	r.mu.RUnlock()

	cp, err := compileProfile(p, timeout)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[cp.Name] = cp
	for _, a := range cp.Aliases {
		if a = normalizeName(a); a != "" && a != cp.Name {
			r.aliases[a] = cp.Name
		}
	}
	r.gen++
	log.Debug(log.CatHighlight, "profile registered", "name", cp.Name, "rules", len(cp.rules))
	return nil
}

// Lookup returns the profile registered under lang or one of its aliases.
func (r *Registry) Lookup(lang string) (Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.lookupLocked(normalizeName(lang))
	if cp == nil {
		return Profile{}, false
	}
	return cp.Profile, true
}

// Resolve is Lookup with the fallback applied. The returned profile is empty
// only when the registry holds neither lang nor the fallback language.
func (r *Registry) Resolve(lang string) Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cp := r.resolveLocked(lang); cp != nil {
		return cp.Profile
	}
	return Profile{}
}

// Languages returns the registered profile names in sorted order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Aliases returns the aliases that point at name, sorted.
func (r *Registry) Aliases(name string) []string {
	name = normalizeName(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for a, target := range r.aliases {
		if target == name {
			out = append(out, a)
		}
	}
	sort.Strings(out)
	return out
}

func (r *Registry) generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}

func (r *Registry) resolve(lang string) *compiledProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked(lang)
}

func (r *Registry) resolveLocked(lang string) *compiledProfile {
	if cp := r.lookupLocked(normalizeName(lang)); cp != nil {
		return cp
	}
	return r.profiles[FallbackLanguage]
}

func (r *Registry) lookupLocked(name string) *compiledProfile {
	if cp, ok := r.profiles[name]; ok {
		return cp
	}
	if target, ok := r.aliases[name]; ok {
		return r.profiles[target]
	}
	return nil
}
