package providers

import (
	"log"

	"github.com/liamesika/adconnect/models"
)

// Registry is the static platform-to-adapter lookup table. The platform set
// is closed; adding a platform means adding an adapter and registering it
// here at startup.
type Registry struct {
	providers map[models.Platform]Provider
}

// NewRegistry builds the registry from per-platform configs. A platform with
// missing configuration is simply left unregistered, so a misconfigured Meta
// app never takes Google down with it.
func NewRegistry(metaCfg, googleCfg Config) *Registry {
	r := &Registry{providers: make(map[models.Platform]Provider)}

	if metaCfg.Configured() {
		meta, err := NewMetaProvider(metaCfg)
		if err != nil {
			log.Printf("meta provider disabled: %v", err)
		} else {
			r.providers[models.PlatformMeta] = meta
		}
	}

	if googleCfg.Configured() {
		google, err := NewGoogleProvider(googleCfg)
		if err != nil {
			log.Printf("google provider disabled: %v", err)
		} else {
			r.providers[models.PlatformGoogle] = google
		}
	}

	return r
}

// Get returns the adapter for a platform, or false when the platform is not
// configured.
func (r *Registry) Get(platform models.Platform) (Provider, bool) {
	p, ok := r.providers[platform]
	return p, ok
}

// Register adds or replaces an adapter. Tests use this to install stubs.
func (r *Registry) Register(p Provider) {
	r.providers[p.Platform()] = p
}
