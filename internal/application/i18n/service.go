// Package i18n sirve las tablas de traducción de la UI (inglés y jemer).
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/pkg/logger"
)

//go:embed locales/*.json
var embedded embed.FS

// Locales devuelve las tablas de traducción compiladas en el binario.
func Locales() fs.FS {
	sub, _ := fs.Sub(embedded, "locales")
	return sub
}

// Tablas soportadas. "kh" es el código histórico que usa el frontend para jemer.
const (
	English = "en"
	Khmer   = "kh"
)

// DefaultCacheTTL cuánto tiempo queda en caché una tabla cargada.
const DefaultCacheTTL = 10 * time.Minute

var (
	supported = []language.Tag{language.English, language.Khmer}
	matcher   = language.NewMatcher(supported)
	tableFor  = map[language.Tag]string{language.English: English, language.Khmer: Khmer}
)

// Resolve traduce el idioma pedido a una tabla. "kh", "km", "km-KH" y cualquier tag que
// coincida con jemer dan jemer; todo lo demás, incluso vacío o mal formado, da inglés.
func Resolve(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == Khmer {
		return Khmer
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	return tableFor[supported[idx]]
}

// Service carga las tablas de traducción desde fsys y las guarda en caché.
type Service struct {
	fsys  fs.FS
	cache ports.Cache
	ttl   time.Duration
	log   *logger.Logger
}

// NewService construye el servicio. cache y log pueden ser nil.
func NewService(fsys fs.FS, cache ports.Cache, ttl time.Duration, log *logger.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{fsys: fsys, cache: cache, ttl: ttl, log: log}
}

// Translations devuelve la tabla plana clave/texto de lang ya resuelto.
// Una tabla inexistente es domain.ErrNotFound.
func (s *Service) Translations(ctx context.Context, lang string) (map[string]string, error) {
	name := Resolve(lang)
	key := "translations:" + name

	if s.cache != nil {
		raw, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("translation cache read failed")
		} else if ok {
			var table map[string]string
			if err := json.Unmarshal(raw, &table); err == nil {
				return table, nil
			}
		}
	}

	raw, err := fs.ReadFile(s.fsys, name+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Str("lang", name).Msg("translation table not found")
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("i18n: read %s: %w", name, err)
	}
	var table map[string]string
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("i18n: decode %s: %w", name, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("translation cache write failed")
		}
	}
	return table, nil
}
