package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"storefront/internal/app/ds"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	ErrTierNotFound   = errors.New("pricing tier not found")
	ErrInvalidCatalog = errors.New("invalid content catalog")
)

// Store отдает статический контент только на чтение.
// Все методы возвращают копии, поэтому содержимое после создания не меняется.
type Store struct {
	catalog Catalog
}

// New проверяет каталог и создает хранилище
func New(c Catalog) (*Store, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return &Store{catalog: cloneCatalog(c)}, nil
}

// Default - хранилище со встроенным контентом
func Default() *Store {
	s, err := New(DefaultCatalog())
	if err != nil {
		// встроенный каталог покрыт тестами, сюда попадаем только при ошибке в литералах
		panic(err)
	}
	return s
}

// Load читает каталог из YAML файла. Пустой путь - встроенный каталог
func Load(path string) (*Store, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}

	s, err := New(c)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"features": len(c.Features),
		"tiers":    len(c.PricingTiers),
	}).Info("content catalog loaded")

	return s, nil
}

// Validate проверяет инварианты каталога: непустые заголовки и описания,
// положительные цены, не более одного популярного тарифа, уникальные имена тарифов
func Validate(c Catalog) error {
	var errs []error

	for i, f := range c.Features {
		if strings.TrimSpace(f.Title) == "" {
			errs = append(errs, fmt.Errorf("feature %d: empty title", i))
		}
		if strings.TrimSpace(f.Description) == "" {
			errs = append(errs, fmt.Errorf("feature %d: empty description", i))
		}
	}

	if len(c.PricingTiers) == 0 {
		errs = append(errs, errors.New("no pricing tiers"))
	}
	popular := 0
	names := make(map[string]struct{}, len(c.PricingTiers))
	for i, t := range c.PricingTiers {
		name := strings.ToLower(strings.TrimSpace(t.Name))
		if name == "" {
			errs = append(errs, fmt.Errorf("tier %d: empty name", i))
		}
		if _, dup := names[name]; dup && name != "" {
			errs = append(errs, fmt.Errorf("tier %d: duplicate name %q", i, t.Name))
		}
		names[name] = struct{}{}
		if t.BasePrice <= 0 {
			errs = append(errs, fmt.Errorf("tier %q: base price must be positive, got %d", t.Name, t.BasePrice))
		}
		if t.Popular {
			popular++
		}
	}
	if popular > 1 {
		errs = append(errs, fmt.Errorf("at most one tier may be popular, got %d", popular))
	}

	for i, a := range c.TargetAudiences {
		if strings.TrimSpace(a.Title) == "" {
			errs = append(errs, fmt.Errorf("target audience %d: empty title", i))
		}
	}
	for i, h := range c.SecurityHighlights {
		if strings.TrimSpace(h.Title) == "" {
			errs = append(errs, fmt.Errorf("security highlight %d: empty title", i))
		}
	}
	for i, p := range c.SecurityPolicies {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("security policy %d: empty title", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

func (s *Store) Features() []ds.FeatureEntry {
	return append([]ds.FeatureEntry(nil), s.catalog.Features...)
}

func (s *Store) TargetAudiences() []ds.TargetAudience {
	return append([]ds.TargetAudience(nil), s.catalog.TargetAudiences...)
}

func (s *Store) PricingTiers() []ds.PricingTier {
	return cloneTiers(s.catalog.PricingTiers)
}

// Tier ищет тариф по имени без учета регистра
func (s *Store) Tier(name string) (ds.PricingTier, error) {
	for _, t := range s.catalog.PricingTiers {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return cloneTier(t), nil
		}
	}
	return ds.PricingTier{}, fmt.Errorf("%w: %q", ErrTierNotFound, name)
}

// PopularTier возвращает популярный тариф, если он есть
func (s *Store) PopularTier() (ds.PricingTier, bool) {
	for _, t := range s.catalog.PricingTiers {
		if t.Popular {
			return cloneTier(t), true
		}
	}
	return ds.PricingTier{}, false
}

func (s *Store) SecurityHighlights() []ds.SecurityHighlight {
	return append([]ds.SecurityHighlight(nil), s.catalog.SecurityHighlights...)
}

func (s *Store) SecurityPolicies() []ds.SecurityPolicy {
	return append([]ds.SecurityPolicy(nil), s.catalog.SecurityPolicies...)
}

func (s *Store) PasswordTips() []string {
	return append([]string(nil), s.catalog.PasswordTips...)
}

func (s *Store) LoginSafeguards() []string {
	return append([]string(nil), s.catalog.LoginSafeguards...)
}

func (s *Store) TeamTips() []ds.TeamTip {
	return append([]ds.TeamTip(nil), s.catalog.TeamTips...)
}

func (s *Store) Contact() ds.ContactInfo {
	c := s.catalog.Contact
	c.Phones = append([]string(nil), c.Phones...)
	return c
}

// Catalog возвращает полную копию каталога
func (s *Store) Catalog() Catalog {
	return cloneCatalog(s.catalog)
}

func cloneTier(t ds.PricingTier) ds.PricingTier {
	t.Features = append([]string(nil), t.Features...)
	return t
}

func cloneTiers(tiers []ds.PricingTier) []ds.PricingTier {
	out := make([]ds.PricingTier, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, cloneTier(t))
	}
	return out
}

func cloneCatalog(c Catalog) Catalog {
	return Catalog{
		Features:           append([]ds.FeatureEntry(nil), c.Features...),
		TargetAudiences:    append([]ds.TargetAudience(nil), c.TargetAudiences...),
		PricingTiers:       cloneTiers(c.PricingTiers),
		SecurityHighlights: append([]ds.SecurityHighlight(nil), c.SecurityHighlights...),
		SecurityPolicies:   append([]ds.SecurityPolicy(nil), c.SecurityPolicies...),
		PasswordTips:       append([]string(nil), c.PasswordTips...),
		LoginSafeguards:    append([]string(nil), c.LoginSafeguards...),
		TeamTips:           append([]ds.TeamTip(nil), c.TeamTips...),
		Contact: ds.ContactInfo{
			Address: c.Contact.Address,
			Email:   c.Contact.Email,
			Phones:  append([]string(nil), c.Contact.Phones...),
			Website: c.Contact.Website,
		},
	}
}
