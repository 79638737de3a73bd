package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/fallback"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/matcher"
	"github.com/paris-green-explorer/internal/pkg/metrics"
)

// ErrEmptyCollection - источник ответил успешно, но без записей
var ErrEmptyCollection = errors.New("empty data received")

// GatewayUseCase - коллекции округов, кварталов и зеленых зон с окном свежести и резервными данными
type GatewayUseCase struct {
	parisRepo  repository.ParisDataRepository
	boundaries *BoundaryUseCase
	cache      cacheStore
	feed       *NotificationUseCase
	group      singleflight.Group
	ttl        time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

// NewGatewayUseCase - создание GatewayUseCase. boundaries используется для
// привязки зеленых зон к кварталам по координатам и может быть nil.
func NewGatewayUseCase(
	parisRepo repository.ParisDataRepository,
	boundaries *BoundaryUseCase,
	cacheRepo repository.CacheRepository,
	feed *NotificationUseCase,
	logger *zap.Logger,
	ttl time.Duration,
) *GatewayUseCase {
	return &GatewayUseCase{
		parisRepo:  parisRepo,
		boundaries: boundaries,
		cache:      newCacheStore(cacheRepo, logger),
		feed:       feed,
		ttl:        ttl,
		now:        time.Now,
		logger:     logger,
	}
}

func collectionKey(kind domain.Kind) string {
	return "collection:" + string(kind)
}

// FetchUnits - округа; ошибка источника заменяется резервным набором
func (uc *GatewayUseCase) FetchUnits(ctx context.Context) domain.CollectionResult[domain.AdministrativeUnit] {
	return fetchCollection(ctx, uc, domain.KindUnits, uc.parisRepo.FetchUnits, fallback.Units)
}

// FetchDistricts - кварталы
func (uc *GatewayUseCase) FetchDistricts(ctx context.Context) domain.CollectionResult[domain.District] {
	return fetchCollection(ctx, uc, domain.KindDistricts, uc.parisRepo.FetchDistricts, fallback.Districts)
}

// FetchGreenSpaces - зеленые зоны; зоны без квартала привязываются по координатам
func (uc *GatewayUseCase) FetchGreenSpaces(ctx context.Context) domain.CollectionResult[domain.GreenSpace] {
	live := func(ctx context.Context) ([]domain.GreenSpace, error) {
		items, err := uc.parisRepo.FetchGreenSpaces(ctx)
		if err != nil {
			return nil, err
		}
		uc.backfillDistricts(ctx, items)
		return items, nil
	}
	return fetchCollection(ctx, uc, domain.KindGreenSpaces, live, fallback.GreenSpaces)
}

// fetchCollection: кеш, затем один общий запрос к источнику на ключ, затем резервный набор
func fetchCollection[T any](
	ctx context.Context,
	uc *GatewayUseCase,
	kind domain.Kind,
	live func(context.Context) ([]T, error),
	fallbackItems func() []T,
) domain.CollectionResult[T] {
	key := collectionKey(kind)

	var cached domain.CollectionResult[T]
	if uc.cache.load(ctx, key, &cached) {
		if cached.Source != domain.SourceFallback {
			cached.Source = domain.SourceCache
		}
		metrics.GatewayRequestsTotal.WithLabelValues(string(kind), string(cached.Source)).Inc()
		return cached
	}

	v, _, _ := uc.group.Do(key, func() (interface{}, error) {
		fetchCtx := context.WithoutCancel(ctx)
		start := time.Now()

		items, err := live(fetchCtx)
		metrics.GatewayFetchDurationMs.WithLabelValues(string(kind)).Observe(float64(time.Since(start).Milliseconds()))
		if err == nil && len(items) == 0 {
			err = ErrEmptyCollection
		}

		var result domain.CollectionResult[T]
		if err != nil {
			uc.logger.Warn("Remote data unavailable, using fallback",
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
			if uc.feed != nil {
				uc.feed.Offline(kind, err)
			}
			result = domain.CollectionResult[T]{
				Items:     fallbackItems(),
				Source:    domain.SourceFallback,
				FetchedAt: uc.now(),
			}
		} else {
			uc.logger.Info("Remote data loaded",
				zap.String("kind", string(kind)),
				zap.Int("count", len(items)),
			)
			if uc.feed != nil {
				uc.feed.Live(kind)
			}
			result = domain.CollectionResult[T]{
				Items:     items,
				Source:    domain.SourceLive,
				FetchedAt: uc.now(),
			}
		}

		uc.cache.store(fetchCtx, key, result, uc.ttl)
		return result, nil
	})

	result := v.(domain.CollectionResult[T])
	metrics.GatewayRequestsTotal.WithLabelValues(string(kind), string(result.Source)).Inc()
	return result
}

// backfillDistricts - зеленая зона без id или названия квартала получает их
// из контура квартала, содержащего ее координаты
func (uc *GatewayUseCase) backfillDistricts(ctx context.Context, items []domain.GreenSpace) {
	if uc.boundaries == nil {
		return
	}
	needed := false
	for _, g := range items {
		if g.Location != nil && (g.Parent.ID == "" || g.Parent.Name == "") {
			needed = true
			break
		}
	}
	if !needed {
		return
	}

	fc, _ := uc.boundaries.FetchBoundaries(ctx, domain.KindDistricts)
	if len(fc.Features) == 0 {
		return
	}

	filled := 0
	for i := range items {
		g := &items[i]
		if g.Location == nil || (g.Parent.ID != "" && g.Parent.Name != "") {
			continue
		}
		f := matcher.ContainingFeature(fc, *g.Location)
		if f == nil {
			continue
		}
		g.Parent = domain.ParentRef{
			ID:   propertyString(domain.FeatureProperty(f, "c_qu", "c_quinsee")),
			Name: propertyString(domain.FeatureProperty(f, "l_qu")),
		}
		filled++
	}

	uc.logger.Debug("Green spaces linked by location", zap.Int("count", filled))
}

func propertyString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// Catalog - согласованный снимок всех трех коллекций
type Catalog struct {
	Units               []domain.AdministrativeUnit
	Districts           []domain.District
	GreenSpaces         []domain.GreenSpace
	Sources             map[domain.Kind]domain.DataSource
	UnlinkedDistricts   int
	UnlinkedGreenSpaces int
	FetchedAt           time.Time
}

// Snapshot загружает коллекции параллельно и сверяет ссылки на родителей
func (uc *GatewayUseCase) Snapshot(ctx context.Context) *Catalog {
	var (
		units     domain.CollectionResult[domain.AdministrativeUnit]
		districts domain.CollectionResult[domain.District]
		greens    domain.CollectionResult[domain.GreenSpace]
	)

	// Шлюзы не возвращают ошибок: сбой источника уже заменен резервным набором
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		units = uc.FetchUnits(gctx)
		return nil
	})
	g.Go(func() error {
		districts = uc.FetchDistricts(gctx)
		return nil
	})
	g.Go(func() error {
		greens = uc.FetchGreenSpaces(gctx)
		return nil
	})
	_ = g.Wait()

	rec := Reconcile(units.Items, districts.Items, greens.Items)

	return &Catalog{
		Units:       units.Items,
		Districts:   rec.Districts,
		GreenSpaces: rec.GreenSpaces,
		Sources: map[domain.Kind]domain.DataSource{
			domain.KindUnits:       units.Source,
			domain.KindDistricts:   districts.Source,
			domain.KindGreenSpaces: greens.Source,
		},
		UnlinkedDistricts:   rec.UnlinkedDistricts,
		UnlinkedGreenSpaces: rec.UnlinkedGreenSpaces,
		FetchedAt:           uc.now(),
	}
}

// WarmUp заполняет кеш коллекций и контуров до первого запроса
func (uc *GatewayUseCase) WarmUp(ctx context.Context) {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		uc.Snapshot(gctx)
		return nil
	})
	if uc.boundaries != nil {
		for _, kind := range domain.Kinds() {
			g.Go(func() error {
				uc.boundaries.FetchBoundaries(gctx, kind)
				return nil
			})
		}
	}
	_ = g.Wait()

	uc.logger.Info("Data warm-up completed", zap.Duration("duration", time.Since(start)))
}

// Refresh сбрасывает окно свежести коллекций и загружает их заново
func (uc *GatewayUseCase) Refresh(ctx context.Context) *Catalog {
	keys := make([]string, 0, len(domain.Kinds()))
	for _, kind := range domain.Kinds() {
		keys = append(keys, collectionKey(kind))
	}
	uc.cache.invalidate(ctx, keys...)
	return uc.Snapshot(ctx)
}

// Unit ищет округ по id
func (c *Catalog) Unit(id string) (*domain.AdministrativeUnit, bool) {
	for i := range c.Units {
		if c.Units[i].ID == id {
			u := c.Units[i]
			return &u, true
		}
	}
	return nil, false
}

// District ищет квартал по id
func (c *Catalog) District(id string) (*domain.District, bool) {
	for i := range c.Districts {
		if c.Districts[i].ID == id {
			d := c.Districts[i]
			return &d, true
		}
	}
	return nil, false
}

// GreenSpace ищет зеленую зону по id
func (c *Catalog) GreenSpace(id string) (*domain.GreenSpace, bool) {
	for i := range c.GreenSpaces {
		if c.GreenSpaces[i].ID == id {
			g := c.GreenSpaces[i]
			return &g, true
		}
	}
	return nil, false
}

// UnitOf - округ квартала: по сверенной ссылке, иначе по id или названию
func (c *Catalog) UnitOf(d domain.District) *domain.AdministrativeUnit {
	if d.UnitID != "" {
		if u, ok := c.Unit(d.UnitID); ok {
			return u
		}
	}
	for i := range c.Units {
		if d.Parent.Matches(c.Units[i].ID, c.Units[i].Name) {
			u := c.Units[i]
			return &u
		}
	}
	return nil
}

// DistrictOf - квартал зеленой зоны
func (c *Catalog) DistrictOf(g domain.GreenSpace) *domain.District {
	if g.DistrictID != "" {
		if d, ok := c.District(g.DistrictID); ok {
			return d
		}
	}
	for i := range c.Districts {
		if g.Parent.Matches(c.Districts[i].ID, c.Districts[i].Name) {
			d := c.Districts[i]
			return &d
		}
	}
	return nil
}
