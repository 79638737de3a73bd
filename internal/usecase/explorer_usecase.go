package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/fallback"
	"github.com/paris-green-explorer/internal/matcher"
	"github.com/paris-green-explorer/internal/navigator"
	"github.com/paris-green-explorer/internal/pkg/errors"
	"github.com/paris-green-explorer/internal/pkg/metrics"
	"github.com/paris-green-explorer/internal/usecase/dto"
)

// Зум карты по уровню навигации
const (
	ZoomCity       = 12
	ZoomDistrict   = 14
	ZoomGreenSpace = 15
)

// Роли полигонов в слоях карты
const (
	RoleDefault  = "default"
	RoleSelected = "selected"
	RoleFaded    = "faded"
)

// session - состояние навигации одного клиента карты
type session struct {
	mu       sync.Mutex
	id       string
	state    navigator.State
	lastSeen time.Time

	// plantingSeq растет с каждым запросом симуляции и сменой зоны;
	// результат с устаревшим номером отбрасывается
	plantingSeq uint64
	planting    *dto.PlantingPanel
}

// ExplorerUseCase - сессии навигации и представление карты
type ExplorerUseCase struct {
	gateway    *GatewayUseCase
	boundaries *BoundaryUseCase
	planting   *PlantingUseCase

	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// NewExplorerUseCase - создание ExplorerUseCase
func NewExplorerUseCase(
	gateway *GatewayUseCase,
	boundaries *BoundaryUseCase,
	planting *PlantingUseCase,
	logger *zap.Logger,
	sessionTTL time.Duration,
) *ExplorerUseCase {
	return &ExplorerUseCase{
		gateway:    gateway,
		boundaries: boundaries,
		planting:   planting,
		sessions:   make(map[string]*session),
		ttl:        sessionTTL,
		now:        time.Now,
		logger:     logger,
	}
}

// CreateSession открывает новую сессию на уровне города
func (uc *ExplorerUseCase) CreateSession() *dto.SessionResponse {
	s := &session{
		id:       uuid.NewString(),
		state:    navigator.Initial(),
		lastSeen: uc.now(),
	}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	count := len(uc.sessions)
	uc.mu.Unlock()

	metrics.ActiveSessions.Set(float64(count))
	uc.logger.Debug("Session created", zap.String("session_id", s.id))

	return &dto.SessionResponse{SessionID: s.id, State: s.state}
}

func (uc *ExplorerUseCase) session(id string) (*session, error) {
	uc.mu.RLock()
	s, ok := uc.sessions[id]
	uc.mu.RUnlock()
	if !ok {
		return nil, errors.ErrSessionNotFound.WithDetails(map[string]interface{}{"session_id": id})
	}
	return s, nil
}

// State возвращает текущее состояние сессии
func (uc *ExplorerUseCase) State(id string) (navigator.State, error) {
	s, err := uc.session(id)
	if err != nil {
		return navigator.State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = uc.now()
	return s.state, nil
}

// ActiveSessions - число сессий в памяти
func (uc *ExplorerUseCase) ActiveSessions() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.sessions)
}

// CleanupExpired удаляет сессии, неактивные дольше TTL
func (uc *ExplorerUseCase) CleanupExpired() int {
	if uc.ttl <= 0 {
		return 0
	}
	deadline := uc.now().Add(-uc.ttl)

	uc.mu.Lock()
	removed := 0
	for id, s := range uc.sessions {
		s.mu.Lock()
		expired := s.lastSeen.Before(deadline)
		s.mu.Unlock()
		if expired {
			delete(uc.sessions, id)
			removed++
		}
	}
	count := len(uc.sessions)
	uc.mu.Unlock()

	metrics.ActiveSessions.Set(float64(count))
	if removed > 0 {
		uc.logger.Info("Expired sessions removed", zap.Int("removed", removed), zap.Int("active", count))
	}
	return removed
}

// transition применяет переход к состоянию сессии под ее мьютексом
func (uc *ExplorerUseCase) transition(
	ctx context.Context,
	id string,
	apply func(navigator.State, *Catalog) (navigator.State, error),
) (*dto.SessionResponse, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}
	catalog := uc.gateway.Snapshot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := apply(s.state, catalog)
	if err != nil {
		return nil, err
	}

	if plantingZoneOf(s.state) != plantingZoneOf(next) {
		s.plantingSeq++
		s.planting = nil
	}
	s.state = next
	s.lastSeen = uc.now()

	return &dto.SessionResponse{SessionID: id, State: next}, nil
}

func entityNotFound(kind domain.Kind, id string) error {
	return errors.ErrEntityNotFound.WithDetails(map[string]interface{}{
		"kind": string(kind),
		"id":   id,
	})
}

func transitionError(err error) error {
	if stderrors.Is(err, navigator.ErrNoUnitSelected) || stderrors.Is(err, navigator.ErrNoDistrictSelected) {
		return errors.ErrInvalidTransition.WithDetails(map[string]interface{}{"reason": err.Error()})
	}
	return err
}

// SelectUnit - выбор округа с любого уровня
func (uc *ExplorerUseCase) SelectUnit(ctx context.Context, id, unitID string) (*dto.SessionResponse, error) {
	return uc.transition(ctx, id, func(st navigator.State, c *Catalog) (navigator.State, error) {
		u, ok := c.Unit(unitID)
		if !ok {
			return st, entityNotFound(domain.KindUnits, unitID)
		}
		return st.SelectUnit(*u), nil
	})
}

// SelectDistrict - выбор квартала, требуется выбранный округ
func (uc *ExplorerUseCase) SelectDistrict(ctx context.Context, id, districtID string) (*dto.SessionResponse, error) {
	return uc.transition(ctx, id, func(st navigator.State, c *Catalog) (navigator.State, error) {
		d, ok := c.District(districtID)
		if !ok {
			return st, entityNotFound(domain.KindDistricts, districtID)
		}
		next, err := st.SelectDistrict(*d)
		return next, transitionError(err)
	})
}

// SelectGreenSpace - выбор зеленой зоны на уровне зеленых зон
func (uc *ExplorerUseCase) SelectGreenSpace(ctx context.Context, id, greenSpaceID string) (*dto.SessionResponse, error) {
	return uc.transition(ctx, id, func(st navigator.State, c *Catalog) (navigator.State, error) {
		g, ok := c.GreenSpace(greenSpaceID)
		if !ok {
			return st, entityNotFound(domain.KindGreenSpaces, greenSpaceID)
		}
		next, err := st.SelectGreenSpace(*g)
		return next, transitionError(err)
	})
}

// Jump - переход из результатов поиска; родители восстанавливаются по сверенным ссылкам
func (uc *ExplorerUseCase) Jump(ctx context.Context, id string, kind domain.Kind, entityID string) (*dto.SessionResponse, error) {
	return uc.transition(ctx, id, func(st navigator.State, c *Catalog) (navigator.State, error) {
		switch kind {
		case domain.KindUnits:
			u, ok := c.Unit(entityID)
			if !ok {
				return st, entityNotFound(kind, entityID)
			}
			return st.SelectUnit(*u), nil
		case domain.KindDistricts:
			d, ok := c.District(entityID)
			if !ok {
				return st, entityNotFound(kind, entityID)
			}
			return st.JumpToDistrict(c.UnitOf(*d), *d), nil
		case domain.KindGreenSpaces:
			g, ok := c.GreenSpace(entityID)
			if !ok {
				return st, entityNotFound(kind, entityID)
			}
			d := c.DistrictOf(*g)
			var u *domain.AdministrativeUnit
			if d != nil {
				u = c.UnitOf(*d)
			}
			return st.JumpToGreenSpace(u, d, *g), nil
		}
		return st, errors.ErrInvalidBoundaryKind.WithDetails(map[string]interface{}{"kind": string(kind)})
	})
}

// GoBack - шаг назад по иерархии
func (uc *ExplorerUseCase) GoBack(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return uc.transition(ctx, id, func(st navigator.State, _ *Catalog) (navigator.State, error) {
		return st.GoBack(), nil
	})
}

// Close - сброс к городу
func (uc *ExplorerUseCase) Close(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return uc.transition(ctx, id, func(st navigator.State, _ *Catalog) (navigator.State, error) {
		return st.Close(), nil
	})
}

// plantingZone - зона симуляции для состояния: квартал, иначе округ
type plantingZone struct {
	Type domain.ZoneType
	ID   string
}

func plantingZoneOf(st navigator.State) plantingZone {
	switch {
	case st.District != nil:
		return plantingZone{Type: domain.ZoneDistrict, ID: st.District.ID}
	case st.Unit != nil:
		return plantingZone{Type: domain.ZoneUnit, ID: st.Unit.PlantingZoneID()}
	}
	return plantingZone{}
}

// RequestPlanting запускает симуляцию для зоны текущего выбора.
// Если за время запроса сессия запросила другую симуляцию или сменила зону,
// результат отбрасывается с ErrQuerySuperseded.
func (uc *ExplorerUseCase) RequestPlanting(ctx context.Context, id string, req dto.PlantingRequest) (*dto.PlantingPanel, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	zone := plantingZoneOf(s.state)
	if zone.ID == "" {
		s.mu.Unlock()
		return nil, errors.ErrNoZoneSelected
	}
	s.plantingSeq++
	seq := s.plantingSeq
	s.lastSeen = uc.now()
	s.mu.Unlock()

	params := PlantingParamsFor(zone.Type, zone.ID, req)
	sim := uc.planting.FetchPlanting(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.plantingSeq {
		metrics.StalePlantingResultsTotal.Inc()
		uc.logger.Debug("Stale planting result discarded",
			zap.String("session_id", id),
			zap.Uint64("seq", seq),
			zap.Uint64("latest", s.plantingSeq),
		)
		return nil, errors.ErrQuerySuperseded
	}
	if sim == nil {
		return nil, errors.ErrDataUnavailable.WithDetails(map[string]interface{}{"kind": plantingKind})
	}

	s.planting = BuildPlantingPanel(params, sim)
	return s.planting, nil
}

// Planting - последний принятый результат симуляции сессии
func (uc *ExplorerUseCase) Planting(id string) (*dto.PlantingPanel, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planting, nil
}

// PlantingParamsFor - параметры по умолчанию для зоны с учетом переопределений запроса
func PlantingParamsFor(zoneType domain.ZoneType, zoneID string, req dto.PlantingRequest) domain.PlantingParams {
	p := domain.NewPlantingParams(zoneType, zoneID)
	if req.IncludeRoads != nil {
		p.IncludeRoads = *req.IncludeRoads
	}
	if req.UseSpeciesPerEv != nil {
		p.UseSpeciesPerEv = *req.UseSpeciesPerEv
	}
	if req.TopK > 0 {
		p.TopK = req.TopK
	}
	if req.MaxPerRoad > 0 {
		p.MaxPerRoad = req.MaxPerRoad
	}
	if req.Plans != "" {
		p.Plans = req.Plans
	}
	return p
}

// MapView строит представление карты для состояния сессии
func (uc *ExplorerUseCase) MapView(ctx context.Context, id string) (*dto.MapView, error) {
	st, err := uc.State(id)
	if err != nil {
		return nil, err
	}
	view := uc.BuildMapView(ctx, st, uc.gateway.Snapshot(ctx))
	view.SessionID = id
	return view, nil
}

// BuildMapView - центр, зум, слои полигонов, маркеры и счетчик для состояния
func (uc *ExplorerUseCase) BuildMapView(ctx context.Context, st navigator.State, c *Catalog) *dto.MapView {
	view := &dto.MapView{
		Level:   st.Level,
		Center:  domain.ParisCenter,
		Zoom:    ZoomCity,
		Layers:  geojson.NewFeatureCollection(),
		Markers: []dto.Marker{},
		Sources: make(map[domain.Kind]string, len(c.Sources)),
	}
	for kind, src := range c.Sources {
		view.Sources[kind] = string(src)
	}

	unitsFC, _ := uc.boundaries.FetchBoundaries(ctx, domain.KindUnits)

	switch st.Level {
	case navigator.LevelCity:
		owners := make(map[*geojson.Feature]domain.AdministrativeUnit, len(c.Units))
		for _, u := range c.Units {
			if f := matcher.MatchUnit(u, unitsFC); f != nil {
				owners[f] = u
			}
		}
		for _, f := range unitsFC.Features {
			u, ok := owners[f]
			view.Layers.Append(layerFeature(f, domain.KindUnits, RoleDefault, u.ID, u.DisplayName(), ok))
		}
		if len(unitsFC.Features) == 0 {
			for _, u := range c.Units {
				center, ok := fallback.UnitCenter(u.CenterKey())
				if !ok {
					continue
				}
				view.Markers = append(view.Markers, dto.Marker{
					ID:   u.ID,
					Name: u.DisplayName(),
					Kind: domain.KindUnits,
					Lat:  center.Lat,
					Lng:  center.Lng,
				})
			}
		}
		view.Counter = fmt.Sprintf("%d %s", len(c.Units), domain.KindUnits.Label())

	case navigator.LevelDistrict:
		view.Zoom = ZoomDistrict
		view.Center = matcher.ParentCenter(st.Unit)
		districts := navigator.FilterDistricts(c.Districts, st.Unit)

		if st.Unit != nil {
			if f := matcher.MatchUnit(*st.Unit, unitsFC); f != nil {
				view.Layers.Append(layerFeature(f, domain.KindUnits, RoleSelected, st.Unit.ID, st.Unit.DisplayName(), true))
			}
		}

		districtsFC, _ := uc.boundaries.FetchBoundaries(ctx, domain.KindDistricts)
		if st.Unit != nil {
			for _, f := range matcher.DistrictFeaturesOfUnit(*st.Unit, districtsFC) {
				owner, ok := districtOwner(f, districts)
				view.Layers.Append(layerFeature(f, domain.KindDistricts, RoleDefault, owner.ID, owner.Name, ok))
			}
		}

		for i, d := range districts {
			p := matcher.DistrictCoordinate(matcher.MatchDistrict(d, districtsFC), i, view.Center)
			view.Markers = append(view.Markers, dto.Marker{
				ID:   d.ID,
				Name: d.Name,
				Kind: domain.KindDistricts,
				Lat:  p.Lat,
				Lng:  p.Lng,
			})
		}
		view.Counter = fmt.Sprintf("%d %s", len(districts), domain.KindDistricts.Label())

	case navigator.LevelGreenSpace:
		view.Zoom = ZoomGreenSpace
		view.Center = matcher.ParentCenter(st.Unit)
		greens := navigator.FilterGreenSpaces(c.GreenSpaces, st.District)

		if st.Unit != nil {
			if f := matcher.MatchUnit(*st.Unit, unitsFC); f != nil {
				view.Layers.Append(layerFeature(f, domain.KindUnits, RoleFaded, st.Unit.ID, st.Unit.DisplayName(), true))
			}
		}
		if st.District != nil {
			districtsFC, _ := uc.boundaries.FetchBoundaries(ctx, domain.KindDistricts)
			if f := matcher.MatchDistrict(*st.District, districtsFC); f != nil {
				view.Layers.Append(layerFeature(f, domain.KindDistricts, RoleSelected, st.District.ID, st.District.Name, true))
			}
		}

		greensFC, _ := uc.boundaries.FetchBoundaries(ctx, domain.KindGreenSpaces)
		for i, g := range greens {
			selected := st.GreenSpace != nil && st.GreenSpace.ID == g.ID
			role := RoleDefault
			if selected {
				role = RoleSelected
			}

			var matched *geojson.Feature
			if g.Geometry != nil {
				view.Layers.Append(layerFeature(geojson.NewFeature(g.Geometry.Geometry()), domain.KindGreenSpaces, role, g.ID, g.Name, true))
			} else if matched = matcher.MatchGreenSpace(g, greensFC); matched != nil {
				view.Layers.Append(layerFeature(matched, domain.KindGreenSpaces, role, g.ID, g.Name, true))
			}

			p := matcher.GreenSpaceCoordinate(g, matched, i, view.Center)
			view.Markers = append(view.Markers, dto.Marker{
				ID:       g.ID,
				Name:     g.Name,
				Kind:     domain.KindGreenSpaces,
				Lat:      p.Lat,
				Lng:      p.Lng,
				Selected: selected,
			})
		}
		view.Counter = fmt.Sprintf("%d %s", len(greens), domain.KindGreenSpaces.Label())
	}

	return view
}

// districtOwner - квартал из списка, чье название совпадает с названием контура
func districtOwner(f *geojson.Feature, districts []domain.District) (domain.District, bool) {
	single := &geojson.FeatureCollection{Features: []*geojson.Feature{f}}
	for _, d := range districts {
		if matcher.MatchDistrict(d, single) != nil {
			return d, true
		}
	}
	return domain.District{}, false
}

// layerFeature копирует контур и добавляет свойства слоя; кешированный контур не меняется
func layerFeature(src *geojson.Feature, kind domain.Kind, role, entityID, name string, linked bool) *geojson.Feature {
	f := geojson.NewFeature(src.Geometry)
	f.ID = src.ID
	for k, v := range src.Properties {
		f.Properties[k] = v
	}
	f.Properties["layer"] = string(kind)
	f.Properties["role"] = role
	if linked {
		f.Properties["entity_id"] = entityID
		f.Properties["entity_name"] = name
	}
	return f
}
