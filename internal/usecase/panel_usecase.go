package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/navigator"
	"github.com/paris-green-explorer/internal/pkg/errors"
	"github.com/paris-green-explorer/internal/usecase/dto"
)

// PanelUseCase - боковая панель деталей для сессии
type PanelUseCase struct {
	explorer   *ExplorerUseCase
	gateway    *GatewayUseCase
	pollution  *PollutionUseCase
	airQuality *AirQualityUseCase
	now        func() time.Time
	logger     *zap.Logger
}

// NewPanelUseCase - создание PanelUseCase
func NewPanelUseCase(
	explorer *ExplorerUseCase,
	gateway *GatewayUseCase,
	pollution *PollutionUseCase,
	airQuality *AirQualityUseCase,
	logger *zap.Logger,
) *PanelUseCase {
	return &PanelUseCase{
		explorer:   explorer,
		gateway:    gateway,
		pollution:  pollution,
		airQuality: airQuality,
		now:        time.Now,
		logger:     logger,
	}
}

// PanelDate - дата загрязнения: по умолчанию сегодня, будущие даты запрещены
func (uc *PanelUseCase) PanelDate(date string) (string, error) {
	today := uc.now().Format(time.DateOnly)
	if date == "" {
		return today, nil
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return "", errors.ErrInvalidDate.WithDetails(map[string]interface{}{"date": date})
	}
	// YYYY-MM-DD сравнивается лексикографически
	if date > today {
		return "", errors.ErrInvalidDate.WithDetails(map[string]interface{}{
			"date":   date,
			"reason": "future date",
		})
	}
	return date, nil
}

// Panel собирает панель: навигация, свойства, дочерние сущности и оверлеи
func (uc *PanelUseCase) Panel(ctx context.Context, id string, req dto.PanelRequest) (*dto.Panel, error) {
	date, err := uc.PanelDate(req.Date)
	if err != nil {
		return nil, err
	}
	st, err := uc.explorer.State(id)
	if err != nil {
		return nil, err
	}

	panel := BuildPanel(st, uc.gateway.Snapshot(ctx))

	if planting, err := uc.explorer.Planting(id); err == nil && planting != nil {
		panel.Planting = planting
	}

	g, gctx := errgroup.WithContext(ctx)
	if st.Unit != nil {
		unit := *st.Unit
		g.Go(func() error {
			data, err := uc.pollution.FetchPollution(gctx, date, date)
			if err != nil {
				return err
			}
			panel.Pollution = BuildPollutionPanel(date, data, unit)
			return nil
		})
	}
	if st.District != nil {
		districtID := st.District.ID
		g.Go(func() error {
			if aq := uc.airQuality.FetchForDistrict(gctx, districtID); aq != nil {
				level := domain.AQILevel(aq.EuropeanAQI)
				panel.AirQuality = &dto.AirQualityPanel{Current: aq, Level: &level}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Warn("Panel overlays incomplete", zap.String("session_id", id), zap.Error(err))
	}

	return panel, nil
}

// BuildPanel - заголовок, навигационная цепочка, свойства и дочерний список
func BuildPanel(st navigator.State, c *Catalog) *dto.Panel {
	panel := &dto.Panel{
		Open:        st.PanelOpen,
		Level:       st.Level,
		Breadcrumbs: []dto.Breadcrumb{{Level: navigator.LevelCity, Label: "Paris"}},
		Attributes:  []dto.Attribute{},
		Children:    []dto.ChildItem{},
	}

	switch st.Level {
	case navigator.LevelCity:
		panel.Title = "Paris"
	case navigator.LevelDistrict:
		panel.Title = domain.KindDistricts.Label()
	case navigator.LevelGreenSpace:
		panel.Title = domain.KindGreenSpaces.Label()
	}

	if st.Unit != nil {
		panel.Breadcrumbs = append(panel.Breadcrumbs, dto.Breadcrumb{
			Level: navigator.LevelDistrict,
			ID:    st.Unit.ID,
			Label: st.Unit.DisplayName(),
		})
	}
	if st.District != nil {
		panel.Breadcrumbs = append(panel.Breadcrumbs, dto.Breadcrumb{
			Level: navigator.LevelGreenSpace,
			ID:    st.District.ID,
			Label: st.District.Name,
		})
	}
	if st.GreenSpace != nil {
		panel.Breadcrumbs = append(panel.Breadcrumbs, dto.Breadcrumb{
			Level: navigator.LevelGreenSpace,
			ID:    st.GreenSpace.ID,
			Label: st.GreenSpace.Name,
		})
	}

	switch {
	case st.GreenSpace != nil:
		panel.Attributes = greenSpaceAttributes(*st.GreenSpace)
	case st.Level == navigator.LevelGreenSpace:
		if st.District != nil {
			panel.Attributes = attachmentAttributes(nil, st.District.Attachments)
		}
		for _, g := range navigator.FilterGreenSpaces(c.GreenSpaces, st.District) {
			panel.Children = append(panel.Children, dto.ChildItem{
				ID:       g.ID,
				Name:     g.Name,
				Kind:     domain.KindGreenSpaces,
				Subtitle: g.Type,
			})
		}
	case st.Level == navigator.LevelDistrict && st.Unit != nil:
		panel.Attributes = unitAttributes(*st.Unit)
		for _, d := range navigator.FilterDistricts(c.Districts, st.Unit) {
			panel.Children = append(panel.Children, dto.ChildItem{
				ID:   d.ID,
				Name: d.Name,
				Kind: domain.KindDistricts,
			})
		}
	default:
		for _, u := range c.Units {
			panel.Children = append(panel.Children, dto.ChildItem{
				ID:   u.ID,
				Name: u.DisplayName(),
				Kind: domain.KindUnits,
			})
		}
	}

	return panel
}

func unitAttributes(u domain.AdministrativeUnit) []dto.Attribute {
	attrs := []dto.Attribute{}
	if u.Code != "" {
		attrs = append(attrs, dto.Attribute{Label: "Code", Value: u.Code})
	}
	if u.Zipcode != "" {
		attrs = append(attrs, dto.Attribute{Label: "Code postal", Value: u.Zipcode})
	}
	if u.Population != nil {
		attrs = append(attrs, dto.Attribute{Label: "Population", Value: strconv.Itoa(*u.Population)})
	}
	if u.Area != nil {
		attrs = append(attrs, dto.Attribute{Label: "Superficie", Value: formatArea(*u.Area)})
	}
	return attachmentAttributes(attrs, u.Attachments)
}

func greenSpaceAttributes(g domain.GreenSpace) []dto.Attribute {
	attrs := []dto.Attribute{}
	if g.Type != "" {
		attrs = append(attrs, dto.Attribute{Label: "Type", Value: g.Type})
	}
	if g.Address != "" {
		attrs = append(attrs, dto.Attribute{Label: "Adresse", Value: g.Address})
	}
	if g.Area != nil {
		attrs = append(attrs, dto.Attribute{Label: "Superficie", Value: formatArea(*g.Area)})
	}
	if g.Hours != "" {
		attrs = append(attrs, dto.Attribute{Label: "Horaires", Value: g.Hours})
	}
	return attachmentAttributes(attrs, g.Attachments)
}

// attachmentAttributes добавляет дополнительные свойства источника в порядке ключей
func attachmentAttributes(attrs []dto.Attribute, a domain.Attachments) []dto.Attribute {
	if attrs == nil {
		attrs = []dto.Attribute{}
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, dto.Attribute{Label: k, Value: a[k]})
	}
	return attrs
}

func formatArea(v float64) string {
	return fmt.Sprintf("%s m²", strconv.FormatFloat(v, 'f', -1, 64))
}

// BuildPollutionPanel - запись округа и уровень по средней PM10
func BuildPollutionPanel(date string, data *domain.PollutionData, unit domain.AdministrativeUnit) *dto.PollutionPanel {
	p := &dto.PollutionPanel{Date: date, Data: data}
	if data == nil {
		return p
	}

	avg := data.Average
	p.Average = &avg
	level := domain.PollutionLevelByPM10(avg.PM10)
	p.Level = &level

	zip := unit.PlantingZoneID()
	for i := range data.Records {
		if data.Records[i].Zipcode == zip {
			rec := data.Records[i]
			p.Record = &rec
			break
		}
	}
	return p
}

// BuildPlantingPanel группирует рекомендации каждого плана по почтовому индексу.
// Индексы идут по возрастанию, группа без индекса - последней.
func BuildPlantingPanel(params domain.PlantingParams, sim *domain.PlantingSimulation) *dto.PlantingPanel {
	panel := &dto.PlantingPanel{
		Params:  params,
		Summary: sim.Summary,
		Plans:   make([]dto.PlanView, 0, len(sim.Plans)),
	}

	for _, plan := range sim.Plans {
		groups := make(map[string][]domain.PlantRecommendation)
		for _, rec := range plan.Recommendations {
			key := rec.Zipcode
			if key == "" {
				key = domain.OtherGroup
			}
			groups[key] = append(groups[key], rec)
		}

		keys := make([]string, 0, len(groups))
		for k := range groups {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i] == domain.OtherGroup || keys[j] == domain.OtherGroup {
				return keys[j] == domain.OtherGroup && keys[i] != domain.OtherGroup
			}
			return keys[i] < keys[j]
		})

		view := dto.PlanView{
			PlanType:    plan.PlanType,
			DisplayName: domain.PlanDisplayName(plan.PlanType),
			Groups:      make([]dto.RecommendationGroup, 0, len(keys)),
		}
		for _, k := range keys {
			view.Groups = append(view.Groups, dto.RecommendationGroup{Zipcode: k, Recommendations: groups[k]})
		}
		panel.Plans = append(panel.Plans, view)
	}

	return panel
}
