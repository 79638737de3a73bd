package usecase

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/usecase/dto"
)

const (
	// MinSearchQueryLength - более короткий запрос дает пустой результат
	MinSearchQueryLength = 2

	maxUnitResults       = 3
	maxDistrictResults   = 3
	maxGreenSpaceResults = 5
)

// SearchUseCase - поиск по названиям без учета регистра и диакритики
type SearchUseCase struct {
	gateway *GatewayUseCase
	logger  *zap.Logger
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(gateway *GatewayUseCase, logger *zap.Logger) *SearchUseCase {
	return &SearchUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

// Search - поиск по текущим коллекциям
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	resp := SearchCatalog(uc.gateway.Snapshot(ctx), req.Query)

	uc.logger.Debug("Search completed",
		zap.String("query", req.Query),
		zap.Int("total", resp.Total),
	)
	return resp, nil
}

// SearchCatalog ищет по снимку: округа также по коду, не более 3/3/5 результатов
func SearchCatalog(c *Catalog, query string) *dto.SearchResponse {
	resp := &dto.SearchResponse{
		Units:       []domain.AdministrativeUnit{},
		Districts:   []domain.District{},
		GreenSpaces: []domain.GreenSpace{},
	}
	if utf8.RuneCountInString(query) < MinSearchQueryLength {
		return resp
	}

	needle := FoldText(query)

	for _, u := range c.Units {
		if len(resp.Units) == maxUnitResults {
			break
		}
		if strings.Contains(FoldText(u.Name), needle) || (u.Code != "" && strings.Contains(u.Code, query)) {
			resp.Units = append(resp.Units, u)
		}
	}
	for _, d := range c.Districts {
		if len(resp.Districts) == maxDistrictResults {
			break
		}
		if strings.Contains(FoldText(d.Name), needle) {
			resp.Districts = append(resp.Districts, d)
		}
	}
	for _, g := range c.GreenSpaces {
		if len(resp.GreenSpaces) == maxGreenSpaceResults {
			break
		}
		if strings.Contains(FoldText(g.Name), needle) {
			resp.GreenSpaces = append(resp.GreenSpaces, g)
		}
	}

	resp.Total = len(resp.Units) + len(resp.Districts) + len(resp.GreenSpaces)
	return resp
}

// FoldText приводит строку к нижнему регистру и убирает диакритические знаки
func FoldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
