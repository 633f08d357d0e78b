package ranking

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/slack-hot-channels/internal/domain"
)

// ErrUnexpectedDiff indica um diff fora de zero, positivo ou negativo (erro de programação)
var ErrUnexpectedDiff = errors.New("unexpected diff")

const messageCountLabel = "発言数"

// Rank ordena os canais pela quantidade de mensagens (decrescente) e atribui as posições.
// Empates recebem a mesma posição e o próximo valor distinto volta para a sua posição real (1, 1, 1, 4).
func Rank(data []domain.AggregatedData) []domain.Ranking {
	sorted := make([]domain.AggregatedData, len(data))
	copy(sorted, data)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count() > sorted[j].Count()
	})

	rankings := make([]domain.Ranking, 0, len(sorted))
	prevCount, prevRank := -1, 0
	for i, channel := range sorted {
		rank := i + 1
		if channel.Count() == prevCount {
			rank = prevRank
		}

		prevCount = channel.Count()
		prevRank = rank

		rankings = append(rankings, domain.Ranking{
			Channel: channel,
			Rank:    rank,
		})
	}

	return rankings
}

// Diff calcula a variação de posição de cada canal de hoje em relação a ontem.
// Canais sem posição no dia anterior recebem diff 0. A ordem de today é preservada.
func Diff(today, yesterday []domain.Ranking) []domain.RankingDiff {
	previous := make(map[string]int, len(yesterday))
	for _, ranking := range yesterday {
		if _, exists := previous[ranking.Channel.ID]; exists {
			continue
		}
		previous[ranking.Channel.ID] = ranking.Rank
	}

	diffs := make([]domain.RankingDiff, 0, len(today))
	for _, ranking := range today {
		diff := 0
		if previousRank, exists := previous[ranking.Channel.ID]; exists {
			diff = previousRank - ranking.Rank
		}

		diffs = append(diffs, domain.RankingDiff{
			Ranking: ranking,
			Diff:    diff,
		})
	}

	return diffs
}

// SumOfMessages soma as mensagens válidas de todos os canais
func SumOfMessages(data []domain.AggregatedData) int {
	count := 0
	for _, channel := range data {
		count += channel.Count()
	}
	return count
}

// FormatLine monta a linha exibida para um canal no ranking
func FormatLine(rankingDiff domain.RankingDiff, sumOfMessages int, glyphs domain.TrendGlyphs) string {
	count := rankingDiff.Channel.Count()

	return fmt.Sprintf("%d. <#%s> %s / %s: %d (%s%%)",
		rankingDiff.Rank,
		rankingDiff.Channel.ID,
		formatTrend(rankingDiff.Diff, glyphs),
		messageCountLabel,
		count,
		RatioPercentage(count, sumOfMessages),
	)
}

// BuildDisplayFields converte o ranking em campos do anexo, omitindo canais sem mensagens.
// O corte pela quantidade configurada é responsabilidade de quem publica.
func BuildDisplayFields(rankingDiffs []domain.RankingDiff, sumOfMessages int, glyphs domain.TrendGlyphs) []domain.AttachmentField {
	fields := make([]domain.AttachmentField, 0, len(rankingDiffs))
	for _, rankingDiff := range rankingDiffs {
		if rankingDiff.Channel.Count() == 0 {
			continue
		}

		fields = append(fields, domain.AttachmentField{
			Value: FormatLine(rankingDiff, sumOfMessages, glyphs),
		})
	}
	return fields
}

// BuildPostData monta o título, o texto e os campos do anexo publicado
func BuildPostData(date string, sumOfMessages int, rankingDiffs []domain.RankingDiff, glyphs domain.TrendGlyphs) domain.PostData {
	return domain.PostData{
		AttachmentTitle:  fmt.Sprintf("%s の発言数ランキング", date),
		AttachmentText:   fmt.Sprintf("合計発言数: %d", sumOfMessages),
		AttachmentFields: BuildDisplayFields(rankingDiffs, sumOfMessages, glyphs),
	}
}

// RatioPercentage calcula count/sum*100 com uma casa decimal, arredondando meio para cima
func RatioPercentage(count, sum int) string {
	if sum == 0 {
		return decimal.Zero.StringFixed(1)
	}

	return decimal.NewFromInt(int64(count)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(sum))).
		StringFixed(1)
}

func formatTrend(diff int, glyphs domain.TrendGlyphs) string {
	switch {
	case diff == 0:
		return glyphs.Sideways
	case diff > 0:
		return fmt.Sprintf("%s +%d", glyphs.Up, diff)
	case diff < 0:
		return fmt.Sprintf("%s %d", glyphs.Down, diff)
	}

	panic(ErrUnexpectedDiff)
}
