package ranking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/slack-hot-channels/internal/domain"
)

var testGlyphs = domain.TrendGlyphs{
	Sideways: ":arrow_right:",
	Up:       ":arrow_up:",
	Down:     ":arrow_down:",
}

func aggregatedData(name string, messageCount int) domain.AggregatedData {
	return domain.AggregatedData{
		ID:       name,
		Name:     name,
		Messages: make([]domain.Message, messageCount),
	}
}

func ranking(name string, messageCount int, rank int) domain.Ranking {
	return domain.Ranking{
		Channel: aggregatedData(name, messageCount),
		Rank:    rank,
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		data []domain.AggregatedData
		want []domain.Ranking
	}{
		{
			name: "sem empates",
			data: []domain.AggregatedData{
				aggregatedData("a", 10),
				aggregatedData("b", 30),
				aggregatedData("c", 20),
				aggregatedData("d", 40),
				aggregatedData("e", 50),
			},
			want: []domain.Ranking{
				ranking("e", 50, 1),
				ranking("d", 40, 2),
				ranking("b", 30, 3),
				ranking("c", 20, 4),
				ranking("a", 10, 5),
			},
		},
		{
			name: "empate triplo no primeiro lugar",
			data: []domain.AggregatedData{
				aggregatedData("a", 5),
				aggregatedData("b", 5),
				aggregatedData("d", 1),
				aggregatedData("c", 5),
			},
			want: []domain.Ranking{
				ranking("a", 5, 1),
				ranking("b", 5, 1),
				ranking("c", 5, 1),
				ranking("d", 1, 4),
			},
		},
		{
			name: "empate no meio e canais sem mensagens",
			data: []domain.AggregatedData{
				aggregatedData("a", 0),
				aggregatedData("b", 7),
				aggregatedData("c", 3),
				aggregatedData("d", 3),
				aggregatedData("e", 0),
			},
			want: []domain.Ranking{
				ranking("b", 7, 1),
				ranking("c", 3, 2),
				ranking("d", 3, 2),
				ranking("a", 0, 4),
				ranking("e", 0, 4),
			},
		},
		{
			name: "um único canal",
			data: []domain.AggregatedData{aggregatedData("a", 0)},
			want: []domain.Ranking{ranking("a", 0, 1)},
		},
		{
			name: "entrada vazia",
			data: []domain.AggregatedData{},
			want: []domain.Ranking{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rank(tt.data))
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	data := []domain.AggregatedData{
		aggregatedData("a", 1),
		aggregatedData("b", 2),
	}

	Rank(data)

	assert.Equal(t, "a", data[0].ID)
	assert.Equal(t, "b", data[1].ID)
}

func TestRank_CompetitionRankingProperty(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for iteration := 0; iteration < 200; iteration++ {
		size := random.Intn(30)
		data := make([]domain.AggregatedData, 0, size)
		for i := 0; i < size; i++ {
			data = append(data, aggregatedData(string(rune('a'+i)), random.Intn(8)))
		}

		rankings := Rank(data)
		require.Len(t, rankings, size)

		for i, r := range rankings {
			if i > 0 {
				previous := rankings[i-1]
				assert.GreaterOrEqual(t, previous.Channel.Count(), r.Channel.Count())

				if previous.Channel.Count() == r.Channel.Count() {
					assert.Equal(t, previous.Rank, r.Rank)
				} else {
					assert.Less(t, previous.Rank, r.Rank)
					assert.Equal(t, i+1, r.Rank)
				}
			}

			greater := 0
			for _, other := range data {
				if other.Count() > r.Channel.Count() {
					greater++
				}
			}
			assert.Equal(t, greater+1, r.Rank)
		}
	}
}

func TestDiff(t *testing.T) {
	todayRanking := []domain.Ranking{
		ranking("a", 30, 3),
		ranking("b", 10, 5),
		ranking("c", 50, 1),
		ranking("d", 40, 2),
		ranking("e", 20, 4),
	}
	yesterdayRanking := []domain.Ranking{
		ranking("a", 20, 4),
		ranking("b", 30, 3),
		ranking("c", 10, 5),
		ranking("d", 50, 1),
		ranking("e", 40, 2),
	}

	rankingDiffs := Diff(todayRanking, yesterdayRanking)

	require.Len(t, rankingDiffs, 5)
	for i, want := range []int{1, -2, 4, -1, -2} {
		assert.Equal(t, todayRanking[i], rankingDiffs[i].Ranking)
		assert.Equal(t, want, rankingDiffs[i].Diff)
	}
}

func TestDiff_NewChannel(t *testing.T) {
	todayRanking := []domain.Ranking{
		ranking("new", 10, 1),
		ranking("old", 5, 2),
	}
	yesterdayRanking := []domain.Ranking{
		ranking("old", 8, 1),
	}

	rankingDiffs := Diff(todayRanking, yesterdayRanking)

	require.Len(t, rankingDiffs, 2)
	assert.Equal(t, 0, rankingDiffs[0].Diff)
	assert.Equal(t, -1, rankingDiffs[1].Diff)

	assert.Empty(t, Diff(nil, yesterdayRanking))
	for _, rankingDiff := range Diff(todayRanking, nil) {
		assert.Equal(t, 0, rankingDiff.Diff)
	}
}

func TestDiff_Antisymmetric(t *testing.T) {
	today := Rank([]domain.AggregatedData{
		aggregatedData("a", 3),
		aggregatedData("b", 9),
		aggregatedData("c", 1),
		aggregatedData("only-today", 4),
	})
	yesterday := Rank([]domain.AggregatedData{
		aggregatedData("a", 7),
		aggregatedData("b", 2),
		aggregatedData("c", 5),
		aggregatedData("only-yesterday", 8),
	})

	forward := map[string]int{}
	for _, rankingDiff := range Diff(today, yesterday) {
		forward[rankingDiff.Channel.ID] = rankingDiff.Diff
	}

	for _, rankingDiff := range Diff(yesterday, today) {
		if rankingDiff.Channel.ID == "only-yesterday" {
			assert.Equal(t, 0, rankingDiff.Diff)
			continue
		}
		assert.Equal(t, -forward[rankingDiff.Channel.ID], rankingDiff.Diff, rankingDiff.Channel.ID)
	}
	assert.Equal(t, 0, forward["only-today"])
}

func TestSumOfMessages(t *testing.T) {
	assert.Equal(t, 0, SumOfMessages(nil))
	assert.Equal(t, 15, SumOfMessages([]domain.AggregatedData{
		aggregatedData("a", 10),
		aggregatedData("b", 0),
		aggregatedData("c", 5),
	}))
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		diff int
		want string
	}{
		{name: "subiu", diff: 3, want: "1. <#dummy-id> :arrow_up: +3 / 発言数: 1 (10.0%)"},
		{name: "desceu", diff: -2, want: "1. <#dummy-id> :arrow_down: -2 / 発言数: 1 (10.0%)"},
		{name: "manteve", diff: 0, want: "1. <#dummy-id> :arrow_right: / 発言数: 1 (10.0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rankingDiff := domain.RankingDiff{
				Ranking: domain.Ranking{
					Channel: domain.AggregatedData{ID: "dummy-id", Name: "dummy", Messages: make([]domain.Message, 1)},
					Rank:    1,
				},
				Diff: tt.diff,
			}

			assert.Equal(t, tt.want, FormatLine(rankingDiff, 10, testGlyphs))
		})
	}
}

func TestFormatLine_CustomGlyphs(t *testing.T) {
	glyphs := domain.TrendGlyphs{Sideways: "→", Up: "↑", Down: "↓"}
	rankingDiff := domain.RankingDiff{Ranking: ranking("general", 3, 2), Diff: -1}

	assert.Equal(t, "2. <#general> ↓ -1 / 発言数: 3 (33.3%)", FormatLine(rankingDiff, 9, glyphs))
}

func TestRatioPercentage(t *testing.T) {
	tests := []struct {
		count int
		sum   int
		want  string
	}{
		{count: 1, sum: 10, want: "10.0"},
		{count: 10, sum: 10, want: "100.0"},
		{count: 1, sum: 3, want: "33.3"},
		{count: 2, sum: 3, want: "66.7"},
		{count: 49, sum: 400, want: "12.3"},
		{count: 1, sum: 8, want: "12.5"},
		{count: 0, sum: 10, want: "0.0"},
		{count: 0, sum: 0, want: "0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RatioPercentage(tt.count, tt.sum), "%d/%d", tt.count, tt.sum)
	}
}

func TestBuildDisplayFields(t *testing.T) {
	todayRanking := []domain.Ranking{
		ranking("a", 30, 3),
		ranking("b", 10, 5),
		ranking("c", 50, 1),
		ranking("d", 40, 2),
		ranking("e", 20, 4),
	}
	yesterdayRanking := []domain.Ranking{
		ranking("a", 20, 4),
		ranking("b", 30, 3),
		ranking("c", 10, 5),
		ranking("d", 50, 1),
		ranking("e", 40, 2),
	}
	sumOfMessages := 150
	rankingDiffs := Diff(todayRanking, yesterdayRanking)

	fields := BuildDisplayFields(rankingDiffs, sumOfMessages, testGlyphs)

	require.Len(t, fields, 5)
	for i, field := range fields {
		assert.Equal(t, domain.AttachmentField{Value: FormatLine(rankingDiffs[i], sumOfMessages, testGlyphs)}, field)
	}
	assert.Equal(t, "3. <#a> :arrow_up: +1 / 発言数: 30 (20.0%)", fields[0].Value)
}

func TestBuildDisplayFields_OmitsChannelsWithoutMessages(t *testing.T) {
	rankingDiffs := Diff(Rank([]domain.AggregatedData{
		aggregatedData("a", 2),
		aggregatedData("quiet", 0),
		aggregatedData("b", 1),
		aggregatedData("silent", 0),
	}), nil)

	fields := BuildDisplayFields(rankingDiffs, 3, testGlyphs)

	require.Len(t, fields, 2)
	assert.Equal(t, "1. <#a> :arrow_right: / 発言数: 2 (66.7%)", fields[0].Value)
	assert.Equal(t, "2. <#b> :arrow_right: / 発言数: 1 (33.3%)", fields[1].Value)
	assert.Empty(t, BuildDisplayFields(nil, 0, testGlyphs))
}

func TestBuildPostData(t *testing.T) {
	today := []domain.AggregatedData{aggregatedData("a", 4), aggregatedData("b", 1)}
	rankingDiffs := Diff(Rank(today), nil)

	post := BuildPostData("2024-03-09", SumOfMessages(today), rankingDiffs, testGlyphs)

	assert.Equal(t, "2024-03-09 の発言数ランキング", post.AttachmentTitle)
	assert.Equal(t, "合計発言数: 5", post.AttachmentText)
	assert.Len(t, post.AttachmentFields, 2)
}
