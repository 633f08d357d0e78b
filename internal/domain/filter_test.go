package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelFilter_Apply(t *testing.T) {
	channels := []Channel{
		{ID: "C1", Name: "general"},
		{ID: "C2", Name: "times_alice"},
		{ID: "C3", Name: "random"},
		{ID: "C4", Name: "times_bob"},
	}
	patterns := []*regexp.Regexp{regexp.MustCompile("^times_"), regexp.MustCompile("^random$")}

	tests := []struct {
		name   string
		filter ChannelFilter
		want   []string
	}{
		{name: "sem filtro", filter: ChannelFilter{}, want: []string{"C1", "C2", "C3", "C4"}},
		{name: "include", filter: ChannelFilter{Kind: FilterInclude, Patterns: patterns}, want: []string{"C2", "C3", "C4"}},
		{name: "exclude", filter: ChannelFilter{Kind: FilterExclude, Patterns: patterns}, want: []string{"C1"}},
		{name: "exclude sem padrões", filter: ChannelFilter{Kind: FilterExclude}, want: []string{"C1", "C2", "C3", "C4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := make([]string, 0)
			for _, channel := range tt.filter.Apply(channels) {
				ids = append(ids, channel.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterKind_String(t *testing.T) {
	assert.Equal(t, "none", FilterNone.String())
	assert.Equal(t, "include", FilterInclude.String())
	assert.Equal(t, "exclude", FilterExclude.String())
}
