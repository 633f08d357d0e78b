package domain

import "regexp"

type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterInclude
	FilterExclude
)

func (k FilterKind) String() string {
	switch k {
	case FilterInclude:
		return "include"
	case FilterExclude:
		return "exclude"
	default:
		return "none"
	}
}

// ChannelFilter filtra canais pelo nome usando expressões regulares
type ChannelFilter struct {
	Kind     FilterKind
	Patterns []*regexp.Regexp
}

// Allows indica se o canal com o nome informado deve entrar no ranking
func (f ChannelFilter) Allows(name string) bool {
	switch f.Kind {
	case FilterInclude:
		return f.matches(name)
	case FilterExclude:
		return !f.matches(name)
	default:
		return true
	}
}

// Apply retorna os canais permitidos pelo filtro, mantendo a ordem
func (f ChannelFilter) Apply(channels []Channel) []Channel {
	if f.Kind == FilterNone {
		return channels
	}

	filtered := make([]Channel, 0, len(channels))
	for _, channel := range channels {
		if f.Allows(channel.Name) {
			filtered = append(filtered, channel)
		}
	}
	return filtered
}

func (f ChannelFilter) matches(name string) bool {
	for _, pattern := range f.Patterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}
