// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Channel identifica um canal do Slack
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AggregatedData representa as mensagens válidas de um canal dentro de uma janela de um dia
type AggregatedData struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Messages []Message `json:"messages"`
}

// Count retorna a quantidade de mensagens válidas do canal
func (a AggregatedData) Count() int {
	return len(a.Messages)
}
