package domain

// SubtypeThreadBroadcast é o único subtipo contabilizado (resposta de thread enviada também ao canal)
const SubtypeThreadBroadcast = "thread_broadcast"

type Message struct {
	BotID   string `json:"bot_id,omitempty"`
	Subtype string `json:"subtype,omitempty"`
}

// IsValid indica se a mensagem entra na contagem: não pode ter sido enviada por bot
// e só pode ter subtipo vazio ou thread_broadcast
func (m Message) IsValid() bool {
	if m.BotID != "" {
		return false
	}

	return m.Subtype == "" || m.Subtype == SubtypeThreadBroadcast
}

// FilterValidMessages retorna apenas as mensagens válidas, mantendo a ordem original
func FilterValidMessages(messages []Message) []Message {
	valid := make([]Message, 0, len(messages))
	for _, message := range messages {
		if message.IsValid() {
			valid = append(valid, message)
		}
	}
	return valid
}
