package slackdomain

type ResponseMetadata struct {
	NextCursor string `json:"next_cursor"`
}

type Channel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsArchived bool   `json:"is_archived"`
	IsPrivate  bool   `json:"is_private"`
}

type ConversationsResponse struct {
	BaseResponse
	Channels         []Channel        `json:"channels"`
	ResponseMetadata ResponseMetadata `json:"response_metadata"`
}

type Message struct {
	Type    string `json:"type"`
	User    string `json:"user,omitempty"`
	BotID   string `json:"bot_id,omitempty"`
	Subtype string `json:"subtype,omitempty"`
	Text    string `json:"text,omitempty"`
	TS      string `json:"ts"`
}

type HistoryResponse struct {
	BaseResponse
	Messages         []Message        `json:"messages"`
	HasMore          bool             `json:"has_more"`
	ResponseMetadata ResponseMetadata `json:"response_metadata"`
}
